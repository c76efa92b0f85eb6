// Package gameerr defines the error kinds the game distinguishes when recovering
// from bad content. Wrap them with fmt.Errorf("...: %w") and test with errors.Is.
package gameerr

import "errors"

var (
	// ErrConfiguration marks an archetype or animation lookup that cannot be resolved.
	ErrConfiguration = errors.New("configuration error")

	// ErrAssetLoad marks a texture, map, or sheet that could not be read or decoded.
	ErrAssetLoad = errors.New("asset load failure")

	// ErrMapIntegrity marks a map file with a missing name or bad dimensions.
	ErrMapIntegrity = errors.New("map integrity error")

	// ErrTransitionIntegrity marks a transition whose target map has no tile leading back.
	ErrTransitionIntegrity = errors.New("transition integrity error")
)
