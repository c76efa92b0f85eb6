package assets

import (
	"errors"
	"fmt"
	"slices"

	"github.com/younwookim/tilerpg/internal/domain/entity"
	"github.com/younwookim/tilerpg/internal/domain/gameerr"
)

// Validate checks every lookup the game will make at run time: the player
// archetype exists, every archetype has a spritesheet holding every animation
// key its entities can produce, and every well-formed map only references
// known tilesheets and archetypes. Malformed maps are left to the fallback
// path. All problems are returned together, each wrapping ErrConfiguration.
func (s *Store) Validate(playerArchetype string) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format+": %w", append(args, gameerr.ErrConfiguration)...))
	}

	if _, ok := s.Archetypes[playerArchetype]; !ok {
		fail("player archetype %q not found", playerArchetype)
	}

	for _, id := range sortedKeys(s.Archetypes) {
		arch := s.Archetypes[id]
		sheet, ok := s.Spritesheets[id]
		if !ok {
			fail("archetype %q has no spritesheet", id)
			continue
		}
		for _, key := range entity.AnimationKeys(arch.Armed) {
			if _, ok := sheet.Animation(key); !ok {
				fail("spritesheet %q has no animation %q", id, key)
			}
		}
	}

	for _, id := range sortedKeys(s.Maps) {
		m := s.Maps[id]
		if m.Validate() != nil {
			continue
		}
		for i, layer := range m.Layers {
			if _, ok := s.Tilesheets[layer.TilesheetID]; !ok {
				fail("map %q layer %d uses unknown tilesheet %q", id, i, layer.TilesheetID)
			}
		}
		for i, e := range m.Entities {
			if _, ok := s.Archetypes[e.ArchetypeID]; !ok {
				fail("map %q entity %d uses unknown archetype %q", id, i, e.ArchetypeID)
			}
		}
	}

	return errors.Join(errs...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
