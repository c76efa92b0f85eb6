package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/younwookim/tilerpg/internal/domain/gameerr"
)

// MaxMapCells bounds columns*rows of a single map
const MaxMapCells = 1 << 20

// MapConfig is the root config for maps/<id>.json
type MapConfig struct {
	Name            string              `json:"name"`
	Dimensions      *GridSize           `json:"dimensions"`
	TileSize        int                 `json:"tileSize,omitempty"`
	PlayerSpawn     *Vec                `json:"playerSpawn,omitempty"`
	Layers          []LayerConfig       `json:"layers"`
	Entities        []EntitySpawnConfig `json:"entities"`
	TransitionTiles []TransitionConfig  `json:"transitionTiles"`
	Teleports       []TeleportConfig    `json:"teleports,omitempty"`
}

type LayerConfig struct {
	TilesheetID string   `json:"tilesheetId"`
	Tiles       TileList `json:"tiles"`
}

type EntitySpawnConfig struct {
	ArchetypeID string `json:"archetypeId"`
	SpawnPos    Vec    `json:"spawnPos"`
	PathNodes   []Vec  `json:"pathNodes,omitempty"`
	Movement    string `json:"movement,omitempty"`
}

type TransitionConfig struct {
	Idx   int    `json:"idx"`
	MapID string `json:"mapId"`
}

type TeleportConfig struct {
	Idx       int `json:"idx"`
	TargetIdx int `json:"targetIdx"`
}

// TileList is a layer's tile types. Null entries decode as -1 (empty).
type TileList []int

// UnmarshalJSON implements json.Unmarshaler
func (t *TileList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	tiles := make(TileList, len(raw))
	for i, r := range raw {
		if bytes.Equal(bytes.TrimSpace(r), []byte("null")) {
			tiles[i] = -1
			continue
		}
		if err := json.Unmarshal(r, &tiles[i]); err != nil {
			return fmt.Errorf("tile %d: %w", i, err)
		}
	}
	*t = tiles
	return nil
}

// Validate rejects maps without a name, with non-positive dimensions, or
// with more than MaxMapCells cells
func (m *MapConfig) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("map has no name: %w", gameerr.ErrMapIntegrity)
	}
	if m.Dimensions == nil {
		return fmt.Errorf("map %q has no dimensions: %w", m.Name, gameerr.ErrMapIntegrity)
	}
	if m.Dimensions.X <= 0 || m.Dimensions.Y <= 0 {
		return fmt.Errorf("map %q has dimensions %dx%d: %w",
			m.Name, m.Dimensions.X, m.Dimensions.Y, gameerr.ErrMapIntegrity)
	}
	if m.Dimensions.X > MaxMapCells/m.Dimensions.Y {
		return fmt.Errorf("map %q has dimensions %dx%d, more than %d cells: %w",
			m.Name, m.Dimensions.X, m.Dimensions.Y, MaxMapCells, gameerr.ErrMapIntegrity)
	}
	return nil
}
