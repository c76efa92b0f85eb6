package config

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilerpg/internal/domain/gameerr"
)

func TestLoader_LoadSettings(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, 480, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, "village", cfg.InitMap)
	assert.Equal(t, 32, cfg.TileSize)
	assert.Equal(t, "player", cfg.Player.Archetype)
	assert.Equal(t, 200.0, cfg.Camera.LockMargin)
	assert.Equal(t, 3600, cfg.DayNight.CycleFrames)
	assert.Equal(t, 1, cfg.Combat.HurtTileDamage)
}

func TestLoader_SettingsDefaults(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{
		"settings.json": {Data: []byte(`{"initMap": "town", "display": {"screenWidth": 800}}`)},
	}, "mem")

	cfg, err := loader.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 480, cfg.Display.ScreenHeight)
	assert.Equal(t, 1, cfg.Display.Scale)
	assert.Equal(t, 32, cfg.TileSize)
	assert.Equal(t, "player", cfg.Player.Archetype)
	assert.Equal(t, 1000, cfg.FrameClock.MinWrap)
	assert.Equal(t, "midnightblue", cfg.DayNight.Color)
}

func TestLoader_LoadArchetypes(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadArchetypes()
	require.NoError(t, err)

	player, ok := cfg["player"]
	require.True(t, ok)
	assert.Equal(t, 2.0, player.MoveSpeed)
	assert.Equal(t, 10, player.Hitpoints)
	assert.True(t, player.Armed)

	villager, ok := cfg["villager"]
	require.True(t, ok)
	assert.True(t, villager.Reasonable)
	assert.False(t, villager.Armed)

	assert.True(t, cfg["bat"].Hostile)
}

func TestLoader_LoadSheets(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	ts, err := loader.LoadTilesheet("overworld")
	require.NoError(t, err)
	assert.Equal(t, "overworld", ts.ID)
	assert.Equal(t, 32, ts.ClipSize)
	assert.Equal(t, GridSize{X: 8, Y: 4}, ts.Dimensions)
	assert.Len(t, ts.SolidMap, 32)
	require.Len(t, ts.TileAnimations, 1)
	assert.Equal(t, []int{4, 5, 6}, ts.TileAnimations[0].Frames)

	ss, err := loader.LoadSpritesheet("player")
	require.NoError(t, err)
	assert.Equal(t, Vec{X: 32, Y: 32}, ss.ClipSize)
	walk, ok := ss.Animations["walk.north.armed"]
	require.True(t, ok)
	assert.Len(t, walk.Frames, 2)
	assert.Equal(t, 10, walk.Speed)
}

func TestLoader_LoadMap(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadMap("village")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "village", cfg.Name)
	assert.Equal(t, GridSize{X: 30, Y: 20}, *cfg.Dimensions)
	require.Len(t, cfg.Layers, 2)
	assert.Len(t, cfg.Layers[0].Tiles, 600)
	assert.Equal(t, -1, cfg.Layers[1].Tiles[0], "null decodes as empty")
	require.Len(t, cfg.TransitionTiles, 1)
	assert.Equal(t, "cave", cfg.TransitionTiles[0].MapID)
	assert.Len(t, cfg.Teleports, 2)
	assert.Len(t, cfg.Entities, 3)
}

func TestLoader_IDs(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	maps, err := loader.MapIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"cave", "village"}, maps)

	textures, err := loader.TextureIDs()
	require.NoError(t, err)
	assert.Contains(t, textures, "overworld")
	assert.Contains(t, textures, "player")
}

func TestLoader_Errors(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{
		"maps/broken.json": {Data: []byte(`{"name": `)},
		"archetypes.yaml":  {Data: []byte("player: [")},
	}, "mem")

	_, err := loader.LoadMap("broken")
	assert.ErrorContains(t, err, "failed to parse maps/broken.json")

	_, err = loader.LoadMap("missing")
	assert.ErrorContains(t, err, "failed to read maps/missing.json")

	_, err = loader.LoadArchetypes()
	assert.ErrorContains(t, err, "failed to parse archetypes.yaml")

	_, err = loader.LoadSettings()
	assert.Error(t, err)

	_, err = loader.TilesheetIDs()
	assert.Error(t, err)
}

func TestTileList_Nulls(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{
		"maps/m.json": {Data: []byte(`{"name": "m", "dimensions": {"x": 2, "y": 2},
			"layers": [{"tilesheetId": "s", "tiles": [0, null, 3, null]}]}`)},
	}, "mem")

	cfg, err := loader.LoadMap("m")
	require.NoError(t, err)
	assert.Equal(t, TileList{0, -1, 3, -1}, cfg.Layers[0].Tiles)
}

func TestMapConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  MapConfig
	}{
		{"no name", MapConfig{Dimensions: &GridSize{X: 1, Y: 1}}},
		{"no dimensions", MapConfig{Name: "m"}},
		{"zero columns", MapConfig{Name: "m", Dimensions: &GridSize{X: 0, Y: 3}}},
		{"too many cells", MapConfig{Name: "m", Dimensions: &GridSize{X: 1025, Y: 1024}}},
		{"product overflows", MapConfig{Name: "m", Dimensions: &GridSize{X: 1 << 40, Y: 1 << 40}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.True(t, errors.Is(err, gameerr.ErrMapIntegrity))
		})
	}

	ok := MapConfig{Name: "m", Dimensions: &GridSize{X: 2, Y: 1}}
	assert.NoError(t, ok.Validate())

	largest := MapConfig{Name: "m", Dimensions: &GridSize{X: 1024, Y: 1024}}
	assert.NoError(t, largest.Validate())
}
