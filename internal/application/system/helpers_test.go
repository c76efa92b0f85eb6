package system

import (
	"github.com/younwookim/tilerpg/internal/domain/entity"
	"github.com/younwookim/tilerpg/internal/domain/geom"
	"github.com/younwookim/tilerpg/internal/domain/sprite"
	"github.com/younwookim/tilerpg/internal/domain/tilemap"
	"github.com/younwookim/tilerpg/internal/infrastructure/config"
)

const ts = 32

// Tile types of the test sheet
const (
	grass = iota
	wall
	spikes
	pad
	exit
	door
	roof
)

type fakeContent struct {
	maps       map[string]*config.MapConfig
	tilesheets map[string]*tilemap.Tilesheet
	sheets     map[string]*sprite.Sheet
	archetypes map[string]entity.Archetype
}

func (c *fakeContent) Map(id string) (*config.MapConfig, bool) {
	m, ok := c.maps[id]
	return m, ok
}

func (c *fakeContent) Tilesheet(id string) (*tilemap.Tilesheet, bool) {
	t, ok := c.tilesheets[id]
	return t, ok
}

func (c *fakeContent) Spritesheet(id string) (*sprite.Sheet, bool) {
	s, ok := c.sheets[id]
	return s, ok
}

func (c *fakeContent) Archetype(id string) (entity.Archetype, bool) {
	a, ok := c.archetypes[id]
	return a, ok
}

func testTilesheet() *tilemap.Tilesheet {
	return &tilemap.Tilesheet{
		ID:        "field",
		TextureID: "field",
		ClipSize:  ts,
		Columns:   4,
		Rows:      2,
		SolidMap:  []bool{false, true, false, false, false, false, false},
		EffectMap: []tilemap.Effect{
			tilemap.EffectNone,
			tilemap.EffectNone,
			tilemap.EffectHurt,
			tilemap.EffectTeleport,
			tilemap.EffectTransition,
			tilemap.EffectDoor,
			tilemap.EffectRoof,
		},
	}
}

func testSpritesheet(id string) *sprite.Sheet {
	return &sprite.Sheet{
		ID:         id,
		TextureID:  id,
		ClipSize:   geom.Vector{X: ts, Y: ts},
		Animations: map[string]sprite.Animation{},
	}
}

func newContent() *fakeContent {
	return &fakeContent{
		maps:       map[string]*config.MapConfig{},
		tilesheets: map[string]*tilemap.Tilesheet{"field": testTilesheet()},
		sheets: map[string]*sprite.Sheet{
			"hero":     testSpritesheet("hero"),
			"villager": testSpritesheet("villager"),
		},
		archetypes: map[string]entity.Archetype{
			"hero":     {ID: "hero", MoveSpeed: 2, Hitpoints: 10, Damage: 3, Armed: true},
			"villager": {ID: "villager", MoveSpeed: 1, Hitpoints: 4, Reasonable: true},
		},
	}
}

func newPlayer(content *fakeContent, spawn geom.Vector) *entity.Player {
	return entity.NewPlayer(content.archetypes["hero"], content.sheets["hero"], spawn)
}

func newVillager(content *fakeContent, id string, spawn geom.Vector) *entity.Npc {
	return entity.NewNpc(id, content.archetypes["villager"], content.sheets["villager"], spawn, nil)
}

// fieldMap builds a one-layer map over the test tilesheet
func fieldMap(cols, rows int, tiles ...int) *tilemap.Tilemap {
	m, err := tilemap.New("field", cols, rows, ts,
		[]tilemap.LayerData{{TilesheetID: "field", Tiles: tiles}},
		map[string]*tilemap.Tilesheet{"field": testTilesheet()})
	if err != nil {
		panic(err)
	}
	return m
}
