package system

import (
	"github.com/younwookim/tilerpg/internal/domain/entity"
	"github.com/younwookim/tilerpg/internal/domain/geom"
	"github.com/younwookim/tilerpg/internal/domain/tilemap"
)

// CollisionSet gathers what the player can bump into this frame: solid
// visible tiles followed by every NPC's box. It must be built before
// anything moves.
func CollisionSet(m *tilemap.Tilemap, window geom.Rect, npcs []*entity.Npc) []geom.Rect {
	boxes := m.SolidBoxes(window)
	for _, n := range npcs {
		boxes = append(boxes, n.WorldBox())
	}
	return boxes
}
