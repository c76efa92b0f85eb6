package system

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/tilerpg/internal/domain/entity"
	"github.com/younwookim/tilerpg/internal/domain/geom"
	"github.com/younwookim/tilerpg/internal/domain/tilemap"
)

// EffectSystem applies the effect of the tile under the player. Teleports and
// transitions fire once per tile entry; the guards survive map loads so the
// player does not bounce straight back off the arrival tile.
type EffectSystem struct {
	HurtDamage int

	justTransitioned bool
	justTeleported   bool
	warned           map[string]struct{}
	log              logrus.FieldLogger
}

// NewEffectSystem creates a new effect system
func NewEffectSystem(hurtDamage int, log logrus.FieldLogger) *EffectSystem {
	return &EffectSystem{
		HurtDamage: hurtDamage,
		warned:     make(map[string]struct{}),
		log:        log,
	}
}

// Update checks the player's current tile. When it is a transition tile
// entered this frame, the link is returned and the caller loads the target.
func (s *EffectSystem) Update(p *entity.Player, m *tilemap.Tilemap, window geom.Rect) (tilemap.Transition, bool) {
	tile, ok := m.TileAtWorldPos(p.WorldBox().Center())
	if !ok {
		return tilemap.Transition{}, false
	}

	if tile.Effect != tilemap.EffectTransition {
		s.justTransitioned = false
	}
	if tile.Effect != tilemap.EffectTeleport {
		s.justTeleported = false
	}

	if p.Indoors && tile.Effect != tilemap.EffectDoor && tile.Effect != tilemap.EffectRoof {
		m.ClearHidden()
		p.Indoors = false
	}

	switch tile.Effect {
	case tilemap.EffectHurt:
		if p.State != entity.Hurt && p.State != entity.Down {
			p.Hurt(s.HurtDamage)
		}
	case tilemap.EffectDoor:
		if !p.Indoors {
			m.HideEffect(window, tilemap.EffectRoof)
			p.Indoors = true
		}
	case tilemap.EffectTeleport:
		if s.justTeleported {
			break
		}
		s.justTeleported = true
		if tp, ok := m.TeleportAt(tile.Index); ok {
			p.Place(m.CellOrigin(tp.Target))
		} else {
			s.warnOnce(m.Name, tile.Index, "teleport tile has no target")
		}
	case tilemap.EffectTransition:
		if s.justTransitioned {
			break
		}
		s.justTransitioned = true
		if tr, ok := m.TransitionAt(tile.Index); ok {
			return tr, true
		}
		s.warnOnce(m.Name, tile.Index, "transition tile has no target map")
	}

	return tilemap.Transition{}, false
}

// Arrived marks the player as freshly placed on a map. A teleport or
// transition tile under the arrival point fires only after it is left.
func (s *EffectSystem) Arrived() {
	s.justTransitioned = true
	s.justTeleported = true
}

// WarnOnce logs msg the first time it is reported for a map tile
func (s *EffectSystem) WarnOnce(mapName string, idx int, msg string, fields logrus.Fields) {
	if s.seen(mapName, idx, msg) {
		return
	}
	s.log.WithFields(fields).WithField("map", mapName).WithField("tile", idx).Warn(msg)
}

func (s *EffectSystem) warnOnce(mapName string, idx int, msg string) {
	s.WarnOnce(mapName, idx, msg, nil)
}

func (s *EffectSystem) seen(mapName string, idx int, msg string) bool {
	key := fmt.Sprintf("%s/%d/%s", mapName, idx, msg)
	if _, ok := s.warned[key]; ok {
		return true
	}
	s.warned[key] = struct{}{}
	return false
}
