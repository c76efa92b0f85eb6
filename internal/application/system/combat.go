package system

import (
	"github.com/younwookim/tilerpg/internal/domain/entity"
)

// CombatSystem resolves engagement and melee hits between the player and NPCs
type CombatSystem struct {
	// OnHit is called for every NPC a strike lands on
	OnHit func(npc *entity.Npc, damage int)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

// Update engages every NPC against the player's area, lands a pending strike
// on every NPC overlapping the attack box, then updates each NPC. A strike is
// consumed once per attack press no matter how many frames the swing lasts.
// It returns the number of NPCs hit.
func (s *CombatSystem) Update(player *entity.Player, npcs []*entity.Npc, damage int) int {
	strike := player.ConsumeStrike()

	hits := 0
	for _, npc := range npcs {
		npc.Engage(player.Area)

		if strike && !npc.IsDown() && player.AttackBox.Overlaps(npc.WorldBox()) {
			npc.Hurt(damage)
			hits++
			if s.OnHit != nil {
				s.OnHit(npc, damage)
			}
		}

		npc.Update()
	}
	return hits
}
