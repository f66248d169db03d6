package racer

import (
	"slices"
	"time"

	"github.com/vovakirdan/racer-arcade/internal/core"
)

// hazardHit is the outcome of checking hazards against the player.
type hazardHit struct {
	crashed bool
	blocked int // Hazards a shield absorbed for the first time this tick
}

// checkHazards tests every hazard against the player.
// A shielded player ignores overlaps; the first unshielded overlap is fatal
// and ends the scan.
func checkHazards(p *Player, hazards []*Hazard) hazardHit {
	var hit hazardHit
	pb := p.Bounds()
	for _, h := range hazards {
		if !pb.Intersects(h.Bounds()) {
			continue
		}
		if p.Shield {
			if !h.blocked {
				h.blocked = true
				hit.blocked++
			}
			continue
		}
		hit.crashed = true
		return hit
	}
	return hit
}

// collectBonuses removes every bonus overlapping the player and returns the
// remaining bonuses plus the collected kinds in lane order. Shields do not
// prevent collection.
func collectBonuses(p *Player, bonuses []*Bonus) ([]*Bonus, []BonusKind) {
	var got []BonusKind
	pb := p.Bounds()
	bonuses = slices.DeleteFunc(bonuses, func(b *Bonus) bool {
		if pb.Intersects(b.Bounds()) {
			got = append(got, b.Kind)
			return true
		}
		return false
	})
	return bonuses, got
}

// resolve runs collision resolution for one tick. Hazards are checked first;
// a crash ends the session and skips bonus collection.
func (s *Session) resolve(now time.Duration) []core.Event {
	var events []core.Event

	hit := checkHazards(s.player, s.hazards)
	for range hit.blocked {
		events = append(events, core.Event{Type: core.EventShieldBlocked})
	}
	if hit.crashed {
		// Bonuses touching the player on the crash tick stay uncollected.
		return append(events, s.crash(now)...)
	}

	var kinds []BonusKind
	s.bonuses, kinds = collectBonuses(s.player, s.bonuses)
	for _, k := range kinds {
		s.apply(k, now)
		events = append(events, core.Event{Type: core.EventBonusCollected, Detail: k.String()})
	}
	return events
}

// apply grants a bonus effect. Timed effects overwrite earlier expiries.
func (s *Session) apply(k BonusKind, now time.Duration) {
	switch k {
	case BonusShield:
		s.player.GrantShield(now, s.cfg.Player.ShieldDuration())
	case BonusSpeed:
		s.player.GrantSpeedBoost(now, s.cfg.Player.BoostDuration())
	case BonusPoints:
		s.score += s.cfg.Bonuses.Points
	}
	s.run.Bonuses[k]++
}
