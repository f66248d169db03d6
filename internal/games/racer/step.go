package racer

import (
	"slices"
	"time"

	"github.com/vovakirdan/racer-arcade/internal/core"
)

// advance runs the movement half of a tick: steer, expire effects, then
// move lane marks, hazards and bonuses. Hazards that leave the lane are
// removed and counted as dodged.
func (s *Session) advance(in core.InputFrame, now time.Duration) []core.Event {
	var events []core.Event

	s.player.Steer(in.Has(core.ActionLeft), in.Has(core.ActionRight))
	s.player.Expire(now)

	for _, m := range s.marks {
		m.Advance()
	}

	dodged := 0
	s.hazards = slices.DeleteFunc(s.hazards, func(h *Hazard) bool {
		if h.Advance() {
			dodged++
			return true
		}
		return false
	})
	for range dodged {
		events = append(events, core.Event{Type: core.EventHazardDodged})
	}
	s.score += dodged
	s.run.Dodged += dodged

	s.bonuses = slices.DeleteFunc(s.bonuses, func(b *Bonus) bool {
		return b.Advance()
	})

	return events
}
