package racer

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/racer-arcade/internal/config"
)

// Spawner decides each tick whether new hazards or bonuses enter the lane.
// All randomness comes from one seeded source, so a seed and an input
// sequence fully determine a run.
type Spawner struct {
	rng      *rand.Rand
	cfg      config.RacerConfig
	schedule *config.DifficultySchedule
}

// NewSpawner creates a spawner with the given seed.
func NewSpawner(seed int64, cfg config.RacerConfig, schedule *config.DifficultySchedule) *Spawner {
	return &Spawner{
		rng:      rand.New(rand.NewSource(seed)),
		cfg:      cfg,
		schedule: schedule,
	}
}

// Spawn draws for a hazard and then for a bonus at elapsed time t.
// Either result may be nil. There is no population cap.
func (s *Spawner) Spawn(t time.Duration) (*Hazard, *Bonus) {
	var h *Hazard
	var b *Bonus

	if s.rng.Float64() < s.schedule.HazardChance(t) {
		x := s.randomX(s.cfg.Hazards.Width)
		jitter := (s.rng.Float64()*2 - 1) * s.cfg.Hazards.SpeedJitter
		h = newHazard(x, s.schedule.HazardSpeed(t)+jitter, s.cfg)
	}

	if s.rng.Float64() < s.cfg.Bonuses.SpawnChance {
		x := s.randomX(s.cfg.Bonuses.Width)
		kind := BonusKind(s.rng.Intn(int(bonusKindCount)))
		b = newBonus(x, kind, s.cfg)
	}

	return h, b
}

// randomX picks a whole-unit x so the entity lies fully inside the lane.
func (s *Spawner) randomX(width float64) float64 {
	span := int(s.cfg.Lane.Width - width)
	if span <= 0 {
		return 0
	}
	return float64(s.rng.Intn(span + 1))
}
