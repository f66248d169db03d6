package config

import (
	"math"
	"time"
)

// DifficultySchedule calculates hazard parameters from elapsed run time.
// Every value is a non-decreasing step function of time.
type DifficultySchedule struct {
	cfg       DifficultyConfig
	headStart time.Duration
}

// NewDifficultySchedule creates a schedule from config.
func NewDifficultySchedule(cfg DifficultyConfig) *DifficultySchedule {
	return &DifficultySchedule{
		cfg:       cfg,
		headStart: seconds(cfg.HeadStartSeconds),
	}
}

// SetHeadStart overrides how far into the schedule a run begins.
func (d *DifficultySchedule) SetHeadStart(h time.Duration) {
	if h < 0 {
		h = 0
	}
	d.headStart = h
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultySchedule) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultySchedule) IsEnabled() bool {
	return d.cfg.Enabled
}

// Steps returns how many increments the given config has taken at elapsed time t.
func (d *DifficultySchedule) Steps(step StepConfig, t time.Duration) int {
	if !d.cfg.Enabled || step.EverySeconds <= 0 {
		return 0
	}
	effective := (t + d.headStart).Seconds()
	if effective < 0 {
		return 0
	}
	return int(math.Floor(effective / step.EverySeconds))
}

// HazardSpeed returns the base descent speed for hazards spawned at time t.
func (d *DifficultySchedule) HazardSpeed(t time.Duration) float64 {
	return d.value(d.cfg.HazardSpeed, t)
}

// HazardChance returns the per-tick hazard spawn probability at time t.
func (d *DifficultySchedule) HazardChance(t time.Duration) float64 {
	return d.value(d.cfg.HazardChance, t)
}

func (d *DifficultySchedule) value(step StepConfig, t time.Duration) float64 {
	v := step.Base + float64(d.Steps(step, t))*step.Increment
	if step.Max > 0 {
		v = clampF(v, step.Base, step.Max)
	}
	return v
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
