// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "time"

// RacerConfig contains all configuration for the Car Racer game.
// Sizes and speeds are in world units (pixels of an 800x600 lane) per tick.
type RacerConfig struct {
	Lane       RacerLane        `yaml:"lane"`
	Player     RacerPlayer      `yaml:"player"`
	Hazards    RacerHazards     `yaml:"hazards"`
	Bonuses    RacerBonuses     `yaml:"bonuses"`
	LaneMarks  RacerLaneMarks   `yaml:"lane_marks"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RacerLane defines the playfield size.
type RacerLane struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RacerPlayer defines the player car.
type RacerPlayer struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	BottomMargin    float64 `yaml:"bottom_margin"`    // Gap between car and lane bottom
	Speed           float64 `yaml:"speed"`            // Horizontal speed per tick
	BoostMultiplier float64 `yaml:"boost_multiplier"` // Speed factor while boosted
	ShieldSeconds   float64 `yaml:"shield_seconds"`
	BoostSeconds    float64 `yaml:"boost_seconds"`
}

// RacerHazards defines enemy cars.
type RacerHazards struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpeedJitter float64 `yaml:"speed_jitter"` // Uniform +/- jitter around the base speed
}

// RacerBonuses defines power-ups.
type RacerBonuses struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick probability
	Points      int     `yaml:"points"`       // Score for a points bonus
}

// RacerLaneMarks defines the decorative center line.
type RacerLaneMarks struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"`
	Spacing float64 `yaml:"spacing"` // Vertical distance between marks
}

// ShieldDuration returns the shield lifetime.
func (p RacerPlayer) ShieldDuration() time.Duration {
	return seconds(p.ShieldSeconds)
}

// BoostDuration returns the speed boost lifetime.
func (p RacerPlayer) BoostDuration() time.Duration {
	return seconds(p.BoostSeconds)
}

// DifficultyConfig defines the difficulty progression system.
// Both hazard speed and hazard spawn chance are step functions of elapsed time.
type DifficultyConfig struct {
	Enabled          bool       `yaml:"enabled"`
	HeadStartSeconds float64    `yaml:"head_start_seconds"` // Added to elapsed time
	HazardSpeed      StepConfig `yaml:"hazard_speed"`
	HazardChance     StepConfig `yaml:"hazard_chance"`
}

// StepConfig describes base + floor(t/every)*increment, optionally capped at max.
type StepConfig struct {
	Base         float64 `yaml:"base"`
	EverySeconds float64 `yaml:"every_seconds"`
	Increment    float64 `yaml:"increment"`
	Max          float64 `yaml:"max"` // 0 means uncapped
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// HeadStartForPreset returns how far into the schedule a preset starts.
func HeadStartForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyNormal:
		return 30 * time.Second
	case DifficultyHard:
		return 90 * time.Second
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
