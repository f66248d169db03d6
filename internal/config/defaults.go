package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the default Car Racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Lane: RacerLane{
			Width:  800,
			Height: 600,
		},
		Player: RacerPlayer{
			Width:           50,
			Height:          80,
			BottomMargin:    20,
			Speed:           5,
			BoostMultiplier: 1.5,
			ShieldSeconds:   5,
			BoostSeconds:    3,
		},
		Hazards: RacerHazards{
			Width:       50,
			Height:      80,
			SpeedJitter: 1,
		},
		Bonuses: RacerBonuses{
			Width:       30,
			Height:      30,
			Speed:       3,
			SpawnChance: 0.005,
			Points:      10,
		},
		LaneMarks: RacerLaneMarks{
			Width:   10,
			Height:  40,
			Speed:   5,
			Spacing: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			HazardSpeed: StepConfig{
				Base:         4,
				EverySeconds: 30,
				Increment:    1,
			},
			HazardChance: StepConfig{
				Base:         0.02,
				EverySeconds: 60,
				Increment:    0.01,
				Max:          0.10,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "racer":
		return defaultRacerYAML
	default:
		return nil
	}
}
