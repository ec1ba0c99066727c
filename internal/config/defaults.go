package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default configuration.
// Kept in sync with defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Track: TrackConfig{
			Length:        200.0,
			RecycleMargin: 10.0,
			BaseSpeed:     0.2,
			SpeedRamp:     0.0001,
		},
		Player: PlayerConfig{
			Lanes:      []float64{-2.0, 0.0, 2.0},
			LaneStep:   0.1,
			JumpStep:   0.05,
			JumpHeight: 2.0,
		},
		Layout: LayoutConfig{
			LeadIn:     15.0,
			LeadOut:    10.0,
			MinStep:    5.0,
			MaxStep:    15.0,
			CoinChance: 0.7,
			CoinJitter: 2.0,
		},
		Scoring: ScoringConfig{
			CoinReward:     10.0,
			DistanceReward: 0.1,
		},
	}
}
