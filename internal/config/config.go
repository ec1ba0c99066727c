// Package config provides YAML-based game configuration loading for the
// runner. All engine tunables live here so the simulation itself stays free
// of magic numbers.
package config

// RunnerConfig contains all configuration for the temple runner.
type RunnerConfig struct {
	Track   TrackConfig   `yaml:"track"`
	Player  PlayerConfig  `yaml:"player"`
	Layout  LayoutConfig  `yaml:"layout"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// TrackConfig defines the corridor and the speed ramp.
type TrackConfig struct {
	Length        float64 `yaml:"length"`         // World units per lap
	RecycleMargin float64 `yaml:"recycle_margin"` // Trailing distance at which the lap regenerates
	BaseSpeed     float64 `yaml:"base_speed"`     // Units per tick at run start
	SpeedRamp     float64 `yaml:"speed_ramp"`     // Speed increment per tick (unbounded)
}

// PlayerConfig defines lane geometry and animation increments.
type PlayerConfig struct {
	Lanes      []float64 `yaml:"lanes"`       // Lane x-positions, exactly 3
	LaneStep   float64   `yaml:"lane_step"`   // Lane-change progress per tick (0.1 => ~10 ticks)
	JumpStep   float64   `yaml:"jump_step"`   // Jump progress per tick (0.05 => ~20 ticks)
	JumpHeight float64   `yaml:"jump_height"` // Peak of the jump arc in world units
}

// LayoutConfig defines procedural lap generation.
type LayoutConfig struct {
	LeadIn     float64 `yaml:"lead_in"`     // Distance before the first row
	LeadOut    float64 `yaml:"lead_out"`    // Trailing margin with no rows
	MinStep    float64 `yaml:"min_step"`    // Minimum distance between rows
	MaxStep    float64 `yaml:"max_step"`    // Maximum distance between rows
	CoinChance float64 `yaml:"coin_chance"` // Probability of a coin in each non-obstacle lane
	CoinJitter float64 `yaml:"coin_jitter"` // Max backward offset so coins don't align with the row
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	CoinReward     float64 `yaml:"coin_reward"`     // Added per collected coin
	DistanceReward float64 `yaml:"distance_reward"` // Added per active tick
}
