package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.templerun/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	var cfg RunnerConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".templerun", "configs", filename)
}

// normalize repairs values a partial or hand-edited config may leave broken,
// so the engine can treat its config as always valid.
func normalize(cfg RunnerConfig) RunnerConfig {
	def := DefaultRunnerConfig()

	if len(cfg.Player.Lanes) != 3 {
		cfg.Player.Lanes = def.Player.Lanes
	}
	if cfg.Player.LaneStep <= 0 {
		cfg.Player.LaneStep = def.Player.LaneStep
	}
	if cfg.Player.JumpStep <= 0 {
		cfg.Player.JumpStep = def.Player.JumpStep
	}
	if cfg.Track.Length <= 0 {
		cfg.Track.Length = def.Track.Length
	}
	if cfg.Track.BaseSpeed <= 0 {
		cfg.Track.BaseSpeed = def.Track.BaseSpeed
	}
	if cfg.Layout.MinStep <= 0 {
		cfg.Layout.MinStep = def.Layout.MinStep
	}
	if cfg.Layout.MaxStep < cfg.Layout.MinStep {
		cfg.Layout.MaxStep = cfg.Layout.MinStep
	}
	return cfg
}
