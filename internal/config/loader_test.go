package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	data := []byte(`
track:
  length: 500.0
  recycle_margin: 25.0
  base_speed: 0.5
  speed_ramp: 0.001
player:
  lanes: [-3.0, 0.0, 3.0]
  lane_step: 0.2
  jump_step: 0.1
  jump_height: 3.0
layout:
  lead_in: 20.0
  lead_out: 5.0
  min_step: 8.0
  max_step: 12.0
  coin_chance: 0.5
  coin_jitter: 1.0
scoring:
  coin_reward: 25.0
  distance_reward: 0.2
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner failed: %v", err)
	}
	if cfg.Track.Length != 500.0 {
		t.Errorf("Track.Length = %v, expected 500", cfg.Track.Length)
	}
	if cfg.Player.Lanes[0] != -3.0 || cfg.Player.Lanes[2] != 3.0 {
		t.Errorf("Lanes = %v", cfg.Player.Lanes)
	}
	if cfg.Scoring.CoinReward != 25.0 {
		t.Errorf("CoinReward = %v, expected 25", cfg.Scoring.CoinReward)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner("/nonexistent/runner.yaml")
	if err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestLoadRunnerEmbeddedDefault(t *testing.T) {
	// With no custom path the loader falls back to the embedded default
	// (user/local configs may exist on a dev machine, so only check sanity).
	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner failed: %v", err)
	}
	if len(cfg.Player.Lanes) != 3 {
		t.Errorf("expected 3 lanes, got %d", len(cfg.Player.Lanes))
	}
	if cfg.Track.Length <= 0 || cfg.Track.BaseSpeed <= 0 {
		t.Errorf("invalid track config: %+v", cfg.Track)
	}
}

func TestNormalizeRepairsBrokenValues(t *testing.T) {
	cfg := normalize(RunnerConfig{
		Player: PlayerConfig{Lanes: []float64{0}}, // wrong lane count
		Layout: LayoutConfig{MinStep: 10, MaxStep: 2},
	})

	if len(cfg.Player.Lanes) != 3 {
		t.Errorf("normalize should restore 3 lanes, got %v", cfg.Player.Lanes)
	}
	if cfg.Layout.MaxStep < cfg.Layout.MinStep {
		t.Errorf("normalize should fix step range: min=%v max=%v", cfg.Layout.MinStep, cfg.Layout.MaxStep)
	}
	if cfg.Track.BaseSpeed <= 0 {
		t.Error("normalize should restore base speed")
	}
}
