package game

import (
	"math/rand"
	"testing"

	"github.com/akshaywadatkar/temple-run/internal/config"
)

func TestGenerateLapNeverBlocksAllLanes(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		obstacles, _ := generateLap(cfg.Layout, cfg.Player.Lanes, cfg.Track.Length, rng)

		// Rows are identified by obstacle z; one obstacle per row means the
		// player can always dodge by moving one lane.
		byRow := make(map[float64]int)
		for _, o := range obstacles {
			byRow[o.Pos.Z]++
		}
		for z, n := range byRow {
			if n > 1 {
				t.Fatalf("lap %d: row at z=%v has %d obstacles, expected 1", i, z, n)
			}
		}
	}
}

func TestGenerateLapBoundsAndLanes(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	rng := rand.New(rand.NewSource(7))

	obstacles, coins := generateLap(cfg.Layout, cfg.Player.Lanes, cfg.Track.Length, rng)

	if len(obstacles) == 0 {
		t.Fatal("expected at least one obstacle row")
	}

	minZ := -(cfg.Track.Length - cfg.Layout.LeadOut)
	for _, o := range obstacles {
		if o.Lane < 0 || o.Lane > 2 {
			t.Errorf("obstacle lane %d out of range", o.Lane)
		}
		if o.Pos.X != cfg.Player.Lanes[o.Lane] {
			t.Errorf("obstacle x=%v does not match lane %d", o.Pos.X, o.Lane)
		}
		if o.Pos.Z > -cfg.Layout.LeadIn || o.Pos.Z < minZ {
			t.Errorf("obstacle z=%v outside [%v, %v]", o.Pos.Z, minZ, -cfg.Layout.LeadIn)
		}
	}

	for _, c := range coins {
		if c.Lane < 0 || c.Lane > 2 {
			t.Errorf("coin lane %d out of range", c.Lane)
		}
		// Coins jitter backward off their row, never past it
		if c.Pos.Z > -cfg.Layout.LeadIn {
			t.Errorf("coin z=%v ahead of the lead-in", c.Pos.Z)
		}
	}
}

func TestGenerateLapCoinsAvoidObstacleLane(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Layout.CoinJitter = 0 // Align coins exactly with their row
	rng := rand.New(rand.NewSource(3))

	obstacles, coins := generateLap(cfg.Layout, cfg.Player.Lanes, cfg.Track.Length, rng)

	blockedAt := make(map[float64]int)
	for _, o := range obstacles {
		blockedAt[o.Pos.Z] = o.Lane
	}
	for _, c := range coins {
		if lane, ok := blockedAt[c.Pos.Z]; ok && lane == c.Lane {
			t.Errorf("coin shares lane %d with the obstacle at z=%v", lane, c.Pos.Z)
		}
	}
}

func TestGenerateLapReplacesNotAppends(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	rng := rand.New(rand.NewSource(9))

	first, _ := generateLap(cfg.Layout, cfg.Player.Lanes, cfg.Track.Length, rng)
	second, _ := generateLap(cfg.Layout, cfg.Player.Lanes, cfg.Track.Length, rng)

	// Each call produces a self-contained lap of roughly the same density;
	// callers assign the result, never append to the old lap.
	if len(second) > len(first)*2 || len(first) > len(second)*2 {
		t.Errorf("lap sizes wildly divergent: %d vs %d", len(first), len(second))
	}
}

func TestGenerateLapDeterministic(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	a, ac := generateLap(cfg.Layout, cfg.Player.Lanes, cfg.Track.Length, rand.New(rand.NewSource(42)))
	b, bc := generateLap(cfg.Layout, cfg.Player.Lanes, cfg.Track.Length, rand.New(rand.NewSource(42)))

	if len(a) != len(b) || len(ac) != len(bc) {
		t.Fatalf("same seed produced different laps: %d/%d obstacles, %d/%d coins", len(a), len(b), len(ac), len(bc))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
