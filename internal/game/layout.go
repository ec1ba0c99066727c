package game

import (
	"math/rand"

	"github.com/akshaywadatkar/temple-run/internal/config"
	"github.com/akshaywadatkar/temple-run/internal/core"
)

// ObstacleKind distinguishes obstacle visuals. All kinds collide identically.
type ObstacleKind int

const (
	ObstacleRock ObstacleKind = iota
	ObstacleLog
	ObstacleStatue

	obstacleKindCount = 3
)

// String returns a human-readable name for the obstacle kind.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleRock:
		return "rock"
	case ObstacleLog:
		return "log"
	case ObstacleStatue:
		return "statue"
	default:
		return "unknown"
	}
}

// Obstacle is a lane blocker. Position is the ground anchor; z is negative
// ahead of the player and advances toward 0 as the world scrolls.
type Obstacle struct {
	Kind ObstacleKind
	Lane int
	Pos  core.Vec3
}

// Coin is a collectible. Spin is cosmetic rotation in radians, no gameplay
// meaning.
type Coin struct {
	Lane int
	Pos  core.Vec3
	Spin float64
}

// generateLap procedurally places obstacles and coins for one lap of the
// track. It walks from the lead-in offset to trackLength minus the lead-out
// margin in randomized steps; each row gets exactly one obstacle in a random
// lane (so the player can always dodge by moving one lane) and, per remaining
// lane, a coin with fixed probability, jittered backward off the row line.
// Pure given the RNG; the result fully replaces any previous lap.
func generateLap(cfg config.LayoutConfig, lanes []float64, trackLength float64, rng *rand.Rand) ([]Obstacle, []Coin) {
	obstacles := make([]Obstacle, 0, 16)
	coins := make([]Coin, 0, 32)

	for dist := cfg.LeadIn; dist < trackLength-cfg.LeadOut; dist += cfg.MinStep + rng.Float64()*(cfg.MaxStep-cfg.MinStep) {
		blocked := rng.Intn(len(lanes))
		obstacles = append(obstacles, Obstacle{
			Kind: ObstacleKind(rng.Intn(obstacleKindCount)),
			Lane: blocked,
			Pos:  core.Vec3{X: lanes[blocked], Y: 0, Z: -dist},
		})

		for lane := range lanes {
			if lane == blocked {
				continue
			}
			if rng.Float64() >= cfg.CoinChance {
				continue
			}
			jitter := rng.Float64() * cfg.CoinJitter
			coins = append(coins, Coin{
				Lane: lane,
				Pos:  core.Vec3{X: lanes[lane], Y: 0, Z: -(dist + jitter)},
			})
		}
	}

	return obstacles, coins
}
