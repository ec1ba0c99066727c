// Package game implements the temple-runner game-state engine: run
// lifecycle, procedural lap layout, player motion, per-tick world update,
// and the score/run-state streams the platform binds to. Pure logic, no
// terminal dependencies.
package game

import (
	"math/rand"

	"github.com/akshaywadatkar/temple-run/internal/config"
	"github.com/akshaywadatkar/temple-run/internal/core"
)

// coinSpinRate is the cosmetic coin rotation per tick, radians.
const coinSpinRate = 0.25

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game is the runner engine. All mutation happens inside Step (and the
// explicit Start/Restart transitions), driven once per frame by the
// platform; Idle and GameOver ticks are no-ops, safe to invoke every frame
// regardless of phase.
type Game struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	phase  Phase
	paused bool

	player    *Player
	obstacles []Obstacle
	coins     []Coin

	trackPos float64 // Distance traveled this lap, resets on recycle
	speed    float64 // Units per tick, ramps up while active
	score    float64
	distance float64 // Total distance this run, across laps
	coinsGot int
	tick     uint64 // Active, unpaused ticks this run

	scoreStream *core.Observable[float64]
	runStream   *core.Observable[RunSignal]
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{
		scoreStream: core.NewObservable(0.0),
		runStream:   core.NewObservable(PhaseIdle.signal()),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Temple Run"
}

// Reset initializes the engine into Idle with the given runtime config.
// It does not start a run. Window resizes go through Resize instead so an
// in-flight run survives them.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.player = newPlayer(cfg.Player)
	g.obstacles = nil
	g.coins = nil
	g.trackPos = 0
	g.speed = cfg.Track.BaseSpeed
	g.score = 0
	g.distance = 0
	g.coinsGot = 0
	g.tick = 0
	g.paused = false
	g.phase = PhaseIdle
	g.publish()
}

// Resize updates the projection dimensions. World coordinates are
// unaffected; only rendering changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Start begins a run from Idle. Silent no-op in any other phase: calling it
// twice has no effect beyond the first.
func (g *Game) Start() {
	if g.phase != PhaseIdle {
		return
	}
	g.resetRun()
	g.phase = PhaseActive
	g.publish()
}

// Restart begins a fresh run from GameOver, and doubles as a hard reset
// from Active or Idle.
func (g *Game) Restart() {
	g.resetRun()
	g.phase = PhaseActive
	g.publish()
}

// resetRun resets everything a new run needs: score, speed, track position,
// player to center lane and grounded, and a freshly generated lap.
func (g *Game) resetRun() {
	g.score = 0
	g.distance = 0
	g.coinsGot = 0
	g.tick = 0
	g.speed = g.cfg.Track.BaseSpeed
	g.trackPos = 0
	g.paused = false
	g.player.reset()
	g.obstacles, g.coins = generateLap(g.cfg.Layout, g.cfg.Player.Lanes, g.cfg.Track.Length, g.rng)
}

// collide transitions Active to GameOver. Idempotent: once the run is over,
// further collisions are no-ops until restart, so any number of simultaneous
// hits collapses into a single game over.
func (g *Game) collide() {
	if g.phase != PhaseActive {
		return
	}
	g.phase = PhaseGameOver
	g.publish()
}

// Step advances the simulation by one tick. This is the single scheduling
// point for everything: the frame update and both player animation curves
// run on the same time base.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseIdle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.Start()
		}
		return core.StepResult{State: g.State()}

	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// Input mutates the motion controller's targets; the controller's no-op
	// rules keep at most one lane shift and one jump in flight.
	if dir := in.LaneDir(); dir != 0 {
		g.player.MoveLanes(dir)
	}
	if in.Has(core.ActionJump) {
		g.player.Jump()
	}
	g.player.advance()

	g.update()
	g.publish()

	return core.StepResult{State: g.State()}
}

// update is the per-tick frame update: speed ramp, forward progression,
// track recycling, entity movement, collision and collection, scoring.
func (g *Game) update() {
	g.speed += g.cfg.Track.SpeedRamp
	g.trackPos += g.speed
	g.distance += g.speed

	if g.trackPos >= g.cfg.Track.Length-g.cfg.Track.RecycleMargin {
		// Lap done: recycle. The new layout fully replaces the old one,
		// including coins that were collected or never reached.
		g.trackPos = 0
		g.obstacles, g.coins = generateLap(g.cfg.Layout, g.cfg.Player.Lanes, g.cfg.Track.Length, g.rng)
	}

	pbox := g.player.Box()

	// Obstacles first. A hit does not abort the rest of the tick, so a coin
	// overlapped in the same tick as a fatal collision is still collected.
	for i := range g.obstacles {
		g.obstacles[i].Pos.Z += g.speed
		if entityBox(g.obstacles[i].Pos).Overlaps(pbox) {
			g.collide()
		}
	}

	// Coins in reverse so removal doesn't skip the next element.
	for i := len(g.coins) - 1; i >= 0; i-- {
		g.coins[i].Pos.Z += g.speed
		g.coins[i].Spin += coinSpinRate
		if entityBox(g.coins[i].Pos).Overlaps(pbox) {
			g.coins = append(g.coins[:i], g.coins[i+1:]...)
			g.score += g.cfg.Scoring.CoinReward
			g.coinsGot++
		}
	}

	g.score += g.cfg.Scoring.DistanceReward
}

// publish pushes the current score and run flags to subscribers.
func (g *Game) publish() {
	g.scoreStream.Set(g.score)
	g.runStream.Set(g.phase.signal())
}

// ScoreStream is the continuous score observable. The value is the raw
// float; UIs truncate for display.
func (g *Game) ScoreStream() *core.Observable[float64] {
	return g.scoreStream
}

// RunStream is the continuous run-state observable.
func (g *Game) RunStream() *core.Observable[RunSignal] {
	return g.runStream
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Distance: g.distance,
		Coins:    g.coinsGot,
		Active:   g.phase == PhaseActive,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}
