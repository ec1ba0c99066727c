package game

// Phase is the run lifecycle state.
type Phase int

const (
	// PhaseIdle is the initial state: no run in progress, waiting for start.
	PhaseIdle Phase = iota
	// PhaseActive is a run in progress; only Active ticks mutate the world.
	PhaseActive
	// PhaseGameOver is terminal until restart.
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// RunSignal is the value carried by the run-state stream: the pair of flags
// the UI binds to.
type RunSignal struct {
	Active   bool
	GameOver bool
}

// signal derives the stream value from a phase.
func (p Phase) signal() RunSignal {
	return RunSignal{
		Active:   p == PhaseActive,
		GameOver: p == PhaseGameOver,
	}
}
