package game

// Snapshot captures the observable simulation state for determinism testing
// and debugging.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Score       float64
	Distance    float64
	Coins       int
	Speed       float64
	TrackPos    float64
	Lane        int
	LateralPos  float64
	VerticalOff float64
	Jumping     bool
	ObstacleN   int
	CoinN       int
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Phase:       g.phase,
		Score:       g.score,
		Distance:    g.distance,
		Coins:       g.coinsGot,
		Speed:       g.speed,
		TrackPos:    g.trackPos,
		Lane:        g.player.Lane(),
		LateralPos:  g.player.LateralPos(),
		VerticalOff: g.player.VerticalOffset(),
		Jumping:     g.player.Jumping(),
		ObstacleN:   len(g.obstacles),
		CoinN:       len(g.coins),
	}
}
