package game

import (
	"math"

	"github.com/akshaywadatkar/temple-run/internal/config"
	"github.com/akshaywadatkar/temple-run/internal/core"
)

// Player is the motion controller: two independent animated degrees of
// freedom (lateral lane shift and vertical jump arc), each a small
// progress-per-tick state machine advanced by the main tick so all motion
// shares one time base.
type Player struct {
	cfg config.PlayerConfig

	lane        int     // Committed lane index, 0..2
	targetLane  int     // Lane a shift is resolving toward
	lateralPos  float64 // Animated world x, converging on the target lane
	shiftFrom   float64 // Lateral position when the current shift started
	shiftT      float64 // Shift progress 0..1
	shifting    bool
	jumping     bool
	jumpT       float64 // Jump progress 0..1
	verticalOff float64 // sin-curve height, exactly 0 when grounded
}

// newPlayer creates a player in the center lane, grounded.
func newPlayer(cfg config.PlayerConfig) *Player {
	p := &Player{cfg: cfg}
	p.reset()
	return p
}

// reset returns the player to the center lane, grounded, mid-animation state
// discarded.
func (p *Player) reset() {
	p.lane = 1
	p.targetLane = 1
	p.lateralPos = p.cfg.Lanes[1]
	p.shifting = false
	p.shiftT = 0
	p.jumping = false
	p.jumpT = 0
	p.verticalOff = 0
}

// MoveLanes requests a one-lane shift in the given direction (-1 left,
// +1 right). The target clamps to the lane bounds; requests at the bound and
// requests while a shift is already in flight are no-ops, so at most one
// shift resolves at a time.
func (p *Player) MoveLanes(dir int) {
	if p.shifting {
		return
	}
	target := core.Clamp(p.lane+dir, 0, len(p.cfg.Lanes)-1)
	if target == p.lane {
		return
	}
	p.shifting = true
	p.targetLane = target
	p.shiftFrom = p.lateralPos
	p.shiftT = 0
}

// Jump starts the jump arc. No-op while airborne: no double jump, no
// queueing.
func (p *Player) Jump() {
	if p.jumping {
		return
	}
	p.jumping = true
	p.jumpT = 0
}

// advance moves both animations forward by one tick.
func (p *Player) advance() {
	if p.shifting {
		p.shiftT += p.cfg.LaneStep
		if p.shiftT >= 1 {
			// Snap exactly to the target lane
			p.lane = p.targetLane
			p.lateralPos = p.cfg.Lanes[p.lane]
			p.shifting = false
		} else {
			p.lateralPos = core.Lerp(p.shiftFrom, p.cfg.Lanes[p.targetLane], p.shiftT)
		}
	}

	if p.jumping {
		p.jumpT += p.cfg.JumpStep
		if p.jumpT >= 1 {
			// Arc complete: snap exactly back to the ground
			p.jumping = false
			p.verticalOff = 0
		} else {
			p.verticalOff = p.cfg.JumpHeight * math.Sin(p.jumpT*math.Pi)
		}
	}
}

// Lane returns the committed lane index.
func (p *Player) Lane() int {
	return p.lane
}

// LateralPos returns the animated world x coordinate.
func (p *Player) LateralPos() float64 {
	return p.lateralPos
}

// VerticalOffset returns the current jump height, 0 when grounded.
func (p *Player) VerticalOffset() float64 {
	return p.verticalOff
}

// Jumping reports whether a jump arc is in flight.
func (p *Player) Jumping() bool {
	return p.jumping
}

// Box returns the player's current collision box.
func (p *Player) Box() core.Box {
	return playerBox(p.lateralPos, p.verticalOff, p.jumping)
}
