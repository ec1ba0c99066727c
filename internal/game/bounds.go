package game

import "github.com/akshaywadatkar/temple-run/internal/core"

// Collision half-extents per entity kind. Obstacle subtypes look different
// but share one collision box.
var (
	playerHalf = core.Vec3{X: 0.7, Y: 1.5, Z: 0.5}
	entityHalf = core.Vec3{X: 0.8, Y: 1.0, Z: 0.8}
)

// playerBox returns the player's collision box. The center sits at the
// player's ground anchor (lateral position, jump offset, z=0). While jumping
// the vertical half-extent collapses to 0: combined with entityBox hanging
// below the ground line and the strict overlap test, a jumping player can
// never overlap a ground entity vertically, whatever the arc position. Full
// invulnerability during a jump is a gameplay rule, not an approximation.
func playerBox(lateral, verticalOff float64, jumping bool) core.Box {
	half := playerHalf
	if jumping {
		half.Y = 0
	}
	return core.NewBox(core.Vec3{X: lateral, Y: verticalOff, Z: 0}, half)
}

// entityBox returns the collision box for an obstacle or coin at pos.
// Entity positions are ground anchors; the box hangs one half-extent below.
func entityBox(pos core.Vec3) core.Box {
	center := pos
	center.Y -= entityHalf.Y
	return core.NewBox(center, entityHalf)
}
