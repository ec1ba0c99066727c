package game

import (
	"fmt"
	"math"

	"github.com/akshaywadatkar/temple-run/internal/core"
)

// Visual characters for rendering
const (
	PlayerHead  = '◆'
	PlayerBody  = '█'
	ShadowChar  = '▿'
	RockChar    = '▲'
	LogChar     = '▬'
	StatueChar  = '♜'
	EdgeChar    = '║'
	LaneDotChar = '·'
)

// coinFrames is the cosmetic spin cycle for coins.
var coinFrames = []rune{'◐', '◓', '◑', '◒'}

// viewDepth is how many world units of corridor are visible above the player.
const viewDepth = 40.0

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	groundRow := h - 3
	topRow := 1

	// Columns per world unit; lanes are 2 units apart.
	scale := float64(core.Clamp(w/12, 2, 6))
	centerX := w / 2

	toCol := func(worldX float64) int {
		return centerX + int(math.Round(worldX*scale))
	}
	toRow := func(z float64) (int, bool) {
		if z > 1 || z < -viewDepth {
			return 0, false
		}
		return groundRow - int((-z)/viewDepth*float64(groundRow-topRow)), true
	}

	// Corridor edges and lane separators
	edge := 3.5
	for y := topRow; y <= groundRow; y++ {
		dst.SetColored(toCol(-edge), y, EdgeChar, ColorWall)
		dst.SetColored(toCol(edge), y, EdgeChar, ColorWall)
		if y%2 == 0 {
			dst.SetColored(toCol(-1), y, LaneDotChar, ColorWall)
			dst.SetColored(toCol(1), y, LaneDotChar, ColorWall)
		}
	}

	// Obstacles
	for _, o := range g.obstacles {
		row, ok := toRow(o.Pos.Z)
		if !ok {
			continue
		}
		col := toCol(o.Pos.X)
		glyph, color := obstacleLook(o.Kind)
		dst.SetColored(col-1, row, glyph, color)
		dst.SetColored(col, row, glyph, color)
		dst.SetColored(col+1, row, glyph, color)
	}

	// Coins
	for _, c := range g.coins {
		row, ok := toRow(c.Pos.Z)
		if !ok {
			continue
		}
		frame := coinFrames[int(c.Spin/(math.Pi/2))%len(coinFrames)]
		dst.SetColored(toCol(c.Pos.X), row, frame, core.ColorBrightYellow)
	}

	// Player
	g.drawPlayer(dst, toCol, groundRow)

	// HUD
	state := g.State()
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", int(state.Score)))
	dst.DrawTextColored(16, 0, fmt.Sprintf(" %c %d ", coinFrames[0], state.Coins), core.ColorBrightYellow)
	speedText := fmt.Sprintf(" Spd: %.2f ", g.speed)
	dst.DrawText(w-len(speedText)-2, 0, speedText)

	switch {
	case g.phase == PhaseIdle:
		g.drawCenteredMessage(dst, "TEMPLE RUN", "A/D move  |  Space jump  |  Press Space to run")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.phase == PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", int(state.Score)))
	}
}

// ColorWall is the corridor edge color.
const ColorWall = core.ColorGray

// obstacleLook maps an obstacle kind to its glyph and color.
func obstacleLook(k ObstacleKind) (rune, core.Color) {
	switch k {
	case ObstacleLog:
		return LogChar, core.ColorOrange
	case ObstacleStatue:
		return StatueChar, core.ColorBrightCyan
	default:
		return RockChar, core.ColorGray
	}
}

// drawPlayer renders the runner, lifted by the jump arc with a ground shadow.
func (g *Game) drawPlayer(dst *core.Screen, toCol func(float64) int, groundRow int) {
	col := toCol(g.player.LateralPos())
	lift := int(math.Round(g.player.VerticalOffset()))

	if g.player.Jumping() {
		dst.SetColored(col, groundRow, ShadowChar, core.ColorGray)
	}
	dst.SetColored(col, groundRow-lift, PlayerBody, core.ColorBrightGreen)
	dst.SetColored(col, groundRow-lift-1, PlayerHead, core.ColorBrightGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
