package powerup

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/powerup-arcade/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	ShieldChar    = '▓'
	LetterboxChar = '░'
)

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

// watermark is drawn in the bottom right corner of the field.
const watermark = "Made by Anagh Barnwal"

// Layout maps field units onto screen cells. The field keeps its aspect
// ratio and is centered; the remaining cells are letterbox bars.
type Layout struct {
	Field  core.Rect // Screen cells covered by the field
	ScaleX float64   // Columns per field unit
	ScaleY float64   // Rows per field unit
}

// FitField computes the letterboxed layout of a fieldW×fieldH field on a
// screenW×screenH terminal. One cell is reserved on each side for the border.
func FitField(fieldW, fieldH float64, screenW, screenH int) Layout {
	availW := float64(max(screenW-2, 0))
	availH := float64(max(screenH-2, 0))

	scale := math.Min(availW/fieldW, availH*cellAspect/fieldH)
	cols := cellFloor(fieldW * scale)
	rows := cellFloor(fieldH * scale / cellAspect)

	return Layout{
		Field:  core.NewRect((screenW-cols)/2, (screenH-rows)/2, cols, rows),
		ScaleX: scale,
		ScaleY: scale / cellAspect,
	}
}

// ToCells converts a field box to the screen cells it covers, clipped to the
// field. Boxes fully outside the field produce an empty rect.
func (l Layout) ToCells(b core.Box) core.Rect {
	x0 := l.Field.X + cellFloor(b.X*l.ScaleX)
	y0 := l.Field.Y + cellFloor(b.Y*l.ScaleY)
	x1 := l.Field.X + cellCeil(b.Right()*l.ScaleX)
	y1 := l.Field.Y + cellCeil(b.Bottom()*l.ScaleY)

	// Every visible entity covers at least one cell.
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = max(x0, l.Field.X)
	y0 = max(y0, l.Field.Y)
	x1 = min(x1, l.Field.Right())
	y1 = min(y1, l.Field.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// cellEpsilon absorbs float error so exact multiples land on cell edges.
const cellEpsilon = 1e-9

func cellFloor(v float64) int {
	return int(math.Floor(v + cellEpsilon))
}

func cellCeil(v float64) int {
	return int(math.Ceil(v - cellEpsilon))
}

// Render draws the current screen of the game.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < 24 || dst.Height() < 10 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	switch g.phase {
	case PhaseStart:
		g.renderTitle(dst)
	case PhaseSettings:
		g.renderSettings(dst)
	case PhasePlaying:
		g.renderField(dst)
	case PhaseGameOver:
		g.renderField(dst)
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Level: %d  Survived: %.0fs", int(g.player.Score), g.level, g.elapsed),
			"R/Enter to play again  |  Q to quit")
	}
}

func (g *Game) renderTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "P O W E R - U P   G A M E", core.ColorBrightBlue)
	dst.DrawTextCentered(mid-1, "ENTER to Start", core.ColorWhite)
	dst.DrawTextCentered(mid+1, "A/D or arrows to move, or steer with the mouse", core.ColorGray)
	dst.DrawTextCentered(mid+2, "ESC in game opens settings  |  Tab scores  |  Q quit", core.ColorGray)
}

func (g *Game) renderSettings(dst *core.Screen) {
	mid := dst.Height() / 2
	preset := string(g.preset)
	if preset == "" {
		preset = "default"
	}
	progression := "off"
	if g.difficulty.IsEnabled() {
		progression = fmt.Sprintf("every %.0f points", g.cfg.Level.PointsPerLevel)
	}

	dst.DrawTextCentered(mid-4, "SETTINGS", core.ColorBrightBlue)
	dst.DrawTextCentered(mid-2, fmt.Sprintf("Difficulty: %s", preset), core.ColorWhite)
	dst.DrawTextCentered(mid-1, fmt.Sprintf("Start level: %d   Level up: %s", g.cfg.Level.StartLevel, progression), core.ColorWhite)
	dst.DrawTextCentered(mid, fmt.Sprintf("Start health: %d", g.cfg.Player.StartHealth), core.ColorWhite)
	dst.DrawTextCentered(mid+2, "ESC to return", core.ColorGray)
}

// renderField draws the letterboxed playfield with all entities and the HUD.
func (g *Game) renderField(dst *core.Screen) {
	layout := FitField(g.cfg.Field.Width, g.cfg.Field.Height, dst.Width(), dst.Height())
	field := layout.Field

	// Letterbox bars
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if x < field.X-1 || x > field.Right() || y < field.Y-1 || y > field.Bottom() {
				dst.SetColor(x, y, LetterboxChar, core.ColorGray)
			}
		}
	}
	dst.DrawBox(core.NewRect(field.X-1, field.Y-1, field.W+2, field.H+2), core.ColorGray)

	for _, e := range g.enemies.Enemies() {
		r := layout.ToCells(core.Square(e.X, e.Y, g.enemies.Size()))
		dst.DrawRect(r, e.Pattern.Glyph(), e.Pattern.Color())
	}
	for _, p := range g.powerups.PowerUps() {
		r := layout.ToCells(core.Square(p.X, p.Y, g.powerups.Size()))
		dst.DrawRect(r, p.Kind.Glyph(), p.Kind.Color())
	}

	playerGlyph, playerColor := PlayerChar, core.ColorBlue
	if g.player.Shield {
		playerGlyph, playerColor = ShieldChar, core.ColorCyan
	}
	dst.DrawRect(layout.ToCells(g.player.Rect()), playerGlyph, playerColor)

	g.drawHUD(dst, field)
}

func (g *Game) drawHUD(dst *core.Screen, field core.Rect) {
	x, y := field.X+1, field.Y
	lines := []string{
		fmt.Sprintf("HP: %d", g.player.Health),
		fmt.Sprintf("Score: %d", int(g.player.Score)),
		fmt.Sprintf("Level: %d", g.level),
		fmt.Sprintf("FPS: %.0f", g.fps),
	}
	if fx := g.effectsText(); fx != "" {
		lines = append(lines, fx)
	}
	for i, line := range lines {
		if y+i >= field.Bottom() {
			break
		}
		dst.DrawTextColor(x, y+i, line, core.ColorWhite)
	}

	wx := field.Right() - len(watermark) - 1
	if wx > x {
		dst.DrawTextColor(wx, field.Bottom()-1, watermark, core.ColorGray)
	}
}

// effectsText lists the active timed effects with their remaining seconds.
func (g *Game) effectsText() string {
	var parts []string
	if g.player.SpeedBoost {
		parts = append(parts, fmt.Sprintf("SPEED %.1fs", g.player.SpeedTimer))
	}
	if g.player.Shield {
		parts = append(parts, fmt.Sprintf("SHIELD %.1fs", g.player.ShieldTimer))
	}
	return strings.Join(parts, "  ")
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorRed)
	for i, l := range lines {
		dst.DrawTextColor(boxX+(boxW-len(l))/2, boxY+3+i, l, core.ColorWhite)
	}
}
