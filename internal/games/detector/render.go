package detector

import (
	"fmt"
	"math"

	"github.com/vovakirdan/detector-run/internal/core"
)

// Visual characters for rendering
const (
	GrassChar = '▀'
	SoilChar  = '░'
)

// hudMargin keeps HUD text off the viewport's right edge.
const hudMargin = 2

// Render draws the current frame. World units are mapped to cells through
// the configured cell size; anything outside the surface is clipped.
func (g *Game) Render(dst core.Surface) {
	dst.Clear()

	cols := g.cols(g.viewW)
	groundRow := g.rows(g.ground)

	dst.FillRect(core.NewRect(0, 0, cols, groundRow), ' ', core.ColorBlue)
	dst.FillRect(core.NewRect(0, groundRow, cols, 1), GrassChar, core.ColorGreen)
	dst.FillRect(core.NewRect(0, groundRow+1, cols, dst.Height()-groundRow-1), SoilChar, core.ColorBrown)

	for _, it := range g.items {
		sp := g.sprites.Hazard
		if it.Kind == KindBonus {
			sp = g.sprites.Bonus
		}
		dst.DrawSprite(sp, g.toCells(it.Box()))
	}
	dst.DrawSprite(g.sprites.Detector, g.toCells(g.body.Box()))

	switch {
	case !g.state.Playing():
		dst.Dim()
		g.drawPanel(dst, cols, []panelLine{
			{"Game Over!", core.ColorBrightYellow},
			{"", core.ColorDefault},
			{"Tap/Press Space to restart", core.ColorWhite},
			{fmt.Sprintf("Final Score: %d", g.state.Score), core.ColorWhite},
		})
	case g.paused:
		g.drawPanel(dst, cols, []panelLine{
			{"PAUSED", core.ColorBrightYellow},
			{"Press P to resume", core.ColorWhite},
		})
	}

	g.drawHUD(dst, cols)
}

// drawHUD writes score and lives right-aligned at the top of the viewport.
func (g *Game) drawHUD(dst core.Surface, cols int) {
	lines := []string{
		fmt.Sprintf("Score: %d", g.state.Score),
		fmt.Sprintf("Lives: %d", g.state.Lives),
	}
	if g.ramp.IsEnabled() {
		lines = append(lines, fmt.Sprintf("Spd: %.1f", g.state.Speed))
	}
	for i, line := range lines {
		dst.DrawText(core.Clamp(cols-len(line)-hudMargin, 0, cols), i, line, core.ColorWhite)
	}
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel frames lines in a box centered on the viewport.
func (g *Game) drawPanel(dst core.Surface, cols int, lines []panelLine) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l.text))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = core.Clamp((cols-box.W)/2, 0, cols)
	box.Y = core.Clamp((dst.Height()-box.H)/2, 0, dst.Height())

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		g.drawCentered(dst, cols, box.Y+1+i, l.text, l.color)
	}
}

func (g *Game) drawCentered(dst core.Surface, cols, y int, text string, color core.Color) {
	dst.DrawText(core.Clamp((cols-len(text))/2, 0, cols), y, text, color)
}

func (g *Game) toCells(b core.Box) core.Rect {
	return b.Scale(g.cfg.Viewport.CellWidth, g.cfg.Viewport.CellHeight)
}

func (g *Game) cols(w float64) int {
	return int(math.Round(w / g.cfg.Viewport.CellWidth))
}

func (g *Game) rows(h float64) int {
	return int(math.Round(h / g.cfg.Viewport.CellHeight))
}
