package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/detector-run/internal/core"
)

// palette maps core colors to terminal colors.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightCyan:   lipgloss.Color("14"),
	core.ColorOrange:       lipgloss.Color("208"),
	core.ColorBrown:        lipgloss.Color("130"),
	core.ColorGray:         lipgloss.Color("245"),
}

// A colored blank is drawn as a filled cell, everything else as a
// colored glyph.
var (
	glyphStyles = map[core.Color]lipgloss.Style{}
	fillStyles  = map[core.Color]lipgloss.Style{}
)

func init() {
	for c, tc := range palette {
		glyphStyles[c] = lipgloss.NewStyle().Foreground(tc)
		fillStyles[c] = lipgloss.NewStyle().Background(tc)
	}
}

// runKey identifies cells that can share one escape sequence.
type runKey struct {
	color core.Color
	fill  bool
}

func keyOf(c core.Cell) runKey {
	return runKey{color: c.Color, fill: c.Rune == ' '}
}

func styleFor(k runKey) lipgloss.Style {
	styles := glyphStyles
	if k.fill {
		styles = fillStyles
	}
	if style, ok := styles[k.color]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same style are grouped into a single run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := keyOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if keyOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
