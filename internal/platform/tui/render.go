package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// palette holds the ANSI code of each core.Color. Bright colors render bold.
var palette = [...]struct {
	code string
	bold bool
}{
	core.ColorDefault:       {"", false},
	core.ColorRed:           {"1", false},
	core.ColorGreen:         {"2", false},
	core.ColorYellow:        {"3", false},
	core.ColorBlue:          {"4", false},
	core.ColorMagenta:       {"5", false},
	core.ColorCyan:          {"6", false},
	core.ColorWhite:         {"7", false},
	core.ColorBrightRed:     {"9", true},
	core.ColorBrightGreen:   {"10", true},
	core.ColorBrightYellow:  {"11", true},
	core.ColorBrightBlue:    {"12", true},
	core.ColorBrightMagenta: {"13", true},
	core.ColorBrightCyan:    {"14", true},
	core.ColorBrightWhite:   {"15", true},
	core.ColorOrange:        {"208", false},
	core.ColorGray:          {"245", false},
}

var colorStyles = newColorStyles()

func newColorStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(palette))
	for c, p := range palette {
		st := lipgloss.NewStyle()
		if p.code != "" {
			st = st.Foreground(lipgloss.Color(p.code))
		}
		styles[c] = st.Bold(p.bold)
	}
	return styles
}

func styleOf(c core.Color) lipgloss.Style {
	if int(c) < len(colorStyles) {
		return colorStyles[c]
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells sharing a color are styled together.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		run = run[:0]
		color := s.GetCell(0, y).Color
		for x, w := 0, s.Width(); x < w; x++ {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				sb.WriteString(styleOf(color).Render(string(run)))
				run = run[:0]
				color = cell.Color
			}
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(styleOf(color).Render(string(run)))
		}
	}
	return sb.String()
}
