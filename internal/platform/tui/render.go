package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("#CC6666")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("#66CC66")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6666CC")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCC66")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("#CC66CC")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("#66CCCC")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("#DAAA00")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// helpStyle frames the key help footer.
var helpStyle = lipgloss.NewStyle().PaddingLeft(1)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
