package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/echo-arena/internal/core"
)

// Styles maps core.Color to lipgloss styles for one renderer. SSH sessions
// get their own renderer so color detection follows the remote terminal.
type Styles struct {
	colors map[core.Color]lipgloss.Style
}

// NewStyles builds styles for the given renderer.
func NewStyles(r *lipgloss.Renderer) *Styles {
	s := &Styles{
		colors: make(map[core.Color]lipgloss.Style),
	}
	for c := core.ColorDefault; c <= core.ColorPurple; c++ {
		style := r.NewStyle()
		if code := c.ANSI(); code >= 0 {
			style = style.Foreground(lipgloss.Color(strconv.Itoa(code)))
		}
		s.colors[c] = style
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (st *Styles) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := st.colors[startColor]
			if !ok {
				style = st.colors[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
