package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rove/internal/ui/render"
	"github.com/llehouerou/rove/internal/ui/styles"
)

func cursorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Reverse(true)
}

// View renders the prompt and the line on one row of width cells, with
// the cursor drawn in reverse video.
func (m *Model) View(width int) string {
	if !m.open {
		return ""
	}
	s := styles.T().S()

	before := string(m.line[:m.pos])
	under := " "
	after := ""
	if m.pos < len(m.line) {
		under = string(m.line[m.pos])
		after = string(m.line[m.pos+1:])
	}
	line := s.Keys.Render(m.Prompt()) +
		s.Base.Render(render.Sanitize(before)) +
		cursorStyle().Render(render.Sanitize(under)) +
		s.Base.Render(render.Sanitize(after))
	return render.PadStyled(render.TruncateLeft(line, width), width)
}
