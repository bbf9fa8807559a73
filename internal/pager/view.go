package pager

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/llehouerou/rove/internal/ui/render"
	"github.com/llehouerou/rove/internal/ui/styles"
)

// View renders the file panel.
func (m *Model) View() string {
	if m.Width() == 0 {
		return ""
	}
	innerWidth := m.InnerWidth()
	s := styles.T().S()

	position := fmt.Sprintf("%d/%d %3d%%", min(m.Offset()+1, m.Lines()), m.Lines(), m.Percent())
	if m.Truncated() {
		position = "[truncated] " + position
	}
	title := render.TruncateLeft(render.Sanitize(filepath.Base(m.path)), max(innerWidth-len(position)-1, 1))
	header := render.Row(s.Title.Render(title), s.Muted.Render(position), innerWidth)

	body := strings.Split(m.vp.View(), "\n")
	for i, line := range body {
		body[i] = render.PadStyled(line, innerWidth)
	}
	lines := append([]string{header, render.Separator(innerWidth)}, body...)
	return styles.PanelStyle(true).Width(innerWidth).Render(strings.Join(lines, "\n"))
}
