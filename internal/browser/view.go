package browser

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/rove/internal/ui"
	"github.com/llehouerou/rove/internal/ui/render"
	"github.com/llehouerou/rove/internal/ui/styles"
)

// sizeWidth is the width of the right-hand size column.
const sizeWidth = 8

// View renders the listing panel.
func (m *Model) View() string {
	if m.Width() == 0 {
		return ""
	}
	innerWidth := m.InnerWidth()
	s := styles.T().S()

	header := m.dir
	if m.filter != "" {
		header += " [" + m.filter + "]"
	}
	lines := []string{
		styles.Gradient(render.TruncateLeft(render.Sanitize(header), innerWidth), styles.T().Primary, styles.T().Secondary),
		render.Separator(innerWidth),
	}

	height := m.listHeight()
	start, end := m.cursor.VisibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, m.renderEntry(m.entries[i], i == m.cursor.Pos(), innerWidth))
	}
	if len(m.entries) == 0 {
		lines = append(lines, s.Subtle.Render(render.Pad("  empty", innerWidth)))
	}
	for len(lines) < height+ui.HeaderHeight {
		lines = append(lines, render.Pad("", innerWidth))
	}

	return styles.PanelStyle(m.Focused()).Width(innerWidth).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderEntry(e Entry, selected bool, width int) string {
	s := styles.T().S()

	mark := "  "
	if m.IsMarked(e) {
		mark = "* "
	}
	name := render.Sanitize(e.Name)
	size := ""
	if e.IsDir {
		name += "/"
	} else {
		size = humanize.IBytes(uint64(max(e.Size, 0)))
	}
	nameWidth := max(width-len(mark)-sizeWidth-1, 1)
	line := mark + render.TruncateAndPad(name, nameWidth) + " " + padLeft(size, sizeWidth)

	var style lipgloss.Style
	switch {
	case m.IsMarked(e):
		style = s.Marked
	case e.IsDir:
		style = s.Directory
	default:
		style = s.Base
	}
	if selected {
		style = style.Background(styles.T().BgCursor)
	}
	return style.Render(line)
}

func padLeft(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// Info describes the selected entry for the status line: mode, size and
// age.
func (m *Model) Info() string {
	e, ok := m.Selected()
	if !ok {
		return ""
	}
	parts := []string{e.Mode.String()}
	if !e.IsDir {
		parts = append(parts, humanize.IBytes(uint64(max(e.Size, 0))))
	}
	if !e.ModTime.IsZero() {
		parts = append(parts, humanize.Time(e.ModTime))
	}
	if marked := len(m.marked); marked > 0 {
		parts = append(parts, humanize.Comma(int64(marked))+" marked")
	}
	return strings.Join(parts, "  ")
}
