// Package pager shows a text file in a scrollable viewport.
package pager

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/llehouerou/rove/internal/keymap"
	"github.com/llehouerou/rove/internal/ui"
	"github.com/llehouerou/rove/internal/ui/render"
)

// maxBytes bounds how much of a file is read.
const maxBytes = 1 << 20

const tabWidth = 4

// ErrBinary is returned for files that do not look like text.
var ErrBinary = errors.New("binary file")

// Model is an open pager.
type Model struct {
	ui.Panel
	path      string
	lines     []string
	truncated bool
	vp        viewport.Model
}

// Open reads path and returns a pager showing it.
func Open(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if bytes.IndexByte(data[:min(len(data), 8000)], 0) >= 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrBinary)
	}
	m := &Model{
		path: path,
		vp:   viewport.New(0, 0),
	}
	if len(data) > maxBytes {
		data = data[:maxBytes]
		m.truncated = true
	}
	m.lines = splitLines(string(data))
	m.vp.SetContent(strings.Join(m.lines, "\n"))
	return m, nil
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = render.Sanitize(strings.ReplaceAll(l, "\t", strings.Repeat(" ", tabWidth)))
	}
	return lines
}

// Path returns the file being shown.
func (m *Model) Path() string {
	return m.path
}

// Truncated reports whether only the start of the file was read.
func (m *Model) Truncated() bool {
	return m.truncated
}

// Lines returns the number of lines.
func (m *Model) Lines() int {
	return len(m.lines)
}

// Offset returns the first visible line.
func (m *Model) Offset() int {
	return m.vp.YOffset
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.Panel.SetSize(width, height)
	m.vp.Width = m.InnerWidth()
	m.vp.Height = m.BodyHeight()
	m.vp.SetYOffset(m.vp.YOffset)
}

// Scroll moves by the vertical part of d. Horizontal movement is ignored.
func (m *Model) Scroll(d keymap.Direction) {
	m.vp.SetYOffset(m.vp.YOffset + d.Down)
}

// Top shows line n (1-based) at the top; n <= 0 goes to the first line.
func (m *Model) Top(n int) {
	if n <= 0 {
		m.vp.GotoTop()
		return
	}
	m.vp.SetYOffset(n - 1)
}

// Bottom shows line n (1-based) at the top; n <= 0 goes to the end.
func (m *Model) Bottom(n int) {
	if n <= 0 {
		m.vp.GotoBottom()
		return
	}
	m.Top(n)
}

// HalfPages scrolls by n half screens; negative n scrolls up.
func (m *Model) HalfPages(n int) {
	m.vp.SetYOffset(m.vp.YOffset + n*max(m.vp.Height/2, 1))
}

// AtBottom reports whether the last line is visible.
func (m *Model) AtBottom() bool {
	return m.vp.AtBottom()
}

// Percent returns how far the view is scrolled, from 0 to 100.
func (m *Model) Percent() int {
	return int(m.vp.ScrollPercent() * 100)
}
