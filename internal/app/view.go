// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/llehouerou/rove/internal/bindings"
	"github.com/llehouerou/rove/internal/ui/render"
	"github.com/llehouerou/rove/internal/ui/styles"
)

// View renders the application UI.
func (m *Model) View() string {
	if m.quitting || m.width == 0 {
		return ""
	}

	if m.pager != nil {
		return m.pager.View() + "\n" + m.statusLine()
	}
	bottom := m.statusLine()
	if m.console.IsOpen() {
		bottom = m.console.View(m.width)
	}
	return m.browser.View() + "\n" + bottom
}

// statusLine shows, by priority, the chord being typed, a flash message,
// or details of the selected entry, with the position on the right.
func (m *Model) statusLine() string {
	s := styles.T().S()

	right := ""
	if m.pager == nil {
		right = m.position()
	}
	leftWidth := max(m.width-len(right)-1, 0)

	var left string
	pending := m.buffers[m.context()].String()
	switch {
	case pending != "":
		left = s.Keys.Render(render.Truncate(pending+m.pendingHint(pending), leftWidth))
	case m.flash != "":
		style := s.Success
		if m.flashErr {
			style = s.Error
		}
		left = style.Render(render.Truncate(m.flash, leftWidth))
	case m.pager == nil:
		left = s.Muted.Render(render.Truncate(m.browser.Info(), leftWidth))
	default:
		left = s.Muted.Render(render.Truncate(m.closeHint(), leftWidth))
	}

	return render.PadStyled(render.Row(left, s.Subtle.Render(right), m.width), m.width)
}

// pendingHint lists the bookmark keys while a bookmark chord is pending.
func (m *Model) pendingHint(pending string) string {
	switch pending {
	case "`", "'", "m", "um":
		if keys := m.bookmarkKeys(); keys != "" {
			return "  bookmarks: " + keys
		}
	}
	return ""
}

// closeHint names the keys that close the pager.
func (m *Model) closeHint() string {
	keys := m.bindings.KeysFor(bindings.Pager, bindings.ActionClose)
	if len(keys) == 0 {
		return ""
	}
	return strings.Join(keys, "/") + " close"
}

// position shows the cursor index and the sort order.
func (m *Model) position() string {
	opts := m.browser.Options()
	order := string(opts.Sort)
	if opts.Reverse {
		order += " rev"
	}
	total := len(m.browser.Entries())
	current := 0
	if total > 0 {
		current = m.browser.Cursor() + 1
	}
	return fmt.Sprintf("%d/%d %s", current, total, order)
}
