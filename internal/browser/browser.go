// Package browser models the directory listing: the entries of one
// directory, their order and filter, the cursor and the marks.
package browser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/llehouerou/rove/internal/keymap"
	"github.com/llehouerou/rove/internal/ui"
	"github.com/llehouerou/rove/internal/ui/cursor"
)

// ErrNotDir is returned when entering something that is not a directory.
var ErrNotDir = errors.New("not a directory")

// Options controls which entries are listed and in which order.
type Options struct {
	ShowHidden       bool
	DirectoriesFirst bool
	Sort             SortKey
	Reverse          bool
	ScrollMargin     int
}

// Model is the browser state for the current directory.
type Model struct {
	ui.Panel
	dir     string
	all     []Entry
	entries []Entry
	cursor  cursor.Cursor
	opts    Options
	marked  map[string]struct{}
	filter  string
	search  string

	// selection remembered per directory, restored on return
	lastSelected map[string]string
}

// New lists dir and returns a browser on it.
func New(dir string, opts Options) (*Model, error) {
	if opts.Sort == "" {
		opts.Sort = SortBasename
	}
	m := &Model{
		cursor:       cursor.New(opts.ScrollMargin),
		opts:         opts,
		marked:       make(map[string]struct{}),
		lastSelected: make(map[string]string),
	}
	if err := m.Cd(dir); err != nil {
		return nil, err
	}
	return m, nil
}

// Dir returns the absolute path of the listed directory.
func (m *Model) Dir() string {
	return m.dir
}

// Entries returns the visible entries in display order.
func (m *Model) Entries() []Entry {
	return m.entries
}

// Options returns the current listing options.
func (m *Model) Options() Options {
	return m.opts
}

// SetScrollMargin changes how many entries stay visible around the
// cursor.
func (m *Model) SetScrollMargin(margin int) {
	if margin == m.cursor.Margin() {
		return
	}
	m.opts.ScrollMargin = margin
	m.cursor.SetMargin(margin)
}

// Cursor returns the index of the selected entry.
func (m *Model) Cursor() int {
	return m.cursor.Pos()
}

// Selected returns the entry under the cursor.
func (m *Model) Selected() (Entry, bool) {
	if len(m.entries) == 0 {
		return Entry{}, false
	}
	return m.entries[m.cursor.Pos()], true
}

// SelectedName returns the name of the entry under the cursor, or "".
func (m *Model) SelectedName() string {
	if e, ok := m.Selected(); ok {
		return e.Name
	}
	return ""
}

// SetSize sets the panel dimensions and resizes the scroll window.
func (m *Model) SetSize(width, height int) {
	m.Panel.SetSize(width, height)
	m.cursor.SetBounds(len(m.entries), m.listHeight())
}

func (m *Model) listHeight() int {
	return m.BodyHeight()
}

// Move applies a direction: Down moves the cursor, a positive Right
// enters the selected directory and a negative Right goes up.
func (m *Model) Move(d keymap.Direction) error {
	if d.Down != 0 {
		m.cursor.Move(d.Down)
	}
	switch {
	case d.Right > 0:
		return m.Enter()
	case d.Right < 0:
		return m.Parent(-d.Right)
	}
	return nil
}

// MoveTo jumps to index. Negative indices count from the end, so -1 is
// the last entry.
func (m *Model) MoveTo(index int) {
	if index < 0 {
		m.cursor.JumpFromEnd(-index)
		return
	}
	m.cursor.Jump(index)
}

// MovePercent jumps to percent of the listing.
func (m *Model) MovePercent(percent int) {
	m.cursor.JumpPercent(percent)
}

// HalfPages moves by n half screens.
func (m *Model) HalfPages(n int) {
	m.cursor.HalfPages(n)
}

// Select moves the cursor to the entry called name.
func (m *Model) Select(name string) bool {
	for i, e := range m.entries {
		if e.Name == name {
			m.cursor.Jump(i)
			return true
		}
	}
	return false
}

// Enter changes into the selected directory.
func (m *Model) Enter() error {
	e, ok := m.Selected()
	if !ok {
		return nil
	}
	if !e.IsDir {
		return fmt.Errorf("%s: %w", e.Name, ErrNotDir)
	}
	return m.Cd(e.Path)
}

// Parent goes up n levels and selects the directory it came from.
func (m *Model) Parent(n int) error {
	target := m.dir
	for range max(n, 1) {
		target = filepath.Dir(target)
	}
	return m.Cd(target)
}

// Cd lists path. A relative path is taken from the current directory and
// a leading ~ is expanded. When moving up, the directory that was left is
// selected; otherwise the selection last used in path is restored.
func (m *Model) Cd(path string) error {
	path = m.resolve(path)
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotDir)
	}
	all, err := ListDir(path)
	if err != nil {
		return err
	}

	prev := m.dir
	if prev != "" {
		m.lastSelected[prev] = m.SelectedName()
	}
	m.dir = path
	m.all = all
	m.filter = ""
	clear(m.marked)
	m.cursor.Reset()
	m.rebuild()

	if child, ok := childOf(path, prev); ok {
		m.Select(child)
	} else if name := m.lastSelected[path]; name != "" {
		m.Select(name)
	}
	return nil
}

// childOf returns the first path component of descendant below dir.
func childOf(dir, descendant string) (string, bool) {
	if descendant == "" {
		return "", false
	}
	rel, err := filepath.Rel(dir, descendant)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	first, _, _ := strings.Cut(rel, string(filepath.Separator))
	return first, true
}

func (m *Model) resolve(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	if !filepath.IsAbs(path) && m.dir != "" {
		path = filepath.Join(m.dir, path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path
}

// Refresh re-reads the directory, keeping the selection and the marks of
// entries that still exist.
func (m *Model) Refresh() error {
	all, err := ListDir(m.dir)
	if err != nil {
		return err
	}
	m.all = all
	m.keepSelection(m.rebuild)

	names := make(map[string]struct{}, len(all))
	for _, e := range all {
		names[e.Path] = struct{}{}
	}
	for path := range m.marked {
		if _, ok := names[path]; !ok {
			delete(m.marked, path)
		}
	}
	return nil
}

// keepSelection runs fn and then reselects the entry that was selected
// before, if it is still listed.
func (m *Model) keepSelection(fn func()) {
	name := m.SelectedName()
	fn()
	if name != "" {
		m.Select(name)
	}
}

// rebuild recomputes the visible entries from the full listing.
func (m *Model) rebuild() {
	filter := strings.ToLower(m.filter)
	visible := make([]Entry, 0, len(m.all))
	for _, e := range m.all {
		if !m.opts.ShowHidden && e.Hidden() {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(e.Name), filter) {
			continue
		}
		visible = append(visible, e)
	}
	sortEntries(visible, m.opts.Sort, m.opts.Reverse, m.opts.DirectoriesFirst)
	m.entries = visible
	m.cursor.SetBounds(len(m.entries), m.listHeight())
}

// SetShowHidden shows or hides dot files.
func (m *Model) SetShowHidden(show bool) {
	m.opts.ShowHidden = show
	m.keepSelection(m.rebuild)
}

// ToggleHidden flips the visibility of dot files.
func (m *Model) ToggleHidden() {
	m.SetShowHidden(!m.opts.ShowHidden)
}

// ToggleDirectoriesFirst flips grouping of directories before files.
func (m *Model) ToggleDirectoriesFirst() {
	m.opts.DirectoriesFirst = !m.opts.DirectoriesFirst
	m.keepSelection(m.rebuild)
}

// SetSort changes the sort key and direction.
func (m *Model) SetSort(key SortKey, reverse bool) {
	m.opts.Sort = key
	m.opts.Reverse = reverse
	m.keepSelection(m.rebuild)
}

// Filter returns the active name filter.
func (m *Model) Filter() string {
	return m.filter
}

// SetFilter lists only entries whose name contains s, ignoring case. An
// empty s removes the filter.
func (m *Model) SetFilter(s string) {
	m.filter = s
	m.keepSelection(m.rebuild)
}

// IsMarked reports whether e is marked.
func (m *Model) IsMarked(e Entry) bool {
	_, ok := m.marked[e.Path]
	return ok
}

// ToggleMark toggles the mark of n entries starting at the cursor, then
// moves the cursor past them.
func (m *Model) ToggleMark(n int) {
	if len(m.entries) == 0 {
		return
	}
	n = max(n, 1)
	start := m.cursor.Pos()
	for i := start; i < min(start+n, len(m.entries)); i++ {
		m.toggle(m.entries[i])
	}
	m.cursor.Move(n)
}

func (m *Model) toggle(e Entry) {
	if m.IsMarked(e) {
		delete(m.marked, e.Path)
		return
	}
	m.marked[e.Path] = struct{}{}
}

// MarkAll toggles the mark of every visible entry.
func (m *Model) MarkAll() {
	for _, e := range m.entries {
		m.toggle(e)
	}
}

// UnmarkAll clears every mark.
func (m *Model) UnmarkAll() {
	clear(m.marked)
}

// Marked returns the marked entries in display order.
func (m *Model) Marked() []Entry {
	var out []Entry
	for _, e := range m.entries {
		if m.IsMarked(e) {
			out = append(out, e)
		}
	}
	return out
}

// Find selects the first entry after the cursor whose name contains s,
// wrapping around, and remembers s for SearchNext.
func (m *Model) Find(s string) bool {
	m.search = strings.ToLower(s)
	if m.search == "" {
		return false
	}
	if e, ok := m.Selected(); ok && strings.Contains(strings.ToLower(e.Name), m.search) {
		return true
	}
	return m.SearchNext(1)
}

// SearchNext moves to the nth next match of the last search. A negative
// n searches backward.
func (m *Model) SearchNext(n int) bool {
	if m.search == "" || len(m.entries) == 0 {
		return false
	}
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	count := len(m.entries)
	pos := m.cursor.Pos()
	found := false
	for range max(n, 1) {
		next, ok := m.nextMatch(pos, step, count)
		if !ok {
			break
		}
		pos, found = next, true
	}
	if found {
		m.cursor.Jump(pos)
	}
	return found
}

func (m *Model) nextMatch(from, step, count int) (int, bool) {
	for i := 1; i <= count; i++ {
		idx := ((from+i*step)%count + count) % count
		if strings.Contains(strings.ToLower(m.entries[idx].Name), m.search) {
			return idx, true
		}
	}
	return 0, false
}
