// internal/app/handlers_browser.go
package app

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/llehouerou/rove/internal/bindings"
	"github.com/llehouerou/rove/internal/browser"
	"github.com/llehouerou/rove/internal/errmsg"
	"github.com/llehouerou/rove/internal/keymap"
	"github.com/llehouerou/rove/internal/pager"
	"github.com/llehouerou/rove/internal/state"
)

var (
	errNoShortcut = errors.New("no such shortcut")
	errNoToggle   = errors.New("no such option")
	errNoSortKey  = errors.New("no such sort key")
	errNoMatch    = errors.New("no match")
)

// shortcuts are the directories reached with g<key>.
var shortcuts = map[rune]string{
	'h': "~",
	'/': "/",
	'e': "/etc",
	'u': "/usr",
	'd': "/dev",
	'm': "/media",
	'M': "/mnt",
	'o': "/opt",
	's': "/srv",
	'v': "/var",
	't': "/tmp",
}

// sortKeys maps the key typed after o to a sort order; upper case
// reverses it.
var sortKeys = map[rune]browser.SortKey{
	's': browser.SortSize,
	'b': browser.SortBasename,
	'n': browser.SortBasename,
	'm': browser.SortMtime,
	't': browser.SortType,
}

// match returns the first key captured by <any>.
func match(a keymap.Args) rune {
	if len(a.Matches) == 0 {
		return 0
	}
	return rune(a.Matches[0])
}

func (m *Model) browserMove(_ keymap.Args, d keymap.Direction) error {
	return fail(errmsg.OpDirEnter, m.browser.SelectedName(), m.browser.Move(d))
}

func (m *Model) browserTop(a keymap.Args) error {
	m.browser.MoveTo(a.N(1) - 1)
	return nil
}

func (m *Model) browserBottom(a keymap.Args) error {
	if a.HasQuant {
		m.browser.MoveTo(a.Quant - 1)
		return nil
	}
	m.browser.MoveTo(-1)
	return nil
}

func (m *Model) browserPercent(a keymap.Args) error {
	m.browser.MovePercent(a.N(50))
	return nil
}

func (m *Model) browserHalfPage(a keymap.Args, d keymap.Direction) error {
	m.browser.HalfPages(d.Mul(a.N(1)).Down)
	return nil
}

func (m *Model) browserParent(a keymap.Args) error {
	return fail(errmsg.OpDirEnter, "..", m.browser.Parent(a.N(1)))
}

// browserOpen enters the selected directory or shows the selected file.
func (m *Model) browserOpen(a keymap.Args) error {
	e, ok := m.browser.Selected()
	if !ok {
		return nil
	}
	if e.IsDir {
		return fail(errmsg.OpDirEnter, e.Name, m.browser.Enter())
	}
	return m.browserView(a)
}

func (m *Model) browserView(keymap.Args) error {
	e, ok := m.browser.Selected()
	if !ok || e.IsDir {
		return nil
	}
	p, err := pager.Open(e.Path)
	if err != nil {
		return fail(errmsg.OpFileView, e.Name, err)
	}
	m.pager = p
	m.buffers[bindings.Pager].Clear()
	m.resize()
	return nil
}

func (m *Model) browserGo(a keymap.Args) error {
	key := match(a)
	dir, ok := shortcuts[key]
	if !ok {
		return fail(errmsg.OpDirEnter, "g"+string(key), errNoShortcut)
	}
	return fail(errmsg.OpDirEnter, dir, m.browser.Cd(dir))
}

func (m *Model) browserToggle(a keymap.Args) error {
	switch key := match(a); key {
	case 'h', '.':
		m.browser.ToggleHidden()
	case 'd':
		m.browser.ToggleDirectoriesFirst()
	default:
		return fail(errmsg.OpKeyBinding, "t"+string(key), errNoToggle)
	}
	return nil
}

// browserSort changes the order: o<key> sorts by key (upper case
// reverses) and "or" flips the current direction.
func (m *Model) browserSort(a keymap.Args) error {
	key := match(a)
	opts := m.browser.Options()
	if key == 'r' {
		m.browser.SetSort(opts.Sort, !opts.Reverse)
		return nil
	}
	sortKey, ok := sortKeys[unicode.ToLower(key)]
	if !ok {
		return fail(errmsg.OpKeyBinding, "o"+string(key), errNoSortKey)
	}
	m.browser.SetSort(sortKey, unicode.IsUpper(key))
	return nil
}

func (m *Model) browserSortReverse(a keymap.Args) error {
	key := match(a)
	sortKey, ok := sortKeys[unicode.ToLower(key)]
	if !ok {
		return fail(errmsg.OpKeyBinding, "O"+string(key), errNoSortKey)
	}
	m.browser.SetSort(sortKey, true)
	return nil
}

func (m *Model) browserMark(a keymap.Args) error {
	m.browser.ToggleMark(a.N(1))
	return nil
}

func (m *Model) browserMarkAll(keymap.Args) error {
	m.browser.MarkAll()
	return nil
}

func (m *Model) browserUnmarkAll(keymap.Args) error {
	m.browser.UnmarkAll()
	return nil
}

func (m *Model) browserRefresh(keymap.Args) error {
	return fail(errmsg.OpDirRead, m.browser.Dir(), m.browser.Refresh())
}

func (m *Model) browserSearchNext(a keymap.Args) error {
	return m.searchNext(a.N(1))
}

func (m *Model) browserSearchPrev(a keymap.Args) error {
	return m.searchNext(-a.N(1))
}

func (m *Model) searchNext(n int) error {
	if !m.browser.SearchNext(n) {
		return fail(errmsg.OpEntryFind, "", errNoMatch)
	}
	return nil
}

func (m *Model) bookmarkSet(a keymap.Args) error {
	key := match(a)
	if err := m.state.SetBookmark(key, m.browser.Dir()); err != nil {
		return fail(errmsg.OpBookmarkSet, string(key), err)
	}
	m.flashInfo(fmt.Sprintf("Bookmark %c set to %s", key, m.browser.Dir()))
	return nil
}

func (m *Model) bookmarkJump(a keymap.Args) error {
	key := match(a)
	target, err := m.state.EnterBookmark(key, m.browser.Dir())
	if err != nil {
		return fail(errmsg.OpBookmarkJump, string(key), err)
	}
	return fail(errmsg.OpBookmarkJump, string(key), m.browser.Cd(target))
}

func (m *Model) bookmarkDelete(a keymap.Args) error {
	key := match(a)
	if err := m.state.DeleteBookmark(key); err != nil {
		return fail(errmsg.OpBookmarkDelete, string(key), err)
	}
	m.flashInfo(fmt.Sprintf("Bookmark %c deleted", key))
	return nil
}

// bookmarkKeys lists the keys holding a bookmark, for the status line.
func (m *Model) bookmarkKeys() string {
	list, err := m.state.Bookmarks()
	if err != nil {
		return ""
	}
	keys := make([]rune, 0, len(list))
	for _, b := range list {
		if b.Key != state.PreviousKey {
			keys = append(keys, b.Key)
		}
	}
	return string(keys)
}

func (m *Model) openConsole(initial string) func(keymap.Args) error {
	return func(keymap.Args) error {
		m.console.Open(":", initial)
		m.buffers[bindings.Console].Clear()
		return nil
	}
}

func (m *Model) openRename(keymap.Args) error {
	name := m.browser.SelectedName()
	if name == "" {
		return nil
	}
	return m.openConsole("rename " + name)(keymap.Args{})
}

func (m *Model) openFilter(keymap.Args) error {
	return m.openConsole("filter " + m.browser.Filter())(keymap.Args{})
}

func (m *Model) quitHandler(keymap.Args) error {
	m.quit()
	return nil
}
