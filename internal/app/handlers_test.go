// internal/app/handlers_test.go
package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/rove/internal/bindings"
	"github.com/llehouerou/rove/internal/browser"
	"github.com/llehouerou/rove/internal/state"
)

func TestBrowser_Movement(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want string
	}{
		{"down", "j", "beta"},
		{"down with count", "2j", "a.go"},
		{"count clamps", "9j", "b.txt"},
		{"up", "3jk", "a.go"},
		{"bottom", "G", "b.txt"},
		{"top", "Ggg", "alpha"},
		{"nth entry", "3gg", "a.go"},
		{"nth from G", "2G", "beta"},
		{"percent", "100%", "b.txt"},
		{"half page", "J", "b.txt"},
		{"huge count", "99999999999999999999j", "b.txt"},
		{"huge count up", "G4611686018427387904k", "alpha"},
		{"huge half page", "999999999999999999997J", "b.txt"},
		{"huge half page up", "G999999999999999999997K", "alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestModel(t)
			typeKeys(m, tt.keys)
			assert.Equal(t, tt.want, m.Browser().SelectedName())
			assert.Empty(t, m.flash)
		})
	}
}

func TestBrowser_ArrowKeys(t *testing.T) {
	m, _, _ := newTestModel(t)
	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	assert.Equal(t, "a.go", m.Browser().SelectedName())
	press(m, tea.KeyUp)
	assert.Equal(t, "beta", m.Browser().SelectedName())
}

func TestBrowser_EnterAndLeave(t *testing.T) {
	m, mock, root := newTestModel(t)

	typeKeys(m, "l")
	assert.Equal(t, filepath.Join(root, "alpha"), m.Browser().Dir())

	nav, _ := mock.GetNavigation()
	require.NotNil(t, nav)
	assert.Equal(t, filepath.Join(root, "alpha"), nav.CurrentPath, "navigation is saved after a browser binding")

	typeKeys(m, "h")
	assert.Equal(t, root, m.Browser().Dir())
	assert.Equal(t, "alpha", m.Browser().SelectedName())

	press(m, tea.KeyRight)
	press(m, tea.KeyBackspace)
	assert.Equal(t, root, m.Browser().Dir())
}

func TestBrowser_EnterFileFails(t *testing.T) {
	m, _, _ := newTestModel(t)
	typeKeys(m, "Gl")

	assert.True(t, m.flashErr)
	assert.Contains(t, m.flash, "enter directory")
	assert.Contains(t, m.flash, browser.ErrNotDir.Error())
}

func TestBrowser_PendingChord(t *testing.T) {
	m, _, _ := newTestModel(t)

	typeKeys(m, "2g")
	assert.Equal(t, "2g", m.buffers[bindings.Browser].String())
	assert.Contains(t, m.statusLine(), "2g")

	press(m, tea.KeyEscape)
	assert.True(t, m.buffers[bindings.Browser].Empty())
	assert.Empty(t, m.flash, "escape on a pending chord is silent")

	press(m, tea.KeyEscape)
	assert.Empty(t, m.flash, "escape is silent when unbound")
}

func TestBrowser_NoSuchBinding(t *testing.T) {
	m, _, _ := newTestModel(t)
	typeKeys(m, "x")
	assert.True(t, m.flashErr)
	assert.Contains(t, m.flash, "no such binding")
	assert.True(t, m.buffers[bindings.Browser].Empty())
}

func TestBrowser_GoShortcut(t *testing.T) {
	m, _, _ := newTestModel(t)

	typeKeys(m, "g/")
	assert.Equal(t, "/", m.Browser().Dir())

	typeKeys(m, "gQ")
	assert.True(t, m.flashErr)
	assert.Contains(t, m.flash, "no such shortcut")
}

func TestBrowser_SortAndToggle(t *testing.T) {
	m, _, _ := newTestModel(t)

	typeKeys(m, "os")
	assert.Equal(t, browser.SortSize, m.Browser().Options().Sort)
	assert.False(t, m.Browser().Options().Reverse)

	typeKeys(m, "oM")
	assert.Equal(t, browser.SortMtime, m.Browser().Options().Sort)
	assert.True(t, m.Browser().Options().Reverse)

	typeKeys(m, "or")
	assert.False(t, m.Browser().Options().Reverse)

	typeKeys(m, "Ob")
	assert.Equal(t, browser.SortBasename, m.Browser().Options().Sort)
	assert.True(t, m.Browser().Options().Reverse)

	typeKeys(m, "oz")
	assert.Contains(t, m.flash, "no such sort key")

	typeKeys(m, "th")
	assert.True(t, m.Browser().Options().ShowHidden)
	assert.Len(t, m.Browser().Entries(), 5)

	typeKeys(m, "td")
	assert.False(t, m.Browser().Options().DirectoriesFirst)
}

func TestBrowser_Marks(t *testing.T) {
	m, _, _ := newTestModel(t)

	typeKeys(m, "2 ")
	assert.Len(t, m.Browser().Marked(), 2)
	assert.Equal(t, "a.go", m.Browser().SelectedName())

	press(m, tea.KeySpace)
	assert.Len(t, m.Browser().Marked(), 3)

	typeKeys(m, "V")
	assert.Empty(t, m.Browser().Marked())

	typeKeys(m, "v")
	assert.Len(t, m.Browser().Marked(), 4)
}

func TestBrowser_Refresh(t *testing.T) {
	m, _, root := newTestModel(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "c.md"), nil, 0o644))

	press(m, tea.KeyCtrlR)
	assert.Len(t, m.Browser().Entries(), 5)
}

func TestBookmarks(t *testing.T) {
	m, mock, root := newTestModel(t)

	typeKeys(m, "ma")
	path, err := mock.Bookmark('a')
	require.NoError(t, err)
	assert.Equal(t, root, path)
	assert.Contains(t, m.flash, "Bookmark a set")

	typeKeys(m, "jl")
	require.Equal(t, filepath.Join(root, "beta"), m.Browser().Dir())

	typeKeys(m, "`a")
	assert.Equal(t, root, m.Browser().Dir())
	prev, err := mock.Bookmark(state.PreviousKey)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "beta"), prev)

	typeKeys(m, "''")
	assert.Equal(t, filepath.Join(root, "beta"), m.Browser().Dir(), "the previous-location bookmark goes back")

	typeKeys(m, "uma")
	_, err = mock.Bookmark('a')
	require.ErrorIs(t, err, state.ErrNoBookmark)

	typeKeys(m, "`a")
	assert.True(t, m.flashErr)
	assert.Contains(t, m.flash, "jump to bookmark")
}

func TestConsole_OpenAndClose(t *testing.T) {
	m, _, _ := newTestModel(t)

	typeKeys(m, ":")
	require.True(t, m.Console().IsOpen())
	assert.Equal(t, bindings.Console, m.context())
	assert.Contains(t, m.View(), ":")

	press(m, tea.KeyEscape)
	assert.False(t, m.Console().IsOpen())

	typeKeys(m, "cd")
	assert.Equal(t, "cd ", m.Console().Line())
	press(m, tea.KeyCtrlC)
	assert.False(t, m.Console().IsOpen())
}

func TestConsole_BackspaceOnEmptyLineCloses(t *testing.T) {
	m, _, _ := newTestModel(t)
	typeKeys(m, ":a")

	press(m, tea.KeyBackspace)
	assert.True(t, m.Console().IsOpen())
	press(m, tea.KeyBackspace)
	assert.False(t, m.Console().IsOpen())
}

func TestConsole_Editing(t *testing.T) {
	m, _, _ := newTestModel(t)
	typeKeys(m, ":find 12 x")

	assert.Equal(t, "find 12 x", m.Console().Line(), "digits are typed, not counts")

	press(m, tea.KeyCtrlW)
	assert.Equal(t, "find 12 ", m.Console().Line())
	press(m, tea.KeyLeft)
	press(m, tea.KeyCtrlB)
	assert.Equal(t, 6, m.Console().Pos())
	press(m, tea.KeyCtrlK)
	assert.Equal(t, "find 1", m.Console().Line())
	press(m, tea.KeyHome)
	press(m, tea.KeyDelete)
	assert.Equal(t, "ind 1", m.Console().Line())
	press(m, tea.KeyCtrlE)
	press(m, tea.KeyCtrlU)
	assert.Empty(t, m.Console().Line())
	press(m, tea.KeyF5)
	assert.True(t, m.Console().IsOpen(), "keys without a code are ignored")
}

func TestConsole_TabCompletes(t *testing.T) {
	m, _, _ := newTestModel(t)
	typeKeys(m, ":mk")
	press(m, tea.KeyTab)
	assert.Equal(t, "mkdir ", m.Console().Line())
}

func TestConsole_Mkdir(t *testing.T) {
	m, _, root := newTestModel(t)
	typeKeys(m, ":mkdir gamma")
	press(m, tea.KeyEnter)

	assert.False(t, m.Console().IsOpen())
	assert.DirExists(t, filepath.Join(root, "gamma"))
	assert.Equal(t, "gamma", m.Browser().SelectedName())
}

func TestConsole_Touch(t *testing.T) {
	m, _, root := newTestModel(t)
	typeKeys(m, ":touch new file.txt")
	press(m, tea.KeyEnter)

	assert.FileExists(t, filepath.Join(root, "new file.txt"))
	assert.Equal(t, "new file.txt", m.Browser().SelectedName())
}

func TestConsole_Rename(t *testing.T) {
	m, _, root := newTestModel(t)
	typeKeys(m, "2jcw")
	require.Equal(t, "rename a.go", m.Console().Line())

	press(m, tea.KeyCtrlW)
	typeKeys(m, "z.go")
	press(m, tea.KeyEnter)

	assert.NoFileExists(t, filepath.Join(root, "a.go"))
	assert.FileExists(t, filepath.Join(root, "z.go"))
	assert.Equal(t, "z.go", m.Browser().SelectedName())
}

func TestConsole_RenameRefusesToReplace(t *testing.T) {
	m, _, root := newTestModel(t)
	typeKeys(m, "2j:rename b.txt")
	press(m, tea.KeyEnter)

	assert.True(t, m.flashErr)
	assert.Contains(t, m.flash, "rename")
	assert.FileExists(t, filepath.Join(root, "a.go"))
}

func TestConsole_CdPastedLine(t *testing.T) {
	m, _, root := newTestModel(t)

	// A paste arrives as one message; ":" switches context mid-run.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(":cd beta"), Paste: true})
	require.Equal(t, "cd beta", m.Console().Line())
	press(m, tea.KeyEnter)

	assert.Equal(t, filepath.Join(root, "beta"), m.Browser().Dir())
}

func TestConsole_FilterAndFind(t *testing.T) {
	m, _, _ := newTestModel(t)

	typeKeys(m, "tf")
	assert.Equal(t, "filter ", m.Console().Line())
	typeKeys(m, "TXT")
	press(m, tea.KeyEnter)
	assert.Len(t, m.Browser().Entries(), 1)

	typeKeys(m, ":filter")
	press(m, tea.KeyEnter)
	assert.Len(t, m.Browser().Entries(), 4)

	typeKeys(m, "f.go")
	press(m, tea.KeyEnter)
	assert.Equal(t, "a.go", m.Browser().SelectedName())

	typeKeys(m, "n")
	assert.Equal(t, "a.go", m.Browser().SelectedName(), "the only match wraps onto itself")

	typeKeys(m, "/nothing")
	press(m, tea.KeyEnter)
	assert.Contains(t, m.flash, "no match")
}

func TestConsole_History(t *testing.T) {
	m, _, _ := newTestModel(t)
	typeKeys(m, ":filter a")
	press(m, tea.KeyEnter)

	typeKeys(m, ":")
	press(m, tea.KeyUp)
	assert.Equal(t, "filter a", m.Console().Line())
	press(m, tea.KeyDown)
	assert.Empty(t, m.Console().Line())
}

func TestConsole_UnknownCommand(t *testing.T) {
	m, _, _ := newTestModel(t)
	typeKeys(m, ":frobnicate")
	press(m, tea.KeyEnter)

	assert.True(t, m.flashErr)
	assert.Contains(t, m.flash, "unknown command")
}

func TestPager(t *testing.T) {
	m, _, _ := newTestModel(t)

	typeKeys(m, "G")
	press(m, tea.KeyEnter)
	require.NotNil(t, m.Pager())
	assert.Equal(t, bindings.Pager, m.context())
	assert.Contains(t, m.View(), "b.txt")
	assert.Contains(t, m.statusLine(), "<esc>/i/q close")

	typeKeys(m, "5j")
	assert.Equal(t, 5, m.Pager().Offset())
	typeKeys(m, "k")
	assert.Equal(t, 4, m.Pager().Offset())
	typeKeys(m, "gg")
	assert.Equal(t, 0, m.Pager().Offset())
	press(m, tea.KeyCtrlD)
	assert.Equal(t, 9, m.Pager().Offset(), "half of the 19 visible lines")
	typeKeys(m, "G")
	assert.True(t, m.Pager().AtBottom())

	typeKeys(m, "gg999999999999999999997f")
	assert.True(t, m.Pager().AtBottom(), "a huge count still scrolls down")
	typeKeys(m, "4611686018427387904b")
	assert.Equal(t, 0, m.Pager().Offset())

	typeKeys(m, "q")
	assert.Nil(t, m.Pager())
	assert.False(t, m.Quitting(), "q in the pager only closes it")
	assert.Equal(t, bindings.Browser, m.context())
}

func TestPager_ViewKeyOnDirectoryDoesNothing(t *testing.T) {
	m, _, _ := newTestModel(t)
	typeKeys(m, "i")
	assert.Nil(t, m.Pager())
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name string
		send func(m *Model) tea.Cmd
	}{
		{"q", func(m *Model) tea.Cmd { return typeKeys(m, "q") }},
		{"ZZ", func(m *Model) tea.Cmd { return typeKeys(m, "ZZ") }},
		{"ctrl+d", func(m *Model) tea.Cmd { return press(m, tea.KeyCtrlD) }},
		{"console", func(m *Model) tea.Cmd { typeKeys(m, ":q"); return press(m, tea.KeyEnter) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, mock, root := newTestModel(t)
			typeKeys(m, "j")

			cmd := tt.send(m)

			require.NotNil(t, cmd)
			assert.True(t, m.Quitting())
			assert.True(t, mock.IsClosed())
			assert.Empty(t, m.View())
			nav, _ := mock.GetNavigation()
			require.NotNil(t, nav)
			assert.Equal(t, root, nav.CurrentPath)
			assert.Equal(t, "beta", nav.SelectedName)
		})
	}
}
