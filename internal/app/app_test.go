// internal/app/app_test.go
package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/rove/internal/bindings"
	"github.com/llehouerou/rove/internal/config"
	"github.com/llehouerou/rove/internal/state"
)

// makeTree creates:
//
//	alpha/inner.txt
//	beta/
//	.hidden
//	a.go
//	b.txt (40 lines)
func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "alpha"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "beta"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "alpha", "inner.txt"), []byte("inner\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.go"), []byte("package a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte(strings.Repeat("text\n", 40)), 0o644))
	return root
}

func newTestModel(t *testing.T) (*Model, *state.Mock, string) {
	t.Helper()
	return newTestModelWith(t, nil)
}

func newTestModelWith(t *testing.T, cfg *config.Config) (*Model, *state.Mock, string) {
	t.Helper()
	root := makeTree(t)
	mock := state.NewMock()
	m, err := New(Options{Config: cfg, State: mock, Path: root})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, mock, root
}

// typeKeys sends each rune of s as its own key press.
func typeKeys(m *Model, s string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range s {
		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func TestNew(t *testing.T) {
	m, _, root := newTestModel(t)

	assert.Equal(t, root, m.Browser().Dir())
	assert.Equal(t, "alpha", m.Browser().SelectedName())
	assert.Equal(t, bindings.Browser, m.context())
	assert.Len(t, m.buffers, len(bindings.Contexts))
	assert.Nil(t, m.Init())
}

func TestNew_RestoresNavigation(t *testing.T) {
	root := makeTree(t)
	mock := state.NewMock()
	mock.SetNavigation(&state.NavigationState{
		CurrentPath:  filepath.Join(root, "alpha"),
		SelectedName: "inner.txt",
		Sort:         "size",
		SortReverse:  true,
		ShowHidden:   true,
	})

	m, err := New(Options{State: mock})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "alpha"), m.Browser().Dir())
	assert.Equal(t, "inner.txt", m.Browser().SelectedName())
	opts := m.Browser().Options()
	assert.Equal(t, "size", string(opts.Sort))
	assert.True(t, opts.Reverse)
	assert.True(t, opts.ShowHidden)
}

func TestNew_PathOverridesSavedDirectory(t *testing.T) {
	root := makeTree(t)
	mock := state.NewMock()
	mock.SetNavigation(&state.NavigationState{CurrentPath: filepath.Join(root, "alpha")})

	m, err := New(Options{State: mock, Path: filepath.Join(root, "beta")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "beta"), m.Browser().Dir())
}

func TestNew_UnknownConfiguredAction(t *testing.T) {
	cfg := &config.Config{Bind: config.BindConfig{
		Browser: []config.KeyBinding{{Keys: []string{"x"}, Action: "explode"}},
	}}
	_, err := New(Options{Config: cfg, State: state.NewMock(), Path: t.TempDir()})
	assert.ErrorIs(t, err, bindings.ErrUnknownAction)
}

func TestBuildBindings(t *testing.T) {
	set, err := BuildBindings(nil)
	require.NoError(t, err)

	lines := set.Listing(bindings.Browser)
	require.NotEmpty(t, lines)
	var actions []bindings.Action
	for _, l := range lines {
		actions = append(actions, l.Action)
	}
	assert.Contains(t, actions, bindings.ActionQuit)
	assert.Contains(t, set.KeysFor(bindings.Browser, bindings.ActionQuit), "ZZ")
}

func TestUpdate_WindowSizeClearsPendingChord(t *testing.T) {
	m, _, _ := newTestModel(t)
	typeKeys(m, "g")
	require.Equal(t, "g", m.buffers[bindings.Browser].String())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, m.buffers[bindings.Browser].Empty())
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
}

func TestView(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 24)
	assert.Contains(t, view, "alpha/")
	assert.Contains(t, view, "1/4 basename")
}

func TestView_Empty(t *testing.T) {
	m, err := New(Options{State: state.NewMock(), Path: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, m.View(), "nothing is drawn before the first size message")
}

func TestView_PendingChordAndBookmarkHint(t *testing.T) {
	m, mock, root := newTestModel(t)
	require.NoError(t, mock.SetBookmark('a', root))

	typeKeys(m, "`")

	assert.Contains(t, m.statusLine(), "`  bookmarks: a")
}

func TestConfigReloaded(t *testing.T) {
	m, _, _ := newTestModel(t)
	typeKeys(m, "g")

	margin := 5
	cfg := &config.Config{ScrollMargin: &margin, Bind: config.BindConfig{
		Browser: []config.KeyBinding{{Keys: []string{"x"}, Action: string(bindings.ActionMarkAll)}},
	}}
	m.Update(ConfigReloadedMsg{Config: cfg})

	assert.True(t, m.buffers[bindings.Browser].Empty(), "reload clears pending chords")
	assert.Equal(t, "Configuration reloaded", m.flash)
	assert.False(t, m.flashErr)
	assert.Equal(t, 5, m.Browser().Options().ScrollMargin)

	typeKeys(m, "x")
	assert.Len(t, m.Browser().Marked(), 4)
}

func TestConfigReloaded_BrokenKeepsBindings(t *testing.T) {
	m, _, _ := newTestModel(t)
	before := m.Bindings()

	cfg := &config.Config{Bind: config.BindConfig{
		Browser: []config.KeyBinding{{Keys: []string{"x"}, Action: "explode"}},
	}}
	m.Update(ConfigReloadedMsg{Config: cfg})

	assert.Same(t, before, m.Bindings())
	assert.True(t, m.flashErr)
	assert.Contains(t, m.flash, "build key bindings")
}

func TestConfigReloaded_LoadError(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Update(ConfigReloadedMsg{Err: os.ErrPermission})

	assert.True(t, m.flashErr)
	assert.Contains(t, m.flash, "reload configuration")
}

func TestFlashExpires(t *testing.T) {
	m, _, _ := newTestModel(t)
	cmd := typeKeys(m, "x")
	require.NotNil(t, cmd, "a flash schedules its expiry")
	require.NotEmpty(t, m.flash)

	m.Update(clearFlashMsg{id: m.flashID - 1})
	assert.NotEmpty(t, m.flash, "a stale expiry leaves a newer message")

	m.Update(clearFlashMsg{id: m.flashID})
	assert.Empty(t, m.flash)
}
