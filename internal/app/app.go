// Package app is the bubbletea model of the file manager. Each input
// context (browser, console, pager) owns a key buffer fed from terminal
// key events; matched chords run the handlers registered in registry.go.
package app

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rove/internal/bindings"
	"github.com/llehouerou/rove/internal/browser"
	"github.com/llehouerou/rove/internal/config"
	"github.com/llehouerou/rove/internal/console"
	"github.com/llehouerou/rove/internal/keymap"
	"github.com/llehouerou/rove/internal/logging"
	"github.com/llehouerou/rove/internal/pager"
	"github.com/llehouerou/rove/internal/state"
)

// Options configures a new Model.
type Options struct {
	Config *config.Config
	State  state.Interface
	// Path, when set, overrides the saved and configured start directory.
	Path string
}

// Model is the root application model.
type Model struct {
	browser *browser.Model
	console *console.Model
	pager   *pager.Model // nil unless a file is shown

	state    state.Interface
	registry *bindings.Registry
	bindings *bindings.Set
	buffers  map[bindings.Context]*keymap.Buffer

	flash    string
	flashErr bool
	flashID  int

	// commands queued by handlers during one Update
	pending  []tea.Cmd
	quitting bool

	width, height int
}

// New creates the model: it lists the start directory and builds the key
// bindings from cfg.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	browserOpts := browser.Options{
		ShowHidden:       cfg.ShowHidden,
		DirectoriesFirst: cfg.GetDirectoriesFirst(),
		Sort:             browser.SortKey(cfg.GetSort()),
		Reverse:          cfg.SortReverse,
		ScrollMargin:     cfg.GetScrollMargin(),
	}

	startPath := cfg.StartDir
	var savedSelection string
	if nav, err := opts.State.GetNavigation(); err == nil && nav != nil {
		if info, statErr := os.Stat(nav.CurrentPath); statErr == nil && info.IsDir() {
			startPath = nav.CurrentPath
			savedSelection = nav.SelectedName
		}
		if key, ok := browser.ParseSortKey(nav.Sort); ok {
			browserOpts.Sort = key
			browserOpts.Reverse = nav.SortReverse
		}
		browserOpts.ShowHidden = nav.ShowHidden
	}
	if opts.Path != "" {
		startPath = opts.Path
		savedSelection = ""
	}
	if startPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		startPath = wd
	}

	b, err := browser.New(startPath, browserOpts)
	if err != nil {
		return nil, err
	}
	if savedSelection != "" {
		b.Select(savedSelection)
	}
	b.SetFocused(true)

	m := &Model{
		browser: b,
		console: console.New(),
		state:   opts.State,
		buffers: make(map[bindings.Context]*keymap.Buffer),
	}
	m.registry = m.newRegistry()
	set, err := bindings.Build(m.registry, cfg)
	if err != nil {
		return nil, err
	}
	m.setBindings(set)
	return m, nil
}

// BuildBindings resolves cfg into key maps without a running model, for
// listing the bindings.
func BuildBindings(cfg *config.Config) (*bindings.Set, error) {
	var m *Model
	return bindings.Build(m.newRegistry(), cfg)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Bindings returns the active binding set.
func (m *Model) Bindings() *bindings.Set {
	return m.bindings
}

// Browser returns the directory browser.
func (m *Model) Browser() *browser.Model {
	return m.browser
}

// Console returns the command line.
func (m *Model) Console() *console.Model {
	return m.console
}

// Pager returns the open pager, or nil.
func (m *Model) Pager() *pager.Model {
	return m.pager
}

// Quitting reports whether quit was requested.
func (m *Model) Quitting() bool {
	return m.quitting
}

// setBindings swaps in set and resets every buffer onto its maps.
func (m *Model) setBindings(set *bindings.Set) {
	m.bindings = set
	for _, ctx := range bindings.Contexts {
		if buf, ok := m.buffers[ctx]; ok {
			buf.SetMaps(set.Map(ctx), set.Directions())
			buf.Clear()
			continue
		}
		m.buffers[ctx] = set.NewBuffer(ctx)
	}
}

// context returns the input context receiving keys.
func (m *Model) context() bindings.Context {
	switch {
	case m.pager != nil:
		return bindings.Pager
	case m.console.IsOpen():
		return bindings.Console
	}
	return bindings.Browser
}

// clearBuffers drops every partly typed chord.
func (m *Model) clearBuffers() {
	for _, buf := range m.buffers {
		buf.Clear()
	}
}

// quit persists the session and stops the program.
func (m *Model) quit() {
	m.saveNavigation()
	m.quitting = true
	if err := m.state.Close(); err != nil {
		logging.Logger.Error("closing state failed", "error", err)
	}
	m.queue(tea.Quit)
}

// queue schedules cmd to be returned from the current Update.
func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

// flush returns the queued commands and resets the queue.
func (m *Model) flush() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
