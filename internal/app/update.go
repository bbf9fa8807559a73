// internal/app/update.go
package app

import (
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rove/internal/bindings"
	"github.com/llehouerou/rove/internal/errmsg"
	"github.com/llehouerou/rove/internal/input"
	"github.com/llehouerou/rove/internal/keymap"
	"github.com/llehouerou/rove/internal/keys"
	"github.com/llehouerou/rove/internal/logging"
	"github.com/llehouerou/rove/internal/ui"
)

// Update handles messages and returns the model and queued commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)

	case tea.KeyMsg:
		m.handleKeyMsg(msg)

	case ConfigReloadedMsg:
		m.handleConfigReloaded(msg)

	case clearFlashMsg:
		if msg.id == m.flashID {
			m.flash = ""
			m.flashErr = false
		}
	}
	return m, m.flush()
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.clearBuffers()
	m.resize()
}

// resize lays out the panels above the status line.
func (m *Model) resize() {
	panelHeight := max(m.height-ui.StatusHeight, 0)
	m.browser.SetSize(m.width, panelHeight)
	if m.pager != nil {
		m.pager.SetSize(m.width, panelHeight)
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) {
	for _, code := range input.Codes(msg) {
		if m.quitting {
			return
		}
		// A handler may switch context, so the rest of a pasted run goes
		// to whichever buffer is active after each key.
		m.feed(m.context(), code)
	}
}

// feed runs one key through the buffer of ctx.
func (m *Model) feed(ctx bindings.Context, code keys.Code) {
	buf := m.buffers[ctx]
	if code == keys.Escape && (!buf.Empty() || !m.bound(ctx, code)) {
		buf.Clear()
		return
	}

	res := buf.Feed(code)
	switch res.Status {
	case keymap.Collecting:
		return

	case keymap.Matched:
		logging.Logger.Debug("binding matched",
			slog.String("context", string(ctx)),
			slog.String("keys", res.Args.Keys),
			slog.String("action", res.Args.Binding.Name),
			slog.String("captured", res.Args.MatchString()))
		err := res.Call()
		buf.Clear()
		if err != nil {
			m.reportHandlerError(res.Args.Keys, err)
		}
		if ctx == bindings.Browser {
			m.saveNavigation()
		}

	case keymap.Failed:
		buf.Clear()
		if keymap.IsConfigError(res.Err) {
			logging.Logger.Error("broken key binding",
				slog.String("context", string(ctx)),
				slog.String("error", res.Err.Error()))
			m.flashError(errmsg.Format(errmsg.OpKeyBinding, res.Err))
			return
		}
		m.flashError(res.Err.Error())
	}
}

// bound reports whether code alone is a complete binding in ctx.
func (m *Model) bound(ctx bindings.Context, code keys.Code) bool {
	_, err := m.bindings.Map(ctx).Lookup(keys.Seq{code})
	return err == nil
}

func (m *Model) reportHandlerError(chord string, err error) {
	var oe *opError
	if errors.As(err, &oe) {
		m.flashError(oe.Error())
		return
	}
	m.flashError(errmsg.FormatWith(errmsg.OpKeyBinding, chord, err))
}

// handleConfigReloaded rebuilds the key maps from a reloaded configuration
// and swaps them in. A broken configuration keeps the current maps.
func (m *Model) handleConfigReloaded(msg ConfigReloadedMsg) {
	if msg.Err != nil {
		logging.Logger.Error("config reload failed", slog.String("error", msg.Err.Error()))
		m.flashError(errmsg.Format(errmsg.OpConfigReload, msg.Err))
		return
	}
	set, err := bindings.Build(m.registry, msg.Config)
	if err != nil {
		logging.Logger.Error("rebuilding bindings failed", slog.String("error", err.Error()))
		m.flashError(errmsg.Format(errmsg.OpBindingsBuild, err))
		return
	}
	m.setBindings(set)
	if msg.Config != nil {
		m.browser.SetScrollMargin(msg.Config.GetScrollMargin())
	}
	logging.Logger.Info("key bindings reloaded")
	m.flashInfo("Configuration reloaded")
}

// flashInfo shows msg in the status line for a while.
func (m *Model) flashInfo(msg string) {
	m.setFlash(msg, false)
}

// flashError shows msg as an error in the status line for a while.
func (m *Model) flashError(msg string) {
	m.setFlash(msg, true)
}

func (m *Model) setFlash(msg string, isErr bool) {
	m.flashID++
	m.flash = msg
	m.flashErr = isErr
	m.queue(clearFlashCmd(m.flashID))
}
