package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rove/internal/config"
)

// flashDuration is how long a status message stays visible.
const flashDuration = 4 * time.Second

// ConfigReloadedMsg carries a configuration reloaded after its file
// changed. Err is set when the file could not be loaded.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// clearFlashMsg expires the status message with the same id.
type clearFlashMsg struct {
	id int
}

func clearFlashCmd(id int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{id: id}
	})
}
