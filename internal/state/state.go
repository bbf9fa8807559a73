// Package state persists the session between runs: the last directory and
// listing options, and the bookmarks set with m<key>.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/rove/internal/db"
	"github.com/llehouerou/rove/internal/logging"
)

const (
	appName      = "rove"
	dbFileName   = "rove.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager is the SQLite-backed store.
type Manager struct {
	db *sql.DB

	mu      sync.Mutex
	timer   *time.Timer
	pending *NavigationState

	// writeMu is held for a whole flush so Close waits for a save that a
	// timer already started.
	writeMu sync.Mutex
}

// Open opens the state database at path, or in the xdg data dir when path
// is empty, and brings its schema up to date.
func Open(path string) (*Manager, error) {
	if path == "" {
		p, err := xdg.DataFile(filepath.Join(appName, dbFileName))
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Manager{db: db}, nil
}

// Close writes any navigation state still waiting for its debounce and
// closes the database.
func (m *Manager) Close() error {
	m.flush()
	return m.db.Close()
}

func (m *Manager) GetNavigation() (*NavigationState, error) {
	return getNavigation(m.db)
}

// SaveNavigation records nav after a short quiet period; rapid cursor
// movement only writes the last position.
func (m *Manager) SaveNavigation(nav NavigationState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = &nav
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(saveDebounce, m.flush)
}

// flush writes the pending navigation state, if any.
func (m *Manager) flush() {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	nav := m.pending
	m.pending = nil
	m.mu.Unlock()

	if nav == nil {
		return
	}
	if err := saveNavigation(m.db, *nav); err != nil {
		logging.Logger.Error("saving navigation failed", "path", nav.CurrentPath, "error", err)
	}
}
