// Package logging sets up the debug log. Logs are discarded unless debug
// logging is requested, because the terminal belongs to the UI.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
)

// DefaultMaxFiles is the number of session logs kept in the log directory.
const DefaultMaxFiles = 20

// Logger is the application logger. It discards everything until
// Initialize enables debug logging.
var Logger = slog.New(slog.DiscardHandler)

var logFile *os.File

// logDir is where session logs are written.
var logDir = func() string {
	return filepath.Join(xdg.StateHome, "rove")
}

// Initialize configures Logger and returns the path of the log file, or
// "" when logging is disabled. ROVE_DEBUG=1 enables debug logging and
// ROVE_MAX_LOG_FILES replaces maxFiles when it is still DefaultMaxFiles,
// so an explicit --max-log-files wins. An explicit path is used as is
// and never rotated; otherwise each session writes a new file in the
// state directory and the oldest files beyond maxFiles are removed.
func Initialize(debug bool, path string, maxFiles int) (string, error) {
	if os.Getenv("ROVE_DEBUG") == "1" {
		debug = true
	}
	if env := os.Getenv("ROVE_MAX_LOG_FILES"); env != "" && maxFiles == DefaultMaxFiles {
		if n, err := strconv.Atoi(env); err == nil {
			maxFiles = n
		}
	}

	if !debug && path == "" {
		Logger = slog.New(slog.DiscardHandler)
		slog.SetDefault(Logger)
		return "", nil
	}

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", fmt.Errorf("create log directory: %w", err)
		}
	} else {
		dir := logDir()
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create log directory: %w", err)
		}
		if maxFiles > 0 {
			if err := rotate(dir, maxFiles); err != nil {
				fmt.Fprintf(os.Stderr, "warning: log rotation failed: %v\n", err)
			}
		}
		path = filepath.Join(dir, uuid.NewString()+".log")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}
	Close()
	logFile = f

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(Logger)
	Logger.Info("debug logging initialized", "log_file", path, "pid", os.Getpid())
	return path, nil
}

// Close closes the log file, if one is open.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// rotate removes the oldest .log files in dir so that, with the file about
// to be created, at most maxFiles remain.
func rotate(dir string, maxFiles int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read log directory: %w", err)
	}

	type logInfo struct {
		path    string
		modTime time.Time
	}
	var logs []logInfo
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		logs = append(logs, logInfo{filepath.Join(dir, e.Name()), info.ModTime()})
	}
	if len(logs) < maxFiles {
		return nil
	}

	slices.SortFunc(logs, func(a, b logInfo) int {
		return a.modTime.Compare(b.modTime)
	})
	for _, l := range logs[:len(logs)-maxFiles+1] {
		if err := os.Remove(l.path); err != nil {
			fmt.Fprintf(os.Stderr, "warning: remove old log %s: %v\n", l.path, err)
		}
	}
	return nil
}
