package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rove/internal/app"
	"github.com/llehouerou/rove/internal/bindings"
	"github.com/llehouerou/rove/internal/config"
	"github.com/llehouerou/rove/internal/errmsg"
	"github.com/llehouerou/rove/internal/logging"
	"github.com/llehouerou/rove/internal/state"
	"github.com/llehouerou/rove/internal/ui/render"
)

// CLI is the command line of rove.
type CLI struct {
	Path        string `arg:"" optional:"" help:"Directory to open" type:"path"`
	Config      string `help:"Configuration file, read after the default locations" short:"c" type:"path"`
	Debug       bool   `help:"Write a debug log" short:"d"`
	LogFile     string `help:"Debug log file (disables rotation)" type:"path"`
	MaxLogFiles int    `help:"Number of debug logs to keep (0 = unlimited)" default:"${max_log_files}"`
	PrintKeys   bool   `help:"Print the key bindings and exit"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rove"),
		kong.Description("A terminal file manager with vi-style key chords."),
		kong.UsageOnError(),
		kong.Vars{"max_log_files": strconv.Itoa(logging.DefaultMaxFiles)},
	)
	ctx.FatalIfErrorf(cli.Run())
}

// Run starts the file manager.
func (c *CLI) Run() error {
	if _, err := logging.Initialize(c.Debug, c.LogFile, c.MaxLogFiles); err != nil {
		return err
	}
	defer logging.Close()

	cfg, err := config.Load(c.Config)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	if c.PrintKeys {
		return printKeys(os.Stdout, cfg)
	}

	st, err := state.Open(cfg.BookmarksDB)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}

	m, err := app.New(app.Options{Config: cfg, State: st, Path: c.Path})
	if err != nil {
		_ = st.Close()
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	watcher, err := config.Watch(c.Config, func(cfg *config.Config, err error) {
		p.Send(app.ConfigReloadedMsg{Config: cfg, Err: err})
	})
	if err != nil {
		logging.Logger.Warn("config watch unavailable", "error", err)
	} else {
		defer watcher.Close()
		logging.Logger.Debug("watching configuration", "files", watcher.Len())
	}

	_, err = p.Run()
	if !m.Quitting() {
		_ = st.Close()
	}
	return err
}

// printKeys writes the resolved bindings of every context.
func printKeys(w io.Writer, cfg *config.Config) error {
	set, err := app.BuildBindings(cfg)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpBindingsBuild, err))
	}
	for i, ctx := range bindings.Contexts {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "[%s]\n", ctx)

		lines := set.Listing(ctx)
		width := 0
		for _, l := range lines {
			width = max(width, len(strings.Join(l.Keys, " ")))
		}
		for _, l := range lines {
			fmt.Fprintf(w, "  %s  %s\n", render.Pad(strings.Join(l.Keys, " "), width), l.Description)
		}
	}
	return nil
}
