// internal/app/handlers_console.go
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/llehouerou/rove/internal/console"
	"github.com/llehouerou/rove/internal/errmsg"
	"github.com/llehouerou/rove/internal/keymap"
)

// consoleType inserts the printable keys captured by <any>. Special keys
// that reach the catch-all are dropped.
func (m *Model) consoleType(a keymap.Args) error {
	var b strings.Builder
	for _, c := range a.Matches {
		if c >= 0 && c <= unicode.MaxRune && unicode.IsPrint(rune(c)) {
			b.WriteRune(rune(c))
		}
	}
	m.console.Insert(b.String())
	return nil
}

func (m *Model) consoleCursor(a keymap.Args, d keymap.Direction) error {
	m.console.MoveCursor(d.Mul(a.N(1)).Right)
	return nil
}

func (m *Model) consoleStart(keymap.Args) error {
	m.console.Start()
	return nil
}

func (m *Model) consoleEnd(keymap.Args) error {
	m.console.End()
	return nil
}

// consoleDeleteBack deletes before the cursor; on an empty line it closes
// the console.
func (m *Model) consoleDeleteBack(a keymap.Args) error {
	if !m.console.DeleteBack(a.N(1)) {
		m.console.Close()
	}
	return nil
}

func (m *Model) consoleDeleteForward(a keymap.Args) error {
	m.console.DeleteForward(a.N(1))
	return nil
}

func (m *Model) consoleDeleteWord(keymap.Args) error {
	m.console.DeleteWord()
	return nil
}

func (m *Model) consoleDeleteRest(keymap.Args) error {
	m.console.DeleteRest()
	return nil
}

func (m *Model) consoleDeleteStart(keymap.Args) error {
	m.console.DeleteStart()
	return nil
}

func (m *Model) consoleHistory(a keymap.Args, d keymap.Direction) error {
	m.console.History(d.Mul(a.N(1)).Down)
	return nil
}

func (m *Model) consoleComplete(keymap.Args) error {
	m.console.Complete()
	return nil
}

func (m *Model) consoleClose(keymap.Args) error {
	m.console.Close()
	return nil
}

// consoleExecute submits the line and runs it as a command.
func (m *Model) consoleExecute(keymap.Args) error {
	line := m.console.Submit()
	if strings.TrimSpace(line) == "" {
		return nil
	}
	cmd, err := console.Parse(line)
	if err != nil {
		return fail(errmsg.OpCommand, line, err)
	}
	err = m.run(cmd)
	m.saveNavigation()
	return err
}

// run executes a parsed console command against the browser.
func (m *Model) run(cmd console.Command) error {
	b := m.browser
	switch cmd.Name {
	case console.CmdCd:
		target := cmd.Arg
		if target == "" {
			target = "~"
		}
		return fail(errmsg.OpDirEnter, target, b.Cd(target))

	case console.CmdMkdir:
		path := m.resolve(cmd.Arg)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fail(errmsg.OpDirCreate, cmd.Arg, err)
		}
		return m.refreshAndSelect(path)

	case console.CmdTouch:
		path := m.resolve(cmd.Arg)
		if err := touch(path); err != nil {
			return fail(errmsg.OpEntryCreate, cmd.Arg, err)
		}
		return m.refreshAndSelect(path)

	case console.CmdRename:
		e, ok := b.Selected()
		if !ok {
			return nil
		}
		path := m.resolve(cmd.Arg)
		if err := rename(e.Path, path); err != nil {
			return fail(errmsg.OpEntryRename, e.Name, err)
		}
		return m.refreshAndSelect(path)

	case console.CmdFilter:
		b.SetFilter(cmd.Arg)

	case console.CmdFind:
		if !b.Find(cmd.Arg) {
			return fail(errmsg.OpEntryFind, cmd.Arg, errNoMatch)
		}

	case console.CmdQuit:
		m.quit()
	}
	return nil
}

// resolve makes a console argument absolute against the listed directory.
func (m *Model) resolve(arg string) string {
	if filepath.IsAbs(arg) {
		return filepath.Clean(arg)
	}
	return filepath.Join(m.browser.Dir(), arg)
}

// refreshAndSelect re-reads the listing and selects path when it is a
// direct child of the listed directory.
func (m *Model) refreshAndSelect(path string) error {
	if err := m.browser.Refresh(); err != nil {
		return fail(errmsg.OpDirRead, m.browser.Dir(), err)
	}
	if filepath.Dir(path) == m.browser.Dir() {
		m.browser.Select(filepath.Base(path))
	}
	return nil
}

// touch creates path, or updates its times when it exists.
func touch(path string) error {
	now := time.Now()
	if err := os.Chtimes(path, now, now); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

// rename moves from to to, refusing to replace an existing entry.
func rename(from, to string) error {
	if from == to {
		return nil
	}
	if _, err := os.Lstat(to); err == nil {
		return fmt.Errorf("%s: %w", filepath.Base(to), os.ErrExist)
	}
	return os.Rename(from, to)
}
