package console

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCommand is returned for a command name that is not known.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is returned when a command needs an argument.
	ErrMissingArgument = errors.New("missing argument")
)

// Name identifies a console command.
type Name string

// Console commands.
const (
	CmdCd     Name = "cd"
	CmdMkdir  Name = "mkdir"
	CmdRename Name = "rename"
	CmdTouch  Name = "touch"
	CmdFilter Name = "filter"
	CmdFind   Name = "find"
	CmdQuit   Name = "quit"
)

type spec struct {
	name     Name
	argument bool // argument required
}

var commands = []spec{
	{CmdCd, false}, // home when empty
	{CmdMkdir, true},
	{CmdRename, true},
	{CmdTouch, true},
	{CmdFilter, false}, // clears the filter when empty
	{CmdFind, true},
	{CmdQuit, false},
}

var aliases = map[string]Name{
	"q":     CmdQuit,
	"q!":    CmdQuit,
	"quit!": CmdQuit,
}

// Command is a parsed console line.
type Command struct {
	Name Name
	Arg  string
}

// Parse splits line into a command name and its argument. The argument
// is the rest of the line with surrounding spaces removed, so names may
// contain spaces.
func Parse(line string) (Command, error) {
	word, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	name := Name(word)
	if alias, ok := aliases[word]; ok {
		name = alias
	}
	for _, s := range commands {
		if s.name != name {
			continue
		}
		if s.argument && arg == "" {
			return Command{}, fmt.Errorf("%s: %w", name, ErrMissingArgument)
		}
		return Command{Name: name, Arg: arg}, nil
	}
	return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, word)
}

// Complete returns the command names starting with prefix.
func Complete(prefix string) []string {
	var out []string
	for _, s := range commands {
		if strings.HasPrefix(string(s.name), prefix) {
			out = append(out, string(s.name))
		}
	}
	return out
}
