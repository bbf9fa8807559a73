package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Sort orders understood by the browser.
const (
	SortBasename = "basename"
	SortSize     = "size"
	SortMtime    = "mtime"
	SortType     = "type"
)

// ErrInvalid is wrapped by every validation error returned from Load.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	StartDir         string `koanf:"start_dir"` // empty means use cwd
	ShowHidden       bool   `koanf:"show_hidden"`
	DirectoriesFirst *bool  `koanf:"directories_first"` // default: true
	Sort             string `koanf:"sort"`              // basename, size, mtime or type
	SortReverse      bool   `koanf:"sort_reverse"`
	ScrollMargin     *int   `koanf:"scroll_margin"` // default: 2
	BookmarksDB      string `koanf:"bookmarks_db"`  // empty means xdg data dir

	// Directions extends the shared direction key map.
	Directions []DirectionBinding `koanf:"direction"`

	// Bind holds per-context command bindings layered over the defaults.
	Bind BindConfig `koanf:"bind"`
}

// DirectionBinding binds keys to a movement vector, or aliases them to
// another direction key spec.
type DirectionBinding struct {
	Keys  []string `koanf:"keys"`
	Down  int      `koanf:"down"`
	Right int      `koanf:"right"`
	Alias string   `koanf:"alias"`
}

// KeyBinding binds keys to a named action or aliases them to another key
// spec of the same context.
type KeyBinding struct {
	Keys   []string `koanf:"keys"`
	Action string   `koanf:"action"`
	Alias  string   `koanf:"alias"`
	Down   *int     `koanf:"down"` // optional fixed direction
	Right  *int     `koanf:"right"`
}

// HasDirection reports whether a fixed direction was configured.
func (b KeyBinding) HasDirection() bool {
	return b.Down != nil || b.Right != nil
}

// BindConfig groups command bindings by input context.
type BindConfig struct {
	Browser []KeyBinding `koanf:"browser"`
	Console []KeyBinding `koanf:"console"`
	Pager   []KeyBinding `koanf:"pager"`
}

// Load reads every existing file of Paths(explicit), later files
// overriding earlier ones. An explicit path that does not exist is an
// error; the default locations are optional.
func Load(explicit string) (*Config, error) {
	if explicit != "" {
		if _, err := os.Stat(expandPath(explicit)); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
	}

	k := koanf.New(".")
	for _, path := range Paths(explicit) {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.StartDir != "" {
		cfg.StartDir = expandPath(cfg.StartDir)
	}
	if cfg.BookmarksDB != "" {
		cfg.BookmarksDB = expandPath(cfg.BookmarksDB)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Paths lists the configuration files in priority order (last wins).
func Paths(explicit string) []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/rove/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, "rove", "config.toml"))

	// 2. ./rove.toml
	paths = append(paths, "rove.toml")

	// 3. --config (highest priority)
	if explicit != "" {
		paths = append(paths, expandPath(explicit))
	}

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate checks field values and the shape of every binding entry.
func (c *Config) Validate() error {
	var errs []error

	if c.Sort != "" && !slices.Contains([]string{SortBasename, SortSize, SortMtime, SortType}, c.Sort) {
		errs = append(errs, fmt.Errorf("%w: unknown sort %q", ErrInvalid, c.Sort))
	}
	if c.ScrollMargin != nil && *c.ScrollMargin < 0 {
		errs = append(errs, fmt.Errorf("%w: negative scroll_margin", ErrInvalid))
	}

	for i, d := range c.Directions {
		if len(d.Keys) == 0 {
			errs = append(errs, fmt.Errorf("%w: direction[%d] has no keys", ErrInvalid, i))
		}
		if d.Alias != "" && (d.Down != 0 || d.Right != 0) {
			errs = append(errs, fmt.Errorf("%w: direction[%d] sets both alias and a vector", ErrInvalid, i))
		}
	}

	for _, group := range []struct {
		ctx  string
		list []KeyBinding
	}{
		{"browser", c.Bind.Browser},
		{"console", c.Bind.Console},
		{"pager", c.Bind.Pager},
	} {
		ctx := group.ctx
		for i, b := range group.list {
			switch {
			case len(b.Keys) == 0:
				errs = append(errs, fmt.Errorf("%w: bind.%s[%d] has no keys", ErrInvalid, ctx, i))
			case b.Action == "" && b.Alias == "":
				errs = append(errs, fmt.Errorf("%w: bind.%s[%d] needs action or alias", ErrInvalid, ctx, i))
			case b.Action != "" && b.Alias != "":
				errs = append(errs, fmt.Errorf("%w: bind.%s[%d] sets both action and alias", ErrInvalid, ctx, i))
			}
		}
	}

	return errors.Join(errs...)
}

// GetDirectoriesFirst returns directories_first with its default applied.
func (c *Config) GetDirectoriesFirst() bool {
	if c.DirectoriesFirst == nil {
		return true
	}
	return *c.DirectoriesFirst
}

// GetSort returns the sort order with its default applied.
func (c *Config) GetSort() string {
	if c.Sort == "" {
		return SortBasename
	}
	return c.Sort
}

// GetScrollMargin returns scroll_margin with its default applied.
func (c *Config) GetScrollMargin() int {
	if c.ScrollMargin == nil {
		return 2
	}
	return *c.ScrollMargin
}
