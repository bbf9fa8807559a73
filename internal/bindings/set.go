package bindings

import (
	"errors"
	"fmt"

	"github.com/llehouerou/rove/internal/config"
	"github.com/llehouerou/rove/internal/keymap"
	"github.com/llehouerou/rove/internal/keys"
)

// ErrUnknownAction is returned for a configured action that has no
// registered handler in its context.
var ErrUnknownAction = errors.New("unknown action")

// Set is an immutable bundle of the direction map and one command map per
// context. A reload builds a new Set and replaces the old one wholesale.
type Set struct {
	directions *keymap.KeyMap
	maps       map[Context]*keymap.KeyMap
}

// Directions returns the shared direction map.
func (s *Set) Directions() *keymap.KeyMap {
	return s.directions
}

// Map returns the command map of ctx. Unknown contexts get an empty map.
func (s *Set) Map(ctx Context) *keymap.KeyMap {
	if m, ok := s.maps[ctx]; ok {
		return m
	}
	return keymap.New()
}

// NewBuffer returns a fresh key buffer for ctx.
func (s *Set) NewBuffer(ctx Context) *keymap.Buffer {
	return keymap.NewBuffer(s.Map(ctx), s.directions)
}

// Build assembles the default bindings, then layers cfg over them. Only
// actions registered in reg are bound; a configured action missing from
// reg is an error. A nil cfg yields the defaults.
func Build(reg *Registry, cfg *config.Config) (*Set, error) {
	var errs []error

	dirs := defaultDirections()
	if cfg != nil {
		dirs = dirs.Merge(userDirections(cfg.Directions))
	}
	if err := dirs.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("directions: %w", err))
	}

	s := &Set{directions: dirs, maps: make(map[Context]*keymap.KeyMap)}
	for _, ctx := range Contexts {
		km := defaultMap(reg, ctx)
		if cfg != nil {
			user, err := userMap(reg, ctx, bindConfig(cfg, ctx))
			if err != nil {
				errs = append(errs, err)
			}
			km = km.Merge(user)
		}
		if err := km.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ctx, err))
		}
		s.maps[ctx] = km
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return s, nil
}

func bindConfig(cfg *config.Config, ctx Context) []config.KeyBinding {
	switch ctx {
	case Browser:
		return cfg.Bind.Browser
	case Console:
		return cfg.Bind.Console
	case Pager:
		return cfg.Bind.Pager
	}
	return nil
}

func specs(list []string) []keys.Spec {
	out := make([]keys.Spec, len(list))
	for i, s := range list {
		out[i] = keys.Str(s)
	}
	return out
}

func defaultDirections() *keymap.KeyMap {
	km := keymap.New()
	for _, d := range Directions {
		km.Direction(d.Dir, specs(d.Keys)...)
	}
	return km
}

func userDirections(list []config.DirectionBinding) *keymap.KeyMap {
	km := keymap.New()
	for _, d := range list {
		if d.Alias != "" {
			km.Alias(keys.Str(d.Alias), specs(d.Keys)...)
			continue
		}
		km.Direction(keymap.Direction{Down: d.Down, Right: d.Right}, specs(d.Keys)...)
	}
	return km
}

func defaultMap(reg *Registry, ctx Context) *keymap.KeyMap {
	km := keymap.New()
	for _, d := range ByContext(ctx) {
		opt, ok := reg.lookup(ctx, d.Action)
		if !ok {
			continue
		}
		opts := []keymap.Option{opt, keymap.Named(string(d.Action))}
		if d.Dir != nil {
			opts = append(opts, keymap.Dir(*d.Dir))
		}
		km.Add(specs(d.Keys), opts...)
	}
	return km
}

func userMap(reg *Registry, ctx Context, list []config.KeyBinding) (*keymap.KeyMap, error) {
	km := keymap.New()
	var errs []error
	for _, b := range list {
		if b.Alias != "" {
			km.Alias(keys.Str(b.Alias), specs(b.Keys)...)
			continue
		}
		opt, ok := reg.lookup(ctx, Action(b.Action))
		if !ok {
			errs = append(errs, fmt.Errorf("%w %q for %s keys %q", ErrUnknownAction, b.Action, ctx, b.Keys))
			continue
		}
		opts := []keymap.Option{opt, keymap.Named(b.Action)}
		if b.HasDirection() {
			var d keymap.Direction
			if b.Down != nil {
				d.Down = *b.Down
			}
			if b.Right != nil {
				d.Right = *b.Right
			}
			opts = append(opts, keymap.Dir(d))
		}
		km.Add(specs(b.Keys), opts...)
	}
	return km, errors.Join(errs...)
}

// Line is one row of a binding listing.
type Line struct {
	Keys        []string
	Action      Action
	Description string
}

// Listing groups the bindings of ctx by binding, in key order. Keys bound
// to the same binding share one line; aliases get their own line.
func (s *Set) Listing(ctx Context) []Line {
	var (
		lines []Line
		index = make(map[*keymap.Binding]int)
	)
	for _, e := range s.Map(ctx).Entries() {
		if e.Binding == nil {
			continue
		}
		spec := keys.Describe(e.Keys)
		if i, ok := index[e.Binding]; ok {
			lines[i].Keys = append(lines[i].Keys, spec)
			continue
		}
		line := Line{Keys: []string{spec}}
		if e.Binding.IsAlias() {
			line.Description = "alias of " + keys.Describe(e.Binding.Alias)
		} else {
			line.Action = Action(e.Binding.Name)
			line.Description = describeBinding(ctx, e.Binding)
		}
		index[e.Binding] = len(lines)
		lines = append(lines, line)
	}
	return lines
}

func describeBinding(ctx Context, b *keymap.Binding) string {
	action := Action(b.Name)
	for _, d := range ByContext(ctx) {
		if d.Action != action {
			continue
		}
		if d.Dir == nil || b.Direction == nil || *d.Dir == *b.Direction {
			return d.Description
		}
	}
	return Describe(ctx, action)
}

// KeysFor returns the key specs bound to action in ctx, in key order.
func (s *Set) KeysFor(ctx Context, action Action) []string {
	var out []string
	for _, e := range s.Map(ctx).Entries() {
		if e.Binding != nil && Action(e.Binding.Name) == action {
			out = append(out, keys.Describe(e.Keys))
		}
	}
	return dedupe(out)
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	if s == nil {
		return nil
	}
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
