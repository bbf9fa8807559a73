package bindings

import "github.com/llehouerou/rove/internal/keymap"

// Registry maps action names to the handlers implementing them, per
// context. Bindings are resolved against it by name, so configuration
// never references Go functions directly.
type Registry struct {
	handlers map[Context]map[Action]keymap.Option
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Context]map[Action]keymap.Option)}
}

// Func registers a handler that does not consume a direction.
func (r *Registry) Func(ctx Context, action Action, h keymap.Handler) {
	r.set(ctx, action, keymap.Func(h))
}

// DirFunc registers a handler that consumes the resolved direction.
func (r *Registry) DirFunc(ctx Context, action Action, h keymap.DirHandler) {
	r.set(ctx, action, keymap.DirFunc(h))
}

func (r *Registry) set(ctx Context, action Action, opt keymap.Option) {
	m, ok := r.handlers[ctx]
	if !ok {
		m = make(map[Action]keymap.Option)
		r.handlers[ctx] = m
	}
	m[action] = opt
}

func (r *Registry) lookup(ctx Context, action Action) (keymap.Option, bool) {
	opt, ok := r.handlers[ctx][action]
	return opt, ok
}
