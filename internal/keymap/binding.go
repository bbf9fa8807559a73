package keymap

import (
	"github.com/llehouerou/rove/internal/keys"
)

// Handler runs a matched binding.
type Handler func(Args) error

// DirHandler runs a matched binding that consumes a resolved direction.
type DirHandler func(Args, Direction) error

// Binding is the payload stored at the end of a key path.
type Binding struct {
	// Handler is nil for pure aliases and direction leaves.
	Handler Handler

	// Direction, when set, is applied regardless of what the direction
	// grammar produced.
	Direction *Direction

	// HasDirection reports whether Handler expects a resolved direction.
	HasDirection bool

	// Alias redirects resolution to another path of the same map.
	Alias []keys.Code

	// Name identifies the action for help listings and logs.
	Name string
}

// Option configures a Binding.
type Option func(*bindingConfig)

type bindingConfig struct {
	handler       Handler
	dirHandler    DirHandler
	direction     *Direction
	alias         keys.Spec
	withDirection *bool
	name          string
}

// Func sets a handler that does not take a direction.
func Func(h Handler) Option {
	return func(c *bindingConfig) {
		c.handler = h
		c.dirHandler = nil
	}
}

// DirFunc sets a handler that takes the resolved direction. Such bindings
// report HasDirection unless overridden with WithDirection.
func DirFunc(h DirHandler) Option {
	return func(c *bindingConfig) {
		c.dirHandler = h
		c.handler = nil
	}
}

// Dir fixes the direction of the binding.
func Dir(d Direction) Option {
	return func(c *bindingConfig) {
		c.direction = &d
	}
}

// Alias makes the binding redirect to target.
func Alias(target keys.Spec) Option {
	return func(c *bindingConfig) {
		c.alias = target
	}
}

// WithDirection overrides the HasDirection flag derived from the handler.
func WithDirection(v bool) Option {
	return func(c *bindingConfig) {
		c.withDirection = &v
	}
}

// Named sets the action name of the binding.
func Named(name string) Option {
	return func(c *bindingConfig) {
		c.name = name
	}
}

// NewBinding builds a Binding from opts.
func NewBinding(opts ...Option) *Binding {
	var c bindingConfig
	for _, opt := range opts {
		opt(&c)
	}

	b := &Binding{
		Direction: c.direction,
		Name:      c.name,
	}
	switch {
	case c.dirHandler != nil:
		b.Handler = wrapDirHandler(c.dirHandler)
		b.HasDirection = true
	case c.handler != nil:
		b.Handler = c.handler
	}
	if c.withDirection != nil && b.Handler != nil {
		b.HasDirection = *c.withDirection
	}
	if c.alias != nil {
		b.Alias = keys.Translate(c.alias)
	}
	return b
}

// wrapDirHandler adapts h so it receives the primary direction, or a unit
// downward direction when none was resolved.
func wrapDirHandler(h DirHandler) Handler {
	return func(a Args) error {
		d, ok := a.Direction()
		if !ok {
			d = Direction{Down: 1}
		}
		return h(a, d)
	}
}

// IsAlias reports whether the binding redirects elsewhere.
func (b *Binding) IsAlias() bool {
	return b.Alias != nil
}

// Call invokes the handler with args. Bindings without a handler are a
// no-op.
func (b *Binding) Call(a Args) error {
	if b == nil || b.Handler == nil {
		return nil
	}
	a.Binding = b
	return b.Handler(a)
}
