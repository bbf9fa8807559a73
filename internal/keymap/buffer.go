package keymap

import (
	"errors"
	"fmt"
	"math"

	"github.com/llehouerou/rove/internal/keys"
	"github.com/llehouerou/rove/internal/trie"
)

const (
	// MaxAliasDepth bounds alias chains followed while resolving one chord.
	MaxAliasDepth = 20
	// MaxCount caps quantifiers and scaled directions.
	MaxCount = math.MaxInt32
)

var (
	// ErrNoSuchBinding means the typed keys do not lead to any binding.
	ErrNoSuchBinding = errors.New("no such binding")
	// ErrMalformedTrie means the binding table itself is broken.
	ErrMalformedTrie = errors.New("malformed key map")
	// ErrAliasRecursion means an alias chain exceeded MaxAliasDepth.
	ErrAliasRecursion = errors.New("alias recursion limit exceeded")
)

// IsConfigError reports whether err points at a broken binding table
// rather than a mistyped chord.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrMalformedTrie) || errors.Is(err, ErrAliasRecursion)
}

// Status is the state of the chord being collected.
type Status int

const (
	Collecting Status = iota
	Matched
	Failed
)

func (s Status) String() string {
	switch s {
	case Collecting:
		return "collecting"
	case Matched:
		return "matched"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Args is what a matched binding's handler receives.
type Args struct {
	// Quant is the number typed before the chord; valid if HasQuant.
	Quant    int
	HasQuant bool

	// Directions holds every resolved direction in the order typed.
	Directions []Direction

	// Matches holds the keys captured by <any>, in order.
	Matches []keys.Code

	// Keys is the display form of the whole chord.
	Keys string

	// Binding is the resolved binding.
	Binding *Binding
}

// N returns the typed quantifier, or def if none was typed.
func (a Args) N(def int) int {
	if a.HasQuant {
		return a.Quant
	}
	return def
}

// Direction returns the binding's fixed direction if it has one, else the
// first resolved direction.
func (a Args) Direction() (Direction, bool) {
	if a.Binding != nil && a.Binding.Direction != nil {
		return *a.Binding.Direction, true
	}
	if len(a.Directions) > 0 {
		return a.Directions[0], true
	}
	return Direction{}, false
}

// MatchString returns the captured keys as a string.
func (a Args) MatchString() string {
	rs := make([]rune, 0, len(a.Matches))
	for _, c := range a.Matches {
		rs = append(rs, rune(c))
	}
	return string(rs)
}

// Result reports the outcome of feeding one key.
type Result struct {
	Status Status
	// Err explains a Failed status.
	Err error
	// Args is populated once Status is Matched.
	Args Args
}

// Call invokes the matched binding. It is a no-op unless Matched.
func (r Result) Call() error {
	if r.Status != Matched {
		return nil
	}
	return r.Args.Binding.Call(r.Args)
}

// Buffer incrementally matches keys against a command KeyMap and its
// companion direction KeyMap. A Buffer belongs to one input context and
// must be cleared after every matched or failed chord.
type Buffer struct {
	keymap     *KeyMap
	directions *KeyMap

	quant       int
	hasQuant    bool
	dirQuant    int
	hasDirQuant bool

	cmdNode *Node
	dirNode *Node

	dirs    []Direction
	matches []keys.Code
	binding *Binding
	all     []keys.Code

	status Status
	err    error

	// evalQuant is true while a leading number may still be typed.
	evalQuant bool
	// evalCommand is false while inside a <dir> placeholder.
	evalCommand bool
}

// NewBuffer returns a cleared Buffer over keymap and directions.
func NewBuffer(keymap, directions *KeyMap) *Buffer {
	b := &Buffer{keymap: keymap, directions: directions}
	b.Clear()
	return b
}

// SetMaps replaces the key maps and clears the buffer.
func (b *Buffer) SetMaps(keymap, directions *KeyMap) {
	b.keymap = keymap
	b.directions = directions
	b.Clear()
}

// Clear resets all per-chord state.
func (b *Buffer) Clear() {
	b.quant, b.hasQuant = 0, false
	b.dirQuant, b.hasDirQuant = 0, false
	b.cmdNode = b.keymap.Root()
	b.dirNode = b.directions.Root()
	b.dirs = nil
	b.matches = nil
	b.binding = nil
	b.all = nil
	b.status = Collecting
	b.err = nil
	b.evalQuant = true
	b.evalCommand = true
}

// Status returns the state of the current chord.
func (b *Buffer) Status() Status {
	return b.status
}

// Err returns why the current chord failed.
func (b *Buffer) Err() error {
	return b.err
}

// Empty reports whether no key was fed since the last Clear.
func (b *Buffer) Empty() bool {
	return len(b.all) == 0
}

// String renders the keys fed so far.
func (b *Buffer) String() string {
	return keys.FormatSeq(b.all)
}

// Feed consumes one key code. Once the chord has matched or failed, Feed
// keeps returning that result until Clear is called.
func (b *Buffer) Feed(key keys.Code) Result {
	if b.status != Collecting {
		return b.result()
	}
	b.all = append(b.all, key)

	if b.evalQuant && b.feedQuantifier(key) {
		return b.result()
	}
	if b.evalCommand {
		if !b.feedCommand(key) {
			return b.result()
		}
		// The command trie opened a <dir> placeholder: key may start the
		// direction quantifier or the direction itself.
		if b.feedQuantifier(key) {
			return b.result()
		}
	}
	b.feedDirection(key)
	return b.result()
}

// Simulate feeds every key of spec, stopping at the first terminal
// result.
func (b *Buffer) Simulate(spec keys.Spec) Result {
	res := b.result()
	for _, c := range keys.Translate(spec) {
		res = b.Feed(c)
		if res.Status != Collecting {
			break
		}
	}
	return res
}

func (b *Buffer) result() Result {
	r := Result{Status: b.status, Err: b.err}
	if b.status == Matched {
		r.Args = Args{
			Quant:      b.quant,
			HasQuant:   b.hasQuant,
			Directions: b.dirs,
			Matches:    b.matches,
			Keys:       b.String(),
			Binding:    b.binding,
		}
	}
	return r
}

func (b *Buffer) fail(err error) {
	b.status = Failed
	b.err = err
}

// feedQuantifier accumulates a digit into the active quantifier. The first
// non-digit ends the quantifier for the current scope. A digit is not a
// quantifier where the trie expects <any>.
func (b *Buffer) feedQuantifier(key keys.Code) bool {
	node := b.cmdNode
	if !b.evalCommand {
		node = b.dirNode
	}
	if !key.IsDigit() || node.Has(keys.Any) {
		b.evalQuant = false
		return false
	}
	digit := int(key - '0')
	if b.evalCommand {
		b.quant = accumulate(b.quant, digit)
		b.hasQuant = true
	} else {
		b.dirQuant = accumulate(b.dirQuant, digit)
		b.hasDirQuant = true
	}
	return true
}

// accumulate appends digit to acc, sticking at MaxCount once reached.
func accumulate(acc, digit int) int {
	if acc > (MaxCount-digit)/10 {
		return MaxCount
	}
	return acc*10 + digit
}

// feedCommand advances the command pointer. It returns true only when key
// was not consumed because a <dir> placeholder was entered.
func (b *Buffer) feedCommand(key keys.Code) bool {
	node := b.cmdNode
	if node.IsLeaf() {
		b.fail(fmt.Errorf("%w: expected a mapping after %q", ErrMalformedTrie, b.String()))
		return false
	}
	if next, ok := node.Child(key); ok {
		b.cmdNode = next
		b.finish()
		return false
	}
	if next, ok := node.Child(keys.Dir); ok {
		b.evalCommand = false
		b.evalQuant = true
		b.cmdNode = next
		b.dirNode = b.directions.Root()
		return true
	}
	if next, ok := node.Child(keys.Any); ok {
		b.matches = append(b.matches, key)
		b.cmdNode = next
		b.finish()
		return false
	}
	b.fail(fmt.Errorf("%w: %q", ErrNoSuchBinding, b.String()))
	return false
}

// finish resolves the command pointer if it reached a leaf, following
// aliases through the command map.
func (b *Buffer) finish() {
	for depth := MaxAliasDepth; ; depth-- {
		if depth <= 0 {
			b.fail(fmt.Errorf("%w: %q", ErrAliasRecursion, b.String()))
			return
		}
		if !b.cmdNode.IsLeaf() {
			return
		}
		bind := b.cmdNode.Value()
		switch {
		case bind == nil:
			b.fail(fmt.Errorf("%w: empty binding at %q", ErrMalformedTrie, b.String()))
			return
		case bind.IsAlias():
			next, err := b.keymap.Tree().Traverse(bind.Alias)
			if err != nil {
				b.fail(fmt.Errorf("%w: alias %q: %w", ErrMalformedTrie, keys.Describe(bind.Alias), err))
				return
			}
			b.cmdNode = next
		case bind.Handler == nil:
			b.fail(fmt.Errorf("%w: binding at %q has no handler", ErrMalformedTrie, b.String()))
			return
		default:
			b.binding = bind
			b.status = Matched
			return
		}
	}
}

// feedDirection advances the direction pointer.
func (b *Buffer) feedDirection(key keys.Code) {
	// A number typed before a chord that starts with <dir> belongs to the
	// direction.
	if b.hasQuant && b.binding == nil && !b.hasDirQuant {
		b.dirQuant, b.hasDirQuant = b.quant, true
		b.quant, b.hasQuant = 0, false
	}

	next, err := trie.TraverseFrom(b.dirNode, []keys.Code{key})
	switch {
	case errors.Is(err, trie.ErrNotATrie):
		b.fail(fmt.Errorf("%w: direction map: %w", ErrMalformedTrie, err))
		return
	case err != nil:
		b.fail(fmt.Errorf("%w: %q", ErrNoSuchBinding, b.String()))
		return
	}
	b.dirNode = next
	b.finishDirection()
}

// finishDirection resolves the direction pointer if it reached a leaf,
// then resumes the command path after the <dir> placeholder.
func (b *Buffer) finishDirection() {
	for depth := MaxAliasDepth; ; depth-- {
		if depth <= 0 {
			b.fail(fmt.Errorf("%w: %q", ErrAliasRecursion, b.String()))
			return
		}
		if !b.dirNode.IsLeaf() {
			return
		}
		bind := b.dirNode.Value()
		switch {
		case bind == nil:
			b.fail(fmt.Errorf("%w: empty direction at %q", ErrMalformedTrie, b.String()))
			return
		case bind.IsAlias():
			next, err := b.directions.Tree().Traverse(bind.Alias)
			if err != nil {
				b.fail(fmt.Errorf("%w: direction alias %q: %w", ErrMalformedTrie, keys.Describe(bind.Alias), err))
				return
			}
			b.dirNode = next
		case bind.Direction == nil:
			b.fail(fmt.Errorf("%w: direction binding at %q has no direction", ErrMalformedTrie, b.String()))
			return
		default:
			d := *bind.Direction
			if b.hasDirQuant {
				d = d.Mul(b.dirQuant)
			}
			b.dirs = append(b.dirs, d)
			b.dirQuant, b.hasDirQuant = 0, false
			b.evalCommand = true
			b.finish()
			return
		}
	}
}
