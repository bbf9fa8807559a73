// Package keymap stores key bindings in a trie and resolves incoming key
// codes against them one key at a time.
//
// A KeyMap maps key paths to Bindings. Paths may contain two sentinels:
// keys.Dir, where a movement from a companion direction KeyMap is read,
// and keys.Any, which captures a single arbitrary key. A Buffer consumes
// keys and reports when a chord is still collecting, has matched a
// binding, or has failed.
//
//	dirs := keymap.New()
//	dirs.Direction(keymap.Direction{Down: 1}, keys.Str("j"))
//
//	cmds := keymap.New()
//	cmds.Add([]keys.Spec{keys.Str("d<dir>")}, keymap.DirFunc(cut))
//
//	buf := keymap.NewBuffer(cmds, dirs)
//	res := buf.Feed('3') // Collecting
//	res = buf.Feed('d')  // Collecting
//	res = buf.Feed('j')  // Matched, res.Args.Directions = [{3 0}]
package keymap

import (
	"errors"
	"fmt"

	"github.com/llehouerou/rove/internal/keys"
	"github.com/llehouerou/rove/internal/trie"
)

// Tree is the trie a KeyMap is built on.
type Tree = trie.Trie[keys.Code, *Binding]

// Node is a node of a KeyMap trie.
type Node = trie.Node[keys.Code, *Binding]

// KeyMap holds bindings keyed by key code paths.
type KeyMap struct {
	tree *Tree
}

// New returns an empty KeyMap.
func New() *KeyMap {
	return &KeyMap{tree: trie.New[keys.Code, *Binding]()}
}

// Tree exposes the underlying trie.
func (m *KeyMap) Tree() *Tree {
	return m.tree
}

// Root returns the root node.
func (m *KeyMap) Root() *Node {
	return m.tree.Root()
}

// Add binds every spec to one shared Binding built from opts and returns
// it.
func (m *KeyMap) Add(specs []keys.Spec, opts ...Option) *Binding {
	b := NewBinding(opts...)
	m.Set(b, specs...)
	return b
}

// Set stores b at the path of every spec, creating intermediate nodes and
// replacing whatever was there. Forced trie sets cannot fail.
func (m *KeyMap) Set(b *Binding, specs ...keys.Spec) {
	for _, spec := range specs {
		_ = m.tree.Set(keys.Translate(spec), b, true)
	}
}

// Bind binds h to every spec.
func (m *KeyMap) Bind(h Handler, specs ...keys.Spec) *Binding {
	return m.Add(specs, Func(h))
}

// Alias binds every spec in newSpecs as an alias of existing.
func (m *KeyMap) Alias(existing keys.Spec, newSpecs ...keys.Spec) *Binding {
	return m.Add(newSpecs, Alias(existing))
}

// Direction binds a fixed direction to every spec. It is meant for the
// companion direction map.
func (m *KeyMap) Direction(d Direction, specs ...keys.Spec) *Binding {
	return m.Add(specs, Dir(d))
}

// Lookup returns the binding stored at spec.
func (m *KeyMap) Lookup(spec keys.Spec) (*Binding, error) {
	path := keys.Translate(spec)
	b, err := m.tree.Get(path)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", keys.Describe(path), err)
	}
	return b, nil
}

// Merge returns a new KeyMap with other's bindings layered over m's.
func (m *KeyMap) Merge(other *KeyMap) *KeyMap {
	return &KeyMap{tree: m.tree.Merge(other.tree)}
}

// Entry is one bound path, as listed by Entries.
type Entry struct {
	Keys    []keys.Code
	Binding *Binding
}

// Entries lists every bound path in key order.
func (m *KeyMap) Entries() []Entry {
	var out []Entry
	m.tree.Root().Walk(func(path []keys.Code, b *Binding) {
		out = append(out, Entry{Keys: path, Binding: b})
	})
	return out
}

// Validate checks every alias in m resolves to an existing path. Cyclic
// aliases are only detected while matching.
func (m *KeyMap) Validate() error {
	var errs []error
	for _, e := range m.Entries() {
		if e.Binding == nil {
			errs = append(errs, fmt.Errorf("%w: %q has no binding", ErrMalformedTrie, keys.Describe(e.Keys)))
			continue
		}
		if !e.Binding.IsAlias() {
			continue
		}
		if _, err := m.tree.Traverse(e.Binding.Alias); err != nil {
			errs = append(errs, fmt.Errorf("%w: alias %q -> %q: %w",
				ErrMalformedTrie, keys.Describe(e.Keys), keys.Describe(e.Binding.Alias), err))
		}
	}
	return errors.Join(errs...)
}
