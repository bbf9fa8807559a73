// Package trie provides an ordered-key tree whose nodes are either
// internal mappings or leaf payloads, never both.
package trie

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrPathNotFound is returned when a key along a path is absent.
	ErrPathNotFound = errors.New("path not found")
	// ErrNotATrie is returned when a walk reaches a leaf before the path
	// is exhausted.
	ErrNotATrie = errors.New("not a trie")
)

// Node is either internal (children != nil) or a leaf holding a value.
type Node[K cmp.Ordered, V any] struct {
	children map[K]*Node[K, V]
	value    V
}

func newInternal[K cmp.Ordered, V any]() *Node[K, V] {
	return &Node[K, V]{children: make(map[K]*Node[K, V])}
}

func newLeaf[K cmp.Ordered, V any](v V) *Node[K, V] {
	return &Node[K, V]{value: v}
}

// IsLeaf reports whether the node holds a payload.
func (n *Node[K, V]) IsLeaf() bool {
	return n.children == nil
}

// Value returns the leaf payload. It is the zero value for internal nodes.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Child returns the child stored under k. Leaves have no children.
func (n *Node[K, V]) Child(k K) (*Node[K, V], bool) {
	if n.children == nil {
		return nil, false
	}
	c, ok := n.children[k]
	return c, ok
}

// Has reports whether the node has a child under k.
func (n *Node[K, V]) Has(k K) bool {
	_, ok := n.Child(k)
	return ok
}

// Keys returns the child keys in ascending order.
func (n *Node[K, V]) Keys() []K {
	ks := make([]K, 0, len(n.children))
	for k := range n.children {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}

// Len returns the number of children.
func (n *Node[K, V]) Len() int {
	return len(n.children)
}

// Walk calls fn for every leaf below n with its full path, in key order.
func (n *Node[K, V]) Walk(fn func(path []K, v V)) {
	n.walk(nil, fn)
}

func (n *Node[K, V]) walk(prefix []K, fn func([]K, V)) {
	if n.IsLeaf() {
		fn(slices.Clone(prefix), n.value)
		return
	}
	for _, k := range n.Keys() {
		n.children[k].walk(append(prefix, k), fn)
	}
}

// Trie is a tree rooted at an internal node unless a value was set at the
// empty path.
type Trie[K cmp.Ordered, V any] struct {
	root *Node[K, V]
}

// New returns an empty trie.
func New[K cmp.Ordered, V any]() *Trie[K, V] {
	return &Trie[K, V]{root: newInternal[K, V]()}
}

// Root returns the root node.
func (t *Trie[K, V]) Root() *Node[K, V] {
	return t.root
}

// Set stores v at path. With force, missing or leaf intermediate nodes are
// replaced by empty mappings. Without force, every intermediate node must
// already exist as a mapping. An existing node at path is replaced.
func (t *Trie[K, V]) Set(path []K, v V, force bool) error {
	if len(path) == 0 {
		t.root = newLeaf[K, V](v)
		return nil
	}
	if t.root.IsLeaf() {
		if !force {
			return fmt.Errorf("%w: root is a leaf", ErrNotATrie)
		}
		t.root = newInternal[K, V]()
	}

	node := t.root
	for i, k := range path[:len(path)-1] {
		next, ok := node.children[k]
		switch {
		case ok && !next.IsLeaf():
		case force:
			next = newInternal[K, V]()
			node.children[k] = next
		case !ok:
			return fmt.Errorf("%w: %v at depth %d", ErrPathNotFound, k, i)
		default:
			return fmt.Errorf("%w: leaf at depth %d", ErrNotATrie, i)
		}
		node = next
	}
	node.children[path[len(path)-1]] = newLeaf[K, V](v)
	return nil
}

// Traverse walks path strictly and returns the node it ends on.
func (t *Trie[K, V]) Traverse(path []K) (*Node[K, V], error) {
	return TraverseFrom(t.root, path)
}

// TraverseFrom walks path strictly starting at n.
func TraverseFrom[K cmp.Ordered, V any](n *Node[K, V], path []K) (*Node[K, V], error) {
	for i, k := range path {
		if n.IsLeaf() {
			return nil, fmt.Errorf("%w: leaf at depth %d", ErrNotATrie, i)
		}
		next, ok := n.children[k]
		if !ok {
			return nil, fmt.Errorf("%w: %v at depth %d", ErrPathNotFound, k, i)
		}
		n = next
	}
	return n, nil
}

// Get returns the leaf value at path.
func (t *Trie[K, V]) Get(path []K) (V, error) {
	var zero V
	n, err := t.Traverse(path)
	if err != nil {
		return zero, err
	}
	if !n.IsLeaf() {
		return zero, fmt.Errorf("%w: path ends on a mapping", ErrPathNotFound)
	}
	return n.value, nil
}

// Copy returns a deep copy of every mapping node. Leaf values are copied
// by assignment.
func (t *Trie[K, V]) Copy() *Trie[K, V] {
	return &Trie[K, V]{root: copyNode(t.root)}
}

func copyNode[K cmp.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	if n.IsLeaf() {
		return newLeaf[K, V](n.value)
	}
	c := &Node[K, V]{children: make(map[K]*Node[K, V], len(n.children))}
	for k, child := range n.children {
		c.children[k] = copyNode(child)
	}
	return c
}

// Merge returns a new trie holding the union of t and other. Where both
// define a path, other wins: mappings merge recursively and any other
// conflict takes other's node. Neither input is modified.
func (t *Trie[K, V]) Merge(other *Trie[K, V]) *Trie[K, V] {
	return &Trie[K, V]{root: mergeNodes(copyNode(t.root), other.root)}
}

// mergeNodes overlays src onto dst, which must be a private copy.
func mergeNodes[K cmp.Ordered, V any](dst, src *Node[K, V]) *Node[K, V] {
	if src.IsLeaf() {
		return newLeaf[K, V](src.value)
	}
	if dst == nil || dst.IsLeaf() {
		dst = newInternal[K, V]()
	}
	for k, child := range src.children {
		dst.children[k] = mergeNodes(dst.children[k], child)
	}
	return dst
}
