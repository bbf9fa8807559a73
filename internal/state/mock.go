// internal/state/mock.go
package state

import (
	"fmt"
	"sort"
)

// Mock is a test double for Manager.
type Mock struct {
	navState  *NavigationState
	bookmarks map[rune]string
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{bookmarks: make(map[rune]string)}
}

func (m *Mock) SaveNavigation(state NavigationState) {
	m.navState = &state
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	return m.navState, nil
}

func (m *Mock) Bookmarks() ([]Bookmark, error) {
	out := make([]Bookmark, 0, len(m.bookmarks))
	for k, p := range m.bookmarks {
		out = append(out, Bookmark{Key: k, Path: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m *Mock) Bookmark(key rune) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	p, ok := m.bookmarks[key]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrNoBookmark, key)
	}
	return p, nil
}

func (m *Mock) SetBookmark(key rune, path string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	m.bookmarks[key] = path
	return nil
}

func (m *Mock) DeleteBookmark(key rune) error {
	if _, err := m.Bookmark(key); err != nil {
		return err
	}
	delete(m.bookmarks, key)
	return nil
}

func (m *Mock) EnterBookmark(key rune, current string) (string, error) {
	target, err := m.Bookmark(key)
	if err != nil {
		return "", err
	}
	if current != "" && current != target {
		m.bookmarks[PreviousKey] = current
	}
	return target, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetNavigation(state *NavigationState) { m.navState = state }

func (m *Mock) IsClosed() bool { return m.closed }
