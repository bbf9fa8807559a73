package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/rove/internal/db"
)

// PreviousKey is the bookmark that always holds the directory left by the
// last bookmark jump, so jumping to it goes back.
const PreviousKey = '\''

var (
	// ErrNoBookmark is returned when a key has no bookmark.
	ErrNoBookmark = errors.New("no such bookmark")
	// ErrBookmarkKey is returned for keys that cannot hold a bookmark.
	ErrBookmarkKey = errors.New("invalid bookmark key")
)

// Bookmark maps a single key to a directory.
type Bookmark struct {
	Key       rune
	Path      string
	UpdatedAt time.Time
}

// ValidBookmarkKey reports whether r can name a bookmark: ASCII letters,
// digits, and the previous-location key.
func ValidBookmarkKey(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == PreviousKey, r == '`':
		return true
	}
	return false
}

func checkKey(key rune) error {
	if !ValidBookmarkKey(key) {
		return fmt.Errorf("%w %q", ErrBookmarkKey, key)
	}
	return nil
}

// Bookmarks lists every bookmark ordered by key.
func (m *Manager) Bookmarks() ([]Bookmark, error) {
	rows, err := m.db.Query(`SELECT key, path, updated_at FROM bookmarks ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Bookmark
	for rows.Next() {
		var (
			key     string
			b       Bookmark
			updated int64
		)
		if err := rows.Scan(&key, &b.Path, &updated); err != nil {
			return nil, err
		}
		for _, r := range key {
			b.Key = r
			break
		}
		b.UpdatedAt = time.Unix(updated, 0)
		out = append(out, b)
	}
	return out, rows.Err()
}

// Bookmark returns the path stored under key.
func (m *Manager) Bookmark(key rune) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	return getBookmark(m.db, key)
}

type queryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func getBookmark(q queryRower, key rune) (string, error) {
	var path string
	err := q.QueryRow(`SELECT path FROM bookmarks WHERE key = ?`, string(key)).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w %q", ErrNoBookmark, key)
	}
	return path, err
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func setBookmark(e execer, key rune, path string) error {
	_, err := e.Exec(`
		INSERT INTO bookmarks (key, path, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			path = excluded.path,
			updated_at = excluded.updated_at
	`, string(key), path, time.Now().Unix())
	return err
}

// SetBookmark stores path under key, replacing any previous bookmark.
func (m *Manager) SetBookmark(key rune, path string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return setBookmark(m.db, key, path)
}

// DeleteBookmark removes the bookmark under key.
func (m *Manager) DeleteBookmark(key rune) error {
	if err := checkKey(key); err != nil {
		return err
	}
	res, err := m.db.Exec(`DELETE FROM bookmarks WHERE key = ?`, string(key))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w %q", ErrNoBookmark, key)
	}
	return nil
}

// EnterBookmark resolves key and records current under PreviousKey in the
// same transaction. It returns the directory to enter.
func (m *Manager) EnterBookmark(key rune, current string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	var target string
	err := dbutil.WithTx(context.Background(), m.db, func(tx *sql.Tx) error {
		var err error
		if target, err = getBookmark(tx, key); err != nil {
			return err
		}
		if current == "" || current == target {
			return nil
		}
		return setBookmark(tx, PreviousKey, current)
	})
	return target, err
}
