package browser

import (
	"cmp"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
	Mode    fs.FileMode
}

// Hidden reports whether the entry is a dot file.
func (e Entry) Hidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// Ext returns the lower-cased extension without the dot, or "" for
// directories.
func (e Entry) Ext() string {
	if e.IsDir {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(e.Name)), ".")
}

// ListDir reads dir. Symlinks are resolved so that a link to a directory
// lists as a directory; a dangling link keeps its own metadata.
func ListDir(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	result := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		path := filepath.Join(dir, d.Name())
		info, err := d.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil {
				info = target
			}
		}
		result = append(result, Entry{
			Name:    d.Name(),
			Path:    path,
			IsDir:   info.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Mode:    d.Type() | info.Mode().Perm(),
		})
	}
	return result, nil
}

// SortKey selects the listing order.
type SortKey string

// Sort keys.
const (
	SortBasename SortKey = "basename"
	SortSize     SortKey = "size"
	SortMtime    SortKey = "mtime"
	SortType     SortKey = "type"
)

// SortKeys lists every sort key.
var SortKeys = []SortKey{SortBasename, SortSize, SortMtime, SortType}

// ParseSortKey returns the sort key named s.
func ParseSortKey(s string) (SortKey, bool) {
	k := SortKey(strings.ToLower(s))
	return k, slices.Contains(SortKeys, k)
}

func compareName(a, b Entry) int {
	if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// compareFunc returns the ordering for key. Size and mtime put the
// largest and newest first; every key falls back to the name.
func compareFunc(key SortKey) func(a, b Entry) int {
	switch key {
	case SortSize:
		return func(a, b Entry) int {
			if c := cmp.Compare(b.Size, a.Size); c != 0 {
				return c
			}
			return compareName(a, b)
		}
	case SortMtime:
		return func(a, b Entry) int {
			if c := b.ModTime.Compare(a.ModTime); c != 0 {
				return c
			}
			return compareName(a, b)
		}
	case SortType:
		return func(a, b Entry) int {
			if c := cmp.Compare(a.Ext(), b.Ext()); c != 0 {
				return c
			}
			return compareName(a, b)
		}
	}
	return compareName
}

// sortEntries orders entries in place. Reverse flips the key order;
// directories stay first when dirsFirst is set.
func sortEntries(entries []Entry, key SortKey, reverse, dirsFirst bool) {
	slices.SortStableFunc(entries, compareFunc(key))
	if reverse {
		slices.Reverse(entries)
	}
	if dirsFirst {
		slices.SortStableFunc(entries, func(a, b Entry) int {
			switch {
			case a.IsDir == b.IsDir:
				return 0
			case a.IsDir:
				return -1
			}
			return 1
		})
	}
}
