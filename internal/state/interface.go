package state

// Interface is what the application needs from the store; Mock stands in
// for Manager in tests.
type Interface interface {
	GetNavigation() (*NavigationState, error)
	SaveNavigation(nav NavigationState)

	Bookmarks() ([]Bookmark, error)
	Bookmark(key rune) (string, error)
	SetBookmark(key rune, path string) error
	DeleteBookmark(key rune) error
	// EnterBookmark returns the path under key and records current as
	// the PreviousKey bookmark.
	EnterBookmark(key rune, current string) (string, error)

	Close() error
}

var (
	_ Interface = (*Manager)(nil)
	_ Interface = (*Mock)(nil)
)
