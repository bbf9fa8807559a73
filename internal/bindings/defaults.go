package bindings

import "github.com/llehouerou/rove/internal/keymap"

// Default describes one default binding. Keys use the key spec syntax of
// package keys.
type Default struct {
	Keys        []string
	Action      Action
	Description string
	Context     Context
	// Dir, when set, is a fixed direction handed to the action.
	Dir *keymap.Direction
}

// DirectionDefault is one entry of the shared direction map.
type DirectionDefault struct {
	Keys []string
	Dir  keymap.Direction
}

func dir(down, right int) *keymap.Direction {
	return &keymap.Direction{Down: down, Right: right}
}

// Directions are the default movement keys shared by every context that
// binds <dir>.
var Directions = []DirectionDefault{
	{[]string{"j", "<down>"}, keymap.Direction{Down: 1}},
	{[]string{"k", "<up>"}, keymap.Direction{Down: -1}},
	{[]string{"h", "<left>"}, keymap.Direction{Right: -1}},
	{[]string{"l", "<right>"}, keymap.Direction{Right: 1}},
}

// All contains every default command binding.
var All = []Default{
	// Browser
	{[]string{"<dir>"}, ActionMove, "Move (h/l leave and enter directories)", Browser, nil},
	{[]string{"gg"}, ActionTop, "Go to first entry, or entry N", Browser, nil},
	{[]string{"G"}, ActionBottom, "Go to last entry, or entry N", Browser, nil},
	{[]string{"%"}, ActionMovePercent, "Go to N percent", Browser, nil},
	{[]string{"J"}, ActionHalfPage, "Half page down", Browser, dir(1, 0)},
	{[]string{"K"}, ActionHalfPage, "Half page up", Browser, dir(-1, 0)},
	{[]string{"<bs>", "<c-h>"}, ActionParent, "Parent directory", Browser, nil},
	{[]string{"<cr>"}, ActionOpen, "Enter directory or view file", Browser, nil},
	{[]string{"i"}, ActionView, "View file", Browser, nil},
	{[]string{"g<any>"}, ActionGo, "Go to shortcut directory", Browser, nil},
	{[]string{"t<any>"}, ActionToggle, "Toggle option (h: hidden, d: directories first)", Browser, nil},
	{[]string{"tf"}, ActionConsoleFilter, "Filter entries", Browser, nil},
	{[]string{"o<any>"}, ActionSort, "Sort (s, b, n, m, t; upper case reverses; r flips)", Browser, nil},
	{[]string{"O<any>"}, ActionSortReverse, "Sort reversed", Browser, nil},
	{[]string{"<space>"}, ActionMark, "Toggle mark and move down", Browser, nil},
	{[]string{"v"}, ActionMarkAll, "Toggle all marks", Browser, nil},
	{[]string{"V"}, ActionUnmarkAll, "Clear all marks", Browser, nil},
	{[]string{"<c-r>"}, ActionRefresh, "Reload directory", Browser, nil},
	{[]string{"n"}, ActionSearchNext, "Next match", Browser, nil},
	{[]string{"N"}, ActionSearchPrev, "Previous match", Browser, nil},
	{[]string{"m<any>"}, ActionBookmarkSet, "Set bookmark", Browser, nil},
	{[]string{"`<any>", "'<any>"}, ActionBookmarkJump, "Jump to bookmark", Browser, nil},
	{[]string{"um<any>"}, ActionBookmarkDel, "Delete bookmark", Browser, nil},
	{[]string{":"}, ActionConsole, "Open console", Browser, nil},
	{[]string{"cd"}, ActionConsoleCd, "Change directory", Browser, nil},
	{[]string{"cw", "A"}, ActionConsoleRename, "Rename entry", Browser, nil},
	{[]string{"f", "/"}, ActionConsoleFind, "Find entry", Browser, nil},
	{[]string{"q", "ZZ", "<c-d>"}, ActionQuit, "Quit", Browser, nil},

	// Console
	{[]string{"<any>"}, ActionType, "Insert key", Console, nil},
	{[]string{"<left>", "<c-b>"}, ActionCursor, "Cursor left", Console, dir(0, -1)},
	{[]string{"<right>", "<c-f>"}, ActionCursor, "Cursor right", Console, dir(0, 1)},
	{[]string{"<home>", "<c-a>"}, ActionCursorStart, "Cursor to start", Console, nil},
	{[]string{"<end>", "<c-e>"}, ActionCursorEnd, "Cursor to end", Console, nil},
	{[]string{"<bs>", "<c-h>"}, ActionDeleteBack, "Delete backward", Console, nil},
	{[]string{"<del>", "<c-d>"}, ActionDeleteForward, "Delete forward", Console, nil},
	{[]string{"<c-w>"}, ActionDeleteWord, "Delete word", Console, nil},
	{[]string{"<c-k>"}, ActionDeleteRest, "Delete to end", Console, nil},
	{[]string{"<c-u>"}, ActionDeleteStart, "Delete to start", Console, nil},
	{[]string{"<up>"}, ActionHistory, "Previous history entry", Console, dir(-1, 0)},
	{[]string{"<down>"}, ActionHistory, "Next history entry", Console, dir(1, 0)},
	{[]string{"<tab>"}, ActionComplete, "Complete command name", Console, nil},
	{[]string{"<cr>"}, ActionExecute, "Execute", Console, nil},
	{[]string{"<esc>", "<c-c>"}, ActionClose, "Close console", Console, nil},

	// Pager
	{[]string{"<dir>"}, ActionScroll, "Scroll", Pager, nil},
	{[]string{"gg"}, ActionTop, "Go to top, or line N", Pager, nil},
	{[]string{"G"}, ActionBottom, "Go to bottom, or line N", Pager, nil},
	{[]string{"<c-d>"}, ActionHalfPage, "Half page down", Pager, dir(1, 0)},
	{[]string{"<c-u>"}, ActionHalfPage, "Half page up", Pager, dir(-1, 0)},
	{[]string{"<space>", "<pagedown>", "f"}, ActionHalfPage, "Page down", Pager, dir(2, 0)},
	{[]string{"b", "<pageup>"}, ActionHalfPage, "Page up", Pager, dir(-2, 0)},
	{[]string{"q", "<esc>", "i"}, ActionClose, "Close pager", Pager, nil},
}

// ByContext returns the default bindings for a specific context.
func ByContext(context Context) []Default {
	var result []Default
	for _, b := range All {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}

// Describe returns the first default description of action in context.
func Describe(context Context, action Action) string {
	for _, b := range All {
		if b.Context == context && b.Action == action {
			return b.Description
		}
	}
	return ""
}
