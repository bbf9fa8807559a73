// Package bindings assembles the runtime key maps from the default
// bindings, user configuration and the handlers registered by the
// application.
package bindings

// Context names an input context. Each context has its own command map and
// its own key buffer.
type Context string

const (
	Browser Context = "browser"
	Console Context = "console"
	Pager   Context = "pager"
)

// Contexts lists every context in display order.
var Contexts = []Context{Browser, Console, Pager}

// Action represents a user-triggerable action.
type Action string

const (
	// Browser movement
	ActionMove        Action = "move"         // <dir>
	ActionTop         Action = "top"          // gg: first entry, or the Nth
	ActionBottom      Action = "bottom"       // G: last entry, or the Nth
	ActionMovePercent Action = "move_percent" // %
	ActionHalfPage    Action = "half_page"    // J, K: fixed direction in half pages
	ActionParent      Action = "parent"       // <bs>
	ActionOpen        Action = "open"         // <cr>
	ActionGo          Action = "go"           // g<any>: shortcut directories

	// Browser listing
	ActionToggle       Action = "toggle"        // t<any>: boolean options
	ActionSort         Action = "sort"          // o<any>
	ActionSortReverse  Action = "sort_reverse"  // O<any>
	ActionMark         Action = "mark"          // <space>
	ActionMarkAll      Action = "mark_all"      // v
	ActionUnmarkAll    Action = "unmark_all"    // V
	ActionRefresh      Action = "refresh"       // <c-r>
	ActionSearchNext   Action = "search_next"   // n
	ActionSearchPrev   Action = "search_prev"   // N
	ActionView         Action = "view"          // i: open the pager
	ActionBookmarkSet  Action = "bookmark_set"  // m<any>
	ActionBookmarkJump Action = "bookmark_jump" // `<any>, '<any>
	ActionBookmarkDel  Action = "bookmark_del"  // um<any>

	// Console openers
	ActionConsole       Action = "console"        // :
	ActionConsoleCd     Action = "console_cd"     // cd
	ActionConsoleRename Action = "console_rename" // cw, A
	ActionConsoleFind   Action = "console_find"   // f
	ActionConsoleFilter Action = "console_filter" // tf

	ActionQuit Action = "quit" // q, ZZ, <c-d>

	// Console line editing
	ActionType          Action = "type"           // <any>
	ActionCursor        Action = "cursor"         // <left>, <right>, <c-b>, <c-f>
	ActionCursorStart   Action = "cursor_start"   // <home>, <c-a>
	ActionCursorEnd     Action = "cursor_end"     // <end>, <c-e>
	ActionDeleteBack    Action = "delete_back"    // <bs>, <c-h>
	ActionDeleteForward Action = "delete_forward" // <del>, <c-d>
	ActionDeleteWord    Action = "delete_word"    // <c-w>
	ActionDeleteRest    Action = "delete_rest"    // <c-k>
	ActionDeleteStart   Action = "delete_start"   // <c-u>
	ActionHistory       Action = "history"        // <up>, <down>
	ActionComplete      Action = "complete"       // <tab>
	ActionExecute       Action = "execute"        // <cr>
	ActionClose         Action = "close"          // <esc>, <c-c>, q in pager

	// Pager
	ActionScroll Action = "scroll" // <dir>
)
