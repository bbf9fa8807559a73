package app

import (
	"github.com/llehouerou/rove/internal/bindings"
)

// newRegistry binds every action name to its handler. Handlers are method
// values on m, so they are only invoked on a live model.
func (m *Model) newRegistry() *bindings.Registry {
	r := bindings.NewRegistry()

	// Browser
	r.DirFunc(bindings.Browser, bindings.ActionMove, m.browserMove)
	r.Func(bindings.Browser, bindings.ActionTop, m.browserTop)
	r.Func(bindings.Browser, bindings.ActionBottom, m.browserBottom)
	r.Func(bindings.Browser, bindings.ActionMovePercent, m.browserPercent)
	r.DirFunc(bindings.Browser, bindings.ActionHalfPage, m.browserHalfPage)
	r.Func(bindings.Browser, bindings.ActionParent, m.browserParent)
	r.Func(bindings.Browser, bindings.ActionOpen, m.browserOpen)
	r.Func(bindings.Browser, bindings.ActionView, m.browserView)
	r.Func(bindings.Browser, bindings.ActionGo, m.browserGo)
	r.Func(bindings.Browser, bindings.ActionToggle, m.browserToggle)
	r.Func(bindings.Browser, bindings.ActionSort, m.browserSort)
	r.Func(bindings.Browser, bindings.ActionSortReverse, m.browserSortReverse)
	r.Func(bindings.Browser, bindings.ActionMark, m.browserMark)
	r.Func(bindings.Browser, bindings.ActionMarkAll, m.browserMarkAll)
	r.Func(bindings.Browser, bindings.ActionUnmarkAll, m.browserUnmarkAll)
	r.Func(bindings.Browser, bindings.ActionRefresh, m.browserRefresh)
	r.Func(bindings.Browser, bindings.ActionSearchNext, m.browserSearchNext)
	r.Func(bindings.Browser, bindings.ActionSearchPrev, m.browserSearchPrev)
	r.Func(bindings.Browser, bindings.ActionBookmarkSet, m.bookmarkSet)
	r.Func(bindings.Browser, bindings.ActionBookmarkJump, m.bookmarkJump)
	r.Func(bindings.Browser, bindings.ActionBookmarkDel, m.bookmarkDelete)
	r.Func(bindings.Browser, bindings.ActionConsole, m.openConsole(""))
	r.Func(bindings.Browser, bindings.ActionConsoleCd, m.openConsole("cd "))
	r.Func(bindings.Browser, bindings.ActionConsoleRename, m.openRename)
	r.Func(bindings.Browser, bindings.ActionConsoleFind, m.openConsole("find "))
	r.Func(bindings.Browser, bindings.ActionConsoleFilter, m.openFilter)
	r.Func(bindings.Browser, bindings.ActionQuit, m.quitHandler)

	// Console
	r.Func(bindings.Console, bindings.ActionType, m.consoleType)
	r.DirFunc(bindings.Console, bindings.ActionCursor, m.consoleCursor)
	r.Func(bindings.Console, bindings.ActionCursorStart, m.consoleStart)
	r.Func(bindings.Console, bindings.ActionCursorEnd, m.consoleEnd)
	r.Func(bindings.Console, bindings.ActionDeleteBack, m.consoleDeleteBack)
	r.Func(bindings.Console, bindings.ActionDeleteForward, m.consoleDeleteForward)
	r.Func(bindings.Console, bindings.ActionDeleteWord, m.consoleDeleteWord)
	r.Func(bindings.Console, bindings.ActionDeleteRest, m.consoleDeleteRest)
	r.Func(bindings.Console, bindings.ActionDeleteStart, m.consoleDeleteStart)
	r.DirFunc(bindings.Console, bindings.ActionHistory, m.consoleHistory)
	r.Func(bindings.Console, bindings.ActionComplete, m.consoleComplete)
	r.Func(bindings.Console, bindings.ActionExecute, m.consoleExecute)
	r.Func(bindings.Console, bindings.ActionClose, m.consoleClose)

	// Pager
	r.DirFunc(bindings.Pager, bindings.ActionScroll, m.pagerScroll)
	r.Func(bindings.Pager, bindings.ActionTop, m.pagerTop)
	r.Func(bindings.Pager, bindings.ActionBottom, m.pagerBottom)
	r.DirFunc(bindings.Pager, bindings.ActionHalfPage, m.pagerHalfPage)
	r.Func(bindings.Pager, bindings.ActionClose, m.pagerClose)

	return r
}
