// Package console is the single-line command editor opened from the
// browser.
package console

import (
	"slices"
	"unicode"
)

// historySize bounds the number of remembered lines.
const historySize = 100

// Model is the console line editor.
type Model struct {
	line   []rune
	pos    int
	prompt string
	open   bool

	history []string
	// histPos indexes history while browsing it; len(history) is the
	// line being edited.
	histPos int
	draft   string
}

// New returns a closed console.
func New() *Model {
	return &Model{}
}

// Open shows the console with initial text and the cursor at its end.
func (m *Model) Open(prompt, initial string) {
	m.prompt = prompt
	m.line = []rune(initial)
	m.pos = len(m.line)
	m.histPos = len(m.history)
	m.draft = ""
	m.open = true
}

// Close hides the console and drops the line.
func (m *Model) Close() {
	m.open = false
	m.line = nil
	m.pos = 0
}

// IsOpen reports whether the console is shown.
func (m *Model) IsOpen() bool {
	return m.open
}

// Line returns the edited text.
func (m *Model) Line() string {
	return string(m.line)
}

// Prompt returns the prompt shown before the line.
func (m *Model) Prompt() string {
	return m.prompt
}

// Pos returns the cursor position in runes.
func (m *Model) Pos() int {
	return m.pos
}

// Insert inserts s at the cursor.
func (m *Model) Insert(s string) {
	rs := []rune(s)
	m.line = slices.Insert(m.line, m.pos, rs...)
	m.pos += len(rs)
}

// MoveCursor moves the cursor by n runes, clamped to the line.
func (m *Model) MoveCursor(n int) {
	m.pos = min(max(m.pos+n, 0), len(m.line))
}

// Start moves the cursor to the beginning of the line.
func (m *Model) Start() {
	m.pos = 0
}

// End moves the cursor to the end of the line.
func (m *Model) End() {
	m.pos = len(m.line)
}

// DeleteBack deletes n runes before the cursor. On an empty line it
// reports false so that the caller can close the console.
func (m *Model) DeleteBack(n int) bool {
	if len(m.line) == 0 {
		return false
	}
	from := max(m.pos-max(n, 1), 0)
	m.line = slices.Delete(m.line, from, m.pos)
	m.pos = from
	return true
}

// DeleteForward deletes n runes under and after the cursor.
func (m *Model) DeleteForward(n int) {
	to := min(m.pos+max(n, 1), len(m.line))
	m.line = slices.Delete(m.line, m.pos, to)
}

// DeleteWord deletes the word before the cursor along with the spaces
// that follow it.
func (m *Model) DeleteWord() {
	i := m.pos
	for i > 0 && unicode.IsSpace(m.line[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(m.line[i-1]) {
		i--
	}
	m.line = slices.Delete(m.line, i, m.pos)
	m.pos = i
}

// DeleteRest deletes from the cursor to the end of the line.
func (m *Model) DeleteRest() {
	m.line = m.line[:m.pos]
}

// DeleteStart deletes from the start of the line to the cursor.
func (m *Model) DeleteStart() {
	m.line = slices.Delete(m.line, 0, m.pos)
	m.pos = 0
}

// History moves through previously submitted lines: negative n goes back
// in time, positive n forward. Moving past the newest entry restores the
// line that was being typed.
func (m *Model) History(n int) {
	if len(m.history) == 0 || n == 0 {
		return
	}
	if m.histPos == len(m.history) {
		m.draft = string(m.line)
	}
	m.histPos = min(max(m.histPos+n, 0), len(m.history))
	text := m.draft
	if m.histPos < len(m.history) {
		text = m.history[m.histPos]
	}
	m.line = []rune(text)
	m.pos = len(m.line)
}

// Submit returns the line, records it in the history and closes the
// console.
func (m *Model) Submit() string {
	line := string(m.line)
	if line != "" && (len(m.history) == 0 || m.history[len(m.history)-1] != line) {
		m.history = append(m.history, line)
		if len(m.history) > historySize {
			m.history = slices.Delete(m.history, 0, len(m.history)-historySize)
		}
	}
	m.Close()
	return line
}

// Complete extends a partly typed command name when exactly one command
// matches. It reports whether the line changed.
func (m *Model) Complete() bool {
	word := string(m.line)
	if word == "" || slices.Contains(m.line, ' ') {
		return false
	}
	matches := Complete(word)
	if len(matches) != 1 {
		return false
	}
	m.line = []rune(matches[0] + " ")
	m.pos = len(m.line)
	return true
}
