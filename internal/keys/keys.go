// Package keys defines key codes and translates human-readable key specs
// such as "gg", "d<dir>" or "<C-a>" into key code sequences.
package keys

import (
	"strings"
	"unicode"
)

// Code identifies one physical keypress. Printable keys use their Unicode
// code point; named special keys live above the rune range.
type Code int

// Named special keys. They start past unicode.MaxRune so that they never
// collide with a typed character.
const (
	specialBase Code = unicode.MaxRune + 1

	Down Code = specialBase + iota
	Up
	Left
	Right
	Home
	End
	PageDown
	PageUp
	Delete
	Insert
	BackTab
)

// Common control codes.
const (
	Tab       Code = '\t'
	Enter     Code = '\n'
	Escape    Code = 27
	Space     Code = ' '
	Backspace Code = 127
)

// Sentinels used inside binding tries. They never correspond to a real
// keypress.
const (
	// Dir marks the entry point of the direction sub-grammar.
	Dir Code = 1<<30 + 1
	// Any matches exactly one arbitrary key and captures it.
	Any Code = 1<<30 + 2
)

// Ctrl returns the code produced by holding control and pressing r.
// Only ASCII letters have a control code; other runes are returned as is.
func Ctrl(r rune) Code {
	switch {
	case r >= 'a' && r <= 'z':
		return Code(r - 'a' + 1)
	case r >= 'A' && r <= 'Z':
		return Code(r - 'A' + 1)
	}
	return Code(r)
}

// IsDigit reports whether c is an ASCII digit.
func (c Code) IsDigit() bool {
	return c >= '0' && c <= '9'
}

// Codes implements Spec.
func (c Code) Codes() []Code {
	return []Code{c}
}

// Format renders a single key code for display. Codes that are not a
// printable rune render as "?".
func Format(c Code) string {
	if c < 0 || c > unicode.MaxRune {
		return "?"
	}
	r := rune(c)
	if !unicode.IsPrint(r) {
		return "?"
	}
	return string(r)
}

// FormatSeq renders a key code sequence for display.
func FormatSeq(seq []Code) string {
	var b strings.Builder
	for _, c := range seq {
		b.WriteString(Format(c))
	}
	return b.String()
}

// Describe renders a key code sequence back into spec notation, using
// bracket tags for sentinels, control codes and named keys.
func Describe(seq []Code) string {
	var b strings.Builder
	for _, c := range seq {
		if name, ok := tagNames[c]; ok {
			b.WriteString("<" + name + ">")
			continue
		}
		if c >= 1 && c <= 26 {
			b.WriteString("<c-" + string(rune('a'+c-1)) + ">")
			continue
		}
		b.WriteString(Format(c))
	}
	return b.String()
}
