package keys

import "strings"

// Spec is anything that can be translated into a key code sequence: a
// single Code, a Seq of codes, or a Str in bracket-tag notation.
type Spec interface {
	Codes() []Code
}

// Seq is a literal key code sequence.
type Seq []Code

// Codes implements Spec.
func (s Seq) Codes() []Code {
	return append([]Code(nil), s...)
}

// Str is a key spec in bracket-tag notation, e.g. "d<dir>" or "<C-a>".
type Str string

// Codes implements Spec.
func (s Str) Codes() []Code {
	return Parse(string(s))
}

// Translate returns the key code sequence for spec. A nil spec yields nil.
func Translate(spec Spec) []Code {
	if spec == nil {
		return nil
	}
	return spec.Codes()
}

// tags maps lower-cased bracket contents to key codes.
var tags = func() map[string]Code {
	m := map[string]Code{
		"dir":      Dir,
		"any":      Any,
		"cr":       Enter,
		"enter":    Enter,
		"space":    Space,
		"tab":      Tab,
		"esc":      Escape,
		"bs":       Backspace,
		"del":      Delete,
		"insert":   Insert,
		"up":       Up,
		"down":     Down,
		"left":     Left,
		"right":    Right,
		"home":     Home,
		"end":      End,
		"pageup":   PageUp,
		"pagedown": PageDown,
		"btab":     BackTab,
	}
	for r := 'a'; r <= 'z'; r++ {
		m["c-"+string(r)] = Ctrl(r)
	}
	return m
}()

// tagNames is the preferred tag for codes rendered by Describe.
var tagNames = map[Code]string{
	Dir:       "dir",
	Any:       "any",
	Enter:     "cr",
	Space:     "space",
	Tab:       "tab",
	Escape:    "esc",
	Backspace: "bs",
	Delete:    "del",
	Insert:    "insert",
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	Home:      "home",
	End:       "end",
	PageUp:    "pageup",
	PageDown:  "pagedown",
	BackTab:   "btab",
}

// Parse translates a bracket-tag key spec into key codes.
//
// Characters outside brackets map to their code point. "<tag>" maps to the
// code of a known tag (case-insensitive); an unknown tag yields its
// characters literally, brackets included. An unterminated "<..." at the
// end yields "<" followed by the buffered characters.
func Parse(s string) []Code {
	out := make([]Code, 0, len(s))
	var (
		inBracket bool
		content   []rune
	)
	for _, r := range s {
		if !inBracket {
			if r == '<' {
				inBracket = true
				content = content[:0]
				continue
			}
			out = append(out, Code(r))
			continue
		}
		if r != '>' {
			content = append(content, r)
			continue
		}
		inBracket = false
		if c, ok := tags[strings.ToLower(string(content))]; ok {
			out = append(out, c)
			continue
		}
		out = append(out, '<')
		out = appendRunes(out, content)
		out = append(out, '>')
	}
	if inBracket {
		out = append(out, '<')
		out = appendRunes(out, content)
	}
	return out
}

func appendRunes(out []Code, rs []rune) []Code {
	for _, r := range rs {
		out = append(out, Code(r))
	}
	return out
}
