// Package input converts terminal key events into key codes for the
// binding engine.
package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rove/internal/keys"
)

var special = map[tea.KeyType]keys.Code{
	tea.KeyEnter:     keys.Enter,
	tea.KeyCtrlJ:     keys.Enter,
	tea.KeyTab:       keys.Tab,
	tea.KeyShiftTab:  keys.BackTab,
	tea.KeyBackspace: keys.Backspace,
	tea.KeyEscape:    keys.Escape,
	tea.KeySpace:     keys.Space,
	tea.KeyUp:        keys.Up,
	tea.KeyDown:      keys.Down,
	tea.KeyLeft:      keys.Left,
	tea.KeyRight:     keys.Right,
	tea.KeyCtrlUp:    keys.Up,
	tea.KeyCtrlDown:  keys.Down,
	tea.KeyCtrlLeft:  keys.Left,
	tea.KeyCtrlRight: keys.Right,
	tea.KeyHome:      keys.Home,
	tea.KeyEnd:       keys.End,
	tea.KeyPgUp:      keys.PageUp,
	tea.KeyPgDown:    keys.PageDown,
	tea.KeyDelete:    keys.Delete,
	tea.KeyInsert:    keys.Insert,
}

// Codes returns the key codes carried by msg. A pasted or batched rune
// message yields one code per rune. Keys with no code (function keys,
// shifted arrows) yield nil. The alt modifier is dropped.
func Codes(msg tea.KeyMsg) []keys.Code {
	if msg.Type == tea.KeyRunes {
		out := make([]keys.Code, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, keys.Code(r))
		}
		return out
	}
	if c, ok := special[msg.Type]; ok {
		return []keys.Code{c}
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return []keys.Code{keys.Code(msg.Type)}
	}
	return nil
}

