package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/rove/internal/keys"
)

func TestCodes(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []keys.Code
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, []keys.Code{'j'}},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")}, []keys.Code{'7'}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Paste: true}, []keys.Code{'a', 'b'}},
		{"alt dropped", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, []keys.Code{'x'}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []keys.Code{keys.Enter}},
		{"ctrl+j is enter", tea.KeyMsg{Type: tea.KeyCtrlJ}, []keys.Code{keys.Enter}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []keys.Code{keys.Space}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []keys.Code{keys.Tab}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, []keys.Code{keys.BackTab}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []keys.Code{keys.Backspace}},
		{"escape", tea.KeyMsg{Type: tea.KeyEscape}, []keys.Code{keys.Escape}},
		{"ctrl+a", tea.KeyMsg{Type: tea.KeyCtrlA}, []keys.Code{keys.Ctrl('a')}},
		{"ctrl+h", tea.KeyMsg{Type: tea.KeyCtrlH}, []keys.Code{keys.Ctrl('h')}},
		{"ctrl+z", tea.KeyMsg{Type: tea.KeyCtrlZ}, []keys.Code{keys.Ctrl('z')}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, []keys.Code{keys.Up}},
		{"ctrl+down", tea.KeyMsg{Type: tea.KeyCtrlDown}, []keys.Code{keys.Down}},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, []keys.Code{keys.PageDown}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, []keys.Code{keys.Delete}},
		{"function key", tea.KeyMsg{Type: tea.KeyF5}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Codes(tt.msg))
		})
	}
}

func TestCodes_MatchesSpecTags(t *testing.T) {
	assert.Equal(t, keys.Str("<cr>").Codes(), Codes(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, keys.Str("<c-d>").Codes(), Codes(tea.KeyMsg{Type: tea.KeyCtrlD}))
	assert.Equal(t, keys.Str("<bs>").Codes(), Codes(tea.KeyMsg{Type: tea.KeyBackspace}))
	assert.Equal(t, keys.Str("<pagedown>").Codes(), Codes(tea.KeyMsg{Type: tea.KeyPgDown}))
	assert.Equal(t, keys.Str("<btab>").Codes(), Codes(tea.KeyMsg{Type: tea.KeyShiftTab}))
}
