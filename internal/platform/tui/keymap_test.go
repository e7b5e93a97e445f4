package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, km.Jump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, km.Jump},
		{"w jumps", runeKey('w'), km.Jump},
		{"r restarts", runeKey('r'), km.Restart},
		{"p pauses", runeKey('p'), km.Pause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, km.Pause},
		{"q quits", runeKey('q'), km.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, km.Screenshot},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !key.Matches(tc.msg, tc.binding) {
				t.Errorf("%q did not match %v", tc.msg.String(), tc.binding.Keys())
			}
		})
	}
}

func TestJumpDoesNotMatchOtherKeys(t *testing.T) {
	km := DefaultKeyMap()

	for _, msg := range []tea.KeyMsg{runeKey('r'), runeKey('p'), runeKey('x'), {Type: tea.KeyDown}} {
		if key.Matches(msg, km.Jump) {
			t.Errorf("%q should not jump", msg.String())
		}
	}
}
