package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestPicker_KeyAssignments(t *testing.T) {
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{name: "Submit uses enter", binding: Picker.Submit, expected: []string{"enter"}},
		{name: "Pick uses ctrl+r", binding: Picker.Pick, expected: []string{"ctrl+r"}},
		{name: "Clear uses ctrl+l", binding: Picker.Clear, expected: []string{"ctrl+l"}},
		{name: "Copy uses ctrl+y", binding: Picker.Copy, expected: []string{"ctrl+y"}},
		{name: "Paste uses ctrl+v", binding: Picker.Paste, expected: []string{"ctrl+v"}},
		{name: "Newline uses alt+enter", binding: Picker.Newline, expected: []string{"alt+enter"}},
		{name: "Quit uses ctrl+c and esc", binding: Picker.Quit, expected: []string{"ctrl+c", "esc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestPicker_EnterMatchesSubmitNotNewline(t *testing.T) {
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	altEnter := tea.KeyMsg{Type: tea.KeyEnter, Alt: true}

	require.True(t, key.Matches(enter, Picker.Submit))
	require.False(t, key.Matches(enter, Picker.Newline))
	require.True(t, key.Matches(altEnter, Picker.Newline))
	require.False(t, key.Matches(altEnter, Picker.Submit))
}

func TestPicker_HelpTextPresent(t *testing.T) {
	for _, group := range Picker.FullHelp() {
		for _, b := range group {
			require.NotEmpty(t, b.Help().Key)
			require.NotEmpty(t, b.Help().Desc)
		}
	}
	require.NotEmpty(t, Picker.ShortHelp())
}
