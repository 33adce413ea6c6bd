// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// PickerKeyMap defines the keybindings for the picker screen.
type PickerKeyMap struct {
	// Actions
	Submit  key.Binding
	Pick    key.Binding
	Clear   key.Binding
	Copy    key.Binding
	Paste   key.Binding
	Newline key.Binding
	Press   key.Binding

	// Focus
	NextFocus key.Binding
	PrevFocus key.Binding

	// General
	Help    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

// DefaultPickerKeyMap returns the default keybindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		// Actions
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick"),
		),
		Pick: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "pick"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy result"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "new line"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "press button"),
		),

		// Focus
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Picker is the active keymap for the picker screen.
var Picker = DefaultPickerKeyMap()

// ShortHelp returns keybindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Newline, k.Clear, k.Copy, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Pick, k.Newline, k.Paste}, // Picking
		{k.Clear, k.Copy},                      // Result
		{k.NextFocus, k.PrevFocus, k.Press},    // Focus
		{k.Help, k.Quit},                       // General
	}
}
