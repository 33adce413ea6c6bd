// Package help contains the key reference overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/pickr/internal/keys"
	"github.com/zjrosen/pickr/internal/ui/overlay"
	"github.com/zjrosen/pickr/internal/ui/styles"
)

// Section titles, in FullHelp order.
var sectionTitles = []string{"Picking", "Result", "Focus", "General"}

// Model holds the help view state.
type Model struct {
	keys   keys.PickerKeyMap
	width  int
	height int
}

// New creates a help view for the active picker keymap.
func New() Model {
	return Model{keys: keys.Picker}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help box centered in an empty screen.
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	box := m.renderContent()

	if background == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, box, background)
}

func (m Model) renderContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(2)
	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		MarginTop(1)
	columnStyle := lipgloss.NewStyle().MarginRight(2)

	groups := m.keys.FullHelp()
	cols := make([]string, 0, len(groups)+1)
	for i, group := range groups {
		var col strings.Builder
		col.WriteString(sectionStyle.Render(sectionTitle(i)))
		col.WriteString("\n")
		for _, b := range group {
			col.WriteString(renderBinding(b))
		}
		cols = append(cols, columnStyle.Width(28).Render(col.String()))
	}

	var mouse strings.Builder
	mouse.WriteString(sectionStyle.Render("Mouse"))
	mouse.WriteString("\n")
	mouse.WriteString(renderKeyDesc("click", "press button"))
	mouse.WriteString(renderKeyDesc("click", "focus entry"))
	cols = append(cols, mouse.String())

	// Two sections per row keeps the box inside an 80 column terminal.
	rows := make([]string, 0, (len(cols)+1)/2)
	for i := 0; i < len(cols); i += 2 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols[i:min(i+2, len(cols))]...))
	}
	columns := lipgloss.JoinVertical(lipgloss.Left, rows...)
	width := lipgloss.Width(columns) + 4

	footer := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		MarginTop(1).
		Render("Press " + m.keys.Help.Help().Key + " or esc to close")

	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", width))

	body := lipgloss.NewStyle().Padding(0, 2).Render(columns + "\n" + footer)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Render(titleStyle.Render("Keyboard Shortcuts") + "\n" + divider + "\n" + body)
}

func sectionTitle(i int) string {
	if i < len(sectionTitles) {
		return sectionTitles[i]
	}
	return ""
}

func renderBinding(b key.Binding) string {
	h := b.Help()
	return renderKeyDesc(h.Key, h.Desc)
}

func renderKeyDesc(k, desc string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimaryColor).
		Width(12)
	descStyle := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor)
	return keyStyle.Render(k) + descStyle.Render(desc) + "\n"
}
