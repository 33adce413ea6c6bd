// Package modal provides a blocking alert dialog with a single OK button.
package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/pickr/internal/keys"
	"github.com/zjrosen/pickr/internal/ui/overlay"
	"github.com/zjrosen/pickr/internal/ui/styles"
)

const (
	defaultMinWidth = 40
	defaultButton   = "OK"

	// ZoneOK is the bubblezone ID of the OK button.
	ZoneOK = "modal-ok"
)

// Config controls modal appearance.
type Config struct {
	Title    string // Modal title (e.g., "Clipboard")
	Message  string // Body text, wrapped to the box width
	Button   string // Button label (default: OK)
	MinWidth int    // Minimum content width (0 = default 40)
}

// DismissMsg is sent when the user acknowledges the alert.
type DismissMsg struct{}

// Model is the alert state. It is shown until dismissed.
type Model struct {
	config  Config
	visible bool
	width   int
	height  int
}

// New creates a hidden modal.
func New() Model {
	return Model{}
}

// Show opens the modal with cfg.
func (m Model) Show(cfg Config) Model {
	m.config = cfg
	m.visible = true
	return m
}

// Hide closes the modal.
func (m Model) Hide() Model {
	m.visible = false
	return m
}

// Visible reports whether the modal is open.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the body text of the open modal.
func (m Model) Message() string {
	return m.config.Message
}

// SetSize updates the viewport size used for centering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Update closes the modal on enter, esc or a click on OK. Every other
// message is swallowed while the modal is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Picker.Dismiss) {
			return m.dismiss()
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			break
		}
		if z := zone.Get(ZoneOK); z != nil && z.InBounds(msg) {
			return m.dismiss()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) dismiss() (Model, tea.Cmd) {
	m.visible = false
	return m, func() tea.Msg { return DismissMsg{} }
}

// View renders the modal box (without overlay).
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	contentWidth := max(m.config.MinWidth, defaultMinWidth, lipgloss.Width(m.config.Title))
	boxWidth := contentWidth + 2

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1).
		Render(m.config.Title)

	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	label := m.config.Button
	if label == "" {
		label = defaultButton
	}

	var content strings.Builder
	if m.config.Message != "" {
		content.WriteString(lipgloss.NewStyle().
			Foreground(styles.TextPrimaryColor).
			Width(contentWidth).
			Render(m.config.Message))
		content.WriteString("\n\n")
	}
	content.WriteString(zone.Mark(ZoneOK, styles.PrimaryButtonFocusedStyle.Render(label)))

	body := title + "\n" + divider + "\n" + lipgloss.NewStyle().Padding(1, 1).Render(content.String())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(body)
}

// Overlay renders the modal centered on bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
