// Package toaster shows short-lived notifications at the bottom of the screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/pickr/internal/ui/overlay"
	"github.com/zjrosen/pickr/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up when no duration is given.
const DefaultDuration = 2 * time.Second

// Style determines the visual appearance of the toast.
type Style int

const (
	// StyleSuccess shows ✅ with a green border.
	StyleSuccess Style = iota
	// StyleError shows ❌ with a red border.
	StyleError
	// StyleInfo shows ℹ️ with a blue border.
	StyleInfo
	// StyleWarn shows ⚠️ with a yellow border.
	StyleWarn
)

// DismissMsg hides the toast that was shown with the same ID.
type DismissMsg struct {
	ID int
}

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	id      int
}

// New creates a hidden toaster.
func New() Model {
	return Model{}
}

// Show displays message and returns the command that hides it after d.
// A newer toast replaces the current one and outlives its dismiss timer.
func (m Model) Show(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	if d <= 0 {
		d = DefaultDuration
	}
	m.id++
	m.message = message
	m.style = style
	m.visible = true

	id := m.id
	return m, tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{ID: id}
	})
}

// Update hides the toast when its own DismissMsg arrives.
func (m Model) Update(msg tea.Msg) Model {
	if dm, ok := msg.(DismissMsg); ok && dm.ID == m.id {
		return m.Hide()
	}
	return m
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text of the visible toast.
func (m Model) Message() string {
	return m.message
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	box := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var icon string
	switch m.style {
	case StyleError:
		box = box.BorderForeground(styles.ToastBorderErrorColor)
		icon = "❌"
	case StyleInfo:
		box = box.BorderForeground(styles.ToastBorderInfoColor)
		icon = "ℹ️"
	case StyleWarn:
		box = box.BorderForeground(styles.ToastBorderWarnColor)
		icon = "⚠️"
	default:
		box = box.BorderForeground(styles.ToastBorderSuccessColor)
		icon = "✅"
	}

	return box.Render(icon + " " + m.message)
}

// Overlay draws the toast bottom-center over bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}

	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}
