package modal

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func alert() Model {
	return New().Show(Config{
		Title:   "Clipboard",
		Message: "Copy failed. You can select and copy manually.",
	}).SetSize(80, 24)
}

func TestNew_Hidden(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
	assert.Equal(t, "bg", m.Overlay("bg"))
}

func TestView_RendersTitleMessageAndButton(t *testing.T) {
	view := ansi.Strip(zone.Scan(alert().View()))

	assert.Contains(t, view, "Clipboard")
	assert.Contains(t, view, "Copy failed.")
	assert.Contains(t, view, "OK")
	assert.Contains(t, view, "╭")
}

func TestView_CustomButtonLabel(t *testing.T) {
	m := New().Show(Config{Title: "T", Button: "Got it"})

	assert.Contains(t, ansi.Strip(zone.Scan(m.View())), "Got it")
}

func TestView_MinWidthKeepsMessageOnOneLine(t *testing.T) {
	msg := "Copy failed. You can select and copy manually."

	narrow := ansi.Strip(zone.Scan(New().Show(Config{Title: "Clipboard", Message: msg}).View()))
	assert.NotContains(t, narrow, msg, "default width wraps a long message")

	wide := ansi.Strip(zone.Scan(New().Show(Config{
		Title:    "Clipboard",
		Message:  msg,
		MinWidth: len(msg),
	}).View()))
	assert.Contains(t, wide, msg)
}

func TestUpdate_EnterDismisses(t *testing.T) {
	m, cmd := alert().Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.Visible())
	require.NotNil(t, cmd)
	assert.Equal(t, DismissMsg{}, cmd())
}

func TestUpdate_EscDismisses(t *testing.T) {
	m, cmd := alert().Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.Visible())
	require.NotNil(t, cmd)
}

func TestUpdate_OtherKeysAreSwallowed(t *testing.T) {
	m, cmd := alert().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.True(t, m.Visible())
	assert.Nil(t, cmd)
}

func TestUpdate_HiddenIgnoresInput(t *testing.T) {
	m, cmd := New().Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.Visible())
	assert.Nil(t, cmd)
}

func TestOverlay_CentersOnBackground(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")

	out := ansi.Strip(zone.Scan(alert().Overlay(bg)))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 24)
	assert.Equal(t, strings.Repeat(".", 80), lines[0])
	assert.Contains(t, out, "Copy failed.")
}
