package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/pickr/internal/keys"
	"github.com/zjrosen/pickr/internal/ui/styles"
)

// Zone IDs for mouse hit testing.
const (
	zoneEntry = "entry"
	zonePick  = "pick-button"
	zoneClear = "clear-button"
	zoneCopy  = "copy-button"
)

const (
	entryHeight     = 4
	maxContentWidth = 72
	minContentWidth = 24
	resultLabel     = "Result: "
)

var buttonZones = []struct {
	id    string
	focus Focus
}{
	{zonePick, FocusPick},
	{zoneClear, FocusClear},
	{zoneCopy, FocusCopy},
}

// contentWidth returns the width of the main column for a terminal width.
func contentWidth(width int) int {
	if width <= 0 {
		return maxContentWidth
	}
	return max(min(width-4, maxContentWidth), minContentWidth)
}

func inZone(id string, msg tea.MouseMsg) bool {
	z := zone.Get(id)
	return z != nil && z.InBounds(msg)
}

func clickedButton(msg tea.MouseMsg) (Focus, bool) {
	for _, b := range buttonZones {
		if inZone(b.id, msg) {
			return b.focus, true
		}
	}
	return FocusEntry, false
}

// View implements tea.Model.
func (m Model) View() string {
	w := contentWidth(m.width)

	sections := []string{
		styles.TitleStyle.Render("🎲 pickr"),
		styles.HintStyle.Render("Type options separated by commas or new lines."),
		m.renderEntry(),
		m.renderTags(),
		m.renderButtons(),
		m.renderResult(w),
		m.footer.View(keys.Picker),
	}

	view := lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	if m.showHelp {
		view = m.helpView.Overlay(view)
	}
	if m.alert.Visible() {
		view = m.alert.Overlay(view)
	}
	view = m.toaster.Overlay(view, m.width, m.height)

	return zone.Scan(view)
}

func (m Model) renderEntry() string {
	style := styles.InputStyle
	if m.focus == FocusEntry {
		style = styles.InputFocusedStyle
	}
	return zone.Mark(zoneEntry, style.Render(m.entry.View()))
}

func (m Model) renderTags() string {
	if m.tags.Len() == 0 {
		return styles.HintStyle.Render("No options yet")
	}
	return m.tags.View()
}

func (m Model) renderButtons() string {
	pickStyle, pickLabel := styles.PrimaryButtonStyle, "Pick"
	switch {
	case m.anim.Running():
		pickStyle, pickLabel = styles.DisabledButtonStyle, "Picking…"
	case m.focus == FocusPick:
		pickStyle = styles.PrimaryButtonFocusedStyle
	}

	clearStyle := styles.SecondaryButtonStyle
	if m.focus == FocusClear {
		clearStyle = styles.SecondaryButtonFocusedStyle
	}

	copyStyle := styles.SecondaryButtonStyle
	switch {
	case m.copyConfirmed:
		copyStyle = styles.ConfirmButtonStyle
	case m.focus == FocusCopy:
		copyStyle = styles.SecondaryButtonFocusedStyle
	}

	return strings.Join([]string{
		zone.Mark(zonePick, pickStyle.Render(pickLabel)),
		zone.Mark(zoneClear, clearStyle.Render("Clear")),
		zone.Mark(zoneCopy, copyStyle.Render(m.CopyLabel())),
	}, "  ")
}

func (m Model) renderResult(width int) string {
	box := styles.ResultBoxStyle
	inner := width - box.GetHorizontalFrameSize()

	valueStyle := styles.ResultEmptyStyle
	switch {
	case m.result.HasResult():
		valueStyle = styles.ResultValueStyle
	case m.result.HasNotice():
		valueStyle = styles.ResultNoticeStyle
	}

	text := wordwrap.String(m.result.Display(), max(inner-len(resultLabel), 1))
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.ResultLabelStyle.Render(resultLabel),
		valueStyle.Render(text),
	)
	return box.Width(width - box.GetHorizontalBorderSize()).Render(line)
}
