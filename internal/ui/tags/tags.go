// Package tags renders the parsed choices as a wrapping row of chips.
package tags

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/pickr/internal/ui/styles"
)

const (
	ellipsis = "…"
	gap      = " "
)

// Tag is one rendered choice.
type Tag struct {
	Text   string
	Active bool
}

// Model holds the tags for the current choice list.
type Model struct {
	tags  []Tag
	width int
}

// New creates an empty tag area.
func New() Model {
	return Model{}
}

// SetChoices replaces every tag with a fresh, inactive one per choice.
func (m Model) SetChoices(choices []string) Model {
	m.tags = make([]Tag, len(choices))
	for i, c := range choices {
		m.tags[i] = Tag{Text: c}
	}
	return m
}

// SetActive highlights the tag at i and clears any other highlight.
// An out of range index clears all highlights.
func (m Model) SetActive(i int) Model {
	m.tags = cloneInactive(m.tags)
	if i >= 0 && i < len(m.tags) {
		m.tags[i].Active = true
	}
	return m
}

// ClearActive removes the highlight from every tag.
func (m Model) ClearActive() Model {
	m.tags = cloneInactive(m.tags)
	return m
}

// Tags returns the current tags.
func (m Model) Tags() []Tag {
	return m.tags
}

// Len returns the number of tags.
func (m Model) Len() int {
	return len(m.tags)
}

// SetWidth sets the width tags wrap at. Zero disables wrapping.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// View renders the chips left to right, wrapping onto new rows when the next
// chip would not fit. Returns "" when there are no tags.
func (m Model) View() string {
	if len(m.tags) == 0 {
		return ""
	}

	var rows []string
	var row []string
	rowWidth := 0

	for _, t := range m.tags {
		chip := m.renderChip(t)
		w := lipgloss.Width(chip)

		if len(row) > 0 && m.width > 0 && rowWidth+len(gap)+w > m.width {
			rows = append(rows, joinRow(row))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			rowWidth += len(gap)
		}
		row = append(row, chip)
		rowWidth += w
	}
	rows = append(rows, joinRow(row))

	return strings.Join(rows, "\n")
}

func (m Model) renderChip(t Tag) string {
	style := styles.TagStyle
	if t.Active {
		style = styles.TagActiveStyle
	}

	text := t.Text
	if m.width > 0 {
		avail := m.width - style.GetHorizontalFrameSize()
		if avail < 1 {
			avail = 1
		}
		if runewidth.StringWidth(text) > avail {
			text = runewidth.Truncate(text, avail, ellipsis)
		}
	}
	return style.Render(text)
}

func joinRow(chips []string) string {
	parts := make([]string, 0, len(chips)*2-1)
	for i, c := range chips {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func cloneInactive(in []Tag) []Tag {
	out := make([]Tag, len(in))
	for i, t := range in {
		out[i] = Tag{Text: t.Text}
	}
	return out
}
