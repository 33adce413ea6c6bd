package tags

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetChoices_OneTagPerChoiceInOrder(t *testing.T) {
	m := New().SetChoices([]string{"pizza", "sushi", "pizza"})

	require.Equal(t, []Tag{{Text: "pizza"}, {Text: "sushi"}, {Text: "pizza"}}, m.Tags())
	assert.Equal(t, 3, m.Len())
}

func TestSetChoices_DropsHighlight(t *testing.T) {
	m := New().SetChoices([]string{"a", "b"}).SetActive(1)

	m = m.SetChoices([]string{"a", "b"})

	for _, tag := range m.Tags() {
		assert.False(t, tag.Active)
	}
}

func TestSetActive_SingleHighlight(t *testing.T) {
	m := New().SetChoices([]string{"a", "b", "c"}).SetActive(0).SetActive(2)

	assert.False(t, m.Tags()[0].Active)
	assert.False(t, m.Tags()[1].Active)
	assert.True(t, m.Tags()[2].Active)
}

func TestSetActive_OutOfRangeClears(t *testing.T) {
	m := New().SetChoices([]string{"a", "b"}).SetActive(0).SetActive(-1)

	for _, tag := range m.Tags() {
		assert.False(t, tag.Active)
	}
}

func TestSetActive_DoesNotMutatePreviousModel(t *testing.T) {
	before := New().SetChoices([]string{"a", "b"})
	after := before.SetActive(0)

	assert.False(t, before.Tags()[0].Active)
	assert.True(t, after.Tags()[0].Active)
}

func TestClearActive(t *testing.T) {
	m := New().SetChoices([]string{"a"}).SetActive(0).ClearActive()

	assert.False(t, m.Tags()[0].Active)
}

func TestView_Empty(t *testing.T) {
	assert.Empty(t, New().View())
	assert.Empty(t, New().SetChoices([]string{}).View())
}

func TestView_RendersEveryChoice(t *testing.T) {
	view := ansi.Strip(New().SetChoices([]string{"pizza", "sushi", "tacos"}).View())

	assert.Contains(t, view, "pizza")
	assert.Contains(t, view, "sushi")
	assert.Contains(t, view, "tacos")
	assert.Contains(t, view, "╭")
}

func TestView_WrapsToWidth(t *testing.T) {
	m := New().SetChoices([]string{"alpha", "bravo", "charlie", "delta"}).SetWidth(20)

	view := m.View()
	lines := strings.Split(view, "\n")

	assert.Greater(t, len(lines), 3, "chips should wrap onto a second row")
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}

func TestView_NoWidthSingleRow(t *testing.T) {
	m := New().SetChoices([]string{"alpha", "bravo", "charlie", "delta"})

	assert.Len(t, strings.Split(m.View(), "\n"), 3)
}

func TestView_TruncatesOverwideChip(t *testing.T) {
	long := strings.Repeat("x", 50)
	m := New().SetChoices([]string{long}).SetWidth(20)

	view := ansi.Strip(m.View())

	assert.Contains(t, view, "…")
	assert.NotContains(t, view, long)
	assert.Equal(t, long, m.Tags()[0].Text, "truncation is display only")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}
