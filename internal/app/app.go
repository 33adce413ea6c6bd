// Package app contains the root application model.
package app

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/pickr/internal/choices"
	"github.com/zjrosen/pickr/internal/clipboard"
	"github.com/zjrosen/pickr/internal/config"
	"github.com/zjrosen/pickr/internal/keys"
	"github.com/zjrosen/pickr/internal/log"
	"github.com/zjrosen/pickr/internal/picker"
	"github.com/zjrosen/pickr/internal/result"
	helpoverlay "github.com/zjrosen/pickr/internal/ui/help"
	"github.com/zjrosen/pickr/internal/ui/modal"
	"github.com/zjrosen/pickr/internal/ui/styles"
	"github.com/zjrosen/pickr/internal/ui/tags"
	"github.com/zjrosen/pickr/internal/ui/toaster"
)

// CopyFailedMessage is shown when the clipboard write fails.
const CopyFailedMessage = "Copy failed. You can select and copy manually."

// Focus identifies the focused control.
type Focus int

const (
	FocusEntry Focus = iota
	FocusPick
	FocusClear
	FocusCopy

	focusCount
)

// Services holds the external collaborators of the model.
type Services struct {
	Clipboard  clipboard.Clipboard
	Randomizer picker.Randomizer
}

// ConfigReloadedMsg carries a configuration re-read after the config file
// changed on disk. Err is set when the new file could not be loaded.
type ConfigReloadedMsg struct {
	Config config.Config
	Err    error
}

// copyRevertMsg restores the Copy label once the confirmation has expired.
type copyRevertMsg struct {
	id int
}

// Model is the root application state. A single Model lives for the whole
// process; the animation and result store are shared by its copies.
type Model struct {
	cfg      config.Config
	services Services

	entry  textarea.Model
	tags   tags.Model
	anim   *picker.Animation
	result *result.Store

	focus Focus

	copyConfirmed bool
	copyID        int

	footer   help.Model
	helpView helpoverlay.Model
	showHelp bool
	alert    modal.Model
	toaster  toaster.Model

	width  int
	height int
}

// NewWithConfig creates the application model. initial pre-fills the entry.
func NewWithConfig(cfg config.Config, services Services, initial string) Model {
	if services.Randomizer == nil {
		services.Randomizer = picker.RandSource{}
	}

	m := Model{
		cfg:      cfg,
		services: services,
		entry:    newEntry(),
		tags:     tags.New(),
		anim:     picker.New(cfg.Animation(), services.Randomizer),
		result:   result.New(cfg.UI.Placeholder),
		footer:   help.New(),
		helpView: helpoverlay.New(),
		alert:    modal.New(),
		toaster:  toaster.New(),
	}

	if initial != "" {
		m.entry.SetValue(initial)
		m.tags = m.tags.SetChoices(choices.Parse(initial))
	}
	return m
}

func newEntry() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "pizza, sushi, tacos…"
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(entryHeight)
	// Long lists keep growing; the view scrolls instead of dropping lines.
	ta.MaxHeight = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	// Enter picks; only alt+enter breaks the line.
	ta.KeyMap.InsertNewline = keys.Picker.Newline
	ta.Focus()
	return ta
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case picker.FlashMsg, picker.SettleMsg:
		return m.handleAnimation(msg)

	case clipboard.CopiedMsg:
		m.copyConfirmed = true
		m.copyID++
		id := m.copyID
		return m, tea.Tick(m.cfg.Copy.ConfirmDuration, func(time.Time) tea.Msg {
			return copyRevertMsg{id: id}
		})

	case clipboard.CopyFailedMsg:
		log.Warn(log.CatClipboard, "Showing copy failure", "error", msg.Err)
		m.alert = m.alert.Show(modal.Config{
			Title:    "Clipboard",
			Message:  CopyFailedMessage,
			MinWidth: lipgloss.Width(CopyFailedMessage),
		})
		return m, nil

	case clipboard.PastedMsg:
		if m.alert.Visible() || m.focus != FocusEntry {
			return m, nil
		}
		before := m.entry.Value()
		m.entry.InsertString(msg.Text)
		return m.afterEdit(before), nil

	case clipboard.PasteFailedMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show("Nothing to paste", toaster.StyleError, 0)
		return m, cmd

	case copyRevertMsg:
		if msg.id == m.copyID {
			m.copyConfirmed = false
		}
		return m, nil

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case modal.DismissMsg:
		cmd := m.focusControl(m.focus)
		return m, cmd

	case ConfigReloadedMsg:
		return m.applyReload(msg)
	}

	// The alert blocks keyboard and mouse input until dismissed.
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.alert.Visible() {
			return m.updateAlert(msg)
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.alert.Visible() {
			return m.updateAlert(msg)
		}
		return m.handleMouse(msg)
	}

	if m.alert.Visible() {
		return m, nil
	}
	return m.updateEntry(msg)
}

func (m Model) updateAlert(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.alert, cmd = m.alert.Update(msg)
	return m, cmd
}

func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height

	inner := contentWidth(width)
	m.entry.SetWidth(inner - styles.InputStyle.GetHorizontalFrameSize())
	m.tags = m.tags.SetWidth(inner)
	m.footer.Width = inner
	m.helpView = m.helpView.SetSize(width, height)
	m.alert = m.alert.SetSize(width, height)
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, keys.Picker.Help) || msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Picker.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Picker.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, keys.Picker.Pick):
		return m.pick()

	case key.Matches(msg, keys.Picker.Clear):
		return m.clear()

	case key.Matches(msg, keys.Picker.Copy):
		return m.copy()

	case key.Matches(msg, keys.Picker.NextFocus):
		cmd := m.focusControl((m.focus + 1) % focusCount)
		return m, cmd

	case key.Matches(msg, keys.Picker.PrevFocus):
		cmd := m.focusControl((m.focus + focusCount - 1) % focusCount)
		return m, cmd
	}

	if m.focus != FocusEntry {
		if key.Matches(msg, keys.Picker.Press) {
			return m.press(m.focus)
		}
		return m, nil
	}

	if key.Matches(msg, keys.Picker.Submit) {
		return m.pick()
	}
	if key.Matches(msg, keys.Picker.Paste) {
		return m, clipboard.PasteCmd(m.services.Clipboard)
	}

	return m.updateEntry(msg)
}

// updateEntry forwards msg to the entry and refreshes the preview when the
// text changed.
func (m Model) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.entry.Value()
	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m.afterEdit(before), cmd
}

func (m Model) afterEdit(before string) Model {
	if m.entry.Value() != before {
		m = m.refreshTags()
	}
	return m
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || !m.cfg.UI.Mouse {
		return m, nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if f, ok := clickedButton(msg); ok {
		m.focus = f
		m.entry.Blur()
		return m.press(f)
	}
	if inZone(zoneEntry, msg) {
		cmd := m.focusControl(FocusEntry)
		return m, cmd
	}
	return m, nil
}

// press activates the button identified by f.
func (m Model) press(f Focus) (tea.Model, tea.Cmd) {
	switch f {
	case FocusPick:
		return m.pick()
	case FocusClear:
		return m.clear()
	case FocusCopy:
		return m.copy()
	}
	return m, nil
}

// focusControl moves focus to f, focusing or blurring the entry to match.
func (m *Model) focusControl(f Focus) tea.Cmd {
	m.focus = f
	if f == FocusEntry {
		return m.entry.Focus()
	}
	m.entry.Blur()
	return nil
}

// refreshTags re-parses the entry for the live preview. The preview is
// frozen on the animated snapshot while a pick is in flight.
func (m Model) refreshTags() Model {
	if m.anim.Running() {
		return m
	}
	list := choices.Parse(m.entry.Value())
	log.Debug(log.CatParse, "Parsed choices", "count", len(list))
	m.tags = m.tags.SetChoices(list)
	return m
}

// pick re-parses the entry and starts the shuffle. A pick while one is in
// flight changes nothing.
func (m Model) pick() (tea.Model, tea.Cmd) {
	if m.anim.Running() {
		log.Debug(log.CatUI, "Pick ignored while animating", "phase", m.anim.Phase())
		return m, nil
	}

	list := choices.Parse(m.entry.Value())
	m.tags = m.tags.SetChoices(list)

	if len(list) == 0 {
		m.result.Notice(m.cfg.UI.EmptyMessage)
		log.Debug(log.CatUI, "Pick with no choices")
		return m, nil
	}

	cmd, ok := m.anim.Start(list)
	if !ok {
		return m, nil
	}
	return m, cmd
}

func (m Model) handleAnimation(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, done := m.anim.Update(msg)
	m.tags = m.tags.SetActive(m.anim.Active())

	if done {
		m.result.Set(m.anim.Result())
		m.anim.Finish()
		// Edits made during the run were held back from the preview.
		if list := choices.Parse(m.entry.Value()); !slices.Equal(list, m.anim.Choices()) {
			m.tags = m.tags.SetChoices(list)
		}
	}
	return m, cmd
}

// clear empties the entry, tags and result and focuses the entry.
func (m Model) clear() (tea.Model, tea.Cmd) {
	m.entry.Reset()
	m.tags = m.tags.SetChoices(nil)
	m.result.Clear()
	log.Debug(log.CatUI, "Cleared")
	cmd := m.focusControl(FocusEntry)
	return m, cmd
}

// copy sends the stored result to the clipboard. Nothing happens without one.
func (m Model) copy() (tea.Model, tea.Cmd) {
	if !m.result.HasResult() {
		return m, nil
	}
	return m, clipboard.CopyCmd(m.services.Clipboard, m.result.Text())
}

func (m Model) applyReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg.Err != nil {
		log.ErrorErr(log.CatConfig, "Config reload failed", msg.Err)
		m.toaster, cmd = m.toaster.Show("Config error, keeping previous settings", toaster.StyleError, 0)
		return m, cmd
	}

	if err := styles.ApplyTheme(ThemeFromConfig(msg.Config.Theme)); err != nil {
		log.ErrorErr(log.CatConfig, "Theme reload failed", err)
		m.toaster, cmd = m.toaster.Show("Invalid theme, keeping previous settings", toaster.StyleError, 0)
		return m, cmd
	}

	m.cfg = msg.Config
	m.anim.SetConfig(msg.Config.Animation())
	m.result.SetPlaceholder(msg.Config.UI.Placeholder)

	log.Info(log.CatConfig, "Config reloaded", "flashes", msg.Config.Picker.Flashes, "preset", msg.Config.Theme.Preset)
	m.toaster, cmd = m.toaster.Show("Config reloaded", toaster.StyleInfo, 0)
	return m, cmd
}

// ThemeFromConfig converts the theme section to styles.ThemeConfig.
func ThemeFromConfig(t config.ThemeConfig) styles.ThemeConfig {
	return styles.ThemeConfig{
		Preset: t.Preset,
		Colors: t.Colors,
	}
}

// Entry returns the raw entry text.
func (m Model) Entry() string {
	return m.entry.Value()
}

// Tags returns the rendered tags.
func (m Model) Tags() []tags.Tag {
	return m.tags.Tags()
}

// Result returns the result line text.
func (m Model) Result() string {
	return m.result.Display()
}

// Picking reports whether the shuffle animation is running.
func (m Model) Picking() bool {
	return m.anim.Running()
}

// Focused returns the focused control.
func (m Model) Focused() Focus {
	return m.focus
}

// CopyLabel returns the current Copy button label.
func (m Model) CopyLabel() string {
	if m.copyConfirmed {
		return "Copied!"
	}
	return "Copy"
}

// AlertVisible reports whether the copy failure alert is open.
func (m Model) AlertVisible() bool {
	return m.alert.Visible()
}
