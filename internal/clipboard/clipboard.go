// Package clipboard copies picks to and pastes choices from the system
// clipboard.
package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/zjrosen/pickr/internal/log"
)

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
	Paste() (string, error)
}

// SystemClipboard implements Clipboard using the platform clipboard through
// github.com/atotto/clipboard. In remote sessions (SSH, tmux, screen) with
// OSC52 enabled the text is sent to the local terminal as an OSC52 sequence
// instead, since the remote host's clipboard is not the user's.
type SystemClipboard struct {
	OSC52 bool
	// Out receives OSC52 sequences. Defaults to os.Stderr so the sequence
	// does not interleave with Bubble Tea's stdout renderer.
	Out io.Writer
}

var _ Clipboard = SystemClipboard{}

// Copy writes text to the clipboard.
func (c SystemClipboard) Copy(text string) error {
	if c.OSC52 && shouldUseOSC52() {
		out := c.Out
		if out == nil {
			out = os.Stderr
		}
		termenv.NewOutput(out).Copy(text)
		log.Debug(log.CatClipboard, "Copied via OSC52", "bytes", len(text))
		return nil
	}

	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing to clipboard: %w", err)
	}
	log.Debug(log.CatClipboard, "Copied via system clipboard", "bytes", len(text))
	return nil
}

// Paste reads the system clipboard. OSC52 is write-only here, so remote
// sessions fall back to the terminal's own bracketed paste.
func (c SystemClipboard) Paste() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("no clipboard utility available")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	log.Debug(log.CatClipboard, "Read system clipboard", "bytes", len(text))
	return text, nil
}

// shouldUseOSC52 reports whether the process runs somewhere the native
// clipboard belongs to another machine or is hidden behind a multiplexer.
func shouldUseOSC52() bool {
	for _, env := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"} {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

// CopiedMsg reports a successful copy.
type CopiedMsg struct {
	Text string
}

// CopyFailedMsg reports a failed copy. The stored result is unaffected.
type CopyFailedMsg struct {
	Err error
}

// CopyCmd copies text off the update loop. It returns nil when text is empty
// so callers never touch the clipboard without a result.
func CopyCmd(cb Clipboard, text string) tea.Cmd {
	if text == "" || cb == nil {
		return nil
	}
	return func() tea.Msg {
		if err := cb.Copy(text); err != nil {
			log.Warn(log.CatClipboard, "Copy failed", "error", err)
			return CopyFailedMsg{Err: err}
		}
		return CopiedMsg{Text: text}
	}
}

// PastedMsg carries clipboard text to insert into the entry.
type PastedMsg struct {
	Text string
}

// PasteFailedMsg reports a failed clipboard read.
type PasteFailedMsg struct {
	Err error
}

// PasteCmd reads the clipboard off the update loop.
func PasteCmd(cb Clipboard) tea.Cmd {
	if cb == nil {
		return nil
	}
	return func() tea.Msg {
		text, err := cb.Paste()
		if err != nil {
			log.Warn(log.CatClipboard, "Paste failed", "error", err)
			return PasteFailedMsg{Err: err}
		}
		return PastedMsg{Text: text}
	}
}
