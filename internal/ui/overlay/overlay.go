// Package overlay draws modal content on top of an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the overlay content.
type Position int

const (
	// Center places the overlay in the middle of the viewport.
	Center Position = iota
	// Top places the overlay at the top center of the viewport.
	Top
	// Bottom places the overlay at the bottom center of the viewport.
	Bottom
)

// Config controls overlay rendering behavior.
type Config struct {
	Width    int      // Total viewport width
	Height   int      // Total viewport height
	Position Position // Where the foreground goes
	PadY     int      // Distance from the edge for Top and Bottom
}

// Place renders fg on top of bg. Both may contain ANSI styling; the parts of
// bg to the left and right of fg keep theirs.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	x, y := origin(cfg, lipgloss.Width(fg), len(fgLines))

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}

	return strings.Join(bgLines, "\n")
}

// splice replaces the cells of bg starting at column x with fg.
func splice(bg, fg string, x int) string {
	left := ansi.Truncate(bg, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	var right string
	if end := x + ansi.StringWidth(fg); end < ansi.StringWidth(bg) {
		right = ansi.TruncateLeft(bg, end, "")
	}

	return left + fg + right
}

// origin returns the top-left cell of the foreground.
func origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = max((cfg.Width-fgWidth)/2, 0)

	switch cfg.Position {
	case Top:
		y = cfg.PadY
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	return x, max(y, 0)
}
