package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlace_Center(t *testing.T) {
	bg := "AAAAA\nAAAAA\nAAAAA"
	fg := "XX\nXX"
	cfg := Config{Width: 5, Height: 3, Position: Center}

	lines := strings.Split(Place(cfg, fg, bg), "\n")

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "XX")
}

func TestPlace_Top_WithPadding(t *testing.T) {
	bg := "AAAAA\nAAAAA\nAAAAA\nAAAAA\nAAAAA"
	cfg := Config{Width: 5, Height: 5, Position: Top, PadY: 1}

	lines := strings.Split(Place(cfg, "XX", bg), "\n")

	assert.Equal(t, "AAAAA", lines[0])
	assert.Contains(t, lines[1], "XX")
}

func TestPlace_Bottom_WithPadding(t *testing.T) {
	bg := "AAAAA\nAAAAA\nAAAAA\nAAAAA\nAAAAA"
	cfg := Config{Width: 5, Height: 5, Position: Bottom, PadY: 1}

	lines := strings.Split(Place(cfg, "XX", bg), "\n")

	assert.Equal(t, "AAAAA", lines[4])
	assert.Contains(t, lines[3], "XX")
	assert.Equal(t, "AAAAA", lines[0])
}

func TestPlace_EmptyBackgroundIsPadded(t *testing.T) {
	cfg := Config{Width: 5, Height: 3, Position: Center}

	lines := strings.Split(Place(cfg, "XX\nXX", ""), "\n")

	assert.Len(t, lines, 3)
}

func TestPlace_PreservesBackgroundOnSides(t *testing.T) {
	bg := "ABCDE\nFGHIJ\nKLMNO"
	cfg := Config{Width: 5, Height: 3, Position: Center}

	lines := strings.Split(Place(cfg, "X", bg), "\n")

	assert.Equal(t, "FGXIJ", lines[1])
}

func TestPlace_PreservesANSI(t *testing.T) {
	bg := "\x1b[31mRED\x1b[0m\n\x1b[31mRED\x1b[0m\n\x1b[31mRED\x1b[0m"
	cfg := Config{Width: 3, Height: 3, Position: Center}

	assert.Contains(t, Place(cfg, "X", bg), "\x1b[31m")
}

func TestPlace_ForegroundTallerThanBackground(t *testing.T) {
	cfg := Config{Width: 3, Height: 2, Position: Center}

	lines := strings.Split(Place(cfg, "X\nX\nX\nX", "AAA\nAAA"), "\n")

	assert.Len(t, lines, 2, "rows past the background are dropped")
}

func TestOrigin(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		wantX int
		wantY int
	}{
		{"center", Config{Width: 10, Height: 10, Position: Center}, 3, 4},
		{"top", Config{Width: 10, Height: 10, Position: Top, PadY: 2}, 3, 2},
		{"bottom", Config{Width: 10, Height: 10, Position: Bottom, PadY: 1}, 3, 7},
		{"clamped", Config{Width: 2, Height: 1, Position: Center}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := origin(tt.cfg, 4, 2)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}
