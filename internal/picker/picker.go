// Package picker drives the shuffle animation that ends in a random pick.
//
// An Animation is a small state machine advanced by tea.Tick messages:
//
//	Idle -> Flashing(step) -> ... -> Flashing(Flashes) -> Settling -> Done
//
// Every flash and the final settle draw an independent uniform index over the
// choices captured at Start, so the final pick may repeat the last flash.
package picker

import (
	"math/rand/v2"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/pickr/internal/log"
)

// Phase is the animation state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFlashing
	PhaseSettling
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFlashing:
		return "flashing"
	case PhaseSettling:
		return "settling"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Default timings.
const (
	DefaultFlashes  = 20
	DefaultInterval = 80 * time.Millisecond
	DefaultSettle   = 120 * time.Millisecond
)

// Config controls the animation rhythm.
type Config struct {
	Flashes  int           // Number of flash steps before settling
	Interval time.Duration // Delay between flashes
	Settle   time.Duration // Pause between the last flash and the final pick
}

// DefaultConfig returns the standard 20 x 80ms shuffle with a 120ms settle.
func DefaultConfig() Config {
	return Config{
		Flashes:  DefaultFlashes,
		Interval: DefaultInterval,
		Settle:   DefaultSettle,
	}
}

// Randomizer draws a uniform index in [0, n).
type Randomizer interface {
	IntN(n int) int
}

// RandSource is the production Randomizer backed by math/rand/v2.
type RandSource struct{}

// IntN returns a uniform index in [0, n).
func (RandSource) IntN(n int) int { return rand.IntN(n) } //nolint:gosec // cosmetic pick, not security sensitive

// FlashMsg advances a flashing animation by one step.
type FlashMsg struct {
	ID int
}

// SettleMsg commits the final pick.
type SettleMsg struct {
	ID int
}

// Animation holds the state of the single in-flight pick.
// The zero value is not usable; construct with New.
type Animation struct {
	cfg Config // applied on the next Start
	run Config // captured at Start
	rng Randomizer

	id      int
	phase   Phase
	step    int
	active  int
	choices []string
	result  string
}

// New creates an idle animation.
func New(cfg Config, rng Randomizer) *Animation {
	if rng == nil {
		rng = RandSource{}
	}
	return &Animation{
		cfg:    cfg,
		rng:    rng,
		active: -1,
	}
}

// SetConfig replaces the timings used by the next run.
func (a *Animation) SetConfig(cfg Config) {
	a.cfg = cfg
}

// Config returns the timings used by the next run.
func (a *Animation) Config() Config {
	return a.cfg
}

// Phase returns the current state.
func (a *Animation) Phase() Phase {
	return a.phase
}

// Running reports whether a pick is in flight.
func (a *Animation) Running() bool {
	return a.phase == PhaseFlashing || a.phase == PhaseSettling
}

// Step returns how many flashes have happened in the current run.
func (a *Animation) Step() int {
	return a.step
}

// Active returns the highlighted index, or -1 when nothing is highlighted.
func (a *Animation) Active() int {
	return a.active
}

// Choices returns the snapshot being animated.
func (a *Animation) Choices() []string {
	return a.choices
}

// Result returns the committed pick once the animation reaches PhaseDone.
func (a *Animation) Result() string {
	return a.result
}

// Start begins a new run over choices. It returns false, and changes nothing,
// when a run is already in flight or there is nothing to pick from.
func (a *Animation) Start(choices []string) (tea.Cmd, bool) {
	if a.Running() {
		log.Debug(log.CatPicker, "Pick ignored, animation in progress", "id", a.id, "phase", a.phase)
		return nil, false
	}
	if len(choices) == 0 {
		return nil, false
	}

	a.id++
	a.run = a.cfg
	a.choices = slices.Clone(choices)
	a.step = 0
	a.active = -1
	a.result = ""

	log.Debug(log.CatPicker, "Animation started", "id", a.id, "choices", len(a.choices), "flashes", a.run.Flashes)

	if a.run.Flashes <= 0 {
		a.phase = PhaseSettling
		return a.settleCmd(), true
	}
	a.phase = PhaseFlashing
	return a.flashCmd(), true
}

// Update handles FlashMsg and SettleMsg for the current run. Messages from an
// earlier run are ignored. done is true when msg committed the final pick.
func (a *Animation) Update(msg tea.Msg) (cmd tea.Cmd, done bool) {
	switch msg := msg.(type) {
	case FlashMsg:
		if msg.ID != a.id || a.phase != PhaseFlashing {
			return nil, false
		}
		return a.flash(), false

	case SettleMsg:
		if msg.ID != a.id || a.phase != PhaseSettling {
			return nil, false
		}
		a.settle()
		return nil, true
	}
	return nil, false
}

// Finish returns a completed animation to Idle. The last highlight and result
// stay readable until the next Start.
func (a *Animation) Finish() {
	if a.phase == PhaseDone {
		a.phase = PhaseIdle
	}
}

func (a *Animation) flash() tea.Cmd {
	a.active = a.rng.IntN(len(a.choices))
	a.step++

	if a.step >= a.run.Flashes {
		a.phase = PhaseSettling
		return a.settleCmd()
	}
	return a.flashCmd()
}

func (a *Animation) settle() {
	a.active = a.rng.IntN(len(a.choices))
	a.result = a.choices[a.active]
	a.phase = PhaseDone

	log.Info(log.CatPicker, "Pick committed", "id", a.id, "index", a.active, "flashes", a.step)
}

func (a *Animation) flashCmd() tea.Cmd {
	id := a.id
	return tea.Tick(a.run.Interval, func(time.Time) tea.Msg {
		return FlashMsg{ID: id}
	})
}

func (a *Animation) settleCmd() tea.Cmd {
	id := a.id
	return tea.Tick(a.run.Settle, func(time.Time) tea.Msg {
		return SettleMsg{ID: id}
	})
}
