// Package testutil provides shared helpers for pickr tests.
package testutil

import "sync"

// Sequence is a scripted picker.Randomizer. Each IntN call returns the next
// scripted index modulo n, cycling when the script runs out.
type Sequence struct {
	mu      sync.Mutex
	indices []int
	next    int
	calls   []int // n passed to each IntN call
}

// NewSequence creates a Sequence that replays indices in order.
func NewSequence(indices ...int) *Sequence {
	if len(indices) == 0 {
		indices = []int{0}
	}
	return &Sequence{indices: indices}
}

// IntN returns the next scripted index, wrapped into [0, n).
func (s *Sequence) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, n)
	idx := s.indices[s.next%len(s.indices)]
	s.next++
	if n <= 0 {
		return 0
	}
	return ((idx % n) + n) % n
}

// Calls returns the n argument of every draw so far.
func (s *Sequence) Calls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.calls))
	copy(out, s.calls)
	return out
}

// Draws returns how many indices have been drawn.
func (s *Sequence) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
