package trivia

import (
	"errors"
	"fmt"
)

// ErrRoundsExhausted is the panic value used when the current question is read
// after the last round has been played.
var ErrRoundsExhausted = errors.New("no rounds remaining")

// RoundManager owns the round index of a RoundSet. It is the only writer of
// RoundIndex.
type RoundManager struct {
	set *RoundSet
}

// NewRoundManager takes ownership of set.
func NewRoundManager(set *RoundSet) *RoundManager {
	if set == nil {
		panic("trivia: nil round set")
	}
	return &RoundManager{set: set}
}

// Current returns the question for the active round. Callers must check Done
// first; reading past the last round panics.
func (m *RoundManager) Current() Question {
	if m.set.RoundIndex >= m.set.RoundCount {
		panic(fmt.Errorf("%w: round %d of %d", ErrRoundsExhausted, m.set.RoundIndex, m.set.RoundCount))
	}
	return m.set.Questions[m.set.RoundIndex]
}

// Advance moves to the next round. When the index reaches the round count the
// game is complete and no question is exposed anymore.
func (m *RoundManager) Advance() {
	if m.Done() {
		panic(fmt.Errorf("%w: advance past round %d", ErrRoundsExhausted, m.set.RoundCount))
	}
	m.set.RoundIndex++
}

// Done reports whether every round has been played.
func (m *RoundManager) Done() bool {
	return m.set.RoundIndex >= m.set.RoundCount
}

// Index returns the zero-based index of the active round.
func (m *RoundManager) Index() int {
	return m.set.RoundIndex
}

// Count returns the total number of rounds.
func (m *RoundManager) Count() int {
	return m.set.RoundCount
}
