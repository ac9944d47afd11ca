package game

import (
	"testing"
	"time"

	"trivia/internal/trivia"
)

const tick = 33 * time.Millisecond

// testLayout places four 20x10 slots in a 2x2 grid, token homes on row 25 and
// the submit button to the right of them.
func testLayout(tokens int) Layout {
	var layout Layout
	for i := range layout.Slots {
		layout.Slots[i] = RectFromCells((i%2)*20, (i/2)*10, 20, 10)
	}
	for i := 0; i < tokens; i++ {
		layout.Homes = append(layout.Homes, RectFromCells(2+4*i, 25, 3, 1))
	}
	layout.Submit = RectFromCells(50, 25, 10, 3)
	return layout
}

// testRounds builds count questions whose correct answer sits at correct.
func testRounds(t *testing.T, count, correct int) *trivia.RoundSet {
	t.Helper()
	questions := make([]trivia.Question, 0, count)
	for i := 0; i < count; i++ {
		q, err := trivia.NewQuestion("Question", "right", []string{"w1", "w2", "w3"}, correct)
		if err != nil {
			t.Fatalf("new question: %v", err)
		}
		questions = append(questions, q)
	}
	set, err := trivia.NewRoundSet(questions)
	if err != nil {
		t.Fatalf("new round set: %v", err)
	}
	return set
}

// newTestGame builds a 5 token game and consumes the start signals.
func newTestGame(t *testing.T, rounds, correct int) *Game {
	t.Helper()
	g := New(testRounds(t, rounds, correct), Options{Tokens: 5, Layout: testLayout(5)})
	g.Tick(tick)
	return g
}

// drag moves token id from its position onto the center of slot.
func drag(g *Game, id TokenID, slot int) {
	from := g.board.Tokens[id].Position
	to := g.layout.Slots[slot].Center
	g.Push(Press(from))
	g.Push(Move(to))
	g.Push(Release(to))
}

// place drags token id onto slot and runs a tick.
func place(t *testing.T, g *Game, id TokenID, slot int) []Signal {
	t.Helper()
	drag(g, id, slot)
	return g.Tick(tick)
}

// runFor ticks the game for d and collects every signal.
func runFor(g *Game, d time.Duration) []Signal {
	var all []Signal
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		all = append(all, g.Tick(tick)...)
	}
	return all
}

func findSignal(signals []Signal, kind SignalKind) (Signal, bool) {
	for _, sig := range signals {
		if sig.Kind == kind {
			return sig, true
		}
	}
	return Signal{}, false
}

func countSignals(signals []Signal, kind SignalKind) int {
	count := 0
	for _, sig := range signals {
		if sig.Kind == kind {
			count++
		}
	}
	return count
}
