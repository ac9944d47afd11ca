//go:build cucumber

package game

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"

	"trivia/internal/trivia"
)

// TestBoardScenarios runs the board feature scenarios.
func TestBoardScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "board.feature")
	suite := godog.TestSuite{
		Name:                "board",
		ScenarioInitializer: InitializeBoardScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeBoardScenario wires steps for board scenarios.
func InitializeBoardScenario(ctx *godog.ScenarioContext) {
	state := &boardScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a game of (\d+) rounds where answer (\d) is correct$`, state.givenGame)
	ctx.Step(`^I place (\d+) tokens? on answer (\d)$`, state.whenPlace)
	ctx.Step(`^I submit$`, state.whenSubmit)
	ctx.Step(`^the highlight finishes$`, state.whenHighlightFinishes)
	ctx.Step(`^I press exactly on the left edge of token (\d+)$`, state.whenPressEdge)
	ctx.Step(`^the round scores (\d+) points?$`, state.thenRoundScores)
	ctx.Step(`^answer (\d) blinks (\d+) times before round (\d+) starts$`, state.thenBlinks)
	ctx.Step(`^input is unlocked$`, state.thenUnlocked)
	ctx.Step(`^the submit button is hidden$`, state.thenSubmitHidden)
	ctx.Step(`^the submission is rejected$`, state.thenRejected)
	ctx.Step(`^the score is (\d+)$`, state.thenScore)
	ctx.Step(`^the game is complete with score (\d+)$`, state.thenComplete)
	ctx.Step(`^no token is dragging$`, state.thenNoDrag)
}

type boardScenarioState struct {
	game    *Game
	next    TokenID
	signals []Signal
}

// reset clears scenario state.
func (s *boardScenarioState) reset() {
	s.game = nil
	s.next = 0
	s.signals = nil
}

func (s *boardScenarioState) tick() {
	s.signals = append(s.signals, s.game.Tick(tick)...)
}

// givenGame builds a five token game whose questions share one correct answer.
func (s *boardScenarioState) givenGame(rounds, answer int) error {
	questions := make([]trivia.Question, 0, rounds)
	for i := 0; i < rounds; i++ {
		q, err := trivia.NewQuestion("Question", "right", []string{"w1", "w2", "w3"}, answer-1)
		if err != nil {
			return err
		}
		questions = append(questions, q)
	}
	set, err := trivia.NewRoundSet(questions)
	if err != nil {
		return err
	}
	s.game = New(set, Options{Tokens: 5, Layout: testLayout(5)})
	s.tick()
	return nil
}

// whenPlace drags the next count unplaced tokens onto answer.
func (s *boardScenarioState) whenPlace(count, answer int) error {
	for i := 0; i < count; i++ {
		if int(s.next) >= len(s.game.board.Tokens) {
			return fmt.Errorf("no tokens left to place")
		}
		drag(s.game, s.next, answer-1)
		s.tick()
		s.next++
	}
	return nil
}

// whenSubmit queues a submission and runs one tick.
func (s *boardScenarioState) whenSubmit() error {
	s.signals = nil
	s.game.Submit()
	s.tick()
	return nil
}

// whenHighlightFinishes runs ticks until the round ends.
func (s *boardScenarioState) whenHighlightFinishes() error {
	for i := 0; i < 1000; i++ {
		s.tick()
		if _, ok := findSignal(s.signals, SignalRoundEnded); ok {
			s.next = 0
			s.signals = nil
			return nil
		}
	}
	return fmt.Errorf("highlight never finished")
}

// whenPressEdge presses on the left edge of a token's box.
func (s *boardScenarioState) whenPressEdge(token int) error {
	tok := s.game.board.Tokens[token-1]
	edge := Point{X: tok.Position.X - tok.Size.X, Y: tok.Position.Y}
	s.game.Push(Press(edge))
	s.tick()
	return nil
}

// thenRoundScores asserts the score delta of the last submission.
func (s *boardScenarioState) thenRoundScores(points int) error {
	sig, ok := findSignal(s.signals, SignalScored)
	if !ok {
		return fmt.Errorf("expected a score signal, got %v", s.signals)
	}
	if sig.Delta != points {
		return fmt.Errorf("expected delta %d, got %d", points, sig.Delta)
	}
	return nil
}

// thenBlinks counts border toggles of answer until the next round starts.
func (s *boardScenarioState) thenBlinks(answer, toggles, round int) error {
	slot := answer - 1
	last := s.game.board.Slots[slot].Border
	seen := 0
	for i := 0; i < toggles+2; i++ {
		signals := s.game.Tick(DefaultHighlightPeriod)
		if started, ok := findSignal(signals, SignalRoundStarted); ok {
			seen++
			if started.Round != round {
				return fmt.Errorf("expected round %d, got %d", round, started.Round)
			}
			if seen != toggles {
				return fmt.Errorf("expected %d toggles, got %d", toggles, seen)
			}
			return nil
		}
		border := s.game.board.Slots[slot].Border
		if border == last {
			return fmt.Errorf("border did not toggle on tick %d", i+1)
		}
		last = border
		seen++
	}
	return fmt.Errorf("round %d never started", round)
}

// thenUnlocked asserts the controller accepts input again.
func (s *boardScenarioState) thenUnlocked() error {
	if s.game.controller.Locked() {
		return fmt.Errorf("expected input to be unlocked")
	}
	return nil
}

// thenSubmitHidden asserts the gate is closed.
func (s *boardScenarioState) thenSubmitHidden() error {
	if s.game.Snapshot().SubmitVisible {
		return fmt.Errorf("expected submit to be hidden")
	}
	return nil
}

// thenRejected asserts the last submission was rejected.
func (s *boardScenarioState) thenRejected() error {
	sig, ok := findSignal(s.signals, SignalSubmitRejected)
	if !ok {
		return fmt.Errorf("expected a rejection, got %v", s.signals)
	}
	if sig.Err != ErrSubmitNotAllowed {
		return fmt.Errorf("unexpected rejection reason %v", sig.Err)
	}
	return nil
}

// thenScore asserts the running score.
func (s *boardScenarioState) thenScore(score int) error {
	if s.game.Score() != score {
		return fmt.Errorf("expected score %d, got %d", score, s.game.Score())
	}
	return nil
}

// thenComplete asserts the game finished with the final score.
func (s *boardScenarioState) thenComplete(score int) error {
	if !s.game.Complete() {
		return fmt.Errorf("expected the game to be complete")
	}
	return s.thenScore(score)
}

// thenNoDrag asserts the controller is at rest.
func (s *boardScenarioState) thenNoDrag() error {
	if id, active := s.game.controller.Active(); active {
		return fmt.Errorf("expected no drag, token %d is dragging", id)
	}
	return nil
}
