package trivia

import (
	"errors"
	"fmt"
)

// AnswerCount is the number of choices every question carries.
const AnswerCount = 4

// SessionID is an opaque token issued by the question service.
// The zero value means no session has been requested yet.
type SessionID string

// Empty reports whether no session has been obtained.
func (s SessionID) Empty() bool {
	return s == ""
}

// Answer is one candidate answer of a question.
type Answer struct {
	Text  string
	Truth bool
}

// Question holds the prompt and its four answers.
type Question struct {
	Text       string
	Category   string
	Difficulty string
	Answers    [AnswerCount]Answer
}

// ErrInvalidQuestion is returned when a question does not have exactly one true answer.
var ErrInvalidQuestion = errors.New("question must have exactly one true answer")

// Validate checks the single-truth invariant.
func (q Question) Validate() error {
	truths := 0
	for _, answer := range q.Answers {
		if answer.Truth {
			truths++
		}
	}
	if truths != 1 {
		return fmt.Errorf("%w (found %d)", ErrInvalidQuestion, truths)
	}
	return nil
}

// CorrectIndex returns the index of the truthful answer, or -1.
func (q Question) CorrectIndex() int {
	for i, answer := range q.Answers {
		if answer.Truth {
			return i
		}
	}
	return -1
}

// NewQuestion builds a question with the correct answer placed at slot and the
// incorrect answers filling the remaining slots in their original order.
func NewQuestion(text, correct string, incorrect []string, slot int) (Question, error) {
	if len(incorrect) != AnswerCount-1 {
		return Question{}, fmt.Errorf("expected %d incorrect answers, got %d", AnswerCount-1, len(incorrect))
	}
	if slot < 0 || slot >= AnswerCount {
		return Question{}, fmt.Errorf("correct slot %d out of range", slot)
	}
	q := Question{Text: text}
	next := 0
	for i := range q.Answers {
		if i == slot {
			q.Answers[i] = Answer{Text: correct, Truth: true}
			continue
		}
		q.Answers[i] = Answer{Text: incorrect[next]}
		next++
	}
	return q, nil
}

// RoundSet is the ordered list of questions for one game.
type RoundSet struct {
	Questions  []Question
	RoundIndex int
	RoundCount int
}

// NewRoundSet wraps questions into a fresh round set.
func NewRoundSet(questions []Question) (*RoundSet, error) {
	if len(questions) == 0 {
		return nil, errors.New("round set needs at least one question")
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return &RoundSet{
		Questions:  questions,
		RoundIndex: 0,
		RoundCount: len(questions),
	}, nil
}
