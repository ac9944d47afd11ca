package opentdb

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"trivia/internal/trivia"
)

// TypeMultiple selects four-choice questions.
const TypeMultiple = "multiple"

// DefaultAmount is the number of questions fetched per game.
const DefaultAmount = 10

// Options configures a Source.
type Options struct {
	Amount   int
	Type     string
	Category int
	Logger   *zap.Logger
	// Pick returns a uniform index in [0,n). Defaults to math/rand/v2.
	Pick func(n int) int
}

// Batch is the owned result of a successful fetch.
type Batch struct {
	Session trivia.SessionID
	Rounds  *trivia.RoundSet
}

// Source performs the two-step fetch that produces a game's rounds. It holds
// no game state and is safe to call from a worker goroutine.
type Source struct {
	client   *Client
	amount   int
	kind     string
	category int
	logger   *zap.Logger
	pick     func(n int) int
}

// NewSource wires a client and fetch options.
func NewSource(client *Client, opts Options) *Source {
	amount := opts.Amount
	if amount <= 0 {
		amount = DefaultAmount
	}
	kind := opts.Type
	if kind == "" {
		kind = TypeMultiple
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pick := opts.Pick
	if pick == nil {
		pick = rand.Intn
	}
	return &Source{
		client:   client,
		amount:   amount,
		kind:     kind,
		category: opts.Category,
		logger:   logger,
		pick:     pick,
	}
}

// Fetch requests a session token when existing is empty, then the questions.
// Every failure is a *FetchError and is final; nothing is retried.
func (s *Source) Fetch(ctx context.Context, existing trivia.SessionID) (Batch, error) {
	session := existing
	if session.Empty() {
		res, err := s.client.RequestToken(ctx)
		if err != nil {
			s.logger.Warn("session token request failed", zap.Error(err))
			return Batch{}, err
		}
		session = trivia.SessionID(res.Token)
		s.logger.Debug("session token acquired")
	}

	res, err := s.client.Questions(ctx, QuestionsRequest{
		Amount:   s.amount,
		Type:     s.kind,
		Category: s.category,
		Token:    string(session),
	})
	if err != nil {
		s.logger.Warn("questions request failed", zap.Error(err))
		return Batch{}, err
	}
	if len(res.Results) == 0 {
		return Batch{}, decodeError("questions", errors.New("empty results"))
	}

	questions := make([]trivia.Question, 0, len(res.Results))
	for i, result := range res.Results {
		q, err := BuildQuestion(result, s.pick(trivia.AnswerCount))
		if err != nil {
			return Batch{}, decodeError("questions", fmt.Errorf("result %d: %w", i+1, err))
		}
		questions = append(questions, q)
	}
	rounds, err := trivia.NewRoundSet(questions)
	if err != nil {
		return Batch{}, decodeError("questions", err)
	}
	s.logger.Info("questions fetched", zap.Int("count", len(questions)))
	return Batch{Session: session, Rounds: rounds}, nil
}

// BuildQuestion decodes a raw result and places the correct answer at slot.
func BuildQuestion(result Result, slot int) (trivia.Question, error) {
	incorrect := make([]string, len(result.IncorrectAnswers))
	for i, answer := range result.IncorrectAnswers {
		incorrect[i] = DecodeText(answer)
	}
	q, err := trivia.NewQuestion(DecodeText(result.Question), DecodeText(result.CorrectAnswer), incorrect, slot)
	if err != nil {
		return trivia.Question{}, err
	}
	q.Category = DecodeText(result.Category)
	q.Difficulty = DecodeText(result.Difficulty)
	return q, nil
}

// DecodeText resolves HTML entities and normalizes the result to NFC.
func DecodeText(value string) string {
	return strings.TrimSpace(norm.NFC.String(html.UnescapeString(value)))
}
