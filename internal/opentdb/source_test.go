package opentdb_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trivia/internal/opentdb"
	"trivia/internal/testutil"
	"trivia/internal/trivia"
)

// TestFetchRequestsSessionThenQuestions covers the happy path.
func TestFetchRequestsSessionThenQuestions(t *testing.T) {
	server := testutil.StartTriviaServer(t, testutil.TriviaServerConfig{Token: "tok-1"})
	source := newSource(server.BaseURL, fixedPick(2))

	batch, err := source.Fetch(testutil.Context(t, time.Second), "")
	require.NoError(t, err)
	require.Equal(t, trivia.SessionID("tok-1"), batch.Session)
	require.Equal(t, 1, server.TokenCalls())
	require.Equal(t, 1, server.QuestionCalls())
	require.Equal(t, "tok-1", server.LastQuery().Get("token"))
	require.Equal(t, "5", server.LastQuery().Get("amount"))
	require.Equal(t, opentdb.TypeMultiple, server.LastQuery().Get("type"))

	require.Equal(t, 2, batch.Rounds.RoundCount)
	require.Equal(t, 0, batch.Rounds.RoundIndex)
	first := batch.Rounds.Questions[0]
	require.Equal(t, `What is the chemical symbol for "gold"?`, first.Text)
	require.Equal(t, "Science & Nature", first.Category)
	require.Equal(t, 2, first.CorrectIndex())
	require.Equal(t, "Au", first.Answers[2].Text)
	require.Equal(t, []string{"Ag", "Gd", "Au", "Go"}, answerTexts(first))
}

// TestFetchReusesExistingSession skips the token step.
func TestFetchReusesExistingSession(t *testing.T) {
	server := testutil.StartTriviaServer(t, testutil.TriviaServerConfig{})
	source := newSource(server.BaseURL, fixedPick(0))

	batch, err := source.Fetch(testutil.Context(t, time.Second), "kept")
	require.NoError(t, err)
	require.Equal(t, trivia.SessionID("kept"), batch.Session)
	require.Equal(t, 0, server.TokenCalls())
	require.Equal(t, "kept", server.LastQuery().Get("token"))
}

// TestFetchExactlyOneTruthAfterDecoding checks every slot position.
func TestFetchExactlyOneTruthAfterDecoding(t *testing.T) {
	server := testutil.StartTriviaServer(t, testutil.TriviaServerConfig{})
	for slot := 0; slot < trivia.AnswerCount; slot++ {
		source := newSource(server.BaseURL, fixedPick(slot))
		batch, err := source.Fetch(testutil.Context(t, time.Second), "tok")
		require.NoError(t, err)
		for i, q := range batch.Rounds.Questions {
			truths := 0
			for _, answer := range q.Answers {
				if answer.Truth {
					truths++
				}
			}
			require.Equal(t, 1, truths, "question %d", i)
			require.Equal(t, opentdb.DecodeText(testutil.SampleResults()[i].CorrectAnswer), q.Answers[q.CorrectIndex()].Text)
		}
		require.Equal(t, "Sigur Rós", batch.Rounds.Questions[1].Answers[lastIncorrectSlot(slot)].Text)
	}
}

// TestFetchNetworkErrorOnSession reports a network failure without retrying.
func TestFetchNetworkErrorOnSession(t *testing.T) {
	source := newSource(testutil.ClosedServerURL(t), fixedPick(0))

	batch, err := source.Fetch(testutil.Context(t, time.Second), "")
	require.Error(t, err)
	require.Nil(t, batch.Rounds)
	require.True(t, errors.Is(err, opentdb.ErrNetwork))
	var fetchErr *opentdb.FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, opentdb.KindNetwork, fetchErr.Kind)
	require.Equal(t, "session", fetchErr.Op)
}

// TestFetchHTTPStatusIsNetworkError maps non-2xx replies.
func TestFetchHTTPStatusIsNetworkError(t *testing.T) {
	server := testutil.StartTriviaServer(t, testutil.TriviaServerConfig{TokenStatus: http.StatusBadGateway})
	source := newSource(server.BaseURL, fixedPick(0))

	_, err := source.Fetch(testutil.Context(t, time.Second), "")
	require.ErrorIs(t, err, opentdb.ErrNetwork)
	require.Equal(t, 0, server.QuestionCalls())
}

// TestFetchMalformedJSONIsDecodeError maps unparsable payloads.
func TestFetchMalformedJSONIsDecodeError(t *testing.T) {
	server := testutil.StartTriviaServer(t, testutil.TriviaServerConfig{QuestionsBody: "{not json"})
	source := newSource(server.BaseURL, fixedPick(0))

	_, err := source.Fetch(testutil.Context(t, time.Second), "")
	require.ErrorIs(t, err, opentdb.ErrDecode)
	require.Equal(t, 1, server.QuestionCalls())
}

// TestFetchUnexpectedShapeIsDecodeError rejects non multiple choice results.
func TestFetchUnexpectedShapeIsDecodeError(t *testing.T) {
	server := testutil.StartTriviaServer(t, testutil.TriviaServerConfig{
		Results: []testutil.TriviaResult{{
			Type:             "boolean",
			Question:         "The sky is blue.",
			CorrectAnswer:    "True",
			IncorrectAnswers: []string{"False"},
		}},
	})
	source := newSource(server.BaseURL, fixedPick(0))

	_, err := source.Fetch(testutil.Context(t, time.Second), "tok")
	require.ErrorIs(t, err, opentdb.ErrDecode)
}

// TestFetchResponseCodeIsServiceError surfaces in-band failures.
func TestFetchResponseCodeIsServiceError(t *testing.T) {
	server := testutil.StartTriviaServer(t, testutil.TriviaServerConfig{QuestionsCode: opentdb.CodeRateLimit})
	source := newSource(server.BaseURL, fixedPick(0))

	_, err := source.Fetch(testutil.Context(t, time.Second), "tok")
	require.ErrorIs(t, err, opentdb.ErrResponse)
	var fetchErr *opentdb.FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, opentdb.CodeRateLimit, fetchErr.Code)
	require.Contains(t, err.Error(), "rate limit")
}

// TestFetchHonorsContext aborts when the caller's context is done.
func TestFetchHonorsContext(t *testing.T) {
	server := testutil.StartTriviaServer(t, testutil.TriviaServerConfig{})
	source := newSource(server.BaseURL, fixedPick(0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Fetch(ctx, "")
	require.ErrorIs(t, err, opentdb.ErrNetwork)
}

// TestNewWithTimeoutSetsTimeout ensures the request timeout reaches the client.
func TestNewWithTimeoutSetsTimeout(t *testing.T) {
	server := testutil.StartTriviaServer(t, testutil.TriviaServerConfig{})
	client := opentdb.NewWithTimeout(server.BaseURL+"/", 1500*time.Millisecond)
	res, err := client.RequestToken(testutil.Context(t, time.Second))
	require.NoError(t, err)
	require.Equal(t, "test-session-token", res.Token)
}

func newSource(baseURL string, pick func(int) int) *opentdb.Source {
	return opentdb.NewSource(opentdb.NewWithTimeout(baseURL, time.Second), opentdb.Options{
		Amount: 5,
		Pick:   pick,
	})
}

func fixedPick(slot int) func(int) int {
	return func(int) int { return slot }
}

func answerTexts(q trivia.Question) []string {
	texts := make([]string, 0, len(q.Answers))
	for _, answer := range q.Answers {
		texts = append(texts, answer.Text)
	}
	return texts
}

// lastIncorrectSlot returns where the third incorrect answer lands.
func lastIncorrectSlot(correct int) int {
	if correct == trivia.AnswerCount-1 {
		return trivia.AnswerCount - 2
	}
	return trivia.AnswerCount - 1
}
