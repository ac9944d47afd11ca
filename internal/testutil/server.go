package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// TriviaResult mirrors one entry of the questions endpoint payload.
type TriviaResult struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// TriviaServerConfig controls the replies of a fake trivia service.
type TriviaServerConfig struct {
	Token         string
	TokenCode     int
	TokenStatus   int
	TokenBody     string
	Results       []TriviaResult
	QuestionsCode int
	QuestionsBody string
}

// TriviaServer is a running fake trivia service.
type TriviaServer struct {
	BaseURL string
	Close   func()

	mu            sync.Mutex
	tokenCalls    int
	questionCalls int
	lastQuery     url.Values
}

// TokenCalls returns how many session token requests were served.
func (s *TriviaServer) TokenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenCalls
}

// QuestionCalls returns how many question requests were served.
func (s *TriviaServer) QuestionCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questionCalls
}

// LastQuery returns the query string of the last question request.
func (s *TriviaServer) LastQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

// StartTriviaServer launches an in-memory trivia service.
func StartTriviaServer(t *testing.T, cfg TriviaServerConfig) *TriviaServer {
	t.Helper()
	if cfg.Token == "" {
		cfg.Token = "test-session-token"
	}
	if cfg.Results == nil {
		cfg.Results = SampleResults()
	}
	srv := &TriviaServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api_token.php", func(w http.ResponseWriter, r *http.Request) {
		srv.mu.Lock()
		srv.tokenCalls++
		srv.mu.Unlock()
		if cfg.TokenStatus != 0 {
			w.WriteHeader(cfg.TokenStatus)
		}
		if cfg.TokenBody != "" {
			_, _ = w.Write([]byte(cfg.TokenBody))
			return
		}
		writeJSON(w, map[string]any{
			"response_code":    cfg.TokenCode,
			"response_message": "Token Generated Successfully!",
			"token":            cfg.Token,
		})
	})
	mux.HandleFunc("/api.php", func(w http.ResponseWriter, r *http.Request) {
		srv.mu.Lock()
		srv.questionCalls++
		srv.lastQuery = r.URL.Query()
		srv.mu.Unlock()
		if cfg.QuestionsBody != "" {
			_, _ = w.Write([]byte(cfg.QuestionsBody))
			return
		}
		writeJSON(w, map[string]any{
			"response_code": cfg.QuestionsCode,
			"results":       cfg.Results,
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	srv.BaseURL = server.URL
	srv.Close = server.Close
	return srv
}

// ClosedServerURL returns the address of a server that is no longer listening.
func ClosedServerURL(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()
	return addr
}

// SampleResults returns two encoded multiple choice results.
func SampleResults() []TriviaResult {
	return []TriviaResult{
		{
			Category:         "Science &amp; Nature",
			Type:             "multiple",
			Difficulty:       "easy",
			Question:         "What is the chemical symbol for &quot;gold&quot;?",
			CorrectAnswer:    "Au",
			IncorrectAnswers: []string{"Ag", "Gd", "Go"},
		},
		{
			Category:         "Entertainment: Music",
			Type:             "multiple",
			Difficulty:       "medium",
			Question:         "Which band released &#039;Kid A&#039;?",
			CorrectAnswer:    "Radiohead",
			IncorrectAnswers: []string{"Blur", "Oasis", "Sigur R&oacute;s"},
		},
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
