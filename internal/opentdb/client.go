package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public Open Trivia DB endpoint.
const DefaultBaseURL = "https://opentdb.com"

// Client talks to the Open Trivia DB HTTP API.
type Client struct {
	baseURL string
	client  *http.Client
}

// New constructs a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: &http.Client{}}
}

// NewWithTimeout constructs a client for the given base URL with a request timeout.
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// RequestToken asks the service for a new session token.
func (c *Client) RequestToken(ctx context.Context) (TokenResponse, error) {
	const op = "session"
	body, err := c.get(ctx, op, "/api_token.php", url.Values{"command": {"request"}})
	if err != nil {
		return TokenResponse{}, err
	}
	var res TokenResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return TokenResponse{}, decodeError(op, err)
	}
	if res.ResponseCode != CodeSuccess {
		return TokenResponse{}, responseError(op, res.ResponseCode, res.ResponseMessage)
	}
	if strings.TrimSpace(res.Token) == "" {
		return TokenResponse{}, decodeError(op, fmt.Errorf("empty token"))
	}
	return res, nil
}

// Questions fetches a batch of questions.
func (c *Client) Questions(ctx context.Context, req QuestionsRequest) (QuestionsResponse, error) {
	const op = "questions"
	query := url.Values{}
	query.Set("amount", strconv.Itoa(req.Amount))
	if req.Type != "" {
		query.Set("type", req.Type)
	}
	if req.Category > 0 {
		query.Set("category", strconv.Itoa(req.Category))
	}
	if req.Token != "" {
		query.Set("token", req.Token)
	}
	body, err := c.get(ctx, op, "/api.php", query)
	if err != nil {
		return QuestionsResponse{}, err
	}
	var res QuestionsResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return QuestionsResponse{}, decodeError(op, err)
	}
	if res.ResponseCode != CodeSuccess {
		return QuestionsResponse{}, responseError(op, res.ResponseCode, "")
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, networkError(op, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, networkError(op, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, networkError(op, fmt.Errorf("http %d", resp.StatusCode))
	}
	return body, nil
}
