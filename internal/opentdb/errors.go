package opentdb

import (
	"errors"
	"fmt"
)

// Kind classifies a fetch failure.
type Kind int

const (
	// KindNetwork covers transport failures, timeouts and non-2xx statuses.
	KindNetwork Kind = iota + 1
	// KindDecode covers malformed JSON and unexpected payload shapes.
	KindDecode
	// KindResponse covers a well-formed reply carrying a non-zero response code.
	KindResponse
)

// Sentinels matched by errors.Is against a *FetchError of the same kind.
var (
	ErrNetwork  = errors.New("network error")
	ErrDecode   = errors.New("decode error")
	ErrResponse = errors.New("service error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNetwork:
		return ErrNetwork
	case KindDecode:
		return ErrDecode
	case KindResponse:
		return ErrResponse
	default:
		return errors.New("unknown fetch error")
	}
}

// String returns a short label for the kind.
func (k Kind) String() string {
	return k.sentinel().Error()
}

// FetchError is the single failure type produced by a fetch attempt.
type FetchError struct {
	Kind Kind
	// Op is the step that failed: "session" or "questions".
	Op string
	// Code is the service response code for KindResponse.
	Code int
	Err  error
}

// Error renders the step, kind and cause.
func (e *FetchError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Op + ": " + e.Kind.String()
	if e.Kind == KindResponse {
		msg += fmt.Sprintf(" (code %d: %s)", e.Code, responseCodeText(e.Code))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error kind.
func (e *FetchError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func networkError(op string, err error) error {
	return &FetchError{Kind: KindNetwork, Op: op, Err: err}
}

func decodeError(op string, err error) error {
	return &FetchError{Kind: KindDecode, Op: op, Err: err}
}

func responseError(op string, code int, message string) error {
	var err error
	if message != "" {
		err = errors.New(message)
	}
	return &FetchError{Kind: KindResponse, Op: op, Code: code, Err: err}
}

// Response codes documented by the Open Trivia DB API.
const (
	CodeSuccess          = 0
	CodeNoResults        = 1
	CodeInvalidParameter = 2
	CodeTokenNotFound    = 3
	CodeTokenEmpty       = 4
	CodeRateLimit        = 5
)

func responseCodeText(code int) string {
	switch code {
	case CodeSuccess:
		return "success"
	case CodeNoResults:
		return "not enough questions for the query"
	case CodeInvalidParameter:
		return "invalid parameter"
	case CodeTokenNotFound:
		return "session token not found"
	case CodeTokenEmpty:
		return "session token exhausted"
	case CodeRateLimit:
		return "rate limit exceeded"
	default:
		return "unknown response code"
	}
}
