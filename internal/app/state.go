package app

import "trivia/internal/game"

// State is the top-level screen the player is on.
type State int

const (
	// StateMenu waits for the player to start a game.
	StateMenu State = iota
	// StateLoading waits for the question fetch.
	StateLoading
	// StatePlaying runs rounds.
	StatePlaying
	// StateComplete shows the final score.
	StateComplete
	// StateFailed shows a fetch error.
	StateFailed
)

// String returns a lowercase label for logs.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SignalKind identifies a lifecycle notification.
type SignalKind int

const (
	// SignalLoadComplete reports that rounds were installed.
	SignalLoadComplete SignalKind = iota
	// SignalLoadFailed reports a fetch failure. It is raised once per attempt.
	SignalLoadFailed
	// SignalGameComplete reports the final score.
	SignalGameComplete
	// SignalGame forwards a signal from the running game.
	SignalGame
)

// Signal is returned by Controller.Tick.
type Signal struct {
	Kind   SignalKind
	Err    error
	Score  int
	Rounds int
	Game   game.Signal
}
