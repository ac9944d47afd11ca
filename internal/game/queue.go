package game

import "errors"

// CommandKind identifies a deferred game command.
type CommandKind int

const (
	// CommandSubmit scores the current placement.
	CommandSubmit CommandKind = iota
	// CommandAdvance moves to the next round.
	CommandAdvance
)

// Command is drained once per tick after input.
type Command struct {
	Kind CommandKind
}

// SignalKind identifies an outbound notification.
type SignalKind int

const (
	// SignalRoundStarted reports a freshly built round.
	SignalRoundStarted SignalKind = iota
	// SignalGateChanged reports a submit visibility flip.
	SignalGateChanged
	// SignalSubmitRejected reports a submit that was not allowed.
	SignalSubmitRejected
	// SignalScored reports the result of a submission.
	SignalScored
	// SignalRoundEnded reports the end of the highlight sequence.
	SignalRoundEnded
	// SignalGameComplete reports that every round was played.
	SignalGameComplete
)

// Errors carried by SignalSubmitRejected.
var (
	ErrSubmitNotAllowed = errors.New("not every token is placed")
	ErrSubmitLocked     = errors.New("submission already in progress")
	ErrGameComplete     = errors.New("game is complete")
)

// Signal is emitted by Tick for the UI and the app controller.
type Signal struct {
	Kind    SignalKind
	Visible bool
	Delta   int
	Score   int
	Round   int
	Rounds  int
	Err     error
}

// queue is a FIFO drained in one go.
type queue[T any] struct {
	items []T
}

func (q *queue[T]) push(item T) {
	q.items = append(q.items, item)
}

// drain returns the queued items and empties the queue. Items pushed while
// the caller processes the batch land in the next drain.
func (q *queue[T]) drain() []T {
	items := q.items
	q.items = nil
	return items
}
