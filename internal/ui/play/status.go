package play

import (
	"errors"
	"fmt"

	"trivia/internal/app"
	"trivia/internal/game"
)

// statusFor returns the footer message for sig, or the current one when sig
// carries nothing worth showing.
func statusFor(current string, sig app.Signal) string {
	switch sig.Kind {
	case app.SignalLoadComplete:
		return fmt.Sprintf("Loaded %d questions", sig.Rounds)
	case app.SignalLoadFailed:
		return ""
	case app.SignalGameComplete:
		return "Game over"
	case app.SignalGame:
		return gameStatus(current, sig.Game)
	}
	return current
}

func gameStatus(current string, sig game.Signal) string {
	switch sig.Kind {
	case game.SignalRoundStarted:
		return fmt.Sprintf("Round %d of %d: drag every token onto an answer", sig.Round, sig.Rounds)
	case game.SignalGateChanged:
		if sig.Visible {
			return "All tokens placed, press submit"
		}
	case game.SignalSubmitRejected:
		switch {
		case errors.Is(sig.Err, game.ErrSubmitNotAllowed):
			return "Place every token before submitting"
		case errors.Is(sig.Err, game.ErrSubmitLocked):
			return "Wait for the next round"
		}
	case game.SignalScored:
		return fmt.Sprintf("+%d points", sig.Delta)
	}
	return current
}
