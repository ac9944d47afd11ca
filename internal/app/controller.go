package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trivia/internal/game"
	"trivia/internal/opentdb"
	"trivia/internal/task"
	"trivia/internal/trivia"
)

// Fetcher produces the rounds of a game.
type Fetcher interface {
	Fetch(ctx context.Context, existing trivia.SessionID) (opentdb.Batch, error)
}

// Errors returned by StartGame.
var (
	ErrFetchInFlight = errors.New("a fetch is already running")
	ErrGameRunning   = errors.New("a game is already running")
)

const loadingStep = 400 * time.Millisecond

// Options configures a Controller.
type Options struct {
	Source Fetcher
	Game   game.Options
	Logger *zap.Logger
	// Context bounds every fetch. Defaults to context.Background.
	Context context.Context
}

// Controller moves the player between menu, loading, play and result
// screens. Like game.Game, it is driven from a single goroutine via Tick.
type Controller struct {
	state      State
	source     Fetcher
	gameOpts   game.Options
	ctx        context.Context
	baseLogger *zap.Logger
	logger     *zap.Logger

	fetch   *task.Task[opentdb.Batch]
	session trivia.SessionID
	rounds  *trivia.RoundSet
	game    *game.Game
	gameID  string

	loadingElapsed time.Duration
	finalScore     int
	err            error
	signals        []Signal
}

// New builds a controller on the menu screen.
func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return &Controller{
		state:      StateMenu,
		source:     opts.Source,
		gameOpts:   opts.Game,
		ctx:        ctx,
		baseLogger: logger,
		logger:     logger,
	}
}

// StartGame dispatches the question fetch. Only one fetch may be in flight.
func (c *Controller) StartGame() error {
	switch c.state {
	case StateLoading:
		return ErrFetchInFlight
	case StatePlaying:
		return ErrGameRunning
	}
	c.teardown()
	c.gameID = uuid.NewString()
	c.logger = c.baseLogger.With(zap.String("game_id", c.gameID))
	c.err = nil
	c.finalScore = 0
	c.loadingElapsed = 0

	source := c.source
	session := c.session
	c.fetch = task.Start(c.ctx, func(ctx context.Context) (opentdb.Batch, error) {
		return source.Fetch(ctx, session)
	})
	c.setState(StateLoading)
	c.logger.Info("fetch dispatched", zap.Bool("reuse_session", !session.Empty()))
	return nil
}

// ReturnToMenu drops the finished or running game. It is refused while a
// fetch is in flight so that at most one fetch exists.
func (c *Controller) ReturnToMenu() bool {
	if c.state == StateLoading {
		return false
	}
	c.teardown()
	c.setState(StateMenu)
	return true
}

// Tick polls the fetch or advances the game, then returns the signals raised.
func (c *Controller) Tick(dt time.Duration) []Signal {
	switch c.state {
	case StateLoading:
		c.loadingElapsed += dt
		c.pollFetch()
	case StatePlaying:
		c.tickGame(dt)
	}
	signals := c.signals
	c.signals = nil
	return signals
}

// Push forwards pointer input to the running game.
func (c *Controller) Push(in game.Input) {
	if c.state == StatePlaying {
		c.game.Push(in)
	}
}

// Submit forwards a submission to the running game.
func (c *Controller) Submit() {
	if c.state == StatePlaying {
		c.game.Submit()
	}
}

// SetLayout records the layout for future games and applies it to the
// running one.
func (c *Controller) SetLayout(layout game.Layout) {
	c.gameOpts.Layout = layout
	if c.game != nil {
		c.game.SetLayout(layout)
	}
}

// State returns the current screen.
func (c *Controller) State() State {
	return c.state
}

// Game returns the running game, or nil.
func (c *Controller) Game() *game.Game {
	return c.game
}

// Rounds returns the installed round set, or nil.
func (c *Controller) Rounds() *trivia.RoundSet {
	return c.rounds
}

// Session returns the session id kept across games.
func (c *Controller) Session() trivia.SessionID {
	return c.session
}

// Err returns the last fetch failure.
func (c *Controller) Err() error {
	return c.err
}

// FinalScore returns the score of the last completed game.
func (c *Controller) FinalScore() int {
	return c.finalScore
}

// GameID returns the id of the current or last game.
func (c *Controller) GameID() string {
	return c.gameID
}

// LoadingText animates trailing dots while the fetch runs.
func (c *Controller) LoadingText() string {
	dots := int(c.loadingElapsed/loadingStep) % 4
	return "Loading" + strings.Repeat(".", dots)
}

func (c *Controller) pollFetch() {
	out, ok := c.fetch.Poll()
	if !ok {
		return
	}
	c.fetch = nil
	if out.Err != nil {
		c.err = out.Err
		if sessionRejected(out.Err) {
			c.logger.Warn("session token rejected, next game requests a new one")
			c.session = ""
		}
		c.setState(StateFailed)
		c.logger.Error("fetch failed", zap.Error(out.Err))
		c.emit(Signal{Kind: SignalLoadFailed, Err: out.Err})
		return
	}
	c.session = out.Value.Session
	c.rounds = out.Value.Rounds
	c.game = game.New(c.rounds, c.gameOpts)
	c.setState(StatePlaying)
	c.logger.Info("rounds installed", zap.Int("rounds", c.rounds.RoundCount))
	c.emit(Signal{Kind: SignalLoadComplete, Rounds: c.rounds.RoundCount})
	c.tickGame(0)
}

// sessionRejected reports whether err says the stored session token is
// unknown or used up.
func sessionRejected(err error) bool {
	var fe *opentdb.FetchError
	if !errors.As(err, &fe) || fe.Kind != opentdb.KindResponse {
		return false
	}
	return fe.Code == opentdb.CodeTokenNotFound || fe.Code == opentdb.CodeTokenEmpty
}

func (c *Controller) tickGame(dt time.Duration) {
	for _, sig := range c.game.Tick(dt) {
		c.logGameSignal(sig)
		c.emit(Signal{Kind: SignalGame, Game: sig})
	}
	if !c.game.Complete() {
		return
	}
	c.finalScore = c.game.Score()
	c.setState(StateComplete)
	c.emit(Signal{Kind: SignalGameComplete, Score: c.finalScore, Rounds: c.rounds.RoundCount})
}

func (c *Controller) logGameSignal(sig game.Signal) {
	switch sig.Kind {
	case game.SignalRoundStarted:
		c.logger.Debug("round started", zap.Int("round", sig.Round), zap.Int("rounds", sig.Rounds))
	case game.SignalScored:
		c.logger.Info("round scored", zap.Int("round", sig.Round), zap.Int("delta", sig.Delta), zap.Int("score", sig.Score))
	case game.SignalSubmitRejected:
		c.logger.Debug("submit rejected", zap.Error(sig.Err))
	case game.SignalGameComplete:
		c.logger.Info("game complete", zap.Int("score", sig.Score), zap.Int("rounds", sig.Rounds))
	}
}

func (c *Controller) teardown() {
	c.game = nil
	c.rounds = nil
}

func (c *Controller) setState(next State) {
	if next == c.state {
		return
	}
	c.logger.Debug("state change", zap.Stringer("from", c.state), zap.Stringer("to", next))
	c.state = next
}

func (c *Controller) emit(sig Signal) {
	c.signals = append(c.signals, sig)
}
