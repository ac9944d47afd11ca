package game

import (
	"sort"
	"time"

	"trivia/internal/trivia"
)

// DefaultTokens is the size of the token pool.
const DefaultTokens = 5

// Layout positions everything the player can touch. It is produced by the
// front end from the window size.
type Layout struct {
	Slots  [trivia.AnswerCount]Rect
	Homes  []Rect
	Submit Rect
}

// Options configures a Game.
type Options struct {
	Tokens          int
	HighlightPeriod time.Duration
	HighlightTicks  int
	Layout          Layout
}

// Game drives one play session over a RoundSet. All mutation happens inside
// Tick; Push and Submit only enqueue.
type Game struct {
	rounds     *trivia.RoundManager
	board      Board
	controller *TokenController
	gate       Gate
	evaluator  Evaluator
	highlight  *Highlighter
	layout     Layout
	question   trivia.Question
	inputs     queue[Input]
	commands   queue[Command]
	signals    []Signal
	complete   bool
}

// New creates the token pool and builds the first round.
func New(set *trivia.RoundSet, opts Options) *Game {
	tokens := opts.Tokens
	if tokens <= 0 {
		tokens = DefaultTokens
	}
	g := &Game{
		rounds:    trivia.NewRoundManager(set),
		highlight: NewHighlighter(opts.HighlightPeriod, opts.HighlightTicks),
		layout:    opts.Layout,
	}
	g.controller = NewTokenController(&g.board)
	g.board.Tokens = make([]Token, tokens)
	for i := range g.board.Tokens {
		g.board.Tokens[i] = Token{
			ID:       TokenID(i),
			PlacedOn: NoSlot,
			Color:    ColorTokenNeutral,
			Layer:    i,
		}
	}
	g.board.layer = tokens
	g.applyHomes()
	if g.rounds.Done() {
		g.finish()
	} else {
		g.startRound()
	}
	return g
}

// Push queues a pointer event for the next tick.
func (g *Game) Push(in Input) {
	g.inputs.push(in)
}

// Submit queues a submission for the next tick.
func (g *Game) Submit() {
	g.commands.push(Command{Kind: CommandSubmit})
}

// SetLayout moves slots and home positions. Placements survive; placed
// tokens are stacked inside their slot, the rest go home.
func (g *Game) SetLayout(layout Layout) {
	g.layout = layout
	for i := range g.board.Slots {
		g.board.Slots[i].Bounds = layout.Slots[i]
	}
	g.applyHomes()
	stacked := make(map[SlotRef]int)
	for i := range g.board.Tokens {
		tok := &g.board.Tokens[i]
		if tok.Dragging {
			continue
		}
		slot, ok := g.board.Slot(tok.PlacedOn)
		if !ok {
			tok.Position = tok.Home.Center
			continue
		}
		tok.Position = stackPosition(slot.Bounds, tok.Size, stacked[tok.PlacedOn])
		stacked[tok.PlacedOn]++
	}
}

// Tick processes queued input, then commands, then timers, and finally
// recomputes the submit gate. It returns the signals raised this tick. A
// highlight started by this tick's submission starts counting on the next
// tick.
func (g *Game) Tick(dt time.Duration) []Signal {
	for _, in := range g.inputs.drain() {
		g.handleInput(in)
	}
	running := g.highlight.Active()
	g.runCommands()
	if running && g.highlight.Active() {
		g.advanceHighlight(dt)
		g.runCommands()
	}
	if !g.complete {
		if visible, changed := g.gate.Update(g.board.Tokens); changed {
			g.emit(Signal{Kind: SignalGateChanged, Visible: visible})
		}
	}
	g.controller.assertSingleDrag()
	signals := g.signals
	g.signals = nil
	return signals
}

// Score returns the cumulative score.
func (g *Game) Score() int {
	return g.evaluator.Score()
}

// Complete reports whether every round was played.
func (g *Game) Complete() bool {
	return g.complete
}

// Board exposes the arena for read-only projections and tests.
func (g *Game) Board() *Board {
	return &g.board
}

// Controller exposes the token controller for read-only checks.
func (g *Game) Controller() *TokenController {
	return g.controller
}

func (g *Game) handleInput(in Input) {
	if g.complete {
		return
	}
	if g.controller.Handle(in) {
		return
	}
	if in.Kind == InputPress && in.HasPoint && !g.controller.Locked() &&
		SubmitVisible(g.board.Tokens) && Contains(in.Point, g.layout.Submit) {
		g.Submit()
	}
}

func (g *Game) runCommands() {
	for _, cmd := range g.commands.drain() {
		switch cmd.Kind {
		case CommandSubmit:
			g.submit()
		case CommandAdvance:
			g.advance()
		}
	}
}

func (g *Game) submit() {
	switch {
	case g.complete:
		g.emit(Signal{Kind: SignalSubmitRejected, Err: ErrGameComplete})
		return
	case g.controller.Locked():
		g.emit(Signal{Kind: SignalSubmitRejected, Err: ErrSubmitLocked})
		return
	case !SubmitVisible(g.board.Tokens):
		g.emit(Signal{Kind: SignalSubmitRejected, Err: ErrSubmitNotAllowed})
		return
	}
	delta, total := g.evaluator.Evaluate(&g.board)
	g.controller.Lock()
	g.highlight.Start(g.question.CorrectIndex())
	g.emit(Signal{
		Kind:   SignalScored,
		Delta:  delta,
		Score:  total,
		Round:  g.rounds.Index() + 1,
		Rounds: g.rounds.Count(),
	})
}

func (g *Game) advanceHighlight(dt time.Duration) {
	toggles, finished := g.highlight.Advance(dt)
	if toggles > 0 {
		g.paintHighlight()
	}
	if !finished {
		return
	}
	g.emit(Signal{Kind: SignalRoundEnded, Round: g.rounds.Index() + 1, Rounds: g.rounds.Count(), Score: g.Score()})
	g.commands.push(Command{Kind: CommandAdvance})
	g.controller.Unlock()
}

func (g *Game) paintHighlight() {
	slot := g.highlight.Slot()
	if slot < 0 || slot >= len(g.board.Slots) {
		return
	}
	if g.highlight.On() {
		g.board.Slots[slot].Border = ColorBorderHighlight
	} else {
		g.board.Slots[slot].Border = ColorBorderNormal
	}
}

func (g *Game) advance() {
	if g.complete {
		return
	}
	g.rounds.Advance()
	if g.rounds.Done() {
		g.finish()
		return
	}
	g.startRound()
}

// startRound rebuilds the slots from the current question and sends every
// token home.
func (g *Game) startRound() {
	g.question = g.rounds.Current()
	g.board.Slots = make([]AnswerSlot, len(g.question.Answers))
	for i, answer := range g.question.Answers {
		g.board.Slots[i] = AnswerSlot{
			Index:  i,
			Text:   answer.Text,
			Bounds: g.layout.Slots[i],
			Truth:  answer.Truth,
			Color:  SlotColors[i],
			Border: ColorBorderNormal,
		}
	}
	g.controller.reset()
	g.board.resetTokens()
	g.emit(Signal{Kind: SignalRoundStarted, Round: g.rounds.Index() + 1, Rounds: g.rounds.Count(), Score: g.Score()})
}

func (g *Game) finish() {
	g.complete = true
	g.question = trivia.Question{}
	g.controller.reset()
	g.controller.Lock()
	g.board.clearSlots()
	g.board.resetTokens()
	g.gate = Gate{}
	g.emit(Signal{Kind: SignalGameComplete, Score: g.Score(), Round: g.rounds.Index(), Rounds: g.rounds.Count()})
}

func (g *Game) applyHomes() {
	for i := range g.board.Tokens {
		tok := &g.board.Tokens[i]
		if i < len(g.layout.Homes) {
			tok.Home = g.layout.Homes[i]
		}
		tok.Size = tok.Home.Half
	}
}

func (g *Game) emit(sig Signal) {
	g.signals = append(g.signals, sig)
}

// stackPosition places the n-th token of a slot along the slot's bottom edge.
func stackPosition(slot Rect, size Point, n int) Point {
	left := slot.Center.X - slot.Half.X + size.X + 1
	step := size.X*2 + 1
	x := left + float64(n)*step
	maxX := slot.Center.X + slot.Half.X - size.X - 1
	if x > maxX {
		x = maxX
	}
	y := slot.Center.Y + slot.Half.Y - size.Y - 1
	if y < slot.Center.Y {
		y = slot.Center.Y
	}
	return Point{X: x, Y: y}
}

// Snapshot is a read projection of the game for rendering.
type Snapshot struct {
	Question      string
	Category      string
	Difficulty    string
	Round         int
	Rounds        int
	Score         int
	Slots         []AnswerSlot
	Tokens        []Token
	SubmitVisible bool
	Submit        Rect
	Locked        bool
	Highlighting  bool
	Complete      bool
}

// Snapshot copies the state needed to draw a frame. Tokens are ordered by
// draw layer, lowest first.
func (g *Game) Snapshot() Snapshot {
	slots := make([]AnswerSlot, len(g.board.Slots))
	copy(slots, g.board.Slots)
	tokens := make([]Token, len(g.board.Tokens))
	copy(tokens, g.board.Tokens)
	sort.SliceStable(tokens, func(i, j int) bool { return tokens[i].Layer < tokens[j].Layer })
	round := g.rounds.Index() + 1
	if g.complete {
		round = g.rounds.Count()
	}
	return Snapshot{
		Question:      g.question.Text,
		Category:      g.question.Category,
		Difficulty:    g.question.Difficulty,
		Round:         round,
		Rounds:        g.rounds.Count(),
		Score:         g.Score(),
		Slots:         slots,
		Tokens:        tokens,
		SubmitVisible: g.gate.Visible(),
		Submit:        g.layout.Submit,
		Locked:        g.controller.Locked(),
		Highlighting:  g.highlight.Active(),
		Complete:      g.complete,
	}
}
