package game

import "fmt"

// DragState is the state of a single token.
type DragState int

const (
	// AtRest means the token is not being dragged.
	AtRest DragState = iota
	// Dragging means the token follows the pointer.
	Dragging
)

// TokenController runs the drag state machine for every token on the board.
// It is the only writer of Token.PlacedOn.
type TokenController struct {
	board    *Board
	dragging TokenID
	active   bool
	locked   bool
}

// NewTokenController binds a controller to board.
func NewTokenController(board *Board) *TokenController {
	return &TokenController{board: board}
}

// State returns the drag state of token id.
func (c *TokenController) State(id TokenID) DragState {
	if c.active && c.dragging == id {
		return Dragging
	}
	return AtRest
}

// Active returns the dragged token, if any.
func (c *TokenController) Active() (TokenID, bool) {
	return c.dragging, c.active
}

// Locked reports whether input is ignored.
func (c *TokenController) Locked() bool {
	return c.locked
}

// Lock stops all dragging until Unlock. A drag in progress is dropped where
// the token currently is.
func (c *TokenController) Lock() {
	if c.active {
		tok := &c.board.Tokens[c.dragging]
		c.drop(tok)
	}
	c.locked = true
}

// Unlock re-enables input.
func (c *TokenController) Unlock() {
	c.locked = false
}

// Handle applies one input event. It reports whether a press picked up a
// token, so callers can route unclaimed presses elsewhere.
func (c *TokenController) Handle(in Input) bool {
	if c.locked {
		return false
	}
	switch in.Kind {
	case InputPress:
		if !in.HasPoint {
			return false
		}
		return c.press(in.Point)
	case InputMove:
		if in.HasPoint {
			c.move(in.Point)
		}
	case InputRelease:
		c.release()
	}
	return false
}

func (c *TokenController) press(p Point) bool {
	if c.active {
		return false
	}
	id, ok := c.board.HitToken(p)
	if !ok {
		return false
	}
	tok := &c.board.Tokens[id]
	tok.Dragging = true
	tok.PlacedOn = NoSlot
	tok.Color = ColorTokenNeutral
	tok.grab = p.Sub(tok.Position)
	c.board.raise(id)
	c.dragging = id
	c.active = true
	return true
}

func (c *TokenController) move(p Point) {
	if !c.active {
		return
	}
	tok := &c.board.Tokens[c.dragging]
	tok.Position = p.Sub(tok.grab)
}

func (c *TokenController) release() {
	if !c.active {
		return
	}
	c.drop(&c.board.Tokens[c.dragging])
}

// drop ends the drag and resolves the drop target from the token center.
func (c *TokenController) drop(tok *Token) {
	tok.Dragging = false
	tok.grab = Point{}
	c.active = false
	ref := c.board.HitSlot(tok.Position)
	slot, ok := c.board.Slot(ref)
	if !ok {
		tok.PlacedOn = NoSlot
		tok.Color = ColorTokenNeutral
		return
	}
	tok.PlacedOn = ref
	tok.Color = slot.Color
}

// reset forgets any drag in progress.
func (c *TokenController) reset() {
	c.active = false
	c.dragging = 0
}

// assertSingleDrag panics when the board has more than one dragged token or
// disagrees with the controller.
func (c *TokenController) assertSingleDrag() {
	count := 0
	for i := range c.board.Tokens {
		if c.board.Tokens[i].Dragging {
			count++
			if !c.active || c.dragging != c.board.Tokens[i].ID {
				panic(fmt.Sprintf("game: token %d dragging without controller ownership", i))
			}
		}
	}
	if count > 1 {
		panic(fmt.Sprintf("game: %d tokens dragging at once", count))
	}
}
