package game

// Color is a display color understood by the renderer (hex or ANSI code).
type Color string

// Palette used by the board.
const (
	ColorTokenNeutral    Color = "#C8CCD4"
	ColorBorderNormal    Color = "#5C6370"
	ColorBorderHighlight Color = "#FFD75F"
)

// SlotColors gives each answer position its own color; a token placed on a
// slot takes that color.
var SlotColors = [4]Color{"#E06C75", "#61AFEF", "#98C379", "#C678DD"}

// SlotRef refers to an answer slot by index. NoSlot means unplaced.
type SlotRef int

// NoSlot marks a token that rests on no answer.
const NoSlot SlotRef = -1

// TokenID is the stable index of a token in the board arena.
type TokenID int

// AnswerSlot is the drop target of one answer.
type AnswerSlot struct {
	Index  int
	Text   string
	Bounds Rect
	Truth  bool
	Color  Color
	Border Color
}

// Token is a movable piece. PlacedOn is a non-owning reference into the
// slot list and is cleared whenever the slots are rebuilt.
type Token struct {
	ID       TokenID
	Position Point
	Size     Point
	PlacedOn SlotRef
	Home     Rect
	Color    Color
	Layer    int
	Dragging bool
	grab     Point
}

// Bounds returns the token's hit box at its current position.
func (t Token) Bounds() Rect {
	return Rect{Center: t.Position, Half: t.Size}
}

// Placed reports whether the token rests on an answer slot.
func (t Token) Placed() bool {
	return t.PlacedOn != NoSlot
}

// Board is the arena of slots and tokens for the running game.
type Board struct {
	Slots  []AnswerSlot
	Tokens []Token
	layer  int
}

// HitToken returns the first token, in ascending id order, whose box contains
// p. When tokens overlap the lowest id wins regardless of draw order.
func (b *Board) HitToken(p Point) (TokenID, bool) {
	for i := range b.Tokens {
		if Contains(p, b.Tokens[i].Bounds()) {
			return b.Tokens[i].ID, true
		}
	}
	return 0, false
}

// HitSlot returns the last slot, in index order, containing p. Slots are laid
// out without overlap; when they do overlap the later one wins.
func (b *Board) HitSlot(p Point) SlotRef {
	hit := NoSlot
	for i := range b.Slots {
		if Contains(p, b.Slots[i].Bounds) {
			hit = SlotRef(i)
		}
	}
	return hit
}

// Slot returns the slot for ref, or false when ref does not resolve.
func (b *Board) Slot(ref SlotRef) (AnswerSlot, bool) {
	if ref < 0 || int(ref) >= len(b.Slots) {
		return AnswerSlot{}, false
	}
	return b.Slots[ref], true
}

// raise puts token id above every other token in draw order.
func (b *Board) raise(id TokenID) {
	b.layer++
	b.Tokens[id].Layer = b.layer
}

// resetTokens returns every token home and clears its placement.
func (b *Board) resetTokens() {
	for i := range b.Tokens {
		tok := &b.Tokens[i]
		tok.Position = tok.Home.Center
		tok.PlacedOn = NoSlot
		tok.Color = ColorTokenNeutral
		tok.Dragging = false
		tok.grab = Point{}
	}
}

// clearSlots removes every slot and the placements pointing at them.
func (b *Board) clearSlots() {
	b.Slots = nil
	for i := range b.Tokens {
		b.Tokens[i].PlacedOn = NoSlot
		b.Tokens[i].Color = ColorTokenNeutral
	}
}
