package game

// SubmitVisible reports whether submission is allowed: every token rests on
// an answer slot. It is a pure function of the tokens.
func SubmitVisible(tokens []Token) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		if !tok.Placed() {
			return false
		}
	}
	return true
}

// Gate remembers the last computed visibility so the UI only reacts to flips.
type Gate struct {
	visible bool
}

// Update recomputes visibility and reports whether it changed.
func (g *Gate) Update(tokens []Token) (visible, changed bool) {
	visible = SubmitVisible(tokens)
	changed = visible != g.visible
	g.visible = visible
	return visible, changed
}

// Visible returns the last computed value.
func (g *Gate) Visible() bool {
	return g.visible
}
