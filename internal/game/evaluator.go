package game

// Evaluator scores submissions. It is the only writer of the score.
type Evaluator struct {
	score int
}

// Score returns the cumulative score.
func (e *Evaluator) Score() int {
	return e.score
}

// Evaluate counts the tokens resting on a truthful slot and adds the count
// to the score.
func (e *Evaluator) Evaluate(board *Board) (delta, total int) {
	delta = CountCorrect(board)
	e.score += delta
	return delta, e.score
}

// CountCorrect returns how many tokens rest on the truthful answer.
func CountCorrect(board *Board) int {
	count := 0
	for _, tok := range board.Tokens {
		slot, ok := board.Slot(tok.PlacedOn)
		if ok && slot.Truth {
			count++
		}
	}
	return count
}
