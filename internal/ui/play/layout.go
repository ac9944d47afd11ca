package play

import "trivia/internal/game"

// Minimum window size the board is drawn at.
const (
	MinWidth  = 44
	MinHeight = 16
)

const (
	headerRows  = 4
	tokenWidth  = 3
	tokenGap    = 1
	submitWidth = 12
	submitRows  = 3
)

// ComputeLayout places the 2x2 answer grid under the question, the token
// homes along the bottom and the submit button at the bottom right.
func ComputeLayout(width, height, tokens int) game.Layout {
	width = max(width, MinWidth)
	height = max(height, MinHeight)

	bottom := height - 1 - submitRows
	slotW := width / 2
	slotH := max((bottom-headerRows)/2, 3)

	var layout game.Layout
	for i := range layout.Slots {
		layout.Slots[i] = game.RectFromCells((i%2)*slotW, headerRows+(i/2)*slotH, slotW, slotH)
	}
	homeRow := bottom + submitRows/2
	for i := 0; i < tokens; i++ {
		layout.Homes = append(layout.Homes, game.RectFromCells(2+i*(tokenWidth+tokenGap), homeRow, tokenWidth, 1))
	}
	submitX := max(width-submitWidth-2, 2+tokens*(tokenWidth+tokenGap)+1)
	layout.Submit = game.RectFromCells(submitX, bottom, submitWidth, submitRows)
	return layout
}
