package play

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"trivia/internal/game"
)

var (
	colorTitle  = lipgloss.Color("33")
	colorMuted  = lipgloss.Color("242")
	colorError  = lipgloss.Color("196")
	colorButton = lipgloss.Color(game.ColorBorderHighlight)
)

// renderBoard draws a running game onto a width×height canvas.
func renderBoard(snap game.Snapshot, width, height int, status, help string, noColor bool) string {
	c := newCanvas(width, height)

	header := fmt.Sprintf("Round %d/%d  Score %d", snap.Round, snap.Rounds, snap.Score)
	if snap.Category != "" {
		header += "  " + snap.Category
	}
	if snap.Difficulty != "" {
		header += " (" + snap.Difficulty + ")"
	}
	c.text(0, 0, header, colorTitle, true, width)
	for i, line := range wrap(snap.Question, width) {
		if i >= headerRows-2 {
			break
		}
		c.text(0, 1+i, line, "", true, width)
	}

	for _, slot := range snap.Slots {
		drawSlot(c, slot)
	}
	if snap.SubmitVisible {
		x, y, w, h := snap.Submit.Cells()
		c.box(x, y, w, h, colorButton, true)
		label := "SUBMIT"
		c.text(x+(w-len(label))/2, y+h/2, label, colorButton, true, w-2)
	}
	for _, tok := range snap.Tokens {
		drawToken(c, tok)
	}

	footer := status
	if help != "" {
		if footer != "" {
			footer += "  |  "
		}
		footer += help
	}
	c.text(0, height-1, footer, colorMuted, false, width)
	return c.render(noColor)
}

func drawSlot(c *canvas, slot game.AnswerSlot) {
	x, y, w, h := slot.Bounds.Cells()
	highlighted := slot.Border == game.ColorBorderHighlight
	c.box(x, y, w, h, lipgloss.Color(slot.Border), highlighted)
	c.text(x+1, y, fmt.Sprintf("%d", slot.Index+1), lipgloss.Color(slot.Color), true, 1)
	// Keep the bottom inner row free for placed tokens.
	for i, line := range wrap(slot.Text, w-4) {
		if i >= h-3 {
			break
		}
		c.text(x+2, y+1+i, line, lipgloss.Color(slot.Color), false, w-4)
	}
}

func drawToken(c *canvas, tok game.Token) {
	x, y, w, h := tok.Bounds().Cells()
	left, right := '(', ')'
	if tok.Dragging {
		left, right = '[', ']'
	}
	fg := lipgloss.Color(tok.Color)
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			ch := '●'
			switch i {
			case x:
				ch = left
			case x + w - 1:
				ch = right
			}
			c.set(i, j, ch, fg, tok.Dragging)
		}
	}
}

func renderCentered(width, height int, lines ...string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
