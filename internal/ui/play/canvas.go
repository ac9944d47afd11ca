package play

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	ch   rune
	fg   lipgloss.Color
	bold bool
}

// canvas is a fixed grid of styled cells. Later writes cover earlier ones,
// which gives the board its draw order.
type canvas struct {
	width  int
	height int
	cells  []cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, cells: make([]cell, width*height)}
	for i := range c.cells {
		c.cells[i].ch = ' '
	}
	return c
}

// wideTail marks the second cell covered by a double-width rune.
const wideTail rune = 0

func (c *canvas) set(x, y int, ch rune, fg lipgloss.Color, bold bool) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	i := y*c.width + x
	// Overwriting either half of a wide rune blanks the other half.
	if c.cells[i].ch == wideTail && x > 0 {
		c.cells[i-1].ch = ' '
	}
	if x+1 < c.width && c.cells[i+1].ch == wideTail {
		c.cells[i+1].ch = ' '
	}
	c.cells[i] = cell{ch: ch, fg: fg, bold: bold}
}

func (c *canvas) setTail(x, y int, fg lipgloss.Color, bold bool) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	i := y*c.width + x
	if x+1 < c.width && c.cells[i+1].ch == wideTail {
		c.cells[i+1].ch = ' '
	}
	c.cells[i] = cell{ch: wideTail, fg: fg, bold: bold}
}

// text writes s from (x,y), clipped to limit cells. Double-width runes take
// two cells and are dropped when only one is left.
func (c *canvas) text(x, y int, s string, fg lipgloss.Color, bold bool, limit int) {
	n := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if n+w > limit || x+n+w > c.width {
			return
		}
		c.set(x+n, y, r, fg, bold)
		if w == 2 {
			c.setTail(x+n+1, y, fg, bold)
		}
		n += w
	}
}

// box draws a rounded border around the w×h area at (x,y).
func (c *canvas) box(x, y, w, h int, fg lipgloss.Color, bold bool) {
	if w < 2 || h < 2 {
		return
	}
	b := lipgloss.RoundedBorder()
	top, bottom := firstRune(b.Top), firstRune(b.Bottom)
	left, right := firstRune(b.Left), firstRune(b.Right)
	for i := x + 1; i < x+w-1; i++ {
		c.set(i, y, top, fg, bold)
		c.set(i, y+h-1, bottom, fg, bold)
	}
	for j := y + 1; j < y+h-1; j++ {
		c.set(x, j, left, fg, bold)
		c.set(x+w-1, j, right, fg, bold)
	}
	c.set(x, y, firstRune(b.TopLeft), fg, bold)
	c.set(x+w-1, y, firstRune(b.TopRight), fg, bold)
	c.set(x, y+h-1, firstRune(b.BottomLeft), fg, bold)
	c.set(x+w-1, y+h-1, firstRune(b.BottomRight), fg, bold)
}

// render joins the rows, styling each run of equally styled cells once.
func (c *canvas) render(noColor bool) string {
	var out strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := c.cells[y*c.width : (y+1)*c.width]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].fg == row[start].fg && row[x].bold == row[start].bold {
				continue
			}
			out.WriteString(styleRun(row[start:x], noColor))
			start = x
		}
	}
	return out.String()
}

func styleRun(run []cell, noColor bool) string {
	var s strings.Builder
	for _, c := range run {
		if c.ch != wideTail {
			s.WriteRune(c.ch)
		}
	}
	if noColor || (run[0].fg == "" && !run[0].bold) {
		return s.String()
	}
	style := lipgloss.NewStyle().Bold(run[0].bold)
	if run[0].fg != "" {
		style = style.Foreground(run[0].fg)
	}
	return style.Render(s.String())
}

// wrap breaks text into lines of at most width cells.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
