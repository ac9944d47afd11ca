package play

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"trivia/internal/game"
)

type keyMap struct {
	Start  key.Binding
	Submit key.Binding
	Menu   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Start:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Submit: key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter/s", "submit")),
		Menu:   key.NewBinding(key.WithKeys("m", "esc"), key.WithHelp("m", "menu")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// translateMouse maps a terminal mouse event to a board input at the center
// of the cell under the pointer. Only the left button drags.
func translateMouse(msg tea.MouseMsg) (game.Input, bool) {
	p := game.CellPoint(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return game.Input{}, false
		}
		return game.Press(p), true
	case tea.MouseActionMotion:
		return game.Move(p), true
	case tea.MouseActionRelease:
		return game.Release(p), true
	}
	return game.Input{}, false
}

func helpLine(bindings ...key.Binding) string {
	line := ""
	for i, b := range bindings {
		if i > 0 {
			line += "  "
		}
		help := b.Help()
		line += help.Key + " " + help.Desc
	}
	return line
}
