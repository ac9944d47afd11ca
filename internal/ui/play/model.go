package play

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trivia/internal/app"
)

// Model is the Bubble Tea front end of the game. Every tick message drives
// one app.Controller tick on the update goroutine.
type Model struct {
	ctrl         *app.Controller
	keys         keyMap
	spinner      spinner.Model
	tickInterval time.Duration
	last         time.Time
	width        int
	height       int
	tokens       int
	noColor      bool
	status       string
}

// Options configures the play UI.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
	Tokens       int
}

// NewModel builds the UI around ctrl.
func NewModel(ctrl *app.Controller, opts Options) Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = 33 * time.Millisecond
	}
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !opts.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(colorTitle)
	}
	return Model{
		ctrl:         ctrl,
		keys:         defaultKeys(),
		spinner:      s,
		tickInterval: tickInterval,
		width:        MinWidth,
		height:       MinHeight,
		tokens:       opts.Tokens,
		noColor:      opts.NoColor,
	}
}

// Run starts the program on the alternate screen with mouse tracking and
// blocks until the player quits or ctx ends.
func Run(ctx context.Context, ctrl *app.Controller, opts Options, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(NewModel(ctrl, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := program.Run()
	return err
}

// Init starts the tick loop and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.tickInterval), m.spinner.Tick)
}

// Update routes terminal events to the controller.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = typed.Width, typed.Height
		m.ctrl.SetLayout(ComputeLayout(m.width, m.height, m.tokens))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.MouseMsg:
		if in, ok := translateMouse(typed); ok {
			m.ctrl.Push(in)
		}
		return m, nil
	case tickMsg:
		now := time.Time(typed)
		dt := now.Sub(m.last)
		if m.last.IsZero() || dt < 0 {
			dt = m.tickInterval
		}
		m.last = now
		for _, sig := range m.ctrl.Tick(dt) {
			m.status = statusFor(m.status, sig)
		}
		return m, tick(m.tickInterval)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	switch m.ctrl.State() {
	case app.StateMenu, app.StateComplete, app.StateFailed:
		if key.Matches(msg, m.keys.Start) {
			if err := m.ctrl.StartGame(); err != nil {
				m.status = err.Error()
			} else {
				m.status = ""
			}
			return m, nil
		}
	case app.StatePlaying:
		if key.Matches(msg, m.keys.Submit) {
			m.ctrl.Submit()
			return m, nil
		}
	}
	if key.Matches(msg, m.keys.Menu) && m.ctrl.ReturnToMenu() {
		m.status = ""
	}
	return m, nil
}

// View renders the screen for the controller's state.
func (m Model) View() string {
	switch m.ctrl.State() {
	case app.StateLoading:
		return renderCentered(m.width, m.height,
			m.spinner.View()+" "+m.ctrl.LoadingText(),
			stylize(helpLine(m.keys.Quit), m.noColor, colorMuted))
	case app.StatePlaying:
		if m.width < MinWidth || m.height < MinHeight {
			return renderCentered(m.width, m.height,
				fmt.Sprintf("Window too small, need %dx%d", MinWidth, MinHeight))
		}
		return renderBoard(m.ctrl.Game().Snapshot(), m.width, m.height, m.status,
			helpLine(m.keys.Submit, m.keys.Menu, m.keys.Quit), m.noColor)
	case app.StateComplete:
		return renderCentered(m.width, m.height,
			stylize("Game over", m.noColor, colorTitle),
			fmt.Sprintf("Final score: %d", m.ctrl.FinalScore()),
			stylize(helpLine(m.keys.Start, m.keys.Menu, m.keys.Quit), m.noColor, colorMuted))
	case app.StateFailed:
		return renderCentered(m.width, m.height,
			stylize("Could not load questions", m.noColor, colorError),
			fmt.Sprintf("%v", m.ctrl.Err()),
			stylize(helpLine(m.keys.Start, m.keys.Menu, m.keys.Quit), m.noColor, colorMuted))
	}
	lines := []string{
		stylize("TOKEN TRIVIA", m.noColor, colorTitle),
		"Drag every token onto an answer, then submit.",
		"Tokens score on the correct answer.",
	}
	if m.status != "" {
		lines = append(lines, m.status)
	}
	lines = append(lines, stylize(helpLine(m.keys.Start, m.keys.Quit), m.noColor, colorMuted))
	return renderCentered(m.width, m.height, lines...)
}

// tickMsg carries a clock tick for updates.
type tickMsg time.Time

// tick emits a periodic tick message.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}
