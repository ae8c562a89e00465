package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/game"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	tallyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Options configures a Model.
type Options struct {
	Settings config.Settings
	Game     game.Config

	// Ledger receives finished matches under Session. Optional.
	Ledger  *storage.Ledger
	Session string

	// Bell is where the terminal bell is written, usually stderr.
	Bell io.Writer

	Logger *log.Logger
	Clock  quartz.Clock

	// Context ends the tick pump when cancelled, e.g. on SSH disconnect.
	Context context.Context

	Runtime core.RuntimeConfig
}

// Model is the Bubble Tea model for a hot-seat pong match.
type Model struct {
	loop     *game.Loop
	screen   *core.Screen
	pump     *tickPump
	keys     KeyMap
	help     help.Model
	ledger   *storage.Ledger
	session  string
	tally    *storage.Tally
	logger   *log.Logger
	colors   bool
	width    int
	height   int
	quitting bool
}

// NewModel creates a model with an idle match.
func NewModel(opts Options) (Model, error) {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Game == (game.Config{}) {
		opts.Game = game.DefaultConfig()
	}

	m := Model{
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		pump:    newTickPump(opts.Context),
		keys:    NewKeyMap(opts.Settings.Keys),
		help:    help.New(),
		ledger:  opts.Ledger,
		session: opts.Session,
		tally:   &storage.Tally{},
		logger:  opts.Logger,
		colors:  opts.Settings.Display.Colors,
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
	}

	loop, err := game.New(opts.Game, game.Options{
		Renderer:   NewScreenRenderer(m.screen, opts.Game),
		Audio:      NewBellAudio(opts.Bell, opts.Settings.Audio),
		Scheduler:  game.NewClockScheduler(opts.Clock),
		Dispatch:   m.pump.Dispatch,
		OnMatchEnd: m.recordMatch,
		Logger:     opts.Logger,
		Seed:       opts.Runtime.Seed,
	})
	if err != nil {
		m.pump.Close()
		return Model{}, fmt.Errorf("tui: cannot create match: %w", err)
	}
	m.loop = loop

	m.layout()
	return m, nil
}

// recordMatch stores a finished match and refreshes the session tally.
func (m Model) recordMatch(res game.MatchResult) {
	m.logger.Info("match finished",
		"session", m.session,
		"left", res.Left,
		"right", res.Right,
		"winner", res.Winner,
		"reason", res.Reason,
		"duration", res.Duration,
	)
	if m.ledger == nil {
		return
	}
	if err := m.ledger.SaveMatchResult(m.session, res); err != nil {
		m.logger.Warn("could not record match", "error", err)
		return
	}
	tally, err := m.ledger.Tally(m.session)
	if err != nil {
		m.logger.Warn("could not load tally", "error", err)
		return
	}
	*m.tally = tally
}

// Init starts listening for game ticks.
func (m Model) Init() tea.Cmd {
	return m.pump.wait()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.loop.OnStartStopClick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		m.loop.Tick(msg.Seq)
		return m, m.pump.wait()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.Close()
		m.quitting = true
		return m, tea.Quit
	case core.ActionStartStop:
		m.loop.OnStartStopClick()
	case core.ActionLeftUp:
		m.loop.OnPaddleMove(game.SideLeft, game.DirUp)
	case core.ActionLeftDown:
		m.loop.OnPaddleMove(game.SideLeft, game.DirDown)
	case core.ActionRightUp:
		m.loop.OnPaddleMove(game.SideRight, game.DirUp)
	case core.ActionRightDown:
		m.loop.OnPaddleMove(game.SideRight, game.DirDown)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
	return m, nil
}

// layout sizes the field to the space left above the footer and redraws.
func (m *Model) layout() {
	m.help.Width = m.width
	fieldH := max(m.height-lipgloss.Height(m.footer()), 0)
	m.screen.Resize(m.width, fieldH)
	m.loop.Redraw()
}

// footer renders the status line and key help.
func (m Model) footer() string {
	status := m.status()
	if m.ledger != nil {
		t := *m.tally
		status += tallyStyle.Render(fmt.Sprintf("   session: %d played, left %d, right %d", t.Matches, t.LeftWins, t.RightWins))
	}
	return status + "\n" + m.help.View(m.keys)
}

func (m Model) status() string {
	var s string
	switch m.loop.Phase() {
	case game.PhaseIdle:
		s = fmt.Sprintf("Press %s to serve", m.keys.StartStop.Help().Key)
	case game.PhaseRunning:
		s = fmt.Sprintf("Rally on, first to %d", m.loop.Config().WinScore)
	case game.PhaseGameOver:
		s = fmt.Sprintf("%s wins! Press %s for a new match", m.loop.Winner(), m.keys.StartStop.Help().Key)
	}
	return statusStyle.Render(s)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen, m.colors) + "\n" + m.footer()
}

// Loop exposes the underlying match, mainly for tests.
func (m Model) Loop() *game.Loop {
	return m.loop
}

// Close stops the match and releases the tick pump.
func (m Model) Close() {
	m.loop.Close()
	m.pump.Close()
}

// Run plays a local match until the user quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
