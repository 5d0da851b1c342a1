package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/echo-arena/internal/core"
)

// Game is what the model drives. *echo.Game satisfies it.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(input core.InputFrame) core.StepResult
	Render(screen *core.Screen)
	State() core.GameState
}

// Model is the Bubble Tea model for running the arena.
type Model struct {
	game    Game
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	styles  *Styles
	logger  *log.Logger
	heading core.Heading
	pending core.InputFrame // one-shot actions for the next tick
	state   core.GameState
	runID   string
	paused  bool
	err     error

	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards events; a nil renderer uses the default one.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger, renderer *lipgloss.Renderer) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	game.Reset(cfg)
	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  NewStyles(renderer),
		logger:  logger,
		pending: core.NewInputFrame(),
		state:   game.State(),
	}
	m.beginRun()
	return m
}

// Init sets the terminal title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if key.Matches(msg, m.keys.Stop) {
		m.heading.Stop()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "run", m.runID, "score", m.state.Score, "best", m.state.Best)
		return m, tea.Quit
	case core.ActionPause:
		if !m.state.GameOver {
			m.paused = !m.paused
		}
	case core.ActionRestart:
		m.pending.Set(core.ActionRestart)
	case core.ActionNone:
	default:
		if !m.paused {
			m.heading.Press(action)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The arena is scaled to the
// screen, so the run continues unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.pending.Clone()
	if dir := m.heading.Current(); dir != core.ActionNone {
		frame.Set(dir)
	}
	m.pending.Clear()

	prevRun := m.state.Run
	result := m.game.Step(frame)
	m.state = result.State

	if m.state.Run != prevRun {
		m.heading.Stop()
		m.beginRun()
	}
	m.logEvents(result.Events)

	if result.Err != nil {
		m.err = result.Err
		m.logger.Error("simulation stopped", "run", m.runID, "err", result.Err)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) beginRun() {
	m.runID = uuid.NewString()
	m.logger.Info("run started", "game", m.game.ID(), "run", m.runID, "number", m.state.Run, "seed", m.config.Seed)
}

func (m Model) logEvents(events []core.Event) {
	for _, ev := range events {
		kv := append([]any{"run", m.runID, "tick", ev.Tick}, ev.Attrs...)
		switch ev.Name {
		case "game over", "restart":
			m.logger.Info(ev.Name, kv...)
		default:
			m.logger.Debug(ev.Name, kv...)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// Err returns the simulation error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
