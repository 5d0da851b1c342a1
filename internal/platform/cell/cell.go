// Package cell runs the game directly on a tcell screen, without Bubble Tea.
package cell

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/vovakirdan/echo-arena/internal/core"
)

// Game is what the runner drives. *echo.Game satisfies it.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Step(input core.InputFrame) core.StepResult
	Render(screen *core.Screen)
	State() core.GameState
}

// Runner owns the tcell screen and the tick loop.
type Runner struct {
	screen  tcell.Screen
	game    Game
	buf     *core.Screen
	config  core.RuntimeConfig
	logger  *log.Logger
	heading core.Heading
	pending core.InputFrame
	state   core.GameState
	runID   string
	paused  bool
}

// Run initializes the terminal and plays until the user quits or the
// simulation reports an error.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	r := NewRunner(screen, game, cfg, logger)
	return r.Loop()
}

// NewRunner prepares a runner on an initialized screen.
func NewRunner(screen tcell.Screen, game Game, cfg core.RuntimeConfig, logger *log.Logger) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	w, h := screen.Size()
	cfg.ScreenW, cfg.ScreenH = w, h
	game.Reset(cfg)

	r := &Runner{
		screen:  screen,
		game:    game,
		buf:     core.NewScreen(w, h),
		config:  cfg,
		logger:  logger,
		pending: core.NewInputFrame(),
		state:   game.State(),
	}
	r.beginRun()
	return r
}

// Loop polls events on a goroutine and steps the game on a ticker.
func (r *Runner) Loop() error {
	ticker := time.NewTicker(time.Second / time.Duration(r.config.TickRate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	r.draw()
	for {
		select {
		case ev := <-events:
			if !r.handleEvent(ev) {
				r.logger.Info("quit", "run", r.runID, "score", r.state.Score, "best", r.state.Best)
				return nil
			}

		case <-ticker.C:
			if err := r.Tick(); err != nil {
				r.logger.Error("simulation stopped", "run", r.runID, "err", err)
				return err
			}
			r.draw()
		}
	}
}

// handleEvent applies one terminal event. It returns false on quit.
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isStop(ev) {
			r.heading.Stop()
			return true
		}
		switch action := keyAction(ev); action {
		case core.ActionQuit:
			return false
		case core.ActionPause:
			if !r.state.GameOver {
				r.paused = !r.paused
			}
		case core.ActionRestart:
			r.pending.Set(core.ActionRestart)
		case core.ActionNone:
		default:
			if !r.paused {
				r.heading.Press(action)
			}
		}

	case *tcell.EventResize:
		w, h := r.screen.Size()
		r.config.ScreenW, r.config.ScreenH = w, h
		r.buf.Resize(w, h)
		r.screen.Sync()
	}
	return true
}

// Tick steps the game once with the latched heading and pending actions.
func (r *Runner) Tick() error {
	if r.paused {
		return nil
	}

	frame := r.pending.Clone()
	if dir := r.heading.Current(); dir != core.ActionNone {
		frame.Set(dir)
	}
	r.pending.Clear()

	prevRun := r.state.Run
	result := r.game.Step(frame)
	r.state = result.State
	if r.state.Run != prevRun {
		r.heading.Stop()
		r.beginRun()
	}

	for _, ev := range result.Events {
		kv := append([]any{"run", r.runID, "tick", ev.Tick}, ev.Attrs...)
		switch ev.Name {
		case "game over", "restart":
			r.logger.Info(ev.Name, kv...)
		default:
			r.logger.Debug(ev.Name, kv...)
		}
	}
	return result.Err
}

func (r *Runner) beginRun() {
	r.runID = uuid.NewString()
	r.logger.Info("run started", "game", r.game.ID(), "run", r.runID, "number", r.state.Run, "seed", r.config.Seed)
}

func (r *Runner) draw() {
	r.game.Render(r.buf)
	if r.paused {
		r.buf.DrawTextCentered(r.buf.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}
	Blit(r.screen, r.buf)
	r.screen.Show()
}

// Blit copies a core.Screen onto a tcell screen.
func Blit(dst tcell.Screen, src *core.Screen) {
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			c := src.GetCell(x, y)
			dst.SetContent(x, y, c.Rune, nil, styleOf(c.Color))
		}
	}
}

func styleOf(c core.Color) tcell.Style {
	code := c.ANSI()
	if code < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
}

func isStop(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && (ev.Rune() == ' ' || ev.Rune() == 'x')
}

func keyAction(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case 'r', 'R':
			return core.ActionRestart
		case 'p', 'P':
			return core.ActionPause
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
