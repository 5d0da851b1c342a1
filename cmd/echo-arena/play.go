package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/echo-arena/internal/core"
	"github.com/vovakirdan/echo-arena/internal/games/echo"
	"github.com/vovakirdan/echo-arena/internal/platform/cell"
	"github.com/vovakirdan/echo-arena/internal/platform/tui"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game session in this terminal.

Controls:
  Arrows/WASD/HJKL  - Set heading (you keep moving)
  Space/X           - Stop
  P                 - Pause
  R                 - Restart (after game over)
  Q/Esc/Ctrl+C      - Quit

Frontends:
  tui    - Bubble Tea renderer (default)
  tcell  - Direct tcell renderer

Examples:
  echo-arena play
  echo-arena play --difficulty easy
  echo-arena play --frontend tcell --fps 30
  echo-arena play --config ./my-arena.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend: tui or tcell")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagFrontend != "tui" && flagFrontend != "tcell" {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q (want tui or tcell)\n", flagFrontend)
		os.Exit(1)
	}

	gameCfg := mustLoadConfig()

	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(logFile, "echo-arena")
	if err != nil {
		logFile.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := echo.New(gameCfg)
	var runErr error
	if flagFrontend == "tcell" {
		runErr = cell.Run(game, cfg, logger)
	} else {
		runErr = tui.Run(game, cfg, logger)
	}

	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
