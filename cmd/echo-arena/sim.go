package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/echo-arena/internal/config"
	"github.com/vovakirdan/echo-arena/internal/core"
	"github.com/vovakirdan/echo-arena/internal/games/echo"
)

var (
	flagTicks     int
	flagTurnEvery int
	flagRestart   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal, driven by a seeded random walk.

The same seed, config and flags always produce the same final hash, which
makes this useful for checking determinism across builds.

Examples:
  echo-arena sim --seed 42
  echo-arena sim --seed 42 --ticks 10000 --restart
  echo-arena sim --seed 7 --log-level debug`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3000, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagTurnEvery, "turn-every", 20, "Ticks between heading changes of the walker")
	simCmd.Flags().BoolVar(&flagRestart, "restart", false, "Restart automatically after game over")
}

// simResult summarizes a headless session.
type simResult struct {
	Ticks    int
	Runs     int
	Best     int
	Final    echo.Snapshot
	Hash     uint64
	GameOver bool
}

var walkDirections = [...]core.Action{
	core.ActionNone, core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
}

// simulate drives a game for ticks steps. The walker picks a new heading
// every turnEvery ticks from its own RNG seeded with seed.
func simulate(cfg config.EchoConfig, rt core.RuntimeConfig, ticks, turnEvery int, restart bool, logger *log.Logger) (simResult, error) {
	game := echo.New(cfg)
	game.Reset(rt)
	walker := rand.New(rand.NewSource(rt.Seed))
	turnEvery = max(turnEvery, 1)

	res := simResult{Runs: 1}
	heading := core.ActionNone
	for i := 0; i < ticks; i++ {
		if i%turnEvery == 0 {
			heading = walkDirections[walker.Intn(len(walkDirections))]
		}

		frame := core.FrameOf(heading)
		if restart && game.State().GameOver {
			frame = core.FrameOf(core.ActionRestart)
		}

		result := game.Step(frame)
		res.Ticks++
		for _, ev := range result.Events {
			logger.Debug(ev.Name, append([]any{"tick", ev.Tick}, ev.Attrs...)...)
		}
		if result.Err != nil {
			return res, fmt.Errorf("tick %d: %w", i, result.Err)
		}
		res.Runs = result.State.Run
		res.Best = result.State.Best
	}

	res.Final = game.Snapshot()
	res.Hash = res.Final.Hash()
	res.GameOver = game.State().GameOver
	return res, nil
}

func runSim(_ *cobra.Command, _ []string) {
	gameCfg := mustLoadConfig()

	logger, err := newLogger(os.Stderr, "echo-arena-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     seed,
	}

	logger.Info("simulation started", "seed", seed, "ticks", flagTicks, "fps", flagFPS)
	res, err := simulate(gameCfg, rt, flagTicks, flagTurnEvery, flagRestart, logger)
	if err != nil {
		logger.Error("simulation failed", "err", err)
		os.Exit(1)
	}

	fmt.Printf("seed:     %d\n", seed)
	fmt.Printf("ticks:    %d\n", res.Ticks)
	fmt.Printf("runs:     %d\n", res.Runs)
	fmt.Printf("best:     %d\n", res.Best)
	fmt.Printf("score:    %d (run tick %d, phase %s)\n", res.Final.Score, res.Final.Tick, res.Final.Phase)
	fmt.Printf("echoes:   %d\n", len(res.Final.Echoes))
	fmt.Printf("hash:     %016x\n", res.Hash)
}
