package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coinfall/internal/core"
	"github.com/vovakirdan/coinfall/internal/gameplay"
)

var (
	flagSimSeconds  float64
	flagSimRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Run a headless round with the autopilot",
	Long: `Simulate a round without a screen. The autopilot walks toward the
nearest falling coin using the same four direction keys a player has.
Frames use a fixed step of 1/fps seconds, so a run is reproducible from
its seed.

Examples:
  coinfall sim --seconds 60 --seed 42
  coinfall sim --seed 42 --record ./auto.cfr
  coinfall sim --spectate 127.0.0.1:8787 --realtime`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	addRoundFlags(simCmd)
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 30, "Simulated play time")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace frames at wall clock speed (for watchers)")
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := modeArg(args)
	if err := checkMode(gameID); err != nil {
		return err
	}
	logger, err := stderrLogger("coinfall-sim")
	if err != nil {
		return err
	}
	opts, err := roundOptions(cmd)
	if err != nil {
		return err
	}
	g, err := createGame(gameID, opts)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	seed := resolveSeed()
	g.Reset(core.RuntimeConfig{TickRate: fps, Seed: seed})

	ex := startExtras(g, seed, extrasOptions{
		RecordPath:   flagRecord,
		SpectateAddr: flagSpectate,
		AllowRemote:  flagAllowRemote,
	}, logger)

	pilot := gameplay.NewAutopilot(g.Config().Coin.CaptureRadius)
	dt := 1 / float64(fps)
	frames := 0
	start := time.Now()
	for g.State().Elapsed < flagSimSeconds && !g.State().GameOver {
		in := pilot.Input(g.World())
		res := g.Step(in, dt)
		ex.onFrame(res, in, dt)
		frames++
		if flagSimRealtime {
			time.Sleep(time.Duration(dt * float64(time.Second)))
		}
	}
	ex.Close()

	st := g.State()
	logger.Debug("simulation finished", "frames", frames, "wall", time.Since(start))

	accuracy := 0.0
	if resolved := st.Score + st.Missed; resolved > 0 {
		accuracy = float64(st.Score) / float64(resolved) * 100
	}
	fmt.Printf("Mode:      %s (%s)\n", g.Title(), g.Difficulty())
	fmt.Printf("Seed:      %d\n", seed)
	fmt.Printf("Frames:    %d (%.2fs)\n", frames, st.Elapsed)
	fmt.Printf("Score:     %d\n", st.Score)
	fmt.Printf("Spawned:   %d\n", st.Spawned)
	fmt.Printf("Missed:    %d\n", st.Missed)
	fmt.Printf("Accuracy:  %.0f%%\n", accuracy)
	fmt.Printf("Digest:    %s\n", g.Digest())
	return nil
}
