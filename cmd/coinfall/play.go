package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/game"
	"github.com/vovakirdan/coinfall/internal/platform/tui"
	"github.com/vovakirdan/coinfall/internal/platform/window"
	"github.com/vovakirdan/coinfall/internal/registry"
)

var (
	flagDifficulty  string
	flagTime        float64
	flagRecord      string
	flagSpectate    string
	flagAllowRemote bool
	flagSound       bool
	flagVolume      float64
	flagWindow      bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a round",
	Long: `Start a round of the given mode (default: coins).

Coins spawn every 0.3 seconds above the field and fall. Walk under them:
a coin within 0.8 units of you is caught, a coin below the floor is lost.

Controls:
  W/A/S/D, arrows - Move relative to the camera
  P               - Pause / resume
  R               - Restart (after time is up)
  Esc/B           - Back to menu
  Q/Ctrl+C        - Quit
  Ctrl+S          - Save a text screenshot

Difficulty options:
  easy   - Slower coins, wider catch
  normal - Config as loaded
  hard   - Faster coins, tighter catch
  fixed  - Config as loaded, no adjustments

Examples:
  coinfall play
  coinfall play coins_rush --difficulty hard
  coinfall play --time 120 --record ./round.cfr
  coinfall play --spectate 127.0.0.1:8787
  coinfall play --window --sound`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addRoundFlags(playCmd)
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a chime on every catch")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Chime volume, 0 to 1")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

// addRoundFlags registers the flags shared by play and sim.
func addRoundFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().Float64Var(&flagTime, "time", 0, "Round length in seconds (0 = endless); overrides session.duration")
	cmd.Flags().StringVar(&flagRecord, "record", "", "Record the round to this file")
	cmd.Flags().StringVar(&flagSpectate, "spectate", "", "Publish the round to watchers on this address")
	cmd.Flags().BoolVar(&flagAllowRemote, "allow-remote", false, "Let non-loopback watchers connect")
}

// roundOptions resolves the tuning and difficulty from flags.
func roundOptions(cmd *cobra.Command) (registry.Options, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return registry.Options{}, err
	}
	coins, err := loadCoins()
	if err != nil {
		return registry.Options{}, err
	}
	if cmd.Flags().Changed("time") {
		coins.Session.Duration = flagTime
	}
	return registry.Options{Coins: coins, Difficulty: preset}, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := modeArg(args)
	if err := checkMode(gameID); err != nil {
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
	seed := resolveSeed()

	if flagWindow {
		return playWindow(g, seed)
	}

	logger, closer := fileLogger("coinfall")
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ex := startExtras(g, seed, extrasOptions{
		RecordPath:   flagRecord,
		SpectateAddr: flagSpectate,
		AllowRemote:  flagAllowRemote,
		Sound:        flagSound,
		Volume:       flagVolume,
	}, logger)
	defer ex.Close()

	if _, err := tui.Run(g, runtimeConfig(seed), tui.Options{
		Store:        store,
		Logger:       logger,
		MaxFrameStep: g.Config().World.MaxFrameStep,
		OnFrame:      ex.onFrame,
		OnRoundEnd:   ex.endRound,
	}); err != nil {
		logger.Error("terminal UI failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func playWindow(g *game.Game, seed int64) error {
	logger, err := stderrLogger("coinfall")
	if err != nil {
		return err
	}
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ex := startExtras(g, seed, extrasOptions{
		RecordPath:   flagRecord,
		SpectateAddr: flagSpectate,
		AllowRemote:  flagAllowRemote,
		Sound:        flagSound,
		Volume:       flagVolume,
		Store:        store,
	}, logger)
	defer ex.Close()

	if err := window.Run(window.Options{
		Game:         g,
		Seed:         seed,
		TickRate:     flagFPS,
		MaxFrameStep: g.Config().World.MaxFrameStep,
		OnFrame:      ex.onFrame,
		OnRestart:    ex.endRound,
	}); err != nil {
		logger.Error("window failed", "error", err)
		return err
	}
	return nil
}
