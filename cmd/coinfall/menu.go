package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/platform/tui"
	"github.com/vovakirdan/coinfall/internal/registry"
)

var flagDifficultyMenu string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start coinfall with a mode picker menu",
	Long: `Start coinfall in interactive menu mode.

Pick a mode, then a difficulty. Leaving a round with Esc returns to the
menu; Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Esc          - Back
  Q            - Quit

Examples:
  coinfall menu
  coinfall menu --fps 30
  coinfall menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficultyMenu, "difficulty", "", "Difficulty preselected in the picker")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer := fileLogger("coinfall")
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	coins, err := loadCoins()
	if err != nil {
		return err
	}
	difficulty := config.DifficultyNormal
	if flagDifficultyMenu != "" {
		preset, err := config.ParsePreset(flagDifficultyMenu)
		if err != nil {
			return err
		}
		difficulty = preset
	}
	cfg := runtimeConfig(0)

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return err
		}
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		title := menuResult.GameID
		for _, info := range registry.List() {
			if info.ID == menuResult.GameID {
				title = info.Title
			}
		}
		preset, quit, err := tui.RunDifficultySelector(title, difficulty, cfg)
		if err != nil {
			logger.Error("difficulty picker failed", "error", err)
			return err
		}
		if quit {
			return nil
		}
		if preset == nil {
			continue
		}
		difficulty = *preset

		g, err := createGame(menuResult.GameID, registry.Options{Coins: coins, Difficulty: difficulty})
		if err != nil {
			logger.Error("could not create game", "mode", menuResult.GameID, "error", err)
			continue
		}

		cfg.Seed = resolveSeed()
		res, err := tui.Run(g, cfg, tui.Options{
			Store:        store,
			Logger:       logger,
			MaxFrameStep: g.Config().World.MaxFrameStep,
		})
		if err != nil {
			logger.Error("terminal UI failed", "error", err)
			return err
		}
		if !res.BackToMenu {
			return nil
		}
	}
}
