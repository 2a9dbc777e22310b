// coinfall is a 3D coin catching game for the terminal.
//
// Usage:
//
//	coinfall play [mode]     - Play a round (terminal, or --window)
//	coinfall menu            - Pick a mode and difficulty interactively
//	coinfall list            - List available modes
//	coinfall serve           - Start SSH server for remote play
//	coinfall scores [mode]   - Show high scores
//	coinfall sim             - Run a headless round with the autopilot
//	coinfall replay <file>   - Verify a recorded round
//	coinfall watch <addr>    - Watch a round published with --spectate
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.coinfall/scores.db)
//	--config <path>       - Custom coins.yaml
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log file used while the terminal UI is up
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "coinfall",
	Short: "Coinfall - catch falling coins in a 3D field",
	Long: `Coinfall drops coins from the sky onto a 3D field. Walk under them
and catch them before they fall through the floor.

Available commands:
  play     - Play a round in the terminal or a window
  menu     - Interactive mode and difficulty picker
  list     - Show all available modes
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Headless autopilot run
  replay   - Verify a recording
  watch    - Spectate a live round

Examples:
  coinfall play
  coinfall play coins_rush --difficulty hard
  coinfall play --window --sound
  coinfall menu
  coinfall serve --ssh :2222
  coinfall scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.coinfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom coins.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file while the terminal UI runs (default ~/.coinfall/coinfall.log)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(watchCmd)
}
