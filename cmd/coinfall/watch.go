package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coinfall/internal/platform/tui"
	"github.com/vovakirdan/coinfall/internal/spectate"
)

var watchCmd = &cobra.Command{
	Use:   "watch <addr>",
	Short: "Watch a round published with --spectate",
	Long: `Connect to a round started with 'play --spectate' or
'sim --spectate' and render it in the terminal. Press Q to leave.

Examples:
  coinfall watch 127.0.0.1:8787
  coinfall watch ws://example.org:8787`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(_ *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := spectate.Dial(ctx, args[0])
	cancel()
	if err != nil {
		return err
	}
	defer client.Close()

	w, h := terminalSize()
	return tui.RunWatch(client, w, h)
}
