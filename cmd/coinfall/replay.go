package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coinfall/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify a recorded round",
	Long: `Re-simulate a recording made with --record and check every frame
against its recorded digest. Exits non-zero on the first divergence.

Examples:
  coinfall replay ./round.cfr`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	res, err := replay.Verify(args[0])
	switch {
	case errors.Is(err, replay.ErrDigestMismatch):
		return &exitError{code: 2, err: fmt.Errorf("replay diverged after %d good frames: %w", res.Frames, err)}
	case err != nil:
		return err
	}

	h := res.Header
	fmt.Printf("Recording: %s\n", args[0])
	fmt.Printf("Mode:      %s (%s)\n", h.Mode, h.Difficulty)
	fmt.Printf("Recorded:  %s\n", h.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Seed:      %d\n", h.Seed)
	fmt.Printf("Frames:    %d verified (%.2fs)\n", res.Frames, res.Elapsed)
	fmt.Printf("Score:     %d\n", res.Score)
	fmt.Printf("Spawned:   %d\n", res.Spawned)
	fmt.Printf("Missed:    %d\n", res.Missed)
	fmt.Printf("Digest:    %s\n", res.Digest)
	return nil
}
