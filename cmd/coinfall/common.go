package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/core"
	"github.com/vovakirdan/coinfall/internal/game"
	"github.com/vovakirdan/coinfall/internal/logging"
	"github.com/vovakirdan/coinfall/internal/registry"
	"github.com/vovakirdan/coinfall/internal/storage"
)

// exitError asks main for an exit status other than 1.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// exitCode returns the process exit status for a command error.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// resolveSeed returns --seed, or a time based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func runtimeConfig(seed int64) core.RuntimeConfig {
	w, h := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// loadCoins loads the tuning. A broken custom file is an error.
func loadCoins() (config.CoinsConfig, error) {
	return config.LoadCoins(flagConfig)
}

// stderrLogger logs to stderr for commands that do not own the screen.
func stderrLogger(prefix string) (*log.Logger, error) {
	return logging.New(os.Stderr, logging.Options{Level: flagLogLevel, Prefix: prefix})
}

// fileLogger logs to the log file so a full-screen UI stays clean. If the
// file cannot be opened the logs are dropped.
func fileLogger(prefix string) (*log.Logger, io.Closer) {
	logger, closer, err := logging.NewFile(logging.Options{
		Level:  flagLogLevel,
		Prefix: prefix,
		File:   flagLogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	return logger, closer
}

// openStore opens the scores database. Scores are optional: on failure the
// game runs without them.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// createGame builds a registered mode.
func createGame(id string, opts registry.Options) (*game.Game, error) {
	g, err := registry.Create(id, opts)
	if err != nil {
		return nil, err
	}
	cg, ok := g.(*game.Game)
	if !ok {
		return nil, fmt.Errorf("mode %q is not a coin field", id)
	}
	return cg, nil
}

// modeArg returns the mode named by args, or the endless mode.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return game.IDEndless
}

// checkMode reports an unregistered id with a hint.
func checkMode(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown mode %q (run 'coinfall list' to see available modes)", id)
	}
	return nil
}
