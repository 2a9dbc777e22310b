// Package game adapts the coin field rules to the platform's Game interface:
// it owns the seeded world, the optional timed round and the character-cell
// rendering of the 3D scene.
package game

import (
	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/core"
	"github.com/vovakirdan/coinfall/internal/gameplay"
	"github.com/vovakirdan/coinfall/internal/registry"
)

// Mode identifiers.
const (
	IDEndless = "coins"
	IDRush    = "coins_rush"
)

// RushDuration is the round length of the rush mode, in seconds.
const RushDuration = 60.0

// Game is a playable coin field.
type Game struct {
	id       string
	title    string
	opts     registry.Options
	cfg      config.CoinsConfig // After the difficulty preset
	duration float64            // Round length, 0 = endless

	state    *gameplay.State
	rc       core.RuntimeConfig
	gameOver bool
}

func init() {
	registry.Register(IDEndless, func(opts registry.Options) registry.Game {
		return New(opts)
	})
	registry.Register(IDRush, func(opts registry.Options) registry.Game {
		return NewRush(opts)
	})
}

// New creates the standard mode. Its round length comes from
// session.duration; the default of 0 plays until the player quits.
func New(opts registry.Options) *Game {
	return newGame(IDEndless, "Coin Field", opts, opts.Coins.Session.Duration)
}

// NewRush creates the one-minute timed mode.
func NewRush(opts registry.Options) *Game {
	return newGame(IDRush, "Coin Rush (60s)", opts, RushDuration)
}

func newGame(id, title string, opts registry.Options, duration float64) *Game {
	cfg := opts.Coins
	config.ApplyPreset(&cfg, opts.Difficulty)
	if duration < 0 {
		duration = 0
	}
	return &Game{
		id:       id,
		title:    title,
		opts:     opts,
		cfg:      cfg,
		duration: duration,
	}
}

// ID returns the mode identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Reset starts a new round seeded with cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rc = cfg
	g.gameOver = false
	src := gameplay.NewSource(cfg.Seed)
	if g.state == nil {
		g.state = gameplay.NewState(g.cfg, src)
		return
	}
	g.state.Reset(src)
}

// Step advances the round by dt seconds. Once a timed round is over the
// world is frozen until Reset.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.state == nil {
		g.Reset(g.rc)
	}
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	res := g.state.Update(gameplay.FrameContext{DT: dt, Input: in})
	if g.duration > 0 && g.state.Elapsed() >= g.duration {
		g.gameOver = true
	}

	return core.StepResult{
		State:    g.State(),
		Advanced: true,
		Captured: res.Captured,
		Missed:   res.Missed,
		Toggled:  res.Paused || res.Resumed,
	}
}

// State returns the current counters.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score(),
		Spawned:  g.state.Spawned(),
		Missed:   g.state.Missed(),
		Elapsed:  g.state.Elapsed(),
		GameOver: g.gameOver,
		Paused:   g.state.Paused(),
	}
}

// Remaining returns seconds left in a timed round, or -1 when endless.
func (g *Game) Remaining() float64 {
	if g.duration <= 0 {
		return -1
	}
	if g.state == nil {
		return g.duration
	}
	return max(0, g.duration-g.state.Elapsed())
}

// Snapshot returns an immutable view of the world for renderers and
// spectators.
func (g *Game) Snapshot() gameplay.Snapshot {
	if g.state == nil {
		return gameplay.Snapshot{}
	}
	return g.state.Snapshot()
}

// Digest returns the world digest used by replays.
func (g *Game) Digest() string {
	if g.state == nil {
		return ""
	}
	return g.state.Digest()
}

// World exposes the underlying rules state.
func (g *Game) World() *gameplay.State { return g.state }

// Config returns the tuning in effect, difficulty applied.
func (g *Game) Config() config.CoinsConfig { return g.cfg }

// Difficulty returns the preset the game was created with.
func (g *Game) Difficulty() config.DifficultyPreset { return g.opts.Difficulty }

// Duration returns the round length in seconds, 0 when endless.
func (g *Game) Duration() float64 { return g.duration }

// Seed returns the seed of the current round.
func (g *Game) Seed() int64 { return g.rc.Seed }

// ScoreFraction returns the HUD fill level in [0, 1].
func (g *Game) ScoreFraction() float64 {
	if g.state == nil {
		return 0
	}
	return g.state.ScoreFraction()
}
