// Package gameplay holds the per-frame rules of the coin field: spawning,
// falling, capture by proximity and scoring. It owns no clock and draws
// nothing; front-ends call State.Update once per frame with the elapsed time
// and the held inputs.
package gameplay

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/coinfall/internal/camera"
	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/core"
)

// FrameContext is the input to one update.
type FrameContext struct {
	DT    float64 // Seconds since the previous frame
	Input core.InputFrame
}

// FrameResult reports what happened during one update.
type FrameResult struct {
	Skipped  bool // Paused, nothing advanced
	Paused   bool // Pause was switched on this frame
	Resumed  bool // Pause was switched off this frame
	Spawned  bool
	Captured int
	Missed   int
	Score    int // Score after the update
}

// State is the whole mutable game world. The zero value is not usable;
// construct with NewState.
type State struct {
	cfg     config.CoinsConfig
	player  mgl64.Vec3
	cam     *camera.Camera
	field   *CoinField
	spawner *Spawner
	pause   EdgeDetector
	paused  bool

	score    int
	spawned  int
	captured int
	missed   int
	elapsed  float64
	frame    uint64
	nextID   uint64
}

// NewState creates a fresh world from config drawing spawn randomness from src.
func NewState(cfg config.CoinsConfig, src Source) *State {
	s := &State{
		cfg:     cfg,
		cam:     camera.New(cfg.Camera),
		field:   NewCoinField(cfg.Coin.CompactThreshold),
		spawner: NewSpawner(cfg, src),
	}
	s.Reset(src)
	return s
}

// Reset returns the world to its initial state with a new random source.
func (s *State) Reset(src Source) {
	s.player = s.cfg.Player.Start.Vec3()
	s.cam.Follow(s.player)
	s.field.Reset()
	s.spawner.Reset(src)
	s.pause = EdgeDetector{}
	s.paused = false
	s.score = 0
	s.spawned = 0
	s.captured = 0
	s.missed = 0
	s.elapsed = 0
	s.frame = 0
	s.nextID = 0
}

// Update advances the world by one frame.
//
// Order: pause edge, then (unless paused) player movement, camera follow,
// spawn timer, coin motion with floor and capture checks, compaction.
func (s *State) Update(ctx FrameContext) FrameResult {
	var res FrameResult
	s.frame++

	if s.pause.Observe(ctx.Input.Has(core.ActionPause)) {
		s.paused = !s.paused
		res.Paused = s.paused
		res.Resumed = !s.paused
	}
	if s.paused {
		res.Skipped = true
		res.Score = s.score
		return res
	}

	dt := ctx.DT
	forward, right := s.cam.GroundAxes()
	s.player = s.player.Add(Displacement(ctx.Input, forward, right, s.cfg.Player.Speed, dt))
	s.cam.Follow(s.player)
	s.elapsed += dt

	if c, ok := s.spawner.Advance(dt); ok {
		s.nextID++
		c.ID = s.nextID
		s.field.Add(c)
		s.spawned++
		res.Spawned = true
	}

	floor := s.cfg.Coin.FloorY
	radius := s.cfg.Coin.CaptureRadius
	coins := s.field.Coins()
	for i := range coins {
		c := &coins[i]
		if c.Collected {
			continue
		}
		c.Position[1] -= c.Speed * dt
		if c.Position.Y() < floor {
			s.field.markCollected(i, OutcomeMissed)
			s.missed++
			res.Missed++
		} else if c.Position.Sub(s.player).Len() < radius {
			s.field.markCollected(i, OutcomeCaptured)
			s.captured++
			s.score++
			res.Captured++
		}
	}
	s.field.maybeCompact()

	res.Score = s.score
	return res
}

// Paused reports whether updates are currently suspended.
func (s *State) Paused() bool { return s.paused }

// SetPaused forces the pause flag, for front-ends that pause on focus loss.
func (s *State) SetPaused(p bool) { s.paused = p }

// Score returns the number of captured coins.
func (s *State) Score() int { return s.score }

// Spawned returns the total number of coins ever spawned.
func (s *State) Spawned() int { return s.spawned }

// Captured returns the number of coins reached by the player.
func (s *State) Captured() int { return s.captured }

// Missed returns the number of coins that fell past the floor.
func (s *State) Missed() int { return s.missed }

// Elapsed returns unpaused play time in seconds.
func (s *State) Elapsed() float64 { return s.elapsed }

// Frame returns the number of updates performed, paused ones included.
func (s *State) Frame() uint64 { return s.frame }

// Player returns the player position.
func (s *State) Player() mgl64.Vec3 { return s.player }

// SetPlayer teleports the player and re-aims the camera.
func (s *State) SetPlayer(p mgl64.Vec3) {
	s.player = p
	s.cam.Follow(p)
}

// Camera returns the follow camera. Callers may read it but should not move it.
func (s *State) Camera() *camera.Camera { return s.cam }

// Coins returns the stored coins including collected ones pending compaction.
func (s *State) Coins() []Coin { return s.field.Coins() }

// Field exposes the coin storage.
func (s *State) Field() *CoinField { return s.field }

// Spawner exposes the spawner.
func (s *State) Spawner() *Spawner { return s.spawner }

// AddCoin inserts a coin directly, bypassing the spawner. It is counted as
// spawned and given the next ID when c.ID is zero.
func (s *State) AddCoin(c Coin) Coin {
	if c.ID == 0 {
		s.nextID++
		c.ID = s.nextID
	} else if c.ID > s.nextID {
		s.nextID = c.ID
	}
	s.field.Add(c)
	s.spawned++
	return c
}

// Config returns the configuration the state was built with.
func (s *State) Config() config.CoinsConfig { return s.cfg }

// ScoreFraction returns the HUD bar fill for the current score.
func (s *State) ScoreFraction() float64 {
	return ScoreFraction(s.score, s.cfg.HUD.MaxScore)
}
