package gameplay

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/coinfall/internal/config"
)

// Spawner emits coins on a fixed cadence.
//
// Elapsed time accumulates into a timer; once it reaches Interval one coin is
// emitted and the timer goes back to exactly zero, dropping any overshoot.
// A single Advance never emits more than one coin, however large dt is.
type Spawner struct {
	Interval    float64
	Center      mgl64.Vec3 // Footprint center; Y unused
	SizeX       float64    // Footprint extent along X
	SizeZ       float64    // Footprint extent along Z
	Height      float64    // Spawn Y
	BaseSpeed   float64
	SpeedJitter float64

	timer float64
	src   Source
}

// NewSpawner builds a spawner from config drawing samples from src.
func NewSpawner(cfg config.CoinsConfig, src Source) *Spawner {
	return &Spawner{
		Interval:    cfg.Spawn.Interval,
		Center:      cfg.Spawn.Center.Vec3(),
		SizeX:       cfg.Spawn.Footprint.X,
		SizeZ:       cfg.Spawn.Footprint.Z,
		Height:      cfg.Spawn.Height,
		BaseSpeed:   cfg.Coin.BaseSpeed,
		SpeedJitter: cfg.Coin.SpeedJitter,
		src:         src,
	}
}

// Advance accumulates dt and returns a new coin when the interval is reached.
// The returned coin has no ID; the caller assigns one.
func (s *Spawner) Advance(dt float64) (Coin, bool) {
	s.timer += dt
	if s.timer < s.Interval {
		return Coin{}, false
	}
	s.timer = 0

	// Sample order (x, z, speed) is part of the replay format.
	x := s.Center.X() + s.src.Float64()*s.SizeX - s.SizeX/2
	z := s.Center.Z() + s.src.Float64()*s.SizeZ - s.SizeZ/2
	speed := s.BaseSpeed + s.src.Float64()*s.SpeedJitter

	return Coin{
		Position: mgl64.Vec3{x, s.Height, z},
		Speed:    speed,
	}, true
}

// Timer returns the time accumulated toward the next spawn.
func (s *Spawner) Timer() float64 {
	return s.timer
}

// Reset zeroes the timer and swaps the random source.
func (s *Spawner) Reset(src Source) {
	s.timer = 0
	s.src = src
}
