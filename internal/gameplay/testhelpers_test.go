package gameplay

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/core"
)

// seqSource replays a fixed list of samples, cycling when exhausted.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// quietConfig returns defaults with the spawner effectively disabled so tests
// can place coins by hand.
func quietConfig() config.CoinsConfig {
	cfg := config.DefaultCoinsConfig()
	cfg.Spawn.Interval = 1e9
	return cfg
}

func idle(dt float64) FrameContext {
	return FrameContext{DT: dt, Input: core.NewInputFrame()}
}

func holding(dt float64, actions ...core.Action) FrameContext {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return FrameContext{DT: dt, Input: in}
}

func coinAt(x, y, z, speed float64) Coin {
	return Coin{Position: mgl64.Vec3{x, y, z}, Speed: speed}
}
