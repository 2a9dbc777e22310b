package gameplay

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/coinfall/internal/core"
)

// Autopilot steers the player toward the live coin closest in the horizontal
// plane. It produces the same four binary inputs a human would, so a
// recorded autopilot run replays like any other.
type Autopilot struct {
	DeadZone float64 // Axis error below which no key is held
}

// NewAutopilot returns an autopilot with a dead zone of a quarter of the
// capture radius.
func NewAutopilot(captureRadius float64) *Autopilot {
	return &Autopilot{DeadZone: captureRadius / 4}
}

// Input chooses the held movement actions for the next frame.
func (a *Autopilot) Input(s *State) core.InputFrame {
	in := core.NewInputFrame()
	target, ok := a.target(s)
	if !ok {
		return in
	}

	forward, right := s.Camera().GroundAxes()
	delta := target.Sub(s.Player())
	delta[1] = 0

	df := delta.Dot(forward)
	dr := delta.Dot(right)
	switch {
	case df > a.DeadZone:
		in.Set(core.ActionForward)
	case df < -a.DeadZone:
		in.Set(core.ActionBack)
	}
	switch {
	case dr > a.DeadZone:
		in.Set(core.ActionRight)
	case dr < -a.DeadZone:
		in.Set(core.ActionLeft)
	}
	return in
}

func (a *Autopilot) target(s *State) (pos mgl64.Vec3, ok bool) {
	p := s.Player()
	best := math.Inf(1)
	for _, c := range s.Coins() {
		if c.Collected {
			continue
		}
		dx := c.Position.X() - p.X()
		dz := c.Position.Z() - p.Z()
		if d := dx*dx + dz*dz; d < best {
			best = d
			pos = c.Position
			ok = true
		}
	}
	return pos, ok
}
