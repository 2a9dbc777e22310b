package gameplay

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/coinfall/internal/core"
)

// Displacement converts held movement actions into a world-space step.
// forward and right are the camera's ground axes; opposing keys cancel.
// There is no acceleration and no clamp to the ground.
func Displacement(in core.InputFrame, forward, right mgl64.Vec3, speed, dt float64) mgl64.Vec3 {
	var d mgl64.Vec3
	step := speed * dt
	if in.Has(core.ActionForward) {
		d = d.Add(forward.Mul(step))
	}
	if in.Has(core.ActionBack) {
		d = d.Sub(forward.Mul(step))
	}
	if in.Has(core.ActionLeft) {
		d = d.Sub(right.Mul(step))
	}
	if in.Has(core.ActionRight) {
		d = d.Add(right.Mul(step))
	}
	return d
}
