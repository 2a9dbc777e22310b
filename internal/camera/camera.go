// Package camera implements the third-person follow camera: it sits at a
// fixed offset from the player and always looks at it.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/coinfall/internal/config"
)

// WorldUp is the world's up axis.
var WorldUp = mgl64.Vec3{0, 1, 0}

// Camera is a look-at camera following a target point.
type Camera struct {
	Offset   mgl64.Vec3
	Position mgl64.Vec3
	Front    mgl64.Vec3 // Unit view direction
	Up       mgl64.Vec3
	FOV      float64 // Vertical field of view, degrees
	Near     float64
	Far      float64
}

// New creates a camera from config, positioned at its offset from the origin
// and looking down -Z until the first Follow.
func New(cfg config.CameraConfig) *Camera {
	return &Camera{
		Offset:   cfg.Offset.Vec3(),
		Position: cfg.Offset.Vec3(),
		Front:    mgl64.Vec3{0, 0, -1},
		Up:       WorldUp,
		FOV:      cfg.FOV,
		Near:     cfg.Near,
		Far:      cfg.Far,
	}
}

// Follow moves the camera to target+Offset and aims it at target.
// A zero offset keeps the previous view direction.
func (c *Camera) Follow(target mgl64.Vec3) {
	c.Position = target.Add(c.Offset)
	if dir := target.Sub(c.Position); dir.Len() > 1e-9 {
		c.Front = dir.Normalize()
	}
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// GroundAxes returns the camera's forward and right directions projected
// onto the horizontal plane, both unit length.
func (c *Camera) GroundAxes() (forward, right mgl64.Vec3) {
	forward = mgl64.Vec3{c.Front.X(), 0, c.Front.Z()}
	if forward.Len() < 1e-9 {
		// Looking straight up or down: fall back to -Z.
		forward = mgl64.Vec3{0, 0, -1}
	}
	forward = forward.Normalize()
	right = forward.Cross(c.Up).Normalize()
	return forward, right
}

// Viewport maps world points to a 2D surface of the given size.
// CellAspect is the height/width ratio of one surface unit: 1 for pixels,
// about 2 for terminal character cells.
type Viewport struct {
	Width, Height float64
	CellAspect    float64
	viewProj      mgl64.Mat4
}

// Viewport prepares a projector for the camera's current pose.
func (c *Camera) Viewport(width, height, cellAspect float64) Viewport {
	if cellAspect <= 0 {
		cellAspect = 1
	}
	aspect := 1.0
	if height > 0 {
		aspect = width / (height * cellAspect)
	}
	return Viewport{
		Width:      width,
		Height:     height,
		CellAspect: cellAspect,
		viewProj:   c.Projection(aspect).Mul4(c.View()),
	}
}

// Project maps a world point to surface coordinates (origin top-left).
// Depth is the normalized device depth in [-1, 1]. ok is false for points
// behind the camera or outside the near/far planes.
func (v Viewport) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := v.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 1e-9 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 || math.IsNaN(ndc.X()) {
		return 0, 0, 0, false
	}
	x = (ndc.X() + 1) / 2 * v.Width
	y = (1 - ndc.Y()) / 2 * v.Height
	return x, y, ndc.Z(), true
}

// InFrame reports whether surface coordinates fall inside the viewport.
func (v Viewport) InFrame(x, y float64) bool {
	return x >= 0 && x < v.Width && y >= 0 && y < v.Height
}
