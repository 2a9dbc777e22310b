package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/coinfall/internal/config"
)

const eps = 1e-9

func vecNear(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, eps)
}

func TestFollowKeepsOffsetAndAimsAtTarget(t *testing.T) {
	c := New(config.DefaultCoinsConfig().Camera)
	target := mgl64.Vec3{3, 0, -4}
	c.Follow(target)

	if !vecNear(c.Position, mgl64.Vec3{3, 2, 2}) {
		t.Errorf("Position = %v, expected target+offset", c.Position)
	}
	want := mgl64.Vec3{0, -2, -6}.Normalize()
	if !vecNear(c.Front, want) {
		t.Errorf("Front = %v, expected %v", c.Front, want)
	}
	if math.Abs(c.Front.Len()-1) > eps {
		t.Errorf("Front should be unit length, got %v", c.Front.Len())
	}
}

func TestFollowZeroOffsetKeepsFront(t *testing.T) {
	cfg := config.DefaultCoinsConfig().Camera
	cfg.Offset = config.PositionConfig{}
	c := New(cfg)
	c.Follow(mgl64.Vec3{1, 1, 1})

	if !vecNear(c.Front, mgl64.Vec3{0, 0, -1}) {
		t.Errorf("zero offset should keep the initial front, got %v", c.Front)
	}
}

func TestGroundAxes(t *testing.T) {
	c := New(config.DefaultCoinsConfig().Camera)
	c.Follow(mgl64.Vec3{})

	forward, right := c.GroundAxes()
	if !vecNear(forward, mgl64.Vec3{0, 0, -1}) {
		t.Errorf("forward = %v, expected -Z", forward)
	}
	if !vecNear(right, mgl64.Vec3{1, 0, 0}) {
		t.Errorf("right = %v, expected +X", right)
	}

	// Looking straight down still yields usable axes
	c.Front = mgl64.Vec3{0, -1, 0}
	forward, right = c.GroundAxes()
	if !vecNear(forward, mgl64.Vec3{0, 0, -1}) || !vecNear(right, mgl64.Vec3{1, 0, 0}) {
		t.Errorf("degenerate front gave forward=%v right=%v", forward, right)
	}
}

func TestViewportProject(t *testing.T) {
	c := New(config.DefaultCoinsConfig().Camera)
	c.Follow(mgl64.Vec3{})
	vp := c.Viewport(80, 24, 2)

	// The followed target sits at the center of the view
	x, y, _, ok := vp.Project(mgl64.Vec3{})
	if !ok {
		t.Fatal("target should be visible")
	}
	if math.Abs(x-40) > 1e-6 || math.Abs(y-12) > 1e-6 {
		t.Errorf("target projected to (%v, %v), expected center", x, y)
	}

	// Points to the right land right of center, higher points land above it
	xr, _, _, ok := vp.Project(mgl64.Vec3{1, 0, 0})
	if !ok || xr <= x {
		t.Errorf("+X point should project right of center, got %v", xr)
	}
	_, yu, _, ok := vp.Project(mgl64.Vec3{0, 1, 0})
	if !ok || yu >= y {
		t.Errorf("+Y point should project above center, got %v", yu)
	}

	// Behind the camera is rejected
	if _, _, _, ok := vp.Project(mgl64.Vec3{0, 2, 20}); ok {
		t.Error("point behind the camera should not project")
	}

	if !vp.InFrame(x, y) || vp.InFrame(-1, 0) || vp.InFrame(0, 24) {
		t.Error("InFrame bounds are wrong")
	}
}
