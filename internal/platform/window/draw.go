package window

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/coinfall/internal/camera"
	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/core"
	"github.com/vovakirdan/coinfall/internal/game"
	"github.com/vovakirdan/coinfall/internal/gameplay"
)

var (
	skyTop     = color.RGBA{0x2a, 0x4d, 0x8f, 0xff}
	skyHorizon = color.RGBA{0xa9, 0xc8, 0xe8, 0xff}
	groundLine = color.RGBA{0xe6, 0xe6, 0xe6, 0xff}
	coinGold   = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	coinEdge   = color.RGBA{0xc9, 0x9a, 0x00, 0xff}
	playerBody = color.RGBA{0x33, 0x99, 0xff, 0xff}
	shadow     = color.RGBA{0x00, 0x00, 0x00, 0x50}
	barFill    = color.RGBA{0x4c, 0xd9, 0x64, 0xff}
	barTrack   = color.RGBA{0x30, 0x30, 0x30, 0xc0}
	overlayBg  = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

// World sizes of the drawn shapes.
const (
	coinRadius   = 0.3
	playerRadius = 0.35
	gridSpacing  = 2.0
	gridSamples  = 16
)

func drawScene(dst *ebiten.Image, cfg config.CoinsConfig, snap gameplay.Snapshot, f game.Frame) {
	drawSky(dst)

	cam := camera.New(cfg.Camera)
	cam.Follow(snap.Player)
	vp := cam.Viewport(Width, Height, 1)
	pixelsPerUnit := Height / 2 / math.Tan(mgl64.DegToRad(cfg.Camera.FOV)/2)

	drawGround(dst, vp, cfg)
	drawCoins(dst, vp, cam.Position, pixelsPerUnit, cfg.World.GroundY, snap.Coins)

	if x, y, _, ok := vp.Project(snap.Player); ok {
		r := float32(playerRadius * pixelsPerUnit / snap.Player.Sub(cam.Position).Len())
		vector.DrawFilledRect(dst, float32(x)-r, float32(y)-2*r, 2*r, 3*r, playerBody, true)
		vector.DrawFilledCircle(dst, float32(x), float32(y)-2*r, r, playerBody, true)
	}

	drawHUD(dst, snap, f)
}

func drawSky(dst *ebiten.Image) {
	const bands = 30
	bandH := float32(Height) / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		vector.DrawFilledRect(dst, 0, float32(i)*bandH, Width, bandH+1, lerp(skyTop, skyHorizon, t), false)
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}

// drawGround draws the ground quad as a grid of projected line segments.
// Lines are split into short pieces so the parts behind the camera drop out.
func drawGround(dst *ebiten.Image, vp camera.Viewport, cfg config.CoinsConfig) {
	half := cfg.World.GroundSize / 2
	cx, cz := cfg.Spawn.Center.X, cfg.Spawn.Center.Z
	y := cfg.World.GroundY

	segment := func(a, b mgl64.Vec3) {
		step := b.Sub(a).Mul(1.0 / gridSamples)
		for i := 0; i < gridSamples; i++ {
			p0 := a.Add(step.Mul(float64(i)))
			p1 := p0.Add(step)
			x0, y0, _, ok0 := vp.Project(p0)
			x1, y1, _, ok1 := vp.Project(p1)
			if ok0 && ok1 {
				vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, groundLine, true)
			}
		}
	}

	for off := -half; off <= half+1e-9; off += gridSpacing {
		segment(mgl64.Vec3{cx + off, y, cz - half}, mgl64.Vec3{cx + off, y, cz + half})
		segment(mgl64.Vec3{cx - half, y, cz + off}, mgl64.Vec3{cx + half, y, cz + off})
	}
}

type screenCoin struct {
	x, y, r float32
	depth   float64
	face    float64
}

func drawCoins(dst *ebiten.Image, vp camera.Viewport, eye mgl64.Vec3, ppu, groundY float64, coins []gameplay.CoinView) {
	visible := make([]screenCoin, 0, len(coins))
	for _, c := range coins {
		dist := c.Position.Sub(eye).Len()
		if dist <= 0 {
			continue
		}
		r := float32(coinRadius * ppu / dist)

		if x, y, _, ok := vp.Project(mgl64.Vec3{c.Position.X(), groundY, c.Position.Z()}); ok {
			vector.DrawFilledRect(dst, float32(x)-r, float32(y)-r/4, 2*r, r/2, shadow, true)
		}

		x, y, depth, ok := vp.Project(c.Position)
		if !ok {
			continue
		}
		visible = append(visible, screenCoin{
			x: float32(x), y: float32(y), r: r,
			depth: depth, face: math.Abs(math.Cos(c.Spin)),
		})
	}

	sort.Slice(visible, func(i, j int) bool { return visible[i].depth > visible[j].depth })
	for _, c := range visible {
		w := max(c.r*2*float32(c.face), 1)
		vector.DrawFilledRect(dst, c.x-w/2, c.y-c.r, w, 2*c.r, coinEdge, true)
		if c.face > 0.7 {
			vector.DrawFilledCircle(dst, c.x, c.y, c.r, coinGold, true)
		}
	}
}

func drawHUD(dst *ebiten.Image, snap gameplay.Snapshot, f game.Frame) {
	const (
		barX, barY = 20, 20
		barW, barH = 300, 16
	)
	vector.DrawFilledRect(dst, barX, barY, barW, barH, barTrack, false)
	vector.DrawFilledRect(dst, barX, barY, float32(core.ClampF(snap.ScoreFraction, 0, 1))*barW, barH, barFill, false)

	info := fmt.Sprintf("Score %d   live %d   missed %d", snap.Score, len(snap.Coins), snap.Missed)
	if f.Remaining >= 0 {
		info += fmt.Sprintf("   %.0fs left", math.Ceil(f.Remaining))
	}
	ebitenutil.DebugPrintAt(dst, info, barX, barY+barH+6)

	switch {
	case f.GameOver:
		overlay(dst, fmt.Sprintf("TIME UP\n\nScore: %d\n\nR restart   Esc quit", snap.Score))
	case snap.Paused:
		overlay(dst, "PAUSED\n\nP resume   Esc quit")
	}
}

func overlay(dst *ebiten.Image, text string) {
	const w, h = 260, 110
	x, y := float32(Width-w)/2, float32(Height-h)/2
	vector.DrawFilledRect(dst, x, y, w, h, overlayBg, false)
	ebitenutil.DebugPrintAt(dst, text, int(x)+20, int(y)+20)
}
