package game

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/coinfall/internal/camera"
	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/core"
	"github.com/vovakirdan/coinfall/internal/gameplay"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Layout constants
const (
	hudRows       = 1
	minSceneW     = 30
	minSceneH     = 8
	groundStep    = 0.25 // World units between ground samples
	gridEvery     = 8    // Samples between grid lines
	maxGroundRows = 160  // Samples per side, whatever the ground size
	barWidth      = 20
	farDepthLimit = 0.985 // NDC depth past which coins use the far color
)

// Frame describes what to draw besides the world itself.
type Frame struct {
	Title     string
	Remaining float64 // Seconds left, negative when endless
	GameOver  bool
}

// Render draws the current round.
func (g *Game) Render(dst *core.Screen) {
	if g.state == nil {
		return
	}
	Draw(dst, g.cfg, g.state.Snapshot(), Frame{
		Title:     g.title,
		Remaining: g.Remaining(),
		GameOver:  g.gameOver,
	})
}

// Draw renders a snapshot of the coin field into dst: sky, projected
// ground, falling coins, the player and the HUD. It only reads snap, so a
// spectator can draw remote frames with the same code.
func Draw(dst *core.Screen, cfg config.CoinsConfig, snap gameplay.Snapshot, f Frame) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < minSceneW || h < minSceneH+hudRows {
		dst.DrawTextCentered(h/2, "Terminal too small", core.ColorText)
		return
	}

	cam := camera.New(cfg.Camera)
	cam.Follow(snap.Player)
	vp := cam.Viewport(float64(w), float64(h-hudRows), cellAspect)

	drawSky(dst, h)
	drawGround(dst, vp, cfg)
	drawCoins(dst, vp, cfg.World.GroundY, snap.Coins)
	if x, y, ok := project(vp, snap.Player); ok {
		dst.SetColor(x, y, '@', core.ColorPlayer)
	}
	drawHUD(dst, snap, f)

	switch {
	case f.GameOver:
		drawOverlay(dst, []string{
			"TIME UP",
			"",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Missed: %d", snap.Missed),
			"",
			"R restart  B menu  Q quit",
		})
	case snap.Paused:
		drawOverlay(dst, []string{
			"PAUSED",
			"",
			"P resume  Q quit",
		})
	}
}

// project maps a world point to a screen cell below the HUD.
func project(vp camera.Viewport, p mgl64.Vec3) (int, int, bool) {
	fx, fy, _, ok := vp.Project(p)
	if !ok || !vp.InFrame(fx, fy) {
		return 0, 0, false
	}
	return int(fx), int(fy) + hudRows, true
}

func drawSky(dst *core.Screen, h int) {
	for y := hudRows; y < h; y++ {
		c := core.ColorSkyHigh
		if y > h/3 {
			c = core.ColorSkyLow
		}
		for x := 0; x < dst.Width(); x++ {
			if (x*7+y*13)%37 == 0 {
				dst.SetColor(x, y, '.', c)
			}
		}
	}
}

// drawGround samples the ground quad, centered under the spawn footprint,
// and marks every cell a sample lands in. Every gridEvery-th row and column
// is drawn as a grid line.
func drawGround(dst *core.Screen, vp camera.Viewport, cfg config.CoinsConfig) {
	world := cfg.World
	half := world.GroundSize / 2
	n, step := groundGrid(world.GroundSize)
	cx, cz := cfg.Spawn.Center.X, cfg.Spawn.Center.Z

	type cell struct{ x, y int }
	lines := make(map[cell]bool)

	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			p := mgl64.Vec3{cx - half + float64(i)*step, world.GroundY, cz - half + float64(j)*step}
			x, y, ok := project(vp, p)
			if !ok {
				continue
			}
			onLine := i%gridEvery == 0 || j%gridEvery == 0
			switch {
			case onLine:
				lines[cell{x, y}] = true
				dst.SetColor(x, y, '+', core.ColorGround)
			case !lines[cell{x, y}]:
				dst.SetColor(x, y, '.', core.ColorGroundFill)
			}
		}
	}
}

// groundGrid returns the samples per side and their spacing for a ground of
// the given size. Large grounds are sampled more coarsely.
func groundGrid(size float64) (int, float64) {
	n := int(size / groundStep)
	if n <= maxGroundRows {
		return n, groundStep
	}
	return maxGroundRows, size / maxGroundRows
}

type projectedCoin struct {
	x, y  int
	depth float64
	spin  float64
}

// drawCoins draws shadows first, then coins far to near.
func drawCoins(dst *core.Screen, vp camera.Viewport, groundY float64, coins []gameplay.CoinView) {
	visible := make([]projectedCoin, 0, len(coins))
	for _, c := range coins {
		shadow := mgl64.Vec3{c.Position.X(), groundY, c.Position.Z()}
		if x, y, ok := project(vp, shadow); ok {
			dst.SetColor(x, y, '_', core.ColorGroundFill)
		}

		fx, fy, depth, ok := vp.Project(c.Position)
		if !ok || !vp.InFrame(fx, fy) {
			continue
		}
		visible = append(visible, projectedCoin{
			x: int(fx), y: int(fy) + hudRows, depth: depth, spin: c.Spin,
		})
	}

	sort.Slice(visible, func(i, j int) bool { return visible[i].depth > visible[j].depth })
	for _, c := range visible {
		color := core.ColorCoin
		if c.depth > farDepthLimit {
			color = core.ColorCoinFar
		}
		dst.SetColor(c.x, c.y, coinGlyph(c.spin), color)
	}
}

// coinGlyph picks a glyph for the coin's rotation about Y: face-on, tilted
// or edge-on.
func coinGlyph(spin float64) rune {
	face := math.Abs(math.Cos(spin))
	switch {
	case face > 0.7:
		return 'O'
	case face > 0.3:
		return '0'
	default:
		return '|'
	}
}

func drawHUD(dst *core.Screen, snap gameplay.Snapshot, f Frame) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	left := fmt.Sprintf(" SCORE %3d ", snap.Score)
	dst.DrawText(0, 0, left, core.ColorText)

	filled := int(math.Round(core.ClampF(snap.ScoreFraction, 0, 1) * barWidth))
	x := len(left)
	dst.DrawHLine(x, 0, filled, '█', core.ColorHUDBar)
	dst.DrawHLine(x+filled, 0, barWidth-filled, '░', core.ColorHUDTrack)
	x += barWidth + 1

	right := fmt.Sprintf("live %d  missed %d", len(snap.Coins), snap.Missed)
	if f.Remaining >= 0 {
		right += "  " + clock(math.Ceil(f.Remaining))
	} else {
		right += "  " + clock(snap.Elapsed)
	}
	if f.Title != "" && x+len(right)+len(f.Title)+4 < dst.Width() {
		right = f.Title + "  " + right
	}
	dst.DrawText(max(x, dst.Width()-len(right)-1), 0, right, core.ColorText)
}

func clock(secs float64) string {
	s := int(secs)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func drawOverlay(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := dst.Bounds().Centered(width+6, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorOverlay)
	for i, l := range lines {
		pad := (box.W - len([]rune(l))) / 2
		dst.DrawText(box.X+pad, box.Y+1+i, strings.TrimRight(l, " "), core.ColorOverlay)
	}
}
