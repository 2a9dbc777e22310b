// Package window runs the game in a desktop window through Ebitengine.
// Unlike the terminal front-end it sees real key-up events, so held keys
// map directly onto the per-frame input levels.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/coinfall/internal/core"
	"github.com/vovakirdan/coinfall/internal/game"
)

// Window geometry from the original desktop build.
const (
	Width  = 800
	Height = 600
	Title  = "3D Collect Game"
)

// Options configures a window run.
type Options struct {
	Game         *game.Game
	Seed         int64
	TickRate     int
	MaxFrameStep float64 // Upper bound on dt, seconds

	// OnFrame, if set, is called after every step with the inputs used.
	OnFrame func(res core.StepResult, in core.InputFrame, dt float64)
	// OnRestart, if set, is called before a finished round is reset.
	OnRestart func(final core.GameState)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	if opts.Game == nil {
		return errors.New("window: no game")
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	w := &windowGame{opts: opts, seed: opts.Seed}
	opts.Game.Reset(core.RuntimeConfig{ScreenW: Width, ScreenH: Height, TickRate: opts.TickRate, Seed: w.seed})

	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowSize(Width, Height)
	ebiten.SetTPS(opts.TickRate)

	err := ebiten.RunGame(w)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

type windowGame struct {
	opts  Options
	seed  int64
	last  time.Time
	state core.GameState
}

// heldKeys maps actions to the keys that hold them.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionForward: {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionBack:    {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionPause:   {ebiten.KeyP},
}

func (w *windowGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	now := time.Now()
	dt := 0.0
	if !w.last.IsZero() {
		dt = now.Sub(w.last).Seconds()
	}
	w.last = now
	if w.opts.MaxFrameStep > 0 && dt > w.opts.MaxFrameStep {
		dt = w.opts.MaxFrameStep
	}

	if w.state.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if w.opts.OnRestart != nil {
			w.opts.OnRestart(w.state)
		}
		w.seed = time.Now().UnixNano()
		w.opts.Game.Reset(core.RuntimeConfig{ScreenW: Width, ScreenH: Height, TickRate: w.opts.TickRate, Seed: w.seed})
		w.state = w.opts.Game.State()
		return nil
	}

	in := core.NewInputFrame()
	for action, keys := range heldKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				in.Set(action)
				break
			}
		}
	}

	res := w.opts.Game.Step(in, dt)
	w.state = res.State
	if w.opts.OnFrame != nil {
		w.opts.OnFrame(res, in, dt)
	}
	return nil
}

func (w *windowGame) Draw(screen *ebiten.Image) {
	g := w.opts.Game
	drawScene(screen, g.Config(), g.Snapshot(), game.Frame{
		Title:     g.Title(),
		Remaining: g.Remaining(),
		GameOver:  w.state.GameOver,
	})
}

func (w *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return Width, Height
}
