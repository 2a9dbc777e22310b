package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/core"
	"github.com/vovakirdan/coinfall/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(registry.DefaultOptions())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{IDEndless, IDRush} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}
	g, err := registry.Create(IDRush, registry.DefaultOptions())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != IDRush {
		t.Errorf("ID() = %q", g.ID())
	}
}

func TestGameDeterminism(t *testing.T) {
	play := func() (core.GameState, string) {
		g := newTestGame(t)
		in := core.NewInputFrame()
		in.Set(core.ActionLeft)
		for i := 0; i < 600; i++ {
			g.Step(in, 1.0/60)
		}
		return g.State(), g.Digest()
	}
	s1, d1 := play()
	s2, d2 := play()
	if s1 != s2 || d1 != d2 {
		t.Errorf("same seed diverged: %+v vs %+v", s1, s2)
	}
	if s1.Spawned == 0 {
		t.Error("ten seconds of play spawned nothing")
	}
}

func TestEndlessNeverEnds(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 1000; i++ {
		if res := g.Step(core.NewInputFrame(), 0.25); res.State.GameOver {
			t.Fatalf("endless mode ended at step %d", i)
		}
	}
	if g.Remaining() != -1 {
		t.Errorf("Remaining() = %v for endless mode", g.Remaining())
	}
}

func TestRushRoundEnds(t *testing.T) {
	g := NewRush(registry.DefaultOptions())
	g.Reset(core.RuntimeConfig{Seed: 1})

	steps := 0
	for !g.State().GameOver {
		res := g.Step(core.NewInputFrame(), 0.5)
		if !res.Advanced {
			t.Fatal("step not advanced before game over")
		}
		steps++
		if steps > 200 {
			t.Fatal("rush round never ended")
		}
	}
	if steps != int(RushDuration/0.5) {
		t.Errorf("round ended after %d steps, want %d", steps, int(RushDuration/0.5))
	}

	before := g.Digest()
	if res := g.Step(core.NewInputFrame(), 0.5); res.Advanced {
		t.Error("world advanced after game over")
	}
	if g.Digest() != before {
		t.Error("state changed after game over")
	}

	g.Reset(core.RuntimeConfig{Seed: 2})
	if g.State().GameOver || g.State().Elapsed != 0 {
		t.Error("Reset did not start a new round")
	}
}

func TestDifficultyApplied(t *testing.T) {
	opts := registry.DefaultOptions()
	opts.Difficulty = config.DifficultyHard
	g := New(opts)
	if g.Config().Coin.CaptureRadius >= opts.Coins.Coin.CaptureRadius {
		t.Errorf("hard capture radius %v not tighter than %v", g.Config().Coin.CaptureRadius, opts.Coins.Coin.CaptureRadius)
	}
	if g.Difficulty() != config.DifficultyHard {
		t.Errorf("Difficulty() = %q", g.Difficulty())
	}
}

func TestPauseReportedAsToggle(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in, 0.1)
	if !res.Toggled || !res.State.Paused {
		t.Errorf("pause press not reported: %+v", res)
	}
}

func TestRenderHUDAndScene(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame(), 1.0/60)
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "SCORE") {
		t.Errorf("HUD row missing score: %q", hud)
	}
	if !strings.Contains(hud, "░") {
		t.Errorf("HUD row missing the score bar track: %q", hud)
	}
	if !strings.Contains(screen.String(), "@") {
		t.Error("player glyph not drawn")
	}
	if !strings.Contains(screen.String(), "+") {
		t.Error("ground grid not drawn")
	}
}

func TestGroundGrid(t *testing.T) {
	tests := []struct {
		size     float64
		wantN    int
		wantStep float64
	}{
		{20, 80, groundStep},
		{40, 160, groundStep},
		{800, maxGroundRows, 5},
	}
	for _, tt := range tests {
		n, step := groundGrid(tt.size)
		if n != tt.wantN || step != tt.wantStep {
			t.Errorf("groundGrid(%v) = %d, %v, want %d, %v", tt.size, n, step, tt.wantN, tt.wantStep)
		}
	}
}

func TestDrawHugeGroundFromRemote(t *testing.T) {
	g := newTestGame(t)
	cfg := g.Config()
	cfg.World.GroundSize = 1e6

	snap := g.Snapshot()
	snap.ScoreFraction = 3 // out of range values come from the wire as-is

	screen := core.NewScreen(80, 24)
	Draw(screen, cfg, snap, Frame{Remaining: -1})

	if !strings.Contains(screen.String(), "@") {
		t.Error("player glyph not drawn")
	}
	if strings.Count(screen.Row(0), "█") != barWidth {
		t.Errorf("score bar should be full and bounded: %q", screen.Row(0))
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in, 0.1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(20, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected size warning, got %q", screen.String())
	}
}

func TestCoinGlyph(t *testing.T) {
	tests := []struct {
		spin float64
		want rune
	}{
		{0, 'O'},
		{1.0, '0'},
		{1.5, '|'},
	}
	for _, tt := range tests {
		if got := coinGlyph(tt.spin); got != tt.want {
			t.Errorf("coinGlyph(%v) = %q, want %q", tt.spin, got, tt.want)
		}
	}
}
