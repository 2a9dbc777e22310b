package tui

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coinfall/internal/core"
	"github.com/vovakirdan/coinfall/internal/game"
	"github.com/vovakirdan/coinfall/internal/gameplay"
	"github.com/vovakirdan/coinfall/internal/registry"
	"github.com/vovakirdan/coinfall/internal/storage"
)

func newTestModel(t *testing.T, opts Options) (Model, *game.Game) {
	t.Helper()
	g := game.New(registry.DefaultOptions())
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, opts)
	m.Init()
	return m, g
}

func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{Gen: m.gen, At: at})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestTicksAdvanceByWallClock(t *testing.T) {
	m, g := newTestModel(t, Options{})
	t0 := time.Now()

	m = tick(t, m, t0)
	m = tick(t, m, t0.Add(100*time.Millisecond))
	m = tick(t, m, t0.Add(150*time.Millisecond))

	if got := g.State().Elapsed; math.Abs(got-0.15) > 1e-9 {
		t.Errorf("elapsed = %v, want 0.15", got)
	}
}

func TestLongGapIsClamped(t *testing.T) {
	m, g := newTestModel(t, Options{MaxFrameStep: 0.1})
	t0 := time.Now()

	m = tick(t, m, t0)
	m = tick(t, m, t0.Add(3*time.Second))

	if got := g.State().Elapsed; math.Abs(got-0.1) > 1e-9 {
		t.Errorf("elapsed = %v, want clamped 0.1", got)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m, g := newTestModel(t, Options{})
	t0 := time.Now()
	m = tick(t, m, t0)

	next, cmd := m.Update(TickMsg{Gen: m.gen + 1000, At: t0.Add(time.Second)})
	m = next.(Model)
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if g.State().Elapsed != 0 {
		t.Errorf("stale tick advanced the round: elapsed %v", g.State().Elapsed)
	}
}

func TestPauseKeyTogglesOnce(t *testing.T) {
	var toggles int
	m, g := newTestModel(t, Options{
		OnFrame: func(res core.StepResult, _ core.InputFrame, _ float64) {
			if res.Toggled {
				toggles++
			}
		},
	})
	now := time.Now()
	m = tick(t, m, now)

	// Auto-repeat delivers several P events while the key is down.
	for i := 0; i < 5; i++ {
		m, _ = press(t, m, runeKey('p'))
		now = now.Add(16 * time.Millisecond)
		m = tick(t, m, now)
	}

	if !g.State().Paused {
		t.Fatal("round should be paused")
	}
	if toggles != 1 {
		t.Errorf("toggles = %d, want 1", toggles)
	}
}

func TestScoreSavedOnceOnLeave(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	var ended int
	m, g := newTestModel(t, Options{
		Store:      store,
		OnRoundEnd: func(core.GameState) { ended++ },
	})
	t0 := time.Now()
	m = tick(t, m, t0)

	g.World().AddCoin(gameplay.Coin{Position: g.World().Player()})
	m = tick(t, m, t0.Add(16*time.Millisecond))
	if g.State().Score != 1 {
		t.Fatalf("score = %d, want 1", g.State().Score)
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !m.BackToMenu() {
		t.Fatal("esc should leave for the menu")
	}
	m, _ = press(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Fatal("q should quit")
	}

	scores, err := store.TopScores(game.IDEndless, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 1 || scores[0].Difficulty != "normal" {
		t.Errorf("saved %+v", scores[0])
	}
	if ended != 1 {
		t.Errorf("OnRoundEnd called %d times, want 1", ended)
	}
}

func TestZeroScoreNotSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, Options{Store: store})
	m = tick(t, m, time.Now())
	press(t, m, runeKey('q'))

	scores, err := store.TopScores(game.IDEndless, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("saved %d scores for an empty round", len(scores))
	}
}

func TestEmbeddedMenuKeepsProgram(t *testing.T) {
	m, _ := newTestModel(t, Options{Embedded: true})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("embedded model should not quit the program")
	}
	if !m.BackToMenu() {
		t.Error("BackToMenu should be set")
	}
}

func TestRestartAfterTimeUp(t *testing.T) {
	opts := registry.DefaultOptions()
	g := game.NewRush(opts)
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{MaxFrameStep: 1})
	m.Init()

	now := time.Now()
	m = tick(t, m, now)
	for i := 0; i < int(game.RushDuration)+1; i++ {
		now = now.Add(time.Second)
		m = tick(t, m, now)
	}
	if !m.State().GameOver {
		t.Fatal("rush round should be over")
	}

	m, _ = press(t, m, runeKey('r'))
	m = tick(t, m, now.Add(time.Second))
	if g.State().GameOver || g.State().Elapsed != 0 {
		t.Errorf("restart should start a fresh round, got %+v", g.State())
	}
}

func TestViewHasStatusLine(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = tick(t, m, time.Now())

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Fatalf("view has %d lines, want 24", len(lines))
	}
	if !strings.Contains(lines[23], "P pause") {
		t.Errorf("status line = %q", lines[23])
	}
}
