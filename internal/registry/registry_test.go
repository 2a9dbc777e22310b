package registry

import (
	"testing"

	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/core"
)

type fakeGame struct {
	opts Options
}

func (f *fakeGame) ID() string                                    { return "fake" }
func (f *fakeGame) Title() string                                 { return "Fake Field" }
func (f *fakeGame) Reset(core.RuntimeConfig)                      {}
func (f *fakeGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (f *fakeGame) Render(*core.Screen)                           {}
func (f *fakeGame) State() core.GameState                         { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("fake", func(opts Options) Game { return &fakeGame{opts: opts} })

	if !Exists("fake") {
		t.Fatal("fake should be registered")
	}
	if Exists("missing") {
		t.Error("missing should not exist")
	}

	var found bool
	for _, info := range List() {
		if info.ID == "fake" {
			found = true
			if info.Title != "Fake Field" {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List does not include fake")
	}

	opts := DefaultOptions()
	opts.Difficulty = config.DifficultyHard
	g, err := Create("fake", opts)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := g.(*fakeGame).opts.Difficulty; got != config.DifficultyHard {
		t.Errorf("options not passed through, difficulty %q", got)
	}

	if _, err := Create("missing", opts); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func(opts Options) Game { return &fakeGame{opts: opts} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup", func(opts Options) Game { return &fakeGame{opts: opts} })
}
