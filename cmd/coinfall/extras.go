package main

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coinfall/internal/audio"
	"github.com/vovakirdan/coinfall/internal/core"
	"github.com/vovakirdan/coinfall/internal/game"
	"github.com/vovakirdan/coinfall/internal/replay"
	"github.com/vovakirdan/coinfall/internal/spectate"
	"github.com/vovakirdan/coinfall/internal/storage"
)

// extrasOptions selects the optional services attached to a round.
type extrasOptions struct {
	RecordPath   string
	SpectateAddr string
	AllowRemote  bool
	Sound        bool
	Volume       float64

	// Store, when set, receives a score record at the end of each round.
	// The terminal UI saves on its own and leaves this nil.
	Store *storage.Store
}

// extras feeds frames from the game loop to the recorder, the spectator hub
// and the speaker. Each service is optional; a failure to start one is
// logged and the round goes on without it.
type extras struct {
	g      *game.Game
	logger *log.Logger
	store  *storage.Store

	rec         *replay.Recorder
	recPath     string
	hub         *spectate.Hub
	hubDone     chan struct{}
	cancel      context.CancelFunc
	sound       *audio.Player
	roundClosed bool
}

// startExtras starts the services in opts for g, whose current round was
// reset with seed.
func startExtras(g *game.Game, seed int64, opts extrasOptions, logger *log.Logger) *extras {
	e := &extras{g: g, logger: logger, store: opts.Store}

	if opts.RecordPath != "" {
		rec, err := replay.Create(opts.RecordPath, replay.Header{
			Mode:       g.ID(),
			Difficulty: string(g.Difficulty()),
			Seed:       seed,
			Config:     g.Config(),
		})
		if err != nil {
			logger.Warn("recording disabled", "error", err)
		} else {
			e.rec = rec
			e.recPath = opts.RecordPath
			logger.Info("recording", "path", opts.RecordPath, "seed", seed)
		}
	}

	if opts.SpectateAddr != "" {
		ctx, cancel := context.WithCancel(context.Background())
		e.cancel = cancel
		e.hub = spectate.NewHub(spectate.Bootstrap{
			Mode:       g.ID(),
			Title:      g.Title(),
			Difficulty: string(g.Difficulty()),
			Config:     g.Config(),
		}, logger, opts.AllowRemote)
		e.hubDone = make(chan struct{})
		go func() {
			defer close(e.hubDone)
			if err := e.hub.ListenAndServe(ctx, opts.SpectateAddr); err != nil {
				logger.Warn("spectator hub stopped", "error", err)
			}
		}()
	}

	if opts.Sound {
		p, err := audio.NewPlayer(opts.Volume)
		if err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			e.sound = p
		}
	}

	return e
}

// onFrame is called by the front-end after every step.
func (e *extras) onFrame(res core.StepResult, in core.InputFrame, dt float64) {
	if res.Advanced {
		e.roundClosed = false
		if e.rec != nil {
			if err := e.rec.RecordStep(e.g.World(), dt, in); err != nil {
				e.logger.Warn("recording stopped", "error", err)
				e.stopRecording()
			}
		}
	}
	if res.Captured > 0 {
		e.sound.Capture()
	}
	if e.hub != nil {
		//nolint:errcheck // Best-effort broadcast
		e.hub.Publish(spectate.FrameMsg{
			Snapshot:  e.g.Snapshot(),
			Remaining: e.g.Remaining(),
			GameOver:  res.State.GameOver,
		})
	}
	if res.State.GameOver {
		e.endRound(res.State)
	}
}

// endRound closes the current round once: the recording covers a single
// round and the score is saved when a store is attached.
func (e *extras) endRound(final core.GameState) {
	if e.roundClosed {
		return
	}
	e.roundClosed = true
	e.stopRecording()

	if e.store == nil || final.Score <= 0 {
		return
	}
	_, err := e.store.SaveRun(storage.Run{
		GameID:     e.g.ID(),
		Score:      final.Score,
		Spawned:    final.Spawned,
		Missed:     final.Missed,
		Duration:   time.Duration(final.Elapsed * float64(time.Second)),
		Difficulty: string(e.g.Difficulty()),
	})
	if err != nil {
		e.logger.Warn("could not save score", "error", err)
		return
	}
	e.logger.Info("score saved", "mode", e.g.ID(), "score", final.Score)
}

func (e *extras) stopRecording() {
	if e.rec == nil {
		return
	}
	frames := e.rec.Frames()
	if err := e.rec.Close(); err != nil {
		e.logger.Warn("recording incomplete", "path", e.recPath, "error", err)
	} else {
		e.logger.Info("recording saved", "path", e.recPath, "frames", frames)
	}
	e.rec = nil
}

// Close ends the round and stops every service.
func (e *extras) Close() {
	e.endRound(e.g.State())
	e.sound.Close()
	if e.hub != nil {
		e.cancel()
		<-e.hubDone
		e.logger.Info("spectator hub closed", "dropped", e.hub.Dropped())
	}
}
