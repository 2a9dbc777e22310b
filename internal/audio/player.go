package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// initOnce guards speaker.Init, which may only run once per process.
var (
	initOnce sync.Once
	initErr  error
)

// Player mixes cues into the system speaker. A nil *Player is valid and
// silent, so callers can keep one around even when sound is off.
type Player struct {
	mixer  *beep.Mixer
	volume float64
}

// NewPlayer opens the speaker. On failure the caller should carry on with a
// nil player.
func NewPlayer(volume float64) (*Player, error) {
	initOnce.Do(func() {
		initErr = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	if initErr != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", initErr)
	}

	p := &Player{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(p.mixer)
	return p, nil
}

// Capture plays the coin chime.
func (p *Player) Capture() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(Chime(sampleRate, p.volume))
	speaker.Unlock()
}

// Close silences anything still playing.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
