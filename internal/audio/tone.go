// Package audio plays the short synthesized cues of the game: a rising
// two-note chime on every captured coin.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a sine oscillator with a linear attack and release.
type tone struct {
	freq    float64
	rate    beep.SampleRate
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

// Tone returns a sine note of the given frequency and length.
func Tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	return &tone{
		freq:    freq,
		rate:    rate,
		total:   total,
		attack:  min(rate.N(5*time.Millisecond), total/2),
		release: min(rate.N(40*time.Millisecond), total/2),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		vol := 1.0
		switch {
		case t.pos < t.attack:
			vol = float64(t.pos) / float64(t.attack)
		case t.pos >= t.total-t.release:
			vol = float64(t.total-t.pos) / float64(t.release)
		}
		v := math.Sin(2*math.Pi*t.phase) * vol
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Chime is the capture cue: B5 then E6.
func Chime(rate beep.SampleRate, volume float64) beep.Streamer {
	notes := beep.Seq(
		Tone(987.77, 70*time.Millisecond, rate),
		Tone(1318.51, 140*time.Millisecond, rate),
	)
	return withVolume(notes, volume)
}

// withVolume scales a stream linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
