// Package replay records play sessions as zstd-compressed JSONL and re-runs
// them against the rules to check that every frame reproduces.
//
// A recording is a header line followed by one line per simulated frame.
// The header carries everything needed to rebuild the initial world: seed
// and the tuning with the difficulty already applied.
package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/core"
	"github.com/vovakirdan/coinfall/internal/gameplay"
)

// FormatVersion is the recording format written by this package.
const FormatVersion = 1

var (
	// ErrBadHeader is returned for recordings without a usable header line.
	ErrBadHeader = errors.New("replay: bad header")
	// ErrDigestMismatch is returned when a re-simulated frame diverges.
	ErrDigestMismatch = errors.New("replay: digest mismatch")
)

// Header is the first line of a recording.
type Header struct {
	Version    int                `json:"version"`
	Mode       string             `json:"mode"`
	Difficulty string             `json:"difficulty"`
	Seed       int64              `json:"seed"`
	Config     config.CoinsConfig `json:"config"`
	CreatedAt  time.Time          `json:"created_at"`
}

// Frame is one simulated frame.
type Frame struct {
	Frame  uint64  `json:"frame"`
	DT     float64 `json:"dt"`
	Input  uint8   `json:"in"`
	Digest string  `json:"digest"`
}

// Recorder appends frames to a recording file.
type Recorder struct {
	mu     sync.Mutex
	f      *os.File
	enc    *zstd.Encoder
	w      *bufio.Writer
	frames int
}

// Create starts a recording at path, writing the header immediately.
func Create(path string, h Header) (*Recorder, error) {
	if h.Version == 0 {
		h.Version = FormatVersion
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("replay: create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("replay: create %s: %w", path, err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("replay: zstd writer: %w", err)
	}

	r := &Recorder{
		f:   f,
		enc: enc,
		w:   bufio.NewWriterSize(enc, 64*1024),
	}
	if err := r.writeLine(h); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// Record appends one frame.
func (r *Recorder) Record(fr Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.w == nil {
		return errors.New("replay: recorder closed")
	}
	if err := r.writeLineLocked(fr); err != nil {
		return err
	}
	r.frames++
	return nil
}

// RecordStep is a convenience for recording a step of s that just happened.
func (r *Recorder) RecordStep(s *gameplay.State, dt float64, in core.InputFrame) error {
	return r.Record(Frame{
		Frame:  s.Frame(),
		DT:     dt,
		Input:  in.Bits(),
		Digest: s.Digest(),
	})
}

// Frames returns the number of frames recorded so far.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Close flushes and closes the recording.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	if r.w != nil {
		firstErr = r.w.Flush()
		r.w = nil
	}
	if r.enc != nil {
		if err := r.enc.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		r.enc = nil
	}
	if r.f != nil {
		if err := r.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		r.f = nil
	}
	if firstErr != nil {
		return fmt.Errorf("replay: close: %w", firstErr)
	}
	return nil
}

func (r *Recorder) writeLine(v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writeLineLocked(v)
}

func (r *Recorder) writeLineLocked(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("replay: marshal: %w", err)
	}
	if _, err := r.w.Write(b); err != nil {
		return fmt.Errorf("replay: write: %w", err)
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("replay: write: %w", err)
	}
	return nil
}

// Reader streams a recording.
type Reader struct {
	f      *os.File
	dec    *zstd.Decoder
	sc     *bufio.Scanner
	header Header
	line   int
}

// Open opens a recording and parses its header.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open %s: %w", path, err)
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("replay: zstd reader: %w", err)
	}

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	r := &Reader{f: f, dec: dec, sc: sc}
	if !sc.Scan() {
		r.Close()
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
		}
		return nil, fmt.Errorf("%w: empty recording", ErrBadHeader)
	}
	r.line = 1
	if err := json.Unmarshal(sc.Bytes(), &r.header); err != nil {
		r.Close()
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if r.header.Version != FormatVersion {
		r.Close()
		return nil, fmt.Errorf("%w: version %d, want %d", ErrBadHeader, r.header.Version, FormatVersion)
	}
	return r, nil
}

// Header returns the parsed header.
func (r *Reader) Header() Header { return r.header }

// Next returns the next frame or io.EOF.
func (r *Reader) Next() (Frame, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Frame{}, fmt.Errorf("replay: read: %w", err)
		}
		return Frame{}, io.EOF
	}
	r.line++
	var fr Frame
	if err := json.Unmarshal(r.sc.Bytes(), &fr); err != nil {
		return Frame{}, fmt.Errorf("replay: line %d: %w", r.line, err)
	}
	return fr, nil
}

// Close releases the file.
func (r *Reader) Close() error {
	if r.dec != nil {
		r.dec.Close()
		r.dec = nil
	}
	if r.f != nil {
		err := r.f.Close()
		r.f = nil
		return err
	}
	return nil
}

// Result summarises a verified recording.
type Result struct {
	Header  Header
	Frames  int
	Score   int
	Spawned int
	Missed  int
	Elapsed float64
	Digest  string // Digest after the last frame
}

// Verify re-simulates the recording at path and compares every frame's
// digest. It stops at the first divergence with ErrDigestMismatch.
func Verify(path string) (Result, error) {
	r, err := Open(path)
	if err != nil {
		return Result{}, err
	}
	defer r.Close()

	h := r.Header()
	state := gameplay.NewState(h.Config, gameplay.NewSource(h.Seed))
	res := Result{Header: h}

	for {
		fr, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, err
		}

		state.Update(gameplay.FrameContext{DT: fr.DT, Input: core.FrameFromBits(fr.Input)})
		if state.Frame() != fr.Frame {
			return res, fmt.Errorf("%w: frame counter %d, recorded %d", ErrDigestMismatch, state.Frame(), fr.Frame)
		}
		if d := state.Digest(); d != fr.Digest {
			return res, fmt.Errorf("%w at frame %d", ErrDigestMismatch, fr.Frame)
		}
		res.Frames++
	}

	res.Score = state.Score()
	res.Spawned = state.Spawned()
	res.Missed = state.Missed()
	res.Elapsed = state.Elapsed()
	res.Digest = state.Digest()
	return res, nil
}
