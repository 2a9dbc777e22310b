package gameplay

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Digest returns a hex SHA-256 over the ordered simulation state. Two states
// that went through the same frames from the same seed produce the same digest.
func (s *State) Digest() string {
	h := sha256.New()
	var buf [8]byte
	u64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	f64 := func(v float64) { u64(math.Float64bits(v)) }
	b := func(v bool) {
		if v {
			u64(1)
		} else {
			u64(0)
		}
	}

	u64(s.frame)
	f64(s.elapsed)
	f64(s.spawner.Timer())
	for _, v := range s.player {
		f64(v)
	}
	u64(uint64(s.score))
	u64(uint64(s.spawned))
	u64(uint64(s.captured))
	u64(uint64(s.missed))
	b(s.paused)
	b(s.pause.Held())

	coins := s.field.Coins()
	u64(uint64(len(coins)))
	for _, c := range coins {
		u64(c.ID)
		for _, v := range c.Position {
			f64(v)
		}
		f64(c.Speed)
		u64(uint64(c.Outcome))
	}
	return hex.EncodeToString(h.Sum(nil))
}
