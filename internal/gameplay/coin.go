package gameplay

import "github.com/go-gl/mathgl/mgl64"

// Outcome records how a coin left play.
type Outcome uint8

const (
	OutcomeNone     Outcome = iota // Still falling
	OutcomeCaptured                // Reached by the player, scored
	OutcomeMissed                  // Fell below the floor, not scored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCaptured:
		return "captured"
	case OutcomeMissed:
		return "missed"
	default:
		return "live"
	}
}

// Coin is a falling collectible.
type Coin struct {
	ID        uint64
	Position  mgl64.Vec3
	Speed     float64 // Fall rate, units per second
	Collected bool
	Outcome   Outcome
}

// collect marks the coin as out of play. A collected coin is never revived.
func (c *Coin) collect(o Outcome) {
	c.Collected = true
	c.Outcome = o
}

// CoinField stores coins in play. Collected coins stay in place (skipped by
// updates and renderers) until the number of dead entries reaches the
// compaction threshold; then they are swap-removed in one pass.
type CoinField struct {
	coins     []Coin
	dead      int
	threshold int
}

// NewCoinField creates a field that compacts once threshold collected coins
// have accumulated. A threshold of 0 compacts after every update.
func NewCoinField(threshold int) *CoinField {
	if threshold < 0 {
		threshold = 0
	}
	return &CoinField{
		coins:     make([]Coin, 0, 64),
		threshold: threshold,
	}
}

// Add appends a coin.
func (f *CoinField) Add(c Coin) {
	f.coins = append(f.coins, c)
	if c.Collected {
		f.dead++
	}
}

// Coins returns the stored coins, including collected ones that have not
// been compacted yet. Callers must not retain the slice across updates.
func (f *CoinField) Coins() []Coin {
	return f.coins
}

// Len returns the number of stored coins.
func (f *CoinField) Len() int {
	return len(f.coins)
}

// Live returns the number of coins still falling.
func (f *CoinField) Live() int {
	return len(f.coins) - f.dead
}

// Dead returns the number of collected coins awaiting compaction.
func (f *CoinField) Dead() int {
	return f.dead
}

// markCollected records a coin transition; i indexes Coins().
func (f *CoinField) markCollected(i int, o Outcome) {
	if f.coins[i].Collected {
		return
	}
	f.coins[i].collect(o)
	f.dead++
}

// maybeCompact compacts when the dead count has reached the threshold.
func (f *CoinField) maybeCompact() int {
	if f.dead == 0 || f.dead < f.threshold {
		return 0
	}
	return f.Compact()
}

// Compact removes every collected coin by swapping in the last entry.
// Order of the remaining coins is not preserved. Returns coins removed.
func (f *CoinField) Compact() int {
	removed := 0
	for i := 0; i < len(f.coins); {
		if !f.coins[i].Collected {
			i++
			continue
		}
		last := len(f.coins) - 1
		f.coins[i] = f.coins[last]
		f.coins = f.coins[:last]
		removed++
	}
	f.dead = 0
	return removed
}

// Reset empties the field, keeping its capacity.
func (f *CoinField) Reset() {
	f.coins = f.coins[:0]
	f.dead = 0
}
