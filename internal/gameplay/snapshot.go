package gameplay

import "github.com/go-gl/mathgl/mgl64"

// CoinView is the render-facing view of a live coin.
type CoinView struct {
	ID       uint64     `json:"id"`
	Position mgl64.Vec3 `json:"pos"`
	Spin     float64    `json:"spin"` // Rotation about Y, radians
}

// Snapshot is an immutable copy of what a renderer or spectator needs.
type Snapshot struct {
	Frame         uint64     `json:"frame"`
	Elapsed       float64    `json:"elapsed"`
	Player        mgl64.Vec3 `json:"player"`
	Camera        mgl64.Vec3 `json:"camera"`
	Coins         []CoinView `json:"coins"`
	Score         int        `json:"score"`
	Spawned       int        `json:"spawned"`
	Missed        int        `json:"missed"`
	Paused        bool       `json:"paused"`
	ScoreFraction float64    `json:"score_fraction"`
}

// Snapshot copies the live coins and counters. Collected coins are omitted.
func (s *State) Snapshot() Snapshot {
	coins := s.field.Coins()
	views := make([]CoinView, 0, s.field.Live())
	spin := s.elapsed * s.cfg.Coin.SpinRate
	for _, c := range coins {
		if c.Collected {
			continue
		}
		views = append(views, CoinView{ID: c.ID, Position: c.Position, Spin: spin})
	}
	return Snapshot{
		Frame:         s.frame,
		Elapsed:       s.elapsed,
		Player:        s.player,
		Camera:        s.cam.Position,
		Coins:         views,
		Score:         s.score,
		Spawned:       s.spawned,
		Missed:        s.missed,
		Paused:        s.paused,
		ScoreFraction: s.ScoreFraction(),
	}
}
