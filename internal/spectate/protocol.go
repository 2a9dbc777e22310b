// Package spectate streams live rounds to read-only watchers over
// websockets. The game loop publishes snapshots; the hub fans them out and
// drops frames for watchers that cannot keep up.
package spectate

import (
	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/gameplay"
)

// ProtocolVersion is bumped on incompatible message changes.
const ProtocolVersion = 1

// MsgFrame is the type tag of FrameMsg.
const MsgFrame = "FRAME"

// Bootstrap describes the round being broadcast. Watchers need the tuning to
// place the camera and ground the same way the player sees them.
type Bootstrap struct {
	ProtocolVersion int                `json:"protocol_version"`
	Mode            string             `json:"mode"`
	Title           string             `json:"title"`
	Difficulty      string             `json:"difficulty"`
	Config          config.CoinsConfig `json:"config"`
}

// FrameMsg carries one published snapshot.
type FrameMsg struct {
	Type            string            `json:"type"`
	ProtocolVersion int               `json:"protocol_version"`
	Snapshot        gameplay.Snapshot `json:"snapshot"`
	Remaining       float64           `json:"remaining"` // Seconds, negative when endless
	GameOver        bool              `json:"game_over"`
}
