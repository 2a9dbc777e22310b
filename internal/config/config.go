// Package config provides YAML-based game configuration loading, schema
// validation and difficulty presets for coinfall.
package config

import "github.com/go-gl/mathgl/mgl64"

// CoinsConfig contains all tunables of the coin field.
type CoinsConfig struct {
	Spawn   SpawnConfig   `yaml:"spawn" json:"spawn"`
	Coin    CoinConfig    `yaml:"coin" json:"coin"`
	Player  PlayerConfig  `yaml:"player" json:"player"`
	World   WorldConfig   `yaml:"world" json:"world"`
	Camera  CameraConfig  `yaml:"camera" json:"camera"`
	HUD     HUDConfig     `yaml:"hud" json:"hud"`
	Session SessionConfig `yaml:"session" json:"session"`
}

// SpawnConfig controls where and how often coins appear.
type SpawnConfig struct {
	Interval  float64        `yaml:"interval" json:"interval"` // Seconds between spawns
	Center    PositionConfig `yaml:"center" json:"center"`     // Footprint center (Y ignored)
	Footprint AreaConfig     `yaml:"footprint" json:"footprint"`
	Height    float64        `yaml:"height" json:"height"` // Spawn Y
}

// CoinConfig controls coin motion and collection.
type CoinConfig struct {
	BaseSpeed        float64 `yaml:"base_speed" json:"base_speed"`         // Minimum fall rate (units/s)
	SpeedJitter      float64 `yaml:"speed_jitter" json:"speed_jitter"`     // Random addend range [0, jitter)
	FloorY           float64 `yaml:"floor_y" json:"floor_y"`               // Below this a coin is a miss
	CaptureRadius    float64 `yaml:"capture_radius" json:"capture_radius"` // Distance below which the player collects
	CompactThreshold int     `yaml:"compact_threshold" json:"compact_threshold"`
	SpinRate         float64 `yaml:"spin_rate" json:"spin_rate"` // Visual spin, radians/s
}

// PlayerConfig controls the player point.
type PlayerConfig struct {
	Speed float64        `yaml:"speed" json:"speed"` // Units per second
	Start PositionConfig `yaml:"start" json:"start"`
}

// WorldConfig describes the static scene.
type WorldConfig struct {
	GroundY      float64 `yaml:"ground_y" json:"ground_y"`
	GroundSize   float64 `yaml:"ground_size" json:"ground_size"`
	MaxFrameStep float64 `yaml:"max_frame_step" json:"max_frame_step"` // Front-end clamp on elapsed time
}

// CameraConfig describes the follow camera.
type CameraConfig struct {
	Offset PositionConfig `yaml:"offset" json:"offset"`
	FOV    float64        `yaml:"fov" json:"fov"` // Vertical, degrees
	Near   float64        `yaml:"near" json:"near"`
	Far    float64        `yaml:"far" json:"far"`
}

// HUDConfig controls the score bar.
type HUDConfig struct {
	MaxScore int `yaml:"max_score" json:"max_score"` // Score at which the bar is full
}

// SessionConfig controls round length.
type SessionConfig struct {
	Duration float64 `yaml:"duration" json:"duration"` // Seconds, 0 = endless
}

// PositionConfig is a point in world space.
type PositionConfig struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Vec3 converts the position to a vector.
func (p PositionConfig) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// AreaConfig is a horizontal extent on the X/Z plane.
type AreaConfig struct {
	X float64 `yaml:"x" json:"x"`
	Z float64 `yaml:"z" json:"z"`
}
