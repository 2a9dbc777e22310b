package config

import (
	_ "embed"
)

//go:embed defaults/coins.yaml
var defaultCoinsYAML []byte

// DefaultCoinsConfig returns the built-in coin field configuration.
// It matches defaults/coins.yaml and is the fallback if the embedded
// document cannot be decoded.
func DefaultCoinsConfig() CoinsConfig {
	return CoinsConfig{
		Spawn: SpawnConfig{
			Interval:  0.3,
			Center:    PositionConfig{X: 10, Y: 0, Z: 10},
			Footprint: AreaConfig{X: 18, Z: 18},
			Height:    10,
		},
		Coin: CoinConfig{
			BaseSpeed:        2.0,
			SpeedJitter:      1.0,
			FloorY:           -1.0,
			CaptureRadius:    0.8,
			CompactThreshold: 32,
			SpinRate:         3.0,
		},
		Player: PlayerConfig{
			Speed: 5.0,
		},
		World: WorldConfig{
			GroundY:      -1.0,
			GroundSize:   20.0,
			MaxFrameStep: 0.25,
		},
		Camera: CameraConfig{
			Offset: PositionConfig{X: 0, Y: 2, Z: 6},
			FOV:    45,
			Near:   0.1,
			Far:    100,
		},
		HUD: HUDConfig{
			MaxScore: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultCoinsYAML
}
