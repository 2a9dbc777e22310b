package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the coin field renderer.
const (
	ColorDefault    Color = iota
	ColorSkyHigh          // upper sky band
	ColorSkyLow           // sky near the horizon
	ColorGround           // ground grid lines
	ColorGroundFill       // ground surface
	ColorPlayer
	ColorCoin
	ColorCoinFar // coins far from the camera
	ColorHUDBar
	ColorHUDTrack
	ColorText
	ColorOverlay
)

// ANSI returns the ANSI 256 color code string for the palette entry.
// ColorDefault returns an empty string (terminal default).
func (c Color) ANSI() string {
	switch c {
	case ColorSkyHigh:
		return "24"
	case ColorSkyLow:
		return "67"
	case ColorGround:
		return "250"
	case ColorGroundFill:
		return "240"
	case ColorPlayer:
		return "15"
	case ColorCoin:
		return "220"
	case ColorCoinFar:
		return "178"
	case ColorHUDBar:
		return "78"
	case ColorHUDTrack:
		return "238"
	case ColorText:
		return "252"
	case ColorOverlay:
		return "229"
	default:
		return ""
	}
}
