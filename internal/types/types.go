package types

import "image/color"

// Matrix represents a display backend the sign renders to
type Matrix interface {
	// Clear clears the matrix
	Clear() error
	// SetPixel sets a pixel at the given coordinates to the given color
	SetPixel(x, y int, c color.Color) error
	// Show updates the display with the current buffer
	Show() error
	// Close closes the matrix
	Close() error
}

// DisplayConfig represents the configuration for the display
type DisplayConfig struct {
	Width      int
	Height     int
	Brightness int
	Backend    string
	SpriteDir  string
}

// ScrollConfig represents the configuration for the scroll engine
type ScrollConfig struct {
	TickIntervalMs   int
	LookaheadColumns int
}

// FeedConfig represents the configuration for the text feed connection
type FeedConfig struct {
	Host              string
	Port              int
	ReconnectInterval int
}

// DiscoveryConfig represents the configuration for feed server discovery
type DiscoveryConfig struct {
	Port    int
	Timeout int
}
