// Package termmatrix renders an LED matrix in a terminal using tcell.
// Each terminal cell carries two vertical pixels via the upper-half-block
// rune, so a 64x8 sign fits in a 64x4 character window.
package termmatrix

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Config holds the configuration for the terminal matrix
type Config struct {
	Width      int
	Height     int
	Brightness int
}

// Matrix is a terminal-backed pixel matrix
type Matrix struct {
	screen     tcell.Screen
	width      int
	height     int
	brightness int
	pixels     []color.Color
	ownsScreen bool
	mu         sync.Mutex
}

// New creates a terminal matrix on a fresh tcell screen
func New(cfg *Config) (*Matrix, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	m, err := NewWithScreen(screen, cfg)
	if err != nil {
		return nil, err
	}
	m.ownsScreen = true
	return m, nil
}

// NewWithScreen creates a terminal matrix on an existing screen. The screen
// must not be initialized yet; tests pass a tcell.SimulationScreen here.
func NewWithScreen(screen tcell.Screen, cfg *Config) (*Matrix, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Brightness < 0 || cfg.Brightness > 255 {
		return nil, fmt.Errorf("brightness must be between 0 and 255")
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	brightness := cfg.Brightness
	if brightness == 0 {
		brightness = 255
	}

	return &Matrix{
		screen:     screen,
		width:      cfg.Width,
		height:     cfg.Height,
		brightness: brightness,
		pixels:     make([]color.Color, cfg.Width*cfg.Height),
	}, nil
}

// Close releases the terminal
func (m *Matrix) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen.Fini()
	return nil
}

// Clear turns every pixel off
func (m *Matrix) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.pixels {
		m.pixels[i] = nil
	}
	return nil
}

// SetPixel sets a pixel at the given coordinates to the given color
func (m *Matrix) SetPixel(x, y int, c color.Color) error {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return fmt.Errorf("coordinates out of bounds: (%d, %d)", x, y)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pixels[y*m.width+x] = c
	return nil
}

// Show pushes the pixel buffer to the terminal
func (m *Matrix) Show() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for ty := 0; ty < (m.height+1)/2; ty++ {
		for x := 0; x < m.width; x++ {
			upper := m.cellColor(x, 2*ty)
			lower := m.cellColor(x, 2*ty+1)
			style := tcell.StyleDefault.Foreground(upper).Background(lower)
			m.screen.SetContent(x, ty, '▀', nil, style)
		}
	}
	m.screen.Show()
	return nil
}

// SetBrightness sets the brightness applied to all pixels on Show
func (m *Matrix) SetBrightness(brightness int) error {
	if brightness < 0 || brightness > 255 {
		return fmt.Errorf("brightness must be between 0 and 255")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.brightness = brightness
	return nil
}

// GetBrightness returns the current brightness
func (m *Matrix) GetBrightness() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.brightness
}

// GetDimensions returns the dimensions of the matrix
func (m *Matrix) GetDimensions() (width, height int) {
	return m.width, m.height
}

// cellColor converts a buffered pixel to a brightness-scaled tcell color.
// Unset pixels and the row below an odd height are black.
func (m *Matrix) cellColor(x, y int) tcell.Color {
	if y >= m.height {
		return tcell.ColorBlack
	}
	c := m.pixels[y*m.width+x]
	if c == nil {
		return tcell.ColorBlack
	}
	r, g, b, _ := c.RGBA()
	scale := uint32(m.brightness)
	return tcell.NewRGBColor(
		int32(r>>8*scale/255),
		int32(g>>8*scale/255),
		int32(b>>8*scale/255),
	)
}
