// Package hub75 drives a HUB75 RGB LED panel through GPIO character-device
// lines. The panel is split into an upper and lower half that share row
// addressing, so every scan writes two pixels per column.
package hub75

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

const bytesPerPixel = 6 // R1 G1 B1 R2 G2 B2

// PinConfig holds the GPIO pin assignment for the panel
type PinConfig struct {
	R1  int // Red data for upper half
	G1  int // Green data for upper half
	B1  int // Blue data for upper half
	R2  int // Red data for lower half
	G2  int // Green data for lower half
	B2  int // Blue data for lower half
	CLK int // Clock signal
	OE  int // Output enable
	LAT int // Latch signal
	A   int // Address bit A
	B   int // Address bit B
	C   int // Address bit C
	D   int // Address bit D
	E   int // Address bit E
}

// DefaultPins returns the Adafruit RGB Matrix Bonnet pinout
func DefaultPins() PinConfig {
	return PinConfig{
		R1: 5, G1: 13, B1: 6,
		R2: 12, G2: 16, B2: 23,
		CLK: 17, OE: 4, LAT: 21,
		A: 22, B: 26, C: 27, D: 20, E: 24,
	}
}

// Config holds the configuration for the panel
type Config struct {
	Width  int
	Height int
	Chip   string
	Pins   PinConfig
}

// Matrix is a HUB75 panel exposed as a pixel matrix. Pixels are buffered
// off-screen and pushed to the panel on Show.
type Matrix struct {
	cfg   Config
	lines map[int]*gpiocdev.Line
	frame [][]byte
	mu    sync.Mutex
}

// New creates a panel matrix and requests its GPIO lines
func New(cfg *Config) (*Matrix, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Height%2 != 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d (height must be even)", cfg.Width, cfg.Height)
	}
	if cfg.Chip == "" {
		cfg.Chip = "gpiochip0"
	}

	m := &Matrix{
		cfg:   *cfg,
		lines: make(map[int]*gpiocdev.Line),
		frame: make([][]byte, cfg.Height/2),
	}
	for i := range m.frame {
		m.frame[i] = make([]byte, cfg.Width*bytesPerPixel)
	}

	pins := []int{
		cfg.Pins.R1, cfg.Pins.G1, cfg.Pins.B1,
		cfg.Pins.R2, cfg.Pins.G2, cfg.Pins.B2,
		cfg.Pins.CLK, cfg.Pins.OE, cfg.Pins.LAT,
		cfg.Pins.A, cfg.Pins.B, cfg.Pins.C, cfg.Pins.D, cfg.Pins.E,
	}
	for _, pin := range pins {
		line, err := gpiocdev.RequestLine(cfg.Chip, pin, gpiocdev.AsOutput(0))
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("failed to request GPIO pin %d: %w", pin, err)
		}
		m.lines[pin] = line
	}

	return m, nil
}

// Close releases all GPIO lines
func (m *Matrix) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for _, line := range m.lines {
		if line == nil {
			continue
		}
		if err := line.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.lines = make(map[int]*gpiocdev.Line)
	return firstErr
}

// Clear turns every pixel off in the frame buffer
func (m *Matrix) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.frame {
		for i := range row {
			row[i] = 0
		}
	}
	return nil
}

// SetPixel sets a pixel in the frame buffer. Colors are thresholded to one
// bit per channel, which is all the panel can show without temporal planes.
func (m *Matrix) SetPixel(x, y int, c color.Color) error {
	if x < 0 || x >= m.cfg.Width || y < 0 || y >= m.cfg.Height {
		return fmt.Errorf("coordinates out of bounds: (%d, %d)", x, y)
	}

	r, g, b, _ := c.RGBA()
	bits := [3]byte{bit(r), bit(g), bit(b)}

	m.mu.Lock()
	defer m.mu.Unlock()

	half := m.cfg.Height / 2
	idx := x * bytesPerPixel
	if y < half {
		copy(m.frame[y][idx:idx+3], bits[:])
	} else {
		copy(m.frame[y-half][idx+3:idx+6], bits[:])
	}
	return nil
}

func bit(channel uint32) byte {
	if channel >= 0x8000 {
		return 1
	}
	return 0
}

// Show scans the frame buffer out to the panel row by row
func (m *Matrix) Show() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for rowIdx, rowData := range m.frame {
		if err := m.scanRow(rowIdx, rowData); err != nil {
			return err
		}
		time.Sleep(50 * time.Microsecond)
	}
	return nil
}

// scanRow shifts one row of pixel data into the panel: address the row,
// blank the output, clock the column bits through, latch, re-enable.
func (m *Matrix) scanRow(rowIdx int, rowData []byte) error {
	addr := rowIdx & 0x1F
	addrPins := []struct {
		pin int
		val int
	}{
		{m.cfg.Pins.A, (addr >> 0) & 1},
		{m.cfg.Pins.B, (addr >> 1) & 1},
		{m.cfg.Pins.C, (addr >> 2) & 1},
		{m.cfg.Pins.D, (addr >> 3) & 1},
		{m.cfg.Pins.E, (addr >> 4) & 1},
	}
	for _, p := range addrPins {
		if err := m.setPin(p.pin, p.val); err != nil {
			return err
		}
	}

	if err := m.setPin(m.cfg.Pins.OE, 1); err != nil {
		return err
	}

	dataPins := [bytesPerPixel]int{
		m.cfg.Pins.R1, m.cfg.Pins.G1, m.cfg.Pins.B1,
		m.cfg.Pins.R2, m.cfg.Pins.G2, m.cfg.Pins.B2,
	}
	for col := 0; col < m.cfg.Width; col++ {
		idx := col * bytesPerPixel
		for i, pin := range dataPins {
			if err := m.setPin(pin, int(rowData[idx+i])); err != nil {
				return err
			}
		}
		if err := m.pulse(m.cfg.Pins.CLK); err != nil {
			return err
		}
	}

	if err := m.pulse(m.cfg.Pins.LAT); err != nil {
		return err
	}
	return m.setPin(m.cfg.Pins.OE, 0)
}

func (m *Matrix) setPin(pin, value int) error {
	line, ok := m.lines[pin]
	if !ok {
		return fmt.Errorf("GPIO pin %d not requested", pin)
	}
	return line.SetValue(value)
}

func (m *Matrix) pulse(pin int) error {
	if err := m.setPin(pin, 1); err != nil {
		return err
	}
	time.Sleep(time.Microsecond)
	return m.setPin(pin, 0)
}
