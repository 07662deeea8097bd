package display

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fcurrie/ledsign-golang/internal/glyph"
	"github.com/fcurrie/ledsign-golang/internal/scroll"
)

// Producer supplies more text when the display is about to run dry. It is
// called with the number of source characters fed so far and may return an
// empty string to signal that no more data is available.
type Producer func(afterFed int) string

// ProgressFunc is notified when more characters have fully scrolled
// off-screen. It is called at most once per tick and only on increase.
type ProgressFunc func(chars int)

// FrameRenderer pushes a projected frame to a display backend
type FrameRenderer interface {
	Render(frame scroll.Frame) error
}

// Config represents the configuration for the tick driver
type Config struct {
	TickInterval   time.Duration
	VisibleColumns int
	Lookahead      int
}

// Driver owns the scroll state and the text buffer and advances them on a
// fixed cadence: advance, top up if needed, project, render, report.
type Driver struct {
	cfg      Config
	font     *glyph.Font
	buffer   *scroll.Buffer
	renderer FrameRenderer
	producer Producer
	progress ProgressFunc

	state        scroll.State
	started      bool
	lastReported int
}

// NewDriver creates a tick driver. The producer and progress callbacks may
// be nil; a nil producer behaves as one that never supplies data.
func NewDriver(cfg Config, font *glyph.Font, buffer *scroll.Buffer, renderer FrameRenderer, producer Producer, progress ProgressFunc) (*Driver, error) {
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("tick interval must be positive, got %v", cfg.TickInterval)
	}
	if cfg.VisibleColumns <= 0 {
		return nil, fmt.Errorf("visible columns must be positive, got %d", cfg.VisibleColumns)
	}
	if buffer == nil {
		return nil, fmt.Errorf("nil buffer")
	}
	if renderer == nil {
		return nil, fmt.Errorf("nil renderer")
	}

	state, err := scroll.NewState(font, cfg.Lookahead, buffer.Text())
	if err != nil {
		return nil, err
	}

	return &Driver{
		cfg:      cfg,
		font:     font,
		buffer:   buffer,
		renderer: renderer,
		producer: producer,
		progress: progress,
		state:    state,
	}, nil
}

// Start runs the tick loop until the context is cancelled or the scroll
// reaches the terminal state. Render failures are logged, not fatal.
func (d *Driver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done, err := d.Tick()
			if err != nil {
				log.Printf("Failed to render: %v", err)
			}
			if done {
				log.Println("Scroll exhausted, stopping")
				return nil
			}
		}
	}
}

// Tick runs one scroll step and reports whether the terminal state was
// reached. It is exposed so callers can drive the engine without a timer.
func (d *Driver) Tick() (done bool, err error) {
	if d.started {
		d.state = d.state.Advance()
	} else {
		d.started = true
	}

	if d.state.NeedsMoreData() {
		appended := false
		if d.producer != nil {
			appended = d.buffer.Append(d.producer(d.buffer.FedLength()))
		}
		// Re-derive against the (possibly larger) buffer at the same
		// offset so the lookahead check saw the top-up result.
		d.state = d.state.WithText(d.buffer.Text(), !appended)
	}

	if d.state.Exhausted() {
		return true, nil
	}

	frame := d.state.Project(d.cfg.VisibleColumns)
	if err := d.renderer.Render(frame); err != nil {
		return false, err
	}

	reportable := frame.ReportableLength
	if fed := d.buffer.FedLength(); reportable > fed {
		reportable = fed
	}
	if d.progress != nil && reportable > d.lastReported {
		d.lastReported = reportable
		d.progress(reportable)
	}
	return false, nil
}

// Reset restarts the scroll from scratch: the buffer is cleared and the
// current scroll state is discarded.
func (d *Driver) Reset() {
	d.buffer.Reset()
	d.state, _ = scroll.NewState(d.font, d.cfg.Lookahead, d.buffer.Text())
	d.started = false
	d.lastReported = 0
}
