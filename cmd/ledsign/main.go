package main

import (
	"context"
	"errors"
	"flag"
	"image/color"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fcurrie/ledsign-golang/internal/config"
	"github.com/fcurrie/ledsign-golang/internal/discovery"
	"github.com/fcurrie/ledsign-golang/internal/display"
	"github.com/fcurrie/ledsign-golang/internal/feed"
	"github.com/fcurrie/ledsign-golang/internal/glyph"
	"github.com/fcurrie/ledsign-golang/internal/scroll"
	"github.com/fcurrie/ledsign-golang/internal/types"
	"github.com/fcurrie/ledsign-golang/pkg/hub75"
	"github.com/fcurrie/ledsign-golang/pkg/termmatrix"
)

func main() {
	configPath := flag.String("config", "config.json", "path to config file")
	text := flag.String("text", "", "scroll a fixed message instead of connecting to a feed")
	backend := flag.String("backend", "", "display backend: term or hub75 (overrides config)")
	discover := flag.Bool("discover", false, "scan the local network for a feed server")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Failed to load config from %s: %v", *configPath, err)
		log.Printf("Using default configuration")
		cfg = config.DefaultConfig()
	}
	if *backend != "" {
		cfg.Display.Backend = *backend
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		cancel()
	}()

	if *discover {
		scanner := discovery.NewScanner(cfg.Discovery)
		results, err := scanner.Scan(ctx)
		if err != nil {
			log.Fatalf("Discovery failed: %v", err)
		}
		if len(results) == 0 {
			log.Fatalf("No feed server found on port %d", cfg.Discovery.Port)
		}
		log.Printf("Discovered feed server at %s:%d", results[0].Host, results[0].Port)
		cfg.Feed.Host = results[0].Host
		cfg.Feed.Port = results[0].Port
	}

	// Build the producer
	var producer display.Producer
	if *text != "" {
		producer = feed.NewStatic(*text, 32).Next
	} else {
		client := feed.NewClient(cfg.Feed)
		if err := client.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to feed: %v", err)
		}
		defer client.Close()
		producer = client.Next
	}

	// Build the display backend
	matrix, progress, err := buildBackend(cfg)
	if err != nil {
		log.Fatalf("Failed to create display backend: %v", err)
	}
	defer matrix.Close()

	renderer, err := display.NewMatrixRenderer(matrix, cfg.Display.Height,
		color.RGBA{R: 255, A: 255}, color.RGBA{R: 24, A: 255})
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	buffer := scroll.NewBuffer(feed.Formatter)
	driver, err := display.NewDriver(display.Config{
		TickInterval:   time.Duration(cfg.Scroll.TickIntervalMs) * time.Millisecond,
		VisibleColumns: cfg.Display.Width,
		Lookahead:      cfg.Scroll.LookaheadColumns,
	}, glyph.Default, buffer, renderer, producer, progress)
	if err != nil {
		log.Fatalf("Failed to create driver: %v", err)
	}

	if err := driver.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Driver stopped: %v", err)
	}
}

// buildBackend creates the configured matrix backend and a progress sink
// that is safe to use with it. The terminal backend owns the screen, so its
// progress updates stay silent; hardware backends log them.
func buildBackend(cfg *config.Config) (types.Matrix, display.ProgressFunc, error) {
	switch cfg.Display.Backend {
	case "hub75":
		matrix, err := hub75.New(&hub75.Config{
			Width:  cfg.Display.Width,
			Height: cfg.Display.Height,
			Pins:   hub75.DefaultPins(),
		})
		if err != nil {
			return nil, nil, err
		}
		progress := func(chars int) { log.Printf("Scrolled past %d characters", chars) }
		return matrix, progress, nil
	default:
		matrix, err := termmatrix.New(&termmatrix.Config{
			Width:      cfg.Display.Width,
			Height:     cfg.Display.Height,
			Brightness: cfg.Display.Brightness,
		})
		if err != nil {
			return nil, nil, err
		}
		return matrix, nil, nil
	}
}
