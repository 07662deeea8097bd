package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/fcurrie/ledsign-golang/internal/display"
	"github.com/fcurrie/ledsign-golang/internal/feed"
	"github.com/fcurrie/ledsign-golang/internal/glyph"
	"github.com/fcurrie/ledsign-golang/internal/scroll"
)

func main() {
	text := flag.String("text", "HELLO WORLD", "message to render")
	out := flag.String("out", "sign.png", "output PNG path")
	cell := flag.Int("cell", 8, "pixels per dot")
	sprites := flag.String("sprites", "", "directory with on.svg/off.svg dot sprites")
	columns := flag.Int("columns", 0, "visible dot-columns (0 = full message width)")
	offset := flag.Int("offset", 0, "scroll offset in dot-columns")
	flag.Parse()

	buffer := scroll.NewBuffer(feed.Formatter)
	buffer.Append(*text)

	state, err := scroll.NewState(glyph.Default, 60, buffer.Text())
	if err != nil {
		log.Fatalf("Failed to create scroll state: %v", err)
	}
	for i := 0; i < *offset; i++ {
		state = state.Advance()
	}

	cols := *columns
	if cols <= 0 {
		cols = len(buffer.Text()) * glyph.Default.Width()
	}

	var resolver display.Resolver
	if *sprites != "" {
		svg, err := display.LoadSVGSprites(*sprites, *cell)
		if err != nil {
			log.Fatalf("Failed to load sprites: %v", err)
		}
		resolver = svg
	}
	cache, err := display.NewSpriteCache(resolver, *cell)
	if err != nil {
		log.Fatalf("Failed to create sprite cache: %v", err)
	}

	renderer, err := display.NewImageRenderer(cache, cols)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	if err := renderer.Render(state.Project(cols)); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	file, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer file.Close()
	if err := png.Encode(file, renderer.Image()); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}
	log.Printf("Wrote %s (%d columns at %d px per dot)", *out, cols, *cell)
}
