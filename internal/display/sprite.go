package display

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Resolver supplies a display sprite for a dot at the given position and
// on/off state. A false return means no sprite is available and the default
// for that state should be used.
type Resolver interface {
	Sprite(on bool, x, y int) (image.Image, bool)
}

// SVGSprites is a resolver backed by a pair of SVG files, "on.svg" and
// "off.svg", rasterized once at the cell size.
type SVGSprites struct {
	on  image.Image
	off image.Image
}

// LoadSVGSprites loads and rasterizes the sprite pair from a directory
func LoadSVGSprites(dir string, cell int) (*SVGSprites, error) {
	if cell <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cell)
	}

	on, err := rasterSVG(filepath.Join(dir, "on.svg"), cell)
	if err != nil {
		return nil, fmt.Errorf("failed to load on sprite: %w", err)
	}
	off, err := rasterSVG(filepath.Join(dir, "off.svg"), cell)
	if err != nil {
		return nil, fmt.Errorf("failed to load off sprite: %w", err)
	}

	return &SVGSprites{on: on, off: off}, nil
}

// Sprite returns the sprite for the on/off state. SVG sprite sets are
// position-independent.
func (s *SVGSprites) Sprite(on bool, x, y int) (image.Image, bool) {
	if on {
		return s.on, true
	}
	return s.off, true
}

// rasterSVG rasterizes one SVG file into a cell-sized RGBA image
func rasterSVG(path string, cell int) (image.Image, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(cell), float64(cell))
	img := image.NewRGBA(image.Rect(0, 0, cell, cell))
	scanner := rasterx.NewScannerGV(cell, cell, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(cell, cell, scanner), 1.0)

	return img, nil
}

type spriteKey struct {
	x, y int
	on   bool
}

// SpriteCache memoizes resolved sprites per dot position and state, and
// enforces the fixed cell size: a resolver sprite with mismatched
// dimensions is logged and replaced by the built-in default for the same
// on/off state. The resolver may be nil, in which case only the defaults
// are used.
type SpriteCache struct {
	resolver Resolver
	cell     int
	onDef    image.Image
	offDef   image.Image
	sprites  map[spriteKey]image.Image
}

// NewSpriteCache creates a cache for sprites of the given cell size
func NewSpriteCache(resolver Resolver, cell int) (*SpriteCache, error) {
	if cell <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cell)
	}
	return &SpriteCache{
		resolver: resolver,
		cell:     cell,
		onDef:    defaultSprite(true, cell),
		offDef:   defaultSprite(false, cell),
		sprites:  make(map[spriteKey]image.Image),
	}, nil
}

// Sprite returns the sprite for a dot, consulting the resolver at most once
// per (x, y, on) until the cache is invalidated.
func (c *SpriteCache) Sprite(on bool, x, y int) image.Image {
	key := spriteKey{x: x, y: y, on: on}
	if img, ok := c.sprites[key]; ok {
		return img
	}
	img := c.resolve(on, x, y)
	c.sprites[key] = img
	return img
}

// Invalidate drops all cached sprites so the resolver is consulted again
func (c *SpriteCache) Invalidate() {
	c.sprites = make(map[spriteKey]image.Image)
}

func (c *SpriteCache) resolve(on bool, x, y int) image.Image {
	if c.resolver != nil {
		if img, ok := c.resolver.Sprite(on, x, y); ok {
			b := img.Bounds()
			if b.Dx() == c.cell && b.Dy() == c.cell {
				return img
			}
			log.Printf("Warning: sprite for (%d,%d) on=%v is %dx%d, want %dx%d; using default",
				x, y, on, b.Dx(), b.Dy(), c.cell, c.cell)
		}
	}
	if on {
		return c.onDef
	}
	return c.offDef
}

// defaultSprite draws the built-in dot: a filled disc for on, a dim disc
// for off.
func defaultSprite(on bool, cell int) image.Image {
	fill := color.RGBA{R: 230, G: 40, B: 30, A: 255}
	if !on {
		fill = color.RGBA{R: 40, G: 12, B: 10, A: 255}
	}

	img := image.NewRGBA(image.Rect(0, 0, cell, cell))
	center := float64(cell-1) / 2
	radius := float64(cell) * 0.42
	for y := 0; y < cell; y++ {
		for x := 0; x < cell; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}
