package display

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/fcurrie/ledsign-golang/internal/glyph"
	"github.com/fcurrie/ledsign-golang/internal/scroll"
)

// ImageRenderer renders frames into an RGBA image, one sprite per dot.
// Used by the PNG tool and anywhere a raster of the sign is needed.
type ImageRenderer struct {
	cache *SpriteCache
	cell  int
	cols  int
	img   *image.RGBA
}

// NewImageRenderer creates a renderer producing images of
// visibleColumns*cell x glyph.Rows*cell pixels.
func NewImageRenderer(cache *SpriteCache, visibleColumns int) (*ImageRenderer, error) {
	if cache == nil {
		return nil, fmt.Errorf("nil sprite cache")
	}
	if visibleColumns <= 0 {
		return nil, fmt.Errorf("visible columns must be positive, got %d", visibleColumns)
	}
	cell := cache.cell
	return &ImageRenderer{
		cache: cache,
		cell:  cell,
		cols:  visibleColumns,
		img:   image.NewRGBA(image.Rect(0, 0, visibleColumns*cell, glyph.Rows*cell)),
	}, nil
}

// Render draws one frame into the image buffer
func (r *ImageRenderer) Render(frame scroll.Frame) error {
	if len(frame.Columns) != r.cols {
		return fmt.Errorf("frame has %d columns, want %d", len(frame.Columns), r.cols)
	}

	background := image.NewUniform(color.Black)
	xdraw.Draw(r.img, r.img.Bounds(), background, image.Point{}, xdraw.Src)

	for x, col := range frame.Columns {
		for row := 0; row < glyph.Rows; row++ {
			sprite := r.cache.Sprite(col.Glyph.LightAt(col.Offset, row), x, row)
			rect := image.Rect(x*r.cell, row*r.cell, (x+1)*r.cell, (row+1)*r.cell)
			xdraw.Draw(r.img, rect, sprite, sprite.Bounds().Min, xdraw.Over)
		}
	}
	return nil
}

// Image returns the most recently rendered frame image
func (r *ImageRenderer) Image() image.Image {
	return r.img
}
