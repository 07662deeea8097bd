package display

import (
	"fmt"
	"image/color"

	"github.com/fcurrie/ledsign-golang/internal/glyph"
	"github.com/fcurrie/ledsign-golang/internal/scroll"
	"github.com/fcurrie/ledsign-golang/internal/types"
)

// MatrixRenderer draws projected frames onto a pixel matrix backend,
// with the text band centered vertically on panels taller than the glyphs.
type MatrixRenderer struct {
	matrix  types.Matrix
	on      color.Color
	off     color.Color
	originY int
}

// NewMatrixRenderer creates a renderer for a matrix of the given height.
// The glyph rows are centered vertically; the height must fit them.
func NewMatrixRenderer(matrix types.Matrix, height int, on, off color.Color) (*MatrixRenderer, error) {
	if matrix == nil {
		return nil, fmt.Errorf("nil matrix")
	}
	if height < glyph.Rows {
		return nil, fmt.Errorf("matrix height %d is below the glyph height %d", height, glyph.Rows)
	}
	return &MatrixRenderer{
		matrix:  matrix,
		on:      on,
		off:     off,
		originY: (height - glyph.Rows) / 2,
	}, nil
}

// Render pushes one frame to the matrix. The frame is already a complete
// projection, so a failed pixel write aborts before Show and the previous
// image stays on the display.
func (r *MatrixRenderer) Render(frame scroll.Frame) error {
	for x, col := range frame.Columns {
		for row := 0; row < glyph.Rows; row++ {
			c := r.off
			if col.Glyph.LightAt(col.Offset, row) {
				c = r.on
			}
			if err := r.matrix.SetPixel(x, r.originY+row, c); err != nil {
				return err
			}
		}
	}
	return r.matrix.Show()
}
