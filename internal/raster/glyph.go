package raster

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidSize      = errors.New("sprite size must be positive")
	ErrInvalidThickness = errors.New("stroke thickness must be a finite non-negative number")
	ErrUnknownGlyph     = errors.New("unknown glyph")
)

// Glyph selects one of the procedural sprites.
type Glyph uint8

const (
	GlyphGrid Glyph = iota
	GlyphX
	GlyphO
)

func (that Glyph) String() string {
	switch that {
	case GlyphGrid:
		return "grid"
	case GlyphX:
		return "x"
	case GlyphO:
		return "o"
	default:
		return fmt.Sprintf("glyph(%d)", uint8(that))
	}
}

// Draw rasterizes glyph into a width x height buffer with strokes thickness pixels wide.
func Draw(glyph Glyph, width, height int, thickness float64) (*PixelBuffer, error) {
	switch glyph {
	case GlyphGrid:
		return DrawGrid(width, height, thickness)
	case GlyphX:
		return DrawX(width, height, thickness)
	case GlyphO:
		return DrawO(width, height, thickness)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownGlyph, glyph)
	}
}

// DrawGrid draws a "#": two horizontal and two vertical bands at the thirds.
func DrawGrid(width, height int, thickness float64) (*PixelBuffer, error) {
	if err := validate(width, height, thickness); err != nil {
		return nil, err
	}

	half := thickness / 2
	hl1 := float64(height) / 3
	hl2 := hl1 * 2
	vl1 := float64(width) / 3
	vl2 := vl1 * 2

	buf := newPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		fy := float64(y)
		onRow := near(fy, hl1, half) || near(fy, hl2, half)
		for x := 0; x < width; x++ {
			fx := float64(x)
			buf.paint(onRow || near(fx, vl1, half) || near(fx, vl2, half))
		}
	}

	logger().Debug("rasterized glyph", "glyph", GlyphGrid, "width", width, "height", height)
	return buf, nil
}

// DrawX draws two crossing diagonals scaled to the aspect ratio.
func DrawX(width, height int, thickness float64) (*PixelBuffer, error) {
	if err := validate(width, height, thickness); err != nil {
		return nil, err
	}

	half := thickness / 2
	slope := float64(width) / float64(height)

	buf := newPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		ux := slope * float64(y)
		dx := float64(width) - ux
		for x := 0; x < width; x++ {
			fx := float64(x)
			buf.paint(near(fx, ux, half) || near(fx, dx, half))
		}
	}

	logger().Debug("rasterized glyph", "glyph", GlyphX, "width", width, "height", height)
	return buf, nil
}

// DrawO draws a ring by inverse-mapping every row onto the arc: the row is
// normalized into [-1, 1] and the two x positions come from cos(asin(sy)).
func DrawO(width, height int, thickness float64) (*PixelBuffer, error) {
	if err := validate(width, height, thickness); err != nil {
		return nil, err
	}

	half := thickness / 2

	buf := newPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		ux, dx := CircleSpan(RowToUnit(y, height), width)
		for x := 0; x < width; x++ {
			fx := float64(x)
			buf.paint(near(fx, ux, half) || near(fx, dx, half))
		}
	}

	logger().Debug("rasterized glyph", "glyph", GlyphO, "width", width, "height", height)
	return buf, nil
}

// RowToUnit maps row y of height rows into [-1, 1]; the first row is -1 and
// the last row is +1 so the ring closes at both poles.
func RowToUnit(y, height int) float64 {
	if height <= 1 {
		return 0
	}

	return float64(y)/float64(height-1)*2 - 1
}

// CircleSpan returns the left and right x positions of the ring on the row
// at normalized height sy. sy is clamped to [-1, 1] so asin never sees a
// value outside its domain; at the poles both positions equal width/2.
func CircleSpan(sy float64, width int) (float64, float64) {
	if math.IsNaN(sy) {
		sy = 0
	}
	sy = math.Max(-1, math.Min(1, sy))

	halfWidth := float64(width) / 2
	offset := math.Cos(math.Asin(sy)) * halfWidth
	// cos(asin(±1)) leaves a residue around 1e-17.
	if math.Abs(sy) == 1 {
		offset = 0
	}

	dx := halfWidth + offset
	ux := float64(width) - dx
	return ux, dx
}

func (that *PixelBuffer) paint(foreground bool) {
	if foreground {
		that.push(Foreground)
		return
	}
	that.push(Background)
}

func near(v, center, half float64) bool {
	return center-half <= v && v <= center+half
}

func validate(width, height int, thickness float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	if thickness < 0 || math.IsNaN(thickness) || math.IsInf(thickness, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidThickness, thickness)
	}

	return nil
}
