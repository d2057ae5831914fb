package raster

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPure(t *testing.T, buf *PixelBuffer) {
	t.Helper()

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := buf.At(x, y)
			if c != Foreground && c != Background {
				t.Fatalf("pixel (%d,%d) is %v", x, y, c)
			}
		}
	}
}

func TestDrawGrid(t *testing.T) {
	sizes := [][2]int{{120, 120}, {100, 90}, {7, 7}, {64, 200}}
	thicknesses := []float64{1, 2, 5}

	for _, size := range sizes {
		for _, thickness := range thicknesses {
			w, h := size[0], size[1]
			t.Run(fmt.Sprintf("%dx%d t=%v", w, h, thickness), func(t *testing.T) {
				// When: drawing the grid
				buf, err := DrawGrid(w, h, thickness)
				require.NoError(t, err)

				// Then: exactly w*h pixels are produced
				assert.Len(t, buf.Pix, w*h*4)
				assert.Equal(t, w, buf.Width)
				assert.Equal(t, h, buf.Height)

				// Then: every pixel is either foreground or background
				assertPure(t, buf)

				// Then: pixels on the band centers are foreground
				vl1 := int(math.Round(float64(w) / 3))
				vl2 := int(math.Round(float64(w) * 2 / 3))
				hl1 := int(math.Round(float64(h) / 3))
				hl2 := int(math.Round(float64(h) * 2 / 3))
				for y := 0; y < h; y++ {
					assert.Equal(t, Foreground, buf.At(vl1, y))
					assert.Equal(t, Foreground, buf.At(vl2, y))
				}
				for x := 0; x < w; x++ {
					assert.Equal(t, Foreground, buf.At(x, hl1))
					assert.Equal(t, Foreground, buf.At(x, hl2))
				}
			})
		}
	}

	t.Run("Cells are background", func(t *testing.T) {
		buf, err := DrawGrid(120, 120, 5)
		require.NoError(t, err)

		assert.Equal(t, Background, buf.At(0, 0))
		assert.Equal(t, Background, buf.At(60, 60))
		assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 0}, buf.At(119, 119))
	})
}

func TestDrawX(t *testing.T) {
	// When: drawing an X
	buf, err := DrawX(120, 120, 5)
	require.NoError(t, err)

	// Then: the buffer has the requested size and only two colors
	assert.Len(t, buf.Pix, 120*120*4)
	assertPure(t, buf)

	// Then: both diagonals are inked and the edges between them are not
	assert.Equal(t, Foreground, buf.At(0, 0))
	assert.Equal(t, Foreground, buf.At(60, 60))
	assert.Equal(t, Foreground, buf.At(119, 1))
	assert.Equal(t, Foreground, buf.At(1, 119))
	assert.Equal(t, Background, buf.At(60, 0))
	assert.Equal(t, Background, buf.At(0, 60))

	t.Run("Wide sprites scale the slope", func(t *testing.T) {
		buf, err := DrawX(200, 100, 3)
		require.NoError(t, err)

		// ux = 2*y on a 2:1 sprite
		assert.Equal(t, Foreground, buf.At(100, 50))
		assert.Equal(t, Foreground, buf.At(40, 20))
		assert.Equal(t, Foreground, buf.At(160, 20))
		assert.Equal(t, Background, buf.At(20, 40))
	})
}

func TestDrawO(t *testing.T) {
	// When: drawing an O
	buf, err := DrawO(120, 120, 5)
	require.NoError(t, err)

	// Then: the buffer is exactly 120x120 and pure
	assert.Len(t, buf.Pix, 120*120*4)
	assertPure(t, buf)

	// Then: the ring closes at both poles and the center is empty
	assert.Equal(t, Foreground, buf.At(60, 0))
	assert.Equal(t, Foreground, buf.At(60, 119))
	assert.Equal(t, Background, buf.At(60, 60))
	assert.Equal(t, Background, buf.At(0, 0))

	// Then: the ring touches the sides at the equator
	assert.Equal(t, Foreground, buf.At(0, 60))
	assert.Equal(t, Foreground, buf.At(119, 60))
}

func TestCircleSpan(t *testing.T) {
	t.Run("Poles collapse to the center column", func(t *testing.T) {
		for _, height := range []int{2, 7, 120} {
			for _, y := range []int{0, height - 1} {
				// When: computing the candidates on a pole row
				ux, dx := CircleSpan(RowToUnit(y, height), 120)

				// Then: both equal width/2 and neither is NaN
				assert.False(t, math.IsNaN(ux))
				assert.False(t, math.IsNaN(dx))
				assert.InDelta(t, 60.0, ux, 1e-9)
				assert.InDelta(t, 60.0, dx, 1e-9)
			}
		}
	})

	t.Run("Out of domain values are clamped", func(t *testing.T) {
		for _, sy := range []float64{-1.0000001, 1.0000001, 5, math.Inf(1), math.NaN()} {
			ux, dx := CircleSpan(sy, 100)

			assert.False(t, math.IsNaN(ux), "sy=%v", sy)
			assert.False(t, math.IsNaN(dx), "sy=%v", sy)
		}
	})

	t.Run("Equator spans the full width", func(t *testing.T) {
		ux, dx := CircleSpan(0, 100)

		assert.InDelta(t, 0.0, ux, 1e-9)
		assert.InDelta(t, 100.0, dx, 1e-9)
	})

	t.Run("Row mapping", func(t *testing.T) {
		assert.Equal(t, -1.0, RowToUnit(0, 10))
		assert.Equal(t, 1.0, RowToUnit(9, 10))
		assert.Equal(t, 0.0, RowToUnit(0, 1))
	})
}

func TestDraw_Errors(t *testing.T) {
	t.Run("Zero size", func(t *testing.T) {
		_, err := Draw(GlyphX, 0, 10, 1)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("Negative size", func(t *testing.T) {
		_, err := Draw(GlyphO, 10, -1, 1)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("Bad thickness", func(t *testing.T) {
		for _, thickness := range []float64{-1, math.NaN(), math.Inf(1)} {
			_, err := Draw(GlyphGrid, 10, 10, thickness)
			assert.ErrorIs(t, err, ErrInvalidThickness)
		}
	})

	t.Run("Unknown glyph", func(t *testing.T) {
		_, err := Draw(Glyph(42), 10, 10, 1)
		require.ErrorIs(t, err, ErrUnknownGlyph)
		assert.Contains(t, err.Error(), "glyph(42)")
	})
}

func TestPixelBuffer_Scale(t *testing.T) {
	// Given: a rasterized grid
	buf, err := DrawGrid(120, 120, 6)
	require.NoError(t, err)

	// When: it is scaled down
	img := buf.Scale(30, 15)

	// Then: the image has the new size and the stencil stays binary
	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 15, img.Bounds().Dy())
	inked := 0
	for y := 0; y < 15; y++ {
		for x := 0; x < 30; x++ {
			a := img.NRGBAAt(x, y).A
			assert.True(t, a == 0 || a == 255, "pixel (%d,%d) has alpha %d", x, y, a)
			if a == 255 {
				inked++
			}
		}
	}
	assert.Positive(t, inked)

	t.Run("Empty target", func(t *testing.T) {
		img := buf.Scale(0, 4)
		assert.True(t, img.Bounds().Empty())
	})

	t.Run("Image copies the pixels", func(t *testing.T) {
		img := buf.Image()
		img.Pix[0] = 7

		assert.NotEqual(t, uint8(7), buf.Pix[0])
	})
}
