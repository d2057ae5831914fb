package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	// Foreground is opaque black; the alpha channel doubles as a stencil.
	Foreground = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	// Background is fully transparent white.
	Background = color.NRGBA{R: 255, G: 255, B: 255, A: 0}
)

// PixelBuffer is a row-major RGBA8 image, Width*Height*4 bytes.
// Buffers returned by this package must not be modified.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

func newPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 0, width*height*4),
	}
}

func (that *PixelBuffer) push(c color.NRGBA) {
	that.Pix = append(that.Pix, c.R, c.G, c.B, c.A)
}

// At returns the pixel at (x, y), or Background outside the buffer.
func (that *PixelBuffer) At(x, y int) color.NRGBA {
	if x < 0 || x >= that.Width || y < 0 || y >= that.Height {
		return Background
	}

	i := (y*that.Width + x) * 4
	return color.NRGBA{R: that.Pix[i], G: that.Pix[i+1], B: that.Pix[i+2], A: that.Pix[i+3]}
}

// Image wraps a copy of the pixels as an *image.NRGBA.
func (that *PixelBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, that.Width, that.Height))
	copy(img.Pix, that.Pix)
	return img
}

// Scale resamples the buffer to width x height with nearest-neighbour
// filtering, which keeps every alpha value at 0 or 255.
func (that *PixelBuffer) Scale(width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if width <= 0 || height <= 0 {
		return dst
	}

	draw.NearestNeighbor.Scale(dst, dst.Bounds(), that.Image(), image.Rect(0, 0, that.Width, that.Height), draw.Src, nil)
	return dst
}
