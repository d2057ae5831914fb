package render

import (
	"context"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/rocketscienceinc/tictactoe-sprites/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/raster"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/tictactoe"
)

// SpriteHandle is an opaque reference to a sprite owned by a host.
type SpriteHandle int

// SpriteUploader is implemented by hosts that can take ownership of a pixel buffer.
type SpriteUploader interface {
	UploadSprite(width, height int, pix *raster.PixelBuffer) (SpriteHandle, error)
}

// SpriteTable maps placement sprite indices to host handles.
type SpriteTable []SpriteHandle

// RenderGroup is one textured quad: top-left corner and size in normalized
// device coordinates.
type RenderGroup struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Sprite SpriteHandle
}

type SpriteOptions struct {
	Size      int
	Thickness float64
}

// glyphOrder matches the tictactoe sprite indices.
var glyphOrder = [...]raster.Glyph{
	tictactoe.SpriteGrid: raster.GlyphGrid,
	tictactoe.SpriteX:    raster.GlyphX,
	tictactoe.SpriteO:    raster.GlyphO,
}

// LoadSprites - rasterizes every glyph concurrently and uploads the results in
// sprite index order.
func LoadSprites(ctx context.Context, uploader SpriteUploader, opts SpriteOptions) (SpriteTable, error) {
	buffers := make([]*raster.PixelBuffer, len(glyphOrder))
	errs := make([]error, len(glyphOrder))

	var wg sync.WaitGroup
	for i, glyph := range glyphOrder {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buffers[i], errs[i] = raster.Draw(glyph, opts.Size, opts.Size, opts.Thickness)
		}()
	}
	wg.Wait()

	table := make(SpriteTable, 0, len(glyphOrder))
	for i, glyph := range glyphOrder {
		if errs[i] != nil {
			return nil, fmt.Errorf("failed to rasterize %s: %w", glyph, errs[i])
		}

		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("sprite loading canceled: %w", err)
		}

		handle, err := uploader.UploadSprite(opts.Size, opts.Size, buffers[i])
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s sprite: %w", glyph, err)
		}
		table = append(table, handle)
	}

	return table, nil
}

// Meshes - resolves placements against the sprite table into a fresh slice.
func Meshes(placements []tictactoe.Placement, table SpriteTable) ([]RenderGroup, error) {
	groups := make([]RenderGroup, 0, len(placements))
	for _, p := range placements {
		if p.Sprite < 0 || p.Sprite >= len(table) {
			return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownSprite, p.Sprite)
		}

		groups = append(groups, RenderGroup{
			X:      p.X,
			Y:      p.Y,
			Width:  p.Width,
			Height: p.Height,
			Sprite: table[p.Sprite],
		})
	}

	return groups, nil
}

// ToPixels - converts a group to a device pixel rectangle for a viewport of
// width x height, y growing downward.
func ToPixels(group RenderGroup, width, height int) image.Rectangle {
	x0 := (group.X + 1) / 2 * float64(width)
	y0 := (1 - group.Y) / 2 * float64(height)
	x1 := (group.X + group.Width + 1) / 2 * float64(width)
	y1 := (1 - group.Y + group.Height) / 2 * float64(height)

	return image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x1)), int(math.Round(y1)),
	)
}
