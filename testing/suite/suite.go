package suite

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-sprites/internal/input"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/raster"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/render"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/tictactoe"
)

const maxWaitDuration = 10 * time.Second

var ErrUploadRejected = errors.New("upload rejected")

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Uploader *Uploader
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	var out io.Writer = io.Discard
	if testing.Verbose() {
		out = os.Stdout
	}
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Uploader: &Uploader{},
	}
}

// Upload is one recorded UploadSprite call.
type Upload struct {
	Width  int
	Height int
	Pix    *raster.PixelBuffer
}

// Uploader is an in-memory render.SpriteUploader. Handles start at 100 so
// tests can tell them apart from sprite indices.
type Uploader struct {
	Uploads []Upload
	// FailAt makes the n-th upload (1-based) fail with ErrUploadRejected.
	FailAt int
}

func (that *Uploader) UploadSprite(width, height int, pix *raster.PixelBuffer) (render.SpriteHandle, error) {
	if that.FailAt > 0 && len(that.Uploads)+1 == that.FailAt {
		return 0, ErrUploadRejected
	}

	that.Uploads = append(that.Uploads, Upload{Width: width, Height: height, Pix: pix})
	return render.SpriteHandle(100 + len(that.Uploads) - 1), nil
}

// Click is the input state of a fresh left press on the center of a cell.
func Click(col, row int) input.State {
	state := Hold(col, row)
	state.LeftPressed = true

	return state
}

// Hold is the input state of a left button held over the center of a cell.
func Hold(col, row int) input.State {
	x, y := tictactoe.TileOrigin(col, row)

	return input.State{
		Left:     true,
		Position: input.Point{X: x + tictactoe.TileWidth/2, Y: y - tictactoe.TileHeight/2},
	}
}

// Moves plays cells in order through update, failing the test on any error.
func (that *Suite) Moves(update func(input.State) error, cells ...[2]int) {
	that.Helper()

	for _, cell := range cells {
		if err := update(Click(cell[0], cell[1])); err != nil {
			that.Fatalf("move (%d, %d): %v", cell[0], cell[1], err)
		}
	}
}
