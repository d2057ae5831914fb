package terminal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-sprites/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/input"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/raster"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/render"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/usecase"
)

const frameInterval = 16 * time.Millisecond

var ErrBufferSize = errors.New("pixel buffer does not match sprite size")

var inkStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)

// Terminal hosts the game in a terminal. Every cell shows two vertical
// pixels through half-block runes, and the last row holds the status line.
type Terminal struct {
	logger  *slog.Logger
	sprites []*raster.PixelBuffer
	scaled  map[scaleKey]*image.NRGBA
}

type scaleKey struct {
	handle        render.SpriteHandle
	width, height int
}

func New(logger *slog.Logger) *Terminal {
	return &Terminal{
		logger: logger.With("component", "terminal"),
		scaled: make(map[scaleKey]*image.NRGBA),
	}
}

// UploadSprite - keeps the buffer; scaled copies are built per cell size on demand.
func (that *Terminal) UploadSprite(width, height int, pix *raster.PixelBuffer) (render.SpriteHandle, error) {
	if pix == nil || pix.Width != width || pix.Height != height || len(pix.Pix) != width*height*4 {
		return 0, fmt.Errorf("%w: want %dx%d", ErrBufferSize, width, height)
	}

	that.sprites = append(that.sprites, pix)
	return render.SpriteHandle(len(that.sprites) - 1), nil
}

// Run - takes over the terminal until q, Esc or ctx cancellation.
func (that *Terminal) Run(ctx context.Context, manager *usecase.GameManager) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not init screen: %w", err)
	}
	defer screen.Fini()

	return that.run(ctx, screen, manager)
}

func (that *Terminal) run(ctx context.Context, screen tcell.Screen, manager *usecase.GameManager) error {
	screen.EnableMouse()
	screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	tracker := input.NewTracker()
	that.logger.Info("terminal host started")

	for {
		select {
		case <-ctx.Done():
			that.logger.Info("terminal host stopped")
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keyAction(ev) {
				case actionQuit:
					that.logger.Info("terminal host stopped")
					return nil
				case actionRestart:
					manager.Restart()
				case actionNone:
				}
			case *tcell.EventMouse:
				for _, e := range translateMouse(ev) {
					tracker.RegisterEvent(e)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if err := that.frame(screen, tracker, manager); err != nil {
				return err
			}
		}
	}
}

func (that *Terminal) frame(screen tcell.Screen, tracker *input.Tracker, manager *usecase.GameManager) error {
	cols, rows := screen.Size()

	state, err := tracker.Poll(viewport(cols, rows))
	switch {
	case errors.Is(err, apperror.ErrEmptyViewport):
		return nil
	case err != nil:
		return err
	}

	if err = manager.Update(state); err != nil {
		return err
	}

	groups, err := manager.Meshes()
	if err != nil {
		return err
	}

	that.draw(screen, groups, manager.Status())
	screen.Show()

	return nil
}

func (that *Terminal) draw(screen tcell.Screen, groups []render.RenderGroup, status string) {
	cols, rows := screen.Size()
	size := viewport(cols, rows)

	screen.Clear()
	ink := that.compose(groups, size)
	for y := 0; y < size.Height/2; y++ {
		for x := 0; x < size.Width; x++ {
			top := ink[(2*y)*size.Width+x]
			bottom := ink[(2*y+1)*size.Width+x]
			screen.SetContent(x, y, cellRune(top, bottom), nil, inkStyle)
		}
	}

	for x, r := range []rune(status) {
		if x >= cols {
			break
		}
		screen.SetContent(x, rows-1, r, nil, tcell.StyleDefault)
	}
}

// compose - rasterizes every group into a bitmap of size pixels, true where
// any sprite is opaque.
func (that *Terminal) compose(groups []render.RenderGroup, size input.Size) []bool {
	ink := make([]bool, max(size.Width*size.Height, 0))
	bounds := image.Rect(0, 0, size.Width, size.Height)

	for _, group := range groups {
		rect := render.ToPixels(group, size.Width, size.Height)
		sprite := that.scaledSprite(group.Sprite, rect.Dx(), rect.Dy())
		if sprite == nil {
			continue
		}

		visible := rect.Intersect(bounds)
		for y := visible.Min.Y; y < visible.Max.Y; y++ {
			for x := visible.Min.X; x < visible.Max.X; x++ {
				if sprite.NRGBAAt(x-rect.Min.X, y-rect.Min.Y).A > 127 {
					ink[y*size.Width+x] = true
				}
			}
		}
	}

	return ink
}

func (that *Terminal) scaledSprite(handle render.SpriteHandle, width, height int) *image.NRGBA {
	if int(handle) < 0 || int(handle) >= len(that.sprites) || width <= 0 || height <= 0 {
		return nil
	}

	key := scaleKey{handle: handle, width: width, height: height}
	if img, ok := that.scaled[key]; ok {
		return img
	}

	img := that.sprites[handle].Scale(width, height)
	that.scaled[key] = img

	return img
}

// viewport - the pixel size of the board area: every row but the status
// line, two pixels per row.
func viewport(cols, rows int) input.Size {
	return input.Size{Width: cols, Height: max(rows-1, 0) * 2}
}

func cellRune(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
