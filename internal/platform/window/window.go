package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/rocketscienceinc/tictactoe-sprites/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/config"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/input"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/raster"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/render"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/usecase"
)

var ErrBufferSize = errors.New("pixel buffer does not match sprite size")

var (
	clearColor  = color.RGBA{R: 0xf4, G: 0xf1, B: 0xea, A: 0xff}
	statusColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// Window hosts the game in an ebiten window. Sprites must be uploaded
// before Run.
type Window struct {
	logger  *slog.Logger
	conf    config.Window
	sprites []*ebiten.Image
}

func New(logger *slog.Logger, conf config.Window) *Window {
	return &Window{
		logger: logger.With("component", "window"),
		conf:   conf,
	}
}

// UploadSprite - copies the buffer into a new ebiten image. The NRGBA view
// lets ebiten convert straight alpha to its premultiplied format.
func (that *Window) UploadSprite(width, height int, pix *raster.PixelBuffer) (render.SpriteHandle, error) {
	if err := checkBuffer(width, height, pix); err != nil {
		return 0, err
	}

	that.sprites = append(that.sprites, ebiten.NewImageFromImage(pix.Image()))

	handle := render.SpriteHandle(len(that.sprites) - 1)
	that.logger.Debug("sprite uploaded", "handle", int(handle), "width", width, "height", height)

	return handle, nil
}

func checkBuffer(width, height int, pix *raster.PixelBuffer) error {
	if pix == nil || pix.Width != width || pix.Height != height || len(pix.Pix) != width*height*4 {
		return fmt.Errorf("%w: want %dx%d", ErrBufferSize, width, height)
	}

	return nil
}

// Run - opens the window and blocks until it is closed or ctx is done.
func (that *Window) Run(ctx context.Context, manager *usecase.GameManager) error {
	ebiten.SetWindowSize(that.conf.Width, that.conf.Height)
	ebiten.SetWindowTitle(that.conf.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{
		ctx:     ctx,
		logger:  that.logger,
		manager: manager,
		sprites: that.sprites,
		tracker: input.NewTracker(),
		face:    text.NewGoXFace(basicfont.Face7x13),
		size:    input.Size{Width: that.conf.Width, Height: that.conf.Height},
	}

	that.logger.Info("window opened", "width", that.conf.Width, "height", that.conf.Height)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window loop failed: %w", err)
	}

	that.logger.Info("window closed")
	return nil
}

// game implements ebiten.Game. Update and Draw run on the same goroutine.
type game struct {
	ctx     context.Context
	logger  *slog.Logger
	manager *usecase.GameManager
	sprites []*ebiten.Image
	tracker *input.Tracker
	face    *text.GoXFace
	size    input.Size

	cursorX, cursorY int
}

func (g *game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.manager.Restart()
	}

	g.collectEvents()

	state, err := g.tracker.Poll(g.size)
	if err != nil {
		if errors.Is(err, apperror.ErrEmptyViewport) {
			// minimized
			return nil
		}
		return err
	}

	return g.manager.Update(state)
}

// collectEvents - turns ebiten's polled state into tracker events.
func (g *game) collectEvents() {
	if x, y := ebiten.CursorPosition(); x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.tracker.RegisterEvent(input.Event{Kind: input.EventPointerMove, X: float64(x), Y: float64(y)})
	}

	buttons := []struct {
		ebiten ebiten.MouseButton
		button input.Button
	}{
		{ebiten.MouseButtonLeft, input.ButtonLeft},
		{ebiten.MouseButtonRight, input.ButtonRight},
	}
	for _, b := range buttons {
		switch {
		case inpututil.IsMouseButtonJustPressed(b.ebiten):
			g.tracker.RegisterEvent(input.Event{Kind: input.EventButton, Button: b.button, Pressed: true})
		case inpututil.IsMouseButtonJustReleased(b.ebiten):
			g.tracker.RegisterEvent(input.Event{Kind: input.EventButton, Button: b.button, Pressed: false})
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)

	groups, err := g.manager.Meshes()
	if err != nil {
		g.logger.Error("could not build meshes", "error", err)
		return
	}

	for _, group := range groups {
		if int(group.Sprite) < 0 || int(group.Sprite) >= len(g.sprites) {
			g.logger.Error("unknown sprite handle", "handle", int(group.Sprite))
			continue
		}
		sprite := g.sprites[group.Sprite]

		rect := render.ToPixels(group, g.size.Width, g.size.Height)
		if rect.Empty() {
			continue
		}

		sw, sh := sprite.Bounds().Dx(), sprite.Bounds().Dy()
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Scale(float64(rect.Dx())/float64(sw), float64(rect.Dy())/float64(sh))
		op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
		screen.DrawImage(sprite, op)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 6)
	op.ColorScale.ScaleWithColor(statusColor)
	text.Draw(screen, g.manager.Status(), g.face, op)
}

// Layout - the screen follows the window so the board stretches with it.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.size.Width || outsideHeight != g.size.Height {
		g.tracker.RegisterEvent(input.Event{Kind: input.EventResize, X: float64(outsideWidth), Y: float64(outsideHeight)})
		g.size = input.Size{Width: outsideWidth, Height: outsideHeight}
	}

	return outsideWidth, outsideHeight
}
