package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-sprites/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/audio"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/config"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/platform/terminal"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/platform/window"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/raster"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/render"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/usecase"
)

type host interface {
	render.SpriteUploader
	Run(ctx context.Context, manager *usecase.GameManager) error
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	raster.SetLogger(logger)

	h, err := newHost(logger, conf)
	if err != nil {
		return err
	}

	controller, err := newController(conf.Game)
	if err != nil {
		return err
	}

	sprites, err := render.LoadSprites(ctx, h, render.SpriteOptions{
		Size:      conf.Sprite.Size,
		Thickness: conf.Sprite.Thickness,
	})
	if err != nil {
		return fmt.Errorf("could not load sprites: %w", err)
	}

	sounds := audio.New(logger, conf.Audio)
	defer sounds.Close()

	gameManager := usecase.NewGameManager(logger, controller, sprites, sounds)

	log.Info("Starting game", "host", conf.Host, "first_player", conf.Game.FirstPlayer, "click_mode", conf.Game.ClickMode)
	if err = h.Run(ctx, gameManager); err != nil {
		return fmt.Errorf("host error: %w", err)
	}

	log.Info("Game closed")
	return nil
}

func newHost(logger *slog.Logger, conf *config.Config) (host, error) {
	switch conf.Host {
	case config.HostWindow:
		return window.New(logger, conf.Window), nil
	case config.HostTerminal:
		return terminal.New(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnsupportedHost, conf.Host)
	}
}

func newController(conf config.Game) (*tictactoe.GameController, error) {
	first, ok := entity.ParseTileState(conf.FirstPlayer)
	if !ok {
		return nil, fmt.Errorf("%w: first player %q", apperror.ErrInvalidPlayer, conf.FirstPlayer)
	}

	mode, err := tictactoe.ParseClickMode(conf.ClickMode)
	if err != nil {
		return nil, err
	}

	return tictactoe.NewGameController(
		tictactoe.WithFirstPlayer(first),
		tictactoe.WithClickMode(mode),
	), nil
}
