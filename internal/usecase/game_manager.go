package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-sprites/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/audio"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/input"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/render"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/tictactoe"
)

type gameController interface {
	Update(state input.State) (tictactoe.Outcome, error)
	Placements() []tictactoe.Placement
	Result() entity.Result
	CurrentPlayer() entity.TileState
	Reset()
}

type soundPlayer interface {
	Play(cue audio.Cue)
}

// GameManager is what a host talks to every frame: it forwards input to the
// controller, turns placements into render groups and reports game events.
type GameManager struct {
	logger *slog.Logger

	controller gameController
	sprites    render.SpriteTable
	sounds     soundPlayer
}

func NewGameManager(logger *slog.Logger, controller gameController, sprites render.SpriteTable, sounds soundPlayer) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game"),

		controller: controller,
		sprites:    sprites,
		sounds:     sounds,
	}
}

// Update - runs one frame. Rejected moves are expected during play and are
// not returned as errors.
func (that *GameManager) Update(state input.State) error {
	outcome, err := that.controller.Update(state)
	if err != nil {
		if isRejection(err) {
			that.logger.Debug("move rejected", "error", err)
			// a held button in hold mode would otherwise buzz every frame
			if state.LeftPressed {
				that.sounds.Play(audio.CueReject)
			}

			return nil
		}

		return fmt.Errorf("failed update game: %w", err)
	}

	if !outcome.Applied {
		return nil
	}

	that.logger.Debug("move applied", "player", outcome.Player.String(), "col", outcome.Col, "row", outcome.Row)
	that.sounds.Play(placeCue(outcome.Player))

	switch outcome.Result.Status {
	case entity.StatusWon:
		that.logger.Info("game finished", "result", outcome.Result.String(), "winner", outcome.Result.Winner.String())
		that.sounds.Play(audio.CueWin)
	case entity.StatusDraw:
		that.logger.Info("game finished", "result", outcome.Result.String())
		that.sounds.Play(audio.CueDraw)
	case entity.StatusInProgress:
	}

	return nil
}

// Meshes - the render groups for the current frame.
func (that *GameManager) Meshes() ([]render.RenderGroup, error) {
	groups, err := render.Meshes(that.controller.Placements(), that.sprites)
	if err != nil {
		return nil, fmt.Errorf("failed build meshes: %w", err)
	}

	return groups, nil
}

// Restart - starts a new game on the same board.
func (that *GameManager) Restart() {
	that.controller.Reset()
	that.logger.Info("game restarted", "first", that.controller.CurrentPlayer().String())
}

// Status - a one-line description for the host to display.
func (that *GameManager) Status() string {
	if result := that.controller.Result(); result.IsFinished() {
		return result.String() + " - press R to restart"
	}

	return that.controller.CurrentPlayer().String() + " to move"
}

func (that *GameManager) Finished() bool {
	return that.controller.Result().IsFinished()
}

func isRejection(err error) bool {
	return errors.Is(err, apperror.ErrOutOfBounds) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrGameFinished)
}

func placeCue(player entity.TileState) audio.Cue {
	if player == entity.X {
		return audio.CuePlaceX
	}

	return audio.CuePlaceO
}
