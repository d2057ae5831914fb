package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrOutOfBounds     = errors.New("position is outside the board")
	ErrInvalidPlayer   = errors.New("tile state is not a player")
	ErrEmptyViewport   = errors.New("viewport has no area")
	ErrUnknownSprite   = errors.New("sprite index is not registered")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrUnsupportedHost = errors.New("unsupported host")
)
