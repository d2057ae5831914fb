package tictactoe

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-sprites/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/input"
)

var ErrUnknownClickMode = errors.New("unknown click mode")

// ClickMode decides which input state submits a move.
type ClickMode string

const (
	// ClickPress submits once per press of the left button.
	ClickPress ClickMode = "press"
	// ClickHold submits on every frame the left button is held; occupied
	// cells filter the repeats.
	ClickHold ClickMode = "hold"
)

func ParseClickMode(mode string) (ClickMode, error) {
	switch ClickMode(mode) {
	case ClickPress, ClickHold:
		return ClickMode(mode), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownClickMode, mode)
	}
}

// Placement is a renderable rectangle: top-left corner and size in
// normalized device coordinates plus an index into the host sprite table.
type Placement struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Sprite int     `json:"sprite"`
}

// Outcome describes what a frame did. Applied is false when no move was made.
type Outcome struct {
	Applied bool
	Col     int
	Row     int
	Player  entity.TileState
	Result  entity.Result
}

type Option func(*GameController)

// WithFirstPlayer - sets the mark that opens every game. Non-player states are ignored.
func WithFirstPlayer(player entity.TileState) Option {
	return func(that *GameController) {
		if player.IsPlayer() {
			that.firstPlayer = player
		}
	}
}

func WithClickMode(mode ClickMode) Option {
	return func(that *GameController) {
		that.clickMode = mode
	}
}

// GameController owns one game session: the board, the player to move, the
// turn counter and the append-only list of placements.
type GameController struct {
	board         entity.Board
	currentPlayer entity.TileState
	firstPlayer   entity.TileState
	turns         int
	placements    []Placement
	result        entity.Result
	clickMode     ClickMode
}

func NewGameController(opts ...Option) *GameController {
	that := &GameController{
		firstPlayer: entity.O,
		clickMode:   ClickPress,
	}

	for _, opt := range opts {
		opt(that)
	}

	that.Reset()

	return that
}

// Reset - starts a new game. Only the grid background placement is kept.
func (that *GameController) Reset() {
	that.board = entity.Board{}
	that.currentPlayer = that.firstPlayer
	that.turns = 0
	that.result = entity.Result{Status: entity.StatusInProgress}
	that.placements = append(that.placements[:0], Placement{
		X:      BoardLeft,
		Y:      BoardTop,
		Width:  BoardSpan,
		Height: BoardSpan,
		Sprite: SpriteGrid,
	})
}

// Update - runs one frame of game logic against an input snapshot.
// A frame without a click returns a zero Outcome and no error.
func (that *GameController) Update(state input.State) (Outcome, error) {
	if !that.clicked(state) {
		return Outcome{}, nil
	}

	col, row, err := CellAt(state.Position)
	if err != nil {
		return Outcome{}, err
	}

	player := that.currentPlayer
	result, err := that.MakeMove(col, row)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Applied: true,
		Col:     col,
		Row:     row,
		Player:  player,
		Result:  result,
	}, nil
}

// MakeMove - places the current player's mark on (col, row).
func (that *GameController) MakeMove(col, row int) (entity.Result, error) {
	if that.result.IsFinished() {
		return that.result, apperror.ErrGameFinished
	}

	if err := that.validateMove(col, row); err != nil {
		return that.result, fmt.Errorf("invalid move: %w", err)
	}

	sprite, err := SpriteFor(that.currentPlayer)
	if err != nil {
		return that.result, err
	}

	x, y := TileOrigin(col, row)
	that.placements = append(that.placements, Placement{
		X:      x,
		Y:      y,
		Width:  TileWidth,
		Height: TileHeight,
		Sprite: sprite,
	})
	that.board.UpdateTile(col, row, that.currentPlayer)

	that.updateGameStatus()

	return that.result, nil
}

// validateMove - checks bounds before emptiness so the board is never indexed out of range.
func (that *GameController) validateMove(col, row int) error {
	if !entity.InBounds(col, row) {
		return fmt.Errorf("%w: cell (%d, %d)", apperror.ErrOutOfBounds, col, row)
	}

	if that.board.Tile(col, row) != entity.Empty {
		return fmt.Errorf("%w: cell (%d, %d)", apperror.ErrCellOccupied, col, row)
	}

	return nil
}

func (that *GameController) updateGameStatus() {
	that.result = that.board.DetermineResult()
	if !that.result.IsFinished() {
		that.currentPlayer = that.currentPlayer.Opponent()
		that.turns++
	}
}

func (that *GameController) clicked(state input.State) bool {
	if that.clickMode == ClickHold {
		return state.Left
	}

	return state.LeftPressed
}

// Placements - returns a copy of the placement list, grid first.
func (that *GameController) Placements() []Placement {
	return slices.Clone(that.placements)
}

// Board - returns a copy of the board.
func (that *GameController) Board() entity.Board {
	return that.board
}

func (that *GameController) Result() entity.Result {
	return that.result
}

func (that *GameController) CurrentPlayer() entity.TileState {
	return that.currentPlayer
}

// Turns - the number of moves applied in the current game.
func (that *GameController) Turns() int {
	return that.turns
}
