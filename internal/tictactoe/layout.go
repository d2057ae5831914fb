package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-sprites/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sprites/internal/input"
)

// Board geometry in normalized device coordinates. Row 0 is the bottom row.
const (
	TileWidth  = 0.5
	TileHeight = 0.5
	BoardLeft  = -0.75
	BoardTop   = 0.75
	BoardSpan  = TileWidth * entity.BoardSize
)

// Sprite table indices.
const (
	SpriteGrid = iota
	SpriteX
	SpriteO
)

// SpriteFor - returns the sprite index of a player mark.
func SpriteFor(player entity.TileState) (int, error) {
	switch player {
	case entity.X:
		return SpriteX, nil
	case entity.O:
		return SpriteO, nil
	default:
		return 0, fmt.Errorf("%w: %s", apperror.ErrInvalidPlayer, player)
	}
}

// CellAt - maps a normalized position to a board cell. The bounds are
// validated before any index is produced.
func CellAt(p input.Point) (int, int, error) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) ||
		math.Abs(p.X) > BoardLeft+BoardSpan || math.Abs(p.Y) > BoardTop {
		return 0, 0, fmt.Errorf("%w: (%.3f, %.3f)", apperror.ErrOutOfBounds, p.X, p.Y)
	}

	col := int(math.Floor((p.X - BoardLeft) / TileWidth))
	row := int(math.Floor((p.Y - (BoardTop - BoardSpan)) / TileHeight))

	// the right and top edges belong to the last cell
	col = min(col, entity.BoardSize-1)
	row = min(row, entity.BoardSize-1)

	if !entity.InBounds(col, row) {
		return 0, 0, fmt.Errorf("%w: cell (%d, %d)", apperror.ErrOutOfBounds, col, row)
	}

	return col, row, nil
}

// TileOrigin - returns the top-left corner of a cell.
func TileOrigin(col, row int) (float64, float64) {
	return BoardLeft + float64(col)*TileWidth, BoardTop - BoardSpan + float64(row+1)*TileHeight
}
