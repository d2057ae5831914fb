package entity

const BoardSize = 3

// WinLines lists every winning line as (col, row) pairs.
var WinLines = [][3][2]int{
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Board is a 3x3 grid indexed [row][col]. The zero value is an empty board.
type Board struct {
	Tiles [BoardSize][BoardSize]TileState `json:"tiles"`
}

// InBounds - reports whether (col, row) addresses a cell.
func InBounds(col, row int) bool {
	return col >= 0 && col < BoardSize && row >= 0 && row < BoardSize
}

// Tile - returns the state of the cell at (col, row).
func (that Board) Tile(col, row int) TileState {
	return that.Tiles[row][col]
}

// UpdateTile - writes state into the cell at (col, row) without validation.
// Callers must check bounds and emptiness first.
func (that *Board) UpdateTile(col, row int, state TileState) {
	that.Tiles[row][col] = state
}

func (that Board) CheckRowWin(row int) bool {
	return sameMark(that.Tiles[row][0], that.Tiles[row][1], that.Tiles[row][2])
}

func (that Board) CheckColumnWin(col int) bool {
	return sameMark(that.Tiles[0][col], that.Tiles[1][col], that.Tiles[2][col])
}

// CheckLeftDiagonal - (0,0) through (2,2), bottom-left to top-right.
func (that Board) CheckLeftDiagonal() bool {
	return sameMark(that.Tiles[0][0], that.Tiles[1][1], that.Tiles[2][2])
}

// CheckRightDiagonal - (2,0) through (0,2), bottom-right to top-left.
func (that Board) CheckRightDiagonal() bool {
	return sameMark(that.Tiles[0][2], that.Tiles[1][1], that.Tiles[2][0])
}

// CheckWin - returns the mark that completed a line, if any.
func (that Board) CheckWin() (TileState, bool) {
	for _, line := range WinLines {
		a := that.Tile(line[0][0], line[0][1])
		b := that.Tile(line[1][0], line[1][1])
		c := that.Tile(line[2][0], line[2][1])
		if sameMark(a, b, c) {
			return a, true
		}
	}

	return Empty, false
}

func (that Board) IsFull() bool {
	for _, row := range that.Tiles {
		for _, tile := range row {
			if tile == Empty {
				return false
			}
		}
	}

	return true
}

// DetermineResult - a win takes precedence over a full board.
func (that Board) DetermineResult() Result {
	if winner, ok := that.CheckWin(); ok {
		return Won(winner)
	}

	if that.IsFull() {
		return Result{Status: StatusDraw}
	}

	return Result{Status: StatusInProgress}
}

func sameMark(a, b, c TileState) bool {
	return a != Empty && a == b && b == c
}
