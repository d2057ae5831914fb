package entity

// TileState is the content of a board cell. X and O double as player marks,
// Empty is never a valid active player.
type TileState uint8

const (
	Empty TileState = iota
	X
	O
)

func (that TileState) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "-"
	}
}

// IsPlayer - reports whether the state can own a turn.
func (that TileState) IsPlayer() bool {
	return that == X || that == O
}

// Opponent - returns the other player mark. Empty has no opponent.
func (that TileState) Opponent() TileState {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseTileState - parses a player mark as written in configuration.
func ParseTileState(mark string) (TileState, bool) {
	switch mark {
	case "X", "x":
		return X, true
	case "O", "o":
		return O, true
	default:
		return Empty, false
	}
}
