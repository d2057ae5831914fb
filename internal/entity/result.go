package entity

type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDraw
)

// Result is the observable state of a game. Winner is set only for StatusWon.
type Result struct {
	Status Status    `json:"status"`
	Winner TileState `json:"winner"`
}

func Won(player TileState) Result {
	return Result{Status: StatusWon, Winner: player}
}

func (that Result) IsFinished() bool {
	return that.Status != StatusInProgress
}

func (that Result) String() string {
	switch that.Status {
	case StatusWon:
		return that.Winner.String() + " wins"
	case StatusDraw:
		return "draw"
	default:
		return "in progress"
	}
}
