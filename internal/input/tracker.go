package input

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-sprites/internal/apperror"
)

type EventKind uint8

const (
	EventButton EventKind = iota
	EventPointerMove
	EventResize
)

type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonOther
)

// Event is a raw host event. X and Y are device pixels with y growing
// downward; Pressed is meaningful for EventButton only.
type Event struct {
	Kind    EventKind
	Button  Button
	Pressed bool
	X, Y    float64
}

// Size is the viewport size in device pixels.
type Size struct {
	Width, Height int
}

// Point is a position in normalized device coordinates: [-1, 1] on both
// axes, origin at the viewport center, y growing upward.
type Point struct {
	X, Y float64
}

// State is a snapshot handed to the game once per frame.
type State struct {
	Left  bool
	Right bool
	// LeftPressed is set once per press of the left button.
	LeftPressed bool
	Position    Point
}

// Tracker keeps the latest button and pointer state. There is no queue:
// only the most recent state survives between polls, apart from the press
// latch which remembers that a press happened since the last Poll.
type Tracker struct {
	left  bool
	right bool
	// pressed latches a left-button press until the next Poll.
	pressed bool
	px, py  float64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// RegisterEvent - applies a host event, last write wins.
func (that *Tracker) RegisterEvent(ev Event) {
	switch ev.Kind {
	case EventButton:
		switch ev.Button {
		case ButtonLeft:
			if ev.Pressed && !that.left {
				that.pressed = true
			}
			that.left = ev.Pressed
		case ButtonRight:
			that.right = ev.Pressed
		case ButtonOther:
		}
	case EventPointerMove:
		that.px, that.py = ev.X, ev.Y
	case EventResize:
		// the viewport size is supplied by the caller at poll time
	}
}

// Position - converts the raw pointer position to normalized device
// coordinates for a viewport of the given size.
func (that *Tracker) Position(size Size) (Point, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return Point{}, fmt.Errorf("%w: %dx%d", apperror.ErrEmptyViewport, size.Width, size.Height)
	}

	return ToNormalized(that.px, that.py, size), nil
}

// Poll - returns the current state and clears the press latch.
func (that *Tracker) Poll(size Size) (State, error) {
	pos, err := that.Position(size)
	if err != nil {
		return State{}, err
	}

	state := State{
		Left:        that.left,
		Right:       that.right,
		LeftPressed: that.pressed,
		Position:    pos,
	}
	that.pressed = false

	return state, nil
}

// ToNormalized maps device pixels to normalized device coordinates.
// The caller guarantees a non-empty size.
func ToNormalized(px, py float64, size Size) Point {
	return Point{
		X: (px/float64(size.Width))*2 - 1,
		Y: -((py/float64(size.Height))*2 - 1),
	}
}
