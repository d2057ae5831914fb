package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-sprites/internal/input"
)

type action uint8

const (
	actionNone action = iota
	actionQuit
	actionRestart
)

func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return actionQuit
		case 'r', 'R':
			return actionRestart
		}
	}

	return actionNone
}

// translateMouse - a tcell mouse event carries the full button mask, so it
// becomes a pointer move plus the current state of both buttons. The pointer
// lands on the center of the cell's two pixels.
func translateMouse(ev *tcell.EventMouse) []input.Event {
	x, y := ev.Position()
	buttons := ev.Buttons()

	return []input.Event{
		{Kind: input.EventPointerMove, X: float64(x) + 0.5, Y: float64(y)*2 + 1},
		{Kind: input.EventButton, Button: input.ButtonLeft, Pressed: buttons&tcell.Button1 != 0},
		{Kind: input.EventButton, Button: input.ButtonRight, Pressed: buttons&tcell.Button2 != 0},
	}
}
