package input

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-sprites/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_RegisterEvent(t *testing.T) {
	t.Run("Button state follows events", func(t *testing.T) {
		// Given: a fresh tracker
		tracker := NewTracker()

		// When: both buttons are pressed and the right one released
		tracker.RegisterEvent(Event{Kind: EventButton, Button: ButtonLeft, Pressed: true})
		tracker.RegisterEvent(Event{Kind: EventButton, Button: ButtonRight, Pressed: true})
		tracker.RegisterEvent(Event{Kind: EventButton, Button: ButtonRight, Pressed: false})

		// Then: the last write wins per button
		state, err := tracker.Poll(Size{Width: 100, Height: 100})
		require.NoError(t, err)
		assert.True(t, state.Left)
		assert.False(t, state.Right)
	})

	t.Run("Other buttons and resizes are ignored", func(t *testing.T) {
		tracker := NewTracker()

		tracker.RegisterEvent(Event{Kind: EventButton, Button: ButtonOther, Pressed: true})
		tracker.RegisterEvent(Event{Kind: EventResize, X: 640, Y: 480})

		state, err := tracker.Poll(Size{Width: 100, Height: 100})
		require.NoError(t, err)
		assert.Equal(t, State{Position: Point{X: -1, Y: 1}}, state)
	})

	t.Run("Press latch is consumed by Poll", func(t *testing.T) {
		// Given: a click that starts and ends between two polls
		tracker := NewTracker()
		tracker.RegisterEvent(Event{Kind: EventButton, Button: ButtonLeft, Pressed: true})
		tracker.RegisterEvent(Event{Kind: EventButton, Button: ButtonLeft, Pressed: false})

		// When: polling twice
		first, err := tracker.Poll(Size{Width: 10, Height: 10})
		require.NoError(t, err)
		second, err := tracker.Poll(Size{Width: 10, Height: 10})
		require.NoError(t, err)

		// Then: the press is reported once and the button is up
		assert.True(t, first.LeftPressed)
		assert.False(t, first.Left)
		assert.False(t, second.LeftPressed)
	})

	t.Run("Holding the button does not re-latch", func(t *testing.T) {
		tracker := NewTracker()
		tracker.RegisterEvent(Event{Kind: EventButton, Button: ButtonLeft, Pressed: true})
		_, err := tracker.Poll(Size{Width: 10, Height: 10})
		require.NoError(t, err)

		// When: the host repeats the pressed state
		tracker.RegisterEvent(Event{Kind: EventButton, Button: ButtonLeft, Pressed: true})
		state, err := tracker.Poll(Size{Width: 10, Height: 10})
		require.NoError(t, err)

		// Then: the button is held but no new press is reported
		assert.True(t, state.Left)
		assert.False(t, state.LeftPressed)
	})
}

func TestTracker_Position(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		size     Size
		expected Point
	}{
		{name: "Top left corner", px: 0, py: 0, size: Size{800, 600}, expected: Point{X: -1, Y: 1}},
		{name: "Bottom right corner", px: 800, py: 600, size: Size{800, 600}, expected: Point{X: 1, Y: -1}},
		{name: "Center", px: 400, py: 300, size: Size{800, 600}, expected: Point{X: 0, Y: 0}},
		{name: "Quarter", px: 200, py: 150, size: Size{800, 600}, expected: Point{X: -0.5, Y: 0.5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a pointer at a device position
			tracker := NewTracker()
			tracker.RegisterEvent(Event{Kind: EventPointerMove, X: tc.px, Y: tc.py})

			// When: converting for the viewport
			pos, err := tracker.Position(tc.size)

			// Then: the normalized position has y flipped
			require.NoError(t, err)
			assert.InDelta(t, tc.expected.X, pos.X, 1e-9)
			assert.InDelta(t, tc.expected.Y, pos.Y, 1e-9)
		})
	}

	t.Run("Conversion uses the size given at call time", func(t *testing.T) {
		tracker := NewTracker()
		tracker.RegisterEvent(Event{Kind: EventPointerMove, X: 100, Y: 100})

		small, err := tracker.Position(Size{200, 200})
		require.NoError(t, err)
		large, err := tracker.Position(Size{400, 400})
		require.NoError(t, err)

		assert.Equal(t, Point{X: 0, Y: 0}, small)
		assert.Equal(t, Point{X: -0.5, Y: 0.5}, large)
	})

	t.Run("Empty viewport", func(t *testing.T) {
		tracker := NewTracker()

		_, err := tracker.Position(Size{0, 600})
		require.ErrorIs(t, err, apperror.ErrEmptyViewport)

		_, err = tracker.Poll(Size{800, -1})
		require.ErrorIs(t, err, apperror.ErrEmptyViewport)
	})
}
