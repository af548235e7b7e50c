package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/beam/spotlight"
)

// inputState is what changed on the devices since the previous tick.
type inputState struct {
	X, Y            int
	ButtonsPressed  int
	ButtonsReleased int
	KeysPressed     int
	KeysReleased    int
}

func readInput() inputState {
	var s inputState
	s.X, s.Y = ebiten.CursorPosition()
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if inpututil.IsMouseButtonJustPressed(b) {
			s.ButtonsPressed++
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			s.ButtonsReleased++
		}
	}
	s.KeysPressed = len(inpututil.AppendJustPressedKeys(nil))
	s.KeysReleased = len(inpututil.AppendJustReleasedKeys(nil))
	return s
}

// tracker turns per-tick device snapshots into the event stream an X server
// would have produced.
type tracker struct {
	x, y int
	seen bool
}

func (t *tracker) events(s inputState, q *spotlight.Queue) {
	if !t.seen || s.X != t.x || s.Y != t.y {
		q.Push(spotlight.Event{Kind: spotlight.EventMotion, X: s.X, Y: s.Y})
		t.x, t.y, t.seen = s.X, s.Y, true
	}
	for i := 0; i < s.ButtonsPressed; i++ {
		q.Push(spotlight.Event{Kind: spotlight.EventButtonPress, X: s.X, Y: s.Y})
	}
	for i := 0; i < s.ButtonsReleased; i++ {
		q.Push(spotlight.Event{Kind: spotlight.EventButtonRelease, X: s.X, Y: s.Y})
	}
	for i := 0; i < s.KeysPressed; i++ {
		q.Push(spotlight.Event{Kind: spotlight.EventKeyPress})
	}
	for i := 0; i < s.KeysReleased; i++ {
		q.Push(spotlight.Event{Kind: spotlight.EventKeyRelease})
	}
}

// cursor shows and hides the OS pointer over the ebiten window.
type cursor struct{}

func (cursor) Hide() {
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

func (cursor) Show() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}
