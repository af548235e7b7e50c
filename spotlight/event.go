package spotlight

import (
	"errors"
	"image/color"
)

// ErrClosed is returned by an EventSource whose connection has gone away.
var ErrClosed = errors.New("spotlight: event source closed")

// EventKind identifies input event types.
type EventKind int

const (
	EventOther EventKind = iota
	EventButtonPress
	EventButtonRelease
	EventMotion
	EventKeyPress
	EventKeyRelease
)

func (k EventKind) String() string {
	switch k {
	case EventOther:
		return "other"
	case EventButtonPress:
		return "button-press"
	case EventButtonRelease:
		return "button-release"
	case EventMotion:
		return "motion"
	case EventKeyPress:
		return "key-press"
	case EventKeyRelease:
		return "key-release"
	}
	return "invalid-event-kind"
}

// Event is an input event in overlay coordinates. X and Y are only
// meaningful for motion events.
type Event struct {
	Kind EventKind
	X, Y int
}

// EventSource is the window system's input queue.
type EventSource interface {
	// PollEvent dequeues an event if one is pending and never blocks.
	PollEvent() (Event, bool, error)
	// WaitEvent blocks until an event arrives.
	WaitEvent() (Event, error)
}

// Surface is the overlay drawable. Fills replace destination pixels, alpha
// included, so filling with a transparent color punches a hole.
type Surface interface {
	Size() (width, height int)
	Clear()
	SetFill(c color.RGBA)
	FillRect(x, y, width, height int)
	// FillCircle fills the disc of the given diameter centered on (cx, cy).
	// Parts outside the surface are clipped.
	FillCircle(cx, cy, diameter int)
}

// Pointer toggles the system pointer over the overlay.
type Pointer interface {
	Hide()
	Show()
}

// Flusher pushes queued drawing to the display and waits until it has been
// processed.
type Flusher interface {
	Flush() error
}

// Queue is a FIFO of input events.
type Queue struct {
	items []Event
}

// Push adds an event.
func (q *Queue) Push(ev Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, ev)
}

// Pop removes and returns the oldest event.
func (q *Queue) Pop() (Event, bool) {
	if q == nil || len(q.items) == 0 {
		return Event{}, false
	}
	ev := q.items[0]
	q.items[0] = Event{}
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return ev, true
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
