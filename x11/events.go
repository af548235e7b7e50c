package x11

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/milk9111/beam/spotlight"
)

var (
	_ spotlight.EventSource = (*Display)(nil)
	_ spotlight.Surface     = (*Display)(nil)
	_ spotlight.Pointer     = (*Display)(nil)
	_ spotlight.Flusher     = (*Display)(nil)
)

// PollEvent returns a queued event without blocking.
func (d *Display) PollEvent() (spotlight.Event, bool, error) {
	ev, xerr := d.conn.PollForEvent()
	if xerr != nil {
		return spotlight.Event{}, false, fmt.Errorf("x11: protocol error: %w", xerr)
	}
	if ev == nil {
		return spotlight.Event{}, false, nil
	}
	return translate(ev), true, nil
}

// WaitEvent blocks for the next event. A closed connection is reported as
// spotlight.ErrClosed.
func (d *Display) WaitEvent() (spotlight.Event, error) {
	ev, xerr := d.conn.WaitForEvent()
	if xerr != nil {
		return spotlight.Event{}, fmt.Errorf("x11: protocol error: %w", xerr)
	}
	if ev == nil {
		return spotlight.Event{}, spotlight.ErrClosed
	}
	return translate(ev), nil
}

func translate(ev xgb.Event) spotlight.Event {
	switch e := ev.(type) {
	case xproto.ButtonPressEvent:
		return spotlight.Event{Kind: spotlight.EventButtonPress, X: int(e.EventX), Y: int(e.EventY)}
	case xproto.ButtonReleaseEvent:
		return spotlight.Event{Kind: spotlight.EventButtonRelease, X: int(e.EventX), Y: int(e.EventY)}
	case xproto.MotionNotifyEvent:
		return spotlight.Event{Kind: spotlight.EventMotion, X: int(e.EventX), Y: int(e.EventY)}
	case xproto.KeyPressEvent:
		return spotlight.Event{Kind: spotlight.EventKeyPress}
	case xproto.KeyReleaseEvent:
		return spotlight.Event{Kind: spotlight.EventKeyRelease}
	}
	return spotlight.Event{Kind: spotlight.EventOther}
}
