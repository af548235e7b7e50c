package x11

import (
	"fmt"
	"image/color"

	"github.com/jezek/xgb/xproto"
)

// fullCircle is 360 degrees in the protocol's 1/64 degree units.
const fullCircle = 360 * 64

func (d *Display) Size() (int, int) {
	return d.width, d.height
}

func (d *Display) Clear() {
	xproto.ClearArea(d.conn, false, d.window, 0, 0, 0, 0)
}

func (d *Display) SetFill(c color.RGBA) {
	xproto.ChangeGC(d.conn, d.gc, xproto.GcForeground, []uint32{pixel(c, d.visual)})
}

func (d *Display) FillRect(x, y, width, height int) {
	xproto.PolyFillRectangle(d.conn, xproto.Drawable(d.window), d.gc, []xproto.Rectangle{
		{X: int16(x), Y: int16(y), Width: uint16(width), Height: uint16(height)},
	})
}

func (d *Display) FillCircle(cx, cy, diameter int) {
	xproto.PolyFillArc(d.conn, xproto.Drawable(d.window), d.gc, []xproto.Arc{circleArc(cx, cy, diameter)})
}

func circleArc(cx, cy, diameter int) xproto.Arc {
	return xproto.Arc{
		X:      int16(cx - diameter/2),
		Y:      int16(cy - diameter/2),
		Width:  uint16(diameter),
		Height: uint16(diameter),
		Angle1: 0,
		Angle2: fullCircle,
	}
}

// Flush sends queued requests and waits for the server to process them.
func (d *Display) Flush() error {
	if _, err := xproto.GetInputFocus(d.conn).Reply(); err != nil {
		return fmt.Errorf("x11: sync: %w", err)
	}
	return nil
}
