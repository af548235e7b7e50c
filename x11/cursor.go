package x11

import "github.com/jezek/xgb/xproto"

// blankCursorSize is the edge of the empty bitmap used for the hidden cursor.
const blankCursorSize = 8

// Hide defines a fully transparent cursor on the overlay window. The cursor
// and its bitmap are freed right away; the server keeps what it needs.
func (d *Display) Hide() {
	bitmap, err := xproto.NewPixmapId(d.conn)
	if err != nil {
		d.logger.Warn("hide pointer: allocate pixmap id", "err", err)
		return
	}
	xproto.CreatePixmap(d.conn, 1, bitmap, xproto.Drawable(d.window), blankCursorSize, blankCursorSize)

	// Pixmap contents start undefined; zero them so the mask hides every pixel.
	gc, err := xproto.NewGcontextId(d.conn)
	if err != nil {
		d.logger.Warn("hide pointer: allocate gc id", "err", err)
		xproto.FreePixmap(d.conn, bitmap)
		return
	}
	xproto.CreateGC(d.conn, gc, xproto.Drawable(bitmap), xproto.GcForeground, []uint32{0})
	xproto.PolyFillRectangle(d.conn, xproto.Drawable(bitmap), gc, []xproto.Rectangle{
		{Width: blankCursorSize, Height: blankCursorSize},
	})
	xproto.FreeGC(d.conn, gc)

	cursor, err := xproto.NewCursorId(d.conn)
	if err != nil {
		d.logger.Warn("hide pointer: allocate cursor id", "err", err)
		xproto.FreePixmap(d.conn, bitmap)
		return
	}
	xproto.CreateCursor(d.conn, cursor, bitmap, bitmap, 0, 0, 0, 0, 0, 0, 0, 0)
	xproto.ChangeWindowAttributes(d.conn, d.window, xproto.CwCursor, []uint32{uint32(cursor)})

	xproto.FreeCursor(d.conn, cursor)
	xproto.FreePixmap(d.conn, bitmap)
}

// Show drops the overlay's cursor so the inherited one is used again.
func (d *Display) Show() {
	xproto.ChangeWindowAttributes(d.conn, d.window, xproto.CwCursor, []uint32{xproto.CursorNone})
}
