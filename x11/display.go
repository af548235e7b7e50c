package x11

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const overlayEvents = xproto.EventMaskPointerMotion |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease

// Options names the overlay window.
type Options struct {
	// Display is the endpoint to connect to; empty means $DISPLAY.
	Display string
	Name    string
	Class   string
	Logger  *log.Logger
}

// Display is an open overlay window. It implements the spotlight
// EventSource, Surface, Pointer and Flusher interfaces.
type Display struct {
	conn   *xgb.Conn
	screen *xproto.ScreenInfo
	visual xproto.VisualInfo
	window xproto.Window
	gc     xproto.Gcontext
	width  int
	height int
	logger *log.Logger
}

// Open connects to the display and puts a mapped, topmost overlay window on
// the default screen. Any failure is fatal; nothing is retried.
func Open(opts Options) (*Display, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	conn, name, err := connect(opts.Display)
	if err != nil {
		return nil, err
	}
	logger.Debug("connected", "display", name)

	d := &Display{
		conn:   conn,
		screen: xproto.Setup(conn).DefaultScreen(conn),
		logger: logger,
	}
	d.width = int(d.screen.WidthInPixels)
	d.height = int(d.screen.HeightInPixels)

	if err := d.createWindow(); err != nil {
		conn.Close()
		return nil, err
	}
	if err := d.setIdentity(opts.Name, opts.Class); err != nil {
		conn.Close()
		return nil, err
	}
	if err := d.keepOnTop(); err != nil {
		conn.Close()
		return nil, err
	}
	if err := d.createGC(); err != nil {
		conn.Close()
		return nil, err
	}

	logger.Debug("overlay ready", "width", d.width, "height", d.height, "visual", d.visual.VisualId)
	return d, nil
}

func (d *Display) createWindow() error {
	visual, ok := findARGBVisual(d.screen)
	if !ok {
		return ErrNoARGBVisual
	}
	d.visual = visual

	cmap, err := xproto.NewColormapId(d.conn)
	if err != nil {
		return fmt.Errorf("x11: allocate colormap id: %w", err)
	}
	if err := xproto.CreateColormapChecked(d.conn, xproto.ColormapAllocNone, cmap, d.screen.Root, visual.VisualId).Check(); err != nil {
		return fmt.Errorf("x11: create colormap: %w", err)
	}

	wid, err := xproto.NewWindowId(d.conn)
	if err != nil {
		return fmt.Errorf("x11: allocate window id: %w", err)
	}
	mask := uint32(xproto.CwBackPixel | xproto.CwBorderPixel | xproto.CwOverrideRedirect | xproto.CwEventMask | xproto.CwColormap)
	values := []uint32{0, 0, 1, overlayEvents, uint32(cmap)}
	err = xproto.CreateWindowChecked(d.conn, 32, wid, d.screen.Root,
		0, 0, uint16(d.width), uint16(d.height), 0,
		xproto.WindowClassInputOutput, visual.VisualId, mask, values).Check()
	if err != nil {
		return fmt.Errorf("x11: create window: %w", err)
	}
	d.window = wid

	if err := xproto.MapWindowChecked(d.conn, wid).Check(); err != nil {
		return fmt.Errorf("x11: map window: %w", err)
	}
	return nil
}

// setIdentity sets WM_NAME and WM_CLASS.
func (d *Display) setIdentity(name, class string) error {
	if err := d.setStringProperty(xproto.AtomWmName, name); err != nil {
		return fmt.Errorf("x11: set WM_NAME: %w", err)
	}
	if class == "" {
		class = name
	}
	// WM_CLASS is instance and class, each NUL terminated.
	wmClass := name + "\x00" + class + "\x00"
	if err := d.setStringProperty(xproto.AtomWmClass, wmClass); err != nil {
		return fmt.Errorf("x11: set WM_CLASS: %w", err)
	}
	return nil
}

func (d *Display) setStringProperty(prop xproto.Atom, value string) error {
	return xproto.ChangePropertyChecked(d.conn, xproto.PropModeReplace, d.window,
		prop, xproto.AtomString, 8, uint32(len(value)), []byte(value)).Check()
}

// keepOnTop asks the window manager to keep the overlay above everything
// and raises it.
func (d *Display) keepOnTop() error {
	wmState, err := d.atom("_NET_WM_STATE")
	if err != nil {
		return err
	}
	above, err := d.atom("_NET_WM_STATE_ABOVE")
	if err != nil {
		return err
	}
	staysOnTop, err := d.atom("_NET_WM_STATE_STAYS_ON_TOP")
	if err != nil {
		return err
	}

	const netWMStateAdd = 1
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: d.window,
		Type:   wmState,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{netWMStateAdd, uint32(above), uint32(staysOnTop), 0, 0}),
	}
	err = xproto.SendEventChecked(d.conn, false, d.screen.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify, string(ev.Bytes())).Check()
	if err != nil {
		return fmt.Errorf("x11: send _NET_WM_STATE: %w", err)
	}

	err = xproto.ConfigureWindowChecked(d.conn, d.window, xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove}).Check()
	if err != nil {
		return fmt.Errorf("x11: raise window: %w", err)
	}
	return nil
}

func (d *Display) atom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(d.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("x11: intern %s: %w", name, err)
	}
	return reply.Atom, nil
}

func (d *Display) createGC() error {
	gc, err := xproto.NewGcontextId(d.conn)
	if err != nil {
		return fmt.Errorf("x11: allocate gc id: %w", err)
	}
	err = xproto.CreateGCChecked(d.conn, gc, xproto.Drawable(d.window), xproto.GcGraphicsExposures, []uint32{0}).Check()
	if err != nil {
		return fmt.Errorf("x11: create gc: %w", err)
	}
	d.gc = gc
	return nil
}

// Close frees the drawing context and drops the connection, which destroys
// the window.
func (d *Display) Close() {
	if d == nil || d.conn == nil {
		return
	}
	xproto.FreeGC(d.conn, d.gc)
	d.conn.Close()
	d.conn = nil
}
