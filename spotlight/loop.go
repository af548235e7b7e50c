// Package spotlight implements the fade state machine, input polling and
// per-frame compositing of the beam overlay. Window systems plug in through
// the EventSource, Surface, Pointer and Flusher interfaces.
package spotlight

import (
	"image"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
)

// Config wires a Loop to a window system.
type Config struct {
	Source   EventSource
	Surface  Surface
	Pointer  Pointer
	Flusher  Flusher
	Curve    Curve
	Color    color.RGBA
	Diameter int
	Interval time.Duration
	Logger   *log.Logger
}

// Loop ties input, fade state and drawing together.
type Loop struct {
	poller     *Poller
	machine    *Machine
	compositor *Compositor
	surface    Surface
	pointer    Pointer
	flusher    Flusher
	logger     *log.Logger

	cursor image.Point
}

// NewLoop builds a loop at level 0, idle, with the pointer at the origin.
// Source and Flusher may be nil for backends that only call Handle and Frame.
func NewLoop(cfg Config) *Loop {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	diameter := cfg.Diameter
	if diameter <= 0 {
		diameter = DefaultDiameter
	}
	curve := cfg.Curve
	if curve.Len() == 0 {
		curve = ReferenceCurve()
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}

	l := &Loop{
		machine:    NewMachine(curve.Len()),
		compositor: NewCompositor(curve, cfg.Color, diameter),
		surface:    cfg.Surface,
		pointer:    cfg.Pointer,
		flusher:    cfg.Flusher,
		logger:     logger,
	}
	if cfg.Source != nil {
		l.poller = NewPoller(cfg.Source, interval)
	}
	return l
}

func (l *Loop) Machine() *Machine {
	return l.machine
}

// Cursor is the last pointer position seen in a motion event.
func (l *Loop) Cursor() image.Point {
	return l.cursor
}

// Handle applies one input event to the fade state.
func (l *Loop) Handle(ev Event) {
	switch ev.Kind {
	case EventButtonPress:
		l.machine.Press()
		l.pointer.Hide()
		l.logger.Debug("darkening", "level", l.machine.Level())
	case EventButtonRelease:
		l.machine.Release()
		l.pointer.Show()
		l.logger.Debug("lightening", "level", l.machine.Level())
	case EventMotion:
		l.cursor = image.Pt(ev.X, ev.Y)
	case EventKeyPress, EventKeyRelease:
		// Reserved for shortcuts.
	}
}

// Advance moves the fade one step.
func (l *Loop) Advance() {
	if l.machine.Advance() {
		l.logger.Debug("fade stopped", "level", l.machine.Level())
	}
}

// Render draws the current fade level.
func (l *Loop) Render() error {
	return l.compositor.Render(l.surface, l.machine.Level(), l.cursor)
}

// Frame advances the fade one step and draws the result.
func (l *Loop) Frame() error {
	l.Advance()
	return l.Render()
}

// Step runs one iteration: take or wait for input, advance, draw, flush.
func (l *Loop) Step() error {
	ev, ok, err := l.poller.Next(l.machine.Idle())
	if err != nil {
		return err
	}
	if ok {
		l.Handle(ev)
	}
	if err := l.Frame(); err != nil {
		return err
	}
	return l.flusher.Flush()
}

// Run steps forever. It only returns when the event source or the display
// fails, for instance when the connection is closed.
func (l *Loop) Run() error {
	for {
		if err := l.Step(); err != nil {
			return err
		}
	}
}
