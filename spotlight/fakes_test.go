package spotlight

import (
	"image/color"
	"time"
)

type op struct {
	Name  string
	Color color.RGBA
	X, Y  int
	W, H  int
	D     int
}

type recordingSurface struct {
	w, h int
	ops  []op
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }
func (s *recordingSurface) Clear()           { s.ops = append(s.ops, op{Name: "clear"}) }
func (s *recordingSurface) SetFill(c color.RGBA) {
	s.ops = append(s.ops, op{Name: "fill", Color: c})
}
func (s *recordingSurface) FillRect(x, y, w, h int) {
	s.ops = append(s.ops, op{Name: "rect", X: x, Y: y, W: w, H: h})
}
func (s *recordingSurface) FillCircle(cx, cy, d int) {
	s.ops = append(s.ops, op{Name: "circle", X: cx, Y: cy, D: d})
}

func (s *recordingSurface) take() []op {
	out := s.ops
	s.ops = nil
	return out
}

type countingPointer struct {
	hides, shows int
}

func (p *countingPointer) Hide() { p.hides++ }
func (p *countingPointer) Show() { p.shows++ }

type countingFlusher struct {
	flushes int
}

func (f *countingFlusher) Flush() error {
	f.flushes++
	return nil
}

// scriptedSource hands out pending events first, then blocking waits pull
// from waits. Once both are exhausted every call reports ErrClosed.
type scriptedSource struct {
	pending Queue
	waits   Queue
	polls   int
	blocked int
}

func (s *scriptedSource) PollEvent() (Event, bool, error) {
	s.polls++
	ev, ok := s.pending.Pop()
	return ev, ok, nil
}

func (s *scriptedSource) WaitEvent() (Event, error) {
	s.blocked++
	ev, ok := s.waits.Pop()
	if !ok {
		return Event{}, ErrClosed
	}
	return ev, nil
}

type sleepRecorder struct {
	sleeps []time.Duration
}

func (r *sleepRecorder) sleep(d time.Duration) {
	r.sleeps = append(r.sleeps, d)
}
