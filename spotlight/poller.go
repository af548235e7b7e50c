package spotlight

import "time"

// Poller decides, once per iteration, whether to take a pending event, wait
// for one, or sleep out a frame.
type Poller struct {
	source   EventSource
	interval time.Duration
	sleep    func(time.Duration)
}

// NewPoller returns a poller that sleeps interval between animation frames
// when no input is pending.
func NewPoller(source EventSource, interval time.Duration) *Poller {
	return &Poller{
		source:   source,
		interval: interval,
		sleep:    time.Sleep,
	}
}

// Next returns a pending event without blocking if there is one. Otherwise it
// blocks for the next event when idle, or sleeps one frame interval and
// returns no event while animating.
func (p *Poller) Next(idle bool) (Event, bool, error) {
	ev, ok, err := p.source.PollEvent()
	if err != nil {
		return Event{}, false, err
	}
	if ok {
		return ev, true, nil
	}
	if idle {
		ev, err := p.source.WaitEvent()
		if err != nil {
			return Event{}, false, err
		}
		return ev, true, nil
	}
	p.sleep(p.interval)
	return Event{}, false, nil
}
