package spotlight

import "github.com/milk9111/beam/common"

// Direction is the current fade trend.
type Direction int8

const (
	Lightening Direction = -1
	Idle       Direction = 0
	Darkening  Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Lightening:
		return "lightening"
	case Idle:
		return "idle"
	case Darkening:
		return "darkening"
	}
	return "invalid-direction"
}

// Machine steps the fade level one notch per frame toward the end selected
// by the last button edge and stops at either end.
type Machine struct {
	level int
	max   int
	dir   Direction
}

// NewMachine returns a machine at level 0, idle, with levels [0, levels-1].
func NewMachine(levels int) *Machine {
	if levels < 1 {
		levels = 1
	}
	return &Machine{max: levels - 1}
}

func (m *Machine) Level() int {
	return m.level
}

func (m *Machine) Direction() Direction {
	return m.dir
}

// Idle reports whether nothing is animating.
func (m *Machine) Idle() bool {
	return m.dir == Idle
}

// Press starts darkening from the current level.
func (m *Machine) Press() {
	m.dir = Darkening
}

// Release starts lightening from the current level.
func (m *Machine) Release() {
	m.dir = Lightening
}

// Advance runs one frame. It returns true when a boundary stopped the
// animation on this frame.
func (m *Machine) Advance() bool {
	stopped := false
	if m.level == 0 && m.dir == Lightening {
		m.dir = Idle
		stopped = true
	}
	if m.level == m.max && m.dir == Darkening {
		m.dir = Idle
		stopped = true
	}
	m.level = common.Clamp(m.level+int(m.dir), 0, m.max)
	return stopped
}

// AnimationState splits Direction into "is anything moving" and "which way".
type AnimationState struct {
	Animating bool
	Direction Direction
}

func (m *Machine) State() AnimationState {
	return AnimationState{Animating: m.dir != Idle, Direction: m.dir}
}
