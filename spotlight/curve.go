package spotlight

import (
	"errors"
	"fmt"
)

var (
	ErrLevelOutOfRange = errors.New("spotlight: fade level out of range")
	ErrInvalidCurve    = errors.New("spotlight: invalid alpha curve")
)

// referenceCurve darkens quickly at first and eases into the ceiling. The
// ceiling stays well short of opaque so the screen remains readable.
var referenceCurve = []uint8{0, 0x14, 0x27, 0x38, 0x47, 0x56, 0x63, 0x6E, 0x79, 0x82, 0x89, 0x8F, 0x94, 0x97, 0x99}

// Curve maps a fade level to the alpha of the darkening fill. It is
// immutable once built.
type Curve struct {
	values []uint8
}

// ReferenceCurve returns the 15-step curve beam ships with.
func ReferenceCurve() Curve {
	c, err := NewCurve(referenceCurve)
	if err != nil {
		panic("spotlight: reference curve: " + err.Error())
	}
	return c
}

// NewCurve copies values into a Curve. The first entry must be zero, the
// sequence must never decrease, and the last entry must not be fully opaque.
func NewCurve(values []uint8) (Curve, error) {
	if len(values) == 0 {
		return Curve{}, fmt.Errorf("%w: empty", ErrInvalidCurve)
	}
	if values[0] != 0 {
		return Curve{}, fmt.Errorf("%w: first entry is %#x, want 0", ErrInvalidCurve, values[0])
	}
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return Curve{}, fmt.Errorf("%w: entry %d (%#x) is below entry %d (%#x)", ErrInvalidCurve, i, values[i], i-1, values[i-1])
		}
	}
	if last := values[len(values)-1]; last == 0xFF {
		return Curve{}, fmt.Errorf("%w: ceiling is fully opaque", ErrInvalidCurve)
	}
	return Curve{values: append([]uint8(nil), values...)}, nil
}

// Len is the number of fade levels.
func (c Curve) Len() int {
	return len(c.values)
}

// Max is the alpha at the highest fade level.
func (c Curve) Max() uint8 {
	if len(c.values) == 0 {
		return 0
	}
	return c.values[len(c.values)-1]
}

// Alpha returns the alpha for level.
func (c Curve) Alpha(level int) (uint8, error) {
	if level < 0 || level >= len(c.values) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrLevelOutOfRange, level, len(c.values))
	}
	return c.values[level], nil
}
