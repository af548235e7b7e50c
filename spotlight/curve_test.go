package spotlight

import (
	"errors"
	"testing"
)

func TestReferenceCurve(t *testing.T) {
	c := ReferenceCurve()
	if c.Len() != 15 {
		t.Fatalf("expected 15 levels, got %d", c.Len())
	}
	if a, err := c.Alpha(0); err != nil || a != 0 {
		t.Fatalf("Alpha(0) = %#x, %v; want 0", a, err)
	}
	if a, err := c.Alpha(c.Len() - 1); err != nil || a != 0x99 {
		t.Fatalf("Alpha(last) = %#x, %v; want 0x99", a, err)
	}
	if c.Max() != 0x99 {
		t.Fatalf("Max() = %#x, want 0x99", c.Max())
	}

	prev := uint8(0)
	linear := true
	step := -1
	for i := 0; i < c.Len(); i++ {
		a, err := c.Alpha(i)
		if err != nil {
			t.Fatalf("Alpha(%d): %v", i, err)
		}
		if a < prev {
			t.Fatalf("curve decreases at %d: %#x < %#x", i, a, prev)
		}
		if i > 0 {
			d := int(a) - int(prev)
			if step >= 0 && d != step {
				linear = false
			}
			step = d
		}
		prev = a
	}
	if linear {
		t.Fatalf("reference curve should be eased, not linear")
	}
}

func TestCurveAlphaOutOfRange(t *testing.T) {
	c := ReferenceCurve()
	for _, level := range []int{-1, c.Len(), 100} {
		if _, err := c.Alpha(level); !errors.Is(err, ErrLevelOutOfRange) {
			t.Fatalf("Alpha(%d): expected ErrLevelOutOfRange, got %v", level, err)
		}
	}
}

func TestNewCurveValidation(t *testing.T) {
	cases := []struct {
		name   string
		values []uint8
		ok     bool
	}{
		{"single_zero", []uint8{0}, true},
		{"flat", []uint8{0, 0, 0}, true},
		{"empty", nil, false},
		{"nonzero_start", []uint8{1, 2}, false},
		{"decreasing", []uint8{0, 5, 4}, false},
		{"opaque_ceiling", []uint8{0, 0x80, 0xFF}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewCurve(c.values)
			if c.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.ok && !errors.Is(err, ErrInvalidCurve) {
				t.Fatalf("expected ErrInvalidCurve, got %v", err)
			}
		})
	}
}

func TestNewCurveCopiesInput(t *testing.T) {
	values := []uint8{0, 10, 20}
	c, err := NewCurve(values)
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	values[2] = 0
	if a, _ := c.Alpha(2); a != 20 {
		t.Fatalf("curve changed with its input: Alpha(2) = %d", a)
	}
}
