package spotlight

import (
	"image"
	"image/color"

	"github.com/milk9111/beam/common"
)

// DefaultDiameter is the spotlight diameter in pixels.
const DefaultDiameter = 600

// Compositor draws one frame of the overlay.
type Compositor struct {
	curve    Curve
	base     color.RGBA
	diameter int
}

// NewCompositor darkens with base (opaque, straight color) scaled by curve
// and cuts a disc of the given diameter.
func NewCompositor(curve Curve, base color.RGBA, diameter int) *Compositor {
	return &Compositor{curve: curve, base: base, diameter: diameter}
}

// FillColor is the premultiplied darkening color at level.
func (c *Compositor) FillColor(level int) (color.RGBA, error) {
	a, err := c.curve.Alpha(level)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{
		R: common.Premultiply(c.base.R, a),
		G: common.Premultiply(c.base.G, a),
		B: common.Premultiply(c.base.B, a),
		A: a,
	}, nil
}

// Render clears the surface at level 0. Otherwise it darkens the whole
// surface and punches the spotlight centered on pointer.
func (c *Compositor) Render(s Surface, level int, pointer image.Point) error {
	fill, err := c.FillColor(level)
	if err != nil {
		return err
	}
	if level == 0 {
		s.Clear()
		return nil
	}

	w, h := s.Size()
	s.SetFill(fill)
	s.FillRect(0, 0, w, h)
	s.SetFill(color.RGBA{})
	s.FillCircle(pointer.X, pointer.Y, c.diameter)
	return nil
}
