package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface draws onto the ebiten screen image handed to Draw.
type screenSurface struct {
	img   *ebiten.Image
	fill  color.RGBA
	discs map[int]*ebiten.Image
}

func (s *screenSurface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *screenSurface) Clear() {
	s.img.Clear()
}

func (s *screenSurface) SetFill(c color.RGBA) {
	s.fill = c
}

// FillRect replaces the pixels of the rectangle with the fill color.
func (s *screenSurface) FillRect(x, y, width, height int) {
	r := image.Rect(x, y, x+width, y+height).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	s.img.SubImage(r).(*ebiten.Image).Fill(s.fill)
}

// FillCircle replaces the disc's pixels: it erases them, then paints the
// fill color over the hole if it is not transparent.
func (s *screenSurface) FillCircle(cx, cy, diameter int) {
	if diameter <= 0 {
		return
	}
	disc := s.disc(diameter)
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationOut}
	op.GeoM.Translate(float64(cx-diameter/2), float64(cy-diameter/2))
	s.img.DrawImage(disc, op)

	if s.fill.A > 0 {
		r := float32(diameter) / 2
		vector.FillCircle(s.img, float32(cx), float32(cy), r, s.fill, true)
	}
}

// disc returns an opaque white disc of the given diameter, built once.
func (s *screenSurface) disc(diameter int) *ebiten.Image {
	if img, ok := s.discs[diameter]; ok {
		return img
	}
	if s.discs == nil {
		s.discs = make(map[int]*ebiten.Image)
	}
	img := ebiten.NewImage(diameter, diameter)
	r := float32(diameter) / 2
	vector.FillCircle(img, r, r, r, color.White, true)
	s.discs[diameter] = img
	return img
}
