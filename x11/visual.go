package x11

import (
	"image/color"
	"math/bits"

	"github.com/jezek/xgb/xproto"
)

// findARGBVisual picks the first 32-bit TrueColor visual on the screen.
func findARGBVisual(screen *xproto.ScreenInfo) (xproto.VisualInfo, bool) {
	for _, depth := range screen.AllowedDepths {
		if depth.Depth != 32 {
			continue
		}
		for _, v := range depth.Visuals {
			if v.Class == xproto.VisualClassTrueColor {
				return v, true
			}
		}
	}
	return xproto.VisualInfo{}, false
}

// pixel packs a premultiplied color for visual. Alpha goes in the bits the
// RGB masks leave free, which is the top byte on every ARGB visual in use.
func pixel(c color.RGBA, v xproto.VisualInfo) uint32 {
	alphaMask := ^(v.RedMask | v.GreenMask | v.BlueMask)
	return channel(c.R, v.RedMask) |
		channel(c.G, v.GreenMask) |
		channel(c.B, v.BlueMask) |
		channel(c.A, alphaMask)
}

func channel(value uint8, mask uint32) uint32 {
	if mask == 0 {
		return 0
	}
	shift := bits.TrailingZeros32(mask)
	width := bits.OnesCount32(mask)
	v := uint32(value)
	if width < 8 {
		v >>= 8 - width
	} else if width > 8 {
		v <<= width - 8
	}
	return (v << shift) & mask
}
