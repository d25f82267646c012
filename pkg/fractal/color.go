package fractal

import "image/color"

// RGB is a packed 24-bit color, 0xRRGGBB.
type RGB uint32

// Black marks points that never escaped.
const Black RGB = 0x000000

// Banding constants for the escape-speed ramp. The mask is shifted left one
// bit for every 13 iterations and folded into the base pattern, which cycles
// the palette as counts climb. Changing either value changes every rendered
// frame.
const (
	colorBase = 0x2E1969
	colorMask = 0x015577
	bandWidth = 13
)

func (c RGB) R() uint8 { return uint8(c >> 16) }
func (c RGB) G() uint8 { return uint8(c >> 8) }
func (c RGB) B() uint8 { return uint8(c) }

// NRGBA converts to the standard library color type, fully opaque.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}

// ColorFor maps an escape iteration count to its pixel color. MaxIter paints
// black; anything below cycles through the shifted-mask ramp. The shift can
// carry past 24 bits at high counts; the excess is truncated.
func ColorFor(it int) RGB {
	if it == MaxIter {
		return Black
	}
	c := uint32(colorBase) | uint32(colorMask)<<uint(it/bandWidth)
	return RGB(c & 0xFFFFFF)
}
