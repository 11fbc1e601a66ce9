package tuple

import "math"

// Color returns the color (r, g, b) as a tuple with the channels
// aliased to X, Y, Z and W set to 0. Channels are not clamped here
// or by any arithmetic; values drift outside [0, 1] freely during
// computation and are only brought into range by RGB.
func Color(r, g, b float64) Tuple {
	return Tuple{r, g, b, 0}
}

// Red returns the red channel of a color tuple.
func (t Tuple) Red() float64 { return t.X }

// Green returns the green channel of a color tuple.
func (t Tuple) Green() float64 { return t.Y }

// Blue returns the blue channel of a color tuple.
func (t Tuple) Blue() float64 { return t.Z }

// RGB exports t as 8-bit channels: each channel is scaled by 255,
// rounded to the nearest integer, then clamped to [0, 255].
// Rounding happens before clamping.
func (t Tuple) RGB() (r, g, b uint8) {
	return scale8(t.X), scale8(t.Y), scale8(t.Z)
}

func scale8(c float64) uint8 {
	v := math.Round(c * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
