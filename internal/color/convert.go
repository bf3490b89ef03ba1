package color

import "math"

// WrapHue wraps a hue angle in degrees into [0,360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// Clamp01 clamps v into [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ClampU8 clamps an int to the uint8 range [0,255].
func ClampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// roundU8 maps a float in [0,1] to uint8 with round-to-nearest.
// Out-of-range values are clamped first.
func roundU8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// RGBToHSV converts the canonical form to HSV. Hue is 0 by convention when
// saturation is 0 (grays).
func RGBToHSV(c RGBA) HSV {
	maxc := max3(c.R, c.G, c.B)
	minc := min3(c.R, c.G, c.B)
	delta := float64(maxc) - float64(minc)

	out := HSV{V: float64(maxc) / 255, A: c.A}
	if maxc == 0 || delta == 0 {
		return out
	}
	out.S = delta / float64(maxc)
	out.H = hueOf(c, maxc, delta)
	return out
}

// HSVToRGB converts HSV back to the canonical form. Inputs are clamped into
// domain before converting; output channels are rounded to nearest and
// clamped to [0,255].
func HSVToRGB(c HSV) RGBA {
	h := WrapHue(c.H)
	s := Clamp01(c.S)
	v := Clamp01(c.V)

	if s == 0 {
		g := roundU8(v)
		return RGBA{R: g, G: g, B: g, A: c.A}
	}

	chroma := v * s
	m := v - chroma
	r, g, b := sectorRGB(h, chroma)
	return RGBA{R: roundU8(r + m), G: roundU8(g + m), B: roundU8(b + m), A: c.A}
}

// RGBToHSL converts the canonical form to HSL. Hue is 0 by convention when
// saturation is 0.
func RGBToHSL(c RGBA) HSL {
	maxc := max3(c.R, c.G, c.B)
	minc := min3(c.R, c.G, c.B)
	delta := float64(maxc) - float64(minc)

	l := (float64(maxc) + float64(minc)) / (2 * 255)
	out := HSL{L: l, A: c.A}
	if delta == 0 {
		return out
	}
	out.S = (delta / 255) / (1 - math.Abs(2*l-1))
	out.H = hueOf(c, maxc, delta)
	return out
}

// HSLToRGB converts HSL back to the canonical form with the same clamping
// rules as HSVToRGB.
func HSLToRGB(c HSL) RGBA {
	h := WrapHue(c.H)
	s := Clamp01(c.S)
	l := Clamp01(c.L)

	if s == 0 {
		g := roundU8(l)
		return RGBA{R: g, G: g, B: g, A: c.A}
	}

	chroma := (1 - math.Abs(2*l-1)) * s
	m := l - chroma/2
	r, g, b := sectorRGB(h, chroma)
	return RGBA{R: roundU8(r + m), G: roundU8(g + m), B: roundU8(b + m), A: c.A}
}

// hueOf computes the hue in degrees shared by the HSV and HSL models.
func hueOf(c RGBA, maxc uint8, delta float64) float64 {
	var h float64
	switch maxc {
	case c.R:
		h = 60 * (float64(c.G) - float64(c.B)) / delta
	case c.G:
		h = 60 * (2 + (float64(c.B)-float64(c.R))/delta)
	default:
		h = 60 * (4 + (float64(c.R)-float64(c.G))/delta)
	}
	if h < 0 {
		h += 360
	}
	return h
}

// sectorRGB maps hue and chroma to the base RGB contributions before the
// match offset is added.
func sectorRGB(h, chroma float64) (r, g, b float64) {
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	switch {
	case h < 60:
		return chroma, x, 0
	case h < 120:
		return x, chroma, 0
	case h < 180:
		return 0, chroma, x
	case h < 240:
		return 0, x, chroma
	case h < 300:
		return x, 0, chroma
	default:
		return chroma, 0, x
	}
}

// max3 returns the maximum of three uint8 values.
func max3(a, b, c uint8) uint8 {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

// min3 returns the minimum of three uint8 values.
func min3(a, b, c uint8) uint8 {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}
