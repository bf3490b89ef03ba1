// Package color provides the color representations used by the palette
// editor (8-bit RGB plus HSV and HSL views) and the conversions between
// them. RGB8 with alpha is the canonical form; every other representation
// is derived from it and converts back without drift.
package color

// Space identifies a color representation.
type Space int

const (
	SpaceRGB Space = iota
	SpaceHSV
	SpaceHSL
)

// String returns the lowercase name of the space.
func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "rgb"
	case SpaceHSV:
		return "hsv"
	case SpaceHSL:
		return "hsl"
	}
	return "unknown"
}

// Channel identifies a single editable channel within a color space.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
	Hue
	Saturation
	Value
	Lightness
	Alpha
)

// String returns the lowercase name of the channel.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Hue:
		return "hue"
	case Saturation:
		return "saturation"
	case Value:
		return "value"
	case Lightness:
		return "lightness"
	case Alpha:
		return "alpha"
	}
	return "unknown"
}

// RGBA is the canonical 8-bit color form stored in palettes.
type RGBA struct {
	R, G, B, A uint8
}

// HSV is a hue/saturation/value view of a color.
// H is in degrees [0,360), S and V in [0,1].
type HSV struct {
	H, S, V float64
	A       uint8
}

// HSL is a hue/saturation/lightness view of a color.
// H is in degrees [0,360), S and L in [0,1].
type HSL struct {
	H, S, L float64
	A       uint8
}

// Color is a tagged union over the three representations. It keeps the
// representation it was built from so that channel reads in that space do
// not lose precision through an intermediate conversion.
type Color struct {
	space Space
	rgb   RGBA
	hsv   HSV
	hsl   HSL
}

// FromRGBA builds a Color tagged as RGB.
func FromRGBA(c RGBA) Color {
	return Color{space: SpaceRGB, rgb: c}
}

// FromHSV builds a Color tagged as HSV. Hue is wrapped into [0,360),
// saturation and value are clamped into [0,1].
func FromHSV(h, s, v float64, a uint8) Color {
	return Color{space: SpaceHSV, hsv: HSV{H: WrapHue(h), S: Clamp01(s), V: Clamp01(v), A: a}}
}

// FromHSL builds a Color tagged as HSL. Hue is wrapped into [0,360),
// saturation and lightness are clamped into [0,1].
func FromHSL(h, s, l float64, a uint8) Color {
	return Color{space: SpaceHSL, hsl: HSL{H: WrapHue(h), S: Clamp01(s), L: Clamp01(l), A: a}}
}

// Space returns the representation the color was built from.
func (c Color) Space() Space { return c.space }

// RGBA returns the canonical RGB8 form.
func (c Color) RGBA() RGBA {
	switch c.space {
	case SpaceHSV:
		return HSVToRGB(c.hsv)
	case SpaceHSL:
		return HSLToRGB(c.hsl)
	}
	return c.rgb
}

// HSV returns the HSV view, converting from the canonical form when the
// color was not built as HSV.
func (c Color) HSV() HSV {
	if c.space == SpaceHSV {
		return c.hsv
	}
	return RGBToHSV(c.RGBA())
}

// HSL returns the HSL view, converting from the canonical form when the
// color was not built as HSL.
func (c Color) HSL() HSL {
	if c.space == SpaceHSL {
		return c.hsl
	}
	return RGBToHSL(c.RGBA())
}

// AlphaValue returns the alpha channel, which is representation-independent.
func (c Color) AlphaValue() uint8 {
	switch c.space {
	case SpaceHSV:
		return c.hsv.A
	case SpaceHSL:
		return c.hsl.A
	}
	return c.rgb.A
}
