package color

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional) into the
// canonical form. Alpha defaults to 255 when omitted.
func ParseHex(s string) (RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return RGBA{}, fmt.Errorf("invalid hex color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	c := RGBA{A: 255}
	if len(h) == 8 {
		c.A = uint8(v & 0xff)
		v >>= 8
	}
	c.B = uint8(v & 0xff)
	c.G = uint8(v >> 8 & 0xff)
	c.R = uint8(v >> 16 & 0xff)
	return c, nil
}

// Hex formats the color as "#RRGGBBAA".
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseSpace parses a space name ("rgb", "hsv", "hsl").
func ParseSpace(s string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb":
		return SpaceRGB, nil
	case "hsv":
		return SpaceHSV, nil
	case "hsl":
		return SpaceHSL, nil
	}
	return SpaceRGB, fmt.Errorf("unknown color space %q", s)
}

// ParseChannel parses a channel name in the context of a space. Single
// letters are accepted ("r", "h", "s", "v", "l", "a"); "s" and "v"/"l"
// resolve against the given space.
func ParseChannel(space Space, name string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "r", "red":
		return Red, nil
	case "g", "green":
		return Green, nil
	case "b", "blue":
		return Blue, nil
	case "h", "hue":
		return Hue, nil
	case "s", "sat", "saturation":
		return Saturation, nil
	case "v", "value":
		return Value, nil
	case "l", "lightness":
		return Lightness, nil
	case "a", "alpha":
		return Alpha, nil
	}
	return Red, fmt.Errorf("unknown channel %q for space %s", name, space)
}

// Channels returns the editable channels of a space, alpha last.
func Channels(space Space) []Channel {
	switch space {
	case SpaceHSV:
		return []Channel{Hue, Saturation, Value, Alpha}
	case SpaceHSL:
		return []Channel{Hue, Saturation, Lightness, Alpha}
	}
	return []Channel{Red, Green, Blue, Alpha}
}
