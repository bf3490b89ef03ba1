// Package palette provides the fixed-length indexed palette type and the
// selection mask used to address entries in it.
package palette

import (
	"fmt"
	"strings"

	"github.com/MeKo-Tech/paletteedit/internal/color"
)

// Palette is an ordered, fixed-length sequence of canonical RGBA colors.
// The index is the entry's identity.
type Palette struct {
	colors []color.RGBA
}

// New creates a palette of size entries, all opaque black.
func New(size int) *Palette {
	if size < 0 {
		size = 0
	}
	colors := make([]color.RGBA, size)
	for i := range colors {
		colors[i].A = 255
	}
	return &Palette{colors: colors}
}

// FromColors creates a palette owning a copy of the given colors.
func FromColors(colors []color.RGBA) *Palette {
	p := &Palette{colors: make([]color.RGBA, len(colors))}
	copy(p.colors, colors)
	return p
}

// ParseHexList parses a whitespace- or comma-separated list of hex colors
// into a palette.
func ParseHexList(s string) (*Palette, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	colors := make([]color.RGBA, 0, len(fields))
	for _, f := range fields {
		c, err := color.ParseHex(f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse palette entry %d: %w", len(colors), err)
		}
		colors = append(colors, c)
	}
	return &Palette{colors: colors}, nil
}

// Len returns the number of entries.
func (p *Palette) Len() int { return len(p.colors) }

// Entry returns the color at index i, or the zero color if i is out of range.
func (p *Palette) Entry(i int) color.RGBA {
	if i < 0 || i >= len(p.colors) {
		return color.RGBA{}
	}
	return p.colors[i]
}

// SetEntry overwrites the color at index i. Out-of-range indices are ignored.
func (p *Palette) SetEntry(i int, c color.RGBA) {
	if i < 0 || i >= len(p.colors) {
		return
	}
	p.colors[i] = c
}

// CountDiff returns the inclusive index range [from, to] on which p and
// other differ. When the palettes are identical, from > to. A length
// mismatch counts as a difference over the non-shared tail.
func (p *Palette) CountDiff(other *Palette) (from, to int) {
	n := len(p.colors)
	if len(other.colors) < n {
		n = len(other.colors)
	}
	from, to = len(p.colors), -1
	for i := 0; i < n; i++ {
		if p.colors[i] != other.colors[i] {
			if i < from {
				from = i
			}
			to = i
		}
	}
	if len(p.colors) != len(other.colors) {
		longer := len(p.colors)
		if len(other.colors) > longer {
			longer = len(other.colors)
		}
		if n < from {
			from = n
		}
		to = longer - 1
	}
	return from, to
}

// CopyColorsTo resizes dst to p's length and copies all entries into it.
func (p *Palette) CopyColorsTo(dst *Palette) {
	if len(dst.colors) != len(p.colors) {
		dst.colors = make([]color.RGBA, len(p.colors))
	}
	copy(dst.colors, p.colors)
}

// Clone returns an independent copy of the palette.
func (p *Palette) Clone() *Palette {
	return FromColors(p.colors)
}

// HexList formats the palette as space-separated hex colors.
func (p *Palette) HexList() string {
	parts := make([]string, len(p.colors))
	for i, c := range p.colors {
		parts[i] = c.Hex()
	}
	return strings.Join(parts, " ")
}
