// Package doc models the active document: a set of animation frames, each
// with its own committed palette, and the undoable command that applies a
// palette range to one of them.
package doc

import (
	"fmt"

	"github.com/MeKo-Tech/paletteedit/internal/color"
	"github.com/MeKo-Tech/paletteedit/internal/palette"
)

// Document holds one committed palette per frame. The committed palettes
// are the last values recorded in the undo history; the live palette is
// reconciled against them on every commit.
type Document struct {
	name   string
	frames []*palette.Palette
}

// New creates a document with frames frames of paletteSize entries each.
func New(name string, frames, paletteSize int) *Document {
	if frames < 1 {
		frames = 1
	}
	d := &Document{name: name, frames: make([]*palette.Palette, frames)}
	for i := range d.frames {
		d.frames[i] = palette.New(paletteSize)
	}
	return d
}

// Name returns the document name.
func (d *Document) Name() string { return d.name }

// Frames returns the frame count.
func (d *Document) Frames() int { return len(d.frames) }

// Palette returns the committed palette of a frame, or nil when the frame
// is out of range.
func (d *Document) Palette(frame int) *palette.Palette {
	if frame < 0 || frame >= len(d.frames) {
		return nil
	}
	return d.frames[frame]
}

// SetPaletteRange applies a snapshot of colors to the inclusive index range
// [from, to] of a frame's committed palette. Revert restores the colors the
// range held before the first Execute.
type SetPaletteRange struct {
	doc      *Document
	frame    int
	from, to int
	colors   []color.RGBA
	prev     []color.RGBA
}

// NewSetPaletteRange snapshots src's [from, to] range. The snapshot is
// taken immediately so later mutations of src do not leak into the command.
func NewSetPaletteRange(d *Document, frame int, src *palette.Palette, from, to int) *SetPaletteRange {
	colors := make([]color.RGBA, 0, to-from+1)
	for i := from; i <= to; i++ {
		colors = append(colors, src.Entry(i))
	}
	return &SetPaletteRange{doc: d, frame: frame, from: from, to: to, colors: colors}
}

// Range returns the affected inclusive index range.
func (c *SetPaletteRange) Range() (from, to int) { return c.from, c.to }

// Frame returns the target frame.
func (c *SetPaletteRange) Frame() int { return c.frame }

// Colors returns the snapshot this command applies.
func (c *SetPaletteRange) Colors() []color.RGBA { return c.colors }

// Execute writes the snapshot into the committed palette, capturing the
// previous range on first run.
func (c *SetPaletteRange) Execute() error {
	target := c.doc.Palette(c.frame)
	if target == nil {
		return fmt.Errorf("frame %d out of range (document has %d frames)", c.frame, c.doc.Frames())
	}
	if c.prev == nil {
		c.prev = make([]color.RGBA, 0, len(c.colors))
		for i := c.from; i <= c.to; i++ {
			c.prev = append(c.prev, target.Entry(i))
		}
	}
	for i, col := range c.colors {
		target.SetEntry(c.from+i, col)
	}
	return nil
}

// Revert restores the captured previous range.
func (c *SetPaletteRange) Revert() error {
	target := c.doc.Palette(c.frame)
	if target == nil {
		return fmt.Errorf("frame %d out of range (document has %d frames)", c.frame, c.doc.Frames())
	}
	if c.prev == nil {
		return fmt.Errorf("revert before execute for range [%d,%d]", c.from, c.to)
	}
	for i, col := range c.prev {
		target.SetEntry(c.from+i, col)
	}
	return nil
}
