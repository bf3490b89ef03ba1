// Package swatch renders palettes as PNG swatch sheets for previews.
package swatch

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"os"

	"github.com/disintegration/gift"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/MeKo-Tech/paletteedit/internal/color"
	"github.com/MeKo-Tech/paletteedit/internal/palette"
)

// Options controls sheet layout.
type Options struct {
	// CellSize is the edge length of one swatch in pixels (default 16).
	CellSize int
	// Columns is the number of swatches per row (default 16).
	Columns int
	// Scale upscales the finished sheet with nearest-neighbor resampling
	// to keep swatch edges crisp (default 1, no scaling).
	Scale int
	// Labels draws the entry index under each swatch. Requires a CellSize
	// of at least 24 to fit the glyphs.
	Labels bool
}

func (o Options) withDefaults() Options {
	if o.CellSize <= 0 {
		o.CellSize = 16
	}
	if o.Columns <= 0 {
		o.Columns = 16
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	return o
}

// Render draws the palette as a grid of swatches. Translucent entries are
// composited over an alpha checkerboard.
func Render(p *palette.Palette, opts Options) (*image.NRGBA, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("palette is empty")
	}
	opts = opts.withDefaults()

	cols := opts.Columns
	rows := (p.Len() + cols - 1) / cols
	cell := opts.CellSize

	sheet := image.NewNRGBA(image.Rect(0, 0, cols*cell, rows*cell))

	for i := 0; i < p.Len(); i++ {
		c := p.Entry(i)
		x0 := (i % cols) * cell
		y0 := (i / cols) * cell
		for y := y0; y < y0+cell; y++ {
			for x := x0; x < x0+cell; x++ {
				sheet.SetNRGBA(x, y, overChecker(x, y, c, cell))
			}
		}
		if opts.Labels && cell >= 24 {
			drawLabel(sheet, x0+2, y0+cell-3, fmt.Sprintf("%d", i))
		}
	}

	if opts.Scale > 1 {
		g := gift.New(gift.Resize(sheet.Bounds().Dx()*opts.Scale, 0, gift.NearestNeighborResampling))
		dst := image.NewNRGBA(g.Bounds(sheet.Bounds()))
		g.Draw(dst, sheet)
		return dst, nil
	}
	return sheet, nil
}

// WritePNG renders the palette and writes it to path.
func WritePNG(path string, p *palette.Palette, opts Options) error {
	img, err := Render(p, opts)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// overChecker composites the swatch color over the light/dark alpha
// checkerboard. Opaque colors pass through unchanged.
func overChecker(x, y int, c color.RGBA, cell int) stdcolor.NRGBA {
	if c.A == 255 {
		return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}

	bg := uint8(200)
	half := cell / 2
	if half < 1 {
		half = 1
	}
	if (x/half+y/half)%2 == 1 {
		bg = 150
	}

	a := int(c.A)
	blend := func(fg uint8) uint8 {
		return uint8((int(fg)*a + int(bg)*(255-a)) / 255)
	}
	return stdcolor.NRGBA{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: 255}
}

// drawLabel renders small index text with the fixed 7x13 face.
func drawLabel(dst *image.NRGBA, x, y int, text string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(stdcolor.NRGBA{A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
