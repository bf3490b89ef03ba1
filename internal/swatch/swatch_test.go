package swatch

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/paletteedit/internal/color"
	"github.com/MeKo-Tech/paletteedit/internal/palette"
)

func TestRenderDimensions(t *testing.T) {
	p := palette.New(10)
	img, err := Render(p, Options{CellSize: 8, Columns: 4})
	require.NoError(t, err)

	// 10 entries in 4 columns need 3 rows.
	require.Equal(t, 32, img.Bounds().Dx())
	require.Equal(t, 24, img.Bounds().Dy())
}

func TestRenderOpaqueCellColor(t *testing.T) {
	p := palette.FromColors([]color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
	})
	img, err := Render(p, Options{CellSize: 4, Columns: 2})
	require.NoError(t, err)

	c := img.NRGBAAt(1, 1)
	require.Equal(t, uint8(255), c.R)
	require.Equal(t, uint8(0), c.G)

	c = img.NRGBAAt(5, 1)
	require.Equal(t, uint8(0), c.R)
	require.Equal(t, uint8(255), c.G)
}

func TestRenderTranslucentChecker(t *testing.T) {
	p := palette.FromColors([]color.RGBA{{A: 0}})
	img, err := Render(p, Options{CellSize: 8, Columns: 1})
	require.NoError(t, err)

	// A fully transparent swatch shows the raw checkerboard: light and
	// dark halves must differ.
	light := img.NRGBAAt(1, 1)
	dark := img.NRGBAAt(5, 1)
	require.Equal(t, uint8(200), light.R)
	require.Equal(t, uint8(150), dark.R)
	require.Equal(t, uint8(255), light.A, "sheet itself stays opaque")
}

func TestRenderScale(t *testing.T) {
	p := palette.New(4)
	img, err := Render(p, Options{CellSize: 4, Columns: 4, Scale: 3})
	require.NoError(t, err)
	require.Equal(t, 48, img.Bounds().Dx())
	require.Equal(t, 12, img.Bounds().Dy())
}

func TestRenderEmptyPalette(t *testing.T) {
	_, err := Render(palette.New(0), Options{})
	require.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	p, err := palette.ParseHexList("#ff0000 #00ff00 #0000ff")
	require.NoError(t, err)

	require.NoError(t, WritePNG(path, p, Options{CellSize: 8, Columns: 3}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 24, img.Bounds().Dx())
	require.Equal(t, 8, img.Bounds().Dy())
}
