// Package generate produces procedural starter palettes by walking Perlin
// noise through hue, saturation, and value.
package generate

import (
	"fmt"

	"github.com/aquilax/go-perlin"

	"github.com/MeKo-Tech/paletteedit/internal/color"
	"github.com/MeKo-Tech/paletteedit/internal/palette"
)

// Config controls palette generation.
type Config struct {
	// Entries is the palette size.
	Entries int
	// Seed makes generation deterministic.
	Seed int64
	// BaseHue is the hue in degrees the walk is centered on.
	BaseHue float64
	// HueSpread is how far in degrees the walk may wander (default 120).
	HueSpread float64
	// Scale controls the noise frequency along the palette (default 4).
	Scale float64
}

func (c Config) withDefaults() Config {
	if c.HueSpread <= 0 {
		c.HueSpread = 120
	}
	if c.Scale <= 0 {
		c.Scale = 4
	}
	return c
}

// Palette generates a palette of cfg.Entries colors. Adjacent entries vary
// smoothly because all three channels follow continuous noise.
func Palette(cfg Config) (*palette.Palette, error) {
	if cfg.Entries <= 0 {
		return nil, fmt.Errorf("entries must be positive, got %d", cfg.Entries)
	}
	cfg = cfg.withDefaults()

	// alpha: persistence, beta: lacunarity, n: octaves.
	p := perlin.NewPerlin(2.0, 2.0, 3, cfg.Seed)

	colors := make([]color.RGBA, cfg.Entries)
	for i := range colors {
		t := float64(i) / float64(cfg.Entries) * cfg.Scale

		// Noise values are roughly in [-1, 1]; each channel samples a
		// shifted track so they do not move in lockstep.
		hN := p.Noise1D(t + 0.13)
		sN := p.Noise1D(t + 17.7)
		vN := p.Noise1D(t + 31.3)

		hsv := color.HSV{
			H: color.WrapHue(cfg.BaseHue + hN*cfg.HueSpread),
			S: 0.55 + 0.35*sN,
			V: 0.65 + 0.3*vN,
			A: 255,
		}
		colors[i] = color.HSVToRGB(hsv)
	}
	return palette.FromColors(colors), nil
}
