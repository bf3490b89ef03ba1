// Package edit computes new palette colors for a set of selected entries
// from absolute or relative channel edits in the RGB, HSV, or HSL space.
//
// Relative edits never compound onto the live palette: they are recomputed
// from a frozen baseline snapshot plus the accumulated per-channel deltas,
// so replaying or repeating slider events cannot drift.
package edit

import (
	"github.com/MeKo-Tech/paletteedit/internal/color"
	"github.com/MeKo-Tech/paletteedit/internal/palette"
)

// Mode selects between absolute (set exact value) and relative (apply a
// delta) edit semantics.
type Mode int

const (
	Absolute Mode = iota
	Relative
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	if m == Relative {
		return "relative"
	}
	return "absolute"
}

// ResetScope controls which accumulated deltas survive a color-space
// switch. ResetGlobal clears everything and re-freezes the baseline;
// ResetColorspace keeps the baseline and the alpha delta (alpha is shared
// across spaces) and clears only the space-specific channels.
type ResetScope int

const (
	ResetGlobal ResetScope = iota
	ResetColorspace
)

// Config configures an Editor.
type Config struct {
	// Live is the palette the editor reads current entry colors from.
	Live *palette.Palette
	// Space is the initial color space (default RGB).
	Space color.Space
	// ResetScope selects the delta-reset behavior on space switches.
	ResetScope ResetScope
}

// Editor applies edits to selected palette entries. It owns the accumulated
// relative deltas and the baseline snapshot; the live palette is read-only
// from its point of view.
type Editor struct {
	live       *palette.Palette
	baseline   *palette.Palette
	deltas     map[color.Channel]float64
	space      color.Space
	mode       Mode
	resetScope ResetScope
}

// New creates an editor over the given live palette with a fresh baseline.
func New(cfg Config) *Editor {
	e := &Editor{
		live:       cfg.Live,
		baseline:   palette.New(0),
		deltas:     make(map[color.Channel]float64),
		space:      cfg.Space,
		resetScope: cfg.ResetScope,
	}
	e.ResetRelative()
	return e
}

// Space returns the active color space.
func (e *Editor) Space() color.Space { return e.space }

// Mode returns the active edit mode.
func (e *Editor) Mode() Mode { return e.mode }

// SetSpace switches the active color space and resets the relative state
// according to the configured scope.
func (e *Editor) SetSpace(s color.Space) {
	if s == e.space {
		return
	}
	e.space = s
	if e.resetScope == ResetColorspace {
		// Keep the baseline and the space-independent alpha delta so an
		// alpha nudge survives the switch without re-applying twice.
		alpha, hasAlpha := e.deltas[color.Alpha]
		e.deltas = make(map[color.Channel]float64)
		if hasAlpha {
			e.deltas[color.Alpha] = alpha
		}
		return
	}
	e.ResetRelative()
}

// SetMode switches between absolute and relative editing and resets the
// relative state.
func (e *Editor) SetMode(m Mode) {
	if m == e.mode {
		return
	}
	e.mode = m
	e.ResetRelative()
}

// ResetRelative freezes a new baseline from the live palette and clears all
// accumulated deltas. Called on selection changes and when an edit session
// finalizes.
func (e *Editor) ResetRelative() {
	e.live.CopyColorsTo(e.baseline)
	e.deltas = make(map[color.Channel]float64)
}

// ApplyColor computes a full replacement of every selected entry with the
// payload color (the hex-entry path). An empty selection yields an empty
// mapping.
func (e *Editor) ApplyColor(picks *palette.Picks, c color.Color) map[int]color.RGBA {
	out := make(map[int]color.RGBA)
	rgba := c.RGBA()
	picks.Each(func(i int) {
		out[i] = rgba
	})
	return out
}

// ApplyChannel computes an absolute single-channel edit. With exactly one
// selected entry the payload replaces every channel of the active space.
// With multiple entries only the edited channel is overwritten per entry;
// the remaining channels are re-derived from that entry's own current color
// so each entry keeps its own values.
func (e *Editor) ApplyChannel(picks *palette.Picks, ch color.Channel, payload color.Color) map[int]color.RGBA {
	out := make(map[int]color.RGBA)
	if picks.Count() == 1 {
		rgba := e.fullReplace(payload)
		picks.Each(func(i int) {
			out[i] = rgba
		})
		return out
	}
	picks.Each(func(i int) {
		out[i] = e.overwriteChannel(e.live.Entry(i), ch, payload)
	})
	return out
}

// AdjustChannel computes a relative edit: delta is accumulated into the
// touched channel's store, then every selected entry is recomputed from the
// baseline snapshot with all accumulated deltas of the active space
// applied. Hue wraps; every other channel clamps.
func (e *Editor) AdjustChannel(picks *palette.Picks, ch color.Channel, delta float64) map[int]color.RGBA {
	e.deltas[ch] += delta

	out := make(map[int]color.RGBA)
	picks.Each(func(i int) {
		out[i] = e.fromBaseline(e.baseline.Entry(i))
	})
	return out
}

// Delta returns the accumulated delta for a channel (0 when untouched).
func (e *Editor) Delta(ch color.Channel) float64 { return e.deltas[ch] }

// fullReplace converts the payload through the active space into canonical
// form, taking alpha from the payload.
func (e *Editor) fullReplace(payload color.Color) color.RGBA {
	switch e.space {
	case color.SpaceHSV:
		return color.HSVToRGB(payload.HSV())
	case color.SpaceHSL:
		return color.HSLToRGB(payload.HSL())
	}
	return payload.RGBA()
}

// overwriteChannel re-derives the entry's own channels in the active space
// and replaces only the edited one. Each channel is its own case: editing
// red must never touch green.
func (e *Editor) overwriteChannel(cur color.RGBA, ch color.Channel, payload color.Color) color.RGBA {
	switch e.space {
	case color.SpaceHSV:
		hsv := color.RGBToHSV(cur)
		pv := payload.HSV()
		switch ch {
		case color.Hue:
			hsv.H = pv.H
		case color.Saturation:
			hsv.S = pv.S
		case color.Value:
			hsv.V = pv.V
		case color.Alpha:
			hsv.A = payload.AlphaValue()
		}
		return color.HSVToRGB(hsv)

	case color.SpaceHSL:
		hsl := color.RGBToHSL(cur)
		pl := payload.HSL()
		switch ch {
		case color.Hue:
			hsl.H = pl.H
		case color.Saturation:
			hsl.S = pl.S
		case color.Lightness:
			hsl.L = pl.L
		case color.Alpha:
			hsl.A = payload.AlphaValue()
		}
		return color.HSLToRGB(hsl)

	default:
		pr := payload.RGBA()
		switch ch {
		case color.Red:
			cur.R = pr.R
		case color.Green:
			cur.G = pr.G
		case color.Blue:
			cur.B = pr.B
		case color.Alpha:
			cur.A = pr.A
		}
		return cur
	}
}

// fromBaseline recomputes one entry from its baseline color with every
// accumulated delta of the active space applied together.
func (e *Editor) fromBaseline(base color.RGBA) color.RGBA {
	a := color.ClampU8(int(base.A) + int(e.deltas[color.Alpha]))

	switch e.space {
	case color.SpaceHSV:
		hsv := color.RGBToHSV(base)
		hsv.H = color.WrapHue(hsv.H + e.deltas[color.Hue])
		hsv.S = color.Clamp01(hsv.S + e.deltas[color.Saturation])
		hsv.V = color.Clamp01(hsv.V + e.deltas[color.Value])
		hsv.A = a
		return color.HSVToRGB(hsv)

	case color.SpaceHSL:
		hsl := color.RGBToHSL(base)
		hsl.H = color.WrapHue(hsl.H + e.deltas[color.Hue])
		hsl.S = color.Clamp01(hsl.S + e.deltas[color.Saturation])
		hsl.L = color.Clamp01(hsl.L + e.deltas[color.Lightness])
		hsl.A = a
		return color.HSLToRGB(hsl)

	default:
		return color.RGBA{
			R: color.ClampU8(int(base.R) + int(e.deltas[color.Red])),
			G: color.ClampU8(int(base.G) + int(e.deltas[color.Green])),
			B: color.ClampU8(int(base.B) + int(e.deltas[color.Blue])),
			A: a,
		}
	}
}
