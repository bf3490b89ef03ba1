package control

import (
	"github.com/MeKo-Tech/paletteedit/internal/color"
	"github.com/MeKo-Tech/paletteedit/internal/edit"
	"github.com/MeKo-Tech/paletteedit/internal/palette"
)

// DefaultLabel is the operation label palette edits are recorded under.
const DefaultLabel = "Color Change"

// Session is the headless editing surface: it resolves the current picks,
// routes channel and full-color edit events through the edit engine, and
// commits the results. One Session corresponds to one open editor.
type Session struct {
	ctl       *Controller
	selection SelectionSource
	label     string
}

// NewSession wraps a controller with pick resolution against the given
// selection source.
func NewSession(ctl *Controller, selection SelectionSource) *Session {
	return &Session{ctl: ctl, selection: selection, label: DefaultLabel}
}

// Controller returns the underlying controller.
func (s *Session) Controller() *Controller { return s.ctl }

// SetLabel overrides the operation label for subsequent edits.
func (s *Session) SetLabel(label string) {
	if label != "" {
		s.label = label
	}
}

// Picks resolves the current selection: the explicit selected indices, or
// the cursor entry when nothing is explicitly selected. May be empty, in
// which case edits are no-ops.
func (s *Session) Picks() *palette.Picks {
	picks := palette.NewPicks(s.ctl.Live().Len())
	if s.selection == nil {
		return picks
	}
	for _, i := range s.selection.SelectedIndices() {
		picks.Pick(i)
	}
	if picks.Count() == 0 {
		if i, ok := s.selection.CursorEntry(); ok {
			picks.Pick(i)
		}
	}
	return picks
}

// SetColor applies a full-color absolute edit to every selected entry.
func (s *Session) SetColor(c color.Color) {
	s.ctl.CommitEdit(s.ctl.Editor().ApplyColor(s.Picks(), c), s.label)
}

// SetChannel applies an absolute single-channel edit.
func (s *Session) SetChannel(ch color.Channel, payload color.Color) {
	s.ctl.CommitEdit(s.ctl.Editor().ApplyChannel(s.Picks(), ch, payload), s.label)
}

// AdjustChannel applies a relative edit: delta is accumulated and every
// selected entry is recomputed from the frozen baseline.
func (s *Session) AdjustChannel(ch color.Channel, delta float64) {
	s.ctl.CommitEdit(s.ctl.Editor().AdjustChannel(s.Picks(), ch, delta), s.label)
}

// SetSpace switches the active color space. The open undo session closes;
// what survives in the delta store is governed by the configured reset
// scope.
func (s *Session) SetSpace(sp color.Space) {
	if sp == s.ctl.Editor().Space() {
		return
	}
	s.ctl.FinalizeSession()
	s.ctl.Editor().SetSpace(sp)
}

// SetMode switches between absolute and relative editing, closing the open
// undo session and resetting the relative state.
func (s *Session) SetMode(m edit.Mode) {
	if m == s.ctl.Editor().Mode() {
		return
	}
	s.ctl.FinalizeSession()
	s.ctl.Editor().SetMode(m)
}

// OnSelectionChanged must be called when the selected entries change
// externally: the open session closes and the relative baseline re-freezes.
func (s *Session) OnSelectionChanged() {
	s.ctl.FinalizeSession()
	s.ctl.Editor().ResetRelative()
}

// Tick forwards a timer firing to the controller.
func (s *Session) Tick() { s.ctl.Tick() }

// Close force-finalizes the session before the editing surface is torn
// down.
func (s *Session) Close() { s.ctl.Close() }
