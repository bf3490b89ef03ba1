// Package control reconciles the live palette against the active document's
// committed palette and records the minimal changed range into the undo
// history, coalescing bursts of edits into single undoable operations.
//
// Collaborators (document source, undo recorder, selection source,
// notification sinks) are supplied through the constructor so the engine
// never reaches for process-wide state.
package control

import (
	"log/slog"
	"time"

	"github.com/MeKo-Tech/paletteedit/internal/coalesce"
	"github.com/MeKo-Tech/paletteedit/internal/color"
	"github.com/MeKo-Tech/paletteedit/internal/doc"
	"github.com/MeKo-Tech/paletteedit/internal/edit"
	"github.com/MeKo-Tech/paletteedit/internal/palette"
	"github.com/MeKo-Tech/paletteedit/internal/undo"
)

// Recorder is the undo-history contract consumed on commit. *undo.History
// satisfies it.
type Recorder interface {
	// Record executes cmd inside a new transaction labelled label.
	Record(label string, cmd undo.Command) error
	// Implant appends cmd to the most recently executed operation and
	// executes it immediately.
	Implant(cmd undo.Command) error
	// LastLabel returns the label of the most recently executed operation.
	LastLabel() (string, bool)
}

// DocumentSource supplies the active document and frame, sampled at the
// start of each commit.
type DocumentSource interface {
	ActiveDocument() (d *doc.Document, frame int, ok bool)
}

// SelectionSource supplies the selected palette entries. CursorEntry is the
// fallback when no explicit selection exists.
type SelectionSource interface {
	SelectedIndices() []int
	CursorEntry() (int, bool)
}

// Notifier receives fire-and-forget redraw and error notifications. The
// redraw sinks are only invoked from Tick, never from inside CommitEdit.
type Notifier interface {
	PaletteChanged()
	DocumentRedraw()
	ViewRedraw()
	Error(err error)
}

// Journal optionally receives every committed range for durable replay.
type Journal interface {
	Record(frame, from, to int, colors []color.RGBA) error
}

// Config configures a Controller. Live is required; every collaborator is
// optional and degrades to a no-op when nil.
type Config struct {
	Live       *palette.Palette
	Documents  DocumentSource
	Recorder   Recorder
	Notify     Notifier
	Journal    Journal
	Logger     *slog.Logger
	Window     time.Duration
	Space      color.Space
	ResetScope edit.ResetScope
}

// Controller owns the live palette for the duration of a session, applies
// selection edits to it, and pushes changed ranges into the undo history.
type Controller struct {
	live      *palette.Palette
	docs      DocumentSource
	recorder  Recorder
	notify    Notifier
	journal   Journal
	logger    *slog.Logger
	editor    *edit.Editor
	coalescer *coalesce.Coalescer
}

// New creates a controller with a fresh edit engine and coalescer.
func New(cfg Config) *Controller {
	live := cfg.Live
	if live == nil {
		live = palette.New(0)
	}
	c := &Controller{
		live:     live,
		docs:     cfg.Documents,
		recorder: cfg.Recorder,
		notify:   cfg.Notify,
		journal:  cfg.Journal,
		logger:   cfg.Logger,
	}
	if c.notify == nil {
		c.notify = nopNotifier{}
	}
	c.editor = edit.New(edit.Config{Live: live, Space: cfg.Space, ResetScope: cfg.ResetScope})
	c.coalescer = coalesce.New(coalesce.Config{
		Window:       cfg.Window,
		OnViewRedraw: c.notify.ViewRedraw,
		OnFinalize: func() {
			c.notify.PaletteChanged()
			c.notify.DocumentRedraw()
		},
	})
	return c
}

// Live returns the live palette.
func (c *Controller) Live() *palette.Palette { return c.live }

// Editor returns the selection edit engine.
func (c *Controller) Editor() *edit.Editor { return c.editor }

// Window returns the coalescing tick interval the host should drive Tick with.
func (c *Controller) Window() time.Duration { return c.coalescer.Window() }

// TickPending reports whether a redraw tick is outstanding.
func (c *Controller) TickPending() bool {
	return c.coalescer.TickPhase() != coalesce.PhaseIdle
}

// CommitEdit writes the edited colors into the live palette and records the
// changed range against the active document. With no active document only
// the live palette is updated. Undo-layer failures are reported through the
// notifier and never roll back the live palette.
func (c *Controller) CommitEdit(colors map[int]color.RGBA, label string) {
	if len(colors) == 0 {
		return
	}
	for i, col := range colors {
		c.live.SetEntry(i, col)
	}

	d, frame, ok := c.activeDocument()
	if !ok {
		c.log().Warn("no active document; palette edit not recorded", "label", label)
		return
	}
	committed := d.Palette(frame)
	if committed == nil {
		c.log().Warn("active frame has no palette; palette edit not recorded",
			"label", label, "frame", frame)
		return
	}

	from, to := committed.CountDiff(c.live)
	if from > to {
		return
	}

	cmd := doc.NewSetPaletteRange(d, frame, c.live, from, to)
	last, have := c.recorder.LastLabel()
	var err error
	if c.coalescer.ShouldImplant(label, last, have) {
		err = c.recorder.Implant(cmd)
	} else {
		err = c.recorder.Record(label, cmd)
	}
	if err != nil {
		c.log().Warn("failed to record palette change",
			"label", label, "from", from, "to", to, "error", err)
		c.notify.Error(err)
	} else if c.journal != nil {
		if jerr := c.journal.Record(frame, from, to, cmd.Colors()); jerr != nil {
			c.log().Warn("failed to journal palette change",
				"frame", frame, "from", from, "to", to, "error", jerr)
		}
	}

	c.coalescer.NoteEdit()
}

// Tick drives the two-phase redraw machinery. The first tick after an edit
// fires a view-only redraw; the second consecutive tick finalizes the
// session, broadcasts, and resets the relative-edit state.
func (c *Controller) Tick() {
	finalizing := c.coalescer.TickPhase() == coalesce.PhaseAwaitingFinalize
	c.coalescer.Tick()
	if finalizing {
		c.editor.ResetRelative()
	}
}

// FinalizeSession closes the open undo session (no further implants) and
// broadcasts. The relative-edit state is left to the caller, since a
// color-space switch keeps part of it depending on the configured scope.
func (c *Controller) FinalizeSession() {
	c.coalescer.Finalize()
}

// Close force-finalizes any open session and resets the edit engine. Must
// be called before the editing surface is torn down.
func (c *Controller) Close() {
	c.coalescer.Finalize()
	c.editor.ResetRelative()
}

func (c *Controller) activeDocument() (*doc.Document, int, bool) {
	if c.docs == nil || c.recorder == nil {
		return nil, 0, false
	}
	d, frame, ok := c.docs.ActiveDocument()
	if !ok || d == nil {
		return nil, 0, false
	}
	return d, frame, true
}

func (c *Controller) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

type nopNotifier struct{}

func (nopNotifier) PaletteChanged() {}
func (nopNotifier) DocumentRedraw() {}
func (nopNotifier) ViewRedraw()     {}
func (nopNotifier) Error(error)     {}
