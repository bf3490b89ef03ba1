// Package coalesce decides whether consecutive palette edits are folded
// into the currently open undoable operation or start a new one, and drives
// the two-phase redraw tick that follows a burst of edits.
package coalesce

import "time"

// DefaultWindow is the default coalescing tick interval.
const DefaultWindow = 250 * time.Millisecond

// Phase is the tick state. After an edit the next tick fires a cheap
// view-only redraw; a second consecutive tick with no intervening edit
// finalizes the session and triggers the full broadcast. This keeps
// expensive full redraws from firing while the user is still dragging.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingView
	PhaseAwaitingFinalize
)

// Config configures a Coalescer.
type Config struct {
	// Window is the tick interval the caller should drive Tick with.
	// Defaults to DefaultWindow.
	Window time.Duration
	// OnViewRedraw fires on the first tick after an edit.
	OnViewRedraw func()
	// OnFinalize fires when the session closes: on the second consecutive
	// tick without edits, or on an explicit Finalize.
	OnFinalize func()
}

// Coalescer is the edit-session state machine. All methods must be called
// from the single control goroutine.
type Coalescer struct {
	window      time.Duration
	onView      func()
	onFinalize  func()
	phase       Phase
	sessionOpen bool
}

// New creates a coalescer in the idle state.
func New(cfg Config) *Coalescer {
	w := cfg.Window
	if w <= 0 {
		w = DefaultWindow
	}
	return &Coalescer{
		window:     w,
		onView:     cfg.OnViewRedraw,
		onFinalize: cfg.OnFinalize,
	}
}

// Window returns the tick interval the caller should use.
func (c *Coalescer) Window() time.Duration { return c.window }

// SessionOpen reports whether an undoable operation is currently open.
func (c *Coalescer) SessionOpen() bool { return c.sessionOpen }

// TickPhase returns the current tick phase.
func (c *Coalescer) TickPhase() Phase { return c.phase }

// ShouldImplant reports whether an edit labelled label belongs in the
// currently open undo command. lastLabel is the label of the most recently
// executed undo command (haveLast is false when the history is empty). The
// decision must be taken before NoteEdit records the edit.
func (c *Coalescer) ShouldImplant(label, lastLabel string, haveLast bool) bool {
	return c.sessionOpen && haveLast && label == lastLabel
}

// NoteEdit records that an edit was committed: the session opens (or stays
// open) and the tick rewinds to the view-redraw phase, postponing the
// finalize.
func (c *Coalescer) NoteEdit() {
	c.sessionOpen = true
	c.phase = PhaseAwaitingView
}

// Tick advances the two-phase state machine. Idle ticks do nothing.
func (c *Coalescer) Tick() {
	switch c.phase {
	case PhaseAwaitingView:
		c.phase = PhaseAwaitingFinalize
		if c.onView != nil {
			c.onView()
		}
	case PhaseAwaitingFinalize:
		c.Finalize()
	}
}

// Finalize closes the open session and fires OnFinalize. Idempotent:
// calling it while idle is a no-op. Used by ticks, by explicit resets
// (selection or color-space change), and on editor close.
func (c *Coalescer) Finalize() {
	if !c.sessionOpen && c.phase == PhaseIdle {
		return
	}
	c.sessionOpen = false
	c.phase = PhaseIdle
	if c.onFinalize != nil {
		c.onFinalize()
	}
}
