package coalesce

import (
	"testing"
	"time"
)

func TestDefaultWindow(t *testing.T) {
	c := New(Config{})
	if c.Window() != 250*time.Millisecond {
		t.Errorf("Window() = %v, want 250ms", c.Window())
	}
	if got := New(Config{Window: time.Second}).Window(); got != time.Second {
		t.Errorf("Window() = %v, want 1s", got)
	}
}

func TestImplantDecision(t *testing.T) {
	c := New(Config{})

	// First edit: no session yet, never implant.
	if c.ShouldImplant("Color Change", "", false) {
		t.Error("implant before any edit")
	}
	c.NoteEdit()

	if !c.ShouldImplant("Color Change", "Color Change", true) {
		t.Error("matching label within session should implant")
	}
	if c.ShouldImplant("Color Change", "Other Op", true) {
		t.Error("label mismatch should not implant")
	}
	if c.ShouldImplant("Color Change", "", false) {
		t.Error("empty history should not implant")
	}

	c.Finalize()
	if c.ShouldImplant("Color Change", "Color Change", true) {
		t.Error("implant after finalize")
	}
}

func TestTwoPhaseTick(t *testing.T) {
	var views, finals int
	c := New(Config{
		OnViewRedraw: func() { views++ },
		OnFinalize:   func() { finals++ },
	})

	// Idle ticks do nothing.
	c.Tick()
	if views != 0 || finals != 0 {
		t.Fatalf("idle tick fired callbacks: views=%d finals=%d", views, finals)
	}

	c.NoteEdit()
	c.Tick()
	if views != 1 || finals != 0 {
		t.Fatalf("first tick: views=%d finals=%d, want 1,0", views, finals)
	}
	c.Tick()
	if views != 1 || finals != 1 {
		t.Fatalf("second tick: views=%d finals=%d, want 1,1", views, finals)
	}
	if c.SessionOpen() {
		t.Error("session still open after finalize tick")
	}
}

// An edit between ticks rewinds the phase, postponing the finalize.
func TestEditBetweenTicksPostponesFinalize(t *testing.T) {
	var views, finals int
	c := New(Config{
		OnViewRedraw: func() { views++ },
		OnFinalize:   func() { finals++ },
	})

	c.NoteEdit()
	c.Tick() // view
	c.NoteEdit()
	c.Tick() // view again, not finalize
	if views != 2 || finals != 0 {
		t.Fatalf("views=%d finals=%d, want 2,0", views, finals)
	}
	c.Tick()
	if finals != 1 {
		t.Fatalf("finals=%d, want 1", finals)
	}
}

func TestFinalizeIdempotent(t *testing.T) {
	var finals int
	c := New(Config{OnFinalize: func() { finals++ }})

	c.Finalize()
	if finals != 0 {
		t.Fatalf("finalize while idle fired callback")
	}

	c.NoteEdit()
	c.Finalize()
	c.Finalize()
	if finals != 1 {
		t.Errorf("finals = %d, want 1", finals)
	}
	if c.TickPhase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", c.TickPhase())
	}
}
