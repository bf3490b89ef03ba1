package palette

import (
	"testing"

	"github.com/MeKo-Tech/paletteedit/internal/color"
)

func TestNewDefaults(t *testing.T) {
	p := New(4)
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}
	if got := p.Entry(0); got != (color.RGBA{A: 255}) {
		t.Errorf("Entry(0) = %v, want opaque black", got)
	}
	if got := p.Entry(99); got != (color.RGBA{}) {
		t.Errorf("out-of-range Entry = %v, want zero", got)
	}
}

func TestCountDiff(t *testing.T) {
	a := New(8)
	b := a.Clone()

	from, to := a.CountDiff(b)
	if from <= to {
		t.Fatalf("identical palettes: from=%d to=%d, want from > to", from, to)
	}

	b.SetEntry(2, color.RGBA{R: 1, A: 255})
	b.SetEntry(5, color.RGBA{G: 1, A: 255})
	from, to = a.CountDiff(b)
	if from != 2 || to != 5 {
		t.Errorf("CountDiff = [%d,%d], want [2,5]", from, to)
	}

	// Single entry difference collapses to a one-element range.
	c := a.Clone()
	c.SetEntry(7, color.RGBA{B: 9, A: 255})
	from, to = a.CountDiff(c)
	if from != 7 || to != 7 {
		t.Errorf("CountDiff = [%d,%d], want [7,7]", from, to)
	}
}

func TestCopyColorsTo(t *testing.T) {
	src := FromColors([]color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}})
	dst := New(0)
	src.CopyColorsTo(dst)
	if dst.Len() != 2 || dst.Entry(1) != (color.RGBA{G: 2, A: 255}) {
		t.Errorf("CopyColorsTo gave %v", dst.HexList())
	}

	// Copies are independent.
	src.SetEntry(0, color.RGBA{B: 3, A: 255})
	if dst.Entry(0) != (color.RGBA{R: 1, A: 255}) {
		t.Error("dst aliases src after copy")
	}
}

func TestParseHexList(t *testing.T) {
	p, err := ParseHexList("#ff0000, #00ff00\n#0000ff80")
	if err != nil {
		t.Fatalf("ParseHexList: %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	if p.Entry(2) != (color.RGBA{B: 255, A: 0x80}) {
		t.Errorf("Entry(2) = %v", p.Entry(2))
	}

	if _, err := ParseHexList("#ff0000 nope"); err == nil {
		t.Error("ParseHexList with bad entry should fail")
	}
}

func TestPicks(t *testing.T) {
	k := PicksOf(8, 0, 2, 99, -1)
	if k.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", k.Count())
	}
	if !k.Picked(0) || !k.Picked(2) || k.Picked(1) {
		t.Errorf("membership wrong: %v", k.Indices())
	}

	var seen []int
	k.Each(func(i int) { seen = append(seen, i) })
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 2 {
		t.Errorf("Each order = %v, want [0 2]", seen)
	}

	k.Unpick(0)
	if k.Count() != 1 {
		t.Errorf("Count after Unpick = %d, want 1", k.Count())
	}
	k.Clear()
	if k.Count() != 0 {
		t.Errorf("Count after Clear = %d, want 0", k.Count())
	}
}
