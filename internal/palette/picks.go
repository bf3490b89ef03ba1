package palette

// Picks is a boolean selection mask over a palette. Insertion order is
// irrelevant; only membership matters.
type Picks struct {
	picked []bool
}

// NewPicks creates an empty mask for a palette of size entries.
func NewPicks(size int) *Picks {
	if size < 0 {
		size = 0
	}
	return &Picks{picked: make([]bool, size)}
}

// PicksOf builds a mask of the given size with the listed indices selected.
// Out-of-range indices are ignored.
func PicksOf(size int, indices ...int) *Picks {
	k := NewPicks(size)
	for _, i := range indices {
		k.Pick(i)
	}
	return k
}

// Len returns the mask length.
func (k *Picks) Len() int { return len(k.picked) }

// Pick selects index i.
func (k *Picks) Pick(i int) {
	if i >= 0 && i < len(k.picked) {
		k.picked[i] = true
	}
}

// Unpick deselects index i.
func (k *Picks) Unpick(i int) {
	if i >= 0 && i < len(k.picked) {
		k.picked[i] = false
	}
}

// Picked reports whether index i is selected.
func (k *Picks) Picked(i int) bool {
	return i >= 0 && i < len(k.picked) && k.picked[i]
}

// Count returns the number of selected indices.
func (k *Picks) Count() int {
	n := 0
	for _, p := range k.picked {
		if p {
			n++
		}
	}
	return n
}

// Each calls fn for every selected index in ascending order.
func (k *Picks) Each(fn func(i int)) {
	for i, p := range k.picked {
		if p {
			fn(i)
		}
	}
}

// Indices returns the selected indices in ascending order.
func (k *Picks) Indices() []int {
	out := make([]int, 0, k.Count())
	for i, p := range k.picked {
		if p {
			out = append(out, i)
		}
	}
	return out
}

// Clear deselects everything.
func (k *Picks) Clear() {
	for i := range k.picked {
		k.picked[i] = false
	}
}
