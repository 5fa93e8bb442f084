package model

// LeftoverPool holds the offcut stock shared across one recalculation pass.
//
// The pool is a value: allocation code clones it, consumes and registers
// leftovers on the clone, and returns the updated pool alongside its
// results. Ordering across runs is therefore explicit in the caller, and
// two passes never alias each other's state.
type LeftoverPool struct {
	Items []Leftover `json:"items"`
}

// NewLeftoverPool builds a pool from the given leftovers.
func NewLeftoverPool(items ...Leftover) LeftoverPool {
	p := LeftoverPool{Items: make([]Leftover, len(items))}
	copy(p.Items, items)
	return p
}

// Clone returns an independent copy of the pool.
func (p LeftoverPool) Clone() LeftoverPool {
	return NewLeftoverPool(p.Items...)
}

// Available returns the leftovers still open for matching.
func (p LeftoverPool) Available() []Leftover {
	var out []Leftover
	for _, l := range p.Items {
		if !l.Consumed {
			out = append(out, l)
		}
	}
	return out
}

// Add registers a new leftover at the end of the pool.
func (p *LeftoverPool) Add(l Leftover) {
	p.Items = append(p.Items, l)
}

// ConsumeBest marks and returns the largest unconsumed leftover whose
// length covers requiredMM plus the cutting buffer. Ties are broken by
// pool order: the earliest of the equal-length candidates wins, so
// identical pools always yield identical matches.
func (p *LeftoverPool) ConsumeBest(requiredMM float64) (Leftover, bool) {
	bestIdx := -1
	for i, l := range p.Items {
		if l.Consumed || l.LengthMM < requiredMM+CutBuffer {
			continue
		}
		if bestIdx < 0 || l.LengthMM > p.Items[bestIdx].LengthMM {
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return Leftover{}, false
	}
	p.Items[bestIdx].Consumed = true
	return p.Items[bestIdx], true
}
