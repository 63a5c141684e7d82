// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

// Sift moves v through every level in [low, high] — first to one end, then
// back across the whole range to the other — and leaves it at whichever
// level along the way produced the fewest active nodes. This is Rudell's
// sifting algorithm, the default workhorse reordering strategy: unlike
// WindowPermute it scales to as many levels as the manager has, at the
// cost of only considering v's own position rather than every variable's.
func (m *Manager) Sift(v VarID, low, high int) map[NodeID]NodeID {
	unlock := m.wlock()
	defer unlock()
	defer m.startSpan("Sift").End()
	m.checkVar(v)

	start := m.order.level(v)
	if start < low || start > high {
		panicUsage("variable %d at level %d is outside sift range [%d,%d]", v, start, low, high)
	}

	merged := make(map[NodeID]NodeID)
	applySwap := func(level int) {
		subst := m.swapLocked(level)
		for old, to := range subst {
			merged[old] = to
		}
		for old, to := range merged {
			if next, ok := subst[to]; ok {
				merged[old] = next
			}
		}
	}

	levels := []int{start}
	sizes := []int{len(m.nodes) - len(m.free)}

	cur := start
	for cur < high {
		applySwap(cur)
		cur++
		levels = append(levels, cur)
		sizes = append(sizes, len(m.nodes)-len(m.free))
	}
	for cur > low {
		applySwap(cur - 1)
		cur--
		levels = append(levels, cur)
		sizes = append(sizes, len(m.nodes)-len(m.free))
	}

	best := 0
	for i, s := range sizes {
		if s < sizes[best] {
			best = i
		}
	}
	target := levels[best]
	for cur < target {
		applySwap(cur)
		cur++
	}
	for cur > target {
		applySwap(cur - 1)
		cur--
	}
	return merged
}
