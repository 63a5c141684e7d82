// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

// WindowPermute exhaustively tries every permutation of the variables
// currently occupying levels [low, high] and leaves the manager in
// whichever arrangement produced the fewest active nodes. The window is
// capped at 6 levels (720 permutations): beyond that the exhaustive search
// stops being cheaper than Sifting.
//
// It walks the n! permutations using the Steinhaus-Johnson-Trotter
// ("plain changes") ordering, which visits every permutation through a
// sequence of adjacent transpositions — exactly the primitive Swap
// provides — rather than rebuilding the window from scratch each time.
func (m *Manager) WindowPermute(low, high int) map[NodeID]NodeID {
	n := high - low + 1
	if n < 2 || n > 6 {
		panicUsage("window [%d,%d] must span between 2 and 6 levels, got %d", low, high, n)
	}
	unlock := m.wlock()
	defer unlock()

	positions := johnsonTrotterSwaps(n)

	sizes := make([]int, len(positions)+1)
	sizes[0] = len(m.nodes) - len(m.free)

	merged := make(map[NodeID]NodeID)
	for i, pos := range positions {
		subst := m.swapLocked(low + pos)
		for old, to := range subst {
			merged[old] = to
		}
		for old, to := range merged {
			if next, ok := subst[to]; ok {
				merged[old] = next
			}
		}
		sizes[i+1] = len(m.nodes) - len(m.free)
	}

	best := 0
	for i, s := range sizes {
		if s < sizes[best] {
			best = i
		}
	}

	// Swap is its own inverse at a given level (it always exchanges
	// whichever two variables currently sit there), so the suffix of the
	// explored sequence is undone by replaying it backwards.
	for i := len(positions) - 1; i >= best; i-- {
		subst := m.swapLocked(low + positions[i])
		for old, to := range subst {
			merged[old] = to
		}
		for old, to := range merged {
			if next, ok := subst[to]; ok {
				merged[old] = next
			}
		}
	}

	return merged
}

// johnsonTrotterSwaps returns, for n elements, the n!-1 adjacent-position
// swaps ("plain changes" order) that visit every permutation of
// {0,...,n-1} starting from the identity.
func johnsonTrotterSwaps(n int) []int {
	perm := make([]int, n)
	dir := make([]int, n) // -1: points left, +1: points right
	for i := range perm {
		perm[i] = i
		dir[i] = -1
	}

	total := 1
	for i := 2; i <= n; i++ {
		total *= i
	}

	swaps := make([]int, 0, total-1)
	for step := 1; step < total; step++ {
		mobile, mobileVal := -1, -1
		for i, v := range perm {
			j := i + dir[i]
			if j < 0 || j >= n {
				continue
			}
			if perm[j] < v && v > mobileVal {
				mobile, mobileVal = i, v
			}
		}
		j := mobile + dir[mobile]
		pos := mobile
		if j < pos {
			pos = j
		}
		swaps = append(swaps, pos)

		perm[mobile], perm[j] = perm[j], perm[mobile]
		dir[mobile], dir[j] = dir[j], dir[mobile]
		for i := range perm {
			if perm[i] > mobileVal {
				dir[i] = -dir[i]
			}
		}
	}
	return swaps
}
