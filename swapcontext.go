// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

// SwapContext is a private, speculative working copy of a Manager's node
// table and variable order, used to explore a sequence of candidate Swaps
// without taking the shared Manager's lock on every step. Several
// SwapContexts over disjoint level ranges can be explored concurrently by
// separate goroutines; only the final, chosen Swap sequence needs to touch
// the shared Manager, through Commit.
type SwapContext struct {
	clone *Manager
	path  []int
}

// NewSwapContext clones the manager's current state under a read lock. The
// clone is a private *Manager the caller's goroutine owns exclusively: its
// methods are called directly against the clone's locked entry points
// (which still acquire the clone's own, uncontended mutex) so a
// SwapContext is safe to explore from a single goroutine without any
// further synchronisation with the original Manager.
func (m *Manager) NewSwapContext() *SwapContext {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return &SwapContext{clone: m.cloneLocked()}
}

func (m *Manager) cloneLocked() *Manager {
	c := &Manager{
		numVars: m.numVars,
		order:   m.order.clone(),
		config:  m.config,
	}
	c.nodes = append([]decisionNode(nil), m.nodes...)
	c.free = append([]NodeID(nil), m.free...)
	c.unique = make([]map[uniqueKey]NodeID, len(m.unique))
	for i, tbl := range m.unique {
		cp := make(map[uniqueKey]NodeID, len(tbl))
		for k, v := range tbl {
			cp[k] = v
		}
		c.unique[i] = cp
	}
	c.iteCache = newITECache(256)
	c.applyCache = newApplyCache(256)
	c.quantCache = newQuantCache(256)
	c.appexCache = newAppexCache(256)
	c.quantMark = make([]int, len(m.quantMark))
	return c
}

// TrySwap applies one adjacent swap at level to the context's private
// clone and records it on the candidate path. It returns the clone's
// active node count after the swap, the figure of merit Sifting and
// WindowPermute use to pick a best position.
func (sc *SwapContext) TrySwap(level int) int {
	sc.clone.swapLocked(level)
	sc.path = append(sc.path, level)
	return len(sc.clone.nodes) - len(sc.clone.free)
}

// Size reports the clone's current active node count without swapping.
func (sc *SwapContext) Size() int {
	return len(sc.clone.nodes) - len(sc.clone.free)
}

// Path returns the sequence of levels swapped so far, in order.
func (sc *SwapContext) Path() []int {
	return append([]int(nil), sc.path...)
}

// Truncate discards every recorded swap past the first n, so that a caller
// that has found the best-scoring prefix of the explored path can commit
// only that much of it. Sift and WindowPermute do not use SwapContext.
func (sc *SwapContext) Truncate(n int) {
	sc.path = sc.path[:n]
}

// SiftWithin runs Rudell's sifting algorithm for v across [low, high] on
// the context's private clone, recording every swap it performs onto the
// context's path so a later Commit can replay the whole exploration
// against the shared manager. Unlike Manager.Sift, which commits as it
// searches, this only ever touches the clone.
func (sc *SwapContext) SiftWithin(v VarID, low, high int) {
	sc.clone.mu.Lock()
	defer sc.clone.mu.Unlock()

	start := sc.clone.order.level(v)
	if start < low || start > high {
		panicUsage("variable %d at level %d is outside sift range [%d,%d]", v, start, low, high)
	}

	levels := []int{start}
	sizes := []int{len(sc.clone.nodes) - len(sc.clone.free)}

	cur := start
	step := func(level int) {
		sc.clone.swapLocked(level)
		sc.path = append(sc.path, level)
	}
	for cur < high {
		step(cur)
		cur++
		levels = append(levels, cur)
		sizes = append(sizes, len(sc.clone.nodes)-len(sc.clone.free))
	}
	for cur > low {
		step(cur - 1)
		cur--
		levels = append(levels, cur)
		sizes = append(sizes, len(sc.clone.nodes)-len(sc.clone.free))
	}

	best := 0
	for i, s := range sizes {
		if s < sizes[best] {
			best = i
		}
	}
	target := levels[best]
	for cur < target {
		step(cur)
		cur++
	}
	for cur > target {
		step(cur - 1)
		cur--
	}
}

// Commit replays a SwapContext's recorded path against the real, shared
// Manager under its exclusive lock, and returns the merged substitution
// map produced across every replayed Swap (later substitutions are
// resolved through earlier ones, so a caller only has to do one lookup per
// NodeID it is holding).
func (m *Manager) Commit(sc *SwapContext) map[NodeID]NodeID {
	unlock := m.wlock()
	defer unlock()

	merged := make(map[NodeID]NodeID)
	for _, level := range sc.path {
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
	return merged
}
