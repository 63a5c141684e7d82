// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

// level returns the level of node n's variable in the current order. Both
// terminals report numVars, the order's terminal level, which is always
// greater than any real variable's level.
func (m *Manager) level(n NodeID) int {
	return m.order.level(m.nodes[n].v)
}

// makeNode returns the unique node for (v, low, high), building it if the
// unique table at v's level does not already have it. low == high collapses
// to low, the single reduction rule that keeps the table canonical; the
// unique table itself prevents ever creating two nodes with the same
// triple.
func (m *Manager) makeNode(v VarID, low, high NodeID) NodeID {
	if low == high {
		return low
	}
	lvl := m.order.level(v)
	key := uniqueKey{low: low, high: high}
	if id, ok := m.unique[lvl][key]; ok {
		m.uniqueHit++
		return id
	}
	m.uniqueMiss++
	id := m.allocNode(v, low, high)
	m.unique[lvl][key] = id
	return id
}

// allocNode returns a fresh or recycled slot initialised to (v, low, high).
// It does not register the node in any unique table; callers that bypass
// makeNode (swap.go's internLower) must do that themselves, or avoid needing
// a unique entry at all (e.g. when immediately discarding the node during a
// rebuild).
//
// When the free list is empty, allocNode grows the table following
// WithMaxNodeIncrease/WithMaxNodes/WithMinFreeNodes, just as the teacher's
// noderesize does against its fixed-size array. Unlike the teacher,
// allocNode never runs a GC pass first: gbc is only safe there because
// every node handed to a caller is refcounted (retnode's finalizer), so the
// collector knows exactly what is still alive; this package deliberately
// has no such refcounting (see PurgeRetain's doc), so a node id a caller is
// holding outside a View would have no way to protect itself from an
// implicit sweep. Reclaiming space is always an explicit PurgeRetain call.
// allocNode panics with ErrNodeLimitExceeded if growth is capped below what
// is needed.
func (m *Manager) allocNode(v VarID, low, high NodeID) NodeID {
	m.produced++
	if len(m.free) == 0 {
		m.growNodeTable()
	}
	n := len(m.free)
	id := m.free[n-1]
	m.free = m.free[:n-1]
	m.nodes[id] = decisionNode{v: v, low: low, high: high}
	return id
}

// growNodeTable grows the node table, repeating growStep until the free
// ratio clears WithMinFreeNodes (not just until one slot exists), so a
// single cheap allocation does not immediately force another growth right
// behind it. It panics with ErrNodeLimitExceeded if WithMaxNodes/
// WithMaxNodeIncrease cap growth before any slot is freed, and settles for
// whatever headroom it already has (even under the minfreenodes target) once
// capped with at least one free slot in hand.
func (m *Manager) growNodeTable() {
	for len(m.free) == 0 || m.belowMinFree() {
		if !m.growStep() {
			if len(m.free) > 0 {
				return
			}
			panic(ErrNodeLimitExceeded)
		}
	}
}

// growStep grows the node table once following
// WithMaxNodeIncrease/WithMaxNodes (doubling the table, same as the
// teacher's noderesize, capped by the two options) and resizes the caches
// to match. It reports false if the configured cap leaves no room to grow.
func (m *Manager) growStep() bool {
	cfg := &m.config
	oldsize := len(m.nodes)
	newsize := oldsize * 2
	if newsize <= oldsize {
		newsize = oldsize + 1
	}
	if cfg.maxnodeincrease > 0 && newsize-oldsize > cfg.maxnodeincrease {
		newsize = oldsize + cfg.maxnodeincrease
	}
	if cfg.maxnodesize > 0 && newsize > cfg.maxnodesize {
		newsize = cfg.maxnodesize
	}
	if newsize <= oldsize {
		return false
	}

	grown := make([]decisionNode, newsize)
	copy(grown, m.nodes)
	m.nodes = grown
	for id := oldsize; id < newsize; id++ {
		m.nodes[id].free = true
		m.free = append(m.free, NodeID(id))
	}
	m.resizeCaches(newsize)
	return true
}

// reserveNodes ensures at least n free slots exist by calling growStep
// directly, the same GC-free growth primitive growNodeTable loops over.
// swapLocked uses it to guarantee headroom for both new layers up front,
// since its rebuild runs with m.unique and the variable order in a
// transitional, temporarily inconsistent state that only internLower's
// allocNodeRaw (not makeNode, not any path that could trigger a PurgeRetain)
// may touch. Panics with ErrNodeLimitExceeded if the configured cap cannot
// satisfy n.
func (m *Manager) reserveNodes(n int) {
	for len(m.free) < n {
		if !m.growStep() {
			panic(ErrNodeLimitExceeded)
		}
	}
}

// belowMinFree reports whether the fraction of free node slots has dropped
// to or below the configured WithMinFreeNodes percentage, the same load
// factor the teacher checks to decide whether noderesize is warranted; here
// it instead gates how many growStep iterations growNodeTable runs.
func (m *Manager) belowMinFree() bool {
	if m.config.minfreenodes <= 0 || len(m.nodes) == 0 {
		return false
	}
	return (len(m.free)*100)/len(m.nodes) <= m.config.minfreenodes
}

// allocNodeRaw pops a free slot without ever triggering GC or a table grow.
// swap.go's internLower uses it after reserveNodes has guaranteed enough
// headroom, for the same reason reserveNodes itself avoids the GC path.
func (m *Manager) allocNodeRaw(v VarID, low, high NodeID) NodeID {
	m.produced++
	n := len(m.free)
	if n == 0 {
		panic(ErrNodeLimitExceeded)
	}
	id := m.free[n-1]
	m.free = m.free[:n-1]
	m.nodes[id] = decisionNode{v: v, low: low, high: high}
	return id
}

// CountActive returns the number of live (non-free) nodes currently in the
// manager, terminals included.
func (m *Manager) CountActive() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.nodes) - len(m.free)
}

// PurgeRetain reclaims every node not reachable from roots (or from another
// live View's root, since views share this manager's lifetime). It is the
// only form of garbage collection this package performs: there is no
// reference counting, so callers that stop using a root must call
// PurgeRetain themselves to reclaim it, or the node table only grows.
//
// PurgeRetain invalidates the Ite/Apply/quantification caches, since cached
// results may reference freed ids. Registered Views are not invalidated:
// their base and cached roots are kept alive as if they had been passed in
// roots.
func (m *Manager) PurgeRetain(roots ...NodeID) {
	unlock := m.wlock()
	defer unlock()
	m.purgeRetainLocked(roots...)
}

// purgeRetainLocked is PurgeRetain's body, split out so it can be called
// while m.mu is already held for writing rather than taking the lock again.
func (m *Manager) purgeRetainLocked(roots ...NodeID) {
	m.unmarkAll()
	for _, r := range roots {
		m.checkNode(r)
		m.markrec(r)
	}
	for _, r := range m.refstack {
		m.markrec(r)
	}
	for _, v := range m.views {
		if v.valid {
			m.markrec(v.base)
			if v.fresh {
				m.markrec(v.cached)
			}
		}
	}

	for lvl := range m.unique {
		for k := range m.unique[lvl] {
			delete(m.unique[lvl], k)
		}
	}
	m.free = m.free[:0]

	for id := 2; id < len(m.nodes); id++ {
		n := &m.nodes[id]
		if n.free {
			continue
		}
		if !n.marked {
			n.free = true
			m.free = append(m.free, NodeID(id))
			continue
		}
		n.marked = false
		lvl := m.order.level(n.v)
		m.unique[lvl][uniqueKey{low: n.low, high: n.high}] = NodeID(id)
	}

	m.iteCache.reset()
	m.applyCache.reset()
	m.quantCache.reset()
}
