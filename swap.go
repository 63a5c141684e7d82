// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

// Swap exchanges the variables at level and level+1, rewriting every node
// at level in place so the function each one represents is preserved. It
// is the single primitive every dynamic-reordering strategy (Sifting,
// WindowPermute, the concurrent SwapContext explorers) builds on.
//
// Swap returns a substitution map from retired node ids to the id that now
// represents the same function, non-empty exactly when one of the
// rewritten nodes collapsed (its post-swap low and high children turned
// out equal). Any NodeID a caller is holding onto across a Swap call
// should be looked up in this map; Swap applies it to every registered
// View automatically, since Views are owned by the manager, but it cannot
// see NodeIDs held outside the manager (e.g. a builder's running
// conjunction root).
//
// Swap panics if level does not name an adjacent pair of levels below the
// terminal level.
func (m *Manager) Swap(level int) map[NodeID]NodeID {
	unlock := m.wlock()
	defer unlock()
	return m.swapLocked(level)
}

func (m *Manager) swapLocked(level int) map[NodeID]NodeID {
	if level < 0 || level+1 >= m.order.numLevels()-1 {
		panicUsage("level %d has no level+1 to swap with below the terminal level", level)
	}

	x := m.order.varAt(level)
	y := m.order.varAt(level + 1)

	oldX := m.unique[level]
	oldY := m.unique[level+1]

	// upper ends up at m.unique[level]: it is keyed exactly like oldY (low/high
	// pairs never change across the swap), just reattributed to y's new home.
	// lower ends up at m.unique[level+1], holding the newly-introduced
	// x-labeled nodes the relabelled f's now point at; no node can already
	// live there, since level+1 only ever held y-labelled nodes.
	upper := make(map[uniqueKey]NodeID, len(oldX)+len(oldY))
	lower := make(map[uniqueKey]NodeID, 2*len(oldX))
	subst := make(map[NodeID]NodeID)

	for key, id := range oldY {
		upper[key] = id
	}

	// Reserve headroom for the worst case (every old x-node producing two
	// distinct new children) up front: the unique tables are mid-rebuild for
	// the rest of this function, so allocation here must not trigger
	// makeNode or anything that could run a PurgeRetain pass, since m.unique
	// and the variable order are temporarily inconsistent.
	m.reserveNodes(2 * len(oldX))

	internLower := func(low, high NodeID) NodeID {
		if low == high {
			return low
		}
		key := uniqueKey{low: low, high: high}
		if id, ok := lower[key]; ok {
			m.uniqueHit++
			return id
		}
		m.uniqueMiss++
		id := m.allocNodeRaw(x, low, high)
		lower[key] = id
		return id
	}

	for key, id := range oldX {
		f0, f1 := key.low, key.high
		f00, f01 := m.cofactorOn(f0, y)
		f10, f11 := m.cofactorOn(f1, y)

		newlow := internLower(f00, f10)
		newhigh := internLower(f01, f11)

		if newlow == newhigh {
			subst[id] = newlow
			m.nodes[id].free = true
			m.free = append(m.free, id)
			continue
		}

		newKey := uniqueKey{low: newlow, high: newhigh}
		if existing, ok := upper[newKey]; ok {
			// id's relabelled identity coincides with a node already homed
			// at this level (an untouched y-node, or an earlier relabelled
			// x-node): id is now redundant, retire it in favour of existing
			// so the unique table stays canonical.
			m.uniqueHit++
			subst[id] = existing
			m.nodes[id].free = true
			m.free = append(m.free, id)
			continue
		}
		m.uniqueMiss++
		m.nodes[id] = decisionNode{v: y, low: newlow, high: newhigh}
		upper[newKey] = id
	}

	m.unique[level] = upper
	m.unique[level+1] = lower

	m.order.swapAdjacent(level)

	if len(subst) > 0 {
		m.patchReferences(subst)
	}

	m.iteCache.reset()
	m.applyCache.reset()
	m.quantCache.reset()
	m.appexCache.reset()

	return subst
}

// cofactorOn returns f's (low, high) pair with respect to variable v: if f
// is already labelled v, that is literally f's children; otherwise f does
// not depend on v and both cofactors are f itself.
func (m *Manager) cofactorOn(f NodeID, v VarID) (low, high NodeID) {
	if f >= 2 && m.nodes[f].v == v {
		return m.nodes[f].low, m.nodes[f].high
	}
	return f, f
}

// patchReferences rewrites every remaining node's low/high fields and
// every view's base that names a retired id, following subst to its final
// target (a retired id's target is never itself retired, since makeNode
// only ever returns live ids).
func (m *Manager) patchReferences(subst map[NodeID]NodeID) {
	for i := 2; i < len(m.nodes); i++ {
		n := &m.nodes[i]
		if n.free {
			continue
		}
		if to, ok := subst[n.low]; ok {
			n.low = to
		}
		if to, ok := subst[n.high]; ok {
			n.high = to
		}
	}
	for lvl := range m.unique {
		table := m.unique[lvl]
		type fix struct {
			oldKey, newKey uniqueKey
			id             NodeID
		}
		var fixes []fix
		for key, id := range table {
			to1, ok1 := subst[key.low]
			to2, ok2 := subst[key.high]
			if !ok1 && !ok2 {
				continue
			}
			newKey := key
			if ok1 {
				newKey.low = to1
			}
			if ok2 {
				newKey.high = to2
			}
			fixes = append(fixes, fix{oldKey: key, newKey: newKey, id: id})
		}
		for _, f := range fixes {
			delete(table, f.oldKey)
			table[f.newKey] = f.id
		}
	}
	for _, v := range m.views {
		if to, ok := subst[v.base]; ok {
			v.base = to
		}
		if v.fresh {
			if to, ok := subst[v.cached]; ok {
				v.cached = to
			}
		}
	}
}
