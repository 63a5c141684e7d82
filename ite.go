// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

// Ite computes the node representing (f AND g) OR (NOT f AND h), the
// universal if-then-else connective. Every binary operation can be
// expressed through it, although Apply computes AND/OR/XOR with its own
// recursion and cache rather than calling Ite.
func (m *Manager) Ite(f, g, h NodeID) NodeID {
	unlock := m.wlock()
	defer unlock()
	defer m.startSpan("Ite").End()
	m.checkNode(f)
	m.checkNode(g)
	m.checkNode(h)

	m.initref()
	m.pushref(f)
	m.pushref(g)
	m.pushref(h)
	res := m.ite(f, g, h)
	m.popref(3)
	return res
}

// Not returns the negation of n.
func (m *Manager) Not(n NodeID) NodeID {
	unlock := m.wlock()
	defer unlock()
	m.checkNode(n)
	m.initref()
	m.pushref(n)
	res := m.not(n)
	m.popref(1)
	return res
}

// not is a dedicated recursive walk rather than a call back into ite: Ite's
// own "g==False, h==True" case delegates here, and calling back into ite
// with the same (f, False, True) triple would just match that case again.
// Its results share iteCache's storage with any direct Ite(n, False, True)
// call, since the two compute the same thing.
func (m *Manager) not(n NodeID) NodeID {
	if n == BDDFalse {
		return BDDTrue
	}
	if n == BDDTrue {
		return BDDFalse
	}
	if res, ok := m.iteCache.lookup(n, BDDFalse, BDDTrue); ok {
		return res
	}
	low := m.pushref(m.not(m.nodes[n].low))
	high := m.pushref(m.not(m.nodes[n].high))
	res := m.makeNode(m.nodes[n].v, low, high)
	m.popref(2)
	m.iteCache.set(n, BDDFalse, BDDTrue, res)
	return res
}

func (m *Manager) ite(f, g, h NodeID) NodeID {
	switch {
	case f == BDDTrue:
		return g
	case f == BDDFalse:
		return h
	case g == h:
		return g
	case g == BDDTrue && h == BDDFalse:
		return f
	case g == BDDFalse && h == BDDTrue:
		return m.not(f)
	}
	if res, ok := m.iteCache.lookup(f, g, h); ok {
		return res
	}

	p, q, r := m.level(f), m.level(g), m.level(h)
	low := m.pushref(m.ite(m.iteChild(f, p, q, r, false), m.iteChild(g, q, p, r, false), m.iteChild(h, r, p, q, false)))
	high := m.pushref(m.ite(m.iteChild(f, p, q, r, true), m.iteChild(g, q, p, r, true), m.iteChild(h, r, p, q, true)))
	m.popref(2)

	res := m.makeNode(m.order.varAt(min3(p, q, r)), low, high)
	m.iteCache.set(f, g, h, res)
	return res
}

// iteChild returns n's low (or high, if high is true) child when n sits at
// the minimum of the three operand levels (self <= other1 && self <= other2)
// — the variable currently being cofactored on — and n unchanged otherwise,
// since a node that does not yet depend on that variable cofactors to
// itself.
func (m *Manager) iteChild(n NodeID, self, other1, other2 int, high bool) NodeID {
	if self > other1 || self > other2 {
		return n
	}
	if high {
		return m.nodes[n].high
	}
	return m.nodes[n].low
}

func min3(p, q, r int) int {
	if p <= q {
		if p <= r {
			return p
		}
		return r
	}
	if q <= r {
		return q
	}
	return r
}
