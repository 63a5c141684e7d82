// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

// Apply computes the node for op(left, right), for op one of OPand, OPor or
// OPxor. Apply is defined directly (not as a thin wrapper over Ite) so it
// can use its own truth-table fast paths and its own cache, which is keyed
// on the operator as well as the two operands.
func (m *Manager) Apply(left, right NodeID, op Operator) NodeID {
	unlock := m.wlock()
	defer unlock()
	defer m.startSpan("Apply").End()
	m.checkNode(left)
	m.checkNode(right)

	m.initref()
	m.pushref(left)
	m.pushref(right)
	res := m.apply(left, right, op)
	m.popref(2)
	return res
}

// And is a convenience wrapper around Apply(left, right, OPand).
func (m *Manager) And(left, right NodeID) NodeID { return m.Apply(left, right, OPand) }

// Or is a convenience wrapper around Apply(left, right, OPor).
func (m *Manager) Or(left, right NodeID) NodeID { return m.Apply(left, right, OPor) }

// Xor is a convenience wrapper around Apply(left, right, OPxor).
func (m *Manager) Xor(left, right NodeID) NodeID { return m.Apply(left, right, OPxor) }

func (m *Manager) apply(left, right NodeID, op Operator) NodeID {
	switch op {
	case OPand:
		switch {
		case left == right:
			return left
		case left == BDDFalse || right == BDDFalse:
			return BDDFalse
		case left == BDDTrue:
			return right
		case right == BDDTrue:
			return left
		}
	case OPor:
		switch {
		case left == right:
			return left
		case left == BDDTrue || right == BDDTrue:
			return BDDTrue
		case left == BDDFalse:
			return right
		case right == BDDFalse:
			return left
		}
	case OPxor:
		switch {
		case left == right:
			return BDDFalse
		case left == BDDFalse:
			return right
		case right == BDDFalse:
			return left
		}
	}

	if left < 2 && right < 2 {
		return NodeID(opres[op][left][right])
	}
	if res, ok := m.applyCache.lookup(left, right, op); ok {
		return res
	}

	leftLvl, rightLvl := m.level(left), m.level(right)
	var res NodeID
	switch {
	case leftLvl == rightLvl:
		low := m.pushref(m.apply(m.nodes[left].low, m.nodes[right].low, op))
		high := m.pushref(m.apply(m.nodes[left].high, m.nodes[right].high, op))
		res = m.makeNode(m.order.varAt(leftLvl), low, high)
	case leftLvl < rightLvl:
		low := m.pushref(m.apply(m.nodes[left].low, right, op))
		high := m.pushref(m.apply(m.nodes[left].high, right, op))
		res = m.makeNode(m.order.varAt(leftLvl), low, high)
	default:
		low := m.pushref(m.apply(left, m.nodes[right].low, op))
		high := m.pushref(m.apply(left, m.nodes[right].high, op))
		res = m.makeNode(m.order.varAt(rightLvl), low, high)
	}
	m.popref(2)
	m.applyCache.set(left, right, op, res)
	return res
}
