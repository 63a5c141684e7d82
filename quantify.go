// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

// Exist computes the existential quantification of n over vars: the
// disjunction of n's cofactors with every variable in vars set to 0 and to
// 1 in turn, folded bottom-up in a single pass (quant) rather than built
// variable by variable.
func (m *Manager) Exist(n NodeID, vars VarSet) NodeID {
	unlock := m.wlock()
	defer unlock()
	m.checkNode(n)
	return m.quantLocked(n, vars, OPor)
}

// ForAll computes the universal quantification of n over vars, the
// conjunction analogue of Exist.
func (m *Manager) ForAll(n NodeID, vars VarSet) NodeID {
	unlock := m.wlock()
	defer unlock()
	m.checkNode(n)
	return m.quantLocked(n, vars, OPand)
}

// ExistMultiple existentially quantifies every root in ns over vars,
// sharing a single markVarSet pass (and the quantification-cache
// generation it produces) across the whole batch instead of paying for a
// fresh translation-map pass per root the way len(ns) separate Exist calls
// would.
func (m *Manager) ExistMultiple(ns []NodeID, vars VarSet) []NodeID {
	unlock := m.wlock()
	defer unlock()
	return m.quantManyLocked(ns, vars, OPor)
}

// ForAllMultiple is ExistMultiple's universal-quantification analogue.
func (m *Manager) ForAllMultiple(ns []NodeID, vars VarSet) []NodeID {
	unlock := m.wlock()
	defer unlock()
	return m.quantManyLocked(ns, vars, OPand)
}

func (m *Manager) quantManyLocked(ns []NodeID, vars VarSet, op Operator) []NodeID {
	for _, n := range ns {
		m.checkNode(n)
	}
	if vars.Len() == 0 {
		return append([]NodeID(nil), ns...)
	}
	gen, last := m.markVarSet(vars)
	hash := vars.hashcode()
	m.initref()
	for _, n := range ns {
		m.pushref(n)
	}
	res := make([]NodeID, len(ns))
	for i, n := range ns {
		res[i] = m.quant(n, hash, gen, last, op)
	}
	m.popref(len(ns))
	return res
}

// markVarSet bumps the quantification generation and marks the level of
// every variable in vars, so quant/appquant can test "is this level being
// quantified" in O(1) without threading the VarSet itself through the
// recursion. It returns the new generation and the deepest marked level,
// below which no node can possibly depend on a quantified variable.
func (m *Manager) markVarSet(vars VarSet) (generation, lastLevel int) {
	m.quantGen++
	lastLevel = -1
	for _, v := range vars.Slice() {
		lvl := m.order.level(v)
		m.quantMark[lvl] = m.quantGen
		if lvl > lastLevel {
			lastLevel = lvl
		}
	}
	return m.quantGen, lastLevel
}

func (m *Manager) quant(n NodeID, varsetHash, generation, lastLevel int, op Operator) NodeID {
	if n < 2 || m.level(n) > lastLevel {
		return n
	}
	if res, ok := m.quantCache.lookup(n, varsetHash, generation, op); ok {
		return res
	}
	low := m.pushref(m.quant(m.nodes[n].low, varsetHash, generation, lastLevel, op))
	high := m.pushref(m.quant(m.nodes[n].high, varsetHash, generation, lastLevel, op))
	var res NodeID
	if m.quantMark[m.level(n)] == generation {
		res = m.apply(low, high, op)
	} else {
		res = m.makeNode(m.nodes[n].v, low, high)
	}
	m.popref(2)
	m.quantCache.set(n, varsetHash, generation, op, res)
	return res
}

// AppEx applies op to left and right and existentially quantifies the
// result over vars, in a single bottom-up pass: computing the apply and
// the quantification together is significantly cheaper than an Apply
// followed by a separate Exist, since intermediate nodes above the
// quantified variables never have to be built. When op is OPand this is
// the relational product; RelProd is a named alias for that case.
func (m *Manager) AppEx(left, right NodeID, op Operator, vars VarSet) NodeID {
	unlock := m.wlock()
	defer unlock()
	m.checkNode(left)
	m.checkNode(right)
	if vars.Len() == 0 {
		return m.apply(left, right, op)
	}
	gen, last := m.markVarSet(vars)
	m.initref()
	m.pushref(left)
	m.pushref(right)
	res := m.appquant(left, right, gen, last, op)
	m.popref(2)
	return res
}

// RelProd computes Exist(And(left, right), vars) in a single fused pass; it
// is the operation most model-checking transition-relation image
// computations bottleneck on.
func (m *Manager) RelProd(left, right NodeID, vars VarSet) NodeID {
	return m.AppEx(left, right, OPand, vars)
}

func (m *Manager) appquant(left, right NodeID, generation, lastLevel int, op Operator) NodeID {
	switch op {
	case OPand:
		switch {
		case left == BDDFalse || right == BDDFalse:
			return BDDFalse
		case left == right:
			return m.quant(left, 0, generation, lastLevel, OPor)
		case left == BDDTrue:
			return m.quant(right, 0, generation, lastLevel, OPor)
		case right == BDDTrue:
			return m.quant(left, 0, generation, lastLevel, OPor)
		}
	case OPor:
		switch {
		case left == BDDTrue || right == BDDTrue:
			return BDDTrue
		case left == right:
			return m.quant(left, 0, generation, lastLevel, OPor)
		case left == BDDFalse:
			return m.quant(right, 0, generation, lastLevel, OPor)
		case right == BDDFalse:
			return m.quant(left, 0, generation, lastLevel, OPor)
		}
	case OPxor:
		switch {
		case left == right:
			return BDDFalse
		case left == BDDFalse:
			return m.quant(right, 0, generation, lastLevel, OPor)
		case right == BDDFalse:
			return m.quant(left, 0, generation, lastLevel, OPor)
		}
	}

	if left < 2 && right < 2 {
		return NodeID(opres[op][left][right])
	}
	if m.level(left) > lastLevel && m.level(right) > lastLevel {
		return m.apply(left, right, op)
	}
	if res, ok := m.appexCache.lookup(left, right, generation, op); ok {
		return res
	}

	leftLvl, rightLvl := m.level(left), m.level(right)
	var lvl int
	var low, high NodeID
	switch {
	case leftLvl == rightLvl:
		lvl = leftLvl
		low = m.pushref(m.appquant(m.nodes[left].low, m.nodes[right].low, generation, lastLevel, op))
		high = m.pushref(m.appquant(m.nodes[left].high, m.nodes[right].high, generation, lastLevel, op))
	case leftLvl < rightLvl:
		lvl = leftLvl
		low = m.pushref(m.appquant(m.nodes[left].low, right, generation, lastLevel, op))
		high = m.pushref(m.appquant(m.nodes[left].high, right, generation, lastLevel, op))
	default:
		lvl = rightLvl
		low = m.pushref(m.appquant(left, m.nodes[right].low, generation, lastLevel, op))
		high = m.pushref(m.appquant(left, m.nodes[right].high, generation, lastLevel, op))
	}
	var res NodeID
	if m.quantMark[lvl] == generation {
		res = m.apply(low, high, OPor)
	} else {
		res = m.makeNode(m.order.varAt(lvl), low, high)
	}
	m.popref(2)
	m.appexCache.set(left, right, generation, op, res)
	return res
}
