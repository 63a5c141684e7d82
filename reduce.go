// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

// RawNode is an unreduced decision node supplied by the caller: a variable
// and two child references into the same slice the RawNode came from.
// References 0 and 1 are reserved for the False and True terminals
// respectively, matching NodeID's own convention, and a reference i >= 2
// names raw[i-2], so a RawNode graph can reference terminals without a
// special case.
type RawNode struct {
	Var  VarID
	Low  int
	High int
}

// Reduce folds a raw, possibly redundant or non-canonical node graph into
// the manager's own canonical representation, applying the same unique-
// table hash-consing that every other construction path goes through.
// It brings in a diagram that was not built incrementally through
// Ite/Apply: the imported graph is free to contain duplicate or
// test-redundant nodes and Reduce collapses them. LoadDDDMP and LoadBDD do
// not go through Reduce; they rebuild their nodes with Ite/Not and makeNode
// respectively.
//
// root uses the same reference scheme as RawNode.Low/High (0/1 for a
// constant document). Reduce returns ErrUnknownNode if any reference is out
// of range.
func (m *Manager) Reduce(raw []RawNode, root int) (NodeID, error) {
	unlock := m.wlock()
	defer unlock()

	memo := make([]NodeID, len(raw))
	seen := make([]bool, len(raw))

	var rec func(i int) (NodeID, error)
	rec = func(i int) (NodeID, error) {
		if i == 0 {
			return BDDFalse, nil
		}
		if i == 1 {
			return BDDTrue, nil
		}
		idx := i - 2
		if idx < 0 || idx >= len(raw) {
			return 0, ErrUnknownNode
		}
		if seen[idx] {
			return memo[idx], nil
		}
		n := raw[idx]
		m.checkVar(n.Var)
		low, err := rec(n.Low)
		if err != nil {
			return 0, err
		}
		high, err := rec(n.High)
		if err != nil {
			return 0, err
		}
		res := m.makeNode(n.Var, low, high)
		memo[idx] = res
		seen[idx] = true
		return res, nil
	}

	return rec(root)
}
