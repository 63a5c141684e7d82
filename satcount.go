// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import "math/big"

// SatCount returns the number of satisfying assignments of n over all
// numVars variables, using arbitrary-precision arithmetic since the count
// grows exponentially with the variable count. Assignments that don't
// mention a variable (because n's diagram skips it) are counted for both
// of that variable's values, same as Manager.AllSat's don't-care entries.
func (m *Manager) SatCount(n NodeID) *big.Int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.checkNode(n)

	res := big.NewInt(0)
	res.SetBit(res, m.level(n), 1)
	memo := make(map[NodeID]*big.Int)
	return res.Mul(res, m.satcount(n, memo))
}

func (m *Manager) satcount(n NodeID, memo map[NodeID]*big.Int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	if res, ok := memo[n]; ok {
		return res
	}
	lvl := m.level(n)
	low, high := m.nodes[n].low, m.nodes[n].high

	res := big.NewInt(0)
	skip := big.NewInt(0)
	skip.SetBit(skip, m.level(low)-lvl-1, 1)
	res.Add(res, skip.Mul(skip, m.satcount(low, memo)))

	skip = big.NewInt(0)
	skip.SetBit(skip, m.level(high)-lvl-1, 1)
	res.Add(res, skip.Mul(skip, m.satcount(high, memo)))

	memo[n] = res
	return res
}

// AllSat calls f once for every satisfying assignment of n, represented as
// a slice indexed by variable (1..numVars; index 0 is unused) where each
// entry is 0, 1, or -1 for a don't-care variable the diagram never tests.
// Don't-care entries let one call to f stand in for every assignment that
// agrees on the tested variables, so the number of calls can be far
// smaller than SatCount's result. AllSat stops and returns f's error as
// soon as f returns one.
func (m *Manager) AllSat(n NodeID, f func(assignment []int) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.checkNode(n)

	profile := make([]int, m.numVars+1)
	for i := range profile {
		profile[i] = -1
	}
	return m.allsat(n, profile, f)
}

func (m *Manager) allsat(n NodeID, profile []int, f func([]int) error) error {
	if n == BDDTrue {
		return f(profile)
	}
	if n == BDDFalse {
		return nil
	}

	v := m.nodes[n].v
	if low := m.nodes[n].low; low != BDDFalse {
		profile[v] = 0
		for lvl := m.level(low) - 1; lvl > m.order.level(v); lvl-- {
			profile[m.order.varAt(lvl)] = -1
		}
		if err := m.allsat(low, profile, f); err != nil {
			return err
		}
	}
	if high := m.nodes[n].high; high != BDDFalse {
		profile[v] = 1
		for lvl := m.level(high) - 1; lvl > m.order.level(v); lvl-- {
			profile[m.order.varAt(lvl)] = -1
		}
		if err := m.allsat(high, profile, f); err != nil {
			return err
		}
	}
	profile[v] = -1
	return nil
}
