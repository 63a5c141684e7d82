// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eval walks n down to a terminal following assignment (1-indexed, entries
// for variables n's diagram never tests are ignored).
func eval(m *Manager, n NodeID, assignment map[VarID]bool) bool {
	for n >= 2 {
		v := m.Var(n)
		if assignment[v] {
			n = m.High(n)
		} else {
			n = m.Low(n)
		}
	}
	return n == BDDTrue
}

func allAssignments(vars []VarID, f func(map[VarID]bool)) {
	n := len(vars)
	for mask := 0; mask < 1<<n; mask++ {
		a := make(map[VarID]bool, n)
		for i, v := range vars {
			a[v] = mask&(1<<i) != 0
		}
		f(a)
	}
}

func TestIteTerminalShortCircuits(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	f := m.Ithvar(1)
	g := m.Ithvar(2)

	assert.Equal(t, f, m.Ite(f, BDDTrue, BDDFalse))
	assert.Equal(t, g, m.Ite(BDDTrue, g, BDDFalse))
	assert.Equal(t, g, m.Ite(BDDFalse, BDDFalse, g))
	assert.Equal(t, BDDTrue, m.Ite(f, BDDTrue, BDDTrue))
}

func TestNotInvolution(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	f := m.And(m.Ithvar(1), m.Or(m.Ithvar(2), m.NIthvar(3)))
	nn := m.Not(m.Not(f))
	assert.Equal(t, f, nn, "not(not(f)) should be identical by canonicity, not just equal under eval")
}

func TestApplyCommutativity(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	f := m.Or(m.Ithvar(1), m.NIthvar(2))
	g := m.And(m.Ithvar(2), m.Ithvar(3))

	assert.Equal(t, m.And(f, g), m.And(g, f))
	assert.Equal(t, m.Or(f, g), m.Or(g, f))
	assert.Equal(t, m.Xor(f, g), m.Xor(g, f))
}

func TestApplyTruthTableAgainstEvaluation(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	vars := []VarID{1, 2, 3}
	f := m.Or(m.Ithvar(1), m.NIthvar(2))
	g := m.And(m.Ithvar(2), m.Ithvar(3))

	and := m.And(f, g)
	or := m.Or(f, g)
	xor := m.Xor(f, g)
	not := m.Not(f)

	allAssignments(vars, func(a map[VarID]bool) {
		fv, gv := eval(m, f, a), eval(m, g, a)
		assert.Equal(t, fv && gv, eval(m, and, a))
		assert.Equal(t, fv || gv, eval(m, or, a))
		assert.Equal(t, fv != gv, eval(m, xor, a))
		assert.Equal(t, !fv, eval(m, not, a))
	})
}

func TestApplyTerminalCollapses(t *testing.T) {
	m, err := New(1)
	require.NoError(t, err)
	v := m.Ithvar(1)

	assert.Equal(t, BDDFalse, m.And(BDDFalse, v))
	assert.Equal(t, v, m.And(BDDTrue, v))
	assert.Equal(t, v, m.Or(BDDFalse, v))
	assert.Equal(t, BDDTrue, m.Or(BDDTrue, v))
	assert.Equal(t, v, m.Xor(BDDFalse, v))
	assert.Equal(t, m.Not(v), m.Xor(BDDTrue, v))
}

func TestApplyEqualOperandsCollapse(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	f := m.Or(m.Ithvar(1), m.Ithvar(2))

	assert.Equal(t, f, m.And(f, f))
	assert.Equal(t, f, m.Or(f, f))
	assert.Equal(t, BDDFalse, m.Xor(f, f))
}
