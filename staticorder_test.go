// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertIsPermutation(t *testing.T, order []VarID, numVars int) {
	t.Helper()
	require.Len(t, order, numVars)
	seen := make(map[VarID]bool, numVars)
	for _, v := range order {
		assert.GreaterOrEqual(t, int(v), 1)
		assert.LessOrEqual(t, int(v), numVars)
		assert.False(t, seen[v], "variable %d placed twice", v)
		seen[v] = true
	}
}

func TestApplyStaticOrderNoOrderingIsIdentity(t *testing.T) {
	cnf := &CNF{NumVars: 4}
	order := ApplyStaticOrder(cnf, NoOrdering)
	assertIsPermutation(t, order, 4)
	for i, v := range order {
		assert.Equal(t, VarID(i+1), v)
	}
}

func TestApplyStaticOrderRandomOrderingIsAPermutation(t *testing.T) {
	cnf := &CNF{NumVars: 8}
	order := ApplyStaticOrder(cnf, RandomOrdering)
	assertIsPermutation(t, order, 8)
}

func TestApplyStaticOrderForceOrderingIsAPermutation(t *testing.T) {
	cnf := &CNF{
		NumVars: 6,
		Clauses: []Clause{
			{1, 2, -3}, {1, -2, 3}, {-1, -2, 3},
			{4, 5, -6}, {4, -5, 6}, {-4, -5, 6},
			{1, -4}, {2, 5},
		},
	}
	order := ApplyStaticOrder(cnf, ForceOrdering)
	assertIsPermutation(t, order, 6)
}

func TestApplyStaticOrderForceOrderingOnNoVariablesIsEmpty(t *testing.T) {
	cnf := &CNF{NumVars: 0}
	order := ApplyStaticOrder(cnf, ForceOrdering)
	assert.Empty(t, order)
}

func TestWithInitialOrderSeedsTheManager(t *testing.T) {
	order := []VarID{3, 1, 2}
	m, err := New(3, WithInitialOrder(order))
	require.NoError(t, err)

	// With all three variables in its support, a conjunction's top test is
	// whichever variable the order places first.
	f := m.And(m.And(m.Ithvar(3), m.Ithvar(1)), m.Ithvar(2))
	assert.Equal(t, order[0], m.Var(f))
}
