// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSandwichLikeFormula(t *testing.T, m *Manager) NodeID {
	t.Helper()
	f := m.Ithvar(1)
	for v := VarID(2); int(v) <= m.NumVars(); v++ {
		var clause NodeID
		if v%2 == 0 {
			clause = m.Or(m.Ithvar(v), m.NIthvar(v-1))
		} else {
			clause = m.Or(m.NIthvar(v), m.Ithvar(v-1))
		}
		f = m.And(f, clause)
	}
	return f
}

func TestDoubleSwapPreservesSatCountAndActiveCount(t *testing.T) {
	m, err := New(5)
	require.NoError(t, err)
	f := buildSandwichLikeFormula(t, m)
	m.PurgeRetain(f)

	satBefore := m.SatCount(f)
	activeBefore := m.CountActive()

	subst1 := m.Swap(1)
	if to, ok := subst1[f]; ok {
		f = to
	}
	subst2 := m.Swap(1)
	if to, ok := subst2[f]; ok {
		f = to
	}

	assert.Equal(t, 0, satBefore.Cmp(m.SatCount(f)))
	assert.Equal(t, activeBefore, m.CountActive())
}

func TestSwapEveryAdjacentPairPreservesSatCount(t *testing.T) {
	m, err := New(5)
	require.NoError(t, err)
	f := buildSandwichLikeFormula(t, m)
	m.PurgeRetain(f)
	want := m.SatCount(f)

	for level := 0; level < m.NumVars()-1; level++ {
		subst := m.Swap(level)
		if to, ok := subst[f]; ok {
			f = to
		}
		got := m.SatCount(f)
		assert.Equal(t, 0, want.Cmp(got), "sat_count changed after swapping level %d", level)
	}
}

func TestSwapOfNonAdjacentLevelPanics(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	assert.Panics(t, func() { m.Swap(-1) })
	assert.Panics(t, func() { m.Swap(m.NumVars() - 1) }) // would touch the terminal level
}

// TestSwapRehomesUniqueTables is a regression test for a canonicity bug: the
// unique table a live node's id was registered under must always match the
// level its own variable currently occupies (NodeStore invariant 1). A swap
// that misfiles the new upper-layer nodes, or forgets to re-home the
// surviving lower-layer ones, leaves stale or missing entries that this test
// would catch even though SatCount (reading levels through the order) does
// not.
func TestSwapRehomesUniqueTables(t *testing.T) {
	m, err := New(6)
	require.NoError(t, err)
	f := buildSandwichLikeFormula(t, m)
	m.PurgeRetain(f)

	for level := 0; level < m.NumVars()-1; level++ {
		m.Swap(level)

		for id := 2; id < len(m.nodes); id++ {
			n := m.nodes[id]
			if n.free {
				continue
			}
			lvl := m.order.level(n.v)
			got, ok := m.unique[lvl][uniqueKey{low: n.low, high: n.high}]
			assert.True(t, ok, "node %d (var %d) missing from unique[%d] after swapping level %d", id, n.v, lvl, level)
			assert.Equal(t, NodeID(id), got, "unique[%d] entry for node %d resolved to a different id after swapping level %d", lvl, id, level)
		}

		for lvl := range m.unique {
			for key, id := range m.unique[lvl] {
				n := m.nodes[id]
				assert.False(t, n.free, "unique[%d] still references freed node %d after swapping level %d", lvl, id, level)
				assert.Equal(t, lvl, m.order.level(n.v), "node %d lives in unique[%d] but its variable is at a different level after swapping level %d", id, lvl, level)
				assert.Equal(t, uniqueKey{low: n.low, high: n.high}, key, "unique[%d] key for node %d does not match its (low,high) after swapping level %d", lvl, id, level)
			}
		}
	}
}

func TestSwapSubstitutionAppliesToViews(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	f := m.And(m.Ithvar(1), m.Ithvar(2))
	view := m.NewView(f, VarSet{}, ExistView)
	defer view.Close()

	before := view.Root()
	m.Swap(0)
	after := view.Root()
	// Root() returns the cached projection, which Swap retargets along with
	// the base; the function represented must be unchanged even though the
	// NodeID may differ.
	assert.Equal(t, eval(m, before, map[VarID]bool{1: true, 2: true}),
		eval(m, after, map[VarID]bool{1: true, 2: true}))
}
