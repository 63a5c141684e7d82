// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIthvarNIthvarAreDistinctAndCanonical(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)

	x1 := m.Ithvar(1)
	nx1 := m.NIthvar(1)
	assert.NotEqual(t, x1, nx1)

	// Requesting the same literal again must hit the unique table, not
	// allocate a second node with the same (var, low, high) triple.
	again := m.Ithvar(1)
	assert.Equal(t, x1, again)
}

func TestMakeNodeCollapsesEqualChildren(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	unlock := m.wlock()
	n := m.makeNode(1, BDDTrue, BDDTrue)
	unlock()
	assert.Equal(t, BDDTrue, n, "low == high must collapse per reduction rule R2")
}

func TestWellFormedNodeInvariant(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	f := m.And(m.Ithvar(1), m.Or(m.Ithvar(2), m.NIthvar(3)))

	err = m.AllNodes(func(id NodeID, level int, low, high NodeID) error {
		if id < 2 {
			return nil
		}
		assert.NotEqual(t, low, high, "node %d has low == high, should have collapsed", id)
		assert.Less(t, level, m.level(low))
		assert.Less(t, level, m.level(high))
		return nil
	}, f)
	require.NoError(t, err)
}

func TestCanonicityNoDuplicateTriples(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	f := m.And(m.Ithvar(1), m.Or(m.Ithvar(2), m.Ithvar(3)))
	g := m.And(m.Ithvar(4), m.Or(m.Ithvar(2), m.Ithvar(3)))
	_ = f
	_ = g

	type triple struct {
		v         VarID
		low, high NodeID
	}
	seen := make(map[triple]NodeID)
	err = m.AllNodes(func(id NodeID, level int, low, high NodeID) error {
		if id < 2 {
			return nil
		}
		key := triple{v: m.Var(id), low: low, high: high}
		if other, ok := seen[key]; ok {
			t.Fatalf("nodes %d and %d share structure %+v", id, other, key)
		}
		seen[key] = id
		return nil
	})
	require.NoError(t, err)
}

func TestPurgeRetainReclaimsUnreachable(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	f := m.And(m.Ithvar(1), m.Ithvar(2))
	_ = m.Or(m.Ithvar(1), m.Ithvar(3)) // built but not retained

	before := m.CountActive()
	m.PurgeRetain(f)
	after := m.CountActive()
	assert.Less(t, after, before)

	err = m.AllNodes(func(id NodeID, level int, low, high NodeID) error {
		return nil
	})
	require.NoError(t, err)
}

func TestPurgeRetainIsIdempotent(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	f := m.And(m.Ithvar(1), m.Or(m.Ithvar(2), m.Ithvar(3)))

	m.PurgeRetain(f)
	first := m.CountActive()
	m.PurgeRetain(f)
	second := m.CountActive()
	assert.Equal(t, first, second)
}

func TestWithMaxNodesPanicsWhenTableCannotGrowFurther(t *testing.T) {
	m, err := New(20, WithNodesize(2), WithMaxNodes(4), WithMinFreeNodes(0))
	require.NoError(t, err)
	assert.Panics(t, func() {
		for v := VarID(1); int(v) <= m.NumVars(); v++ {
			m.Ithvar(v)
		}
	}, "building enough distinct nodes to exceed WithMaxNodes should panic with ErrNodeLimitExceeded")
}

func TestWithMaxNodesAllowsExactlyTheConfiguredCap(t *testing.T) {
	m, err := New(20, WithNodesize(2), WithMaxNodes(64), WithMinFreeNodes(0))
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		m.And(m.Ithvar(1), m.Ithvar(2))
	})
	assert.LessOrEqual(t, len(m.nodes), 64)
}

func TestWithMaxNodeIncreaseCapsEachGrowthStep(t *testing.T) {
	m, err := New(4, WithNodesize(2), WithMaxNodeIncrease(3))
	require.NoError(t, err)
	before := len(m.nodes)
	m.growStep()
	assert.LessOrEqual(t, len(m.nodes)-before, 3)
}

func TestWithCacheRatioResizesCachesOnGrowth(t *testing.T) {
	m, err := New(4, WithNodesize(1024), WithCacheSize(256), WithCacheRatio(50))
	require.NoError(t, err)
	before := len(m.iteCache.table)
	m.growStep()
	after := len(m.iteCache.table)
	assert.NotEqual(t, before, after, "iteCache should be resized once the node table grows under a non-zero WithCacheRatio")
}

func TestCheckNodeRejectsFreedID(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	f := m.Ithvar(1)
	m.PurgeRetain() // retains nothing, f becomes free
	assert.Panics(t, func() { m.checkNode(f) })
}
