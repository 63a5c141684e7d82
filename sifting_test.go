// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiftNeverIncreasesActiveNodesAndPreservesSatCount(t *testing.T) {
	m, err := New(6)
	require.NoError(t, err)
	f := buildSandwichLikeFormula(t, m)
	m.PurgeRetain(f)

	want := m.SatCount(f)
	before := m.CountActive()

	subst := m.Sift(3, 0, m.NumVars()-1)
	if to, ok := subst[f]; ok {
		f = to
	}
	m.PurgeRetain(f)

	assert.LessOrEqual(t, m.CountActive(), before)
	assert.Equal(t, 0, want.Cmp(m.SatCount(f)))
}

func TestSiftAllVarsConvergesAndIsStableOnRepeat(t *testing.T) {
	m, err := New(6)
	require.NoError(t, err)
	f := buildSandwichLikeFormula(t, m)
	m.PurgeRetain(f)
	want := m.SatCount(f)

	siftAll := func(root NodeID) NodeID {
		for v := VarID(1); int(v) <= m.NumVars(); v++ {
			subst := m.Sift(v, 0, m.NumVars()-1)
			if to, ok := subst[root]; ok {
				root = to
			}
		}
		m.PurgeRetain(root)
		return root
	}

	f = siftAll(f)
	firstSize := m.CountActive()
	f = siftAll(f)
	secondSize := m.CountActive()

	assert.Equal(t, 0, want.Cmp(m.SatCount(f)))
	assert.LessOrEqual(t, secondSize, firstSize, "a second identical sift pass should not grow the diagram")
}

func TestSiftOutOfRangeStartPanics(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	assert.Panics(t, func() { m.Sift(1, 1, 2) }) // variable 1 starts at level 0
}
