// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromCNFEndToEndExample(t *testing.T) {
	// (a v b v -c)(a v -b v c)(-a v -b v c), from the spec's worked example.
	cnf, err := ParseDIMACS(strings.NewReader(sampleDIMACS))
	require.NoError(t, err)

	m, root, err := BuildFromCNF(cnf)
	require.NoError(t, err)
	assert.Equal(t, 0, big.NewInt(5).Cmp(m.SatCount(root)))
}

func TestBuildFromCNFEmptyClauseSetIsTrue(t *testing.T) {
	cnf := &CNF{NumVars: 3}
	_, root, err := BuildFromCNF(cnf)
	require.NoError(t, err)
	assert.Equal(t, BDDTrue, root)
}

func TestBuildFromCNFContradictionIsFalse(t *testing.T) {
	cnf := &CNF{NumVars: 1, Clauses: []Clause{{1}, {-1}}}
	_, root, err := BuildFromCNF(cnf)
	require.NoError(t, err)
	assert.Equal(t, BDDFalse, root)
}

func TestBuildFromCNFWithSiftingMatchesWithoutIt(t *testing.T) {
	cnf := &CNF{
		NumVars: 6,
		Clauses: []Clause{
			{1, 2, -3}, {1, -2, 3}, {-1, -2, 3},
			{4, 5, -6}, {4, -5, 6}, {-4, -5, 6},
			{1, -4}, {2, 5},
		},
	}
	_, plainRoot, err := BuildFromCNF(cnf)
	require.NoError(t, err)

	sifted, siftedRoot, err := BuildFromCNF(cnf, WithDVOSchedule(&AlwaysOnce{}))
	require.NoError(t, err)

	plainCount := new(big.Int) // recomputed against a second manager sharing no state with sifted
	plainMgr, plainRoot2, err := BuildFromCNF(cnf)
	require.NoError(t, err)
	plainCount.Set(plainMgr.SatCount(plainRoot2))

	_ = plainRoot
	assert.Equal(t, 0, plainCount.Cmp(sifted.SatCount(siftedRoot)), "DVO must not change the represented function")
}

func TestAlignClausesVisitsEveryClauseExactlyOnce(t *testing.T) {
	clauses := []Clause{{1, 2}, {2, 3}, {4, 5}, {1, 5}}
	order := alignClauses(clauses)
	assert.Len(t, order, len(clauses))
	seen := make(map[int]bool)
	for _, idx := range order {
		assert.False(t, seen[idx], "clause %d visited twice", idx)
		seen[idx] = true
	}
}
