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

// sampleDDDMP is a hand-built, minimal single-variable diagram (f = x1) in
// the CUDD BCDD convention: the low edge of the variable node is a
// complemented reference to the single terminal.
const sampleDDDMP = `.ver DDDMP-2.0
.nnodes 2
.nvars 1
.nsuppvars 1
.ids 0
.permids 0
.rootids 2
.nodes
1 T 0 0 0
2 0 0 1 -1
.end
`

func TestLoadDDDMPBasicVariable(t *testing.T) {
	m, roots, err := LoadDDDMP(strings.NewReader(sampleDDDMP))
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, 0, big.NewInt(1).Cmp(m.SatCount(roots[0])))
}

// sampleDDDMPAdd is the same function using the .add (no complement edges)
// convention instead: both terminals get their own row since there is no
// complemented reference to derive False from True.
const sampleDDDMPAdd = `.ver DDDMP-2.0
.add 1
.nnodes 3
.nvars 1
.nsuppvars 1
.ids 0
.permids 0
.rootids 3
.nodes
1 T 1 0 0
2 T 0 0 0
3 0 0 1 2
.end
`

func TestLoadDDDMPAddFlagMatchesComplementForm(t *testing.T) {
	m1, roots1, err := LoadDDDMP(strings.NewReader(sampleDDDMP))
	require.NoError(t, err)
	m2, roots2, err := LoadDDDMP(strings.NewReader(sampleDDDMPAdd))
	require.NoError(t, err)

	assert.Equal(t, 0, m1.SatCount(roots1[0]).Cmp(m2.SatCount(roots2[0])))
}

func TestLoadDDDMPRejectsMissingIds(t *testing.T) {
	doc := ".nnodes 1\n.nvars 1\n.nsuppvars 1\n.permids 0\n.rootids 1\n.nodes\n1 T 0 0 0\n.end\n"
	_, _, err := LoadDDDMP(strings.NewReader(doc))
	require.Error(t, err)
}
