// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSatCountOfTerminals(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	assert.Equal(t, 0, big.NewInt(0).Cmp(m.SatCount(BDDFalse)))
	assert.Equal(t, 0, big.NewInt(8).Cmp(m.SatCount(BDDTrue)))
}

func TestSatCountOfSingleVariableCountsDontCares(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	// x1 alone is satisfied regardless of x2 and x3: 2^2 assignments.
	assert.Equal(t, 0, big.NewInt(4).Cmp(m.SatCount(m.Ithvar(1))))
}

func TestSatCountOfConjunctionIsOne(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	f := m.And(m.And(m.Ithvar(1), m.Ithvar(2)), m.Ithvar(3))
	assert.Equal(t, 0, big.NewInt(1).Cmp(m.SatCount(f)))
}

func TestSatCountOfDisjunctionExcludesOnlyTheAllFalseCase(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	f := m.Or(m.Ithvar(1), m.Ithvar(2))
	assert.Equal(t, 0, big.NewInt(3).Cmp(m.SatCount(f)))
}

func TestAllSatEnumeratesConsistentlyWithSatCount(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	f := m.Or(m.Ithvar(1), m.Ithvar(2))

	total := big.NewInt(0)
	err = m.AllSat(f, func(assignment []int) error {
		free := 0
		for v := 1; v <= 3; v++ {
			if assignment[v] == -1 {
				free++
			}
		}
		weight := big.NewInt(0)
		weight.SetBit(weight, free, 1)
		total.Add(total, weight)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, total.Cmp(m.SatCount(f)))
}

func TestAllSatStopsEarlyOnCallbackError(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	f := m.Or(m.Ithvar(1), m.Ithvar(2))

	calls := 0
	sentinel := assert.AnError
	err = m.AllSat(f, func(assignment []int) error {
		calls++
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}

func TestAllSatNeverCallsBackForFalse(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	calls := 0
	err = m.AllSat(BDDFalse, func(assignment []int) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, calls)
}
