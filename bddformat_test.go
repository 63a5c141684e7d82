// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadBDDRoundTripsSatCount(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	f := m.And(m.Or(m.Ithvar(1), m.Ithvar(2)), m.NIthvar(3))
	m.PurgeRetain(f)
	want := m.SatCount(f)

	var buf bytes.Buffer
	require.NoError(t, m.SaveBDD(&buf, false, f))

	m2, roots, translation, err := LoadBDD(&buf)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, 0, want.Cmp(m2.SatCount(roots[0])))
	assert.Contains(t, translation, int(f))
}

func TestSaveBDDWithStatisticsIsIgnorableOnLoad(t *testing.T) {
	m, err := New(2)
	require.NoError(t, err)
	f := m.And(m.Ithvar(1), m.Ithvar(2))
	m.PurgeRetain(f)

	var buf bytes.Buffer
	require.NoError(t, m.SaveBDD(&buf, true, f))
	assert.Contains(t, buf.String(), "statistics")

	m2, roots, _, err := LoadBDD(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 0, m.SatCount(f).Cmp(m2.SatCount(roots[0])))
}

func TestLoadBDDConstantDocuments(t *testing.T) {
	doc := "order 0\nroots 1\nnodes\n0 0 0 0\n1 0 1 1\nend\n"
	m, roots, _, err := LoadBDD(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, BDDTrue, roots[0])
	assert.Equal(t, 0, m.NumVars())
}

func TestLoadBDDRejectsUnknownNodeReference(t *testing.T) {
	doc := "order 1 0\nroots 5\nnodes\n0 0 0 0\n1 0 1 1\nend\n"
	_, _, _, err := LoadBDD(strings.NewReader(doc))
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestLoadBDDRejectsBadOrderVector(t *testing.T) {
	doc := "order 0 0\nroots 1\nnodes\n0 0 0 0\n1 0 1 1\nend\n"
	_, _, _, err := LoadBDD(strings.NewReader(doc))
	require.Error(t, err)
}

func TestLoadBDDRejectsMissingRootsLine(t *testing.T) {
	doc := "order 1 0\nnodes\n0 0 0 0\n1 0 1 1\nend\n"
	_, _, _, err := LoadBDD(strings.NewReader(doc))
	require.Error(t, err)
}
