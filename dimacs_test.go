// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDIMACS = `c a trivial instance
p cnf 3 3
1 2 -3 0
1 -2 3 0
-1 -2 3 0
`

func TestParseDIMACSValidInstance(t *testing.T) {
	cnf, err := ParseDIMACS(strings.NewReader(sampleDIMACS))
	require.NoError(t, err)
	assert.Equal(t, 3, cnf.NumVars)
	require.Len(t, cnf.Clauses, 3)
	assert.Equal(t, Clause{1, 2, -3}, cnf.Clauses[0])
}

func TestParseDIMACSRejectsMissingProblemLine(t *testing.T) {
	_, err := ParseDIMACS(strings.NewReader("1 2 0\n"))
	require.Error(t, err)
	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestParseDIMACSRejectsClauseCountMismatch(t *testing.T) {
	_, err := ParseDIMACS(strings.NewReader("p cnf 2 2\n1 2 0\n"))
	require.Error(t, err)
}

func TestParseDIMACSRejectsOutOfRangeLiteral(t *testing.T) {
	_, err := ParseDIMACS(strings.NewReader("p cnf 1 1\n1 2 0\n"))
	require.Error(t, err)
}

func TestParseDIMACSIgnoresCommentsAndBlankLines(t *testing.T) {
	doc := "c comment\n\np cnf 1 1\nc another comment\n1 0\n"
	cnf, err := ParseDIMACS(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, cnf.NumVars)
	require.Len(t, cnf.Clauses, 1)
}
