// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Clause is a disjunction of literals read from a DIMACS CNF file. A
// positive entry names the variable asserted true, a negative entry the
// variable asserted false; 0 never appears inside a Clause, it is only the
// line terminator in the DIMACS text format.
type Clause []int

// CNF is a conjunctive-normal-form instance parsed from a DIMACS file: a
// declared variable count and a sequence of Clauses. NumVars can exceed the
// highest variable actually mentioned in Clauses, and Clauses can reference
// any variable up to NumVars.
type CNF struct {
	NumVars int
	Clauses []Clause
}

// ParseDIMACS reads a DIMACS CNF instance from r. The format is a single
// problem line "p cnf <vars> <clauses>", any number of comment lines
// starting with "c", and then one clause per line: a sequence of signed,
// non-zero integers terminated by a literal 0. Blank lines are ignored.
// ParseDIMACS returns a *ParseError naming the offending line on any
// malformed input.
func ParseDIMACS(r io.Reader) (*CNF, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	cnf := &CNF{}
	haveHeader := false
	wantClauses := 0
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			if haveHeader {
				return nil, parseErrorf("dimacs", lineNo, "duplicate problem line")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, parseErrorf("dimacs", lineNo, "malformed problem line %q", line)
			}
			nvars, err := strconv.Atoi(fields[2])
			if err != nil || nvars < 0 {
				return nil, parseErrorf("dimacs", lineNo, "bad variable count %q", fields[2])
			}
			nclauses, err := strconv.Atoi(fields[3])
			if err != nil || nclauses < 0 {
				return nil, parseErrorf("dimacs", lineNo, "bad clause count %q", fields[3])
			}
			cnf.NumVars = nvars
			wantClauses = nclauses
			cnf.Clauses = make([]Clause, 0, nclauses)
			haveHeader = true
			continue
		}
		if !haveHeader {
			return nil, parseErrorf("dimacs", lineNo, "clause line before problem line")
		}

		var clause Clause
		fields := strings.Fields(line)
		for _, tok := range fields {
			lit, err := strconv.Atoi(tok)
			if err != nil {
				return nil, parseErrorf("dimacs", lineNo, "bad literal %q", tok)
			}
			if lit == 0 {
				break
			}
			v := lit
			if v < 0 {
				v = -v
			}
			if v > cnf.NumVars {
				return nil, parseErrorf("dimacs", lineNo, "literal %d exceeds declared variable count %d", lit, cnf.NumVars)
			}
			clause = append(clause, lit)
		}
		cnf.Clauses = append(cnf.Clauses, clause)
	}
	if err := sc.Err(); err != nil {
		return nil, parseErrorf("dimacs", lineNo, "%s", err)
	}
	if !haveHeader {
		return nil, parseErrorf("dimacs", lineNo, "missing problem line")
	}
	if len(cnf.Clauses) != wantClauses {
		return nil, parseErrorf("dimacs", lineNo, "problem line declared %d clauses, found %d", wantClauses, len(cnf.Clauses))
	}
	return cnf, nil
}
