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

// dddmpNode is one row of a .dddmp node list: a variable (0 for a terminal)
// and two child references. A negative reference is a complemented edge,
// pointing at the negation of the node named by its absolute value, in the
// CUDD BCDD convention; load without .add always carries these, load with
// .add never does.
type dddmpNode struct {
	id         int
	v          VarID
	isTerminal bool
	high, low  int
}

// LoadDDDMP reads a (possibly multi-rooted) diagram from a CUDD .dddmp
// document and imports it into a freshly created Manager, returning the
// manager and one NodeID per entry of .rootids, in file order. Complemented
// edges (the default CUDD BCDD encoding, absent only when the file carries
// the .add flag) are resolved through the manager's own Not, so the
// imported diagram is canonical and hash-consed exactly like one built
// incrementally through Ite/Apply.
func LoadDDDMP(r io.Reader, opts ...Option) (*Manager, []NodeID, error) {
	header, nodeLines, err := splitDDDMPSections(r)
	if err != nil {
		return nil, nil, err
	}

	_, addFlag := header[".add"]

	nnodes, err := headerInt(header, ".nnodes")
	if err != nil {
		return nil, nil, err
	}
	nsuppvars, err := headerInt(header, ".nsuppvars")
	if err != nil {
		return nil, nil, err
	}
	nvars, err := headerInt(header, ".nvars")
	if err != nil {
		return nil, nil, err
	}

	ids, ok := header[".ids"]
	if !ok {
		return nil, nil, parseErrorf("dddmp", 0, ".ids missing")
	}
	permids, ok := header[".permids"]
	if !ok {
		return nil, nil, parseErrorf("dddmp", 0, ".permids missing")
	}
	if len(ids) != nsuppvars || len(permids) != nsuppvars {
		return nil, nil, parseErrorf("dddmp", 0, ".ids/.permids length mismatch with .nsuppvars")
	}

	levelOfVar := make(map[VarID]int, nsuppvars)
	usedLevels := make(map[int]bool, nsuppvars)
	usedVars := make(map[VarID]bool, nsuppvars)
	for i := range ids {
		idv, err := strconv.Atoi(ids[i])
		if err != nil {
			return nil, nil, parseErrorf("dddmp", 0, "bad .ids entry %q", ids[i])
		}
		perm, err := strconv.Atoi(permids[i])
		if err != nil {
			return nil, nil, parseErrorf("dddmp", 0, "bad .permids entry %q", permids[i])
		}
		v := VarID(idv + 1)
		levelOfVar[v] = perm
		usedLevels[perm] = true
		usedVars[v] = true
	}
	// Variables declared in .nvars but never mentioned in .ids fill the
	// remaining free levels, in ascending order of both.
	freeLevel := 0
	nextFreeLevel := func() int {
		for usedLevels[freeLevel] {
			freeLevel++
		}
		usedLevels[freeLevel] = true
		return freeLevel
	}
	for v := VarID(1); int(v) <= nvars; v++ {
		if !usedVars[v] {
			levelOfVar[v] = nextFreeLevel()
		}
	}

	rootsTok, ok := header[".rootids"]
	if !ok || len(rootsTok) == 0 {
		return nil, nil, parseErrorf("dddmp", 0, ".rootids missing")
	}
	roots := make([]int, len(rootsTok))
	for i, tok := range rootsTok {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, nil, parseErrorf("dddmp", 0, "bad root id %q", tok)
		}
		roots[i] = v
	}

	nodes := make(map[int]dddmpNode, nnodes)
	var highTerminal, lowTerminal int
	haveHigh, haveLow := false, false

	for _, line := range nodeLines {
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, nil, parseErrorf("dddmp", 0, "malformed node line %q", line)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, parseErrorf("dddmp", 0, "bad node id %q", fields[0])
		}
		high, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, nil, parseErrorf("dddmp", 0, "bad high reference %q", fields[3])
		}
		low, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, nil, parseErrorf("dddmp", 0, "bad low reference %q", fields[4])
		}

		n := dddmpNode{id: id, high: high, low: low}
		if fields[1] == "T" {
			n.isTerminal = true
			if !addFlag {
				highTerminal, haveHigh = id, true
			} else {
				switch fields[2] {
				case "0":
					lowTerminal, haveLow = id, true
				case "1":
					highTerminal, haveHigh = id, true
				default:
					return nil, nil, parseErrorf("dddmp", 0, "unsupported terminal kind %q", fields[2])
				}
			}
		} else {
			varID, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, nil, parseErrorf("dddmp", 0, "bad variable id %q", fields[1])
			}
			n.v = VarID(varID + 1)
		}
		nodes[id] = n
	}
	if len(nodes) != nnodes {
		return nil, nil, parseErrorf("dddmp", 0, ".nnodes declared %d, found %d", nnodes, len(nodes))
	}
	if !haveHigh || (addFlag && !haveLow) {
		return nil, nil, ErrMissingTerminal
	}
	if !addFlag {
		lowTerminal = -highTerminal
	}

	m, err := New(nvars, opts...)
	if err != nil {
		return nil, nil, err
	}
	order := make([]VarID, nvars)
	for v, lvl := range levelOfVar {
		if lvl < 0 || lvl >= nvars {
			return nil, nil, parseErrorf("dddmp", 0, "variable %d has out-of-range level %d", v, lvl)
		}
		order[lvl] = v
	}
	if err := m.order.setPermutation(order); err != nil {
		return nil, nil, err
	}

	memo := make(map[int]NodeID, len(nodes))
	var build func(ref int) (NodeID, error)
	build = func(ref int) (NodeID, error) {
		id := ref
		neg := false
		if id < 0 {
			id, neg = -id, true
		}
		if id == highTerminal {
			n := BDDTrue
			if neg {
				n = BDDFalse
			}
			return n, nil
		}
		if addFlag && id == lowTerminal {
			n := BDDFalse
			if neg {
				n = BDDTrue
			}
			return n, nil
		}
		if n, ok := memo[id]; ok {
			if neg {
				return m.Not(n), nil
			}
			return n, nil
		}
		raw, ok := nodes[id]
		if !ok {
			return 0, ErrUnknownNode
		}
		low, err := build(raw.low)
		if err != nil {
			return 0, err
		}
		high, err := build(raw.high)
		if err != nil {
			return 0, err
		}
		n := m.Ite(m.Ithvar(raw.v), high, low)
		memo[id] = n
		if neg {
			return m.Not(n), nil
		}
		return n, nil
	}

	out := make([]NodeID, len(roots))
	for i, r := range roots {
		n, err := build(r)
		if err != nil {
			return nil, nil, err
		}
		out[i] = n
	}
	return m, out, nil
}

// splitDDDMPSections reads the header key/value lines preceding ".nodes"
// and the raw node-list lines between ".nodes" and ".end".
func splitDDDMPSections(r io.Reader) (map[string][]string, []string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	header := make(map[string][]string)
	inNodes := false
	var nodeLines []string

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == ".nodes" {
			inNodes = true
			continue
		}
		if line == ".end" {
			break
		}
		if inNodes {
			nodeLines = append(nodeLines, line)
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		header[fields[0]] = fields[1:]
	}
	if err := sc.Err(); err != nil {
		return nil, nil, parseErrorf("dddmp", 0, "%s", err)
	}
	return header, nodeLines, nil
}

func headerInt(header map[string][]string, key string) (int, error) {
	v, ok := header[key]
	if !ok || len(v) != 1 {
		return 0, parseErrorf("dddmp", 0, "%s missing or invalid", key)
	}
	n, err := strconv.Atoi(v[0])
	if err != nil {
		return 0, parseErrorf("dddmp", 0, "%s: %s", key, err)
	}
	return n, nil
}
