// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// BDDStatistics is the optional per-node metadata SaveBDD can attach to a
// document: whether the node's function is identically false, and its
// satisfying-assignment count (truncated to fit an int64, since the full
// count can exceed it for wide formulas; use SatCount directly when exact
// precision matters).
type BDDStatistics struct {
	Void  bool
	Count int64
}

// SaveBDD writes the subgraph reachable from roots (every live node, if
// roots is empty) in the custom text `.bdd` format from §6: an "order"
// line holding the var2level vector, a "roots" line, and a "nodes" table
// with one row per node ("id var high low"), terminals included. When
// withStats is true a trailing "statistics" table reports each node's
// Void/Count. NodeIDs are written verbatim as the row's id column. LoadBDD
// always builds a fresh manager and rebuilds every node through
// hash-consing, so these ids need not survive a load; its translation map
// relates each file id to the NodeID it became.
func (m *Manager) SaveBDD(w io.Writer, withStats bool, roots ...NodeID) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range roots {
		m.checkNode(r)
	}

	type row struct{ id, v, high, low int }
	var rows []row
	collect := func(id NodeID) {
		n := &m.nodes[id]
		rows = append(rows, row{int(id), int(n.v), int(n.high), int(n.low)})
	}
	collect(BDDFalse)
	collect(BDDTrue)

	if len(roots) == 0 {
		for id := 2; id < len(m.nodes); id++ {
			if !m.nodes[id].free {
				collect(NodeID(id))
			}
		}
	} else {
		for _, r := range roots {
			m.markrec(r)
		}
		defer m.unmarkAll()
		for id := 2; id < len(m.nodes); id++ {
			if m.nodes[id].marked {
				collect(NodeID(id))
			}
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].id < rows[j].id })

	fmt.Fprint(w, "order")
	for v := 0; v <= m.numVars; v++ {
		fmt.Fprintf(w, " %d", m.order.level(VarID(v)))
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "roots")
	for _, r := range roots {
		fmt.Fprintf(w, " %d", r)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "nodes")
	for _, r := range rows {
		fmt.Fprintf(w, "%d %d %d %d\n", r.id, r.v, r.high, r.low)
	}
	fmt.Fprintln(w, "end")

	if withStats {
		fmt.Fprintln(w, "statistics")
		for _, r := range rows {
			st := m.statisticsFor(NodeID(r.id))
			fmt.Fprintf(w, "%d void=%t count=%d\n", r.id, st.Void, st.Count)
		}
		fmt.Fprintln(w, "end")
	}
	return nil
}

// statisticsFor computes a node's BDDStatistics. Callers must already hold
// m.mu for reading (SaveBDD does); it reimplements SatCount's bit-shifted
// sum directly instead of calling the exported method, which would
// deadlock retaking the same RWMutex.
func (m *Manager) statisticsFor(n NodeID) BDDStatistics {
	memo := make(map[NodeID]*big.Int)
	cnt := big.NewInt(0)
	cnt.SetBit(cnt, m.level(n), 1)
	cnt.Mul(cnt, m.satcount(n, memo))
	return BDDStatistics{Void: n == BDDFalse, Count: cnt.Int64()}
}

// bddRow is one parsed "nodes" table entry from a .bdd document, keyed by
// its file-local id in the caller's map.
type bddRow struct {
	v         int
	high, low int
}

// LoadBDD reads a document written by SaveBDD (or any conforming writer)
// into a freshly created Manager. Nodes are rebuilt through the manager's
// own hash-consing (the sole path to node creation, per §4.1), so a row's
// id in the file need not match its NodeID afterwards; the returned map
// translates every file id actually reached from roots to the NodeID it
// resolved to. An optional "statistics" or "views" section, if present, is
// skipped: per §1 the core's serialisation contract is only
// (variable order, node list with terminals, root ids), so nothing is
// lost by not reconstructing those two advisory sections on load.
func LoadBDD(r io.Reader, opts ...Option) (*Manager, []NodeID, map[int]NodeID, error) {
	order, rootIDs, rows, err := parseBDDDocument(r)
	if err != nil {
		return nil, nil, nil, err
	}

	numVars := len(order) - 1
	if numVars < 0 {
		return nil, nil, nil, parseErrorf("bdd", 0, "missing order line")
	}
	level2var, err := varOrderFromVar2Level(order)
	if err != nil {
		return nil, nil, nil, err
	}

	m, err := New(numVars, opts...)
	if err != nil {
		return nil, nil, nil, err
	}
	if numVars > 0 {
		if err := m.order.setPermutation(level2var); err != nil {
			return nil, nil, nil, err
		}
	}

	unlock := m.wlock()
	defer unlock()

	built := map[int]NodeID{0: BDDFalse, 1: BDDTrue}
	building := make(map[int]bool)

	var build func(id int) (NodeID, error)
	build = func(id int) (NodeID, error) {
		if n, ok := built[id]; ok {
			return n, nil
		}
		row, ok := rows[id]
		if !ok {
			return 0, ErrUnknownNode
		}
		if building[id] {
			return 0, parseErrorf("bdd", 0, "cyclic node reference at id %d", id)
		}
		building[id] = true
		low, err := build(row.low)
		if err != nil {
			return 0, err
		}
		high, err := build(row.high)
		if err != nil {
			return 0, err
		}
		if row.v <= 0 || row.v > numVars {
			return 0, parseErrorf("bdd", 0, "node %d has out-of-range variable %d", id, row.v)
		}
		n := m.makeNode(VarID(row.v), low, high)
		built[id] = n
		delete(building, id)
		return n, nil
	}

	roots := make([]NodeID, len(rootIDs))
	for i, rid := range rootIDs {
		n, err := build(rid)
		if err != nil {
			return nil, nil, nil, err
		}
		roots[i] = n
	}
	return m, roots, built, nil
}

// varOrderFromVar2Level inverts a var2level vector (var2level[v] == the
// level variable v sits at, var2level[0] the terminal's) into the
// level2var permutation VarOrder.setPermutation expects, validating along
// the way that it is a genuine permutation: every level from 0 to numVars
// used exactly once, and the terminal's slot (var2level[0]) strictly
// greater than every real variable's, per §6.
func varOrderFromVar2Level(var2level []int) ([]VarID, error) {
	numVars := len(var2level) - 1
	if numVars == 0 {
		return nil, nil
	}
	level2var := make([]VarID, numVars+1)
	seen := make([]bool, numVars+1)
	for v, lvl := range var2level {
		if lvl < 0 || lvl > numVars || seen[lvl] {
			return nil, parseErrorf("bdd", 0, "order vector is not a permutation of levels 0..%d", numVars)
		}
		seen[lvl] = true
		level2var[lvl] = VarID(v)
	}
	if var2level[0] != numVars {
		return nil, parseErrorf("bdd", 0, "terminal variable must sit at the bottom level %d, got %d", numVars, var2level[0])
	}
	return level2var[:numVars], nil
}

// parseBDDDocument splits a .bdd document into its order vector, root id
// list, and node rows, skipping any trailing "statistics"/"views"
// sections wholesale.
func parseBDDDocument(r io.Reader) ([]int, []int, map[int]bddRow, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var order, roots []int
	rows := make(map[int]bddRow)
	lineNo := 0
	haveOrder, haveRoots, haveNodes := false, false, false

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "order":
			vals, err := parseIntFields(fields[1:])
			if err != nil {
				return nil, nil, nil, parseErrorf("bdd", lineNo, "bad order entry: %s", err)
			}
			order, haveOrder = vals, true
		case "roots":
			vals, err := parseIntFields(fields[1:])
			if err != nil {
				return nil, nil, nil, parseErrorf("bdd", lineNo, "bad root entry: %s", err)
			}
			roots, haveRoots = vals, true
		case "nodes":
			for sc.Scan() {
				lineNo++
				nline := strings.TrimSpace(sc.Text())
				if nline == "" {
					continue
				}
				if nline == "end" {
					break
				}
				nfields := strings.Fields(nline)
				if len(nfields) != 4 {
					return nil, nil, nil, parseErrorf("bdd", lineNo, "malformed node row %q", nline)
				}
				vals, err := parseIntFields(nfields)
				if err != nil {
					return nil, nil, nil, parseErrorf("bdd", lineNo, "bad node row: %s", err)
				}
				id, v, high, low := vals[0], vals[1], vals[2], vals[3]
				if high == low && (high == 0 || high == 1) {
					if id != high {
						return nil, nil, nil, parseErrorf("bdd", lineNo, "terminal row id %d does not match its value %d", id, high)
					}
					continue
				}
				rows[id] = bddRow{v: v, high: high, low: low}
			}
			haveNodes = true
		case "statistics", "views":
			for sc.Scan() {
				lineNo++
				if strings.TrimSpace(sc.Text()) == "end" {
					break
				}
			}
		default:
			return nil, nil, nil, parseErrorf("bdd", lineNo, "unexpected section %q", fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, nil, parseErrorf("bdd", lineNo, "%s", err)
	}
	if !haveOrder {
		return nil, nil, nil, parseErrorf("bdd", lineNo, "missing order line")
	}
	if !haveRoots {
		return nil, nil, nil, parseErrorf("bdd", lineNo, "missing roots line")
	}
	if !haveNodes {
		return nil, nil, nil, parseErrorf("bdd", lineNo, "missing nodes section")
	}
	return order, roots, rows, nil
}

func parseIntFields(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", f, err)
		}
		out[i] = n
	}
	return out, nil
}
