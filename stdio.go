// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
)

// AllNodes calls f once for every live node reachable from roots (or from
// every live node in the manager, if roots is empty), in no particular
// order. f receives the node's id, the level its variable currently
// occupies, and its low/high children; the two terminals are reported
// with level equal to numVars. AllNodes stops and returns f's error as
// soon as f returns one.
func (m *Manager) AllNodes(f func(id NodeID, level int, low, high NodeID) error, roots ...NodeID) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := f(BDDFalse, m.numVars, BDDFalse, BDDFalse); err != nil {
		return err
	}
	if err := f(BDDTrue, m.numVars, BDDTrue, BDDTrue); err != nil {
		return err
	}
	if len(roots) == 0 {
		for id := 2; id < len(m.nodes); id++ {
			n := &m.nodes[id]
			if n.free {
				continue
			}
			if err := f(NodeID(id), m.order.level(n.v), n.low, n.high); err != nil {
				return err
			}
		}
		return nil
	}

	m.unmarkAll()
	for _, r := range roots {
		m.checkNode(r)
		m.markrec(r)
	}
	defer m.unmarkAll()
	for id := 2; id < len(m.nodes); id++ {
		n := &m.nodes[id]
		if n.marked {
			if err := f(NodeID(id), m.order.level(n.v), n.low, n.high); err != nil {
				return err
			}
		}
	}
	return nil
}

// Print writes a tabular description of every node reachable from roots
// (the whole manager, if roots is empty) to stdout.
func (m *Manager) Print(roots ...NodeID) {
	m.print(os.Stdout, roots...)
}

func (m *Manager) print(w io.Writer, roots ...NodeID) {
	if len(roots) == 1 {
		switch roots[0] {
		case BDDFalse:
			fmt.Fprintln(w, "False")
			return
		case BDDTrue:
			fmt.Fprintln(w, "True")
			return
		}
	}
	type row struct{ id, level, low, high int }
	var rows []row
	_ = m.AllNodes(func(id NodeID, level int, low, high NodeID) error {
		if id <= 1 {
			return nil
		}
		i := sort.Search(len(rows), func(i int) bool { return rows[i].id >= int(id) })
		rows = append(rows, row{})
		copy(rows[i+1:], rows[i:])
		rows[i] = row{int(id), level, int(low), int(high)}
		return nil
	}, roots...)

	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t[%d\t] ? \t%d\t : %d\n", r.id, r.level, r.high, r.low)
	}
	tw.Flush()
}

// WriteDot writes a GraphViz DOT description of the nodes reachable from
// roots (the whole manager, if roots is empty) to w.
func (m *Manager) WriteDot(w io.Writer, roots ...NodeID) error {
	fmt.Fprintln(w, "digraph robdd {")
	fmt.Fprintln(w, `1 [shape=box, label="1", style=filled, height=0.3, width=0.3];`)
	err := m.AllNodes(func(id NodeID, level int, low, high NodeID) error {
		if id <= 1 {
			return nil
		}
		fmt.Fprintf(w, "%d [label=\"%d\" xlabel=\"%d\"];\n", id, m.Var(id), level)
		if low != BDDFalse {
			fmt.Fprintf(w, "%d -> %d [style=dashed];\n", id, low)
		}
		if high != BDDFalse {
			fmt.Fprintf(w, "%d -> %d;\n", id, high)
		}
		return nil
	}, roots...)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "}")
	return nil
}
