// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import "fmt"

// varOrder is a bidirectional map between variables and levels. Level 0 is
// the topmost (closest to the roots); the terminal pseudo-variable always
// owns the last level, numVars, so that every real variable's level is
// strictly smaller than any terminal's.
type varOrder struct {
	var2level []int   // var2level[v], v in [0..numVars]
	level2var []VarID // level2var[level]
}

func newVarOrder(numVars int) *varOrder {
	o := &varOrder{
		var2level: make([]int, numVars+1),
		level2var: make([]VarID, numVars+1),
	}
	for v := 1; v <= numVars; v++ {
		o.var2level[v] = v - 1
		o.level2var[v-1] = VarID(v)
	}
	o.var2level[0] = numVars
	o.level2var[numVars] = 0
	return o
}

// level returns the level currently assigned to variable v.
func (o *varOrder) level(v VarID) int {
	return o.var2level[v]
}

// varAt returns the variable currently assigned to level.
func (o *varOrder) varAt(level int) VarID {
	return o.level2var[level]
}

// numLevels is the number of levels, including the terminal's.
func (o *varOrder) numLevels() int {
	return len(o.level2var)
}

// adjacent reports whether v and w occupy consecutive levels, v above w.
func (o *varOrder) adjacent(v, w VarID) bool {
	return o.var2level[w] == o.var2level[v]+1
}

// swapAdjacent exchanges the level assignment of the variables currently at
// level and level+1. It only updates the bookkeeping arrays; it is the
// caller's responsibility (swap.go) to rewrite the affected nodes.
func (o *varOrder) swapAdjacent(level int) {
	a := o.level2var[level]
	b := o.level2var[level+1]
	o.level2var[level] = b
	o.level2var[level+1] = a
	o.var2level[a] = level + 1
	o.var2level[b] = level
}

// permutation returns a copy of the current level2var assignment. Nothing in
// the package calls it; SwapContext snapshots the order with clone.
func (o *varOrder) permutation() []VarID {
	out := make([]VarID, len(o.level2var))
	copy(out, o.level2var)
	return out
}

// setPermutation replaces the order's level assignment wholesale. order must
// list every variable from 1 to numVars exactly once, top level first; the
// terminal pseudo-variable keeps its fixed level at the bottom. Used to seed
// a freshly created manager with a static ordering heuristic's result,
// before any node has been built.
func (o *varOrder) setPermutation(order []VarID) error {
	numVars := len(o.level2var) - 1
	if len(order) != numVars {
		return fmt.Errorf("robdd: initial order has %d entries, want %d", len(order), numVars)
	}
	seen := make([]bool, numVars+1)
	for lvl, v := range order {
		if v <= 0 || int(v) > numVars || seen[v] {
			return fmt.Errorf("robdd: initial order is not a permutation of 1..%d", numVars)
		}
		seen[v] = true
		o.level2var[lvl] = v
		o.var2level[v] = lvl
	}
	return nil
}

// clone returns an independent copy, used to seed a SwapContext's private
// manager without disturbing the order it was copied from.
func (o *varOrder) clone() *varOrder {
	c := &varOrder{
		var2level: make([]int, len(o.var2level)),
		level2var: make([]VarID, len(o.level2var)),
	}
	copy(c.var2level, o.var2level)
	copy(c.level2var, o.level2var)
	return c
}
