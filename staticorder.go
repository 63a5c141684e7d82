// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"math/rand"
	"sort"
)

// StaticOrdering names a heuristic for choosing a variable order ahead of
// BuildFromCNF, before any node exists to make reordering expensive.
type StaticOrdering int

const (
	// NoOrdering keeps the declared variable numbering (v at level v-1).
	NoOrdering StaticOrdering = iota
	// RandomOrdering shuffles the variables uniformly at random.
	RandomOrdering
	// ForceOrdering runs the FORCE heuristic, iteratively placing each
	// variable near the center of gravity of the clauses it appears in
	// until the total clause span stops improving.
	ForceOrdering
)

// ApplyStaticOrder computes a level assignment for cnf's variables under
// heuristic, suitable for WithInitialOrder. The returned slice has one
// entry per level (index 0 is the top level) naming the variable placed
// there.
func ApplyStaticOrder(cnf *CNF, heuristic StaticOrdering) []VarID {
	switch heuristic {
	case RandomOrdering:
		return randomOrder(cnf.NumVars)
	case ForceOrdering:
		return forceOrder(cnf)
	default:
		return identityOrder(cnf.NumVars)
	}
}

func identityOrder(numVars int) []VarID {
	order := make([]VarID, numVars)
	for i := range order {
		order[i] = VarID(i + 1)
	}
	return order
}

func randomOrder(numVars int) []VarID {
	order := identityOrder(numVars)
	rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}

// forceOrder implements the FORCE static ordering heuristic: starting from
// a random permutation, it repeatedly recomputes every variable's "center
// of gravity" (the mean position of the clauses it participates in) and
// re-sorts variables by that value, stopping once the total clause span
// (max position minus min position, summed over every clause) stops
// changing or 1000 rounds have run.
func forceOrder(cnf *CNF) []VarID {
	n := cnf.NumVars
	if n == 0 {
		return nil
	}
	pos := make([]float64, n+1) // pos[v] = 1-based position in current order
	order := randomOrder(n)
	for i, v := range order {
		pos[v] = float64(i + 1)
	}

	var lastSpan float64 = -1
	for round := 0; round < 1000; round++ {
		tpos := make([]float64, n+1)
		degree := make([]int, n+1)
		for _, clause := range cnf.Clauses {
			cog := centerOfGravity(clause, pos)
			for _, lit := range clause {
				v := litVar(lit)
				tpos[v] += cog
				degree[v]++
			}
		}
		for v := 1; v <= n; v++ {
			if degree[v] > 0 {
				tpos[v] /= float64(degree[v])
			}
		}

		vars := identityOrder(n)
		sort.SliceStable(vars, func(i, j int) bool {
			return tpos[vars[i]] < tpos[vars[j]]
		})
		for i, v := range vars {
			pos[v] = float64(i + 1)
		}

		span := clauseSpan(cnf.Clauses, pos)
		if lastSpan >= 0 && span == lastSpan {
			order = vars
			break
		}
		lastSpan = span
		order = vars
	}
	return order
}

func centerOfGravity(clause Clause, pos []float64) float64 {
	sum := 0.0
	for _, lit := range clause {
		sum += pos[litVar(lit)]
	}
	return sum / float64(len(clause))
}

func clauseSpan(clauses []Clause, pos []float64) float64 {
	total := 0.0
	for _, clause := range clauses {
		min, max := pos[litVar(clause[0])], pos[litVar(clause[0])]
		for _, lit := range clause[1:] {
			p := pos[litVar(lit)]
			if p < min {
				min = p
			}
			if p > max {
				max = p
			}
		}
		total += max - min
	}
	return total
}

func litVar(lit int) int {
	if lit < 0 {
		return -lit
	}
	return lit
}
