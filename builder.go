// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

// convergenceReporter is implemented by DVOSchedules that track whether a
// reordering pass improved anything (AlwaysUntilConvergence). BuildFromCNF
// reports back through it when present; schedules that don't care about
// convergence simply don't implement it.
type convergenceReporter interface {
	Converged(noImprovement bool)
}

// BuildFromCNF builds a BDD representing the conjunction of every clause in
// cnf, returning the manager and the root node of the resulting diagram.
// Clauses are integrated one at a time, each folded in as
// bdd = bdd AND (lit1 OR lit2 OR ...), with PurgeRetain run after every
// clause so garbage from the previous step never lingers into the next.
// Clauses are visited in the order alignClauses computes, not cnf's
// original order, so that each newly integrated clause shares as many
// variables as possible with the diagram built so far. Between clauses the
// manager's configured DVOSchedule is consulted; when it fires,
// BuildFromCNF runs a full sifting pass over every variable.
func BuildFromCNF(cnf *CNF, opts ...Option) (*Manager, NodeID, error) {
	m, err := New(cnf.NumVars, opts...)
	if err != nil {
		return nil, 0, err
	}
	defer m.startSpan("BuildFromCNF").End()

	bdd := BDDTrue
	order := alignClauses(cnf.Clauses)

	for _, ci := range order {
		clause := cnf.Clauses[ci]

		cbdd := BDDFalse
		for _, lit := range clause {
			var node NodeID
			if lit > 0 {
				node = m.Ithvar(VarID(lit))
			} else {
				node = m.NIthvar(VarID(-lit))
			}
			cbdd = m.Or(node, cbdd)
		}
		clauseSpan := m.startSpan("BuildFromCNF.clause")
		bdd = m.And(cbdd, bdd)
		m.PurgeRetain(bdd)
		clauseSpan.End()

		active := m.CountActive()
		if m.config.dvoSchedule != nil && m.config.dvoSchedule.ShouldRun(active) {
			dvoSpan := m.startSpan("DVOSchedule")
			before := active
			bdd = m.fullSift(bdd)
			after := m.CountActive()
			if r, ok := m.config.dvoSchedule.(convergenceReporter); ok {
				r.Converged(after >= before)
			}
			m.PurgeRetain(bdd)
			dvoSpan.End()
		}
	}
	return m, bdd, nil
}

// fullSift runs Sift for every variable currently in the order, from its
// current level across the whole range, and returns root translated
// through every substitution the passes produced.
func (m *Manager) fullSift(root NodeID) NodeID {
	for v := VarID(1); int(v) <= m.numVars; v++ {
		subst := m.Sift(v, 0, m.numVars-1)
		if to, ok := subst[root]; ok {
			root = to
		}
	}
	return root
}

// alignClauses orders clause indices greedily so that each clause after the
// first shares at least one variable with the set of variables already
// integrated, preferring the clause with the greatest overlap at every
// step. Clauses that share no variable with anything integrated so far are
// appended in their original relative order once no better candidate
// remains, so every clause is still visited exactly once.
func alignClauses(clauses []Clause) []int {
	n := len(clauses)
	order := make([]int, 0, n)
	used := make([]bool, n)
	seen := make(map[int]bool)

	vars := func(c Clause) map[int]bool {
		s := make(map[int]bool, len(c))
		for _, lit := range c {
			v := lit
			if v < 0 {
				v = -v
			}
			s[v] = true
		}
		return s
	}

	clauseVars := make([]map[int]bool, n)
	for i, c := range clauses {
		clauseVars[i] = vars(c)
	}

	for len(order) < n {
		best, bestScore := -1, -1
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			score := 0
			for v := range clauseVars[i] {
				if seen[v] {
					score++
				}
			}
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		used[best] = true
		order = append(order, best)
		for v := range clauseVars[best] {
			seen[v] = true
		}
	}
	return order
}
