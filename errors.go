// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"errors"
	"fmt"
)

// The manager distinguishes four kinds of error, matching the failure modes
// described for the core: input errors, usage errors, resource limits, and
// not-an-error short-circuits.
//
// Input errors (malformed DIMACS/DDDMP/.bdd input, an inconsistent variable
// order) are returned as a *ParseError or wrapped standard error from the
// boundary operation that detected them (ParseDIMACS, LoadBDD, LoadDDDMP,
// and New when WithInitialOrder is not a permutation); no partial manager
// state escapes a failed call.
//
// Usage errors (swapping non-adjacent variables, mixing views from distinct
// managers or with different sliced-variable sets, an out-of-range VarID)
// are programming bugs. They panic rather than return an error, and are
// documented on the operations that can raise them.
//
// Resource limits split in two. A DVO time/size budget is never an error:
// it is observable only through DVOSchedule callbacks and simply ends a
// reordering pass early. A configured hard node-table cap (WithMaxNodes) is
// different: exceeding it means the manager cannot satisfy the call at all,
// so allocNode panics with ErrNodeLimitExceeded rather than threading an
// error return through every recursive Ite/Apply/quantify call. Recover and
// type-assert for it at whatever boundary the embedder wants to turn into a
// normal error.
//
// Not-an-error short-circuits (an absent terminal during deserialisation)
// are reported through the sentinel errors below, meant to be matched with
// errors.Is.
var (
	// ErrNoResult names a query made before any root has been computed. No
	// function in this package returns it: every query takes an explicit
	// NodeID, so there is no "not built yet" state to report.
	ErrNoResult = errors.New("robdd: no result available")

	// ErrMissingTerminal is returned by LoadDDDMP when the document has no
	// row describing a constant terminal it needs. LoadBDD does not return
	// it: a .bdd document's terminals are always present implicitly.
	ErrMissingTerminal = errors.New("robdd: serialised BDD is missing a terminal node")

	// ErrUnknownNode is returned when a serialised BDD document references
	// a node id that is not defined anywhere in the node table.
	ErrUnknownNode = errors.New("robdd: reference to an undefined node id")

	// ErrNodeLimitExceeded is the panic value allocNode raises when
	// WithMaxNodes configured a cap and the node table cannot grow any
	// further to satisfy the allocation that hit it. Call PurgeRetain
	// yourself first if the table might have reclaimable garbage in it;
	// allocNode never does this on a caller's behalf.
	ErrNodeLimitExceeded = errors.New("robdd: node table exhausted its configured maximum size")
)

// ParseError describes a malformed input document (DIMACS, DDDMP, or the
// custom .bdd format). Line is 1-based and zero when not applicable.
type ParseError struct {
	Source string // e.g. "dimacs", "dddmp", "bdd"
	Line   int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("robdd: %s: line %d: %s", e.Source, e.Line, e.Msg)
	}
	return fmt.Sprintf("robdd: %s: %s", e.Source, e.Msg)
}

func parseErrorf(source string, line int, format string, a ...interface{}) error {
	return &ParseError{Source: source, Line: line, Msg: fmt.Sprintf(format, a...)}
}

// usage errors panic; these helpers keep the panic messages consistent and
// make the call sites read like assertions.

func panicUsage(format string, a ...interface{}) {
	panic(fmt.Sprintf("robdd: usage error: "+format, a...))
}

func (m *Manager) checkVar(v VarID) {
	if v <= 0 || int(v) > m.numVars {
		panicUsage("variable %d out of range [1..%d]", v, m.numVars)
	}
}

func (m *Manager) checkNode(n NodeID) {
	if n < 0 || int(n) >= len(m.nodes) || (n >= 2 && m.nodes[n].free) {
		panicUsage("node id %d is not valid in this manager", n)
	}
}
