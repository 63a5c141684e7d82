// Copyright (c) 2026 ROBDD contributors
//
// MIT License

/*
Package robdd implements Reduced Ordered Binary Decision Diagrams (ROBDD), a
data structure used to represent Boolean functions over a fixed set of
variables canonically, and to manipulate them efficiently.

Basics

A Manager owns a fixed number of variables, NumVars, declared when it is
created with New, and a variable order that maps each variable to a level in
the diagram. Variable 0 is reserved as the terminal pseudo-variable: it never
labels a decision node but its level is always below every real variable's
level, the largest level in the order by construction.

Operations over a Manager return a NodeID, an opaque integer handle into the
manager's node table. By convention NodeID 0 names the constant False and
NodeID 1 names the constant True. NodeIDs are only meaningful relative to the
Manager that produced them, and are not guaranteed stable across an operation
that triggers reduction or a purge (see Manager.PurgeRetain).

Construction and dynamic reordering

BuildFromCNF integrates a CNF formula clause by clause into a running
conjunction, optionally interleaving dynamic variable reordering (DVO)
between clauses using a DVOSchedule. The core reordering primitive is Swap,
which exchanges two adjacent variables in place while preserving the
represented function; Sift, WindowPermute and the AreaSelector strategies
build on Swap to decide what to reorder and when.

Concurrency

A Manager is safe for concurrent use. Mutating operations (Ite, Apply,
quantification, Swap, PurgeRetain, Reduce) take an exclusive lock; read-only
queries (SatCount, CountActive, serialisation) take a shared lock.
Concurrent DVO explores several disjoint level ranges at once using
SwapContext, a speculative private copy of the manager that is explored
without holding the manager's lock, and only briefly takes the exclusive
lock to commit each explored range's result.

Automatic memory management

The library is written in pure Go, without CGo or other native
dependencies. Unlike reference-counted BDD packages, a Manager does not
reclaim nodes automatically: nodes persist until the caller invokes
PurgeRetain with the set of roots still of interest. This keeps the
canonicity invariant simple (the manager is the sole owner of every node) at
the cost of requiring callers to purge explicitly after large rewrites.
*/
package robdd
