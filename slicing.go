// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

// ViewKind selects which quantifier a View projects its base root through.
type ViewKind int

const (
	// ExistView projects a View's sliced variables away existentially.
	ExistView ViewKind = iota
	// ForAllView projects a View's sliced variables away universally.
	ForAllView
)

// View is a standing existential or universal projection of a root over a
// fixed set of variables. It shares its Manager's lifetime: the manager
// keeps the View's base root alive across PurgeRetain and keeps it
// pointing at the right node across Swap, exactly as it does for any other
// GC root, so a View stays valid for as long as the Manager (or an
// explicit Close) lives.
//
// Views are a bookkeeping convenience, not a precomputed result: Root
// computes the projection lazily on first use and caches it. The cached
// node is kept alive by PurgeRetain and retargeted by Swap just like the
// base root, so it is never recomputed afterwards.
type View struct {
	m      *Manager
	base   NodeID
	vars   VarSet
	kind   ViewKind
	cached NodeID
	fresh  bool
	valid  bool
}

// NewView registers a View over base, projecting vars away according to
// kind. The returned View is tied to m: using it after m has been
// discarded, or mixing it into an operation on a different Manager, is a
// usage error.
func (m *Manager) NewView(base NodeID, vars VarSet, kind ViewKind) *View {
	unlock := m.wlock()
	defer unlock()
	m.checkNode(base)

	v := &View{m: m, base: base, vars: vars, kind: kind, valid: true}
	m.views = append(m.views, v)
	return v
}

// Manager returns the Manager the View was created from.
func (v *View) Manager() *Manager { return v.m }

// Root returns the projected node, computing and caching it on first use;
// later calls return the cached node, which Swap keeps pointing at the
// right id. It panics if the view has been Closed.
func (v *View) Root() NodeID {
	unlock := v.m.wlock()
	defer unlock()
	if !v.valid {
		panicUsage("use of a closed View")
	}
	if v.fresh {
		return v.cached
	}
	var res NodeID
	switch v.kind {
	case ExistView:
		res = v.m.quantLocked(v.base, v.vars, OPor)
	case ForAllView:
		res = v.m.quantLocked(v.base, v.vars, OPand)
	}
	v.cached = res
	v.fresh = true
	return res
}

// Close releases the View's hold on its base root; after Close, PurgeRetain
// is free to reclaim nodes that were only kept alive by this View.
func (v *View) Close() {
	unlock := v.m.wlock()
	defer unlock()
	v.valid = false
	for i, other := range v.m.views {
		if other == v {
			v.m.views = append(v.m.views[:i], v.m.views[i+1:]...)
			break
		}
	}
}

// combine is the shared body of And/Or/Xor: it requires both views to
// share a manager and a sliced-variable set, per §4.9's "operations
// between views require equal sliced_vars and equal manager identity" —
// mixing either is a usage error, not a recoverable one, since a caller
// that needs to combine views over different variable sets has a
// confused slicing plan. The new View keeps the same kind and
// sliced-variable set as its operands so it can itself be combined
// further.
func (v *View) combine(other *View, op Operator) *View {
	if v.m != other.m {
		panicUsage("cannot combine views from different managers")
	}
	if v.kind != other.kind {
		panicUsage("cannot combine an ExistView with a ForAllView")
	}
	if !v.vars.Equal(other.vars) {
		panicUsage("cannot combine views with different sliced-variable sets")
	}
	res := v.m.Apply(v.Root(), other.Root(), op)
	return v.m.NewView(res, v.vars, v.kind)
}

// And returns a new View over the conjunction of v and other's projected
// roots. Panics per combine's usage-error rules if the two views do not
// share a manager, kind, and sliced-variable set.
func (v *View) And(other *View) *View { return v.combine(other, OPand) }

// Or returns a new View over the disjunction of v and other's projected
// roots. See And for the usage-error rules.
func (v *View) Or(other *View) *View { return v.combine(other, OPor) }

// Xor returns a new View over the exclusive-or of v and other's projected
// roots. See And for the usage-error rules.
func (v *View) Xor(other *View) *View { return v.combine(other, OPxor) }

// quantLocked is Exist/ForAll's shared body, callable while mu is already
// held (View.Root needs this; the exported Exist/ForAll take the lock
// themselves).
func (m *Manager) quantLocked(n NodeID, vars VarSet, op Operator) NodeID {
	if vars.Len() == 0 {
		return n
	}
	gen, last := m.markVarSet(vars)
	m.initref()
	m.pushref(n)
	res := m.quant(n, vars.hashcode(), gen, last, op)
	m.popref(1)
	return res
}
