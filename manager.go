// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// uniqueKey is the hash-consing key for a decision node at a fixed level:
// two nodes at the same level are the same node iff their (low, high) pair
// matches.
type uniqueKey struct {
	low, high NodeID
}

// Manager owns a fixed set of Boolean variables and every decision node
// built over them. All exported operations are methods on *Manager; there
// is no free-standing node type; a NodeID is only meaningful relative to
// the Manager that produced it.
//
// A Manager is safe for concurrent use: mutating operations take mu for
// writing, read-only queries take it for reading. See doc.go.
type Manager struct {
	mu sync.RWMutex

	numVars int
	order   *varOrder

	nodes  []decisionNode
	unique []map[uniqueKey]NodeID // unique[level] -> (low,high) -> NodeID
	free   []NodeID                // free list of reusable slots, LIFO

	refstack []NodeID // in-flight nodes protected from PurgeRetain/Reduce

	iteCache   *iteCache
	applyCache *applyCacheT
	quantCache *quantCacheT
	appexCache *appexCacheT
	quantGen   int   // bumped on every Exist/ForAll/AppEx/RelProd call
	quantMark  []int // quantMark[level] == quantGen iff that level is being quantified away

	views []*View // weak registry of live Views sharing this manager

	config config
	tracer trace.Tracer

	produced   int64 // total nodes ever allocated
	uniqueHit  int64
	uniqueMiss int64
}

// New creates a Manager for numVars Boolean variables, numbered 1..numVars.
// Variable order is initially the identity order (variable i at level i-1).
func New(numVars int, opts ...Option) (*Manager, error) {
	if numVars < 0 {
		return nil, fmt.Errorf("robdd: negative variable count %d", numVars)
	}
	cfg := defaultConfig(numVars)
	for _, opt := range opts {
		opt(&cfg)
	}

	tracerName := cfg.tracer
	if tracerName == "" {
		tracerName = "robdd"
	}
	m := &Manager{
		numVars: numVars,
		order:   newVarOrder(numVars),
		config:  cfg,
		tracer:  otel.Tracer(tracerName),
	}
	initSize := cfg.nodesize
	if initSize < 2 {
		initSize = 2
	}
	m.nodes = make([]decisionNode, initSize)
	m.nodes[BDDFalse] = decisionNode{v: 0, low: BDDFalse, high: BDDFalse}
	m.nodes[BDDTrue] = decisionNode{v: 0, low: BDDTrue, high: BDDTrue}
	for id := 2; id < initSize; id++ {
		m.nodes[id].free = true
		m.free = append(m.free, NodeID(id))
	}

	m.unique = make([]map[uniqueKey]NodeID, numVars+1)
	for lvl := range m.unique {
		m.unique[lvl] = make(map[uniqueKey]NodeID)
	}

	cacheSize := cfg.cachesize
	if cacheSize == 0 {
		cacheSize = 10000
	}
	m.iteCache = newITECache(cacheSize)
	m.applyCache = newApplyCache(cacheSize)
	m.quantCache = newQuantCache(cacheSize)
	m.appexCache = newAppexCache(cacheSize)
	m.quantMark = make([]int, numVars+1)

	if cfg.initOrder != nil {
		if err := m.order.setPermutation(cfg.initOrder); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// NumVars returns the number of Boolean variables the manager was created
// with.
func (m *Manager) NumVars() int {
	return m.numVars
}

// lock helpers: every exported mutating/query method goes through one of
// these so the locking discipline stays in one place.

func (m *Manager) wlock() func() {
	m.mu.Lock()
	return m.mu.Unlock
}

func (m *Manager) rlock() func() {
	m.mu.RLock()
	return m.mu.RUnlock
}

// startSpan opens a span named "robdd."+op against the manager's
// configured tracer (the global no-op tracer by default, a real one once
// an exporter is wired through WithTracerName/an embedder's TracerProvider).
// Every operation in this package is a synchronous, in-process call with
// no caller-supplied context, so each span roots its own trace rather than
// threading one through the whole call tree; callers defer the returned
// span's End.
func (m *Manager) startSpan(op string) trace.Span {
	_, span := m.tracer.Start(context.Background(), "robdd."+op)
	return span
}

// resizeCaches grows every operation cache in proportion to the node
// table's new size, the live equivalent of the teacher's cacheresize, called
// whenever growNodeTable actually grows the table. A zero WithCacheRatio
// (the default) keeps every cache a fixed size, same as the teacher.
func (m *Manager) resizeCaches(nodesize int) {
	ratio := m.config.cacheratio
	if ratio <= 0 {
		return
	}
	m.iteCache.resize(nodesize, ratio)
	m.applyCache.resize(nodesize, ratio)
	m.quantCache.resize(nodesize, ratio)
	m.appexCache.resize(nodesize, ratio)
}

// refstack protects nodes built mid-recursion (e.g. the children of an Ite
// call still unwinding) from being reclaimed by a concurrent-looking
// PurgeRetain; since the manager is single-owner and PurgeRetain requires
// the exclusive lock, in practice the refstack only needs to survive
// reentrant calls within the same locked section. Adapted from the
// teacher's initref/pushref/popref triad.

func (m *Manager) initref() {
	m.refstack = m.refstack[:0]
}

func (m *Manager) pushref(n NodeID) NodeID {
	m.refstack = append(m.refstack, n)
	return n
}

func (m *Manager) popref(count int) {
	m.refstack = m.refstack[:len(m.refstack)-count]
}

// Stats renders a human-readable report of node table and cache occupancy,
// in the spirit of the teacher's Stats() report.
func (m *Manager) Stats() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Variables:   %7d\n", m.numVars)
	fmt.Fprintf(&b, "Nodes:       %7d allocated, %7d free\n", len(m.nodes), len(m.free))
	fmt.Fprintf(&b, "Produced:    %7d total, %7d unique hits, %7d unique misses\n",
		m.produced, m.uniqueHit, m.uniqueMiss)
	fmt.Fprintln(&b, m.iteCache.String())
	fmt.Fprintln(&b, m.applyCache.String())
	fmt.Fprintln(&b, m.quantCache.String())
	fmt.Fprintln(&b, m.appexCache.String())
	return b.String()
}
