// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import "github.com/spf13/viper"

// config stores the tunable parameters of a Manager, set once at New time
// through a list of Option values.
type config struct {
	nodesize        int // initial capacity of the node table
	cachesize       int // initial size of the operation caches
	cacheratio      int // cache growth per 100 extra node slots (0: fixed size)
	maxnodesize     int // hard cap on node table size (0: unbounded)
	maxnodeincrease int // cap on a single resize's growth (0: unbounded)
	minfreenodes    int // percentage of free slots to keep available after a resize

	dvoSchedule DVOSchedule // when/how BuildFromCNF triggers reordering
	tracer      string      // otel tracer name override, empty uses the default
	initOrder   []VarID     // initial level2var assignment, nil uses v at level v-1
}

// Option configures a Manager at construction time.
type Option func(*config)

func defaultConfig(numVars int) config {
	return config{
		nodesize:        2*numVars + 2,
		minfreenodes:    20,
		maxnodeincrease: 1 << 20,
		dvoSchedule:     NoDVOSchedule{},
	}
}

// WithNodesize sets a preferred initial size for the node table. The BDD can
// grow beyond it during computation; by default the table is sized just
// large enough for the two terminals and every declared variable.
func WithNodesize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.nodesize = size
		}
	}
}

// WithMaxNodes caps the total number of nodes (live and free slots
// together) a Manager's table will ever grow to. An allocation that would
// need to grow the table past the cap panics with ErrNodeLimitExceeded
// instead; call PurgeRetain beforehand if the table may hold reclaimable
// garbage; allocNode will not do it for you. The default, 0, means no
// limit.
func WithMaxNodes(size int) Option {
	return func(c *config) { c.maxnodesize = size }
}

// WithMaxNodeIncrease caps how many nodes a single table growth step may
// add, the same role the teacher's maxnodeincrease plays against its
// doubling resize. The default is about a million; pass 0 to remove the
// limit.
func WithMaxNodeIncrease(size int) Option {
	return func(c *config) { c.maxnodeincrease = size }
}

// WithMinFreeNodes sets the percentage of free node slots growNodeTable
// grows the table towards on every allocation that finds the free list
// empty, similar to a load factor: a small percentage means growth happens
// in small, frequent steps, a large one means fewer but bigger steps. The
// default is 20.
func WithMinFreeNodes(percent int) Option {
	return func(c *config) { c.minfreenodes = percent }
}

// WithCacheSize sets the initial number of entries in each operation cache
// (Ite, Apply, quantification). The default is 10000.
func WithCacheSize(size int) Option {
	return func(c *config) { c.cachesize = size }
}

// WithCacheRatio sets each operation cache's size, as a percentage of the
// node table's size, recomputed (and cleared) every time the node table
// grows. The default, 0, keeps the caches a fixed size.
func WithCacheRatio(ratio int) Option {
	return func(c *config) { c.cacheratio = ratio }
}

// WithDVOSchedule installs the default DVOSchedule consulted by
// BuildFromCNF between clauses. The default is NoDVOSchedule, which never
// reorders; callers needing DVO during incremental construction select one
// of AlwaysOnce/AlwaysUntilConvergence/AtThreshold/TimeSizeLimit.
func WithDVOSchedule(s DVOSchedule) Option {
	return func(c *config) { c.dvoSchedule = s }
}

// WithInitialOrder seeds the manager's variable order instead of the
// default identity assignment (variable v at level v-1). order must be a
// permutation of every variable from 1 to numVars; it is typically produced
// by ApplyStaticOrder ahead of a call to New or BuildFromCNF.
func WithInitialOrder(order []VarID) Option {
	return func(c *config) { c.initOrder = append([]VarID(nil), order...) }
}

// WithTracerName overrides the OpenTelemetry tracer name used for the spans
// emitted around Ite, Apply, BuildFromCNF (the whole build and each clause)
// and DVO passes; quantification opens no span. The default is "robdd".
func WithTracerName(name string) Option {
	return func(c *config) { c.tracer = name }
}

// OptionsFromViper translates a *viper.Viper's settings into the Option
// list New/BuildFromCNF expect. It reads the keys node_size, cache_size,
// cache_ratio, max_node_size, max_node_increase, min_free_nodes, dvo and
// tracer; of these, the cobra CLI driver binds only cache_size and dvo to
// flags. It lets an embedder that
// already wires viper for its own configuration (a config file, ROBDD_-
// prefixed environment variables, or flags bound with BindPFlag) hand the
// whole thing to the engine instead of re-reading each key by hand. Keys
// absent from v are left at their New/defaultConfig defaults; dvo accepts
// "none" (default), "once", or "converge", matching the CLI's --dvo flag.
func OptionsFromViper(v *viper.Viper) []Option {
	var opts []Option
	if size := v.GetInt("node_size"); size > 0 {
		opts = append(opts, WithNodesize(size))
	}
	if size := v.GetInt("cache_size"); size > 0 {
		opts = append(opts, WithCacheSize(size))
	}
	if ratio := v.GetInt("cache_ratio"); ratio > 0 {
		opts = append(opts, WithCacheRatio(ratio))
	}
	if size := v.GetInt("max_node_size"); size > 0 {
		opts = append(opts, WithMaxNodes(size))
	}
	if size := v.GetInt("max_node_increase"); size > 0 {
		opts = append(opts, WithMaxNodeIncrease(size))
	}
	if pct := v.GetInt("min_free_nodes"); pct > 0 {
		opts = append(opts, WithMinFreeNodes(pct))
	}
	if name := v.GetString("tracer"); name != "" {
		opts = append(opts, WithTracerName(name))
	}
	switch v.GetString("dvo") {
	case "once":
		opts = append(opts, WithDVOSchedule(&AlwaysOnce{}))
	case "converge":
		opts = append(opts, WithDVOSchedule(&AlwaysUntilConvergence{}))
	}
	return opts
}
