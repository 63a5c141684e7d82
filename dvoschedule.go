// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import "time"

// DVOSchedule decides whether dynamic variable reordering should run at a
// given point during incremental construction (between two clauses of
// BuildFromCNF, or after an explicit edit). Implementations are stateful:
// the same value is reused across the whole build so it can track things
// like elapsed time or a node-count trend.
type DVOSchedule interface {
	// ShouldRun is consulted after each clause has been integrated. active
	// is the current number of live (non-free) nodes in the manager.
	ShouldRun(active int) bool
}

// NoDVOSchedule never triggers reordering; it is the default for a Manager
// built without an explicit WithDVOSchedule option.
type NoDVOSchedule struct{}

// ShouldRun always reports false.
func (NoDVOSchedule) ShouldRun(int) bool { return false }

// AlwaysOnce triggers exactly one reordering pass, the first time ShouldRun
// is called, and never again afterwards.
type AlwaysOnce struct {
	fired bool
}

// ShouldRun fires on the very first call and stays false thereafter.
func (s *AlwaysOnce) ShouldRun(int) bool {
	if s.fired {
		return false
	}
	s.fired = true
	return true
}

// AlwaysUntilConvergence triggers on every call until an entire pass fails
// to reduce the active node count, as reported back through Converged.
type AlwaysUntilConvergence struct {
	converged bool
}

// ShouldRun reports true until Converged(true) has been observed.
func (s *AlwaysUntilConvergence) ShouldRun(int) bool { return !s.converged }

// Converged records whether the most recent reordering pass improved the
// node count; the caller (BuildFromCNF or an explicit reordering driver)
// reports this back after each pass.
func (s *AlwaysUntilConvergence) Converged(noImprovement bool) { s.converged = noImprovement }

// AtThreshold delegates to an underlying schedule only once the active node
// count has crossed ActiveNodesThreshold; below the threshold it never
// fires, avoiding the overhead of reordering tiny diagrams.
type AtThreshold struct {
	ActiveNodesThreshold int
	Underlying           DVOSchedule
}

// ShouldRun reports false below the threshold, otherwise defers to Underlying.
func (s *AtThreshold) ShouldRun(active int) bool {
	if active < s.ActiveNodesThreshold {
		return false
	}
	return s.Underlying.ShouldRun(active)
}

// TimeSizeLimit delegates to an underlying schedule, but never more often
// than once per Interval of wall-clock time, and stops delegating entirely
// once the active node count exceeds Limit (reordering a diagram that has
// already grown past the point DVO can help is wasted work).
type TimeSizeLimit struct {
	Interval   time.Duration
	Limit      int
	Underlying DVOSchedule

	lastRun time.Time
}

// ShouldRun reports false if Limit is exceeded or Interval has not elapsed
// since the last true result, otherwise defers to Underlying.
func (s *TimeSizeLimit) ShouldRun(active int) bool {
	if s.Limit > 0 && active > s.Limit {
		return false
	}
	if !s.lastRun.IsZero() && time.Since(s.lastRun) < s.Interval {
		return false
	}
	if s.Underlying.ShouldRun(active) {
		s.lastRun = time.Now()
		return true
	}
	return false
}
