// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ConcurrentReorder partitions the manager's levels with selector, then
// explores each resulting LevelRange in its own goroutine against a
// private SwapContext (so the explorers never contend for the manager's
// lock), and finally commits every explored range's best swap sequence
// serially, lowest level first. Committing low-to-high keeps each range's
// recorded swap path valid: a range's path is only correct relative to
// the order other ranges had when it was explored, and committing from
// the bottom up never moves a not-yet-committed range's variables out
// from under it, since ranges are disjoint and swaps never cross a range
// boundary.
func (m *Manager) ConcurrentReorder(ctx context.Context, selector AreaSelector) error {
	// The terminal level is never swapped, so it is left out of the levels
	// the selector partitions.
	sizes := m.LevelSizes()
	areas := selector.SelectAreas(sizes[:len(sizes)-1])
	if len(areas) == 0 {
		return nil
	}

	type explored struct {
		area LevelRange
		sc   *SwapContext
	}
	results := make([]explored, len(areas))

	g, _ := errgroup.WithContext(ctx)
	for i, area := range areas {
		i, area := i, area
		g.Go(func() error {
			sc := m.NewSwapContext()
			for lvl := area.Low; lvl < area.High; lvl++ {
				v := sc.clone.order.varAt(lvl)
				sc.SiftWithin(v, area.Low, area.High)
			}
			results[i] = explored{area: area, sc: sc}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(a, b int) bool { return results[a].area.Low < results[b].area.Low })
	for _, r := range results {
		m.Commit(r.sc)
	}
	return nil
}
