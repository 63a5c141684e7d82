// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package robdd

import "sort"

// LevelRange is a closed, inclusive [Low, High] span of levels, the unit
// AreaSelector strategies hand out to be explored concurrently by a
// SwapContext.
type LevelRange struct {
	Low, High int
}

// AreaSelector partitions a manager's levels into disjoint ranges worth
// exploring for reordering, based on how many nodes currently sit at each
// level (LevelSizes). The returned ranges never overlap, so each can be
// driven by its own SwapContext without the explorers stepping on each
// other.
type AreaSelector interface {
	SelectAreas(sizes []int) []LevelRange
}

// LevelSizes returns the number of live nodes at every level, terminal
// level included, used as the input to an AreaSelector.
func (m *Manager) LevelSizes() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sizes := make([]int, m.order.numLevels())
	for id := 2; id < len(m.nodes); id++ {
		n := &m.nodes[id]
		if n.free {
			continue
		}
		sizes[m.order.level(n.v)]++
	}
	return sizes
}

// ThresholdMethod selects every level whose node count is at or above the
// median level size, then merges selections that are within 2 levels of
// each other into a single contiguous range, so a cluster of "hot" levels
// close together becomes one range instead of several tiny ones.
type ThresholdMethod struct{}

// SelectAreas implements AreaSelector.
func (ThresholdMethod) SelectAreas(sizes []int) []LevelRange {
	if len(sizes) == 0 {
		return nil
	}
	sorted := append([]int(nil), sizes...)
	sort.Ints(sorted)
	median := sorted[len(sorted)/2]

	var selected []int
	for lvl, n := range sizes {
		if n >= median && n > 0 {
			selected = append(selected, lvl)
		}
	}
	return mergeLevels(selected, 2)
}

// EqualSplitMethod divides the levels into NSplits contiguous ranges of
// roughly equal total node mass, a simple strategy that works well when
// the diagram has no sharp hotspots for ThresholdMethod to key on.
type EqualSplitMethod struct {
	NSplits int
}

// SelectAreas implements AreaSelector.
func (s EqualSplitMethod) SelectAreas(sizes []int) []LevelRange {
	n := s.NSplits
	if n < 1 {
		n = 1
	}
	total := 0
	for _, v := range sizes {
		total += v
	}
	if total == 0 || len(sizes) == 0 {
		return nil
	}
	target := total / n

	var ranges []LevelRange
	low, running := 0, 0
	for lvl, v := range sizes {
		running += v
		if running >= target && len(ranges) < n-1 {
			ranges = append(ranges, LevelRange{Low: low, High: lvl})
			low = lvl + 1
			running = 0
		}
	}
	if low <= len(sizes)-1 {
		ranges = append(ranges, LevelRange{Low: low, High: len(sizes) - 1})
	}
	return ranges
}

// HotspotMethod finds levels that are local maxima in node count (strictly
// more nodes than both neighbours) and pads each by SurroundingArea levels
// on either side, merging any ranges that end up overlapping.
type HotspotMethod struct {
	SurroundingArea int
}

// SelectAreas implements AreaSelector.
func (s HotspotMethod) SelectAreas(sizes []int) []LevelRange {
	pad := s.SurroundingArea
	if pad < 0 {
		pad = 0
	}
	var ranges []LevelRange
	for lvl, n := range sizes {
		if n == 0 {
			continue
		}
		leftOK := lvl == 0 || sizes[lvl-1] < n
		rightOK := lvl == len(sizes)-1 || sizes[lvl+1] < n
		if !leftOK || !rightOK {
			continue
		}
		low := lvl - pad
		if low < 0 {
			low = 0
		}
		high := lvl + pad
		if high > len(sizes)-1 {
			high = len(sizes) - 1
		}
		ranges = append(ranges, LevelRange{Low: low, High: high})
	}
	return mergeRanges(ranges)
}

// mergeLevels groups a sorted (ascending) list of individual levels into
// contiguous LevelRanges, treating two levels as belonging to the same
// range when they are within maxGap of each other.
func mergeLevels(levels []int, maxGap int) []LevelRange {
	if len(levels) == 0 {
		return nil
	}
	var ranges []LevelRange
	low, high := levels[0], levels[0]
	for _, lvl := range levels[1:] {
		if lvl-high <= maxGap {
			high = lvl
			continue
		}
		ranges = append(ranges, LevelRange{Low: low, High: high})
		low, high = lvl, lvl
	}
	ranges = append(ranges, LevelRange{Low: low, High: high})
	return ranges
}

// mergeRanges coalesces any overlapping or adjacent LevelRanges.
func mergeRanges(ranges []LevelRange) []LevelRange {
	if len(ranges) == 0 {
		return nil
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Low < ranges[j].Low })
	out := []LevelRange{ranges[0]}
	for _, r := range ranges[1:] {
		last := &out[len(out)-1]
		if r.Low <= last.High+1 {
			if r.High > last.High {
				last.High = r.High
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
