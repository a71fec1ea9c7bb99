package merger

import "sort"

// netLabel marks a total/summary row or column. By convention it belongs
// last in any merged ordering, regardless of where matching placed it.
const netLabel = "NET"

// position is an exact rational sort key: num/den with den > 0. Interleaved
// labels land on fractional positions between their matched neighbors;
// rational arithmetic keeps the ordering reproducible across platforms.
type position struct {
	num, den int
}

func intPos(i int) position {
	return position{num: i, den: 1}
}

// Widen before cross-multiplying so large label counts cannot overflow
// the comparison on 32-bit ints.
func (p position) less(q position) bool {
	return int64(p.num)*int64(q.den) < int64(q.num)*int64(p.den)
}

// reconcileLabels computes the output ordering for a full outer merge of
// two label sequences. The left sequence keeps its relative order; labels
// found only in right are interleaved into the gaps implied by their
// matched neighbors, and appended when nothing anchors them. A "NET" label
// is always relocated to the final position.
func reconcileLabels(left, right []string) []string {
	leftIndex := make(map[string]int, len(left))
	for i, l := range left {
		if _, ok := leftIndex[l]; !ok {
			leftIndex[l] = i
		}
	}

	matched := make([]int, len(right))
	matches := 0
	for j, r := range right {
		if i, ok := leftIndex[r]; ok {
			matched[j] = i
			matches++
		} else {
			matched[j] = -1
		}
	}

	// Nothing to interleave: right is wholly new or wholly known.
	if matches == 0 {
		return moveNetLast(append(append([]string(nil), left...), right...))
	}
	if matches == len(right) {
		return moveNetLast(append([]string(nil), left...))
	}

	positions := rightPositions(matched)

	type entry struct {
		label string
		pos   position
	}
	entries := make([]entry, 0, len(left)+len(right))
	for i, l := range left {
		entries = append(entries, entry{label: l, pos: intPos(i)})
	}
	for j, r := range right {
		entries = append(entries, entry{label: r, pos: positions[j]})
	}

	// Stable: ties keep input order, so a shared label's left occurrence
	// sorts ahead of its right occurrence and survives deduplication.
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].pos.less(entries[b].pos)
	})

	out := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.label] {
			continue
		}
		seen[e.label] = true
		out = append(out, e.label)
	}
	return moveNetLast(out)
}

// rightPositions assigns each right-side label a sort position. Matched
// labels sit exactly at their left index. A run of k consecutive unmatched
// labels bounded by anchors at left positions p0 and p1 is spread evenly
// across the open interval (p0, p1); a leading run uses (minMatch-1,
// minMatch), and a trailing run extends past maxMatch when the run's anchor
// is already the maximum.
func rightPositions(matched []int) []position {
	minMatch, maxMatch := -1, -1
	for _, m := range matched {
		if m < 0 {
			continue
		}
		if minMatch < 0 || m < minMatch {
			minMatch = m
		}
		if m > maxMatch {
			maxMatch = m
		}
	}

	out := make([]position, len(matched))
	j := 0
	for j < len(matched) {
		if matched[j] >= 0 {
			out[j] = intPos(matched[j])
			j++
			continue
		}
		// Run of unmatched labels [j, end).
		end := j
		for end < len(matched) && matched[end] < 0 {
			end++
		}
		k := end - j
		var p0, p1 int
		switch {
		case j == 0:
			p0, p1 = minMatch-1, minMatch
		case end == len(matched):
			p0 = matched[j-1]
			p1 = maxMatch
			if p0 == maxMatch {
				p1 = maxMatch + 1
			}
		default:
			p0, p1 = matched[j-1], matched[end]
		}
		for i := 1; i <= k; i++ {
			out[j+i-1] = position{num: p0*(k+1) + (p1-p0)*i, den: k + 1}
		}
		j = end
	}
	return out
}

// moveNetLast relocates a "NET" label to the end of the ordering.
func moveNetLast(labels []string) []string {
	for i, l := range labels {
		if l == netLabel && i != len(labels)-1 {
			out := append([]string(nil), labels[:i]...)
			out = append(out, labels[i+1:]...)
			return append(out, netLabel)
		}
	}
	return labels
}
