package solver

import "sort"

// Alternative is one reportable window entry: the offset from the
// requested length and the result found there.
type Alternative struct {
	Offset int
	Result Result
}

// SelectReportable applies the reporting policy to a length window: the
// smallest offset with any walk sets the baseline, and every other
// offset whose minimum cost is at or below the baseline is kept as a
// same-or-cheaper alternative at a different length. Costlier offsets
// are suppressed. Returns nil when the whole window is empty.
func SelectReportable(window map[int]Result) []Alternative {
	offsets := make([]int, 0, len(window))
	for offset := range window {
		offsets = append(offsets, offset)
	}
	sort.Ints(offsets)

	baseline := CostUnreachable
	haveBaseline := false
	var out []Alternative
	for _, offset := range offsets {
		res := window[offset]
		if !res.Found() {
			continue
		}
		if !haveBaseline {
			baseline = res.Cost
			haveBaseline = true
			out = append(out, Alternative{Offset: offset, Result: res})
			continue
		}
		if res.Cost <= baseline {
			out = append(out, Alternative{Offset: offset, Result: res})
		}
	}
	return out
}
