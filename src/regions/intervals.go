// Package regions converts per-position threshold flags into maximal
// contiguous 1-based intervals and writes the region tables.
package regions

// Kind labels the biological region type of an interval.
type Kind string

const (
	KindIDR Kind = "IDR"
	KindCC  Kind = "CC"
	KindTM  Kind = "TM"
)

// Range is a maximal run of true flags, 1-based inclusive.
type Range struct {
	Start int
	End   int
}

// Interval is a typed region span, 1-based inclusive.
type Interval struct {
	Kind  Kind
	Start int
	End   int
}

// Length returns the number of positions covered by the interval.
func (iv Interval) Length() int { return iv.End - iv.Start + 1 }

// FlagsToIntervals scans the flags once and returns the maximal runs of
// true values as 1-based inclusive ranges. A run still open at the end of
// the sequence closes at len(flags), never one short of it.
func FlagsToIntervals(flags []bool) []Range {
	var out []Range
	start := 0 // 0 means no open run
	for i, v := range flags {
		pos := i + 1
		if v && start == 0 {
			start = pos
		}
		if start != 0 && !v {
			out = append(out, Range{Start: start, End: pos - 1})
			start = 0
		}
	}
	if start != 0 {
		out = append(out, Range{Start: start, End: len(flags)})
	}
	return out
}

// Coverage returns the fraction of true flags as a percentage.
func Coverage(flags []bool) float64 {
	if len(flags) == 0 {
		return 0
	}
	n := 0
	for _, v := range flags {
		if v {
			n++
		}
	}
	return float64(n) / float64(len(flags)) * 100
}
