package regions

import (
	"github.com/tshimizu/CoilDisorderAnalyzer/src/report"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/series"
)

// Table carries the per-position flags and the derived intervals for one
// sequence at one threshold. Flags are computed on the original (not the
// smoothed) tracks; TM membership comes from the span file verbatim.
type Table struct {
	Threshold float64
	IDRFlags  []bool
	CCFlags   []bool
	TMFlags   []bool
	Intervals []Interval // IDR runs, then CC runs, then TM spans
}

// Build derives the threshold flags and interval set from an aligned frame.
func Build(frame *series.AlignedFrame, tmSpans []report.Span, threshold float64) *Table {
	n := frame.Len()
	t := &Table{
		Threshold: threshold,
		IDRFlags:  make([]bool, n),
		CCFlags:   make([]bool, n),
		TMFlags:   make([]bool, n),
	}
	for i, p := range frame.Points {
		t.IDRFlags[i] = p.DisorderOriginal >= threshold
		t.CCFlags[i] = p.CCOriginal >= threshold
		for _, s := range tmSpans {
			if s.Contains(p.Position) {
				t.TMFlags[i] = true
				break
			}
		}
	}
	for _, r := range FlagsToIntervals(t.IDRFlags) {
		t.Intervals = append(t.Intervals, Interval{Kind: KindIDR, Start: r.Start, End: r.End})
	}
	for _, r := range FlagsToIntervals(t.CCFlags) {
		t.Intervals = append(t.Intervals, Interval{Kind: KindCC, Start: r.Start, End: r.End})
	}
	for _, s := range tmSpans {
		t.Intervals = append(t.Intervals, Interval{Kind: KindTM, Start: s.Start, End: s.End})
	}
	return t
}

// OfKind returns the intervals of one kind, in ascending start order.
func (t *Table) OfKind(kind Kind) []Interval {
	var out []Interval
	for _, iv := range t.Intervals {
		if iv.Kind == kind {
			out = append(out, iv)
		}
	}
	return out
}
