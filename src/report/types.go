// Package report parses the per-residue signal reports consumed by the
// pipeline: the coiled-coil probability report, the disorder-score CSV and
// the optional transmembrane span file. Parsed rows are typed records; the
// string-keyed shape of the raw files stops at this boundary.
package report

// ResidueProb is one data line of a coiled-coil probability report.
type ResidueProb struct {
	Position int     // 1-based residue index
	Residue  byte    // one-letter amino acid code (or '*')
	Prob     float64 // coiled-coil probability, 0-100
	Heptad   byte    // heptad register, 'a'..'g'
}

// DisorderRow is one row of a disorder-score CSV, with the score already
// normalized to the 0-100 percent scale.
type DisorderRow struct {
	Position int
	Residue  string
	Score    float64
}

// Span is a 1-based inclusive transmembrane helix span.
type Span struct {
	Start int
	End   int
}

// Len returns the number of residues covered by the span.
func (s Span) Len() int { return s.End - s.Start + 1 }

// Contains reports whether the 1-based position falls inside the span.
func (s Span) Contains(pos int) bool { return s.Start <= pos && pos <= s.End }
