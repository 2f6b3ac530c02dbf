// Package series aligns the dense disorder track and the sparse coiled-coil
// track onto one full-length position axis and smooths both with a centered
// moving average.
package series

import (
	"fmt"

	"github.com/tshimizu/CoilDisorderAnalyzer/src/report"
)

// Source tells whether a frame position carries an observed coiled-coil
// value or a zero fill.
type Source uint8

const (
	SourceFilled Source = iota
	SourceObserved
)

// HeptadNone is the heptad sentinel for positions absent from the
// coiled-coil report.
const HeptadNone = '-'

// Point is one position of an aligned frame.
type Point struct {
	Position         int
	Residue          string
	DisorderOriginal float64
	DisorderMA       float64
	CCOriginal       float64
	CCMA             float64
	Heptad           byte
	Source           Source
}

// AlignedFrame holds both tracks aligned to positions 1..N. It is built
// once per sequence and not mutated afterwards except by Smooth, which
// fills the moving-average fields.
type AlignedFrame struct {
	Name   string
	Points []Point
}

// Len returns the number of aligned positions.
func (f *AlignedFrame) Len() int { return len(f.Points) }

// DisorderOriginals returns the dense disorder track as a flat slice.
func (f *AlignedFrame) DisorderOriginals() []float64 {
	out := make([]float64, len(f.Points))
	for i := range f.Points {
		out[i] = f.Points[i].DisorderOriginal
	}
	return out
}

// CCOriginals returns the zero-filled coiled-coil track as a flat slice.
func (f *AlignedFrame) CCOriginals() []float64 {
	out := make([]float64, len(f.Points))
	for i := range f.Points {
		out[i] = f.Points[i].CCOriginal
	}
	return out
}

// DisorderMAs returns the smoothed disorder track as a flat slice.
func (f *AlignedFrame) DisorderMAs() []float64 {
	out := make([]float64, len(f.Points))
	for i := range f.Points {
		out[i] = f.Points[i].DisorderMA
	}
	return out
}

// CCMAs returns the smoothed coiled-coil track as a flat slice.
func (f *AlignedFrame) CCMAs() []float64 {
	out := make([]float64, len(f.Points))
	for i := range f.Points {
		out[i] = f.Points[i].CCMA
	}
	return out
}

// Align merges the dense disorder rows with the sparse coiled-coil series.
// The dense track defines the position axis 1..N and must be gapless.
// Sparse positions must be unique and inside [1, N]; positions without a
// sparse value get CCOriginal 0 and the HeptadNone sentinel.
func Align(name string, dense []report.DisorderRow, sparse []report.ResidueProb) (*AlignedFrame, error) {
	n := len(dense)
	if n == 0 {
		return nil, fmt.Errorf("series: empty disorder track for %q", name)
	}
	byPos := make(map[int]report.ResidueProb, len(sparse))
	for _, rp := range sparse {
		if rp.Position < 1 || rp.Position > n {
			return nil, &PositionOutOfRangeError{Position: rp.Position, Length: n}
		}
		if _, dup := byPos[rp.Position]; dup {
			return nil, fmt.Errorf("series: duplicate coiled-coil position %d for %q", rp.Position, name)
		}
		byPos[rp.Position] = rp
	}

	frame := &AlignedFrame{Name: name, Points: make([]Point, n)}
	for i, row := range dense {
		if row.Position != i+1 {
			return nil, fmt.Errorf("series: disorder track not gapless: row %d has position %d", i+1, row.Position)
		}
		p := Point{
			Position:         row.Position,
			Residue:          row.Residue,
			DisorderOriginal: row.Score,
			Heptad:           HeptadNone,
			Source:           SourceFilled,
		}
		if rp, ok := byPos[row.Position]; ok {
			p.CCOriginal = rp.Prob
			p.Heptad = rp.Heptad
			p.Source = SourceObserved
			if p.Residue == "" {
				p.Residue = string(rp.Residue)
			}
		}
		frame.Points[i] = p
	}
	return frame, nil
}

// Smooth fills the moving-average fields of both tracks with a centered
// moving average of the given odd window.
func (f *AlignedFrame) Smooth(window int) error {
	dMA, err := MovingAverage(f.DisorderOriginals(), window)
	if err != nil {
		return err
	}
	cMA, err := MovingAverage(f.CCOriginals(), window)
	if err != nil {
		return err
	}
	for i := range f.Points {
		f.Points[i].DisorderMA = dMA[i]
		f.Points[i].CCMA = cMA[i]
	}
	return nil
}
