// Package recolor post-processes an already-rendered chart raster: pixels
// of a target line color that sit below a data-space threshold row are
// blended toward white or black. The underlying data are untouched and the
// chart is never re-rendered.
package recolor

import (
	"image"
	"math"

	"github.com/tshimizu/CoilDisorderAnalyzer/src/render"
)

// DefaultTolerance is the RGB-distance tolerance (0-255 scale) that catches
// anti-aliased line pixels around the stroke core.
const DefaultTolerance = 230.0

// DefaultBlend is the blend ratio the pipeline applies per pass.
const DefaultBlend = 0.2

// Widening of the active region to the left of the axis box, in pixels.
// Anti-aliased stroke edges bleed across the axis spine by a few pixels.
const leftMargin = 5

// Mode selects the blend direction.
type Mode int

const (
	// Lighten blends matching pixels toward white: p*a + 255*(1-a).
	Lighten Mode = iota
	// Darken blends matching pixels toward black: p*a.
	Darken
)

// ColorTarget is a line color to match, on the 0-1 scale, with a matching
// tolerance expressed as Euclidean RGB distance on the 0-255 scale.
type ColorTarget struct {
	R, G, B   float64
	Tolerance float64
}

// Entry is one recoloring pass: which axis's geometry to project the
// threshold through, which color to match, and how to blend. Entries are
// applied strictly in caller order; a later entry sees the pixels earlier
// entries produced. Applying the same entry twice keeps blending toward
// the target extreme, so callers apply each entry exactly once per output.
type Entry struct {
	Axis      render.AxisBox
	Color     ColorTarget
	Threshold float64
	Blend     float64
	Mode      Mode
}

// Apply runs every entry against the raster in order, mutating it in
// place. Degenerate axis boxes are skipped without error.
func Apply(img *image.RGBA, entries []Entry) {
	for _, e := range entries {
		applyEntry(img, e)
	}
}

// thresholdRow projects a data-space threshold onto a pixel row through the
// axis's retained geometry. Rows at or below it (larger row index) hold
// data values at or below the threshold.
func thresholdRow(b render.AxisBox, t float64) float64 {
	norm := (t - b.YMin) / (b.YMax - b.YMin)
	return float64(b.Top) + float64(b.Bottom-b.Top)*(1-norm)
}

func applyEntry(img *image.RGBA, e Entry) {
	if img == nil || e.Axis.Degenerate() {
		return
	}
	bounds := img.Bounds()
	row := thresholdRow(e.Axis, e.Threshold)

	x0 := e.Axis.Left - leftMargin
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	x1 := e.Axis.Right
	if x1 > bounds.Max.X-1 {
		x1 = bounds.Max.X - 1
	}
	y0 := e.Axis.Top
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	y1 := e.Axis.Bottom
	if y1 > bounds.Max.Y-1 {
		y1 = bounds.Max.Y - 1
	}

	tr := e.Color.R * 255
	tg := e.Color.G * 255
	tb := e.Color.B * 255
	tol := e.Color.Tolerance

	for y := y0; y <= y1; y++ {
		if float64(y) < row {
			continue
		}
		for x := x0; x <= x1; x++ {
			off := img.PixOffset(x, y)
			pr := float64(img.Pix[off])
			pg := float64(img.Pix[off+1])
			pb := float64(img.Pix[off+2])
			dr := pr - tr
			dg := pg - tg
			db := pb - tb
			if math.Sqrt(dr*dr+dg*dg+db*db) >= tol {
				continue
			}
			switch e.Mode {
			case Lighten:
				pr = pr*e.Blend + 255*(1-e.Blend)
				pg = pg*e.Blend + 255*(1-e.Blend)
				pb = pb*e.Blend + 255*(1-e.Blend)
			case Darken:
				pr *= e.Blend
				pg *= e.Blend
				pb *= e.Blend
			}
			img.Pix[off] = clampByte(pr)
			img.Pix[off+1] = clampByte(pg)
			img.Pix[off+2] = clampByte(pb)
		}
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
