package render

// normBox is a panel position in normalized canvas coordinates with the
// origin at the bottom-left, x right and y up (the convention the original
// figure layout was expressed in). X0/Y0 is the lower-left corner.
type normBox struct {
	X0, Y0, X1, Y1 float64
}

// Panel layout of the two-panel overlay. The gaps leave room for panel
// titles above, tick labels and legends below, and the shared x label at
// the canvas bottom.
var (
	panelTopNorm    = normBox{X0: 0.07, Y0: 0.57, X1: 0.93, Y1: 0.93}
	panelBottomNorm = normBox{X0: 0.07, Y0: 0.10, X1: 0.93, Y1: 0.46}
)

// AxisBox couples an axis's data-space Y limits with its pixel-space
// bounding box on the rendered raster. Pixel row 0 is the top of the
// canvas, so YMax projects onto Top and YMin onto Bottom.
type AxisBox struct {
	YMin, YMax float64
	Left       int
	Right      int
	Top        int
	Bottom     int
}

// Degenerate reports whether the box cannot host a threshold row: zero
// pixel width or height, or collapsed data limits.
func (b AxisBox) Degenerate() bool {
	return b.Right <= b.Left || b.Bottom <= b.Top || b.YMax == b.YMin
}

// project maps a normalized panel box onto pixel coordinates for a canvas
// of the given physical dimensions, inverting the Y axis.
func (nb normBox) project(width, height int, ymin, ymax float64) AxisBox {
	return AxisBox{
		YMin:   ymin,
		YMax:   ymax,
		Left:   int(nb.X0 * float64(width)),
		Right:  int(nb.X1 * float64(width)),
		Top:    int((1 - nb.Y1) * float64(height)),
		Bottom: int((1 - nb.Y0) * float64(height)),
	}
}
