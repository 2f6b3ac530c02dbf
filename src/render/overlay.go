package render

import (
	"bytes"
	"fmt"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tshimizu/CoilDisorderAnalyzer/src/report"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/series"
)

// Both Y axes of every panel are fixed to this range so charts of different
// sequences stay visually comparable.
const (
	yAxisMin = -5.0
	yAxisMax = 105.0
)

// Canonical horizontal reference lines.
var thresholdLines = []float64{50, 90}

// RenderOverlay draws the two-panel comparison chart: original tracks on
// top, smoothed tracks below, each panel with a left disorder axis and a
// right coiled-coil axis on a shared position axis. The returned Raster
// keeps the pixel grid and the four retained axis boxes.
func RenderOverlay(frame *series.AlignedFrame, tmSpans []report.Span, cfg Config) (*Raster, error) {
	cfg = cfg.withDefaults()
	if frame.Len() == 0 {
		return nil, fmt.Errorf("render: empty frame for %q", cfg.SeqName)
	}
	r, err := chart.PNG(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("render: create raster renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("render: load default font: %w", err)
	}
	r.SetFont(font)

	topBox := panelTopNorm.project(cfg.Width, cfg.Height, yAxisMin, yAxisMax)
	botBox := panelBottomNorm.project(cfg.Width, cfg.Height, yAxisMin, yAxisMax)

	d := &drawer{r: r, cfg: cfg, pal: cfg.palette(), n: frame.Len()}
	d.background()

	tmLegend := len(tmSpans) > 0
	d.panel(topBox, panelSpec{
		title:         fmt.Sprintf("%s - Original", cfg.SeqName),
		disorder:      frame.DisorderOriginals(),
		cc:            frame.CCOriginals(),
		tmSpans:       tmSpans,
		disorderLabel: "Disorder",
		ccLabel:       "Coiled-coil",
		tmLegend:      tmLegend,
	})
	d.panel(botBox, panelSpec{
		title:         fmt.Sprintf("%s - 3-residue MA", cfg.SeqName),
		disorder:      frame.DisorderMAs(),
		cc:            frame.CCMAs(),
		tmSpans:       tmSpans,
		disorderLabel: "Disorder (3-res MA)",
		ccLabel:       "Coiled-coil (3-res MA)",
		tmLegend:      tmLegend,
	})
	d.xAxisLabel()

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("render: save raster: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("render: decode raster: %w", err)
	}
	rgba := toRGBA(img)
	if len(cfg.StatLines) > 0 {
		DrawStatBox(rgba, cfg.StatLines, topBox.Left+12, topBox.Top+12)
	}
	return &Raster{
		Img:            rgba,
		TopDisorder:    topBox,
		TopCC:          topBox,
		BottomDisorder: botBox,
		BottomCC:       botBox,
	}, nil
}

// panelSpec bundles what one panel draws.
type panelSpec struct {
	title         string
	disorder      []float64
	cc            []float64
	tmSpans       []report.Span
	disorderLabel string
	ccLabel       string
	tmLegend      bool
}

type drawer struct {
	r   chart.Renderer
	cfg Config
	pal palette
	n   int
}

func (d *drawer) background() {
	d.fillRect(0, 0, d.cfg.Width, d.cfg.Height, d.pal.bg)
}

// xPixel maps a 1-based position onto panel columns through go-chart's
// continuous range translation.
func (d *drawer) xPixel(box AxisBox, pos int) int {
	if d.n < 2 {
		return box.Left
	}
	xr := &chart.ContinuousRange{Min: 1, Max: float64(d.n), Domain: box.Right - box.Left}
	return box.Left + xr.Translate(float64(pos))
}

// yPixel maps a data value onto panel rows; row grows downward.
func (d *drawer) yPixel(box AxisBox, v float64) int {
	yr := &chart.ContinuousRange{Min: box.YMin, Max: box.YMax, Domain: box.Bottom - box.Top}
	return box.Bottom - yr.Translate(v)
}

func (d *drawer) panel(box AxisBox, spec panelSpec) {
	d.tmBands(box, spec.tmSpans)
	d.grid(box)
	d.referenceLines(box)
	d.polyline(box, spec.disorder, d.pal.disorder)
	d.polyline(box, spec.cc, d.pal.cc)
	d.spines(box)
	d.yTicks(box)
	d.xTicks(box)
	d.yAxisLabels(box)
	d.title(box, spec.title)
	d.legend(box, spec)
}

func (d *drawer) tmBands(box AxisBox, spans []report.Span) {
	for _, s := range spans {
		x0 := d.xPixel(box, clamp(s.Start, 1, d.n))
		x1 := d.xPixel(box, clamp(s.End, 1, d.n))
		d.fillRect(x0, box.Top, x1, box.Bottom, d.pal.tmBand)
	}
}

func (d *drawer) grid(box AxisBox) {
	d.r.SetStrokeColor(d.pal.grid.WithAlpha(80))
	d.r.SetStrokeWidth(1)
	d.r.SetStrokeDashArray([]float64{1, 3})
	for v := 0.0; v <= 100; v += 20 {
		y := d.yPixel(box, v)
		d.r.MoveTo(box.Left, y)
		d.r.LineTo(box.Right, y)
		d.r.Stroke()
	}
	for pos := d.cfg.XTickStep; pos < d.n; pos += d.cfg.XTickStep {
		x := d.xPixel(box, pos)
		d.r.MoveTo(x, box.Top)
		d.r.LineTo(x, box.Bottom)
		d.r.Stroke()
	}
	d.r.SetStrokeDashArray(nil)
}

func (d *drawer) referenceLines(box AxisBox) {
	colors := []drawing.Color{d.pal.thresh50, d.pal.thresh90}
	for i, t := range thresholdLines {
		y := d.yPixel(box, t)
		d.r.SetStrokeColor(colors[i%len(colors)])
		d.r.SetStrokeWidth(1.2)
		d.r.SetStrokeDashArray([]float64{6, 5})
		d.r.MoveTo(box.Left, y)
		d.r.LineTo(box.Right, y)
		d.r.Stroke()
	}
	d.r.SetStrokeDashArray(nil)
}

func (d *drawer) polyline(box AxisBox, ys []float64, col drawing.Color) {
	if len(ys) == 0 {
		return
	}
	d.r.SetStrokeColor(col)
	d.r.SetStrokeWidth(2)
	d.r.MoveTo(d.xPixel(box, 1), d.yPixel(box, ys[0]))
	for i := 1; i < len(ys); i++ {
		d.r.LineTo(d.xPixel(box, i+1), d.yPixel(box, ys[i]))
	}
	d.r.Stroke()
}

func (d *drawer) spines(box AxisBox) {
	d.r.SetStrokeColor(d.pal.text)
	d.r.SetStrokeWidth(1)
	d.r.MoveTo(box.Left, box.Top)
	d.r.LineTo(box.Right, box.Top)
	d.r.LineTo(box.Right, box.Bottom)
	d.r.LineTo(box.Left, box.Bottom)
	d.r.Close()
	d.r.Stroke()
}

func (d *drawer) yTicks(box AxisBox) {
	d.r.SetFontColor(d.pal.text)
	d.r.SetFontSize(11)
	for v := 0.0; v <= 100; v += 20 {
		y := d.yPixel(box, v)
		label := fmt.Sprintf("%.0f", v)
		tb := d.r.MeasureText(label)
		d.r.Text(label, box.Left-8-tb.Width(), y+tb.Height()/2)
		d.r.Text(label, box.Right+8, y+tb.Height()/2)
		d.r.SetStrokeColor(d.pal.text)
		d.r.SetStrokeWidth(1)
		d.r.MoveTo(box.Left-4, y)
		d.r.LineTo(box.Left, y)
		d.r.Stroke()
		d.r.MoveTo(box.Right, y)
		d.r.LineTo(box.Right+4, y)
		d.r.Stroke()
	}
}

func (d *drawer) xTicks(box AxisBox) {
	d.r.SetFontColor(d.pal.text)
	d.r.SetFontSize(11)
	for pos := d.cfg.XTickStep; pos <= d.n; pos += d.cfg.XTickStep {
		x := d.xPixel(box, pos)
		label := fmt.Sprintf("%d", pos)
		tb := d.r.MeasureText(label)
		d.r.Text(label, x-tb.Width()/2, box.Bottom+18)
		d.r.SetStrokeColor(d.pal.text)
		d.r.SetStrokeWidth(1)
		d.r.MoveTo(x, box.Bottom)
		d.r.LineTo(x, box.Bottom+4)
		d.r.Stroke()
	}
}

func (d *drawer) yAxisLabels(box AxisBox) {
	d.r.SetFontColor(d.pal.text)
	d.r.SetFontSize(13)
	left := "Disorder Score (%)"
	right := "Coiled-coil Probability (%)"

	tb := d.r.MeasureText(left)
	d.r.SetTextRotation(-math.Pi / 2)
	d.r.Text(left, box.Left-46, (box.Top+box.Bottom+tb.Width())/2)
	d.r.ClearTextRotation()

	tb = d.r.MeasureText(right)
	d.r.SetTextRotation(math.Pi / 2)
	d.r.Text(right, box.Right+46, (box.Top+box.Bottom-tb.Width())/2)
	d.r.ClearTextRotation()
}

func (d *drawer) title(box AxisBox, title string) {
	d.r.SetFontColor(d.pal.text)
	d.r.SetFontSize(15)
	tb := d.r.MeasureText(title)
	d.r.Text(title, (box.Left+box.Right-tb.Width())/2, box.Top-10)
}

func (d *drawer) legend(box AxisBox, spec panelSpec) {
	type entry struct {
		label string
		col   drawing.Color
		patch bool
	}
	entries := []entry{
		{label: spec.disorderLabel, col: d.pal.disorder},
		{label: spec.ccLabel, col: d.pal.cc},
	}
	if spec.tmLegend {
		entries = append(entries, entry{label: "TM helix", col: d.pal.tmBand, patch: true})
	}

	d.r.SetFontColor(d.pal.text)
	d.r.SetFontSize(12)
	const sample, gap, spacing = 28, 6, 24
	total := 0
	widths := make([]int, len(entries))
	for i, e := range entries {
		widths[i] = sample + gap + d.r.MeasureText(e.label).Width()
		total += widths[i]
	}
	total += spacing * (len(entries) - 1)

	x := (box.Left + box.Right - total) / 2
	y := box.Bottom + 42
	for i, e := range entries {
		if e.patch {
			d.fillRect(x, y-10, x+sample, y, e.col)
		} else {
			d.r.SetStrokeColor(e.col)
			d.r.SetStrokeWidth(2)
			d.r.MoveTo(x, y-4)
			d.r.LineTo(x+sample, y-4)
			d.r.Stroke()
		}
		d.r.SetFontColor(d.pal.text)
		d.r.Text(e.label, x+sample+gap, y)
		x += widths[i] + spacing
	}
}

func (d *drawer) xAxisLabel() {
	label := "Position in Sequence"
	d.r.SetFontColor(d.pal.text)
	d.r.SetFontSize(13)
	tb := d.r.MeasureText(label)
	d.r.Text(label, (d.cfg.Width-tb.Width())/2, d.cfg.Height-14)
}

func (d *drawer) fillRect(x0, y0, x1, y1 int, col drawing.Color) {
	d.r.SetFillColor(col)
	d.r.MoveTo(x0, y0)
	d.r.LineTo(x1, y0)
	d.r.LineTo(x1, y1)
	d.r.LineTo(x0, y1)
	d.r.Close()
	d.r.Fill()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
