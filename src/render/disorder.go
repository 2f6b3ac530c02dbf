package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tshimizu/CoilDisorderAnalyzer/src/series"
)

// RenderDisorderChart draws the standalone single-panel disorder profile
// with the 50% threshold line, using the high-level go-chart API. No axis
// boxes are retained; this chart is never recolored.
func RenderDisorderChart(frame *series.AlignedFrame, cfg Config) (image.Image, error) {
	cfg = cfg.withDefaults()
	n := frame.Len()
	if n == 0 {
		return nil, fmt.Errorf("render: empty frame for %q", cfg.SeqName)
	}
	xs := make([]float64, n)
	ys := frame.DisorderOriginals()
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	pal := cfg.palette()

	ch := chart.Chart{
		Title:      fmt.Sprintf("%s Protein Disorder Profile", cfg.SeqName),
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		Canvas:     chart.Style{FillColor: pal.bg},
		XAxis: chart.XAxis{
			Name:  "Residue Position",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(n)},
		},
		YAxis: chart.YAxis{
			Name:  "Disorder Score (%)",
			Range: &chart.ContinuousRange{Min: yAxisMin, Max: yAxisMax},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Disorder score",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: drawing.ColorFromHex("2e86ab"), StrokeWidth: 1.5},
			},
			chart.ContinuousSeries{
				Name:    "Threshold (50%)",
				XValues: []float64{1, float64(n)},
				YValues: []float64{50, 50},
				Style: chart.Style{
					StrokeColor:     pal.disorder,
					StrokeWidth:     1.2,
					StrokeDashArray: []float64{5, 5},
				},
			},
		},
	}
	ch.Width = cfg.Width
	ch.Height = cfg.Height * 2 / 5
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: disorder chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("render: decode disorder chart: %w", err)
	}
	return img, nil
}
