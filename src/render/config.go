// Package render draws the two-panel disorder / coiled-coil comparison
// chart and the standalone disorder chart. The two-panel overlay is drawn
// directly on the go-chart raster renderer with an explicit panel layout so
// every axis retains its data-space limits and pixel bounding box; the
// recolor package depends on those retained boxes.
package render

import "github.com/wcharczuk/go-chart/v2/drawing"

// Theme selects the chart palette.
type Theme int

const (
	Light Theme = iota
	Dark
)

// Config is the explicit rendering configuration. There is no ambient
// process state: canvas size, theme and tick spacing all travel here.
type Config struct {
	Width     int // canvas width in pixels (default 1600)
	Height    int // canvas height in pixels (default 1000)
	Theme     Theme
	SeqName   string
	XTickStep int      // x tick interval in residues (default 200)
	StatLines []string // optional stat box lines drawn onto the raster
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 1600
	}
	if c.Height <= 0 {
		c.Height = 1000
	}
	if c.XTickStep <= 0 {
		c.XTickStep = 200
	}
	return c
}

// palette holds the per-theme chart colors.
type palette struct {
	bg       drawing.Color
	text     drawing.Color
	grid     drawing.Color
	disorder drawing.Color
	cc       drawing.Color
	thresh50 drawing.Color
	thresh90 drawing.Color
	tmBand   drawing.Color
}

func (c Config) palette() palette {
	if c.Theme == Dark {
		return palette{
			bg:       drawing.ColorFromHex("000000"),
			text:     drawing.ColorFromHex("ffffff"),
			grid:     drawing.ColorFromHex("666666"),
			disorder: drawing.ColorFromHex("ff595e"),
			cc:       drawing.ColorFromHex("1982c4"),
			thresh50: drawing.ColorFromHex("ffca3a"),
			thresh90: drawing.ColorFromHex("666666"),
			tmBand:   drawing.ColorFromHex("8cff66").WithAlpha(64),
		}
	}
	return palette{
		bg:       drawing.ColorFromHex("ffffff"),
		text:     drawing.ColorFromHex("000000"),
		grid:     drawing.ColorFromHex("b0b0b0"),
		disorder: drawing.ColorFromHex("ff0000"),
		cc:       drawing.ColorFromHex("0000ff"),
		thresh50: drawing.ColorFromHex("ffa500"),
		thresh90: drawing.ColorFromHex("808080"),
		tmBand:   drawing.ColorFromHex("32cd32").WithAlpha(64),
	}
}
