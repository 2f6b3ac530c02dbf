// Package pipeline runs the full per-sequence chain: parse reports, align,
// smooth, derive regions, render the comparison charts and recolor the
// sub-threshold pixels. One invocation handles one sequence; callers
// processing many sequences run one pipeline per sequence and never share
// a raster between invocations.
package pipeline

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/tshimizu/CoilDisorderAnalyzer/src/plotdata"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/recolor"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/regions"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/render"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/report"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/series"
)

// Options configures one pipeline run.
type Options struct {
	Name            string // sequence name; selects the report entry and prefixes outputs
	CoiledCoilPath  string // required coiled-coil probability report
	DisorderCSVPath string // required disorder-score CSV
	TMGFFPath       string // optional transmembrane span file
	OutDir          string

	Window    int     // smoothing window, odd (default 3)
	Threshold float64 // region threshold in percent (default 50)
	XTickStep int     // chart x tick interval (default 200)
	Width     int     // chart width in pixels
	Height    int     // chart height in pixels
	Blend     float64 // recolor blend ratio (default 0.2)
	Tolerance float64 // recolor color-match tolerance (default 230)

	Log zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.OutDir == "" {
		o.OutDir = "."
	}
	if o.Window == 0 {
		o.Window = 3
	}
	if o.Threshold == 0 {
		o.Threshold = 50
	}
	if o.XTickStep == 0 {
		o.XTickStep = 200
	}
	if o.Blend == 0 {
		o.Blend = recolor.DefaultBlend
	}
	if o.Tolerance == 0 {
		o.Tolerance = recolor.DefaultTolerance
	}
	return o
}

// Run executes the pipeline for one sequence. It either completes or fails
// fast; there is no partial retry inside a run.
func Run(opts Options) error {
	opts = opts.withDefaults()
	log := opts.Log.With().Str("sequence", opts.Name).Logger()

	log.Info().Str("step", "parse").Str("path", opts.CoiledCoilPath).Msg("reading coiled-coil report")
	parsed, err := report.LoadCoiledCoil(opts.CoiledCoilPath, log)
	if err != nil {
		return err
	}
	ccSeries, err := report.SelectSequence(parsed, opts.Name)
	if err != nil {
		return err
	}

	log.Info().Str("step", "parse").Str("path", opts.DisorderCSVPath).Msg("reading disorder scores")
	disorder, err := report.LoadDisorderCSV(opts.DisorderCSVPath, log)
	if err != nil {
		return err
	}

	var tmSpans []report.Span
	if opts.TMGFFPath != "" {
		tmSpans, err = report.LoadTMSpans(opts.TMGFFPath, log)
		if err != nil {
			return err
		}
	}

	log.Info().Str("step", "align").Int("length", len(disorder)).Msg("aligning tracks")
	frame, err := series.Align(opts.Name, disorder, ccSeries)
	if err != nil {
		return err
	}
	if err := frame.Smooth(opts.Window); err != nil {
		return err
	}

	table := regions.Build(frame, tmSpans, opts.Threshold)

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	prefix := filepath.Join(opts.OutDir, opts.Name)

	log.Info().Str("step", "tables").Msg("writing CSV outputs")
	if err := plotdata.WriteFile(prefix+"_plot_data.csv", frame); err != nil {
		return err
	}
	if err := regions.WritePositionsFile(prefix+"_regions_positions.csv", frame, table); err != nil {
		return err
	}
	if err := regions.WriteIntervalsFile(prefix+"_regions_intervals.csv", table); err != nil {
		return err
	}

	disorderStats, err := series.Summarize(frame.DisorderOriginals())
	if err != nil {
		return err
	}
	if err := writeSummary(prefix+"_disorder_summary.txt", frame, table, disorderStats); err != nil {
		return err
	}

	statLines := []string{
		fmt.Sprintf("Mean disorder: %.1f%%", disorderStats.Mean),
		fmt.Sprintf("IDR coverage: %.1f%%", regions.Coverage(table.IDRFlags)),
	}

	for _, variant := range []struct {
		theme  render.Theme
		suffix string
		mode   recolor.Mode
	}{
		{render.Light, "_white", recolor.Lighten},
		{render.Dark, "_dark", recolor.Darken},
	} {
		cfg := render.Config{
			Width:     opts.Width,
			Height:    opts.Height,
			Theme:     variant.theme,
			SeqName:   opts.Name,
			XTickStep: opts.XTickStep,
			StatLines: statLines,
		}
		log.Info().Str("step", "render").Str("variant", variant.suffix).Msg("rendering overlay")
		raster, err := render.RenderOverlay(frame, tmSpans, cfg)
		if err != nil {
			return err
		}
		if err := raster.SavePNG(prefix + variant.suffix + ".png"); err != nil {
			return err
		}
		log.Info().Str("step", "recolor").Str("variant", variant.suffix).Msg("applying threshold recoloring")
		recolor.Apply(raster.Img, ThresholdEntries(raster, opts.Threshold, opts.Blend, opts.Tolerance, variant.mode))
		if err := raster.SavePNG(prefix + variant.suffix + "_threshold.png"); err != nil {
			return err
		}
	}

	log.Info().Str("step", "render").Msg("rendering disorder profile")
	img, err := render.RenderDisorderChart(frame, render.Config{Width: opts.Width, Height: opts.Height, SeqName: opts.Name, XTickStep: opts.XTickStep})
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode disorder chart: %w", err)
	}
	if err := os.WriteFile(prefix+"_disorder_plot.png", buf.Bytes(), 0o644); err != nil {
		return err
	}

	log.Info().Str("step", "done").Str("out", opts.OutDir).Msg("pipeline complete")
	return nil
}

// ThresholdEntries builds the four standard recoloring passes for an
// overlay raster: disorder (red) and coiled-coil (blue) on each panel,
// top panel first.
func ThresholdEntries(r *render.Raster, threshold, blend, tolerance float64, mode recolor.Mode) []recolor.Entry {
	red := recolor.ColorTarget{R: 1, Tolerance: tolerance}
	blue := recolor.ColorTarget{B: 1, Tolerance: tolerance}
	return []recolor.Entry{
		{Axis: r.TopDisorder, Color: red, Threshold: threshold, Blend: blend, Mode: mode},
		{Axis: r.TopCC, Color: blue, Threshold: threshold, Blend: blend, Mode: mode},
		{Axis: r.BottomDisorder, Color: red, Threshold: threshold, Blend: blend, Mode: mode},
		{Axis: r.BottomCC, Color: blue, Threshold: threshold, Blend: blend, Mode: mode},
	}
}

func writeSummary(path string, frame *series.AlignedFrame, table *regions.Table, stats series.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	idrs := table.OfKind(regions.KindIDR)
	idrResidues := 0
	for _, iv := range idrs {
		idrResidues += iv.Length()
	}

	fmt.Fprintf(f, "%s Disorder Analysis Summary\n", frame.Name)
	fmt.Fprintln(f, "==================================================")
	fmt.Fprintf(f, "Sequence length: %d residues\n", frame.Len())
	fmt.Fprintf(f, "Mean disorder score: %.4f\n", stats.Mean)
	fmt.Fprintf(f, "Max disorder score: %.4f\n", stats.Max)
	fmt.Fprintf(f, "Min disorder score: %.4f\n", stats.Min)
	fmt.Fprintf(f, "Number of IDRs: %d\n", len(idrs))
	fmt.Fprintf(f, "IDR coverage: %.2f%%\n", regions.Coverage(table.IDRFlags))
	fmt.Fprintf(f, "Total IDR residues: %d\n", idrResidues)
	if len(idrs) > 0 {
		fmt.Fprintln(f, "IDR boundaries:")
		for i, iv := range idrs {
			fmt.Fprintf(f, "  IDR %d: %d-%d (length %d)\n", i+1, iv.Start, iv.End, iv.Length())
		}
	}
	return nil
}
