// ccdreplot re-renders the two-panel comparison chart (and its
// threshold-recolored variant) from an existing plot-data CSV.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/tshimizu/CoilDisorderAnalyzer/src/pipeline"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/plotdata"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/recolor"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/render"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/report"
)

func main() {
	var (
		plotCSV   string
		name      string
		gffPath   string
		outPrefix string
		dark      bool
		xtickStep int
		threshold float64
		blend     float64
		tolerance float64
		verbose   bool
	)
	flag.StringVar(&plotCSV, "plot-csv", "", "Plot-data CSV (required)")
	flag.StringVar(&name, "name", "", "Sequence name for titles (required)")
	flag.StringVar(&gffPath, "gff", "", "Optional transmembrane span file")
	flag.StringVar(&outPrefix, "out-prefix", "", "Output prefix (required)")
	flag.BoolVar(&dark, "dark", false, "Render the dark theme (darken below threshold)")
	flag.IntVar(&xtickStep, "xtick-step", 200, "X tick interval in residues")
	flag.Float64Var(&threshold, "threshold", 50, "Recolor threshold in percent")
	flag.Float64Var(&blend, "blend", recolor.DefaultBlend, "Recolor blend ratio (0..1)")
	flag.Float64Var(&tolerance, "tolerance", recolor.DefaultTolerance, "Recolor color-match tolerance")
	flag.BoolVar(&verbose, "verbose", false, "Verbose logging")
	flag.Parse()

	if plotCSV == "" || name == "" || outPrefix == "" {
		fmt.Fprintln(os.Stderr, "usage: -plot-csv, -name and -out-prefix are required")
		flag.Usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	frame, err := plotdata.ReadFile(plotCSV, name)
	if err != nil {
		log.Error().Err(err).Msg("read plot data")
		os.Exit(1)
	}
	var tmSpans []report.Span
	if gffPath != "" {
		tmSpans, err = report.LoadTMSpans(gffPath, log)
		if err != nil {
			log.Error().Err(err).Msg("read TM spans")
			os.Exit(1)
		}
	}

	theme, mode, suffix := render.Light, recolor.Lighten, "_white"
	if dark {
		theme, mode, suffix = render.Dark, recolor.Darken, "_dark"
	}
	cfg := render.Config{Theme: theme, SeqName: name, XTickStep: xtickStep}
	raster, err := render.RenderOverlay(frame, tmSpans, cfg)
	if err != nil {
		log.Error().Err(err).Msg("render overlay")
		os.Exit(1)
	}
	basePath := outPrefix + suffix + ".png"
	if err := raster.SavePNG(basePath); err != nil {
		log.Error().Err(err).Msg("save base chart")
		os.Exit(1)
	}
	recolor.Apply(raster.Img, pipeline.ThresholdEntries(raster, threshold, blend, tolerance, mode))
	threshPath := outPrefix + suffix + "_threshold.png"
	if err := raster.SavePNG(threshPath); err != nil {
		log.Error().Err(err).Msg("save threshold chart")
		os.Exit(1)
	}
	log.Info().Str("base", basePath).Str("threshold", threshPath).Msg("charts written")
}
