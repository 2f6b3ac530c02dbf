// CoilDisorderAnalyzer main entrypoint.
//
// Runs the whole analysis chain for one sequence: parse the coiled-coil
// probability report and the disorder-score CSV, align both tracks onto the
// 1..N position axis, smooth them with a centered moving average, derive
// IDR/CC/TM region tables, render the two-panel comparison charts (light
// and dark) and write the threshold-recolored variants next to them.
//
// Design notes:
//   - One process handles one sequence; batch callers invoke once per
//     sequence and may do so in parallel (no state is shared between runs).
//   - All rendering is headless; outputs are PNG and CSV files only.
//   - The transmembrane span file is optional and degrades to "no spans".
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/tshimizu/CoilDisorderAnalyzer/src/pipeline"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/report"
)

func main() {
	var opts pipeline.Options
	var verbose bool
	flag.StringVar(&opts.Name, "name", "", "Sequence name (selects the report entry, prefixes outputs)")
	flag.StringVar(&opts.CoiledCoilPath, "cc", "", "Path to the coiled-coil probability report")
	flag.StringVar(&opts.DisorderCSVPath, "disorder", "", "Path to the disorder-score CSV")
	flag.StringVar(&opts.TMGFFPath, "gff", "", "Optional transmembrane span file (GFF-like)")
	flag.StringVar(&opts.OutDir, "out", ".", "Output directory")
	flag.IntVar(&opts.Window, "window", 3, "Moving-average window (odd)")
	flag.Float64Var(&opts.Threshold, "threshold", 50, "Region threshold in percent")
	flag.IntVar(&opts.XTickStep, "xtick-step", 200, "X tick interval in residues")
	flag.IntVar(&opts.Width, "width", 1600, "Chart width in pixels")
	flag.IntVar(&opts.Height, "height", 1000, "Chart height in pixels")
	flag.Float64Var(&opts.Blend, "blend", 0.2, "Recolor blend ratio (0..1)")
	flag.Float64Var(&opts.Tolerance, "tolerance", 230, "Recolor color-match tolerance (0-255 RGB distance)")
	flag.BoolVar(&verbose, "verbose", false, "Verbose logging")
	flag.Parse()

	if opts.Name == "" || opts.CoiledCoilPath == "" || opts.DisorderCSVPath == "" {
		fmt.Fprintln(os.Stderr, "usage: -name, -cc and -disorder are required")
		flag.Usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	opts.Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if err := pipeline.Run(opts); err != nil {
		var notFound *report.SequenceNotFoundError
		if errors.As(err, &notFound) {
			// Batch wrappers treat this as per-sequence, not fatal for the
			// whole input set; signal it with a distinct exit code.
			opts.Log.Error().Err(err).Msg("sequence not in report")
			os.Exit(3)
		}
		opts.Log.Error().Err(err).Msg("pipeline failed")
		os.Exit(1)
	}
}
