// ccdregions derives IDR/CC/TM region tables from an existing plot-data
// CSV without re-running the parsers or the renderer. Useful when the
// predictor outputs are gone but the exported plot data survived.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/tshimizu/CoilDisorderAnalyzer/src/plotdata"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/regions"
	"github.com/tshimizu/CoilDisorderAnalyzer/src/report"
)

func main() {
	var (
		plotCSV   string
		gffPath   string
		outPrefix string
		threshold float64
		verbose   bool
	)
	flag.StringVar(&plotCSV, "plot-csv", "", "Plot-data CSV (required)")
	flag.StringVar(&gffPath, "gff", "", "Optional transmembrane span file")
	flag.StringVar(&outPrefix, "out-prefix", "", "Output prefix (required)")
	flag.Float64Var(&threshold, "threshold", 50, "Region threshold in percent")
	flag.BoolVar(&verbose, "verbose", false, "Verbose logging")
	flag.Parse()

	if plotCSV == "" || outPrefix == "" {
		fmt.Fprintln(os.Stderr, "usage: -plot-csv and -out-prefix are required")
		flag.Usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	frame, err := plotdata.ReadFile(plotCSV, outPrefix)
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

	table := regions.Build(frame, tmSpans, threshold)
	posPath := outPrefix + "_regions_positions.csv"
	ivPath := outPrefix + "_regions_intervals.csv"
	if err := regions.WritePositionsFile(posPath, frame, table); err != nil {
		log.Error().Err(err).Msg("write positions table")
		os.Exit(1)
	}
	if err := regions.WriteIntervalsFile(ivPath, table); err != nil {
		log.Error().Err(err).Msg("write intervals table")
		os.Exit(1)
	}
	log.Info().Str("positions", posPath).Str("intervals", ivPath).Msg("region tables written")
}
