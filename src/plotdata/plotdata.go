// Package plotdata writes and reads the aligned plot-data CSV: one row per
// position with the original and smoothed values of both tracks. The file
// is the hand-off between the pipeline and the replot/region tools.
package plotdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tshimizu/CoilDisorderAnalyzer/src/series"
)

// Columns is the fixed header of a plot-data CSV.
var Columns = []string{
	"Position",
	"Residue",
	"Disorder_Score_Original",
	"Disorder_Score_3res_MA",
	"CC_Probability_Original",
	"CC_Probability_3res_MA",
	"Heptad_Phase",
}

// Write emits the aligned frame as CSV with numeric fields to four decimal
// places.
func Write(w io.Writer, frame *series.AlignedFrame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, p := range frame.Points {
		rec := []string{
			strconv.Itoa(p.Position),
			p.Residue,
			fmt.Sprintf("%.4f", p.DisorderOriginal),
			fmt.Sprintf("%.4f", p.DisorderMA),
			fmt.Sprintf("%.4f", p.CCOriginal),
			fmt.Sprintf("%.4f", p.CCMA),
			string(p.Heptad),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the plot-data CSV to a path.
func WriteFile(path string, frame *series.AlignedFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, frame)
}

// Read parses a plot-data CSV back into an aligned frame. Score columns on
// the 0-1 scale are rescaled to percent, so CSVs produced by older exports
// load the same as current ones. Positions without coiled-coil data carry
// the heptad sentinel and a filled source.
func Read(r io.Reader, name string) (*series.AlignedFrame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read plot-data header: %w", err)
	}
	col := map[string]int{}
	for i, c := range header {
		col[strings.TrimSpace(c)] = i
	}
	for _, want := range []string{"Position", "Disorder_Score_Original", "Disorder_Score_3res_MA", "CC_Probability_Original", "CC_Probability_3res_MA"} {
		if _, ok := col[want]; !ok {
			return nil, fmt.Errorf("plot-data CSV missing column %s", want)
		}
	}

	frame := &series.AlignedFrame{Name: name}
	rowNo := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		rowNo++
		if err != nil {
			return nil, fmt.Errorf("plot-data row %d: %w", rowNo, err)
		}
		get := func(c string) string {
			i, ok := col[c]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		pos, err := strconv.Atoi(get("Position"))
		if err != nil {
			return nil, fmt.Errorf("plot-data row %d: bad position: %w", rowNo, err)
		}
		p := series.Point{Position: pos, Residue: get("Residue"), Heptad: series.HeptadNone, Source: series.SourceFilled}
		if h := get("Heptad_Phase"); h != "" {
			p.Heptad = h[0]
		}
		if p.DisorderOriginal, err = parseScore(get("Disorder_Score_Original")); err != nil {
			return nil, fmt.Errorf("plot-data row %d: %w", rowNo, err)
		}
		if p.DisorderMA, err = parseScore(get("Disorder_Score_3res_MA")); err != nil {
			return nil, fmt.Errorf("plot-data row %d: %w", rowNo, err)
		}
		if p.CCOriginal, err = parseScore(get("CC_Probability_Original")); err != nil {
			return nil, fmt.Errorf("plot-data row %d: %w", rowNo, err)
		}
		if p.CCMA, err = parseScore(get("CC_Probability_3res_MA")); err != nil {
			return nil, fmt.Errorf("plot-data row %d: %w", rowNo, err)
		}
		if p.Heptad != series.HeptadNone {
			p.Source = series.SourceObserved
		}
		frame.Points = append(frame.Points, p)
	}
	if frame.Len() == 0 {
		return nil, fmt.Errorf("plot-data CSV has no rows")
	}
	return frame, nil
}

// ReadFile reads a plot-data CSV from a path.
func ReadFile(path, name string) (*series.AlignedFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, name)
}

func parseScore(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad score %q: %w", s, err)
	}
	if v <= 1.0 {
		v *= 100
	}
	return v, nil
}
