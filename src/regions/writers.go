package regions

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tshimizu/CoilDisorderAnalyzer/src/series"
)

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// WritePositions writes the per-residue table: scores, threshold flags and
// TM membership for every position. Scores keep the original two-decimal
// formatting of the region tables (the plot-data CSV keeps four).
func WritePositions(w io.Writer, frame *series.AlignedFrame, t *Table) error {
	cw := csv.NewWriter(w)
	thr := strconv.FormatFloat(t.Threshold, 'f', -1, 64)
	header := []string{
		"Position",
		"Residue",
		"Disorder_Score_Original",
		"Disorder_Score_3res_MA",
		"In_IDR_>=" + thr,
		"CC_Probability_Original",
		"CC_Probability_3res_MA",
		"In_CC_>=" + thr,
		"Heptad_Phase",
		"In_TM",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, p := range frame.Points {
		rec := []string{
			strconv.Itoa(p.Position),
			p.Residue,
			fmt.Sprintf("%.2f", p.DisorderOriginal),
			fmt.Sprintf("%.2f", p.DisorderMA),
			yesNo(t.IDRFlags[i]),
			fmt.Sprintf("%.2f", p.CCOriginal),
			fmt.Sprintf("%.2f", p.CCMA),
			yesNo(t.CCFlags[i]),
			string(p.Heptad),
			yesNo(t.TMFlags[i]),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteIntervals writes the flat interval table: Type, Start, End, Length.
func WriteIntervals(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Type", "Start", "End", "Length"}); err != nil {
		return err
	}
	for _, iv := range t.Intervals {
		rec := []string{
			string(iv.Kind),
			strconv.Itoa(iv.Start),
			strconv.Itoa(iv.End),
			strconv.Itoa(iv.Length()),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePositionsFile writes the per-residue table to a file path.
func WritePositionsFile(path string, frame *series.AlignedFrame, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WritePositions(f, frame, t)
}

// WriteIntervalsFile writes the interval table to a file path.
func WriteIntervalsFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteIntervals(f, t)
}
