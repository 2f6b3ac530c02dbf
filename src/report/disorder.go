package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ParseDisorderCSV reads a disorder-score CSV with at least the columns
// Position, Residue and Disorder_Score. Scores at or below 1.0 are treated
// as fractions and scaled to percent; larger values are already percent.
// Malformed rows are skipped and logged; an empty result is ErrEmptySeries.
func ParseDisorderCSV(r io.Reader, log zerolog.Logger) ([]DisorderRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptySeries
	}
	if err != nil {
		return nil, fmt.Errorf("read disorder CSV header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	posIdx, okPos := col["Position"]
	resIdx, okRes := col["Residue"]
	scoreIdx, okScore := col["Disorder_Score"]
	if !okPos || !okScore {
		return nil, fmt.Errorf("disorder CSV missing Position/Disorder_Score columns (header: %s)", strings.Join(header, ","))
	}

	var rows []DisorderRow
	lineNo := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			log.Warn().Int("line", lineNo).Err(err).Msg("skipping malformed disorder CSV row")
			continue
		}
		if posIdx >= len(rec) || scoreIdx >= len(rec) {
			log.Warn().Int("line", lineNo).Msg("skipping short disorder CSV row")
			continue
		}
		pos, err := strconv.Atoi(strings.TrimSpace(rec[posIdx]))
		if err != nil {
			log.Warn().Int("line", lineNo).Str("value", rec[posIdx]).Msg("skipping disorder row with bad position")
			continue
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(rec[scoreIdx]), 64)
		if err != nil {
			log.Warn().Int("line", lineNo).Str("value", rec[scoreIdx]).Msg("skipping disorder row with bad score")
			continue
		}
		if score <= 1.0 {
			score *= 100
		}
		residue := ""
		if okRes && resIdx < len(rec) {
			residue = strings.TrimSpace(rec[resIdx])
		}
		rows = append(rows, DisorderRow{Position: pos, Residue: residue, Score: score})
	}
	if len(rows) == 0 {
		return nil, ErrEmptySeries
	}
	return rows, nil
}

// LoadDisorderCSV opens and parses a disorder-score CSV. The file is
// required; a missing path is a MissingFileError.
func LoadDisorderCSV(path string, log zerolog.Logger) ([]DisorderRow, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, err
	}
	defer f.Close()
	return ParseDisorderCSV(f, log)
}
