package report

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// tmFeatureLabels are the feature-type column values that select a
// transmembrane helix row in the span file.
var tmFeatureLabels = map[string]bool{
	"TMhelix":  true,
	"TMH":      true,
	"TM":       true,
	"TRANSMEM": true,
}

// ParseTMSpans reads transmembrane helix spans from a tab-separated,
// GFF-like file. Two positional layouts are recognized: the 5-column form
// (seqid, source, feature, start, end) and the 4-column form
// (seqid, feature, start, end). Comment and blank lines are skipped.
func ParseTMSpans(r io.Reader, log zerolog.Logger) ([]Span, error) {
	var spans []Span
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "\t")
		var feature, start, end string
		switch {
		case len(parts) >= 5:
			feature, start, end = parts[2], parts[3], parts[4]
		case len(parts) >= 4:
			feature, start, end = parts[1], parts[2], parts[3]
		default:
			continue
		}
		if !tmFeatureLabels[feature] {
			continue
		}
		s, err := strconv.Atoi(strings.TrimSpace(start))
		if err != nil {
			log.Warn().Int("line", lineNo).Str("content", line).Msg("skipping TM span with bad start")
			continue
		}
		e, err := strconv.Atoi(strings.TrimSpace(end))
		if err != nil {
			log.Warn().Int("line", lineNo).Str("content", line).Msg("skipping TM span with bad end")
			continue
		}
		spans = append(spans, Span{Start: s, End: e})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return spans, nil
}

// LoadTMSpans opens and parses an optional transmembrane span file.
// A missing file is not an error; it degrades to "no spans".
func LoadTMSpans(path string, log zerolog.Logger) ([]Span, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", path).Msg("TM span file not found, continuing without spans")
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return ParseTMSpans(f, log)
}
