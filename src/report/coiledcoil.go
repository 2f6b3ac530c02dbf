package report

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ccDataLine matches "position residue probability heptad", the data-line
// format of the coiled-coil predictor's per-residue probability report.
var ccDataLine = regexp.MustCompile(`^\s*(\d+)\s+([A-Z*])\s+([\d.]+)\s+([a-g])`)

// ParseCoiledCoil reads a multi-sequence coiled-coil probability report.
// Header lines start with '>' and name the sequence that scopes the data
// lines that follow; anything after "##" in a header is free text and is
// dropped. Lines that match neither form are skipped and logged.
func ParseCoiledCoil(r io.Reader, log zerolog.Logger) (map[string][]ResidueProb, error) {
	results := make(map[string][]ResidueProb)
	current := ""

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			name := strings.TrimSpace(line[1:])
			if idx := strings.Index(name, "##"); idx >= 0 {
				name = strings.TrimSpace(name[:idx])
			}
			current = name
			if _, ok := results[current]; !ok {
				results[current] = nil
			}
			continue
		}
		m := ccDataLine.FindStringSubmatch(line)
		if m == nil || current == "" {
			log.Warn().Int("line", lineNo).Str("content", line).Msg("skipping malformed coiled-coil report line")
			continue
		}
		pos, err := strconv.Atoi(m[1])
		if err != nil {
			log.Warn().Int("line", lineNo).Str("content", line).Msg("skipping coiled-coil line with bad position")
			continue
		}
		prob, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			log.Warn().Int("line", lineNo).Str("content", line).Msg("skipping coiled-coil line with bad probability")
			continue
		}
		results[current] = append(results[current], ResidueProb{
			Position: pos,
			Residue:  m[2][0],
			Prob:     prob,
			Heptad:   m[4][0],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// LoadCoiledCoil opens and parses a coiled-coil report file. The file is
// required; a missing path is a MissingFileError.
func LoadCoiledCoil(path string, log zerolog.Logger) (map[string][]ResidueProb, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, err
	}
	defer f.Close()
	return ParseCoiledCoil(f, log)
}

// SelectSequence picks one sequence's series out of a parsed report.
// An unknown name yields SequenceNotFoundError; a known name with zero data
// lines yields ErrEmptySeries.
func SelectSequence(parsed map[string][]ResidueProb, name string) ([]ResidueProb, error) {
	series, ok := parsed[name]
	if !ok {
		avail := make([]string, 0, len(parsed))
		for k := range parsed {
			avail = append(avail, k)
		}
		sort.Strings(avail)
		return nil, &SequenceNotFoundError{Name: name, Available: avail}
	}
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	return series, nil
}
