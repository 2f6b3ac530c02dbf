package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySeries is returned when a report parses without a single usable
// data line. Individually malformed lines are skipped and logged; an empty
// result is fatal because every downstream stage needs a non-empty series.
var ErrEmptySeries = errors.New("report: no usable data lines")

// SequenceNotFoundError is returned when a multi-sequence coiled-coil report
// does not contain the requested sequence. It aborts processing for that
// sequence only; callers running batches continue with the next one.
type SequenceNotFoundError struct {
	Name      string
	Available []string
}

func (e *SequenceNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("report: sequence %q not found (report contains no sequences)", e.Name)
	}
	return fmt.Sprintf("report: sequence %q not found (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// MissingFileError is returned when a required input file does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("report: required input file missing: %s", e.Path)
}
