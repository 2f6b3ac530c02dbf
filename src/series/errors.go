package series

import "fmt"

// InvalidWindowError reports a smoothing window that is not odd and
// positive. It is caller-supplied misconfiguration and always fatal.
type InvalidWindowError struct {
	Window int
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("series: moving-average window must be odd and positive, got %d", e.Window)
}

// PositionOutOfRangeError reports a sparse-signal position outside the
// [1, N] range of the dense track. It signals upstream data corruption and
// is never clamped or dropped.
type PositionOutOfRangeError struct {
	Position int
	Length   int
}

func (e *PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("series: coiled-coil position %d outside sequence range [1, %d]", e.Position, e.Length)
}
