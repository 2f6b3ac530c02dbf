package series

import "github.com/montanaflynn/stats"

// Summary holds descriptive statistics for one track.
type Summary struct {
	Mean float64
	Min  float64
	Max  float64
}

// Summarize computes mean, min and max of a track.
func Summarize(xs []float64) (Summary, error) {
	mean, err := stats.Mean(xs)
	if err != nil {
		return Summary{}, err
	}
	min, err := stats.Min(xs)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(xs)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Mean: mean, Min: min, Max: max}, nil
}
