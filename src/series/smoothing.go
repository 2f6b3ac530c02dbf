package series

import "github.com/montanaflynn/stats"

// MovingAverage computes a centered moving average with edge-replicated
// padding. The output always has the same length and index alignment as
// the input, so smoothed and original series stay comparable
// position-for-position.
//
// The window must be odd and positive. When the input is shorter than the
// window, every output element is the plain mean of the whole input.
// Otherwise the N-w+1 valid window means are computed and the first and
// last of them are replicated (w-1)/2 times at each edge.
func MovingAverage(xs []float64, window int) ([]float64, error) {
	if window <= 0 || window%2 == 0 {
		return nil, &InvalidWindowError{Window: window}
	}
	if len(xs) == 0 {
		return nil, nil
	}
	if len(xs) < window {
		mean, err := stats.Mean(xs)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(xs))
		for i := range out {
			out[i] = mean
		}
		return out, nil
	}

	half := window / 2
	valid := make([]float64, 0, len(xs)-window+1)
	for i := 0; i+window <= len(xs); i++ {
		mean, err := stats.Mean(xs[i : i+window])
		if err != nil {
			return nil, err
		}
		valid = append(valid, mean)
	}

	out := make([]float64, 0, len(xs))
	for i := 0; i < half; i++ {
		out = append(out, valid[0])
	}
	out = append(out, valid...)
	for i := 0; i < half; i++ {
		out = append(out, valid[len(valid)-1])
	}
	return out, nil
}
