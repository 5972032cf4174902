package analytics

import "errors"

// ErrInsufficientData is returned when a series is too short to extrapolate.
var ErrInsufficientData = errors.New("insufficient data: need at least 2 points")

// PredictNext extrapolates the next value of an ordered-by-time series
// using the endpoint slope: trend = (last-first)/(n-1), clamped at 0.
// This is deliberately not a least-squares fit; the dashboard's numbers
// are defined by this two-point rule.
func PredictNext(series []float64) (float64, error) {
	if len(series) < 2 {
		return 0, ErrInsufficientData
	}

	first := series[0]
	last := series[len(series)-1]
	trend := (last - first) / float64(len(series)-1)

	prediction := last + trend
	if prediction < 0 {
		prediction = 0
	}
	return prediction, nil
}

// DropZeros removes zero-valued entries from a series. Position series are
// filtered this way before extrapolation: a month with no valid position
// data is dropped rather than treated as rank 0.
func DropZeros(series []float64) []float64 {
	out := make([]float64, 0, len(series))
	for _, v := range series {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}
