package frame

import (
	"math"
	"sort"
)

// Min returns the smallest value; NaN for empty input.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// Max returns the largest value; NaN for empty input.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// Mean returns the arithmetic mean; NaN for empty input.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s / float64(len(xs))
}

// Median returns the middle value, averaging the two central values for
// even-length input; NaN for empty input.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// RollingMean computes a centered rolling mean over the series. The result
// has the same length as the input; positions where fewer than minPeriods
// values fall inside the window are NaN. The window must be odd so the
// center is well defined.
func RollingMean(series []float64, window, minPeriods int) []float64 {
	out := make([]float64, len(series))
	half := (window - 1) / 2
	for i := range series {
		lo := i - half
		hi := i + half
		if lo < 0 {
			lo = 0
		}
		if hi > len(series)-1 {
			hi = len(series) - 1
		}
		sum, n := 0.0, 0
		for j := lo; j <= hi; j++ {
			if math.IsNaN(series[j]) {
				continue
			}
			sum += series[j]
			n++
		}
		if n < minPeriods {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(n)
		}
	}
	return out
}
