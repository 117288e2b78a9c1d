// Package stats summarises benchmark samples.
package stats

import (
	"errors"
	"math"
	"slices"
	"time"

	"golang.org/x/exp/constraints"
)

// ErrNoSamples is returned when a summary is requested for an empty sample.
var ErrNoSamples = errors.New("stats: no samples")

// Summary describes one adapter's timings for one benchmark. Times are in
// seconds.
type Summary struct {
	Mean       float64 `json:"mean" toml:"mean"`
	Median     float64 `json:"median" toml:"median"`
	Std        float64 `json:"std" toml:"std"`
	Min        float64 `json:"min" toml:"min"`
	Max        float64 `json:"max" toml:"max"`
	Throughput float64 `json:"throughput" toml:"throughput"`
	Samples    int     `json:"samples" toml:"samples"`
}

// Summarize computes the population statistics of xs. Throughput is calls
// per second derived from the mean.
func Summarize[T constraints.Integer | constraints.Float](xs []T) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrNoSamples
	}
	vals := make([]float64, len(xs))
	for i, x := range xs {
		vals[i] = float64(x)
	}
	slices.Sort(vals)

	mean := Mean(vals)
	var sq float64
	for _, v := range vals {
		d := v - mean
		sq += d * d
	}

	s := Summary{
		Mean:    mean,
		Median:  medianSorted(vals),
		Std:     math.Sqrt(sq / float64(len(vals))),
		Min:     vals[0],
		Max:     vals[len(vals)-1],
		Samples: len(vals),
	}
	if mean > 0 {
		s.Throughput = 1 / mean
	}
	return s, nil
}

// Durations summarises timings given as time.Duration values.
func Durations(ds []time.Duration) (Summary, error) {
	secs := make([]float64, len(ds))
	for i, d := range ds {
		secs[i] = d.Seconds()
	}
	return Summarize(secs)
}

// Mean returns the arithmetic mean of xs, 0 for an empty slice.
func Mean[T constraints.Integer | constraints.Float](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs))
}

// Median returns the median of xs without modifying it, 0 for an empty
// slice.
func Median[T constraints.Integer | constraints.Float](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	vals := make([]float64, len(xs))
	for i, x := range xs {
		vals[i] = float64(x)
	}
	slices.Sort(vals)
	return medianSorted(vals)
}

func medianSorted(vals []float64) float64 {
	n := len(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}

// Speedup returns second.Mean / first.Mean: how many times faster the first
// adapter is than the second. It reports false when the first mean is not
// positive.
func Speedup(first, second Summary) (float64, bool) {
	if first.Mean <= 0 || first.Samples == 0 || second.Samples == 0 {
		return 0, false
	}
	return second.Mean / first.Mean, true
}

// SampleStd returns the sample standard deviation (n-1 denominator) of xs,
// 0 when there are fewer than two values.
func SampleStd[T constraints.Integer | constraints.Float](xs []T) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	var sq float64
	for _, x := range xs {
		d := float64(x) - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(xs)-1))
}
