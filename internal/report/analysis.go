// Package report turns benchmark results into terminal tables, speedup
// charts and a markdown report.
package report

import (
	"slices"

	"github.com/hsiuhsiu/ffibench-go/internal/harness"
	"github.com/hsiuhsiu/ffibench-go/internal/stats"
)

// Finding thresholds on a category's mean speedup.
const (
	ExcelsAbove = 1.5
	SimilarLow  = 0.8
	SimilarHigh = 1.2
)

// SpeedupStats summarises a set of speedups.
type SpeedupStats struct {
	Mean   float64
	Median float64
	Std    float64
	Min    float64
	Max    float64
	Count  int
}

// CategoryStats is SpeedupStats for one category.
type CategoryStats struct {
	Category string
	SpeedupStats
}

// Analysis is the derived view of a Results document.
type Analysis struct {
	Baseline  string
	Candidate string

	Overall SpeedupStats
	// Best and Worst name the benchmarks with the highest and lowest speedup.
	Best, Worst string

	// Categories in order of first appearance. Categories with no speedup
	// are left out.
	Categories []CategoryStats
	Excels     []CategoryStats
	Similar    []CategoryStats
}

func speedupStats(xs []float64) SpeedupStats {
	s := SpeedupStats{
		Mean:   stats.Mean(xs),
		Median: stats.Median(xs),
		Std:    stats.SampleStd(xs),
		Count:  len(xs),
	}
	if len(xs) > 0 {
		s.Min = slices.Min(xs)
		s.Max = slices.Max(xs)
	}
	return s
}

// Analyze computes overall and per-category speedup statistics.
func Analyze(res *harness.Results) Analysis {
	an := Analysis{
		Baseline:  res.Metadata.Baseline(),
		Candidate: res.Metadata.Candidate(),
	}

	var all []float64
	var order []string
	byCategory := map[string][]float64{}
	for _, r := range res.Results {
		if !r.HasSpeedup() {
			continue
		}
		if len(all) == 0 || r.Speedup > an.Overall.Max {
			an.Overall.Max, an.Best = r.Speedup, r.Name
		}
		if len(all) == 0 || r.Speedup < an.Overall.Min {
			an.Overall.Min, an.Worst = r.Speedup, r.Name
		}
		all = append(all, r.Speedup)
		if _, ok := byCategory[r.Category]; !ok {
			order = append(order, r.Category)
		}
		byCategory[r.Category] = append(byCategory[r.Category], r.Speedup)
	}
	an.Overall = speedupStats(all)

	for _, c := range order {
		cs := CategoryStats{Category: c, SpeedupStats: speedupStats(byCategory[c])}
		an.Categories = append(an.Categories, cs)
		switch {
		case cs.Mean > ExcelsAbove:
			an.Excels = append(an.Excels, cs)
		case cs.Mean >= SimilarLow && cs.Mean <= SimilarHigh:
			an.Similar = append(an.Similar, cs)
		}
	}
	return an
}

// groups returns the results grouped by category in order of first
// appearance.
func groups(res *harness.Results) ([]string, map[string][]harness.Result) {
	var order []string
	by := map[string][]harness.Result{}
	for _, r := range res.Results {
		if _, ok := by[r.Category]; !ok {
			order = append(order, r.Category)
		}
		by[r.Category] = append(by[r.Category], r)
	}
	return order, by
}
