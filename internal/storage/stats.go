package storage

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the score distribution of a set of runs.
type Summary struct {
	Count  int
	Best   int
	Mean   float64
	StdDev float64
	Median float64
	Dodged int
}

// Summarize computes score statistics over runs.
func Summarize(runs []Run) Summary {
	sum := Summary{Count: len(runs)}
	if len(runs) == 0 {
		return sum
	}

	scores := make([]float64, len(runs))
	for i, r := range runs {
		scores[i] = float64(r.Score)
		sum.Best = max(sum.Best, r.Score)
		sum.Dodged += r.Dodged
	}
	sort.Float64s(scores)

	sum.Mean = stat.Mean(scores, nil)
	if len(scores) > 1 {
		sum.StdDev = stat.StdDev(scores, nil)
	}
	sum.Median = median(scores)
	return sum
}

// median expects sorted input. Even counts average the two middle values.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return stat.Mean(sorted[n/2-1:n/2+1], nil)
}
