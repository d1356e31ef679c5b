package batch

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a batch run. Cost statistics cover found paths only.
type Summary struct {
	Runs           int
	Found          int
	MeanCost       float64
	StdDevCost     float64
	MeanExpanded   float64
	StdDevExpanded float64
}

// Summarize computes the summary of outcomes.
func Summarize(outcomes []Outcome) Summary {
	summary := Summary{Runs: len(outcomes)}
	costs := make([]float64, 0, len(outcomes))
	expanded := make([]float64, 0, len(outcomes))
	for _, o := range outcomes {
		expanded = append(expanded, float64(o.Result.ExpandedNodes))
		if o.Result.Found {
			summary.Found++
			costs = append(costs, o.Result.TotalCost)
		}
	}
	summary.MeanCost, summary.StdDevCost = meanStdDev(costs)
	summary.MeanExpanded, summary.StdDevExpanded = meanStdDev(expanded)
	return summary
}

// meanStdDev is stat.MeanStdDev with a zero deviation for fewer than two samples.
func meanStdDev(x []float64) (mean, std float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}

func (s Summary) String() string {
	ratio := 0.0
	if s.Runs > 0 {
		ratio = float64(s.Found) / float64(s.Runs)
	}
	return fmt.Sprintf(
		"runs=%d found=%d (%.1f%%) cost=%.3f±%.3f expanded=%.1f±%.1f",
		s.Runs, s.Found, 100*ratio,
		s.MeanCost, s.StdDevCost,
		s.MeanExpanded, s.StdDevExpanded,
	)
}
