package allocation

import (
	"github.com/valuin/domikado/pkg/indicator"
	"github.com/valuin/domikado/pkg/province"
)

// Result is the complete output of one calculator evaluation.
type Result struct {
	Province              string                             `json:"province"`
	Selected              []indicator.Kind                   `json:"selected"`
	Scores                map[indicator.Kind]indicator.Score `json:"calculated_scores"`
	CombinedGapScore      float64                            `json:"combined_gap_score"`
	Allocation            float64                            `json:"allocation"`
	MaxBudgetPerParameter float64                            `json:"max_budget_per_parameter"`
	Recommendations       []Recommendation                   `json:"recommendations"`
	Severity              Severity                           `json:"severity"`
}

// Evaluate scores the selected indicators, derives the combined gap score
// and recommended allocation, and generates per-parameter recommendations.
// Inputs are not modified and the result is recomputed from scratch on
// every call. An empty selection yields a zero result.
func Evaluate(s *province.Statistics, selected []indicator.Kind, p Policy) *Result {
	kinds := dedupe(selected)

	r := &Result{
		Province:        s.Name(),
		Selected:        kinds,
		Scores:          make(map[indicator.Kind]indicator.Score, len(kinds)),
		Recommendations: []Recommendation{},
	}
	if len(kinds) == 0 {
		r.Severity = ClassifySeverity(0)
		return r
	}

	weight := 1 / float64(len(kinds))
	totalGap := 0.0
	for _, k := range kinds {
		sc := indicator.New(k, s, weight)
		r.Scores[k] = sc
		totalGap += sc.Gap
	}

	r.CombinedGapScore = CombinedGapScore(totalGap, len(kinds))
	r.Allocation = AllocationFor(r.CombinedGapScore, p)
	r.MaxBudgetPerParameter = r.Allocation * p.MaxAllocationShare
	r.Recommendations = Recommend(s, r.Scores, r.Allocation, p)
	r.Severity = ClassifySeverity(r.CombinedGapScore)

	return r
}

// CombinedGapScore averages the gaps and scales them to 0-100.
func CombinedGapScore(totalGap float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return clamp(totalGap/float64(n)*100, 0, 100)
}

// AllocationFor maps a gap score linearly onto the reference budget.
func AllocationFor(gapScore float64, p Policy) float64 {
	if p.AllocationFactor <= 0 {
		return 0
	}
	return gapScore / p.AllocationFactor * p.TotalBudget
}

// dedupe drops unknown and repeated kinds, keeping first-seen order.
func dedupe(kinds []indicator.Kind) []indicator.Kind {
	seen := make(map[indicator.Kind]bool, len(kinds))
	out := make([]indicator.Kind, 0, len(kinds))
	for _, k := range kinds {
		if !k.Valid() || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
