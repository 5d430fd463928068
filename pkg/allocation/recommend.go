package allocation

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/valuin/domikado/pkg/indicator"
	"github.com/valuin/domikado/pkg/province"
)

// Category is a remediation area with its own unit cost model.
type Category string

const (
	CategoryInfrastructure Category = "infrastructure"
	CategoryTeachers       Category = "teachers"
	CategoryLiteracy       Category = "literacy"
	CategoryDropout        Category = "dropout"
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
)

// Gap describes what remains after the affordable units are funded.
type Gap struct {
	Unfunded  int    `json:"unfunded"`
	Current   string `json:"current"`
	Target    string `json:"target"`
	RateGap   string `json:"rate_gap,omitempty"`
	Remaining string `json:"remaining,omitempty"`
}

// Recommendation is a budget-capped remediation plan for one category.
type Recommendation struct {
	Category          Category `json:"category"`
	Parameter         string   `json:"parameter"`
	Priority          Priority `json:"priority"`
	TotalNeeded       int      `json:"total_needed"`
	Affordable        int      `json:"affordable"`
	Achievable        string   `json:"achievable,omitempty"`
	Gap               Gap      `json:"gap"`
	Cost              float64  `json:"cost"`
	BudgetUtilization float64  `json:"budget_utilization"`
	MaxBudget         float64  `json:"max_budget"`
	Description       string   `json:"description"`
	Actions           []string `json:"actions"`
}

// Recommend builds remediation plans for every selected category whose score
// is below the policy threshold. Each plan spends at most
// allocation * MaxAllocationShare. Results are ordered High priority first,
// then by descending budget utilization.
func Recommend(s *province.Statistics, scores map[indicator.Kind]indicator.Score, allocation float64, p Policy) []Recommendation {
	maxBudget := allocation * p.MaxAllocationShare
	recs := []Recommendation{}

	deficient := func(k indicator.Kind) bool {
		sc, ok := scores[k]
		return ok && sc.Score < p.RecommendationThreshold
	}

	if deficient(indicator.InfrastructureScore) {
		if r, ok := recommendSchools(s, maxBudget, p); ok {
			recs = append(recs, r)
		}
	}
	if deficient(indicator.TeacherRatioScore) {
		if r, ok := recommendTeachers(s, maxBudget, p); ok {
			recs = append(recs, r)
		}
	}
	if deficient(indicator.LiteracyRate) {
		if r, ok := recommendLiteracy(s, maxBudget, p); ok {
			recs = append(recs, r)
		}
	}
	if deficient(indicator.EducationCompletionRate) {
		if r, ok := recommendDropoutPrevention(s, maxBudget, p); ok {
			recs = append(recs, r)
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		hi, hj := recs[i].Priority == PriorityHigh, recs[j].Priority == PriorityHigh
		if hi != hj {
			return hi
		}
		return recs[i].BudgetUtilization > recs[j].BudgetUtilization
	})
	return recs
}

func recommendSchools(s *province.Statistics, maxBudget float64, p Policy) (Recommendation, bool) {
	students, schools := s.BasicStudents(), s.BasicSchools()
	ratio := float64(students) / float64(max(1, schools))
	if ratio <= p.SchoolRatioTarget {
		return Recommendation{}, false
	}

	needed := int(math.Ceil(float64(students)/p.SchoolRatioTarget - float64(schools)))
	affordable := affordableUnits(needed, maxBudget, p.CostPerSchool)
	if affordable <= 0 {
		return Recommendation{}, false
	}

	actions := []string{
		fmt.Sprintf("Pembangunan %d unit sekolah baru", affordable),
		"Rehabilitasi sekolah existing yang rusak",
		"Penyediaan fasilitas penunjang pembelajaran",
		"Program pembangunan sekolah bertahap",
	}
	if affordable < needed {
		actions = append(actions, fmt.Sprintf("Perlu %d sekolah tambahan di tahap selanjutnya", needed-affordable))
	}

	r := Recommendation{
		Category:    CategoryInfrastructure,
		Parameter:   "Infrastruktur Sekolah",
		Priority:    priority(ratio > p.SchoolRatioHigh),
		TotalNeeded: needed,
		Affordable:  affordable,
		Gap: Gap{
			Unfunded: needed - affordable,
			Current:  fmt.Sprintf("%.0f", ratio),
			Target:   fmt.Sprintf("%.0f", p.SchoolRatioTarget),
		},
		Description: fmt.Sprintf("Dapat membangun %d dari %d sekolah yang dibutuhkan", affordable, needed),
		Actions:     actions,
	}
	r.fund(affordable, p.CostPerSchool, maxBudget)
	return r, true
}

func recommendTeachers(s *province.Statistics, maxBudget float64, p Policy) (Recommendation, bool) {
	students, teachers := s.BasicStudents(), s.BasicTeachers()
	ratio := float64(students) / float64(max(1, teachers))
	if ratio <= p.TeacherRatioTarget {
		return Recommendation{}, false
	}

	needed := int(math.Ceil(float64(students)/p.TeacherRatioTarget - float64(teachers)))
	affordable := affordableUnits(needed, maxBudget, p.CostPerTeacher)
	if affordable <= 0 {
		return Recommendation{}, false
	}

	actions := []string{
		fmt.Sprintf("Rekrutmen %d guru baru", affordable),
		"Program pelatihan dan sertifikasi guru",
		"Peningkatan kesejahteraan guru",
		"Program guru kontrak dengan tunjangan kompetitif",
	}
	if affordable < needed {
		actions = append(actions, fmt.Sprintf("Perlu %d guru tambahan di tahap selanjutnya", needed-affordable))
	}

	r := Recommendation{
		Category:    CategoryTeachers,
		Parameter:   "Kebutuhan Guru",
		Priority:    priority(ratio > p.TeacherRatioHigh),
		TotalNeeded: needed,
		Affordable:  affordable,
		Gap: Gap{
			Unfunded: needed - affordable,
			Current:  fmt.Sprintf("1:%.0f", ratio),
			Target:   fmt.Sprintf("1:%.0f", p.TeacherRatioTarget),
		},
		Description: fmt.Sprintf("Dapat merekrut %d dari %d guru yang dibutuhkan", affordable, needed),
		Actions:     actions,
	}
	r.fund(affordable, p.CostPerTeacher, maxBudget)
	return r, true
}

func recommendLiteracy(s *province.Statistics, maxBudget float64, p Policy) (Recommendation, bool) {
	current := s.Social.LiteracyRate
	rateGap := p.LiteracyTarget - current
	if rateGap <= 0 {
		return Recommendation{}, false
	}

	population := float64(p.LiteracyPopulation)
	needed := int(math.Round(rateGap * population / 100))
	affordable := affordableUnits(needed, maxBudget, p.CostPerLiteracy)
	if affordable <= 0 {
		return Recommendation{}, false
	}
	achievable := current + float64(affordable)/population*100

	actions := []string{
		fmt.Sprintf("Program literasi untuk %s orang dewasa", FormatCount(affordable)),
		"Pembangunan taman bacaan masyarakat",
		"Program keaksaraan fungsional",
		"Pelatihan tutor literasi komunitas",
	}
	if affordable < needed {
		actions = append(actions, fmt.Sprintf("Perlu program tambahan untuk %s orang", FormatCount(needed-affordable)))
	}

	r := Recommendation{
		Category:    CategoryLiteracy,
		Parameter:   "Program Literasi",
		Priority:    priority(current < p.LiteracyHighBelow),
		TotalNeeded: needed,
		Affordable:  affordable,
		Achievable:  fmt.Sprintf("%.1f", achievable),
		Gap: Gap{
			Unfunded:  needed - affordable,
			Current:   strconv.FormatFloat(current, 'f', -1, 64),
			Target:    strconv.FormatFloat(p.LiteracyTarget, 'f', -1, 64),
			RateGap:   fmt.Sprintf("%.1f", rateGap),
			Remaining: fmt.Sprintf("%.1f", p.LiteracyTarget-achievable),
		},
		Description: fmt.Sprintf("Dapat memberikan program literasi kepada %s orang (meningkatkan literasi menjadi %.1f%%)",
			FormatCount(affordable), achievable),
		Actions: actions,
	}
	r.fund(affordable, p.CostPerLiteracy, maxBudget)
	return r, true
}

func recommendDropoutPrevention(s *province.Statistics, maxBudget float64, p Policy) (Recommendation, bool) {
	current := s.Social.EducationCompletionRate
	rateGap := p.CompletionTarget - current
	if rateGap <= 0 {
		return Recommendation{}, false
	}

	population := float64(p.SchoolAgePopulation)
	needed := int(math.Round(rateGap * population / 100))
	affordable := affordableUnits(needed, maxBudget, p.CostPerDropoutCase)
	if affordable <= 0 {
		return Recommendation{}, false
	}
	achievable := current + float64(affordable)/population*100

	actions := []string{
		fmt.Sprintf("Program beasiswa untuk %s siswa berisiko dropout", FormatCount(affordable)),
		"Program bantuan operasional sekolah tambahan",
		"Konseling dan bimbingan siswa",
		"Program makanan sekolah gratis",
	}
	if affordable < needed {
		actions = append(actions, fmt.Sprintf("Perlu program tambahan untuk %s siswa", FormatCount(needed-affordable)))
	}

	r := Recommendation{
		Category:    CategoryDropout,
		Parameter:   "Pencegahan Putus Sekolah",
		Priority:    priority(current < p.CompletionHighBelow),
		TotalNeeded: needed,
		Affordable:  affordable,
		Achievable:  fmt.Sprintf("%.1f", achievable),
		Gap: Gap{
			Unfunded:  needed - affordable,
			Current:   strconv.FormatFloat(current, 'f', -1, 64),
			Target:    strconv.FormatFloat(p.CompletionTarget, 'f', -1, 64),
			RateGap:   fmt.Sprintf("%.1f", rateGap),
			Remaining: fmt.Sprintf("%.1f", p.CompletionTarget-achievable),
		},
		Description: fmt.Sprintf("Dapat mencegah putus sekolah %s siswa (meningkatkan completion rate menjadi %.1f%%)",
			FormatCount(affordable), achievable),
		Actions: actions,
	}
	r.fund(affordable, p.CostPerDropoutCase, maxBudget)
	return r, true
}

// fund records the cost of the affordable units against the per-parameter cap.
func (r *Recommendation) fund(units int, unitCost, maxBudget float64) {
	r.Cost = float64(units) * unitCost
	r.MaxBudget = maxBudget
	if maxBudget > 0 {
		r.BudgetUtilization = r.Cost / maxBudget * 100
	}
}

// affordableUnits is min(shortfall, floor(budget/unitCost)), never negative.
func affordableUnits(shortfall int, budget, unitCost float64) int {
	if shortfall <= 0 || budget <= 0 || unitCost <= 0 {
		return 0
	}
	units := math.Floor(budget / unitCost)
	if units >= float64(shortfall) {
		return shortfall
	}
	return int(units)
}

func priority(high bool) Priority {
	if high {
		return PriorityHigh
	}
	return PriorityMedium
}
