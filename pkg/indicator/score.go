package indicator

import (
	"fmt"
	"math"
	"strconv"

	"github.com/valuin/domikado/pkg/province"
)

// Score is the evaluation of one selected indicator.
type Score struct {
	ID       Kind    `json:"id"`
	Label    string  `json:"label"`
	RawValue string  `json:"raw_value"`
	Score    float64 `json:"score"`
	Gap      float64 `json:"gap"`
	Weight   float64 `json:"weight"`
}

// Evaluate scores one indicator for the province, clamped to [0,1].
func Evaluate(k Kind, s *province.Statistics) float64 {
	var v float64
	switch k {
	case LiteracyRate:
		v = LiteracyRateScore(s.Social.LiteracyRate)
	case PovertyIndex:
		v = PovertyIndexScore(s.Social.PovertyIndex)
	case HumanDevelopmentIndex:
		v = HDIScore(s.Social.HumanDevelopmentIndex)
	case EducationCompletionRate:
		v = CompletionRateScore(s.Social.EducationCompletionRate)
	case SchoolParticipationRate:
		v = ParticipationRateScore(s.Social.SchoolParticipationRate)
	case InfrastructureScore:
		v = InfrastructureRatioScore(s.BasicStudents(), s.BasicSchools())
	case TeacherRatioScore:
		v = TeacherRatio(s.BasicStudents(), s.BasicTeachers())
	case FundingAdequacy:
		v = FundingAdequacyScore(s.Funding, s.BasicStudents())
	case SpecialNeedsScore:
		v = SpecialNeedsServiceScore(s.SpecialNeedsStudents(), s.SpecialNeedsSchools())
	}
	return clamp01(v)
}

// New builds the Score record for k with the given selection weight.
func New(k Kind, s *province.Statistics, weight float64) Score {
	v := Evaluate(k, s)
	return Score{
		ID:       k,
		Label:    Label(k),
		RawValue: RawValue(k, s),
		Score:    v,
		Gap:      1 - v,
		Weight:   weight,
	}
}

// RawValue formats the underlying statistic for display.
func RawValue(k Kind, s *province.Statistics) string {
	switch k {
	case LiteracyRate:
		return percent(s.Social.LiteracyRate)
	case PovertyIndex:
		return percent(s.Social.PovertyIndex)
	case HumanDevelopmentIndex:
		return strconv.FormatFloat(s.Social.HumanDevelopmentIndex, 'f', -1, 64)
	case EducationCompletionRate:
		return percent(s.Social.EducationCompletionRate)
	case SchoolParticipationRate:
		return percent(s.Social.SchoolParticipationRate)
	case FundingAdequacy:
		return fmt.Sprintf("Rp %.1fM", s.Funding/1_000_000_000)
	}
	return ComputedValue
}

func LiteracyRateScore(value float64) float64 {
	return math.Min(1, value/LiteracyTarget)
}

// PovertyIndexScore is inverse: 0% poverty scores 1, PovertyCeiling or more scores 0.
func PovertyIndexScore(value float64) float64 {
	return math.Max(0, (PovertyCeiling-value)/PovertyCeiling)
}

func HDIScore(value float64) float64 {
	return math.Min(1, value/HDITarget)
}

func CompletionRateScore(value float64) float64 {
	return math.Min(1, value/CompletionTarget)
}

func ParticipationRateScore(value float64) float64 {
	return math.Min(1, value/ParticipationTarget)
}

// InfrastructureRatioScore compares students per school against the target.
func InfrastructureRatioScore(students, schools int) float64 {
	return ratioScore(StudentsPerSchoolTarget, students, schools)
}

// TeacherRatio compares students per teacher against the ideal.
func TeacherRatio(students, teachers int) float64 {
	return ratioScore(StudentsPerTeacherIdeal, students, teachers)
}

// FundingAdequacyScore compares funding per student against the target.
func FundingAdequacyScore(funding float64, students int) float64 {
	perStudent := funding / float64(max(1, students))
	return math.Max(0, math.Min(1, perStudent/FundingPerStudentTarget))
}

// SpecialNeedsServiceScore scores 1 when there are no special-needs students.
func SpecialNeedsServiceScore(students, schools int) float64 {
	if students == 0 {
		return 1
	}
	return ratioScore(SpecialNeedsPerSchool, students, schools)
}

// ratioScore returns min(1, ideal / (n/d)) with d clamped to at least 1.
// An empty numerator means nothing is over capacity.
func ratioScore(ideal float64, n, d int) float64 {
	if n <= 0 {
		return 1
	}
	ratio := float64(n) / float64(max(1, d))
	return math.Max(0, math.Min(1, ideal/ratio))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
