package indicator

import (
	"fmt"
	"strings"
)

// Kind identifies one of the nine scored indicators.
type Kind string

const (
	LiteracyRate            Kind = "literacy_rate"
	PovertyIndex            Kind = "poverty_index"
	HumanDevelopmentIndex   Kind = "human_development_index"
	EducationCompletionRate Kind = "education_completion_rate"
	SchoolParticipationRate Kind = "school_participation_rate"
	InfrastructureScore     Kind = "infrastructure_score"
	TeacherRatioScore       Kind = "teacher_ratio_score"
	FundingAdequacy         Kind = "funding_adequacy"
	SpecialNeedsScore       Kind = "special_needs_score"
)

// all lists the kinds in display order.
var all = []Kind{
	LiteracyRate,
	PovertyIndex,
	HumanDevelopmentIndex,
	EducationCompletionRate,
	SchoolParticipationRate,
	InfrastructureScore,
	TeacherRatioScore,
	FundingAdequacy,
	SpecialNeedsScore,
}

// All returns every indicator kind in display order.
func All() []Kind {
	out := make([]Kind, len(all))
	copy(out, all)
	return out
}

// DefaultSelection is the selection a fresh calculator starts with.
func DefaultSelection() []Kind {
	return []Kind{LiteracyRate, InfrastructureScore, TeacherRatioScore}
}

// IsDefault reports whether k is part of DefaultSelection.
func IsDefault(k Kind) bool {
	for _, d := range DefaultSelection() {
		if d == k {
			return true
		}
	}
	return false
}

// Valid reports whether k is a known indicator.
func (k Kind) Valid() bool {
	for _, a := range all {
		if a == k {
			return true
		}
	}
	return false
}

// Parse converts an indicator id to a Kind.
func Parse(id string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(id)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown indicator %q", id)
	}
	return k, nil
}

// ParseList parses a comma-separated list of indicator ids.
// Empty items are skipped; an empty string yields an empty selection.
func ParseList(ids string) ([]Kind, error) {
	var out []Kind
	for _, part := range strings.Split(ids, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := Parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// Label returns the dashboard label for the indicator.
func Label(k Kind) string {
	switch k {
	case LiteracyRate:
		return "Tingkat Literasi"
	case PovertyIndex:
		return "Indeks Kemiskinan"
	case HumanDevelopmentIndex:
		return "Indeks Pembangunan Manusia"
	case EducationCompletionRate:
		return "Tingkat Penyelesaian Pendidikan"
	case SchoolParticipationRate:
		return "Angka Partisipasi Sekolah"
	case InfrastructureScore:
		return "Skor Infrastruktur Sekolah"
	case TeacherRatioScore:
		return "Rasio Guru-Siswa"
	case FundingAdequacy:
		return "Kecukupan Pendanaan"
	case SpecialNeedsScore:
		return "Layanan Pendidikan Khusus"
	}
	return string(k)
}

// Target describes the value at which the indicator is fully met.
func Target(k Kind) string {
	switch k {
	case LiteracyRate:
		return fmt.Sprintf("%.0f%%", LiteracyTarget)
	case PovertyIndex:
		return fmt.Sprintf("0%% (%.0f%% scores 0)", PovertyCeiling)
	case HumanDevelopmentIndex:
		return fmt.Sprintf("%.0f", HDITarget)
	case EducationCompletionRate:
		return fmt.Sprintf("%.0f%%", CompletionTarget)
	case SchoolParticipationRate:
		return fmt.Sprintf("%.0f%%", ParticipationTarget)
	case InfrastructureScore:
		return fmt.Sprintf("%.0f students/school", StudentsPerSchoolTarget)
	case TeacherRatioScore:
		return fmt.Sprintf("1:%.0f", StudentsPerTeacherIdeal)
	case FundingAdequacy:
		return "Rp 15 juta/student/year"
	case SpecialNeedsScore:
		return fmt.Sprintf("%.0f students/special school", SpecialNeedsPerSchool)
	}
	return ""
}
