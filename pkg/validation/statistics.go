package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/valuin/domikado/pkg/province"
)

// ValidateStatistics checks a province record before it is scored. Errors
// mark data the calculator cannot trust; warnings mark data it can still
// score but that looks inconsistent.
func ValidateStatistics(s *province.Statistics) *Report {
	r := NewReport()

	validateIdentity(s, r)
	validateCounts(s, r)
	validateSocial(s, r)
	validateFunding(s, r)
	validateDivisors(s, r)
	validateTotals(s, r)

	r.Merge(ValidateStoredRatios(s))
	return r
}

// ValidateStoredRatios cross-checks the source's precomputed "1:N" ratio
// strings against the counts they summarise. It never reports errors.
func ValidateStoredRatios(s *province.Statistics) *Report {
	r := NewReport()
	validateRatios(s, r)
	return r
}

func validateIdentity(s *province.Statistics, r *Report) {
	if s.ProvinceID == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "province_id is required",
			Path:     "province_id",
			Expected: "UUID",
		})
	} else if _, err := uuid.Parse(s.ProvinceID); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("province_id is not a valid UUID: %v", err),
			Path:        "province_id",
			ActualValue: s.ProvinceID,
			Expected:    "UUID",
		})
	}

	if s.Province.ID != "" && s.ProvinceID != "" && s.Province.ID != s.ProvinceID {
		r.AddWarning(Result{
			Level:        LevelConsistency,
			Message:      "provinces.id differs from province_id",
			Path:         "provinces.id",
			ActualValue:  s.Province.ID,
			ConflictWith: "province_id",
		})
	}

	if strings.TrimSpace(s.Province.Name) == "" {
		r.AddError(Result{
			Level:   LevelSchema,
			Message: "provinces.name is required",
			Path:    "provinces.name",
		})
	}
}

type levelSet struct {
	path   string
	levels province.Levels
}

func (s *levelSet) each(fn func(path string, l province.Level)) {
	fn(s.path+".elementary", s.levels.Elementary)
	fn(s.path+".junior_high", s.levels.JuniorHigh)
	fn(s.path+".senior_high", s.levels.SeniorHigh)
	fn(s.path+".higher_education", s.levels.HigherEducation)
}

func validateCounts(s *province.Statistics, r *Report) {
	sets := []levelSet{
		{"infrastructure.schools", s.Infrastructure.Schools},
		{"infrastructure.students", s.Infrastructure.Students},
		{"workers.teachers", s.Workers.Teachers},
	}

	for i := range sets {
		sets[i].each(func(path string, l province.Level) {
			fields := []struct {
				name  string
				value int
			}{
				{"total", l.Total},
				{"public", l.Public},
				{"private", l.Private},
				{"special_needs", l.SpecialNeeds},
				{"official", l.Official},
			}
			for _, f := range fields {
				if f.value < 0 {
					r.AddError(Result{
						Level:       LevelSchema,
						Message:     fmt.Sprintf("%s.%s must be non-negative", path, f.name),
						Path:        path + "." + f.name,
						ActualValue: f.value,
						Expected:    ">= 0",
					})
				}
			}

			if l.Public+l.Private > l.Total {
				r.AddWarning(Result{
					Level:        LevelConsistency,
					Message:      fmt.Sprintf("%s: public + private (%d) exceeds total (%d)", path, l.Public+l.Private, l.Total),
					Path:         path + ".total",
					ActualValue:  l.Total,
					Expected:     fmt.Sprintf(">= %d", l.Public+l.Private),
					ConflictWith: path + ".public",
				})
			}
		})
	}
}

func validateSocial(s *province.Statistics, r *Report) {
	rates := []struct {
		name  string
		value float64
	}{
		{"literacy_rate", s.Social.LiteracyRate},
		{"poverty_index", s.Social.PovertyIndex},
		{"human_development_index", s.Social.HumanDevelopmentIndex},
		{"education_completion_rate", s.Social.EducationCompletionRate},
		{"school_participation_rate", s.Social.SchoolParticipationRate},
	}

	for _, rate := range rates {
		if math.IsNaN(rate.value) || rate.value < 0 || rate.value > 100 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("social.%s %.2f is outside valid range (0-100)", rate.name, rate.value),
				Path:        "social." + rate.name,
				ActualValue: rate.value,
				Expected:    "0-100",
			})
		}
	}
}

func validateFunding(s *province.Statistics, r *Report) {
	if math.IsNaN(s.Funding) || s.Funding < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "funding must be non-negative",
			Path:        "funding",
			ActualValue: s.Funding,
			Expected:    ">= 0",
		})
	}
}

func validateDivisors(s *province.Statistics, r *Report) {
	students := s.BasicStudents()
	if students <= 0 {
		return
	}

	if s.BasicSchools() == 0 {
		r.AddWarning(Result{
			Level:       LevelConsistency,
			Message:     fmt.Sprintf("%d students reported but no schools; the school ratio is computed against 1 school", students),
			Path:        "infrastructure.schools",
			ActualValue: 0,
			Expected:    "> 0",
		})
	}
	if s.BasicTeachers() == 0 {
		r.AddWarning(Result{
			Level:       LevelConsistency,
			Message:     fmt.Sprintf("%d students reported but no teachers; the teacher ratio is computed against 1 teacher", students),
			Path:        "workers.teachers",
			ActualValue: 0,
			Expected:    "> 0",
		})
	}
	if s.SpecialNeedsStudents() > 0 && s.SpecialNeedsSchools() == 0 {
		r.AddWarning(Result{
			Level:       LevelConsistency,
			Message:     "special-needs students reported but no special-needs schools",
			Path:        "infrastructure.schools",
			ActualValue: 0,
			Expected:    "> 0",
		})
	}
}

func validateTotals(s *province.Statistics, r *Report) {
	if s.Total == (province.Total{}) {
		return
	}
	derived := province.ComputeTotal(s)

	check := func(name string, stored, computed int) {
		if stored != computed {
			r.AddWarning(Result{
				Level:        LevelConsistency,
				Message:      fmt.Sprintf("total.%s (%d) does not match the sum of levels (%d)", name, stored, computed),
				Path:         "total." + name,
				ActualValue:  stored,
				Expected:     strconv.Itoa(computed),
				Suggestions:  []string{"Remove the total block to have it derived from the level breakdown"},
				ConflictWith: name,
			})
		}
	}
	check("students", s.Total.Students, derived.Students)
	check("schools", s.Total.Schools, derived.Schools)
	check("teachers", s.Total.Teachers, derived.Teachers)
}

// ratioTolerance is how far a published ratio may drift from the counts
// before it is reported.
const ratioTolerance = 0.10

func validateRatios(s *province.Statistics, r *Report) {
	students := s.Infrastructure.Students
	levels := func(l province.Levels) map[string]province.Level {
		return map[string]province.Level{
			"elementary":             l.Elementary,
			"junior_high":            l.JuniorHigh,
			"senior_high_vocational": l.SeniorHigh,
			"higher_education":       l.HigherEducation,
		}
	}

	checkRatios(r, "infrastructure.ratios", "student_to_school_", s.Infrastructure.Ratios,
		levels(students), levels(s.Infrastructure.Schools))
	checkRatios(r, "workers.ratios", "student_to_teacher_", s.Workers.Ratios,
		levels(students), levels(s.Workers.Teachers))
}

func checkRatios(r *Report, path, prefix string, ratios map[string]string, num, den map[string]province.Level) {
	for key, value := range ratios {
		p := path + "." + key

		stated, err := ParseRatio(value)
		if err != nil {
			r.AddWarning(Result{
				Level:       LevelRatio,
				Message:     fmt.Sprintf("%s: %v", key, err),
				Path:        p,
				ActualValue: value,
				Expected:    "1:N",
			})
			continue
		}

		level, ok := strings.CutPrefix(key, prefix)
		n, okN := num[level]
		d, okD := den[level]
		if !ok || !okN || !okD {
			r.AddInfo(Result{
				Level:       LevelRatio,
				Message:     fmt.Sprintf("unrecognised ratio key %q", key),
				Path:        p,
				ActualValue: value,
			})
			continue
		}
		if n.Total == 0 || d.Total == 0 {
			continue
		}

		computed := float64(n.Total) / float64(d.Total)
		if math.Abs(computed-stated)/computed > ratioTolerance {
			r.AddInfo(Result{
				Level:       LevelRatio,
				Message:     fmt.Sprintf("%s is %s but the counts give 1:%.0f", key, value, computed),
				Path:        p,
				ActualValue: value,
				Expected:    fmt.Sprintf("1:%.0f", computed),
			})
		}
	}
}

// ParseRatio reads a "1:N" ratio string and returns N.
func ParseRatio(v string) (float64, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(v), ":")
	if !ok {
		return 0, fmt.Errorf("ratio %q is not in 1:N form", v)
	}
	l, err := strconv.ParseFloat(strings.TrimSpace(left), 64)
	if err != nil || l <= 0 {
		return 0, fmt.Errorf("ratio %q has invalid left side", v)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(right), 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("ratio %q has invalid right side", v)
	}
	return n / l, nil
}
