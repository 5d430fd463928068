package allocation

import (
	"errors"
	"fmt"
	"strings"
)

// Policy constants for the allocation model. These are policy values, not
// derived quantities; DefaultPolicy returns them as a Policy so callers can
// override any of them.
const (
	TotalBudget             = 81_700_000_000_000.0 // Rp 81.7T reference budget
	AllocationFactor        = 1900.0               // gap score divisor
	MaxAllocationShare      = 0.15                 // per-parameter cap
	RecommendationThreshold = 0.7                  // score below which a category is remediated

	CostPerSchool      = 3_000_000_000.0 // Rp per new school
	CostPerTeacher     = 600_000_000.0   // Rp per teacher (salary, allowance, training)
	CostPerLiteracy    = 2_000_000.0     // Rp per adult in a literacy programme
	CostPerDropoutCase = 8_000_000.0     // Rp per student in dropout prevention

	SchoolRatioTarget  = 200.0 // students per school
	TeacherRatioTarget = 20.0  // students per teacher
	LiteracyTarget     = 95.0  // %
	CompletionTarget   = 95.0  // %

	// Severity thresholds above (ratios) or below (rates) which priority is High.
	SchoolRatioHigh     = 300.0
	TeacherRatioHigh    = 30.0
	LiteracyHighBelow   = 60.0
	CompletionHighBelow = 70.0

	// Population estimates used by the literacy and dropout categories.
	// They are fixed rather than read from province statistics.
	LiteracyPopulation  = 3_265_000
	SchoolAgePopulation = 600_000
)

// Policy carries every tunable constant of the allocation model.
type Policy struct {
	TotalBudget             float64 `yaml:"total_budget" json:"total_budget"`
	AllocationFactor        float64 `yaml:"allocation_factor" json:"allocation_factor"`
	MaxAllocationShare      float64 `yaml:"max_allocation_share" json:"max_allocation_share"`
	RecommendationThreshold float64 `yaml:"recommendation_threshold" json:"recommendation_threshold"`

	CostPerSchool      float64 `yaml:"cost_per_school" json:"cost_per_school"`
	CostPerTeacher     float64 `yaml:"cost_per_teacher" json:"cost_per_teacher"`
	CostPerLiteracy    float64 `yaml:"cost_per_literacy" json:"cost_per_literacy"`
	CostPerDropoutCase float64 `yaml:"cost_per_dropout_case" json:"cost_per_dropout_case"`

	SchoolRatioTarget  float64 `yaml:"school_ratio_target" json:"school_ratio_target"`
	TeacherRatioTarget float64 `yaml:"teacher_ratio_target" json:"teacher_ratio_target"`
	LiteracyTarget     float64 `yaml:"literacy_target" json:"literacy_target"`
	CompletionTarget   float64 `yaml:"completion_target" json:"completion_target"`

	SchoolRatioHigh     float64 `yaml:"school_ratio_high" json:"school_ratio_high"`
	TeacherRatioHigh    float64 `yaml:"teacher_ratio_high" json:"teacher_ratio_high"`
	LiteracyHighBelow   float64 `yaml:"literacy_high_below" json:"literacy_high_below"`
	CompletionHighBelow float64 `yaml:"completion_high_below" json:"completion_high_below"`

	LiteracyPopulation  int `yaml:"literacy_population" json:"literacy_population"`
	SchoolAgePopulation int `yaml:"school_age_population" json:"school_age_population"`
}

// DefaultPolicy returns the compiled-in policy values.
func DefaultPolicy() Policy {
	return Policy{
		TotalBudget:             TotalBudget,
		AllocationFactor:        AllocationFactor,
		MaxAllocationShare:      MaxAllocationShare,
		RecommendationThreshold: RecommendationThreshold,

		CostPerSchool:      CostPerSchool,
		CostPerTeacher:     CostPerTeacher,
		CostPerLiteracy:    CostPerLiteracy,
		CostPerDropoutCase: CostPerDropoutCase,

		SchoolRatioTarget:  SchoolRatioTarget,
		TeacherRatioTarget: TeacherRatioTarget,
		LiteracyTarget:     LiteracyTarget,
		CompletionTarget:   CompletionTarget,

		SchoolRatioHigh:     SchoolRatioHigh,
		TeacherRatioHigh:    TeacherRatioHigh,
		LiteracyHighBelow:   LiteracyHighBelow,
		CompletionHighBelow: CompletionHighBelow,

		LiteracyPopulation:  LiteracyPopulation,
		SchoolAgePopulation: SchoolAgePopulation,
	}
}

// Validate checks that every divisor and unit cost is positive.
func (p Policy) Validate() error {
	var errs []string

	positive := []struct {
		name  string
		value float64
	}{
		{"allocation_factor", p.AllocationFactor},
		{"cost_per_school", p.CostPerSchool},
		{"cost_per_teacher", p.CostPerTeacher},
		{"cost_per_literacy", p.CostPerLiteracy},
		{"cost_per_dropout_case", p.CostPerDropoutCase},
		{"school_ratio_target", p.SchoolRatioTarget},
		{"teacher_ratio_target", p.TeacherRatioTarget},
		{"literacy_population", float64(p.LiteracyPopulation)},
		{"school_age_population", float64(p.SchoolAgePopulation)},
	}
	for _, f := range positive {
		if f.value <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be > 0", f.name))
		}
	}

	if p.TotalBudget < 0 {
		errs = append(errs, "total_budget must be >= 0")
	}
	if p.MaxAllocationShare < 0 || p.MaxAllocationShare > 1 {
		errs = append(errs, "max_allocation_share must be between 0 and 1")
	}
	if p.RecommendationThreshold < 0 || p.RecommendationThreshold > 1 {
		errs = append(errs, "recommendation_threshold must be between 0 and 1")
	}

	if len(errs) > 0 {
		return errors.New("policy: " + strings.Join(errs, "; "))
	}
	return nil
}
