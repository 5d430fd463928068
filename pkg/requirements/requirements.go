// Package requirements computes how many teachers and schools a province
// needs to reach the national ratio targets.
package requirements

import (
	"fmt"
	"math"

	"github.com/valuin/domikado/pkg/province"
)

// National targets, in students per teacher and students per school.
const (
	TeacherTargetRatio = 16
	SchoolTargetRatio  = 500
)

type Status string

const (
	StatusAchieved         Status = "achieved"
	StatusNeedsImprovement Status = "needs_improvement"
)

// Requirement compares a province's current ratio with a target ratio.
type Requirement struct {
	Current         string  `json:"current"`
	Target          string  `json:"target"`
	CurrentRatio    int     `json:"current_ratio"`
	TargetRatio     int     `json:"target_ratio"`
	Existing        int     `json:"existing"`
	Needed          int     `json:"needed"`
	Required        int     `json:"required"`
	ShortagePercent float64 `json:"shortage_percent"`
	Status          Status  `json:"status"`
}

// Teachers computes the teacher requirement against TeacherTargetRatio.
func Teachers(total province.Total) Requirement {
	return compute(total.Students, total.Teachers, TeacherTargetRatio)
}

// Schools computes the school requirement against SchoolTargetRatio.
func Schools(total province.Total) Requirement {
	return compute(total.Students, total.Schools, SchoolTargetRatio)
}

// compute is total over its inputs: a zero or negative existing count is
// treated as 1 when forming the ratio.
//
// Status follows the count, not the rounded ratio: it is achieved only when
// Required is 0. The two disagree when students/existing falls strictly
// between target and target+0.5. For example 1640 students over 100
// teachers reads "1:16" but still needs 3 more teachers, so it reports
// needs_improvement.
func compute(students, existing, target int) Requirement {
	students = max(0, students)
	existing = max(0, existing)

	ratio := int(math.Round(float64(students) / float64(max(1, existing))))
	needed := int(math.Ceil(float64(students) / float64(target)))
	required := max(0, needed-existing)

	r := Requirement{
		Current:      fmt.Sprintf("1:%d", ratio),
		Target:       fmt.Sprintf("1:%d", target),
		CurrentRatio: ratio,
		TargetRatio:  target,
		Existing:     existing,
		Needed:       needed,
		Required:     required,
		Status:       StatusNeedsImprovement,
	}
	if needed > 0 {
		r.ShortagePercent = math.Round(float64(required)/float64(needed)*1000) / 10
	}
	if required == 0 {
		r.Status = StatusAchieved
	}
	return r
}

// Analysis is the combined ratio view for one province.
type Analysis struct {
	Province string      `json:"province"`
	Students int         `json:"students"`
	Teachers Requirement `json:"teachers"`
	Schools  Requirement `json:"schools"`
	OnTarget bool        `json:"on_target"`
}

// Analyze runs both calculators over the province totals.
func Analyze(s *province.Statistics) Analysis {
	total := s.Total
	if total == (province.Total{}) {
		total = province.ComputeTotal(s)
	}
	a := Analysis{
		Province: s.Name(),
		Students: total.Students,
		Teachers: Teachers(total),
		Schools:  Schools(total),
	}
	a.OnTarget = a.Teachers.Status == StatusAchieved && a.Schools.Status == StatusAchieved
	return a
}
