package province

import "strings"

// ComputeTotal sums students, schools and teachers across all four levels.
func ComputeTotal(s *Statistics) Total {
	var t Total
	for _, l := range s.Infrastructure.Students.All() {
		t.Students += l.Total
	}
	for _, l := range s.Infrastructure.Schools.All() {
		t.Schools += l.Total
	}
	for _, l := range s.Workers.Teachers.All() {
		t.Teachers += l.Total
	}
	return t
}

// Normalize fills the derived Total when the source did not provide one.
func Normalize(s *Statistics) {
	if s.Total == (Total{}) {
		s.Total = ComputeTotal(s)
	}
	if s.Province.ID == "" {
		s.Province.ID = s.ProvinceID
	}
}

// BasicStudents is the student count from elementary through senior high.
// Higher education is excluded from the school-level ratio indicators.
func (s *Statistics) BasicStudents() int {
	return sumTotals(s.Infrastructure.Students.Basic())
}

// BasicSchools is the school count from elementary through senior high.
func (s *Statistics) BasicSchools() int {
	return sumTotals(s.Infrastructure.Schools.Basic())
}

// BasicTeachers is the teacher count from elementary through senior high.
func (s *Statistics) BasicTeachers() int {
	return sumTotals(s.Workers.Teachers.Basic())
}

// SpecialNeedsStudents counts special-needs students below higher education.
func (s *Statistics) SpecialNeedsStudents() int {
	n := 0
	for _, l := range s.Infrastructure.Students.Basic() {
		n += l.SpecialNeeds
	}
	return n
}

// SpecialNeedsSchools counts special-needs schools below higher education.
func (s *Statistics) SpecialNeedsSchools() int {
	n := 0
	for _, l := range s.Infrastructure.Schools.Basic() {
		n += l.SpecialNeeds
	}
	return n
}

func sumTotals(levels [3]Level) int {
	n := 0
	for _, l := range levels {
		n += l.Total
	}
	return n
}

// Slug converts a province name to its URL key ("Jawa Barat" -> "jawa-barat").
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
