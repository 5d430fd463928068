package indicator

// Targets at which an indicator scores 1.
const (
	LiteracyTarget          = 95.0 // %
	PovertyCeiling          = 25.0 // % poverty that scores 0
	HDITarget               = 85.0
	CompletionTarget        = 95.0 // %
	ParticipationTarget     = 98.0 // %
	StudentsPerSchoolTarget = 200.0
	StudentsPerTeacherIdeal = 20.0
	FundingPerStudentTarget = 15_000_000.0 // Rp per student per year
	SpecialNeedsPerSchool   = 30.0
)

// ComputedValue is the display value for indicators derived from several fields.
const ComputedValue = "Lihat Detail Kalkulasi"
