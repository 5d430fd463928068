package indicator

import (
	"math"
	"testing"

	"github.com/valuin/domikado/pkg/province"
)

func papuaStats() *province.Statistics {
	s := &province.Statistics{
		ProvinceID: "5afad633-fc10-4382-acef-13aaaa5f4c26",
		Province:   province.Info{ID: "5afad633-fc10-4382-acef-13aaaa5f4c26", Name: "Papua"},
		Funding:    2_100_000_000_000,
		Social: province.Social{
			LiteracyRate:            47.57,
			PovertyIndex:            18.09,
			HumanDevelopmentIndex:   73,
			EducationCompletionRate: 62.24,
			SchoolParticipationRate: 91.48,
		},
	}
	s.Infrastructure.Schools = province.Levels{
		Elementary: province.Level{Total: 857, SpecialNeeds: 7},
		JuniorHigh: province.Level{Total: 283, SpecialNeeds: 7},
		SeniorHigh: province.Level{Total: 124, SpecialNeeds: 6},
	}
	s.Infrastructure.Students = province.Levels{
		Elementary: province.Level{Total: 118152, SpecialNeeds: 240},
		JuniorHigh: province.Level{Total: 51786, SpecialNeeds: 138},
		SeniorHigh: province.Level{Total: 34136, SpecialNeeds: 82},
	}
	s.Workers.Teachers = province.Levels{
		Elementary:      province.Level{Total: 7919},
		JuniorHigh:      province.Level{Total: 1247},
		SeniorHigh:      province.Level{Total: 2407},
		HigherEducation: province.Level{Total: 575},
	}
	province.Normalize(s)
	return s
}

func TestEvaluatePapua(t *testing.T) {
	s := papuaStats()

	cases := []struct {
		kind Kind
		want float64
	}{
		{LiteracyRate, 47.57 / 95},
		{PovertyIndex, (25 - 18.09) / 25},
		{HumanDevelopmentIndex, 73.0 / 85},
		{EducationCompletionRate, 62.24 / 95},
		{SchoolParticipationRate, 91.48 / 98},
		// 204074 students / 1264 schools = 161.5, below the 200 target.
		{InfrastructureScore, 1},
		// 204074 / 11573 teachers = 17.6, below the 1:20 ideal.
		{TeacherRatioScore, 1},
		// Rp 2.1T / 204074 students = Rp 10.29M.
		{FundingAdequacy, 2_100_000_000_000.0 / 204074 / 15_000_000},
		// 460 special students / 20 special schools = 23, under 30.
		{SpecialNeedsScore, 1},
	}

	for _, tc := range cases {
		got := Evaluate(tc.kind, s)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Evaluate(%s) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestScoresStayInUnitRange(t *testing.T) {
	inputs := []float64{0, 1, 25, 47.57, 95, 98, 100, 250, 1e9}
	for _, v := range inputs {
		for name, fn := range map[string]func(float64) float64{
			"literacy":      LiteracyRateScore,
			"poverty":       PovertyIndexScore,
			"hdi":           HDIScore,
			"completion":    CompletionRateScore,
			"participation": ParticipationRateScore,
		} {
			got := clamp01(fn(v))
			if got < 0 || got > 1 {
				t.Errorf("%s(%v) = %v, outside [0,1]", name, v, got)
			}
		}
	}

	counts := []int{0, 1, 19, 200, 100000}
	for _, n := range counts {
		for _, d := range counts {
			for name, got := range map[string]float64{
				"infrastructure": InfrastructureRatioScore(n, d),
				"teacher":        TeacherRatio(n, d),
				"special":        SpecialNeedsServiceScore(n, d),
				"funding":        FundingAdequacyScore(float64(d)*1e9, n),
			} {
				if math.IsNaN(got) || got < 0 || got > 1 {
					t.Errorf("%s(%d, %d) = %v, outside [0,1]", name, n, d, got)
				}
			}
		}
	}
}

func TestZeroDenominators(t *testing.T) {
	s := &province.Statistics{}
	for _, k := range All() {
		got := Evaluate(k, s)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Evaluate(%s) on empty statistics = %v", k, got)
		}
	}

	// Students with no schools at all is a complete shortfall for large counts.
	if got := InfrastructureRatioScore(100000, 0); got > 0.01 {
		t.Errorf("InfrastructureRatioScore(100000, 0) = %v, want ~0", got)
	}
	if got := FundingAdequacyScore(1e12, 0); got != 1 {
		t.Errorf("FundingAdequacyScore with zero students = %v, want 1", got)
	}
}

func TestSpecialNeedsNoStudentsIsPerfect(t *testing.T) {
	if got := SpecialNeedsServiceScore(0, 0); got != 1 {
		t.Errorf("SpecialNeedsServiceScore(0, 0) = %v, want 1", got)
	}
	// 90 students in 1 school: 30/90.
	if got := SpecialNeedsServiceScore(90, 1); math.Abs(got-1.0/3) > 1e-9 {
		t.Errorf("SpecialNeedsServiceScore(90, 1) = %v, want 0.333", got)
	}
	// Zero schools clamps to 1.
	if got := SpecialNeedsServiceScore(60, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("SpecialNeedsServiceScore(60, 0) = %v, want 0.5", got)
	}
}

func TestMonotonicity(t *testing.T) {
	prevLit := -1.0
	prevPov := 2.0
	for v := 0.0; v <= 120; v += 2.5 {
		lit := LiteracyRateScore(v)
		if lit < prevLit {
			t.Errorf("LiteracyRateScore decreased at %v: %v < %v", v, lit, prevLit)
		}
		prevLit = lit

		pov := PovertyIndexScore(v)
		if pov > prevPov {
			t.Errorf("PovertyIndexScore increased at %v: %v > %v", v, pov, prevPov)
		}
		prevPov = pov
	}
}

func TestHigherEducationExcludedFromRatios(t *testing.T) {
	s := papuaStats()
	before := Evaluate(TeacherRatioScore, s)

	s.Infrastructure.Students.HigherEducation.Total = 5_000_000
	s.Workers.Teachers.HigherEducation.Total = 1
	if after := Evaluate(TeacherRatioScore, s); after != before {
		t.Errorf("teacher ratio changed with higher education: %v -> %v", before, after)
	}
}

func TestNewScore(t *testing.T) {
	s := papuaStats()
	sc := New(LiteracyRate, s, 0.5)
	if sc.Label != "Tingkat Literasi" {
		t.Errorf("label = %q", sc.Label)
	}
	if sc.RawValue != "47.57%" {
		t.Errorf("raw value = %q, want 47.57%%", sc.RawValue)
	}
	if math.Abs(sc.Score+sc.Gap-1) > 1e-12 {
		t.Errorf("score + gap = %v, want 1", sc.Score+sc.Gap)
	}
	if sc.Weight != 0.5 {
		t.Errorf("weight = %v, want 0.5", sc.Weight)
	}
}

func TestRawValue(t *testing.T) {
	s := papuaStats()
	cases := map[Kind]string{
		HumanDevelopmentIndex: "73",
		FundingAdequacy:       "Rp 2100.0M",
		InfrastructureScore:   ComputedValue,
		PovertyIndex:          "18.09%",
	}
	for k, want := range cases {
		if got := RawValue(k, s); got != want {
			t.Errorf("RawValue(%s) = %q, want %q", k, got, want)
		}
	}
}

func TestParseList(t *testing.T) {
	got, err := ParseList("literacy_rate, Teacher_Ratio_Score,,")
	if err != nil {
		t.Fatalf("ParseList failed: %v", err)
	}
	if len(got) != 2 || got[0] != LiteracyRate || got[1] != TeacherRatioScore {
		t.Errorf("ParseList = %v", got)
	}

	if _, err := ParseList("literacy_rate,gdp"); err == nil {
		t.Error("expected error for unknown indicator")
	}

	empty, err := ParseList("")
	if err != nil || len(empty) != 0 {
		t.Errorf("ParseList(\"\") = %v, %v; want empty", empty, err)
	}
}

func TestAllKindsHaveLabelsAndTargets(t *testing.T) {
	if len(All()) != 9 {
		t.Fatalf("expected 9 indicators, got %d", len(All()))
	}
	for _, k := range All() {
		if Label(k) == string(k) {
			t.Errorf("%s has no label", k)
		}
		if Target(k) == "" {
			t.Errorf("%s has no target", k)
		}
	}
	for _, k := range DefaultSelection() {
		if !IsDefault(k) {
			t.Errorf("IsDefault(%s) = false", k)
		}
	}
}
