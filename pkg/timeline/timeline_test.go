package timeline

import (
	"math"
	"testing"
)

func TestNarrate(t *testing.T) {
	cases := []struct {
		month int
		year  int
		name  string
		phase Phase
		title string
		trend Trend
	}{
		{1, 2022, "Jan", PhaseBaseline, "Baseline Assessment - Critical Situation", TrendDown},
		{6, 2022, "Jun", PhasePlanning, "Early Implementation Preparation", TrendUp},
		{11, 2022, "Nov", PhaseEarly, "Initial Intervention Deployment", TrendUp},
		{12, 2022, "Dec", PhaseEarly, "First Quarter Results", TrendUp},
		{13, 2023, "Jan", PhaseEarly, "First Quarter Results", TrendUp},
		{23, 2023, "Nov", PhaseEarly, "Early Positive Indicators", TrendUp},
		{24, 2023, "Dec", PhaseAccelerated, "Significant Improvement Phase", TrendUp},
		{32, 2024, "Aug", PhaseAccelerated, "Sustained Positive Trends", TrendUp},
		{35, 2024, "Nov", PhaseTransformation, "Educational Transformation", TrendUp},
		{36, 2024, "Dec", PhaseTransformation, "Comprehensive Success", TrendUp},
	}
	for _, tc := range cases {
		n := Narrate(tc.month)
		if n.Year != tc.year || n.MonthName != tc.name {
			t.Errorf("Narrate(%d) date = %s %d, want %s %d", tc.month, n.MonthName, n.Year, tc.name, tc.year)
		}
		if n.Phase != tc.phase || n.Title != tc.title || n.Trend != tc.trend {
			t.Errorf("Narrate(%d) = %s/%q/%s, want %s/%q/%s", tc.month, n.Phase, n.Title, n.Trend,
				tc.phase, tc.title, tc.trend)
		}
		if n.Description != phaseDescriptions[tc.phase] {
			t.Errorf("Narrate(%d) description does not match phase %s", tc.month, tc.phase)
		}
	}
}

func TestNarrateClamps(t *testing.T) {
	if n := Narrate(0); n.Month != 1 || n.Phase != PhaseBaseline {
		t.Errorf("Narrate(0) = month %d phase %s, want 1 baseline", n.Month, n.Phase)
	}
	if n := Narrate(-4); n.Month != 1 {
		t.Errorf("Narrate(-4).Month = %d, want 1", n.Month)
	}
	if n := Narrate(99); n.Month != 36 || n.Year != 2024 {
		t.Errorf("Narrate(99) = month %d year %d, want 36 2024", n.Month, n.Year)
	}
}

func TestSchedule(t *testing.T) {
	s := Schedule()
	if len(s) != 36 {
		t.Fatalf("len(Schedule()) = %d, want 36", len(s))
	}
	for i, n := range s {
		if n.Month != i+1 {
			t.Errorf("Schedule()[%d].Month = %d", i, n.Month)
		}
	}
	for _, n := range s {
		if n.Description == "" {
			t.Errorf("month %d has no description", n.Month)
		}
	}
}

func TestIntensity(t *testing.T) {
	cases := []struct {
		quarter  int
		base     int
		variance int
	}{
		{1, 100, 25},
		{2, 96, 24}, // 95.5 rounds up
		{11, 55, 15},
		{21, 10, 5},
		{0, 100, 25},
		{40, 10, 5},
	}
	for _, tc := range cases {
		lv := Intensity(tc.quarter)
		if lv.Base != tc.base || lv.Variance != tc.variance {
			t.Errorf("Intensity(%d) = %d/%d, want %d/%d", tc.quarter, lv.Base, lv.Variance, tc.base, tc.variance)
		}
	}

	if got := Intensity(1).Opacity; math.Abs(got-0.7) > 1e-9 {
		t.Errorf("Intensity(1).Opacity = %v, want 0.7", got)
	}
	if got := Intensity(21).Opacity; math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Intensity(21).Opacity = %v, want 0.2", got)
	}
}

func TestIntensityNonIncreasing(t *testing.T) {
	prev := Intensity(FirstQuarter)
	for q := FirstQuarter + 1; q <= LastQuarter; q++ {
		lv := Intensity(q)
		if lv.Base > prev.Base || lv.Variance > prev.Variance || lv.Opacity > prev.Opacity {
			t.Errorf("quarter %d (%+v) increased over %+v", q, lv, prev)
		}
		prev = lv
	}
}

func TestPoints(t *testing.T) {
	a := Points(3, 45)
	b := Points(3, 45)
	if len(a) != 45 {
		t.Fatalf("len = %d, want 45", len(a))
	}
	lv := Intensity(3)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d not deterministic: %v vs %v", i, a[i], b[i])
		}
		if a[i] < 10 {
			t.Errorf("point %d intensity %v below floor", i, a[i])
		}
		if math.Abs(a[i]-float64(lv.Base)) > float64(lv.Variance)/2 {
			t.Errorf("point %d intensity %v outside band of %d±%d", i, a[i], lv.Base, lv.Variance/2)
		}
	}
	if got := Points(1, -1); len(got) != 0 {
		t.Errorf("Points(1, -1) = %v, want empty", got)
	}
}
