package allocation

import (
	"math"
	"testing"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rp 0"},
		{999, "Rp 999"},
		{1_234_567, "Rp 1.234.567"},
		{2_146_315_789_474.4, "Rp 2.146.315.789.474"},
		{-3_000_000_000, "-Rp 3.000.000.000"},
		{math.NaN(), "N/A"},
		{math.Inf(1), "N/A"},
	}
	for _, tc := range cases {
		if got := FormatRupiah(tc.in); got != tc.want {
			t.Errorf("FormatRupiah(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(161012); got != "161.012" {
		t.Errorf("FormatCount = %q, want 161.012", got)
	}
}

func TestFormatShort(t *testing.T) {
	cases := map[float64]string{
		81.7e12: "Rp 81.7T",
		3e9:     "Rp 3.0M",
		6e8:     "Rp 600.0jt",
		500:     "Rp 500",
	}
	for in, want := range cases {
		if got := FormatShort(in); got != want {
			t.Errorf("FormatShort(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestClassifySeverity(t *testing.T) {
	cases := []struct {
		gap  float64
		want string
	}{
		{94, "critical"},
		{80, "critical"},
		{79.9, "warning"},
		{60, "warning"},
		{40, "moderate"},
		{39.99, "excellent"},
		{0, "excellent"},
	}
	for _, tc := range cases {
		s := ClassifySeverity(tc.gap)
		if s.Status != tc.want {
			t.Errorf("ClassifySeverity(%v) = %s, want %s", tc.gap, s.Status, tc.want)
		}
		if s.Label == "" || s.Title == "" || s.Description == "" {
			t.Errorf("ClassifySeverity(%v) has empty text fields", tc.gap)
		}
	}
}

func TestMapColor(t *testing.T) {
	cases := []struct {
		gap  float64
		want string
	}{
		{0.1, ColorLow},
		{0.39, ColorLow},
		{0.4, ColorMedium},
		{0.59, ColorMedium},
		{0.6, ColorHigh},
		{0.94, ColorHigh},
	}
	for _, tc := range cases {
		if got := MapColor(tc.gap); got != tc.want {
			t.Errorf("MapColor(%v) = %s, want %s", tc.gap, got, tc.want)
		}
	}
}
