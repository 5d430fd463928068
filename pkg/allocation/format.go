package allocation

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatRupiah renders a currency amount the way the dashboard shows it,
// e.g. "Rp 2.146.315.789.474". NaN and infinities render as "N/A".
func FormatRupiah(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	n := int64(math.Round(v))
	if n < 0 {
		return "-Rp " + group(-n)
	}
	return "Rp " + group(n)
}

// FormatCount groups an integer with id-ID separators ("1.234.567").
func FormatCount(n int) string {
	return group(int64(n))
}

func group(n int64) string {
	return message.NewPrinter(language.Indonesian).Sprintf("%d", n)
}

// FormatShort abbreviates a rupiah amount: T (triliun), M (miliar), jt (juta).
func FormatShort(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	abs := math.Abs(v)
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("Rp %.1fT", v/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("Rp %.1fM", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("Rp %.1fjt", v/1e6)
	}
	return fmt.Sprintf("Rp %.0f", v)
}
