package allocation

// Severity classifies a combined gap score for the province summary.
type Severity struct {
	Status      string `json:"status"`
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ClassifySeverity buckets a 0-100 gap score: >=80 critical, >=60 warning,
// >=40 moderate, otherwise excellent.
func ClassifySeverity(gapScore float64) Severity {
	switch {
	case gapScore >= 80:
		return Severity{
			Status: "critical",
			Label:  "Kritis",
			Title:  "Gap Tinggi - Kondisi Kritis",
			Description: "Provinsi mengalami gap pendidikan yang sangat tinggi. Terjadi ketertinggalan signifikan dalam rasio guru, " +
				"dan infrastruktur pendidikan. Perlu intervensi mendesak dan alokasi anggaran besar untuk memperbaiki kondisi ini.",
		}
	case gapScore >= 60:
		return Severity{
			Status: "warning",
			Label:  "Sedang",
			Title:  "Gap Sedang - Perlu Perhatian",
			Description: "Provinsi memiliki gap pendidikan yang sedang. Ada ketimpangan dalam distribusi guru, kualitas infrastruktur, " +
				"dan akses pendidikan. Diperlukan perbaikan bertahap dan monitoring yang ketat.",
		}
	case gapScore >= 40:
		return Severity{
			Status: "moderate",
			Label:  "Rendah",
			Title:  "Gap Rendah - Kondisi Baik",
			Description: "Provinsi memiliki gap pendidikan yang rendah. Rasio guru, infrastruktur, dan fasilitas pendidikan sudah cukup baik. " +
				"Perlu pemeliharaan dan peningkatan bertahap untuk mencapai standar optimal.",
		}
	}
	return Severity{
		Status: "excellent",
		Label:  "Minimal",
		Title:  "Gap Minimal - Kondisi Optimal",
		Description: "Provinsi memiliki gap pendidikan yang minimal. Rasio guru, infrastruktur, dan fasilitas pendidikan sudah optimal. " +
			"Fokus pada pemeliharaan kualitas dan inovasi pendidikan.",
	}
}

// Heatmap colours for a gap expressed as a fraction of 1.
const (
	ColorLow    = "#10B981"
	ColorMedium = "#F59E0B"
	ColorHigh   = "#EF4444"
)

// MapColor picks the choropleth colour for a gap fraction in [0,1].
func MapColor(gapFraction float64) string {
	switch {
	case gapFraction < 0.4:
		return ColorLow
	case gapFraction < 0.6:
		return ColorMedium
	}
	return ColorHigh
}
