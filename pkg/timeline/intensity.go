package timeline

import "math"

// Heatmap schedule bounds: intensity falls from 100 to 10 over 20 steps.
const (
	FirstQuarter = 1
	LastQuarter  = 21

	startOpacity = 0.7
	endOpacity   = 0.2
)

// Level is the heatmap styling for one quarter.
type Level struct {
	Quarter  int     `json:"quarter"`
	Base     int     `json:"base"`
	Variance int     `json:"variance"`
	Opacity  float64 `json:"min_opacity"`
}

// ClampQuarter limits a quarter to the heatmap schedule.
func ClampQuarter(q int) int {
	return min(max(q, FirstQuarter), LastQuarter)
}

// Intensity returns the base intensity and variance for a quarter. Both
// decrease linearly: base from 100 by 4.5 per quarter with a floor of 10,
// variance from 25 by 1 per quarter with a floor of 5.
func Intensity(quarter int) Level {
	q := ClampQuarter(quarter)
	step := float64(q - 1)

	base := math.Max(10, 100-step*(90.0/20))
	variance := math.Max(5, 25-step*(20.0/20))
	opacity := startOpacity - step/float64(LastQuarter-FirstQuarter)*(startOpacity-endOpacity)

	return Level{
		Quarter:  q,
		Base:     int(math.Round(base)),
		Variance: int(math.Round(variance)),
		Opacity:  math.Round(opacity*1000) / 1000,
	}
}

// Points returns n deterministic point intensities for a quarter. Point i
// always gets the same jitter within the quarter's variance band, so points
// fade consistently as the quarter advances. No intensity falls below 10.
func Points(quarter, n int) []float64 {
	lv := Intensity(quarter)
	out := make([]float64, max(0, n))
	for i := range out {
		seed := (12345 + i*67) % 233280
		seed = (seed*9301 + 49297) % 233280
		jitter := (float64(seed)/233280 - 0.5) * float64(lv.Variance)
		out[i] = math.Max(10, float64(lv.Base)+jitter)
	}
	return out
}
