// Package timeline narrates the 36-month intervention programme and the
// quarterly heatmap intensity schedule that accompanies it.
package timeline

// Programme bounds. Month 1 is January 2022.
const (
	FirstMonth = 1
	LastMonth  = 36
	StartYear  = 2022
)

type Phase string

const (
	PhaseBaseline       Phase = "baseline"
	PhasePlanning       Phase = "planning"
	PhaseEarly          Phase = "early"
	PhaseAccelerated    Phase = "accelerated"
	PhaseTransformation Phase = "transformation"
)

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Narration describes the programme state at one month.
type Narration struct {
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	MonthName   string `json:"month_name"`
	Phase       Phase  `json:"phase"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Trend       Trend  `json:"trend"`
}

type milestone struct {
	start int
	phase Phase
	title string
	trend Trend
}

// milestones are ordered by start month; a month takes the last one that
// has already started.
var milestones = []milestone{
	{1, PhaseBaseline, "Baseline Assessment - Critical Situation", TrendDown},
	{2, PhaseBaseline, "Initial Data Collection", TrendDown},
	{3, PhaseBaseline, "Problem Identification", TrendDown},
	{4, PhasePlanning, "Intervention Planning Phase", TrendDown},
	{5, PhasePlanning, "Resource Allocation", TrendDown},
	{6, PhasePlanning, "Early Implementation Preparation", TrendUp},
	{7, PhaseEarly, "Initial Intervention Deployment", TrendUp},
	{12, PhaseEarly, "First Quarter Results", TrendUp},
	{18, PhaseEarly, "Early Positive Indicators", TrendUp},
	{24, PhaseAccelerated, "Significant Improvement Phase", TrendUp},
	{30, PhaseAccelerated, "Sustained Positive Trends", TrendUp},
	{33, PhaseTransformation, "Educational Transformation", TrendUp},
	{36, PhaseTransformation, "Comprehensive Success", TrendUp},
}

var phaseDescriptions = map[Phase]string{
	PhaseBaseline: "High-intensity red zones dominate the landscape, indicating critical educational gaps requiring " +
		"immediate intervention. Assessment reveals significant disparities in educational quality, infrastructure, " +
		"and access across the province.",
	PhasePlanning: "Strategic planning and resource mobilization phase shows continued challenges while preparing " +
		"comprehensive intervention strategies. Initial groundwork being laid for systematic educational improvements.",
	PhaseEarly: "First signs of improvement emerge as targeted interventions begin implementation. Orange and yellow " +
		"zones start appearing, indicating early positive responses to educational reforms and infrastructure development.",
	PhaseAccelerated: "Notable progress accelerates across multiple districts with expanding yellow and light green " +
		"zones. Community engagement programs and digital learning initiatives show measurable positive impact on " +
		"educational outcomes.",
	PhaseTransformation: "Remarkable transformation with predominantly green zones indicating successful intervention " +
		"outcomes. Comprehensive improvements in educational quality, accessibility, and equity demonstrate the lasting " +
		"impact of sustained reform efforts.",
}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ClampMonth limits a month to the programme range.
func ClampMonth(month int) int {
	return min(max(month, FirstMonth), LastMonth)
}

// Narrate returns the narration for a month, clamped to [1, 36].
func Narrate(month int) Narration {
	m := ClampMonth(month)

	current := milestones[0]
	for _, ms := range milestones {
		if m >= ms.start {
			current = ms
		}
	}

	return Narration{
		Month:       m,
		Year:        StartYear + (m-1)/12,
		MonthName:   monthNames[(m-1)%12],
		Phase:       current.phase,
		Title:       current.title,
		Description: phaseDescriptions[current.phase],
		Trend:       current.trend,
	}
}

// Schedule narrates every month of the programme in order.
func Schedule() []Narration {
	out := make([]Narration, 0, LastMonth)
	for m := FirstMonth; m <= LastMonth; m++ {
		out = append(out, Narrate(m))
	}
	return out
}
