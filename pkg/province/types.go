package province

// Statistics is the education data record for one province, shaped like the
// upstream provinces API.
type Statistics struct {
	ProvinceID     string         `yaml:"province_id" json:"province_id" bson:"province_id"`
	Province       Info           `yaml:"provinces" json:"provinces" bson:"provinces"`
	Infrastructure Infrastructure `yaml:"infrastructure" json:"infrastructure" bson:"infrastructure"`
	Workers        Workers        `yaml:"workers" json:"workers" bson:"workers"`
	Funding        float64        `yaml:"funding" json:"funding" bson:"funding"`
	Social         Social         `yaml:"social" json:"social" bson:"social"`
	Total          Total          `yaml:"total" json:"total" bson:"total"`
	GapScore       float64        `yaml:"gap_score,omitempty" json:"gap_score,omitempty" bson:"gap_score,omitempty"`
}

type Info struct {
	ID   string `yaml:"id" json:"id" bson:"id"`
	Name string `yaml:"name" json:"name" bson:"name"`
}

// Level is a head count at one education level.
// Higher education reports Official instead of SpecialNeeds.
type Level struct {
	Total        int `yaml:"total" json:"total" bson:"total"`
	Public       int `yaml:"public" json:"public" bson:"public"`
	Private      int `yaml:"private" json:"private" bson:"private"`
	SpecialNeeds int `yaml:"special_needs,omitempty" json:"special_needs,omitempty" bson:"special_needs,omitempty"`
	Official     int `yaml:"official,omitempty" json:"official,omitempty" bson:"official,omitempty"`
}

type Levels struct {
	Elementary      Level `yaml:"elementary" json:"elementary" bson:"elementary"`
	JuniorHigh      Level `yaml:"junior_high" json:"junior_high" bson:"junior_high"`
	SeniorHigh      Level `yaml:"senior_high" json:"senior_high" bson:"senior_high"`
	HigherEducation Level `yaml:"higher_education" json:"higher_education" bson:"higher_education"`
}

// Basic returns the elementary, junior high and senior high levels.
func (l Levels) Basic() [3]Level {
	return [3]Level{l.Elementary, l.JuniorHigh, l.SeniorHigh}
}

// All returns every level including higher education.
func (l Levels) All() [4]Level {
	return [4]Level{l.Elementary, l.JuniorHigh, l.SeniorHigh, l.HigherEducation}
}

type Infrastructure struct {
	Ratios   map[string]string `yaml:"ratios,omitempty" json:"ratios,omitempty" bson:"ratios,omitempty"`
	Schools  Levels            `yaml:"schools" json:"schools" bson:"schools"`
	Students Levels            `yaml:"students" json:"students" bson:"students"`
}

type Workers struct {
	Ratios   map[string]string `yaml:"ratios,omitempty" json:"ratios,omitempty" bson:"ratios,omitempty"`
	Teachers Levels            `yaml:"teachers" json:"teachers" bson:"teachers"`
}

// Social holds the percentage-scale socio-educational indicators.
type Social struct {
	LiteracyRate            float64 `yaml:"literacy_rate" json:"literacy_rate" bson:"literacy_rate"`
	PovertyIndex            float64 `yaml:"poverty_index" json:"poverty_index" bson:"poverty_index"`
	HumanDevelopmentIndex   float64 `yaml:"human_development_index" json:"human_development_index" bson:"human_development_index"`
	EducationCompletionRate float64 `yaml:"education_completion_rate" json:"education_completion_rate" bson:"education_completion_rate"`
	SchoolParticipationRate float64 `yaml:"school_participation_rate" json:"school_participation_rate" bson:"school_participation_rate"`
}

// Total is the flat aggregate across all education levels.
type Total struct {
	Students int `yaml:"students" json:"students" bson:"students"`
	Schools  int `yaml:"schools" json:"schools" bson:"schools"`
	Teachers int `yaml:"teachers" json:"teachers" bson:"teachers"`
}

// Name returns the province display name.
func (s *Statistics) Name() string {
	return s.Province.Name
}

// Slug returns the URL key for the province.
func (s *Statistics) Slug() string {
	return Slug(s.Province.Name)
}
