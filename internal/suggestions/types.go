// Package suggestions learns work templates from completed permits and uses
// them for autocomplete and "similar work" lookups.
package suggestions

// Capacity is the maximum number of templates kept. When exceeded, the least
// frequently used templates are evicted.
const Capacity = 100

// Field selects which template attribute a suggestion query compares against.
type Field string

const (
	FieldDescription Field = "description"
	FieldWorkType    Field = "work_type"
	FieldLocation    Field = "location"
)

// WorkTemplate is a learned summary of previously seen work.
type WorkTemplate struct {
	WorkType       string   `json:"work_type" yaml:"work_type"`
	Description    string   `json:"description" yaml:"description"`
	Location       string   `json:"location,omitempty" yaml:"location,omitempty"`
	Duration       float64  `json:"duration,omitempty" yaml:"duration,omitempty"` // hours, 0 when unknown
	RequiredPPE    []string `json:"required_ppe" yaml:"required_ppe"`
	SafetyMeasures []string `json:"safety_measures" yaml:"safety_measures"`
	Workers        int      `json:"workers,omitempty" yaml:"workers,omitempty"`
	Frequency      int      `json:"frequency" yaml:"frequency"`
}

// WorkData describes a completed piece of work fed to Learn.
type WorkData struct {
	WorkType       string   `json:"work_type" yaml:"work_type"`
	Description    string   `json:"description" yaml:"description"`
	Location       string   `json:"location,omitempty" yaml:"location,omitempty"`
	Duration       float64  `json:"duration,omitempty" yaml:"duration,omitempty"`
	RequiredPPE    []string `json:"required_ppe,omitempty" yaml:"required_ppe,omitempty"`
	SafetyMeasures []string `json:"safety_measures,omitempty" yaml:"safety_measures,omitempty"`
	Workers        int      `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// Match pairs a template with its similarity to a query.
type Match struct {
	Template   WorkTemplate `json:"template"`
	Similarity float64      `json:"similarity"`
	Score      float64      `json:"score"`
}

// AutocompleteResult is derived from the closest learned templates.
// A zero Confidence means nothing similar enough was found.
type AutocompleteResult struct {
	SuggestedPPE      []string       `json:"suggested_ppe"`
	SuggestedMeasures []string       `json:"suggested_measures"`
	EstimatedDuration float64        `json:"estimated_duration,omitempty"`
	EstimatedWorkers  int            `json:"estimated_workers,omitempty"`
	SimilarWorks      []WorkTemplate `json:"similar_works"`
	Confidence        float64        `json:"confidence"`
	Hint              string         `json:"hint,omitempty"`
}

// Stats summarizes the template set.
type Stats struct {
	TotalTemplates   int           `json:"total_templates"`
	TotalUsage       int           `json:"total_usage"`
	AverageFrequency float64       `json:"average_frequency"`
	MostPopular      *WorkTemplate `json:"most_popular,omitempty"`
}
