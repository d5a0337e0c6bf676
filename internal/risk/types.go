// Package risk scores free-text work descriptions against a table of
// keyword risk patterns and aggregates the best matches into a single
// risk assessment.
package risk

import "github.com/stellar-ptw/stellar/internal/lang"

// Level is a risk severity bracket.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// Pattern maps keyword presence to a hazard profile. Keywords are lowercase
// substrings; duplicates are allowed and increase the match weight.
type Pattern struct {
	ID             string        `json:"id" yaml:"id"`
	Keywords       []string      `json:"keywords" yaml:"keywords"`
	Level          Level         `json:"risk_level" yaml:"risk_level"`
	BaseScore      float64       `json:"base_score" yaml:"base_score"`
	Hazards        lang.TextList `json:"hazards" yaml:"hazards"`
	RequiredPPE    lang.TextList `json:"required_ppe" yaml:"required_ppe"`
	SafetyMeasures lang.TextList `json:"safety_measures" yaml:"safety_measures"`
}

// Assessment is the aggregated result of an analysis. It is derived fresh
// on every call.
type Assessment struct {
	Level           Level    `json:"level"`
	Score           float64  `json:"score"`
	Hazards         []string `json:"hazards"`
	RequiredPPE     []string `json:"required_ppe"`
	SafetyMeasures  []string `json:"safety_measures"`
	Recommendations []string `json:"recommendations"`
	Confidence      float64  `json:"confidence"`

	// MatchedPatterns lists the IDs of the top matches, best first.
	MatchedPatterns []string `json:"matched_patterns"`
}

// Match is a pattern together with its score against a given text.
type Match struct {
	Pattern Pattern
	Score   float64
	Hits    int
}
