// Package anomaly validates permit and personnel records against a fixed
// checklist of data-quality rules and produces a 0-100 quality report.
package anomaly

import (
	"time"

	"github.com/stellar-ptw/stellar/internal/lang"
)

// Severity of an anomaly. Only high-severity anomalies invalidate a record.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// PermitData is the permit metadata inspected by the permit checklist.
// Zero times mean the date was not supplied.
type PermitData struct {
	Description         string    `json:"description"`
	WorkType            string    `json:"work_type,omitempty"`
	Location            string    `json:"location"`
	StartDate           time.Time `json:"start_date"`
	EndDate             time.Time `json:"end_date"`
	ResponsiblePersonID string    `json:"responsible_person_id"`
	RequiredPPE         []string  `json:"required_ppe"`
	SafetyMeasures      []string  `json:"safety_measures"`
}

// PersonData is the personnel record inspected by the personnel checklist.
type PersonData struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Position string `json:"position,omitempty"`
}

// Anomaly is a single data-quality finding.
type Anomaly struct {
	Field      string   `json:"field"`
	Value      string   `json:"value"`
	Severity   Severity `json:"severity"`
	Reason     string   `json:"reason"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Report is the result of a checklist run.
type Report struct {
	IsValid         bool      `json:"is_valid"`
	Score           float64   `json:"score"`
	Anomalies       []Anomaly `json:"anomalies"`
	Warnings        []string  `json:"warnings"`
	Recommendations []string  `json:"recommendations"`
}

// Finding is what a rule reports: either an anomaly or a plain warning,
// plus the score deduction it carries.
type Finding struct {
	Anomaly   *Anomaly
	Warning   string
	Deduction float64
}

// PermitContext is the input handed to permit rules.
type PermitContext struct {
	Permit PermitData
	Lang   lang.Language
	Now    time.Time

	// Dangerous reports whether the description mentions a dangerous
	// activity stem.
	Dangerous bool
}

// PersonContext is the input handed to personnel rules.
type PersonContext struct {
	Person PersonData
	Lang   lang.Language
}

// PermitRule examines a permit and returns zero or more findings.
type PermitRule func(ctx *PermitContext) []Finding

// PersonRule examines a personnel record and returns zero or more findings.
type PersonRule func(ctx *PersonContext) []Finding
