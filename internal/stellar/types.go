// Package stellar composes the risk analyzer, anomaly detector, learned
// suggestions and personnel matcher into a single permit analysis.
package stellar

import (
	"context"
	"time"

	"github.com/stellar-ptw/stellar/internal/anomaly"
	"github.com/stellar-ptw/stellar/internal/personnel"
	"github.com/stellar-ptw/stellar/internal/risk"
	"github.com/stellar-ptw/stellar/internal/suggestions"
)

// LearningKey is the document key the learning snapshot is stored under.
const LearningKey = "stellar_ai_learning"

// SnapshotVersion is written into every exported snapshot.
const SnapshotVersion = "1.0"

// LearningStore persists documents by key. Get returns nil, nil when the key
// does not exist.
type LearningStore interface {
	GetDocument(ctx context.Context, key string) ([]byte, error)
	PutDocument(ctx context.Context, key string, value []byte) error
}

// Request is a permit draft plus the optional roster context. Draft files
// carry dates as strings; see LoadRequest.
type Request struct {
	Description         string    `json:"description" yaml:"description"`
	WorkType            string    `json:"work_type,omitempty" yaml:"work_type,omitempty"`
	Location            string    `json:"location,omitempty" yaml:"location,omitempty"`
	StartDate           time.Time `json:"start_date,omitzero" yaml:"-"`
	EndDate             time.Time `json:"end_date,omitzero" yaml:"-"`
	ResponsiblePersonID string    `json:"responsible_person_id,omitempty" yaml:"responsible_person_id,omitempty"`
	RequiredPPE         []string  `json:"required_ppe,omitempty" yaml:"required_ppe,omitempty"`
	SafetyMeasures      []string  `json:"safety_measures,omitempty" yaml:"safety_measures,omitempty"`

	RequiredRoles  []personnel.Role   `json:"required_roles,omitempty" yaml:"required_roles,omitempty"`
	RequiredSkills []string           `json:"required_skills,omitempty" yaml:"required_skills,omitempty"`
	DepartmentID   string             `json:"department_id,omitempty" yaml:"department_id,omitempty"`
	TeamSize       int                `json:"team_size,omitempty" yaml:"team_size,omitempty"`
	Roster         []personnel.Person `json:"roster,omitempty" yaml:"roster,omitempty"`
}

// Permit returns the fields the anomaly detector checks.
func (r Request) Permit() anomaly.PermitData {
	return anomaly.PermitData{
		Description:         r.Description,
		WorkType:            r.WorkType,
		Location:            r.Location,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		ResponsiblePersonID: r.ResponsiblePersonID,
		RequiredPPE:         r.RequiredPPE,
		SafetyMeasures:      r.SafetyMeasures,
	}
}

// ComprehensiveAnalysis is the merged result of every component.
type ComprehensiveAnalysis struct {
	Risk                     risk.Assessment                `json:"risk"`
	Quality                  anomaly.Report                 `json:"quality"`
	Autocomplete             suggestions.AutocompleteResult `json:"autocomplete"`
	PersonnelRecommendations []personnel.Recommendation     `json:"personnel_recommendations,omitempty"`
	Team                     *personnel.TeamSuggestion      `json:"team,omitempty"`
	Insights                 []string                       `json:"insights"`
}

// LearningSnapshot is the export envelope for learned templates.
type LearningSnapshot struct {
	Templates  []suggestions.WorkTemplate `json:"templates"`
	Version    string                     `json:"version"`
	ExportDate time.Time                  `json:"export_date"`
}

// Statistics summarizes the engine state.
type Statistics struct {
	Learning     suggestions.Stats `json:"learning"`
	PatternCount int               `json:"pattern_count"`
}
