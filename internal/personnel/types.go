// Package personnel scores a roster against work requirements and assembles
// teams that cover a set of required roles.
package personnel

// Role is a person's function on a permit.
type Role string

const (
	RoleIssuer     Role = "issuer"
	RoleSupervisor Role = "supervisor"
	RoleForeman    Role = "foreman"
	RoleWorker     Role = "worker"
)

// Person is a roster entry. The matcher never modifies it.
type Person struct {
	ID                   string   `json:"id" yaml:"id"`
	Name                 string   `json:"name" yaml:"name"`
	Position             string   `json:"position" yaml:"position"`
	Role                 Role     `json:"role" yaml:"role"`
	DepartmentID         string   `json:"department_id,omitempty" yaml:"department_id,omitempty"`
	CustomDuties         []string `json:"custom_duties,omitempty" yaml:"custom_duties,omitempty"`
	CustomQualifications []string `json:"custom_qualifications,omitempty" yaml:"custom_qualifications,omitempty"`
	Email                string   `json:"email,omitempty" yaml:"email,omitempty"`
	Phone                string   `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// Request describes what the work needs. Empty fields are not scored.
type Request struct {
	Description  string   `json:"description"`
	Role         Role     `json:"role,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	DepartmentID string   `json:"department_id,omitempty"`
}

// Recommendation is a scored candidate. Every reason and warning corresponds
// to one score adjustment that was applied.
type Recommendation struct {
	Person   Person   `json:"person"`
	Score    float64  `json:"score"`
	Reasons  []string `json:"reasons"`
	Warnings []string `json:"warnings,omitempty"`
}

// Coverage lists what an assembled team brings.
type Coverage struct {
	Roles  []Role   `json:"roles"`
	Skills []string `json:"skills"`
}

// TeamSuggestion is the outcome of SuggestTeam.
type TeamSuggestion struct {
	Team            []Person `json:"team"`
	TotalScore      float64  `json:"total_score"`
	Coverage        Coverage `json:"coverage"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}
