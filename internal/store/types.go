// Package store provides SQLite persistence for learned templates and the
// history of permit analyses.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous is returned when an ID prefix matches several records.
var ErrAmbiguous = errors.New("ambiguous id prefix")

// Analysis sources.
const (
	SourceCLI   = "cli"
	SourceWatch = "watch"
	SourceMCP   = "mcp"
)

// Analysis is one stored permit analysis. Payload holds the full analysis
// as JSON.
type Analysis struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Source       string    `json:"source"`
	Description  string    `json:"description"`
	RiskLevel    string    `json:"risk_level"`
	RiskScore    float64   `json:"risk_score"`
	QualityScore float64   `json:"quality_score"`
	IsValid      bool      `json:"is_valid"`
	Payload      []byte    `json:"-"`
}
