package anomaly

import (
	"time"

	"github.com/stellar-ptw/stellar/internal/lang"
	"github.com/stellar-ptw/stellar/internal/textsim"
)

const startScore = 100

// Detector runs the registered permit and personnel rules. It holds no
// mutable state and is safe for concurrent use.
type Detector struct {
	permitRules []PermitRule
	personRules []PersonRule
	now         func() time.Time
}

// NewDetector creates a detector with all built-in rules registered.
func NewDetector() *Detector {
	return NewDetectorWithClock(time.Now)
}

// NewDetectorWithClock creates a detector whose notion of "now" comes from
// now. Used to make date rules deterministic.
func NewDetectorWithClock(now func() time.Time) *Detector {
	return &Detector{
		permitRules: []PermitRule{
			ShortDescription,
			GenericDescription,
			DangerousWithoutMeasures,
			Dates,
			Location,
			ResponsiblePerson,
			PPE,
		},
		personRules: []PersonRule{
			Name,
			Email,
			Phone,
		},
		now: now,
	}
}

// CheckPermitData runs the permit checklist.
func (d *Detector) CheckPermitData(p PermitData, l lang.Language) Report {
	ctx := &PermitContext{
		Permit:    p,
		Lang:      l,
		Now:       d.now(),
		Dangerous: IsDangerous(p.Description),
	}
	var findings []Finding
	for _, rule := range d.permitRules {
		findings = append(findings, rule(ctx)...)
	}
	return buildReport(findings, l)
}

// CheckPersonnelData runs the personnel checklist.
func (d *Detector) CheckPersonnelData(p PersonData, l lang.Language) Report {
	ctx := &PersonContext{Person: p, Lang: l}
	var findings []Finding
	for _, rule := range d.personRules {
		findings = append(findings, rule(ctx)...)
	}
	return buildReport(findings, l)
}

// buildReport deducts every finding from a starting score of 100 and
// collects anomalies, warnings and the suggestions they carry.
func buildReport(findings []Finding, l lang.Language) Report {
	report := Report{
		IsValid:   true,
		Anomalies: []Anomaly{},
		Warnings:  []string{},
	}
	score := float64(startScore)
	var suggestions []string
	for _, f := range findings {
		score -= f.Deduction
		if f.Warning != "" {
			report.Warnings = append(report.Warnings, f.Warning)
		}
		if f.Anomaly == nil {
			continue
		}
		report.Anomalies = append(report.Anomalies, *f.Anomaly)
		if f.Anomaly.Severity == SeverityHigh {
			report.IsValid = false
		}
		if f.Anomaly.Suggestion != "" {
			suggestions = textsim.Union(suggestions, []string{f.Anomaly.Suggestion})
		}
	}
	report.Score = textsim.Clamp(score, 0, 100)
	report.Recommendations = append(suggestions, banner(report.Score).For(l))
	return report
}

func anomalyFinding(field, value string, sev Severity, msg message, l lang.Language, deduction float64) Finding {
	return Finding{
		Anomaly: &Anomaly{
			Field:      field,
			Value:      value,
			Severity:   sev,
			Reason:     msg.reason.For(l),
			Suggestion: msg.suggestion.For(l),
		},
		Deduction: deduction,
	}
}
