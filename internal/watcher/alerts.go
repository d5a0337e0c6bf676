package watcher

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/stellar-ptw/stellar/internal/risk"
)

var levelRank = map[risk.Level]int{
	risk.LevelLow:      0,
	risk.LevelMedium:   1,
	risk.LevelHigh:     2,
	risk.LevelCritical: 3,
}

// Compare detects notable changes between two states and returns alerts,
// most severe first.
func Compare(prev, curr *State) []Alert {
	var alerts []Alert

	alerts = append(alerts, compareCritical(prev, curr)...)
	alerts = append(alerts, compareWarning(prev, curr)...)
	alerts = append(alerts, compareInfo(prev, curr)...)

	return alerts
}

func compareCritical(prev, curr *State) []Alert {
	var alerts []Alert
	now := time.Now()

	// Escalation into high or critical.
	if levelRank[curr.Level] > levelRank[prev.Level] && levelRank[curr.Level] >= levelRank[risk.LevelHigh] {
		alerts = append(alerts, Alert{
			Level:   "critical",
			Title:   fmt.Sprintf("Risk escalated: %s", curr.Level),
			Message: fmt.Sprintf("Risk score %.0f (was %.0f, %s)", curr.RiskScore, prev.RiskScore, prev.Level),
			Time:    now,
		})
	}

	// High-risk draft that is also invalid, whatever it was before.
	if levelRank[curr.Level] >= levelRank[risk.LevelHigh] && !curr.Valid {
		alerts = append(alerts, Alert{
			Level:   "critical",
			Title:   "High-risk permit is invalid",
			Message: fmt.Sprintf("%d blocking issue(s): %s", len(curr.Issues), strings.Join(curr.Issues, ", ")),
			Time:    now,
		})
	}

	return alerts
}

func compareWarning(prev, curr *State) []Alert {
	var alerts []Alert
	now := time.Now()

	if prev.Valid && !curr.Valid {
		alerts = append(alerts, Alert{
			Level:   "warning",
			Title:   "Permit became invalid",
			Message: fmt.Sprintf("Quality score %.0f (was %.0f)", curr.QualityScore, prev.QualityScore),
			Time:    now,
		})
	}

	for _, field := range curr.Issues {
		if !slices.Contains(prev.Issues, field) {
			alerts = append(alerts, Alert{
				Level:   "warning",
				Title:   fmt.Sprintf("New issue: %s", field),
				Message: issueMessage(curr, field),
				Time:    now,
			})
		}
	}

	// Medium escalations; high and critical are reported above.
	if levelRank[curr.Level] > levelRank[prev.Level] && curr.Level == risk.LevelMedium {
		alerts = append(alerts, Alert{
			Level:   "warning",
			Title:   "Risk increased: medium",
			Message: fmt.Sprintf("Risk score %.0f (was %.0f)", curr.RiskScore, prev.RiskScore),
			Time:    now,
		})
	}

	return alerts
}

func compareInfo(prev, curr *State) []Alert {
	var alerts []Alert
	now := time.Now()

	if levelRank[curr.Level] < levelRank[prev.Level] {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   fmt.Sprintf("Risk reduced: %s", curr.Level),
			Message: fmt.Sprintf("Risk score %.0f (was %.0f, %s)", curr.RiskScore, prev.RiskScore, prev.Level),
			Time:    now,
		})
	}

	if !prev.Valid && curr.Valid {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Permit is valid",
			Message: fmt.Sprintf("Quality score %.0f", curr.QualityScore),
			Time:    now,
		})
	}

	for _, field := range prev.Issues {
		if !slices.Contains(curr.Issues, field) {
			alerts = append(alerts, Alert{
				Level:   "info",
				Title:   fmt.Sprintf("Issue resolved: %s", field),
				Message: fmt.Sprintf("Quality score %.0f (was %.0f)", curr.QualityScore, prev.QualityScore),
				Time:    now,
			})
		}
	}

	return alerts
}

// issueMessage returns the localized reason recorded for field.
func issueMessage(s *State, field string) string {
	for _, a := range s.Analysis.Quality.Anomalies {
		if a.Field == field {
			return a.Reason
		}
	}
	return field
}
