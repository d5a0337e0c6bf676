package watcher

import (
	"testing"

	"github.com/stellar-ptw/stellar/internal/risk"
)

func state(level risk.Level, score float64, valid bool, issues ...string) *State {
	return &State{Level: level, RiskScore: score, QualityScore: 100 - 30*float64(len(issues)), Valid: valid, Issues: issues}
}

func TestCompare_NoChanges(t *testing.T) {
	prev := state(risk.LevelMedium, 45, true)
	curr := state(risk.LevelMedium, 45, true)

	alerts := Compare(prev, curr)
	if len(alerts) != 0 {
		t.Errorf("expected 0 alerts for identical states, got %d", len(alerts))
		for _, a := range alerts {
			t.Logf("  [%s] %s: %s", a.Level, a.Title, a.Message)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr *State
		want       []string // "level:title"
	}{
		{
			name: "escalation to high",
			prev: state(risk.LevelLow, 20, true),
			curr: state(risk.LevelHigh, 70, true),
			want: []string{"critical:Risk escalated: high"},
		},
		{
			name: "escalation to medium",
			prev: state(risk.LevelLow, 20, true),
			curr: state(risk.LevelMedium, 45, true),
			want: []string{"warning:Risk increased: medium"},
		},
		{
			name: "standing high-risk invalid",
			prev: state(risk.LevelCritical, 96, false, "safety_measures"),
			curr: state(risk.LevelCritical, 96, false, "safety_measures"),
			want: []string{"critical:High-risk permit is invalid"},
		},
		{
			name: "became invalid with new issue",
			prev: state(risk.LevelLow, 20, true),
			curr: state(risk.LevelLow, 20, false, "end_date"),
			want: []string{"warning:Permit became invalid", "warning:New issue: end_date"},
		},
		{
			name: "risk reduced and fixed",
			prev: state(risk.LevelHigh, 70, false, "required_ppe"),
			curr: state(risk.LevelMedium, 45, true),
			want: []string{"info:Risk reduced: medium", "info:Permit is valid", "info:Issue resolved: required_ppe"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			alerts := Compare(tc.prev, tc.curr)
			if len(alerts) != len(tc.want) {
				t.Fatalf("expected %d alerts, got %d: %v", len(tc.want), len(alerts), titles(alerts))
			}
			for i, a := range alerts {
				if got := a.Level + ":" + a.Title; got != tc.want[i] {
					t.Errorf("alert %d: expected %q, got %q", i, tc.want[i], got)
				}
			}
		})
	}
}

func TestCompare_IssueMessageUsesReason(t *testing.T) {
	prev := state(risk.LevelLow, 20, true)
	curr := state(risk.LevelLow, 20, false, "end_date")
	curr.Analysis = analysis(risk.LevelLow, 20, false, "end_date")

	for _, a := range Compare(prev, curr) {
		if a.Title == "New issue: end_date" && a.Message != "problem with end_date" {
			t.Errorf("expected anomaly reason as message, got %q", a.Message)
		}
	}
}
