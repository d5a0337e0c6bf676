package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar-ptw/stellar/internal/anomaly"
	"github.com/stellar-ptw/stellar/internal/lang"
	"github.com/stellar-ptw/stellar/internal/personnel"
	"github.com/stellar-ptw/stellar/internal/risk"
	"github.com/stellar-ptw/stellar/internal/stellar"
	"github.com/stellar-ptw/stellar/internal/store"
)

var testRoster = []personnel.Person{
	{ID: "1", Name: "Ivan Petrov", Position: "Senior welder", Role: personnel.RoleWorker, DepartmentID: "d1",
		CustomDuties: []string{"welding of pipelines"}, CustomQualifications: []string{"welding", "gas cutting"}},
	{ID: "2", Name: "Anna Sidorova", Position: "Foreman", Role: personnel.RoleForeman, DepartmentID: "d1"},
	{ID: "3", Name: "Oleg Ivanov", Position: "Fitter", Role: personnel.RoleWorker, DepartmentID: "d2",
		CustomQualifications: []string{"welding"}},
	{ID: "4", Name: "Maria Kuznetsova", Position: "Site supervisor", Role: personnel.RoleSupervisor, DepartmentID: "d1"},
}

type recordingHistory struct {
	saved []*store.Analysis
}

func (r *recordingHistory) SaveAnalysis(_ context.Context, a *store.Analysis) (string, error) {
	r.saved = append(r.saved, a)
	return "id", nil
}

func newTestServer(history HistoryRecorder) *Server {
	return NewServer(Options{
		Engine:   stellar.New(stellar.Options{}),
		Roster:   testRoster,
		Language: lang.EN,
		History:  history,
	})
}

// callTool invokes a registered handler by name, bypassing JSON-RPC framing.
func callTool(t *testing.T, s *Server, name, args string) (any, error) {
	t.Helper()
	for _, tool := range s.tools {
		if tool.Name == name {
			return tool.Handler(context.Background(), json.RawMessage(args))
		}
	}
	t.Fatalf("tool %s not registered", name)
	return nil, nil
}

func TestAnalyzeWork(t *testing.T) {
	history := &recordingHistory{}
	s := newTestServer(history)

	got, err := callTool(t, s, "analyze_work", `{
		"description": "welding of pipelines in the tunnel",
		"start_date": "2025-06-01",
		"end_date": "2025-06-01T18:00:00Z",
		"required_roles": ["foreman", "worker"],
		"team_size": 2
	}`)
	require.NoError(t, err)

	a, ok := got.(stellar.ComprehensiveAnalysis)
	require.True(t, ok)
	assert.Equal(t, risk.LevelCritical, a.Risk.Level)
	require.NotNil(t, a.Team)
	assert.Len(t, a.Team.Team, 2)
	assert.NotEmpty(t, a.PersonnelRecommendations)

	require.Len(t, history.saved, 1)
	assert.Equal(t, store.SourceMCP, history.saved[0].Source)
	assert.Equal(t, "critical", history.saved[0].RiskLevel)
	assert.True(t, json.Valid(history.saved[0].Payload))
}

func TestAnalyzeWork_BadDate(t *testing.T) {
	_, err := callTool(t, newTestServer(nil), "analyze_work", `{"description":"x","start_date":"tomorrow"}`)
	assert.ErrorContains(t, err, "start_date")
}

func TestAssessRisk_Language(t *testing.T) {
	s := newTestServer(nil)

	got, err := callTool(t, s, "assess_risk", `{"description":"уборка территории"}`)
	require.NoError(t, err)
	en := got.(risk.Assessment)
	assert.Equal(t, risk.LevelLow, en.Level)

	got, err = callTool(t, s, "assess_risk", `{"description":"уборка территории","language":"ru"}`)
	require.NoError(t, err)
	ru := got.(risk.Assessment)
	assert.NotEqual(t, en.Recommendations, ru.Recommendations)
}

func TestCheckPermit(t *testing.T) {
	got, err := callTool(t, newTestServer(nil), "check_permit", `{
		"description": "Замена задвижки на трубопроводе",
		"location": "Цех 3, линия 2",
		"start_date": "2099-06-02",
		"end_date": "2099-06-01",
		"responsible_person_id": "2",
		"required_ppe": ["Каска"],
		"safety_measures": ["Ограждение зоны работ"]
	}`)
	require.NoError(t, err)
	report := got.(anomaly.Report)
	assert.False(t, report.IsValid)
	assert.Equal(t, 70.0, report.Score)
}

func TestCheckPersonnel(t *testing.T) {
	s := newTestServer(nil)

	got, err := callTool(t, s, "check_personnel", `{"name":"1","email":"bad","phone":"123"}`)
	require.NoError(t, err)
	assert.Equal(t, 40.0, got.(anomaly.Report).Score)

	got, err = callTool(t, s, "check_personnel", `{"person_id":"2"}`)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.(anomaly.Report).Score)

	_, err = callTool(t, s, "check_personnel", `{"person_id":"99"}`)
	assert.ErrorContains(t, err, "not in roster")
}

func TestFindPersonnel(t *testing.T) {
	got, err := callTool(t, newTestServer(nil), "find_personnel", `{
		"description": "welding of pipelines",
		"role": "worker",
		"skills": ["welding"],
		"limit": 2
	}`)
	require.NoError(t, err)
	recs := got.([]personnel.Recommendation)
	require.Len(t, recs, 2)
	assert.Equal(t, "1", recs[0].Person.ID)
	assert.Equal(t, "3", recs[1].Person.ID)
}

func TestFindPersonnel_NoRoster(t *testing.T) {
	_, err := callTool(t, NewServer(Options{}), "find_personnel", `{"description":"x"}`)
	assert.ErrorIs(t, err, errNoRoster)
}

func TestSuggestTeamAndReplacement(t *testing.T) {
	s := newTestServer(nil)

	got, err := callTool(t, s, "suggest_team", `{"description":"welding","roles":["supervisor","foreman"],"size":2}`)
	require.NoError(t, err)
	team := got.(*personnel.TeamSuggestion)
	require.Len(t, team.Team, 2)
	assert.Equal(t, "4", team.Team[0].ID)
	assert.Equal(t, "2", team.Team[1].ID)

	got, err = callTool(t, s, "find_replacement", `{"person_id":"1"}`)
	require.NoError(t, err)
	for _, r := range got.([]personnel.Recommendation) {
		assert.NotEqual(t, "1", r.Person.ID)
	}

	_, err = callTool(t, s, "find_replacement", `{"person_id":"42"}`)
	assert.Error(t, err)
}

func TestLearnThenAutocomplete(t *testing.T) {
	s := newTestServer(nil)

	_, err := callTool(t, s, "learn_work", `{"description":""}`)
	assert.Error(t, err)

	got, err := callTool(t, s, "learn_work", `{"description":"замена подшипников насоса","duration":4,"workers":2,"required_ppe":["Перчатки"]}`)
	require.NoError(t, err)
	assert.Equal(t, LearnResult{Learned: true, Templates: 1}, got)

	got, err = callTool(t, s, "autocomplete_work", `{"description":"замена подшипников насоса"}`)
	require.NoError(t, err)
	encoded, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"estimated_duration":4`)

	got, err = callTool(t, s, "learning_stats", `{}`)
	require.NoError(t, err)
	assert.Equal(t, 1, got.(stellar.Statistics).Learning.TotalTemplates)
}

func TestDecodeArgs_Invalid(t *testing.T) {
	_, err := callTool(t, newTestServer(nil), "assess_risk", `{"description": 5}`)
	assert.ErrorContains(t, err, "invalid arguments")
}
