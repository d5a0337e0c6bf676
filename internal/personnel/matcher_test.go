package personnel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar-ptw/stellar/internal/lang"
)

func testRoster() []Person {
	return []Person{
		{
			ID: "1", Name: "Иван Петров", Position: "Старший сварщик", Role: RoleWorker, DepartmentID: "d1",
			CustomDuties:         []string{"Сварка трубопроводов"},
			CustomQualifications: []string{"Сварщик НАКС", "Допуск к огневым работам"},
		},
		{
			ID: "2", Name: "Олег Сидоров", Position: "Электромонтер", Role: RoleWorker, DepartmentID: "d2",
			CustomQualifications: []string{"Электробезопасность IV группа"},
		},
		{ID: "3", Name: "Анна Смирнова", Position: "Мастер участка", Role: RoleForeman, DepartmentID: "d1"},
		{ID: "4", Name: "Пётр Волков", Position: "Начальник цеха", Role: RoleSupervisor, DepartmentID: "d1"},
		{ID: "5", Name: "Мария Козлова", Position: "Инженер", Role: RoleIssuer, DepartmentID: "d3"},
	}
}

func ids(ps []Person) []string {
	var out []string
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func recIDs(rs []Recommendation) []string {
	var out []string
	for _, r := range rs {
		out = append(out, r.Person.ID)
	}
	return out
}

func TestFindSuitable_Scoring(t *testing.T) {
	m := NewMatcher()
	req := Request{
		Description:  "сварка трубопроводов на эстакаде",
		Role:         RoleWorker,
		Skills:       []string{"накс", "огнев"},
		DepartmentID: "d1",
	}
	got := m.FindSuitable(req, testRoster(), lang.RU)

	require.Equal(t, []string{"1", "2", "4", "3", "5"}, recIDs(got))

	scores := make(map[string]float64)
	for _, r := range got {
		scores[r.Person.ID] = r.Score
	}
	assert.Equal(t, map[string]float64{"1": 100, "2": 80, "4": 55, "3": 50, "5": 35}, scores)

	assert.Len(t, got[0].Reasons, 5)
	assert.Empty(t, got[0].Warnings)
	assert.Equal(t, []string{"Роль соответствует: член бригады"}, got[1].Reasons)
	assert.Equal(t, []string{"Роль не соответствует требуемой (член бригады)"}, got[3].Warnings)
}

func TestFindSuitable_PartialSkills(t *testing.T) {
	m := NewMatcher()
	p := testRoster()[0]
	p.Position = "Сварщик"
	p.CustomDuties = nil

	got := m.FindSuitable(Request{Skills: []string{"НАКС", "xyz"}}, []Person{p}, lang.EN)
	require.Len(t, got, 1)
	assert.Equal(t, 62.5, got[0].Score)
	assert.Equal(t, []string{"Qualifications: 1 of 2 required skills"}, got[0].Reasons)
}

func TestFindSuitable_NoAdjustmentNoReasons(t *testing.T) {
	m := NewMatcher()
	p := Person{ID: "x", Name: "Someone", Position: "Engineer", Role: RoleWorker}
	got := m.FindSuitable(Request{Description: "paint the fence"}, []Person{p}, lang.EN)
	require.Len(t, got, 1)
	assert.Equal(t, 50.0, got[0].Score)
	assert.Empty(t, got[0].Reasons)
	assert.Empty(t, got[0].Warnings)
}

func TestFindSuitable_ScoresBounded(t *testing.T) {
	m := NewMatcher()
	roster := testRoster()
	for _, role := range []Role{"", RoleIssuer, RoleSupervisor, RoleForeman, RoleWorker} {
		for _, dept := range []string{"", "d1", "d9"} {
			req := Request{Description: "сварка", Role: role, DepartmentID: dept, Skills: []string{"накс"}}
			for _, r := range m.FindSuitable(req, roster, lang.TR) {
				assert.GreaterOrEqual(t, r.Score, 30.0)
				assert.LessOrEqual(t, r.Score, 100.0)
			}
		}
	}
}

func TestFindSuitable_EmptyRoster(t *testing.T) {
	assert.Empty(t, NewMatcher().FindSuitable(Request{Role: RoleWorker}, nil, lang.EN))
}

func TestSuggestTeam_SingleWorker(t *testing.T) {
	w := Person{ID: "w", Name: "Worker", Position: "Fitter", Role: RoleWorker}
	ts := NewMatcher().SuggestTeam("replace valve", []Role{RoleWorker}, []Person{w}, 1, lang.EN)
	require.NotNil(t, ts)
	assert.Equal(t, []Person{w}, ts.Team)
	assert.Equal(t, []Role{RoleWorker}, ts.Coverage.Roles)
	assert.Empty(t, ts.Warnings)
	assert.Equal(t, []string{recFullyStaffed.EN}, ts.Recommendations)
	assert.Equal(t, 80.0, ts.TotalScore)
}

func TestSuggestTeam_EmptyRoster(t *testing.T) {
	assert.Nil(t, NewMatcher().SuggestTeam("x", []Role{RoleWorker}, nil, 2, lang.EN))
}

func TestSuggestTeam_CoversRolesThenFills(t *testing.T) {
	ts := NewMatcher().SuggestTeam("сварка трубопроводов",
		[]Role{RoleSupervisor, RoleForeman, RoleWorker}, testRoster(), 4, lang.RU)
	require.NotNil(t, ts)

	assert.Equal(t, []string{"4", "3", "1", "2"}, ids(ts.Team))
	assert.Equal(t, []Role{RoleSupervisor, RoleForeman, RoleWorker}, ts.Coverage.Roles)
	assert.Contains(t, ts.Coverage.Skills, "Сварщик НАКС")
	assert.Empty(t, ts.Warnings)
	assert.Equal(t, []string{recFullyStaffed.RU}, ts.Recommendations)
	// (85 + 80 + 95 + 80) / 4
	assert.Equal(t, 85.0, ts.TotalScore)
}

func TestSuggestTeam_UncoveredRolesAndShortTeam(t *testing.T) {
	roster := []Person{testRoster()[1]}
	ts := NewMatcher().SuggestTeam("монтаж кабеля", []Role{RoleIssuer, RoleForeman}, roster, 3, lang.EN)
	require.NotNil(t, ts)

	assert.Equal(t, []string{"2"}, ids(ts.Team))
	assert.Equal(t, []string{
		"No one found for role: issuer",
		"No one found for role: foreman",
		"Team is short: 1 of 3",
	}, ts.Warnings)
	assert.Equal(t, []string{recAddExperienced.EN}, ts.Recommendations)
}

func TestSuggestTeam_MoreRolesThanPlaces(t *testing.T) {
	worker := Person{ID: "w", Name: "Oleg", Position: "Fitter", Role: RoleWorker}
	foreman := Person{ID: "f", Name: "Anna", Position: "Foreman", Role: RoleForeman}
	roster := []Person{worker, foreman}

	tests := []struct {
		name     string
		roles    []Role
		size     int
		team     []string
		warnings []string
	}{
		{
			name:     "every role is tried past the size",
			roles:    []Role{RoleWorker, RoleForeman, RoleIssuer},
			size:     1,
			team:     []string{"w", "f"},
			warnings: []string{"No one found for role: issuer"},
		},
		{
			name:     "uncovered role while the team fills up",
			roles:    []Role{RoleIssuer},
			size:     2,
			team:     []string{"w", "f"},
			warnings: []string{"No one found for role: issuer"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewMatcher().SuggestTeam("replace valve", tt.roles, roster, tt.size, lang.EN)
			require.NotNil(t, ts)
			assert.ElementsMatch(t, tt.team, ids(ts.Team))
			assert.Equal(t, tt.warnings, ts.Warnings)
			assert.NotContains(t, ts.Recommendations, recFullyStaffed.EN)
		})
	}
}

func TestSuggestTeam_NoDuplicates(t *testing.T) {
	roster := testRoster()
	ts := NewMatcher().SuggestTeam("работы", []Role{RoleWorker, RoleWorker, RoleWorker}, roster, 10, lang.EN)
	require.NotNil(t, ts)
	assert.Len(t, ts.Team, len(roster))
	assert.ElementsMatch(t, ids(roster), ids(ts.Team))
	assert.Contains(t, ts.Warnings, "No one found for role: worker")
}

func TestSuggestTeam_DefaultSize(t *testing.T) {
	ts := NewMatcher().SuggestTeam("", []Role{RoleForeman, RoleWorker}, testRoster(), 0, lang.EN)
	require.NotNil(t, ts)
	assert.Len(t, ts.Team, 2)
}

func TestFindReplacement(t *testing.T) {
	roster := testRoster()
	got := NewMatcher().FindReplacement(roster[0], roster, lang.EN)
	assert.Equal(t, []string{"2", "4", "3", "5"}, recIDs(got))
	assert.Equal(t, 80.0, got[0].Score)
}

func TestLoadRoster(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
- id: "1"
  name: Ivan
  position: Senior welder
  role: worker
  custom_qualifications: [NAKS]
`), 0o644))
	people, err := LoadRoster(yamlPath)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, RoleWorker, people[0].Role)
	assert.Equal(t, []string{"NAKS"}, people[0].CustomQualifications)

	jsonPath := filepath.Join(dir, "roster.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"personnel":[{"id":"7","name":"Ayşe","role":"foreman"}]}`), 0o644))
	people, err = LoadRoster(jsonPath)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, RoleForeman, people[0].Role)

	p, ok := FindByID(people, "7")
	assert.True(t, ok)
	assert.Equal(t, "Ayşe", p.Name)

	_, err = LoadRoster(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
