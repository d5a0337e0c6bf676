package personnel

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/stellar-ptw/stellar/internal/lang"
	"github.com/stellar-ptw/stellar/internal/textsim"
)

// Score adjustments.
const (
	baseScore       = 50
	bonusRole       = 30
	penaltyRole     = -15
	bonusDepartment = 15
	maxSkillsBonus  = 25
	bonusDuties     = 10
	bonusExperience = 5
	minScore        = 30
	minKeywordRunes = 4 // description words must be longer than 3 runes
)

// Matcher scores people against work requirements. It holds no state.
type Matcher struct{}

// NewMatcher creates a matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

type candidate struct {
	index int
	rec   Recommendation
}

// FindSuitable scores every person in roster against req and returns those
// scoring at least 30, best first. Equal scores keep roster order.
func (m *Matcher) FindSuitable(req Request, roster []Person, l lang.Language) []Recommendation {
	ranked := m.rank(req, roster, l)
	out := make([]Recommendation, len(ranked))
	for i, c := range ranked {
		out[i] = c.rec
	}
	return out
}

func (m *Matcher) rank(req Request, roster []Person, l lang.Language) []candidate {
	keywords := textsim.Words(req.Description, minKeywordRunes)
	var out []candidate
	for i, p := range roster {
		rec := score(p, req, keywords, l)
		if rec.Score < minScore {
			continue
		}
		out = append(out, candidate{index: i, rec: rec})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].rec.Score > out[j].rec.Score
	})
	return out
}

func score(p Person, req Request, keywords []string, l lang.Language) Recommendation {
	rec := Recommendation{Person: p, Reasons: []string{}}
	s := float64(baseScore)

	if req.Role != "" {
		if p.Role == req.Role {
			s += bonusRole
			rec.Reasons = append(rec.Reasons, fmt.Sprintf(reasonRoleMatch.For(l), roleName(p.Role, l)))
		} else {
			s += penaltyRole
			rec.Warnings = append(rec.Warnings, fmt.Sprintf(warnRoleMismatch.For(l), roleName(req.Role, l)))
		}
	}

	if req.DepartmentID != "" && p.DepartmentID == req.DepartmentID {
		s += bonusDepartment
		rec.Reasons = append(rec.Reasons, reasonDepartment.For(l))
	}

	if len(req.Skills) > 0 && len(p.CustomQualifications) > 0 {
		if matched := matchedSkills(req.Skills, p.CustomQualifications); matched > 0 {
			s += float64(matched) / float64(len(req.Skills)) * maxSkillsBonus
			rec.Reasons = append(rec.Reasons, fmt.Sprintf(reasonSkills.For(l), matched, len(req.Skills)))
		}
	}

	if dutiesOverlap(p.CustomDuties, keywords) {
		s += bonusDuties
		rec.Reasons = append(rec.Reasons, reasonDuties.For(l))
	}

	if IsSenior(p) {
		s += bonusExperience
		rec.Reasons = append(rec.Reasons, reasonExperience.For(l))
	}

	rec.Score = textsim.Clamp(s, 0, 100)
	return rec
}

// matchedSkills counts required skills contained in any qualification,
// case-insensitively.
func matchedSkills(skills, qualifications []string) int {
	n := 0
	for _, skill := range skills {
		needle := strings.ToLower(strings.TrimSpace(skill))
		if needle == "" {
			continue
		}
		for _, q := range qualifications {
			if strings.Contains(strings.ToLower(q), needle) {
				n++
				break
			}
		}
	}
	return n
}

func dutiesOverlap(duties, keywords []string) bool {
	for _, duty := range duties {
		lower := strings.ToLower(duty)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// IsSenior reports whether p's position carries a seniority marker.
func IsSenior(p Person) bool {
	pos := strings.ToLower(p.Position)
	for _, marker := range seniorityMarkers {
		if strings.Contains(pos, marker) {
			return true
		}
	}
	return false
}

// SuggestTeam assembles a team for the described work. Each required role,
// in order, gets the best unused candidate holding that role, even when
// that takes the team past size; remaining places up to size go to the best
// unused candidates of any role. The team counts as fully staffed only when
// it reaches size with every required role covered.
// It returns nil only when roster is empty. A size below 1 means one place
// per required role, or a single place when no roles are given.
func (m *Matcher) SuggestTeam(description string, roles []Role, roster []Person, size int, l lang.Language) *TeamSuggestion {
	if len(roster) == 0 {
		return nil
	}
	if size < 1 {
		size = max(len(roles), 1)
	}

	ts := &TeamSuggestion{
		Team:            []Person{},
		Coverage:        Coverage{Roles: []Role{}, Skills: []string{}},
		Warnings:        []string{},
		Recommendations: []string{},
	}
	used := make(map[int]bool)
	pick := func(c candidate) {
		used[c.index] = true
		ts.Team = append(ts.Team, c.rec.Person)
	}

	uncovered := 0
	for _, role := range roles {
		found := false
		for _, c := range m.rank(Request{Description: description, Role: role}, roster, l) {
			if used[c.index] || c.rec.Person.Role != role {
				continue
			}
			pick(c)
			found = true
			break
		}
		if !found {
			uncovered++
			ts.Warnings = append(ts.Warnings, fmt.Sprintf(warnRoleUncovered.For(l), roleName(role, l)))
		}
	}

	if len(ts.Team) < size {
		for _, c := range m.rank(Request{Description: description}, roster, l) {
			if len(ts.Team) >= size {
				break
			}
			if !used[c.index] {
				pick(c)
			}
		}
	}

	switch {
	case len(ts.Team) < size:
		ts.Warnings = append(ts.Warnings, fmt.Sprintf(warnTeamShort.For(l), len(ts.Team), size))
	case uncovered == 0:
		ts.Recommendations = append(ts.Recommendations, recFullyStaffed.For(l))
	}

	senior := false
	total := 0.0
	for _, p := range ts.Team {
		if !slices.Contains(ts.Coverage.Roles, p.Role) {
			ts.Coverage.Roles = append(ts.Coverage.Roles, p.Role)
		}
		ts.Coverage.Skills = textsim.Union(ts.Coverage.Skills, p.CustomQualifications)
		senior = senior || IsSenior(p)
		// Each member is rescored alone against its own role.
		if recs := m.FindSuitable(Request{Description: description, Role: p.Role}, []Person{p}, l); len(recs) > 0 {
			total += recs[0].Score
		}
	}
	if len(ts.Team) > 0 {
		ts.TotalScore = total / float64(len(ts.Team))
	}
	if size > 2 && !senior {
		ts.Recommendations = append(ts.Recommendations, recAddExperienced.For(l))
	}
	return ts
}

// FindReplacement ranks substitutes for p: people other than p scored
// against p's role, department, qualifications and duties.
func (m *Matcher) FindReplacement(p Person, roster []Person, l lang.Language) []Recommendation {
	others := make([]Person, 0, len(roster))
	for _, o := range roster {
		if o.ID == p.ID {
			continue
		}
		others = append(others, o)
	}
	req := Request{
		Description:  strings.Join(p.CustomDuties, " "),
		Role:         p.Role,
		Skills:       p.CustomQualifications,
		DepartmentID: p.DepartmentID,
	}
	return m.FindSuitable(req, others, l)
}
