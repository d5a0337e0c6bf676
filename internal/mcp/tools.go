package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/stellar-ptw/stellar/internal/anomaly"
	"github.com/stellar-ptw/stellar/internal/lang"
	"github.com/stellar-ptw/stellar/internal/personnel"
	"github.com/stellar-ptw/stellar/internal/stellar"
	"github.com/stellar-ptw/stellar/internal/store"
	"github.com/stellar-ptw/stellar/internal/suggestions"
)

const defaultToolLimit = 5

// permitArgs are the draft fields shared by analyze_work and check_permit.
type permitArgs struct {
	Description         string   `json:"description"`
	WorkType            string   `json:"work_type"`
	Location            string   `json:"location"`
	StartDate           string   `json:"start_date"`
	EndDate             string   `json:"end_date"`
	ResponsiblePersonID string   `json:"responsible_person_id"`
	RequiredPPE         []string `json:"required_ppe"`
	SafetyMeasures      []string `json:"safety_measures"`
	Language            string   `json:"language"`
}

func (a permitArgs) request() (stellar.Request, error) {
	start, err := stellar.ParseDate(a.StartDate)
	if err != nil {
		return stellar.Request{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := stellar.ParseDate(a.EndDate)
	if err != nil {
		return stellar.Request{}, fmt.Errorf("end_date: %w", err)
	}
	return stellar.Request{
		Description:         a.Description,
		WorkType:            a.WorkType,
		Location:            a.Location,
		StartDate:           start,
		EndDate:             end,
		ResponsiblePersonID: a.ResponsiblePersonID,
		RequiredPPE:         a.RequiredPPE,
		SafetyMeasures:      a.SafetyMeasures,
	}, nil
}

type analyzeArgs struct {
	permitArgs
	RequiredRoles  []personnel.Role `json:"required_roles"`
	RequiredSkills []string         `json:"required_skills"`
	DepartmentID   string           `json:"department_id"`
	TeamSize       int              `json:"team_size"`
}

type personArgs struct {
	PersonID string `json:"person_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	Language string `json:"language"`
}

type findPersonnelArgs struct {
	Description  string         `json:"description"`
	Role         personnel.Role `json:"role"`
	Skills       []string       `json:"skills"`
	DepartmentID string         `json:"department_id"`
	Limit        int            `json:"limit"`
	Language     string         `json:"language"`
}

type teamArgs struct {
	Description string           `json:"description"`
	Roles       []personnel.Role `json:"roles"`
	Size        int              `json:"size"`
	Language    string           `json:"language"`
}

type replacementArgs struct {
	PersonID string `json:"person_id"`
	Limit    int    `json:"limit"`
	Language string `json:"language"`
}

type describeArgs struct {
	Description string `json:"description"`
	WorkType    string `json:"work_type"`
	Location    string `json:"location"`
	Language    string `json:"language"`
}

// LearnResult reports the template count after learning.
type LearnResult struct {
	Learned   bool `json:"learned"`
	Templates int  `json:"templates"`
}

const (
	langProp    = `"language":{"type":"string","enum":["ru","tr","en"],"description":"Message language (default from config)"}`
	descProp    = `"description":{"type":"string","description":"Free-text work description"}`
	permitProps = descProp + `,
		"work_type":{"type":"string"},
		"location":{"type":"string"},
		"start_date":{"type":"string","description":"RFC 3339 or YYYY-MM-DD"},
		"end_date":{"type":"string","description":"RFC 3339 or YYYY-MM-DD"},
		"responsible_person_id":{"type":"string"},
		"required_ppe":{"type":"array","items":{"type":"string"}},
		"safety_measures":{"type":"array","items":{"type":"string"}},
		` + langProp
	roleEnum = `{"type":"string","enum":["issuer","supervisor","foreman","worker"]}`
)

var (
	noArgsSchema   = json.RawMessage(`{"type":"object","properties":{},"additionalProperties":false}`)
	describeSchema = json.RawMessage(`{"type":"object","properties":{` + descProp + `,"work_type":{"type":"string"},"location":{"type":"string"},` + langProp + `},"required":["description"]}`)
	permitSchema   = json.RawMessage(`{"type":"object","properties":{` + permitProps + `},"required":["description"]}`)
	analyzeSchema  = json.RawMessage(`{"type":"object","properties":{` + permitProps + `,
		"required_roles":{"type":"array","items":` + roleEnum + `},
		"required_skills":{"type":"array","items":{"type":"string"}},
		"department_id":{"type":"string"},
		"team_size":{"type":"integer"}},"required":["description"]}`)
	personSchema = json.RawMessage(`{"type":"object","properties":{
		"person_id":{"type":"string","description":"Check a roster entry instead of inline fields"},
		"name":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"position":{"type":"string"},` + langProp + `}}`)
	findPersonnelSchema = json.RawMessage(`{"type":"object","properties":{` + descProp + `,
		"role":` + roleEnum + `,
		"skills":{"type":"array","items":{"type":"string"}},
		"department_id":{"type":"string"},
		"limit":{"type":"integer","description":"Maximum candidates (default 5)"},` + langProp + `},"required":["description"]}`)
	teamSchema = json.RawMessage(`{"type":"object","properties":{` + descProp + `,
		"roles":{"type":"array","items":` + roleEnum + `},
		"size":{"type":"integer"},` + langProp + `},"required":["description"]}`)
	replacementSchema = json.RawMessage(`{"type":"object","properties":{
		"person_id":{"type":"string"},
		"limit":{"type":"integer","description":"Maximum candidates (default 5)"},` + langProp + `},"required":["person_id"]}`)
	learnSchema = json.RawMessage(`{"type":"object","properties":{` + descProp + `,
		"work_type":{"type":"string"},
		"location":{"type":"string"},
		"duration":{"type":"number","description":"Hours"},
		"required_ppe":{"type":"array","items":{"type":"string"}},
		"safety_measures":{"type":"array","items":{"type":"string"}},
		"workers":{"type":"integer"}},"required":["description"]}`)
)

func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "analyze_work",
		Description: "Full analysis of a permit draft: risk, data quality, autocomplete from past work, personnel and team suggestions, insights.",
		InputSchema: analyzeSchema,
		Handler:     s.handleAnalyzeWork,
	})
	s.registerTool(toolDef{
		Name:        "assess_risk",
		Description: "Risk level, score, hazards, PPE and safety measures for a work description.",
		InputSchema: describeSchema,
		Handler:     s.handleAssessRisk,
	})
	s.registerTool(toolDef{
		Name:        "check_permit",
		Description: "Data-quality checklist for a permit: anomalies, warnings and a 0-100 score.",
		InputSchema: permitSchema,
		Handler:     s.handleCheckPermit,
	})
	s.registerTool(toolDef{
		Name:        "check_personnel",
		Description: "Data-quality checklist for a personnel record.",
		InputSchema: personSchema,
		Handler:     s.handleCheckPersonnel,
	})
	s.registerTool(toolDef{
		Name:        "autocomplete_work",
		Description: "PPE, measures, duration and crew size suggested from similar past works.",
		InputSchema: describeSchema,
		Handler:     s.handleAutocomplete,
	})
	s.registerTool(toolDef{
		Name:        "find_personnel",
		Description: "Rank roster members for a work description.",
		InputSchema: findPersonnelSchema,
		Handler:     s.handleFindPersonnel,
	})
	s.registerTool(toolDef{
		Name:        "suggest_team",
		Description: "Assemble a team from the roster covering the requested roles.",
		InputSchema: teamSchema,
		Handler:     s.handleSuggestTeam,
	})
	s.registerTool(toolDef{
		Name:        "find_replacement",
		Description: "Rank substitutes for a roster member.",
		InputSchema: replacementSchema,
		Handler:     s.handleFindReplacement,
	})
	s.registerTool(toolDef{
		Name:        "learn_work",
		Description: "Record a completed work so future autocomplete can use it.",
		InputSchema: learnSchema,
		Handler:     s.handleLearnWork,
	})
	s.registerTool(toolDef{
		Name:        "learning_stats",
		Description: "Learned template counts and the most popular work.",
		InputSchema: noArgsSchema,
		Handler:     s.handleLearningStats,
	})
}

func decodeArgs(raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (s *Server) language(code string) lang.Language {
	if code == "" {
		return s.lang
	}
	return lang.Parse(code)
}

func limitOr(n int) int {
	if n <= 0 {
		return defaultToolLimit
	}
	return n
}

func (s *Server) handleAnalyzeWork(ctx context.Context, raw json.RawMessage) (any, error) {
	var args analyzeArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	req, err := args.request()
	if err != nil {
		return nil, err
	}
	req.RequiredRoles = args.RequiredRoles
	req.RequiredSkills = args.RequiredSkills
	req.DepartmentID = args.DepartmentID
	req.TeamSize = args.TeamSize
	req.Roster = s.roster

	result := s.engine.Analyze(req, s.language(args.Language))
	s.record(ctx, req.Description, result)
	return result, nil
}

// record saves the analysis to history. Failures are logged, not returned.
func (s *Server) record(ctx context.Context, description string, a stellar.ComprehensiveAnalysis) {
	if s.history == nil {
		return
	}
	payload, err := json.Marshal(a)
	if err != nil {
		s.logger.Warn("encoding analysis for history", zap.Error(err))
		return
	}
	_, err = s.history.SaveAnalysis(ctx, &store.Analysis{
		Source:       store.SourceMCP,
		Description:  description,
		RiskLevel:    string(a.Risk.Level),
		RiskScore:    a.Risk.Score,
		QualityScore: a.Quality.Score,
		IsValid:      a.Quality.IsValid,
		Payload:      payload,
	})
	if err != nil {
		s.logger.Warn("saving analysis history", zap.Error(err))
	}
}

func (s *Server) handleAssessRisk(_ context.Context, raw json.RawMessage) (any, error) {
	var args describeArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return s.engine.Risk().Analyze(args.Description, args.WorkType, args.Location, s.language(args.Language)), nil
}

func (s *Server) handleCheckPermit(_ context.Context, raw json.RawMessage) (any, error) {
	var args permitArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	req, err := args.request()
	if err != nil {
		return nil, err
	}
	return s.engine.Anomaly().CheckPermitData(req.Permit(), s.language(args.Language)), nil
}

func (s *Server) handleCheckPersonnel(_ context.Context, raw json.RawMessage) (any, error) {
	var args personArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	data := anomaly.PersonData{Name: args.Name, Email: args.Email, Phone: args.Phone, Position: args.Position}
	if args.PersonID != "" {
		p, ok := personnel.FindByID(s.roster, args.PersonID)
		if !ok {
			return nil, fmt.Errorf("person %q not in roster", args.PersonID)
		}
		data = anomaly.PersonData{Name: p.Name, Email: p.Email, Phone: p.Phone, Position: p.Position}
	}
	return s.engine.Anomaly().CheckPersonnelData(data, s.language(args.Language)), nil
}

func (s *Server) handleAutocomplete(_ context.Context, raw json.RawMessage) (any, error) {
	var args describeArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return s.engine.Suggestions().Autocomplete(args.Description, s.language(args.Language)), nil
}

var errNoRoster = errors.New("no roster configured; set roster_file")

func (s *Server) handleFindPersonnel(_ context.Context, raw json.RawMessage) (any, error) {
	var args findPersonnelArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if len(s.roster) == 0 {
		return nil, errNoRoster
	}
	recs := s.engine.Personnel().FindSuitable(personnel.Request{
		Description:  args.Description,
		Role:         args.Role,
		Skills:       args.Skills,
		DepartmentID: args.DepartmentID,
	}, s.roster, s.language(args.Language))
	return truncate(recs, limitOr(args.Limit)), nil
}

func (s *Server) handleSuggestTeam(_ context.Context, raw json.RawMessage) (any, error) {
	var args teamArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if len(s.roster) == 0 {
		return nil, errNoRoster
	}
	return s.engine.Personnel().SuggestTeam(args.Description, args.Roles, s.roster, args.Size, s.language(args.Language)), nil
}

func (s *Server) handleFindReplacement(_ context.Context, raw json.RawMessage) (any, error) {
	var args replacementArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	p, ok := personnel.FindByID(s.roster, strings.TrimSpace(args.PersonID))
	if !ok {
		return nil, fmt.Errorf("person %q not in roster", args.PersonID)
	}
	recs := s.engine.Personnel().FindReplacement(p, s.roster, s.language(args.Language))
	return truncate(recs, limitOr(args.Limit)), nil
}

func (s *Server) handleLearnWork(ctx context.Context, raw json.RawMessage) (any, error) {
	var w suggestions.WorkData
	if err := decodeArgs(raw, &w); err != nil {
		return nil, err
	}
	if strings.TrimSpace(w.Description) == "" {
		return nil, errors.New("description is required")
	}
	if err := s.engine.LearnFromWork(ctx, w); err != nil {
		return nil, err
	}
	return LearnResult{Learned: true, Templates: s.engine.Suggestions().Len()}, nil
}

func (s *Server) handleLearningStats(_ context.Context, _ json.RawMessage) (any, error) {
	return s.engine.Statistics(), nil
}

func truncate[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
