package stellar

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stellar-ptw/stellar/internal/anomaly"
	"github.com/stellar-ptw/stellar/internal/lang"
	"github.com/stellar-ptw/stellar/internal/personnel"
	"github.com/stellar-ptw/stellar/internal/risk"
	"github.com/stellar-ptw/stellar/internal/suggestions"
)

// Options wires the engine. Nil components are replaced with defaults;
// Store may stay nil, in which case learning lives only in memory.
type Options struct {
	Risk        *risk.Analyzer
	Anomaly     *anomaly.Detector
	Suggestions *suggestions.Engine
	Personnel   *personnel.Matcher
	Store       LearningStore
	Logger      *zap.Logger
	Now         func() time.Time
}

// Engine is the facade over all components.
type Engine struct {
	risk        *risk.Analyzer
	anomaly     *anomaly.Detector
	suggestions *suggestions.Engine
	personnel   *personnel.Matcher
	store       LearningStore
	logger      *zap.Logger
	now         func() time.Time
}

// New creates an engine from opts.
func New(opts Options) *Engine {
	e := &Engine{
		risk:        opts.Risk,
		anomaly:     opts.Anomaly,
		suggestions: opts.Suggestions,
		personnel:   opts.Personnel,
		store:       opts.Store,
		logger:      opts.Logger,
		now:         opts.Now,
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.risk == nil {
		e.risk = risk.NewAnalyzer()
	}
	if e.anomaly == nil {
		e.anomaly = anomaly.NewDetectorWithClock(e.now)
	}
	if e.suggestions == nil {
		e.suggestions = suggestions.NewEngine()
	}
	if e.personnel == nil {
		e.personnel = personnel.NewMatcher()
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

// Risk returns the risk analyzer.
func (e *Engine) Risk() *risk.Analyzer { return e.risk }

// Anomaly returns the data-quality detector.
func (e *Engine) Anomaly() *anomaly.Detector { return e.anomaly }

// Suggestions returns the learned-template engine.
func (e *Engine) Suggestions() *suggestions.Engine { return e.suggestions }

// Personnel returns the personnel matcher.
func (e *Engine) Personnel() *personnel.Matcher { return e.personnel }

// Analyze runs every component over req. Personnel recommendations and a
// team suggestion are included only when req carries a roster.
func (e *Engine) Analyze(req Request, l lang.Language) ComprehensiveAnalysis {
	result := ComprehensiveAnalysis{
		Risk:         e.risk.Analyze(req.Description, req.WorkType, req.Location, l),
		Quality:      e.anomaly.CheckPermitData(req.Permit(), l),
		Autocomplete: e.suggestions.Autocomplete(req.Description, l),
	}

	if len(req.Roster) > 0 {
		result.PersonnelRecommendations = e.personnel.FindSuitable(personnel.Request{
			Description:  req.Description,
			Skills:       req.RequiredSkills,
			DepartmentID: req.DepartmentID,
		}, req.Roster, l)
		result.Team = e.personnel.SuggestTeam(req.Description, req.RequiredRoles, req.Roster, req.TeamSize, l)
	}

	result.Insights = insights(req, result, l)
	e.logger.Debug("analysis complete",
		zap.String("level", string(result.Risk.Level)),
		zap.Float64("risk_score", result.Risk.Score),
		zap.Float64("quality_score", result.Quality.Score),
		zap.Int("insights", len(result.Insights)),
	)
	return result
}

func insights(req Request, a ComprehensiveAnalysis, l lang.Language) []string {
	out := []string{}

	if missing := missingItems(a.Risk.RequiredPPE, req.RequiredPPE); len(missing) > 0 {
		out = append(out, fmt.Sprintf(insightMissingPPE.For(l), strings.Join(missing, ", ")))
	}
	if missing := missingItems(a.Risk.SafetyMeasures, req.SafetyMeasures); len(missing) > 0 && len(req.SafetyMeasures) > 0 {
		out = append(out, fmt.Sprintf(insightMissingMeasures.For(l), len(missing)))
	}
	if (a.Risk.Level == risk.LevelHigh || a.Risk.Level == risk.LevelCritical) && !a.Quality.IsValid {
		out = append(out, insightHighRiskInvalid.For(l))
	}
	if a.Autocomplete.Confidence > 0 {
		out = append(out, a.Autocomplete.Hint)
	}
	if a.Team != nil && len(a.Team.Warnings) > 0 {
		out = append(out, insightTeamIncomplete.For(l))
	}
	return out
}

// missingItems returns the entries of suggested not present in have,
// compared case-insensitively.
func missingItems(suggested, have []string) []string {
	present := make(map[string]bool, len(have))
	for _, h := range have {
		present[strings.ToLower(strings.TrimSpace(h))] = true
	}
	var out []string
	for _, s := range suggested {
		if !present[strings.ToLower(s)] {
			out = append(out, s)
		}
	}
	return out
}

// LearnFromWork feeds completed work into the suggestion engine and, when a
// store is configured, persists the updated snapshot.
func (e *Engine) LearnFromWork(ctx context.Context, w suggestions.WorkData) error {
	e.suggestions.Learn(w)
	return e.Persist(ctx)
}

// Persist writes the current learning snapshot to the store, if any.
func (e *Engine) Persist(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	data, err := json.Marshal(e.ExportLearning())
	if err != nil {
		return fmt.Errorf("encoding learning snapshot: %w", err)
	}
	if err := e.store.PutDocument(ctx, LearningKey, data); err != nil {
		return fmt.Errorf("saving learning snapshot: %w", err)
	}
	e.logger.Debug("learning snapshot saved", zap.Int("templates", e.suggestions.Len()))
	return nil
}

// Restore loads the stored learning snapshot, if one exists.
func (e *Engine) Restore(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	data, err := e.store.GetDocument(ctx, LearningKey)
	if err != nil {
		return fmt.Errorf("loading learning snapshot: %w", err)
	}
	if data == nil {
		return nil
	}
	var snap LearningSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding learning snapshot: %w", err)
	}
	e.ImportLearning(snap)
	e.logger.Info("learning snapshot restored",
		zap.Int("templates", len(snap.Templates)),
		zap.String("version", snap.Version),
	)
	return nil
}

// ExportLearning returns the learned templates in the export envelope.
func (e *Engine) ExportLearning() LearningSnapshot {
	return LearningSnapshot{
		Templates:  e.suggestions.Export(),
		Version:    SnapshotVersion,
		ExportDate: e.now().UTC(),
	}
}

// ImportLearning replaces the learned templates with those in s.
func (e *Engine) ImportLearning(s LearningSnapshot) {
	e.suggestions.Import(s.Templates)
}

// Statistics reports learning usage and the size of the pattern table.
func (e *Engine) Statistics() Statistics {
	return Statistics{
		Learning:     e.suggestions.Stats(),
		PatternCount: e.risk.PatternCount(),
	}
}
