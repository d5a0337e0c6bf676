package risk

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/stellar-ptw/stellar/internal/lang"
	"github.com/stellar-ptw/stellar/internal/textsim"
)

const (
	// topMatches is how many of the best-scoring patterns are aggregated.
	topMatches = 3

	// maxConfidence keeps the confidence strictly below certainty.
	maxConfidence = 0.95

	defaultScore      = 50
	defaultConfidence = 0.3

	// multiHazardThreshold is the hazard count above which staging the work
	// is recommended.
	multiHazardThreshold = 3
)

// Analyzer matches work descriptions against an in-memory pattern table.
// It is safe for concurrent use.
type Analyzer struct {
	mu       sync.RWMutex
	patterns []Pattern
}

// NewAnalyzer creates an analyzer loaded with the built-in pattern table.
func NewAnalyzer() *Analyzer {
	return &Analyzer{patterns: DefaultPatterns()}
}

// NewAnalyzerWithPatterns creates an analyzer with a caller-supplied table.
func NewAnalyzerWithPatterns(patterns []Pattern) *Analyzer {
	a := &Analyzer{}
	a.ImportPatterns(patterns)
	return a
}

// Analyze assesses the risk of the described work. It never fails: text
// that matches no pattern yields a medium, low-confidence default.
func (a *Analyzer) Analyze(description, workType, location string, l lang.Language) Assessment {
	haystack := strings.ToLower(description + " " + workType + " " + location)

	matches := a.Matches(haystack)
	if len(matches) == 0 {
		return defaultAssessment(l)
	}
	if len(matches) > topMatches {
		matches = matches[:topMatches]
	}

	total := 0.0
	for _, m := range matches {
		total += m.Score
	}
	avg := total / float64(len(matches))

	assessment := Assessment{
		Level:      LevelForScore(avg),
		Score:      textsim.Clamp(math.Round(avg), 0, 100),
		Confidence: textsim.Clamp(math.Min(matches[0].Score/100, maxConfidence), 0, 1),
	}
	for _, m := range matches {
		assessment.Hazards = textsim.Union(assessment.Hazards, m.Pattern.Hazards.For(l))
		assessment.RequiredPPE = textsim.Union(assessment.RequiredPPE, m.Pattern.RequiredPPE.For(l))
		assessment.SafetyMeasures = textsim.Union(assessment.SafetyMeasures, m.Pattern.SafetyMeasures.For(l))
		assessment.MatchedPatterns = append(assessment.MatchedPatterns, m.Pattern.ID)
	}
	assessment.Recommendations = recommendationsFor(assessment.Level, len(assessment.Hazards), l)
	return assessment
}

// Matches scores every pattern against the lowercase haystack and returns
// those with at least one keyword hit, best first. Ties keep table order.
func (a *Analyzer) Matches(haystack string) []Match {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var matches []Match
	for _, p := range a.patterns {
		score, hits := ScorePattern(p, haystack)
		if hits == 0 {
			continue
		}
		matches = append(matches, Match{Pattern: p, Score: score, Hits: hits})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// ScorePattern computes a pattern's score against a lowercase haystack.
// Every keyword found adds base*(1 + hits*0.1) where hits counts the
// keywords found so far; the result is that sum divided by hits.
func ScorePattern(p Pattern, haystack string) (score float64, hits int) {
	sum := 0.0
	for _, kw := range p.Keywords {
		if kw == "" || !strings.Contains(haystack, strings.ToLower(kw)) {
			continue
		}
		hits++
		sum += p.BaseScore * (1 + float64(hits)*0.1)
	}
	if hits == 0 {
		return 0, 0
	}
	return sum / float64(hits), hits
}

// LevelForScore maps an aggregate score to a level bracket.
func LevelForScore(score float64) Level {
	switch {
	case score >= 80:
		return LevelCritical
	case score >= 60:
		return LevelHigh
	case score >= 30:
		return LevelMedium
	default:
		return LevelLow
	}
}

// AddPattern appends p to the table. No validation is performed.
func (a *Analyzer) AddPattern(p Pattern) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.patterns = append(a.patterns, p)
}

// ExportPatterns returns a copy of the current table.
func (a *Analyzer) ExportPatterns() []Pattern {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Pattern, len(a.patterns))
	copy(out, a.patterns)
	return out
}

// ImportPatterns replaces the whole table. Malformed patterns are accepted
// as-is and simply produce degenerate scores.
func (a *Analyzer) ImportPatterns(patterns []Pattern) {
	cp := make([]Pattern, len(patterns))
	copy(cp, patterns)
	a.mu.Lock()
	a.patterns = cp
	a.mu.Unlock()
}

// PatternCount returns the number of patterns in the table.
func (a *Analyzer) PatternCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.patterns)
}

func recommendationsFor(level Level, hazardCount int, l lang.Language) []string {
	recs := append([]string(nil), levelRecommendations[level].For(l)...)
	if hazardCount > multiHazardThreshold {
		recs = append(recs, multiHazardRecommendation.For(l))
	}
	return recs
}

func defaultAssessment(l lang.Language) Assessment {
	return Assessment{
		Level:           LevelMedium,
		Score:           defaultScore,
		Confidence:      defaultConfidence,
		Hazards:         append([]string(nil), defaultProfile.hazards.For(l)...),
		RequiredPPE:     append([]string(nil), defaultProfile.ppe.For(l)...),
		SafetyMeasures:  append([]string(nil), defaultProfile.measures.For(l)...),
		Recommendations: append([]string(nil), defaultProfile.recommendations.For(l)...),
	}
}
