package risk

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar-ptw/stellar/internal/lang"
)

func TestAnalyze_WeldingInTunnel(t *testing.T) {
	a := NewAnalyzer()
	got := a.Analyze("сварочные работы в тоннеле", "", "", lang.RU)

	assert.Equal(t, LevelCritical, got.Level)
	assert.Equal(t, []string{PatternConfinedSpace, PatternHotWork}, got.MatchedPatterns)
	// (90*1.1 + 85*1.1) / 2 = 96.25
	assert.Equal(t, 96.0, got.Score)
	assert.Equal(t, 0.95, got.Confidence)
	assert.Contains(t, got.RequiredPPE, "Газоанализатор")
	assert.Contains(t, got.RequiredPPE, "Сварочная маска")
	assert.Contains(t, got.Hazards, "Пожар")
	assert.Contains(t, got.Hazards, "Недостаток кислорода")
}

func TestAnalyze_SinglePatternBracketAndSuperset(t *testing.T) {
	a := NewAnalyzer()
	for _, p := range DefaultPatterns() {
		t.Run(p.ID, func(t *testing.T) {
			got := a.Analyze(p.Keywords[0], "", "", lang.EN)
			require.Equal(t, []string{p.ID}, got.MatchedPatterns)
			assert.Equal(t, LevelForScore(p.BaseScore*1.1), got.Level)
			assert.Subset(t, got.Hazards, p.Hazards.EN)
			assert.Subset(t, got.RequiredPPE, p.RequiredPPE.EN)
			assert.Subset(t, got.SafetyMeasures, p.SafetyMeasures.EN)
		})
	}
}

func TestAnalyze_RoutineWorkIsLow(t *testing.T) {
	a := NewAnalyzer()
	got := a.Analyze("уборка территории", "", "", lang.EN)
	assert.Equal(t, LevelLow, got.Level)
	assert.Equal(t, 22.0, got.Score)
	assert.InDelta(t, 0.22, got.Confidence, 1e-9)
	assert.Equal(t, []string{"Slips and trips", "Minor injuries"}, got.Hazards)
	assert.Equal(t, levelRecommendations[LevelLow].EN, got.Recommendations)
}

func TestAnalyze_WorkTypeAndLocationAreSearched(t *testing.T) {
	a := NewAnalyzer()
	got := a.Analyze("replace flange", "hot work", "inside tank 4", lang.EN)
	assert.Contains(t, got.MatchedPatterns, PatternHotWork)
	assert.Contains(t, got.MatchedPatterns, PatternConfinedSpace)
}

func TestAnalyze_NoMatchReturnsDefault(t *testing.T) {
	a := NewAnalyzer()
	for _, text := range []string{"", "xyz", "обычная задача"} {
		got := a.Analyze(text, "", "", lang.RU)
		assert.Equal(t, LevelMedium, got.Level, text)
		assert.Equal(t, 50.0, got.Score)
		assert.Equal(t, 0.3, got.Confidence)
		assert.Empty(t, got.MatchedPatterns)
		assert.NotEmpty(t, got.Recommendations)
		assert.NotEmpty(t, got.RequiredPPE)
	}
}

func TestAnalyze_DefaultIsNotShared(t *testing.T) {
	a := NewAnalyzer()
	first := a.Analyze("", "", "", lang.EN)
	first.Hazards[0] = "mutated"
	second := a.Analyze("", "", "", lang.EN)
	assert.NotEqual(t, "mutated", second.Hazards[0])
}

func TestAnalyze_TopThreeOnly(t *testing.T) {
	a := NewAnalyzer()
	got := a.Analyze("welding in a tank near the crane with acid and a pump", "", "", lang.EN)
	assert.Len(t, got.MatchedPatterns, 3)
	assert.Equal(t, PatternConfinedSpace, got.MatchedPatterns[0])
}

func TestAnalyze_MultiHazardRecommendation(t *testing.T) {
	a := NewAnalyzer()

	hot := a.Analyze("welding", "", "", lang.EN)
	require.Len(t, hot.Hazards, 4)
	assert.Equal(t, multiHazardRecommendation.EN, hot.Recommendations[len(hot.Recommendations)-1])

	routine := a.Analyze("cleaning", "", "", lang.EN)
	assert.NotContains(t, routine.Recommendations, multiHazardRecommendation.EN)
}

func TestScorePattern_Formula(t *testing.T) {
	p := Pattern{ID: "t", Keywords: []string{"alpha", "beta"}, BaseScore: 50}

	score, hits := ScorePattern(p, "alpha beta")
	assert.Equal(t, 2, hits)
	// (50*1.1 + 50*1.2) / 2
	assert.InDelta(t, 57.5, score, 1e-9)

	score, hits = ScorePattern(p, "gamma")
	assert.Zero(t, hits)
	assert.Zero(t, score)
}

func TestScorePattern_DuplicateKeywordsIncreaseWeight(t *testing.T) {
	single := Pattern{Keywords: []string{"alpha"}, BaseScore: 50}
	double := Pattern{Keywords: []string{"alpha", "alpha"}, BaseScore: 50}

	s1, _ := ScorePattern(single, "alpha")
	s2, hits := ScorePattern(double, "alpha")
	assert.Equal(t, 2, hits)
	assert.Greater(t, s2, s1)
}

func TestAnalyze_CustomTableAggregation(t *testing.T) {
	a := NewAnalyzerWithPatterns([]Pattern{{
		ID:        "custom",
		Keywords:  []string{"alpha", "beta"},
		Level:     LevelMedium,
		BaseScore: 50,
		Hazards:   lang.TextList{RU: []string{"h"}, TR: []string{"h"}, EN: []string{"h"}},
	}})
	got := a.Analyze("Alpha and BETA", "", "", lang.EN)
	assert.Equal(t, LevelMedium, got.Level)
	assert.Equal(t, 58.0, got.Score)
	assert.InDelta(t, 0.575, got.Confidence, 1e-9)
}

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  Level
	}{
		{100, LevelCritical},
		{80, LevelCritical},
		{79.9, LevelHigh},
		{60, LevelHigh},
		{59.9, LevelMedium},
		{30, LevelMedium},
		{29.9, LevelLow},
		{0, LevelLow},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, LevelForScore(tc.score), "score %v", tc.score)
	}
}

func TestPatternTable(t *testing.T) {
	a := NewAnalyzer()
	n := a.PatternCount()
	require.Equal(t, len(builtinPatterns), n)

	a.AddPattern(Pattern{ID: "extra", Keywords: []string{"zzz"}, BaseScore: 10})
	assert.Equal(t, n+1, a.PatternCount())

	exported := a.ExportPatterns()
	exported[0].ID = "changed"
	assert.Equal(t, PatternHeightWork, a.ExportPatterns()[0].ID, "export must be a copy")

	a.ImportPatterns(nil)
	assert.Zero(t, a.PatternCount())
	assert.Equal(t, LevelMedium, a.Analyze("welding", "", "", lang.EN).Level)
}

func TestBuiltinPatternsFullyLocalized(t *testing.T) {
	for _, p := range DefaultPatterns() {
		for name, list := range map[string]lang.TextList{
			"hazards":  p.Hazards,
			"ppe":      p.RequiredPPE,
			"measures": p.SafetyMeasures,
		} {
			assert.NotEmpty(t, list.RU, "%s %s ru", p.ID, name)
			assert.Len(t, list.TR, len(list.RU), "%s %s tr", p.ID, name)
			assert.Len(t, list.EN, len(list.RU), "%s %s en", p.ID, name)
		}
	}
	for level, recs := range levelRecommendations {
		assert.Len(t, recs.TR, len(recs.RU), level)
		assert.Len(t, recs.EN, len(recs.RU), level)
	}
}

func TestPatternsFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"patterns.yaml", "patterns.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, "nested", name)
			want := DefaultPatterns()[:2]
			require.NoError(t, WritePatternsFile(path, want))

			got, err := LoadPatternsFile(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadPatternsFile_Errors(t *testing.T) {
	_, err := LoadPatternsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAnalyzer_ConcurrentUse(t *testing.T) {
	a := NewAnalyzer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = a.Analyze("welding on scaffold", "", "", lang.EN)
		}()
		go func() {
			defer wg.Done()
			a.AddPattern(Pattern{ID: "p", Keywords: []string{"scaffold"}, BaseScore: 10})
		}()
	}
	wg.Wait()
	assert.Equal(t, len(builtinPatterns)+8, a.PatternCount())
}
