package suggestions

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar-ptw/stellar/internal/lang"
)

func TestLearn_SameDescriptionNTimes(t *testing.T) {
	e := NewEngine()
	for i := 0; i < 5; i++ {
		e.Learn(WorkData{Description: "Замена подшипников насоса"})
	}
	templates := e.Export()
	require.Len(t, templates, 1)
	assert.Equal(t, 5, templates[0].Frequency)
}

func TestLearn_MergesNormalizedAndSimilar(t *testing.T) {
	e := NewEngine()
	e.Learn(WorkData{Description: "замена подшипников насоса цех номер"})
	e.Learn(WorkData{Description: "Замена, подшипников! насоса цех номер"})
	// 5 of 6 tokens shared
	e.Learn(WorkData{Description: "замена подшипников насоса цех номер два"})
	require.Equal(t, 1, e.Len())
	assert.Equal(t, 3, e.Export()[0].Frequency)

	e.Learn(WorkData{Description: "покраска ограждения"})
	assert.Equal(t, 2, e.Len())
}

func TestLearn_UnionsListsAndOverwritesDuration(t *testing.T) {
	e := NewEngine()
	e.Learn(WorkData{Description: "замена подшипников насоса", Duration: 4, RequiredPPE: []string{"Каска"}})
	e.Learn(WorkData{Description: "замена подшипников насоса", RequiredPPE: []string{"Каска", "Перчатки"}, SafetyMeasures: []string{"LOTO"}})

	got := e.Export()[0]
	assert.Equal(t, []string{"Каска", "Перчатки"}, got.RequiredPPE)
	assert.Equal(t, []string{"LOTO"}, got.SafetyMeasures)
	assert.Equal(t, 4.0, got.Duration, "duration kept when not provided")

	e.Learn(WorkData{Description: "замена подшипников насоса", Duration: 6})
	assert.Equal(t, 6.0, e.Export()[0].Duration)
}

func TestLearn_EmptyDescriptionIgnored(t *testing.T) {
	e := NewEngine()
	e.Learn(WorkData{Description: ""})
	e.Learn(WorkData{Description: "  !!! "})
	assert.Zero(t, e.Len())
}

func TestLearn_EvictsLeastFrequent(t *testing.T) {
	e := NewEngine()
	e.Learn(WorkData{Description: "task000 unique"})
	for i := 0; i <= Capacity; i++ {
		e.Learn(WorkData{Description: fmt.Sprintf("task%03d unique", i)})
	}

	require.Equal(t, Capacity, e.Len())
	var descs []string
	for _, tpl := range e.Export() {
		descs = append(descs, tpl.Description)
	}
	assert.Equal(t, "task000 unique", descs[0])
	assert.NotContains(t, descs, fmt.Sprintf("task%03d unique", Capacity))
}

func seeded() *Engine {
	e := NewEngine()
	e.Learn(WorkData{WorkType: "mechanical", Description: "замена подшипников насоса", Duration: 4, Workers: 2, RequiredPPE: []string{"Каска"}, SafetyMeasures: []string{"LOTO"}})
	for i := 0; i < 5; i++ {
		e.Learn(WorkData{WorkType: "mechanical", Description: "замена подшипников насоса станции", Duration: 8, Workers: 4, RequiredPPE: []string{"Перчатки"}})
	}
	e.Learn(WorkData{WorkType: "hot work", Description: "сварка трубопровода", Location: "эстакада"})
	return e
}

func TestSuggest_FrequencyWeighted(t *testing.T) {
	e := seeded()
	got := e.Suggest("замена подшипников насоса", FieldDescription, 10)
	require.Len(t, got, 2)
	// 0.75 * (1 + ln 5) outranks 1.0 * (1 + ln 1)
	assert.Equal(t, "замена подшипников насоса станции", got[0].Template.Description)
	assert.InDelta(t, 0.75, got[0].Similarity, 1e-9)
	assert.Greater(t, got[0].Score, got[1].Score)

	byType := e.Suggest("hot work", FieldWorkType, 10)
	require.Len(t, byType, 1)
	assert.Equal(t, "сварка трубопровода", byType[0].Template.Description)

	assert.Len(t, e.Suggest("замена подшипников насоса", FieldDescription, 1), 1)
	assert.Empty(t, e.Suggest("совсем другое", FieldDescription, 5))
}

func TestFindSimilar_RawSimilarityOrder(t *testing.T) {
	e := seeded()
	got := e.FindSimilar("замена подшипников насоса", 5)
	require.Len(t, got, 2)
	assert.Equal(t, "замена подшипников насоса", got[0].Template.Description)
	assert.Equal(t, 1.0, got[0].Similarity)
}

func TestAutocomplete(t *testing.T) {
	e := NewEngine()
	e.Learn(WorkData{Description: "замена подшипников насоса", Duration: 4, Workers: 2, RequiredPPE: []string{"Каска"}, SafetyMeasures: []string{"LOTO"}})
	e.Learn(WorkData{Description: "замена подшипников насоса станции", Duration: 8, Workers: 4, RequiredPPE: []string{"Перчатки"}})

	got := e.Autocomplete("замена подшипников насоса", lang.EN)
	assert.Equal(t, []string{"Каска", "Перчатки"}, got.SuggestedPPE)
	assert.Equal(t, []string{"LOTO"}, got.SuggestedMeasures)
	// (4*1 + 8*0.75) / 1.75
	assert.InDelta(t, 10/1.75, got.EstimatedDuration, 1e-9)
	assert.Equal(t, 3, got.EstimatedWorkers)
	assert.InDelta(t, 0.875, got.Confidence, 1e-9)
	assert.Len(t, got.SimilarWorks, 2)
	assert.Equal(t, "Similar works found: 2", got.Hint)
}

func TestAutocomplete_TooShortOrNoMatch(t *testing.T) {
	e := seeded()
	for _, input := range []string{"", "abcd", "совершенно другой текст"} {
		got := e.Autocomplete(input, lang.RU)
		assert.Zero(t, got.Confidence, input)
		assert.Empty(t, got.SuggestedPPE)
		assert.NotNil(t, got.SimilarWorks)
		assert.Empty(t, got.Hint)
	}
}

func TestAutocomplete_TopThreeOnly(t *testing.T) {
	e := NewEngine()
	for i := 0; i < 5; i++ {
		e.Learn(WorkData{Description: fmt.Sprintf("ремонт задвижки насосной позиция%d", i)})
	}
	got := e.Autocomplete("ремонт задвижки насосной", lang.RU)
	assert.Len(t, got.SimilarWorks, 3)
	assert.InDelta(t, 0.75, got.Confidence, 1e-9)
}

func TestPopular(t *testing.T) {
	e := seeded()
	got := e.Popular(2)
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].Frequency)
	assert.Equal(t, 1, got[1].Frequency)
}

func TestStats(t *testing.T) {
	assert.Equal(t, Stats{}, NewEngine().Stats())

	s := seeded().Stats()
	assert.Equal(t, 3, s.TotalTemplates)
	assert.Equal(t, 7, s.TotalUsage)
	assert.InDelta(t, 7.0/3, s.AverageFrequency, 1e-9)
	require.NotNil(t, s.MostPopular)
	assert.Equal(t, "замена подшипников насоса станции", s.MostPopular.Description)
}

func TestExportImport_RoundTripStats(t *testing.T) {
	src := seeded()
	dst := NewEngine()
	dst.Import(src.Export())
	assert.Equal(t, src.Stats(), dst.Stats())
}

func TestExportImport_Copies(t *testing.T) {
	e := seeded()
	exported := e.Export()
	exported[0].RequiredPPE[0] = "mutated"
	assert.NotEqual(t, "mutated", e.Export()[0].RequiredPPE[0])

	in := []WorkTemplate{{Description: "imported", RequiredPPE: []string{"a"}, Frequency: 0}}
	e.Import(in)
	in[0].RequiredPPE[0] = "b"
	assert.Equal(t, []string{"a"}, e.Export()[0].RequiredPPE)

	e.Clear()
	assert.Zero(t, e.Len())
}

func TestLearn_Concurrent(t *testing.T) {
	e := NewEngine()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				e.Learn(WorkData{Description: "проверка огнетушителей"})
				_ = e.Autocomplete("проверка огнетушителей", lang.EN)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, e.Len())
	assert.Equal(t, 80, e.Export()[0].Frequency)
}
