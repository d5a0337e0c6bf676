package suggestions

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/stellar-ptw/stellar/internal/lang"
	"github.com/stellar-ptw/stellar/internal/textsim"
)

const (
	mergeThreshold        = 0.8
	suggestThreshold      = 0.3
	similarThreshold      = 0.3
	autocompleteThreshold = 0.4
	autocompleteTop       = 3
	minAutocompleteRunes  = 5
	defaultLimit          = 5
)

var hintSimilarWorks = lang.Text{
	RU: "Найдено похожих работ: %d",
	TR: "Benzer iş sayısı: %d",
	EN: "Similar works found: %d",
}

// Engine owns the learned template set. All methods are safe for concurrent
// use; Learn is the only read-modify-write and runs under the write lock.
type Engine struct {
	mu        sync.RWMutex
	templates []WorkTemplate
}

// NewEngine creates an engine with no learned templates.
func NewEngine() *Engine {
	return &Engine{}
}

// Learn merges w into the closest existing template, or appends a new one.
// A template is merged when its normalized description equals w's, or when
// the two descriptions are more than 80% similar. Descriptions that
// normalize to nothing are ignored.
func (e *Engine) Learn(w WorkData) {
	norm := textsim.Normalize(w.Description)
	if norm == "" {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if i := e.findMerge(norm, w.Description); i >= 0 {
		t := &e.templates[i]
		t.Frequency++
		t.RequiredPPE = textsim.Union(t.RequiredPPE, w.RequiredPPE)
		t.SafetyMeasures = textsim.Union(t.SafetyMeasures, w.SafetyMeasures)
		if w.Duration > 0 {
			t.Duration = w.Duration
		}
		if w.Workers > 0 {
			t.Workers = w.Workers
		}
		return
	}

	e.templates = append(e.templates, WorkTemplate{
		WorkType:       w.WorkType,
		Description:    strings.TrimSpace(w.Description),
		Location:       w.Location,
		Duration:       w.Duration,
		RequiredPPE:    textsim.Union([]string{}, w.RequiredPPE),
		SafetyMeasures: textsim.Union([]string{}, w.SafetyMeasures),
		Workers:        w.Workers,
		Frequency:      1,
	})
	e.evict()
}

func (e *Engine) findMerge(norm, description string) int {
	for i, t := range e.templates {
		if textsim.Normalize(t.Description) == norm {
			return i
		}
		if textsim.Similarity(t.Description, description) > mergeThreshold {
			return i
		}
	}
	return -1
}

// evict keeps the Capacity most frequent templates. Ties keep their
// insertion order.
func (e *Engine) evict() {
	if len(e.templates) <= Capacity {
		return
	}
	sort.SliceStable(e.templates, func(i, j int) bool {
		return e.templates[i].Frequency > e.templates[j].Frequency
	})
	e.templates = e.templates[:Capacity]
}

// Suggest returns up to limit templates whose field is more than 30% similar
// to partial, ranked by frequency-weighted similarity.
func (e *Engine) Suggest(partial string, field Field, limit int) []Match {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var matches []Match
	for _, t := range e.templates {
		sim := textsim.Similarity(partial, fieldValue(t, field))
		if sim > suggestThreshold {
			matches = append(matches, Match{Template: cloneTemplate(t), Similarity: sim, Score: weighted(sim, t.Frequency)})
		}
	}
	rankByScore(matches)
	return truncate(matches, limit)
}

// Autocomplete derives PPE, safety measures, duration and crew size from
// the three best templates more than 40% similar to description.
func (e *Engine) Autocomplete(description string, l lang.Language) AutocompleteResult {
	result := AutocompleteResult{
		SuggestedPPE:      []string{},
		SuggestedMeasures: []string{},
		SimilarWorks:      []WorkTemplate{},
	}
	if utf8.RuneCountInString(strings.TrimSpace(description)) < minAutocompleteRunes {
		return result
	}

	e.mu.RLock()
	var matches []Match
	for _, t := range e.templates {
		sim := textsim.Similarity(description, t.Description)
		if sim > autocompleteThreshold {
			matches = append(matches, Match{Template: cloneTemplate(t), Similarity: sim, Score: weighted(sim, t.Frequency)})
		}
	}
	e.mu.RUnlock()

	if len(matches) == 0 {
		return result
	}
	rankByScore(matches)
	top := truncate(matches, autocompleteTop)

	var simSum, durWeight, durSum, workWeight, workSum float64
	for _, m := range top {
		simSum += m.Similarity
		result.SuggestedPPE = textsim.Union(result.SuggestedPPE, m.Template.RequiredPPE)
		result.SuggestedMeasures = textsim.Union(result.SuggestedMeasures, m.Template.SafetyMeasures)
		result.SimilarWorks = append(result.SimilarWorks, m.Template)
		if m.Template.Duration > 0 {
			durSum += m.Template.Duration * m.Similarity
			durWeight += m.Similarity
		}
		if m.Template.Workers > 0 {
			workSum += float64(m.Template.Workers) * m.Similarity
			workWeight += m.Similarity
		}
	}
	if durWeight > 0 {
		result.EstimatedDuration = durSum / durWeight
	}
	if workWeight > 0 {
		result.EstimatedWorkers = int(math.Round(workSum / workWeight))
	}
	result.Confidence = textsim.Clamp(simSum/float64(len(top)), 0, 1)
	result.Hint = fmt.Sprintf(hintSimilarWorks.For(l), len(top))
	return result
}

// FindSimilar returns up to limit templates more than 30% similar to
// description, most similar first.
func (e *Engine) FindSimilar(description string, limit int) []Match {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var matches []Match
	for _, t := range e.templates {
		sim := textsim.Similarity(description, t.Description)
		if sim > similarThreshold {
			matches = append(matches, Match{Template: cloneTemplate(t), Similarity: sim, Score: weighted(sim, t.Frequency)})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return truncate(matches, limit)
}

// Popular returns up to limit templates, most frequently used first.
func (e *Engine) Popular(limit int) []WorkTemplate {
	out := e.Export()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frequency > out[j].Frequency
	})
	if limit <= 0 {
		limit = defaultLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Export returns a copy of every template in insertion order.
func (e *Engine) Export() []WorkTemplate {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]WorkTemplate, len(e.templates))
	for i, t := range e.templates {
		out[i] = cloneTemplate(t)
	}
	return out
}

// Import replaces the template set with a copy of ts. No validation is
// performed.
func (e *Engine) Import(ts []WorkTemplate) {
	cp := make([]WorkTemplate, len(ts))
	for i, t := range ts {
		cp[i] = cloneTemplate(t)
	}
	e.mu.Lock()
	e.templates = cp
	e.mu.Unlock()
}

// Clear forgets every template.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.templates = nil
	e.mu.Unlock()
}

// Len returns the number of templates.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.templates)
}

// Stats summarizes usage across the template set.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := Stats{TotalTemplates: len(e.templates)}
	var best *WorkTemplate
	for i := range e.templates {
		t := &e.templates[i]
		s.TotalUsage += t.Frequency
		if best == nil || t.Frequency > best.Frequency {
			best = t
		}
	}
	if s.TotalTemplates > 0 {
		s.AverageFrequency = float64(s.TotalUsage) / float64(s.TotalTemplates)
	}
	if best != nil {
		cp := cloneTemplate(*best)
		s.MostPopular = &cp
	}
	return s
}

func fieldValue(t WorkTemplate, f Field) string {
	switch f {
	case FieldWorkType:
		return t.WorkType
	case FieldLocation:
		return t.Location
	default:
		return t.Description
	}
}

// weighted ranks by similarity * (1 + ln(frequency)). Frequencies below 1
// come only from imported data and are treated as 1.
func weighted(sim float64, frequency int) float64 {
	if frequency < 1 {
		frequency = 1
	}
	return sim * (1 + math.Log(float64(frequency)))
}

func rankByScore(ms []Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Score > ms[j].Score
	})
}

func truncate(ms []Match, limit int) []Match {
	if limit <= 0 {
		limit = defaultLimit
	}
	if len(ms) > limit {
		return ms[:limit]
	}
	return ms
}

func cloneTemplate(t WorkTemplate) WorkTemplate {
	t.RequiredPPE = slices.Clone(t.RequiredPPE)
	t.SafetyMeasures = slices.Clone(t.SafetyMeasures)
	return t
}
