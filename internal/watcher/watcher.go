// Package watcher follows a draft permit file on disk, re-analyzing it after
// every save and emitting alerts when the risk picture changes.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/stellar-ptw/stellar/internal/anomaly"
	"github.com/stellar-ptw/stellar/internal/debounce"
	"github.com/stellar-ptw/stellar/internal/lang"
	"github.com/stellar-ptw/stellar/internal/risk"
	"github.com/stellar-ptw/stellar/internal/stellar"
)

// Analyzer produces the analysis the watcher compares between saves.
type Analyzer interface {
	Analyze(req stellar.Request, l lang.Language) stellar.ComprehensiveAnalysis
}

// State captures the analysis of the draft at one point in time.
type State struct {
	Timestamp    time.Time
	Request      stellar.Request
	Level        risk.Level
	RiskScore    float64
	QualityScore float64
	Valid        bool
	Issues       []string // fields with high-severity anomalies
	Analysis     stellar.ComprehensiveAnalysis
}

// Alert represents a notable change in the draft.
type Alert struct {
	Level   string    `json:"level"` // "info", "warning", "critical"
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Watcher re-analyzes a draft permit file whenever it is saved.
type Watcher struct {
	path     string
	analyzer Analyzer
	lang     lang.Language
	delay    time.Duration
	alertFn  func(Alert)
	now      func() time.Time

	// OnAnalysis, when set, receives every successful snapshot.
	OnAnalysis func(State)
	Logger     *zap.Logger

	mu            sync.Mutex
	previous      *State
	lastAlertKeys map[string]bool // dedup: suppress repeated identical alerts
}

// New creates a Watcher for the draft at path. Saves closer together than
// delay are handled as one.
func New(path string, a Analyzer, l lang.Language, delay time.Duration, alertFn func(Alert)) *Watcher {
	return &Watcher{
		path:          filepath.Clean(path),
		analyzer:      a,
		lang:          l,
		delay:         delay,
		alertFn:       alertFn,
		now:           time.Now,
		Logger:        zap.NewNop(),
		lastAlertKeys: make(map[string]bool),
	}
}

// Run takes an initial snapshot, then watches the draft's directory and
// checks the draft after each debounced burst of writes. Blocks until ctx is
// cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fsw.Close()

	// Editors often save by renaming a temp file over the target, which
	// drops a watch placed on the file itself.
	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	initial, err := w.Snapshot()
	if err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}
	w.mu.Lock()
	w.previous = initial
	w.mu.Unlock()
	w.Logger.Info("watching draft",
		zap.String("path", w.path),
		zap.String("level", string(initial.Level)),
		zap.Duration("debounce", w.delay),
	)

	deb := debounce.New(w.delay, func() { w.emit(w.Check()) })
	defer deb.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.Logger.Debug("draft changed", zap.String("op", event.Op.String()))
				deb.Trigger()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("file watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) emit(alerts []Alert) {
	if w.alertFn == nil {
		return
	}
	for _, a := range alerts {
		w.alertFn(a)
	}
}

// Check performs a single cycle: takes a new snapshot, compares it with the
// previous one and returns any alerts. Identical alerts are suppressed until
// the draft changes in a way that clears them.
func (w *Watcher) Check() []Alert {
	curr, err := w.Snapshot()
	if err != nil {
		return []Alert{{
			Level:   "warning",
			Title:   "Draft unreadable",
			Message: err.Error(),
			Time:    w.now(),
		}}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var raw []Alert
	if w.previous != nil {
		raw = Compare(w.previous, curr)
	}

	currentKeys := make(map[string]bool, len(raw))
	var alerts []Alert
	for _, a := range raw {
		key := a.Level + ":" + a.Title + ":" + a.Message
		currentKeys[key] = true
		if !w.lastAlertKeys[key] {
			alerts = append(alerts, a)
		}
	}
	w.lastAlertKeys = currentKeys

	w.previous = curr
	return alerts
}

// Snapshot reads and analyzes the draft.
func (w *Watcher) Snapshot() (*State, error) {
	req, err := stellar.LoadRequest(w.path)
	if err != nil {
		return nil, err
	}
	state := NewState(req, w.analyzer.Analyze(req, w.lang), w.now())
	if w.OnAnalysis != nil {
		w.OnAnalysis(*state)
	}
	return state, nil
}

// NewState summarizes an analysis of req taken at ts.
func NewState(req stellar.Request, a stellar.ComprehensiveAnalysis, ts time.Time) *State {
	state := &State{
		Timestamp:    ts,
		Request:      req,
		Level:        a.Risk.Level,
		RiskScore:    a.Risk.Score,
		QualityScore: a.Quality.Score,
		Valid:        a.Quality.IsValid,
		Analysis:     a,
	}
	for _, an := range a.Quality.Anomalies {
		if an.Severity == anomaly.SeverityHigh {
			state.Issues = append(state.Issues, an.Field)
		}
	}
	return state
}
