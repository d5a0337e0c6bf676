package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/stellar-ptw/stellar/internal/config"
	"github.com/stellar-ptw/stellar/internal/lang"
	"github.com/stellar-ptw/stellar/internal/logging"
	"github.com/stellar-ptw/stellar/internal/output"
	"github.com/stellar-ptw/stellar/internal/personnel"
	"github.com/stellar-ptw/stellar/internal/risk"
	"github.com/stellar-ptw/stellar/internal/stellar"
	"github.com/stellar-ptw/stellar/internal/store"
)

// patternsFileName is looked up in the data directory when no patterns
// file is configured.
const patternsFileName = "patterns.yaml"

// env is everything a command needs: config, logger, store and engine.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	lang   lang.Language
	db     *store.DB
	engine *stellar.Engine
	roster []personnel.Person
}

// newEnv loads configuration, opens the store and builds an engine with the
// learned templates restored.
func newEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(logging.Level(cfg.LogLevel, flagVerbose))
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	output.AutoColor(cfg.Output.Color && !flagNoColor && !flagJSON, os.Stdout)

	e := &env{cfg: cfg, logger: logger, lang: lang.Parse(cfg.Language)}
	if flagLang != "" {
		e.lang = lang.Parse(flagLang)
	}

	analyzer := risk.NewAnalyzer()
	if path := e.patternsPath(); path != "" {
		patterns, err := risk.LoadPatternsFile(path)
		switch {
		case err == nil:
			analyzer = risk.NewAnalyzerWithPatterns(patterns)
			logger.Debug("loaded risk patterns", zap.String("path", path), zap.Int("count", len(patterns)))
		case errors.Is(err, fs.ErrNotExist) && cfg.PatternsFile == "":
		default:
			return nil, fmt.Errorf("loading patterns: %w", err)
		}
	}

	rosterFile := cfg.RosterFile
	if flagRoster != "" {
		rosterFile = flagRoster
	}
	if rosterFile != "" {
		e.roster, err = personnel.LoadRoster(rosterFile)
		if err != nil {
			return nil, fmt.Errorf("loading roster: %w", err)
		}
		logger.Debug("loaded roster", zap.String("path", rosterFile), zap.Int("people", len(e.roster)))
	}

	e.db, err = store.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	e.engine = stellar.New(stellar.Options{
		Risk:   analyzer,
		Store:  e.db,
		Logger: logger,
	})
	if err := e.engine.Restore(ctx); err != nil {
		// A broken snapshot should not block analysis.
		logger.Warn("restoring learned templates", zap.Error(err))
	}
	return e, nil
}

// patternsPath is the configured patterns file, or patterns.yaml in the
// data directory.
func (e *env) patternsPath() string {
	if e.cfg.PatternsFile != "" {
		return e.cfg.PatternsFile
	}
	return filepath.Join(e.cfg.DataDir, patternsFileName)
}

func (e *env) Close() {
	if e.db != nil {
		if err := e.db.Close(); err != nil {
			e.logger.Warn("closing database", zap.Error(err))
		}
	}
	_ = e.logger.Sync()
}

// requireRoster fails with a hint when no roster is loaded.
func (e *env) requireRoster() error {
	if len(e.roster) == 0 {
		return errors.New("no roster loaded: pass --roster or set roster_file in the config")
	}
	return nil
}
