package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

const analysisColumns = "id, created_at, source, description, risk_level, risk_score, quality_score, is_valid, payload"

// timeLayout has fixed-width fractional seconds so stored timestamps sort
// lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const minPrefixLen = 4

// SaveAnalysis inserts a. When a.ID is empty a new UUID is assigned; when
// a.CreatedAt is zero the current time is used. The ID is returned.
func (db *DB) SaveAnalysis(ctx context.Context, a *Analysis) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.Source == "" {
		a.Source = SourceCLI
	}
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO analyses (`+analysisColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.CreatedAt.UTC().Format(timeLayout), a.Source, a.Description,
		a.RiskLevel, a.RiskScore, a.QualityScore, a.IsValid, string(a.Payload),
	)
	if err != nil {
		return "", err
	}
	return a.ID, nil
}

// GetAnalysis returns the analysis with the given ID, or ErrNotFound.
func (db *DB) GetAnalysis(ctx context.Context, id string) (*Analysis, error) {
	row := db.conn.QueryRowContext(ctx, "SELECT "+analysisColumns+" FROM analyses WHERE id = ?", id)
	a, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

// ListAnalyses returns up to limit analyses, newest first. An empty level
// matches every risk level.
func (db *DB) ListAnalyses(ctx context.Context, limit int, level string) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.QueryContext(ctx,
		"SELECT "+analysisColumns+` FROM analyses
		WHERE (? = '' OR risk_level = ?)
		ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		level, level, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// FindAnalysis resolves a full ID or an ID prefix of at least four
// characters. It returns ErrNotFound when nothing matches and ErrAmbiguous
// when the prefix matches more than one analysis.
func (db *DB) FindAnalysis(ctx context.Context, prefix string) (*Analysis, error) {
	if len(prefix) < minPrefixLen {
		return db.GetAnalysis(ctx, prefix)
	}
	rows, err := db.conn.QueryContext(ctx,
		"SELECT "+analysisColumns+" FROM analyses WHERE substr(id, 1, ?) = ? LIMIT 2",
		len(prefix), prefix,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var found []*Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return found[0], nil
	default:
		return nil, ErrAmbiguous
	}
}

// CountAnalyses returns the number of stored analyses.
func (db *DB) CountAnalyses(ctx context.Context) (int, error) {
	var n int
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM analyses").Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(s scanner) (*Analysis, error) {
	var (
		a         Analysis
		createdAt string
		payload   sql.NullString
	)
	err := s.Scan(&a.ID, &createdAt, &a.Source, &a.Description, &a.RiskLevel,
		&a.RiskScore, &a.QualityScore, &a.IsValid, &payload)
	if err != nil {
		return nil, err
	}
	a.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if payload.Valid {
		a.Payload = []byte(payload.String)
	}
	return &a, nil
}
