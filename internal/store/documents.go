package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// GetDocument returns the value stored under key, or nil if there is none.
func (db *DB) GetDocument(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := db.conn.QueryRowContext(ctx, "SELECT value FROM documents WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// PutDocument stores value under key, replacing any previous value.
func (db *DB) PutDocument(ctx context.Context, key string, value []byte) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// DeleteDocument removes key. Deleting a missing key is not an error.
func (db *DB) DeleteDocument(ctx context.Context, key string) error {
	_, err := db.conn.ExecContext(ctx, "DELETE FROM documents WHERE key = ?", key)
	return err
}
