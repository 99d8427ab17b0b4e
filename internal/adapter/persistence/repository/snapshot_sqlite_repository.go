package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase/interfaces"
)

const createAppStateTable = `CREATE TABLE IF NOT EXISTS app_state (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SnapshotSQLiteRepository stores the snapshot as one row of a local SQLite
// key/value table, the way a device keeps its preferences file.
type SnapshotSQLiteRepository struct {
	db  *sql.DB
	key string
}

var _ interfaces.ISnapshotRepository = (*SnapshotSQLiteRepository)(nil)

// NewSnapshotSQLiteRepository creates the table when missing.
func NewSnapshotSQLiteRepository(ctx context.Context, db *sql.DB) (*SnapshotSQLiteRepository, error) {
	if _, err := db.ExecContext(ctx, createAppStateTable); err != nil {
		return nil, fmt.Errorf("create app_state table: %w", err)
	}
	return &SnapshotSQLiteRepository{db: db, key: slotKey()}, nil
}

func (r *SnapshotSQLiteRepository) Load(ctx context.Context) (*entities.Snapshot, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, r.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot row: %w", err)
	}

	snap, ok := entities.DecodeSnapshot([]byte(value))
	if !ok {
		return nil, nil
	}
	return snap, nil
}

func (r *SnapshotSQLiteRepository) Save(ctx context.Context, s entities.Snapshot) error {
	payload, err := entities.EncodeSnapshot(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		r.key, string(payload), nowRFC3339(),
	)
	if err != nil {
		return fmt.Errorf("write snapshot row: %w", err)
	}
	return nil
}

func (r *SnapshotSQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, r.key); err != nil {
		return fmt.Errorf("delete snapshot row: %w", err)
	}
	return nil
}
