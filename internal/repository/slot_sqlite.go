package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteSlot хранит документ в таблице record_slots файла SQLite.
// Таблица создается в pkg/sqlite при открытии базы.
type SQLiteSlot struct {
	db  *sql.DB
	key string
}

func NewSQLiteSlot(db *sql.DB, key string) *SQLiteSlot {
	return &SQLiteSlot{db: db, key: key}
}

func (s *SQLiteSlot) Key() string { return s.key }

func (s *SQLiteSlot) Load(ctx context.Context) ([]byte, int64, error) {
	var (
		version int64
		payload []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT version, payload FROM record_slots WHERE slot_key = ?`, s.key,
	).Scan(&version, &payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to load slot %s: %w", s.key, err)
	}
	return payload, version, nil
}

func (s *SQLiteSlot) Save(ctx context.Context, payload []byte, expectedVersion int64) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if expectedVersion == 0 {
		res, err = s.db.ExecContext(ctx,
			`INSERT INTO record_slots (slot_key, version, payload, updated_at)
			VALUES (?, 1, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(slot_key) DO NOTHING`,
			s.key, payload)
	} else {
		res, err = s.db.ExecContext(ctx,
			`UPDATE record_slots SET version = version + 1, payload = ?, updated_at = CURRENT_TIMESTAMP
			WHERE slot_key = ? AND version = ?`,
			payload, s.key, expectedVersion)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to save slot %s: %w", s.key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to save slot %s: %w", s.key, err)
	}
	if n == 0 {
		return 0, ErrVersionConflict
	}
	return expectedVersion + 1, nil
}
