package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSlot хранит документ в строке таблицы record_slots (см. migrations)
type PostgresSlot struct {
	db  *pgxpool.Pool
	key string
}

func NewPostgresSlot(db *pgxpool.Pool, key string) *PostgresSlot {
	return &PostgresSlot{db: db, key: key}
}

func (s *PostgresSlot) Key() string { return s.key }

// Load возвращает документ и его версию; отсутствующая строка - это пустой слот
func (s *PostgresSlot) Load(ctx context.Context) ([]byte, int64, error) {
	query := `
		SELECT version, payload
		FROM record_slots
		WHERE slot_key = $1;
	`
	var (
		version int64
		payload []byte
	)
	err := s.db.QueryRow(ctx, query, s.key).Scan(&version, &payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to load slot %s: %w", s.key, err)
	}
	return payload, version, nil
}

// Save записывает документ, если версия в базе совпадает с expectedVersion
func (s *PostgresSlot) Save(ctx context.Context, payload []byte, expectedVersion int64) (int64, error) {
	if expectedVersion == 0 {
		query := `
			INSERT INTO record_slots (slot_key, version, payload, updated_at)
			VALUES ($1, 1, $2, NOW())
			ON CONFLICT (slot_key) DO NOTHING;
		`
		cmdTag, err := s.db.Exec(ctx, query, s.key, payload)
		if err != nil {
			return 0, fmt.Errorf("failed to create slot %s: %w", s.key, err)
		}
		// Строку успел создать другой писатель
		if cmdTag.RowsAffected() == 0 {
			return 0, ErrVersionConflict
		}
		return 1, nil
	}

	query := `
		UPDATE record_slots SET
			version = version + 1,
			payload = $2,
			updated_at = NOW()
		WHERE slot_key = $1 AND version = $3;
	`
	cmdTag, err := s.db.Exec(ctx, query, s.key, payload, expectedVersion)
	if err != nil {
		return 0, fmt.Errorf("failed to save slot %s: %w", s.key, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, ErrVersionConflict
	}
	return expectedVersion + 1, nil
}
