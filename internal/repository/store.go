package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/vehicle_gatepass/internal/metrics"
	"github.com/shenikar/vehicle_gatepass/internal/models"
	"github.com/sirupsen/logrus"
)

// schemaVersion пишется в конверт слота; голый JSON-массив читается как версия 0
const schemaVersion = 1

const defaultMaxRetries = 5

type envelope[T any] struct {
	Version int `json:"version"`
	Records []T `json:"records"`
}

// JSONStore - упорядоченная коллекция записей в одном слоте.
// Все записи идут через Mutate: чтение, изменение и CAS по версии слота,
// при конфликте изменение повторяется на свежем снимке.
type JSONStore[T models.Record] struct {
	slot       Slot
	logger     *logrus.Logger
	maxRetries int
}

func NewJSONStore[T models.Record](slot Slot, logger *logrus.Logger, maxRetries int) *JSONStore[T] {
	if maxRetries < 1 {
		maxRetries = defaultMaxRetries
	}
	return &JSONStore[T]{
		slot:       slot,
		logger:     logger,
		maxRetries: maxRetries,
	}
}

// load читает слот. Ошибка носителя возвращается как есть,
// поврежденный документ - как StorageReadError вместе с актуальной версией.
func (s *JSONStore[T]) load(ctx context.Context) ([]T, int64, error) {
	payload, version, err := s.slot.Load(ctx)
	if err != nil {
		return nil, 0, err
	}
	records, err := decode[T](payload)
	if err != nil {
		return nil, version, &models.StorageReadError{Slot: s.slot.Key(), Err: err}
	}
	return records, version, nil
}

func decode[T any](payload []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return []T{}, nil
	}
	if trimmed[0] == '[' {
		var legacy []T
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return nil, fmt.Errorf("decode legacy array: %w", err)
		}
		if legacy == nil {
			legacy = []T{}
		}
		return legacy, nil
	}
	var env envelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Version > schemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSchema, env.Version)
	}
	if env.Records == nil {
		env.Records = []T{}
	}
	return env.Records, nil
}

// LoadAll возвращает все записи в порядке вставки. Никогда не падает:
// отсутствующий, нечитаемый или поврежденный слот дает пустую коллекцию.
func (s *JSONStore[T]) LoadAll(ctx context.Context) []T {
	records, _, err := s.load(ctx)
	if err != nil {
		s.logReadFailure(err)
		return []T{}
	}
	return records
}

func (s *JSONStore[T]) logReadFailure(err error) {
	metrics.SlotReadFailures.WithLabelValues(s.slot.Key()).Inc()
	s.logger.WithFields(logrus.Fields{
		"repository": "json_store",
		"slot":       s.slot.Key(),
	}).WithError(err).Warn("Record slot unreadable, degrading to empty collection")
}

// Mutate - read-modify-write с оптимистической блокировкой.
// fn может вызываться несколько раз и не должна иметь побочных эффектов вне снимка.
func (s *JSONStore[T]) Mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		records, version, err := s.load(ctx)
		if err != nil {
			var readErr *models.StorageReadError
			if !errors.As(err, &readErr) || errors.Is(err, ErrUnsupportedSchema) {
				return &models.StorageWriteError{Slot: s.slot.Key(), Err: err}
			}
			// Поврежденный документ перезаписывается, как и при чтении
			s.logReadFailure(err)
			records = []T{}
		}

		next, err := fn(records)
		if err != nil {
			return err
		}
		if next == nil {
			next = []T{}
		}

		payload, err := json.Marshal(envelope[T]{Version: schemaVersion, Records: next})
		if err != nil {
			return &models.StorageWriteError{Slot: s.slot.Key(), Err: fmt.Errorf("marshal records: %w", err)}
		}

		if _, err := s.slot.Save(ctx, payload, version); err != nil {
			if errors.Is(err, ErrVersionConflict) {
				metrics.SlotConflicts.WithLabelValues(s.slot.Key()).Inc()
				s.logger.WithFields(logrus.Fields{
					"repository": "json_store",
					"slot":       s.slot.Key(),
					"attempt":    attempt + 1,
				}).Debug("Slot version conflict, retrying")
				continue
			}
			return &models.StorageWriteError{Slot: s.slot.Key(), Err: err}
		}
		return nil
	}
	return &models.StorageWriteError{Slot: s.slot.Key(), Err: ErrVersionConflict}
}

// SaveAll полностью перезаписывает слот
func (s *JSONStore[T]) SaveAll(ctx context.Context, records []T) error {
	snapshot := append([]T(nil), records...)
	return s.Mutate(ctx, func([]T) ([]T, error) {
		return snapshot, nil
	})
}

// Append добавляет запись в конец коллекции
func (s *JSONStore[T]) Append(ctx context.Context, record T) (T, error) {
	err := s.Mutate(ctx, func(records []T) ([]T, error) {
		return append(records, record), nil
	})
	return record, err
}

// Prepend добавляет запись в начало коллекции
func (s *JSONStore[T]) Prepend(ctx context.Context, record T) (T, error) {
	err := s.Mutate(ctx, func(records []T) ([]T, error) {
		return append([]T{record}, records...), nil
	})
	return record, err
}

// UpdateByID заменяет первую запись с совпадающим id результатом mutator.
// Ошибка mutator прерывает запись и возвращается вызывающему.
func (s *JSONStore[T]) UpdateByID(ctx context.Context, id uuid.UUID, mutator func(T) (T, error)) (bool, error) {
	var found bool
	err := s.Mutate(ctx, func(records []T) ([]T, error) {
		found = false
		for i := range records {
			if records[i].RecordID() != id {
				continue
			}
			updated, err := mutator(records[i])
			if err != nil {
				return nil, err
			}
			found = true
			records[i] = updated
			return records, nil
		}
		return records, errNoMatch
	})
	if errors.Is(err, errNoMatch) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return found, nil
}

// errNoMatch прерывает Mutate без записи, когда обновлять нечего
var errNoMatch = errors.New("no matching record")

// Get возвращает запись по id
func (s *JSONStore[T]) Get(ctx context.Context, id uuid.UUID) (T, bool) {
	for _, r := range s.LoadAll(ctx) {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Query возвращает записи, удовлетворяющие предикату, в порядке хранения
func (s *JSONStore[T]) Query(ctx context.Context, pred func(T) bool) []T {
	out := make([]T, 0)
	for _, r := range s.LoadAll(ctx) {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
