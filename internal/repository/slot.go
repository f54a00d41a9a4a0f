package repository

import (
	"context"
	"errors"
	"sync"
)

// Логические имена слотов
const (
	ViolationsSlot    = "violations"
	NotificationsSlot = "notifications"
	PassesSlot        = "issued_passes"
)

// ErrVersionConflict - слот изменился с момента чтения
var ErrVersionConflict = errors.New("slot version conflict")

// ErrUnsupportedSchema - документ записан более новой версией сервиса
var ErrUnsupportedSchema = errors.New("unsupported slot schema version")

// Slot - долговечное хранилище одного JSON-документа под логическим ключом.
// Save выполняет compare-and-swap по версии: expectedVersion 0 означает "слот еще не создан".
type Slot interface {
	Key() string
	Load(ctx context.Context) (payload []byte, version int64, err error)
	Save(ctx context.Context, payload []byte, expectedVersion int64) (int64, error)
}

// MemorySlot хранит документ в памяти процесса
type MemorySlot struct {
	key     string
	mu      sync.Mutex
	payload []byte
	version int64
}

func NewMemorySlot(key string) *MemorySlot {
	return &MemorySlot{key: key}
}

func (s *MemorySlot) Key() string { return s.key }

func (s *MemorySlot) Load(_ context.Context) ([]byte, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.payload == nil {
		return nil, s.version, nil
	}
	out := make([]byte, len(s.payload))
	copy(out, s.payload)
	return out, s.version, nil
}

func (s *MemorySlot) Save(_ context.Context, payload []byte, expectedVersion int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version != expectedVersion {
		return 0, ErrVersionConflict
	}
	s.payload = make([]byte, len(payload))
	copy(s.payload, payload)
	s.version++
	return s.version, nil
}
