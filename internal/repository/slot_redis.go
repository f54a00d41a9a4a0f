package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	fieldVersion = "version"
	fieldPayload = "payload"
)

// RedisSlot хранит документ в хэше <prefix>slot:<key> с полями version и payload.
// CAS реализован через WATCH/MULTI.
type RedisSlot struct {
	redisClient *redis.Client
	key         string
	redisKey    string
}

func NewRedisSlot(client *redis.Client, prefix, key string) *RedisSlot {
	return &RedisSlot{
		redisClient: client,
		key:         key,
		redisKey:    fmt.Sprintf("%sslot:%s", prefix, key),
	}
}

func (s *RedisSlot) Key() string { return s.key }

func (s *RedisSlot) Load(ctx context.Context) ([]byte, int64, error) {
	return loadHash(ctx, s.redisClient, s.redisKey)
}

type hashGetter interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

func loadHash(ctx context.Context, c hashGetter, redisKey string) ([]byte, int64, error) {
	vals, err := c.HGetAll(ctx, redisKey).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load slot from Redis: %w", err)
	}
	if len(vals) == 0 {
		return nil, 0, nil
	}
	version, err := strconv.ParseInt(vals[fieldVersion], 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid slot version %q: %w", vals[fieldVersion], err)
	}
	return []byte(vals[fieldPayload]), version, nil
}

func (s *RedisSlot) Save(ctx context.Context, payload []byte, expectedVersion int64) (int64, error) {
	next := expectedVersion + 1
	err := s.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		_, current, err := loadHash(ctx, tx, s.redisKey)
		if err != nil {
			return err
		}
		if current != expectedVersion {
			return ErrVersionConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, s.redisKey, fieldVersion, next, fieldPayload, payload)
			return nil
		})
		return err
	}, s.redisKey)
	if err != nil {
		// Ключ изменился между WATCH и EXEC
		if errors.Is(err, redis.TxFailedErr) || errors.Is(err, ErrVersionConflict) {
			return 0, ErrVersionConflict
		}
		return 0, fmt.Errorf("failed to save slot to Redis: %w", err)
	}
	return next, nil
}
