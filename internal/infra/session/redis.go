package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
)

// RedisClient подмножество команд redis, используемых хранилищем
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore хранит абонентов сессий в redis; позволяет запускать несколько инстансов
type RedisStore struct {
	rdb    RedisClient
	ttl    time.Duration
	prefix string
}

// NewRedisStore создает хранилище сессий в redis
func NewRedisStore(rdb RedisClient, ttl time.Duration, prefix string) *RedisStore {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "session"
	}
	return &RedisStore{rdb: rdb, ttl: ttl, prefix: prefix}
}

// Get возвращает абонента сессии
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.Caller, error) {
	data, err := s.rdb.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrStore, err)
	}

	var caller domain.Caller
	if err := json.Unmarshal(data, &caller); err != nil {
		return nil, fmt.Errorf("%w: Get - decode caller: %v", ErrStore, err)
	}
	return &caller, nil
}

// Save сохраняет абонента сессии с TTL
func (s *RedisStore) Save(ctx context.Context, sessionID string, caller domain.Caller) error {
	data, err := json.Marshal(caller)
	if err != nil {
		return fmt.Errorf("%w: Save - encode caller: %v", ErrStore, err)
	}
	if err := s.rdb.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - %v", ErrStore, err)
	}
	return nil
}

// Delete удаляет сессию
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - %v", ErrStore, err)
	}
	return nil
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + ":" + sessionID
}
