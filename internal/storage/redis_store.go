package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/pizzaa/pizza-store/internal/models"
)

// RedisStore keeps the JSON-encoded menu in a single redis key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore pings the server once so a bad address fails at startup
// instead of on the first request.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrStoreUnavailable, addr, err)
	}
	return &RedisStore{client: client}, nil
}

// Load returns the persisted menu, or an empty menu when the key is unset.
func (s *RedisStore) Load(ctx context.Context) (models.Menu, error) {
	data, err := s.client.Get(ctx, MenuKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Menu{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrStoreUnavailable, MenuKey, err)
	}

	var m models.Menu
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrStoreUnavailable, MenuKey, err)
	}
	return m, nil
}

// Save overwrites the menu key with the full encoded menu.
func (s *RedisStore) Save(ctx context.Context, m models.Menu) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}
	if err := s.client.Set(ctx, MenuKey, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrStoreUnavailable, MenuKey, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
