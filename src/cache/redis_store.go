package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	logger "github.com/sirupsen/logrus"

	"cotmonitor/src/model"
)

// RedisStore keeps snapshots as JSON values with the max age as TTL, so
// staleness falls out of key expiry.
type RedisStore struct {
	client *redis.Client
	maxAge time.Duration
}

func newRedisStore(cfg *Config, maxAge time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}

	logger.WithField("addr", cfg.RedisAddr).Info("Snapshot cache connected to redis")
	return &RedisStore{client: client, maxAge: maxAge}, nil
}

// NewRedisStoreWithClient wires an existing client, used by tests.
func NewRedisStoreWithClient(client *redis.Client, maxAge time.Duration) *RedisStore {
	return &RedisStore{client: client, maxAge: maxAge}
}

func key(symbol string) string { return "cot:snapshot:" + symbol }

func (s *RedisStore) Get(ctx context.Context, symbol string) (*model.Snapshot, bool) {
	val, err := s.client.Get(ctx, key(symbol)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.WithError(err).WithField("symbol", symbol).Warn("Cache read failed")
		}
		return nil, false
	}

	var snap model.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		logger.WithError(err).WithField("symbol", symbol).Warn("Cache entry corrupt")
		return nil, false
	}
	return &snap, true
}

func (s *RedisStore) Put(ctx context.Context, symbol string, snap *model.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(symbol), payload, s.maxAge).Err()
}
