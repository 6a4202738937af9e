package pending

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tsawler/vlier/internal/config"
)

const keyPrefix = "vlier:pending:"

// NewRedisClient connects to redis and checks the connection.
func NewRedisClient(cfg config.RedisConfig, log *zap.Logger) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	log.Info("redis connected", zap.String("addr", cfg.Addr))
	return rdb, nil
}

// RedisStore stores uploads as JSON values that expire after ttl.
type RedisStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisStore returns a Store backed by rdb.
func NewRedisStore(rdb *goredis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, u *Upload) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode upload: %w", err)
	}
	return s.rdb.Set(ctx, keyPrefix+u.ID, data, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Upload, error) {
	data, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var u Upload
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("decode upload %s: %w", id, err)
	}
	return &u, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.rdb.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
