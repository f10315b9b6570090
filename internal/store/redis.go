package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/benbrunton/pusoy-dos/internal/config"
	"github.com/benbrunton/pusoy-dos/internal/domain"
	"github.com/benbrunton/pusoy-dos/internal/ports"
)

// RedisStore keeps JSON snapshots under pd:game:{id}. Swap is a WATCH/MULTI
// transaction on that key.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ ports.GameStore = (*RedisStore)(nil)

// NewRedisStore wraps an existing client. A zero ttl keeps games forever.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// DialRedis connects using the redis section of the game config and pings the server.
func DialRedis(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return NewRedisStore(rdb, time.Duration(cfg.TTLSeconds)*time.Second), nil
}

func gameKey(id string) string {
	return fmt.Sprintf("pd:game:%s", id)
}

func (r *RedisStore) Create(ctx context.Context, game domain.GameSnapshot) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", game.ID, err)
	}
	ok, err := r.rdb.SetNX(ctx, gameKey(game.ID), data, r.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ports.ErrAlreadyExists
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, gameID string) (domain.GameSnapshot, error) {
	data, err := r.rdb.Get(ctx, gameKey(gameID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.GameSnapshot{}, ports.ErrNotFound
	}
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	return decodeGame(data)
}

func (r *RedisStore) Swap(ctx context.Context, expectedVersion int64, game domain.GameSnapshot) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", game.ID, err)
	}
	key := gameKey(game.ID)

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ports.ErrNotFound
		}
		if err != nil {
			return err
		}
		stored, err := decodeGame(current)
		if err != nil {
			return err
		}
		if stored.Version != expectedVersion {
			return ports.ErrVersionConflict
		}

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, data, r.ttl)
			return nil
		})
		return err
	}

	err = r.rdb.Watch(ctx, txf, key)
	if errors.Is(err, redis.TxFailedErr) {
		// The key changed between WATCH and EXEC.
		return ports.ErrVersionConflict
	}
	return err
}

func (r *RedisStore) Delete(ctx context.Context, gameID string) error {
	return r.rdb.Del(ctx, gameKey(gameID)).Err()
}

// Close releases the underlying client.
func (r *RedisStore) Close() error {
	return r.rdb.Close()
}
