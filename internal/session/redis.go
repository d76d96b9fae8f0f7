package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VanshChoyal/Sea-Arsh/internal/domain"
)

// RedisStore keys the scratch space by session id so a shopper's selection
// survives across storefront instances. Entries expire with the session.
type RedisStore struct {
	client    *redis.Client
	sessionID string
	baseTTL   time.Duration
}

func NewRedisStore(client *redis.Client, sessionID string) *RedisStore {
	return &RedisStore{
		client:    client,
		sessionID: sessionID,
		baseTTL:   30 * time.Minute,
	}
}

func (r *RedisStore) Put(ctx context.Context, snapshot *domain.SelectionSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	ttl := r.baseTTL + jitter
	if setErr := r.client.Set(ctx, r.key(), raw, ttl).Err(); setErr != nil {
		return fmt.Errorf("redis set failed: %w", setErr)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context) (*domain.SelectionSnapshot, error) {
	raw, err := r.client.Get(ctx, r.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var snapshot domain.SelectionSnapshot
	if err2 := json.Unmarshal(raw, &snapshot); err2 != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err2)
	}
	return &snapshot, nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key()).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (r *RedisStore) key() string {
	return fmt.Sprintf("session:%s:%s", r.sessionID, domain.SnapshotKey)
}
