package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store. Eviction of expired
// sessions is delegated to Redis key TTLs.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
	}
}

func (r *RedisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisStore) set(ctx context.Context, s Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session: expires_at must be in the future")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: failed to marshal: %w", err)
	}

	return r.client.Set(ctx, r.key(s.SessionID), data, ttl).Err()
}

func (r *RedisStore) Create(ctx context.Context, s Session) error {
	if s.SessionID == "" {
		return fmt.Errorf("session: missing session_id")
	}
	if s.Authenticated && s.UserName == "" {
		return fmt.Errorf("session: authenticated session requires user_name")
	}
	return r.set(ctx, s)
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	val, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal: %w", err)
	}

	return &s, nil
}

// Touch re-saves the session with a new expiry. Sessions are extended on
// every authenticated request, so last writer wins per session id.
func (r *RedisStore) Touch(ctx context.Context, sessionID string, expiresAt time.Time) error {
	s, err := r.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if s == nil {
		return nil // evicted since it was read; nothing to extend
	}

	s.ExpiresAt = expiresAt
	if time.Until(expiresAt) <= 0 {
		// Extending into the past just kills the session.
		return r.client.Del(ctx, r.key(sessionID)).Err()
	}
	return r.set(ctx, *s)
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID)).Err()
}
