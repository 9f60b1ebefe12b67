package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
)

const sessionKeyPrefix = "session:"

// RedisSessionRepository stores sessions as JSON strings with a TTL
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisSessionRepository wraps an existing redis client
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisSessionRepository {
	return &RedisSessionRepository{client: client, ttl: ttl, logger: logger}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Get loads a session and slides its expiry
func (r *RedisSessionRepository) Get(ctx context.Context, id string) (*models.SessionState, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
		}
		r.logger.Error().Err(err).Str("sessionId", id).Msg("Failed to read session from redis")
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var state models.SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		r.logger.Error().Err(err).Str("sessionId", id).Msg("Corrupt session payload, discarding")
		_ = r.client.Del(ctx, sessionKey(id)).Err()
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}

	if r.ttl > 0 {
		if err := r.client.Expire(ctx, sessionKey(id), r.ttl).Err(); err != nil {
			r.logger.Warn().Err(err).Str("sessionId", id).Msg("Failed to refresh session expiry")
		}
	}
	return &state, nil
}

// Save writes the session with the configured TTL
func (r *RedisSessionRepository) Save(ctx context.Context, state *models.SessionState) error {
	if state == nil || state.ID == "" {
		return fmt.Errorf("%w: session id is required", apperrors.ErrBadRequest)
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(state.ID), payload, r.ttl).Err(); err != nil {
		r.logger.Error().Err(err).Str("sessionId", state.ID).Msg("Failed to write session to redis")
		return fmt.Errorf("failed to save session to redis: %w", err)
	}
	return nil
}

// Delete removes the session key
func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		r.logger.Error().Err(err).Str("sessionId", id).Msg("Failed to delete session from redis")
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}

// Count scans the session keyspace
func (r *RedisSessionRepository) Count(ctx context.Context) (int, error) {
	count := 0
	iter := r.client.Scan(ctx, 0, sessionKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan sessions: %w", err)
	}
	return count, nil
}

// Ping checks connectivity to redis
func (r *RedisSessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
