// File: services/booking/store.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gamecoach/config"
	"gamecoach/models"
	"gamecoach/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore holds in-flight booking sessions keyed by session ID.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession) error
	Load(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// redisSessionStore keeps sessions as JSON in the session Redis DB, expiring
// them after the configured TTL.
type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore returns the Redis-backed SessionStore.
func NewRedisSessionStore() SessionStore {
	return &redisSessionStore{client: utils.GetSessionCacheClient()}
}

func (s *redisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	if err := s.client.Set(ctx, session.SessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Load(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, sessionID).Result()
	if err != nil {
		// Expired keys and unknown keys are indistinguishable here.
		return nil, ErrSessionNotFound
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionID).Err()
}
