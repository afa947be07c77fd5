package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"pestdesk/internal/pkg/errs"
)

// RedisStore keeps one active refresh token per staff user. Storing only a
// digest means a leaked redis dump cannot replay sessions.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(userID uuid.UUID) string {
	return "session:refresh:" + userID.String()
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *RedisStore) Save(ctx context.Context, userID uuid.UUID, refreshToken string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(userID), digest(refreshToken), ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to save refresh session")
	}
	return nil
}

func (s *RedisStore) Validate(ctx context.Context, userID uuid.UUID, refreshToken string) (bool, error) {
	stored, err := s.client.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, errs.Wrap(err, "failed to load refresh session")
	}
	return stored == digest(refreshToken), nil
}

func (s *RedisStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return errs.Wrap(err, "failed to delete refresh session")
	}
	return nil
}
