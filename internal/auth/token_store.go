package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	accessTokenKeyPrefix  = "access_token:"
	refreshTokenKeyPrefix = "refresh_token:"
)

// TokenStore tracks which issued tokens are still valid. A token missing from
// the store is treated as revoked.
type TokenStore interface {
	SaveAccessToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	SaveRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	AccessTokenValid(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	RefreshTokenValid(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	DeleteAccessToken(ctx context.Context, userID uuid.UUID, tokenID string) error
	DeleteRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string) error
}

// RedisTokenStore keys tokens as <prefix><user_id>:<token_id> with TTL equal
// to the token expiry.
type RedisTokenStore struct {
	client *redis.Client
}

var _ TokenStore = (*RedisTokenStore)(nil)

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func accessKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s%s:%s", accessTokenKeyPrefix, userID.String(), tokenID)
}

func refreshKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s%s:%s", refreshTokenKeyPrefix, userID.String(), tokenID)
}

func (s *RedisTokenStore) SaveAccessToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, accessKey(userID, tokenID), "valid", ttl).Err()
}

func (s *RedisTokenStore) SaveRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKey(userID, tokenID), "valid", ttl).Err()
}

func (s *RedisTokenStore) AccessTokenValid(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, accessKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *RedisTokenStore) RefreshTokenValid(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, refreshKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *RedisTokenStore) DeleteAccessToken(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return s.client.Del(ctx, accessKey(userID, tokenID)).Err()
}

func (s *RedisTokenStore) DeleteRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return s.client.Del(ctx, refreshKey(userID, tokenID)).Err()
}
