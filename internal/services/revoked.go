package services

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asirianni/LatinAd/internal/logger"
)

// RevokedTokenStore keeps the jti of every token invalidated by logout
// or refresh in Redis, each entry expiring together with the token it
// blocks, so the set never grows beyond the live-token window.
type RevokedTokenStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRevokedTokenStore creates a store writing keys under prefix.
func NewRevokedTokenStore(rdb *redis.Client, prefix string) *RevokedTokenStore {
	return &RevokedTokenStore{rdb: rdb, prefix: prefix}
}

func (s *RevokedTokenStore) key(jti string) string {
	return s.prefix + ":" + jti
}

// Revoke marks the token id as invalid for ttl. A non-positive ttl means
// the token is already expired and there is nothing to block.
func (s *RevokedTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	err := s.rdb.Set(ctx, s.key(jti), "1", ttl).Err()
	if err != nil {
		logger.Log.Errorw("failed to revoke token", "jti", jti, "error", err)
	}
	return err
}

// IsRevoked reports whether the token id has been invalidated.
func (s *RevokedTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := s.rdb.Get(ctx, s.key(jti)).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
