package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barberbook/barbershop-api/internal/config"
)

// TokenStore keeps revoked JWT IDs in redis until their natural expiry, so
// logout takes effect before the token would have expired on its own.
type TokenStore struct {
	rdb *redis.Client
}

func NewTokenStore(cfg *config.Config) *TokenStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s: %v", cfg.RedisAddr, err)
	}

	return &TokenStore{rdb: rdb}
}

func revocationKey(jti string) string {
	return "revoked_token:" + jti
}

// Revoke denylists a token ID until expiresAt.
func (s *TokenStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revocationKey(jti), "1", ttl).Err()
}

// IsRevoked reports whether a token ID was denylisted. Redis being down
// fails open: a broken cache must not lock every user out.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) bool {
	n, err := s.rdb.Exists(ctx, revocationKey(jti)).Result()
	if err != nil {
		log.Printf("token revocation check failed: %v", err)
		return false
	}
	return n > 0
}
