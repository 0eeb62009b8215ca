// Package cache holds short-lived state kept in Redis rather than Postgres.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const resetPrefix = "forgot:"

// ResetTokenStore keeps the single outstanding reset token per email.
type ResetTokenStore struct {
	client *redis.Client
}

func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

func resetKey(email string) string { return resetPrefix + email }

// Save replaces any earlier token for email.
func (s *ResetTokenStore) Save(ctx context.Context, email, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, resetKey(email), token, ttl).Err(); err != nil {
		return fmt.Errorf("reset token save: %w", err)
	}
	return nil
}

// consumeScript deletes the key only when it still holds the presented token.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Consume removes the outstanding token for email if it equals token, in one
// step, and reports whether it did. A superseded or already used token
// leaves the store untouched.
func (s *ResetTokenStore) Consume(ctx context.Context, email, token string) (bool, error) {
	n, err := consumeScript.Run(ctx, s.client, []string{resetKey(email)}, token).Int()
	if err != nil {
		return false, fmt.Errorf("reset token consume: %w", err)
	}
	return n == 1, nil
}
