package repositories

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const newsletterSetKey = "newsletter:subscribers"

// RedisNewsletterRepository keeps the subscriber set in a Redis set, so the
// distinct-email semantics come from SADD itself.
type RedisNewsletterRepository struct {
	client *redis.Client
}

func NewRedisNewsletterRepository(client *redis.Client) *RedisNewsletterRepository {
	return &RedisNewsletterRepository{client: client}
}

func (r *RedisNewsletterRepository) Subscribe(ctx context.Context, email string) error {
	return r.client.SAdd(ctx, newsletterSetKey, email).Err()
}

func (r *RedisNewsletterRepository) ListEmails(ctx context.Context) ([]string, error) {
	return r.client.SMembers(ctx, newsletterSetKey).Result()
}
