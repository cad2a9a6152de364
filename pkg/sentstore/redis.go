package sentstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the set key used when Config.Key is empty.
const DefaultRedisKey = "pkgreach:sent"

// RedisConfig configures a Redis-backed store.
type RedisConfig struct {
	Addr     string // host:port
	Password string
	DB       int
	Key      string // set key, DefaultRedisKey if empty
}

// RedisStore keeps sent emails in a Redis set, shared across hosts.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}, nil
}

// Load returns all members of the sent set.
func (s *RedisStore) Load(ctx context.Context) ([]string, error) {
	emails, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("load sent set: %w", err)
	}
	return emails, nil
}

// Add inserts addresses into the sent set.
func (s *RedisStore) Add(ctx context.Context, emails ...string) error {
	if len(emails) == 0 {
		return nil
	}
	members := make([]any, len(emails))
	for i, e := range emails {
		members[i] = e
	}
	if err := s.client.SAdd(ctx, s.key, members...).Err(); err != nil {
		return fmt.Errorf("add to sent set: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error { return s.client.Close() }

var _ Store = (*RedisStore)(nil)
