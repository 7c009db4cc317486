package session

import (
	"context"                        // Context for Redis operations
	"encoding/json"                  // Snapshot encoding
	"errors"                         // Error inspection
	"social_network/internal/domain" // Domain models

	"github.com/redis/go-redis/v9" // Redis client
)

// RedisPersister keeps the snapshot under a single Redis key without expiry
type RedisPersister struct {
	rdb *redis.Client
	key string
}

func NewRedisPersister(rdb *redis.Client, key string) *RedisPersister {
	return &RedisPersister{rdb: rdb, key: key}
}

func (p *RedisPersister) Load(ctx context.Context) (domain.User, error) {
	var u domain.User
	val, err := p.rdb.Get(ctx, p.key).Result() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return u, ErrNoSnapshot // Key does not exist
	} else if err != nil {
		return u, err
	}
	return u, json.Unmarshal([]byte(val), &u)
}

func (p *RedisPersister) Save(ctx context.Context, user domain.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return p.rdb.Set(ctx, p.key, b, 0).Err() // No TTL
}

func (p *RedisPersister) Clear(ctx context.Context) error {
	return p.rdb.Del(ctx, p.key).Err()
}
