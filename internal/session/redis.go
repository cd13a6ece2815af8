package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds how long an abandoned pending-job reference or unread
// flash survives.
const sessionTTL = 24 * time.Hour

type RedisStore struct {
	client *redis.Client
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisStore(opts RedisOptions) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return &RedisStore{client: client}
}

func (r *RedisStore) Set(ctx context.Context, userID, key, value string) error {
	return r.client.Set(ctx, redisKey(userID, key), value, sessionTTL).Err()
}

func (r *RedisStore) Get(ctx context.Context, userID, key string) (string, error) {
	val, err := r.client.Get(ctx, redisKey(userID, key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisStore) Remove(ctx context.Context, userID, key string) error {
	return r.client.Del(ctx, redisKey(userID, key)).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func redisKey(userID, key string) string {
	return "session:" + userID + ":" + key
}
