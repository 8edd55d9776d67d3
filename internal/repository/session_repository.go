package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"solemate/internal/storage"
	redisapp "solemate/internal/storage/redis"

	"github.com/redis/go-redis/v9"
)

type RedisSessionRepo struct {
	Client *redisapp.Client
}

func NewRedisSessionRepo(client *redisapp.Client) *RedisSessionRepo {
	return &RedisSessionRepo{Client: client}
}

func (r *RedisSessionRepo) SaveSession(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error {
	return r.Client.Set(ctx, sessionKey(sessionID), strconv.FormatInt(userID, 10), ttl).Err()
}

func (r *RedisSessionRepo) UserID(ctx context.Context, sessionID string) (int64, error) {
	val, err := r.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return 0, storage.ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value: %w", err)
	}

	return userID, nil
}

func (r *RedisSessionRepo) DeleteSession(ctx context.Context, sessionID string) error {
	return r.Client.Del(ctx, sessionKey(sessionID)).Err()
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
