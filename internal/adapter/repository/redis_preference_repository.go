package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gigmarket/internal/domain/repository"
)

// RedisKV is the slice of *redis.Client the preference store needs.
type RedisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisPreferenceRepository struct {
	rdb RedisKV
}

func NewRedisPreferenceRepository(rdb RedisKV) repository.PreferenceRepository {
	return &redisPreferenceRepository{rdb: rdb}
}

func preferenceKey(uid, key string) string {
	return fmt.Sprintf("prefs:%s:%s", uid, key)
}

func (r *redisPreferenceRepository) Get(ctx context.Context, uid, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, preferenceKey(uid, key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *redisPreferenceRepository) Set(ctx context.Context, uid, key, value string) error {
	return r.rdb.Set(ctx, preferenceKey(uid, key), value, 0).Err()
}

func (r *redisPreferenceRepository) Delete(ctx context.Context, uid, key string) error {
	return r.rdb.Del(ctx, preferenceKey(uid, key)).Err()
}
