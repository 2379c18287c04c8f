package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data   map[string]string
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisPreferenceRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	repo := NewRedisPreferenceRepository(rdb)

	_, found, err := repo.Get(ctx, "u1", "@haptics_enabled")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Set(ctx, "u1", "@haptics_enabled", "false"))
	assert.Equal(t, "false", rdb.data["prefs:u1:@haptics_enabled"])

	v, found, err := repo.Get(ctx, "u1", "@haptics_enabled")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "false", v)

	require.NoError(t, repo.Delete(ctx, "u1", "@haptics_enabled"))
	_, found, err = repo.Get(ctx, "u1", "@haptics_enabled")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisPreferenceRepository_KeysArePerUser(t *testing.T) {
	ctx := context.Background()
	repo := NewRedisPreferenceRepository(newFakeRedis())

	require.NoError(t, repo.Set(ctx, "u1", "@language", `"hi"`))

	_, found, err := repo.Get(ctx, "u2", "@language")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisPreferenceRepository_GetError(t *testing.T) {
	rdb := newFakeRedis()
	rdb.getErr = errors.New("connection refused")
	repo := NewRedisPreferenceRepository(rdb)

	_, found, err := repo.Get(context.Background(), "u1", "@language")
	assert.Error(t, err)
	assert.False(t, found)
}
