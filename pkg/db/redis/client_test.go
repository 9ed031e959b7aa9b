package redis_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/pkg/db/redis"
)

func newConfig(t *testing.T, mr *miniredis.Miniredis) redis.Config {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return redis.Config{Host: mr.Host(), Port: port, PoolSize: 2, Timeout: time.Second}
}

func TestClient(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	client, err := redis.NewClient(ctx, newConfig(t, mr))
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	mr.FastForward(2 * time.Minute)
	_, err = client.Get(ctx, "k")
	assert.True(t, errors.Is(err, goredis.Nil))

	require.NoError(t, client.Set(ctx, "k2", []byte("v"), 0))
	require.NoError(t, client.Delete(ctx, "k2"))
	assert.False(t, mr.Exists("k2"))
	assert.NoError(t, client.Ping(ctx))
}

func TestNewClientUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := newConfig(t, mr)
	mr.Close()

	client, err := redis.NewClient(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, client)
}
