package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedis(rdb, "chatzy:main:")
	defer func() { _ = s.Close() }()

	ctx := context.Background()

	_, found, err := s.Get(ctx, "users")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "users", []byte(`[]`)))
	assert.True(t, mr.Exists("chatzy:main:users"), "key should be namespaced by prefix")

	v, found, err := s.Get(ctx, "users")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(v))

	require.NoError(t, s.Remove(ctx, "users"))
	require.NoError(t, s.Remove(ctx, "users"))
	assert.False(t, mr.Exists("chatzy:main:users"))
}

func TestDialRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := DialRedis(context.Background(), mr.Addr(), "p:")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))
	got, err := mr.Get("p:k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestDialRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := DialRedis(context.Background(), addr, "")
	assert.Error(t, err)
}
