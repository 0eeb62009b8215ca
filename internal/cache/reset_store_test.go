package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const testRedisAddr = "localhost:6379"

func setupStore(t *testing.T) (*ResetTokenStore, *redis.Client) {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewResetTokenStore(client), client
}

func TestResetTokenStore(t *testing.T) {
	store, client := setupStore(t)
	ctx := context.Background()
	email := "reset-store-test@x.com"
	t.Cleanup(func() { client.Del(ctx, resetKey(email)) })

	ok, err := store.Consume(ctx, email, "first")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Save(ctx, email, "first", time.Minute))
	require.NoError(t, store.Save(ctx, email, "second", time.Minute))

	v, err := client.Get(ctx, "forgot:"+email).Result()
	require.NoError(t, err)
	require.Equal(t, "second", v)

	ttl, err := client.TTL(ctx, "forgot:"+email).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	// superseded token does not consume the current one
	ok, err = store.Consume(ctx, email, "first")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = store.Consume(ctx, email, "second")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.Consume(ctx, email, "second")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestResetTokenStoreConsumeIsSingleUse(t *testing.T) {
	store, client := setupStore(t)
	ctx := context.Background()
	email := "reset-store-race@x.com"
	t.Cleanup(func() { client.Del(ctx, resetKey(email)) })
	require.NoError(t, store.Save(ctx, email, "tok", time.Minute))

	const callers = 20
	var wg sync.WaitGroup
	var wins atomic.Int32
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, err := store.Consume(ctx, email, "tok"); err == nil && ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int32(1), wins.Load())
}
