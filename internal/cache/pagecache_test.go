package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPageCache(t *testing.T, ttl time.Duration) (*PageCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewPageCache(client, ttl), mr
}

func TestPageCache_GetAfterPut(t *testing.T) {
	pc, _ := setupPageCache(t, 20*time.Second)
	ctx := context.Background()

	_, ok := pc.Get(ctx, "/api/feed?page=1")
	assert.False(t, ok)

	pc.Put(ctx, "/api/feed?page=1", []byte(`{"posts":[]}`))

	body, ok := pc.Get(ctx, "/api/feed?page=1")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"posts":[]}`), body)

	// A different key is still a miss.
	_, ok = pc.Get(ctx, "/api/feed?page=2")
	assert.False(t, ok)
}

func TestPageCache_ExpiresAfterTTL(t *testing.T) {
	pc, mr := setupPageCache(t, 20*time.Second)
	ctx := context.Background()

	pc.Put(ctx, "/api/feed", []byte("body"))

	mr.FastForward(19 * time.Second)
	_, ok := pc.Get(ctx, "/api/feed")
	assert.True(t, ok)

	mr.FastForward(2 * time.Second)
	_, ok = pc.Get(ctx, "/api/feed")
	assert.False(t, ok)
}

func TestPageCache_ClearOverridesTTL(t *testing.T) {
	pc, _ := setupPageCache(t, time.Hour)
	ctx := context.Background()

	pc.Put(ctx, "/api/feed?page=1", []byte("one"))
	pc.Put(ctx, "/api/feed?page=2", []byte("two"))

	pc.Clear(ctx)

	_, ok := pc.Get(ctx, "/api/feed?page=1")
	assert.False(t, ok)
	_, ok = pc.Get(ctx, "/api/feed?page=2")
	assert.False(t, ok)
}

// Redis going away mid-flight must read as a miss, never as a request error.
func TestPageCache_FailureIsAMiss(t *testing.T) {
	pc, mr := setupPageCache(t, 20*time.Second)
	ctx := context.Background()

	pc.Put(ctx, "/api/feed", []byte("body"))
	mr.Close()

	_, ok := pc.Get(ctx, "/api/feed")
	assert.False(t, ok)

	// Writes and clears are best-effort no-ops once the backend is gone.
	pc.Put(ctx, "/api/feed", []byte("body"))
	pc.Clear(ctx)
}

func TestPageCache_NilClientAlwaysMisses(t *testing.T) {
	pc := NewPageCache(nil, 20*time.Second)
	ctx := context.Background()

	pc.Put(ctx, "key", []byte("body"))
	_, ok := pc.Get(ctx, "key")
	assert.False(t, ok)
	pc.Clear(ctx)
}
