package flow

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dtroode/aethercure-server/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedis(client)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

func TestRedis_PutGetConsume(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedis(t)

	rec := signUpRecord()
	rec.ExpiresAt = time.Date(2026, 1, 1, 0, 10, 0, 0, time.UTC)
	require.NoError(t, store.Put(ctx, rec, 600*time.Second))

	assert.True(t, mr.Exists(redisKeyPrefix+rec.ID))
	assert.Equal(t, 600*time.Second, mr.TTL(redisKeyPrefix+rec.ID))

	got, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	got, err = store.Consume(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	_, err = store.Consume(ctx, rec.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
	_, err = store.Get(ctx, rec.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestRedis_UnreachableAfterTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedis(t)

	rec := signUpRecord()
	require.NoError(t, store.Put(ctx, rec, 600*time.Second))

	mr.FastForward(599 * time.Second)
	_, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)
	_, err = store.Consume(ctx, rec.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestRedis_Delete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedis(t)

	rec := signUpRecord()
	require.NoError(t, store.Put(ctx, rec, time.Minute))
	require.NoError(t, store.Delete(ctx, rec.ID))

	_, err := store.Get(ctx, rec.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestRedis_ConcurrentConsumeFirstWins(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedis(t)

	rec := signUpRecord()
	require.NoError(t, store.Put(ctx, rec, time.Minute))

	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Consume(ctx, rec.ID); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestRedis_Unavailable(t *testing.T) {
	ctx := context.Background()
	store := NewRedis(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	}))
	defer store.Close()

	err := store.Put(ctx, signUpRecord(), time.Minute)
	require.Error(t, err)
	require.NotErrorIs(t, err, model.ErrNotFound)

	_, err = store.Get(ctx, "id")
	require.Error(t, err)
	require.NotErrorIs(t, err, model.ErrNotFound)
}

func TestRedis_CorruptRecord(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedis(t)

	require.NoError(t, mr.Set(redisKeyPrefix+"bad", "{not json"))

	_, err := store.Get(ctx, "bad")
	require.Error(t, err)
	require.NotErrorIs(t, err, model.ErrNotFound)
}
