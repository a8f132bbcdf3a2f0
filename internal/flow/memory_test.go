package flow

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dtroode/aethercure-server/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func signUpRecord() model.FlowRecord {
	return model.FlowRecord{
		ID:         uuid.NewString(),
		Kind:       model.FlowKindSignUp,
		OTPSecret:  "JBSWY3DPEHPK3PXP",
		Email:      "a@x.com",
		Username:   "alice",
		Credential: "hashed",
	}
}

func TestMemory_PutGetConsume(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(nil)
	defer m.Close()

	rec := signUpRecord()
	require.NoError(t, m.Put(ctx, rec, time.Minute))

	got, err := m.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	got, err = m.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	got, err = m.Consume(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	_, err = m.Consume(ctx, rec.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = m.Get(ctx, rec.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, 0, m.Len())
}

func TestMemory_GetMissing(t *testing.T) {
	m := NewMemory(nil)
	defer m.Close()

	_, err := m.Get(context.Background(), "missing")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestMemory_UnreachableAfterTTL(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	m := NewMemory(clock.Now)
	defer m.Close()

	rec := signUpRecord()
	other := signUpRecord()
	require.NoError(t, m.Put(ctx, rec, 600*time.Second))
	require.NoError(t, m.Put(ctx, other, 600*time.Second))

	clock.Advance(599 * time.Second)
	_, err := m.Get(ctx, rec.ID)
	require.NoError(t, err)

	clock.Advance(2 * time.Second)
	_, err = m.Get(ctx, rec.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
	_, err = m.Consume(ctx, other.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, 0, m.Len())
}

func TestMemory_TimerRemovesEntry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(nil)
	defer m.Close()

	require.NoError(t, m.Put(ctx, signUpRecord(), 20*time.Millisecond))
	assert.Equal(t, 1, m.Len())

	assert.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestMemory_RePutKeepsNewEntry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(nil)
	defer m.Close()

	rec := signUpRecord()
	require.NoError(t, m.Put(ctx, rec, 20*time.Millisecond))

	rec.Username = "bob"
	require.NoError(t, m.Put(ctx, rec, time.Minute))

	time.Sleep(60 * time.Millisecond)

	got, err := m.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(nil)
	defer m.Close()

	rec := signUpRecord()
	require.NoError(t, m.Put(ctx, rec, time.Minute))
	require.NoError(t, m.Delete(ctx, rec.ID))
	require.NoError(t, m.Delete(ctx, rec.ID))

	_, err := m.Get(ctx, rec.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestMemory_ConcurrentConsumeFirstWins(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(nil)
	defer m.Close()

	for round := 0; round < 50; round++ {
		rec := signUpRecord()
		require.NoError(t, m.Put(ctx, rec, time.Minute))

		var (
			wg      sync.WaitGroup
			wins    atomic.Int32
			misses  atomic.Int32
			start   = make(chan struct{})
			callers = 8
		)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				if _, err := m.Consume(ctx, rec.ID); err == nil {
					wins.Add(1)
				} else if assert.ErrorIs(t, err, model.ErrNotFound) {
					misses.Add(1)
				}
			}()
		}
		close(start)
		wg.Wait()

		require.Equal(t, int32(1), wins.Load())
		require.Equal(t, int32(callers-1), misses.Load())
	}
}

func TestMemory_ConsumeRacesExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(nil)
	defer m.Close()

	for round := 0; round < 50; round++ {
		rec := signUpRecord()
		require.NoError(t, m.Put(ctx, rec, time.Millisecond))
		time.Sleep(time.Millisecond)

		got, err := m.Consume(ctx, rec.ID)
		if err == nil {
			assert.Equal(t, rec.ID, got.ID)
		} else {
			require.ErrorIs(t, err, model.ErrNotFound)
		}

		_, err = m.Consume(ctx, rec.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	}
}

func TestMemory_Close(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(nil)

	require.NoError(t, m.Put(ctx, signUpRecord(), time.Minute))
	require.NoError(t, m.Put(ctx, signUpRecord(), time.Minute))
	require.NoError(t, m.Close())
	assert.Equal(t, 0, m.Len())
}
