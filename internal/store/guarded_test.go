package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"lottery-system/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyStore fails every call while down is set.
type flakyStore struct {
	*MemoryStore
	down  bool
	calls int
}

func (s *flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.calls++
	if s.down {
		return nil, errors.New("connection reset")
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *flakyStore) Put(ctx context.Context, key string, value []byte) error {
	s.calls++
	if s.down {
		return errors.New("connection reset")
	}
	return s.MemoryStore.Put(ctx, key, value)
}

func TestGuardedStore_OpensAfterFailures(t *testing.T) {
	ctx := context.Background()
	inner := &flakyStore{MemoryStore: NewMemoryStore(), down: true}
	s := NewGuardedStore(inner, utils.WithMaxRequests(3), utils.WithTimeout(time.Minute))

	for i := 0; i < 3; i++ {
		err := s.Put(ctx, KeyUsers, []byte(`[]`))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrStoreUnavailable)
	}
	assert.Equal(t, utils.StateOpen, s.State())

	_, err := s.Get(ctx, KeyUsers)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, 3, inner.calls, "open breaker must not reach the backend")
}

func TestGuardedStore_NotFoundIsNotAFailure(t *testing.T) {
	ctx := context.Background()
	s := NewGuardedStore(NewMemoryStore(), utils.WithMaxRequests(2))

	for i := 0; i < 5; i++ {
		_, err := s.Get(ctx, KeyTickets)
		assert.ErrorIs(t, err, ErrNotFound)
	}

	assert.Equal(t, utils.StateClosed, s.State())
}

func TestGuardedStore_Recovers(t *testing.T) {
	ctx := context.Background()
	inner := &flakyStore{MemoryStore: NewMemoryStore(), down: true}
	s := NewGuardedStore(inner, utils.WithMaxRequests(2), utils.WithTimeout(50*time.Millisecond))

	for i := 0; i < 2; i++ {
		_ = s.Put(ctx, KeyUsers, []byte(`[]`))
	}
	require.Equal(t, utils.StateOpen, s.State())

	inner.down = false
	time.Sleep(80 * time.Millisecond)

	require.NoError(t, s.Put(ctx, KeyUsers, []byte(`[{"id":"u1"}]`)))
	assert.Equal(t, utils.StateClosed, s.State())
}
