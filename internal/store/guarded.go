package store

import (
	"context"
	"errors"
	"fmt"

	"lottery-system/utils"
)

// GuardedStore fails fast with ErrStoreUnavailable while its circuit breaker
// is open. Missing keys do not count as failures.
type GuardedStore struct {
	inner   Store
	breaker *utils.CircuitBreaker
}

func NewGuardedStore(inner Store, opts ...utils.BreakerOption) *GuardedStore {
	opts = append([]utils.BreakerOption{
		utils.WithMaxRequests(20),
		utils.WithSuccessCheck(func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		}),
	}, opts...)

	return &GuardedStore{
		inner:   inner,
		breaker: utils.NewCircuitBreaker("store", opts...),
	}
}

func (s *GuardedStore) State() utils.State {
	return s.breaker.State()
}

func (s *GuardedStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.execute(ctx, func() error {
		var err error
		value, err = s.inner.Get(ctx, key)
		return err
	})
	return value, err
}

func (s *GuardedStore) Put(ctx context.Context, key string, value []byte) error {
	return s.execute(ctx, func() error {
		return s.inner.Put(ctx, key, value)
	})
}

func (s *GuardedStore) Delete(ctx context.Context, key string) error {
	return s.execute(ctx, func() error {
		return s.inner.Delete(ctx, key)
	})
}

func (s *GuardedStore) execute(ctx context.Context, req func() error) error {
	err := s.breaker.Execute(ctx, req)
	if errors.Is(err, utils.ErrOpenState) || errors.Is(err, utils.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}
