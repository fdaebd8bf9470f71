package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Backend names a Store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
	BackendSQLite Backend = "sqlite"
)

type Options struct {
	Dir         string        // file backend
	DSN         string        // sqlite backend
	RedisClient *redis.Client // redis backend
	RedisPrefix string
	// Guard wraps network and database backends with a circuit breaker.
	Guard bool
}

// Open creates the Store for backend. The returned close function releases
// any underlying connection and is never nil.
func Open(ctx context.Context, backend Backend, opts Options) (Store, func() error, error) {
	noop := func() error { return nil }

	switch backend {
	case BackendMemory:
		return NewMemoryStore(), noop, nil

	case BackendFile:
		s, err := NewFileStore(opts.Dir)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case BackendRedis:
		if opts.RedisClient == nil {
			return nil, noop, fmt.Errorf("redis backend requires a redis client")
		}
		s := NewRedisStore(opts.RedisClient, opts.RedisPrefix)
		return guard(s, opts.Guard), s.Close, nil

	case BackendSQLite:
		s, err := OpenSQLStore(ctx, opts.DSN)
		if err != nil {
			return nil, noop, err
		}
		return guard(s, opts.Guard), s.Close, nil

	default:
		return nil, noop, fmt.Errorf("unsupported store backend: %s (supported: %v)", backend, SupportedBackends())
	}
}

func guard(s Store, enabled bool) Store {
	if !enabled {
		return s
	}
	return NewGuardedStore(s)
}

// SupportedBackends lists the backends Open understands.
func SupportedBackends() []Backend {
	return []Backend{BackendMemory, BackendFile, BackendRedis, BackendSQLite}
}
