package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("store: key not found")
	ErrCorrupt          = errors.New("store: stored value is not valid JSON")
	ErrStoreUnavailable = errors.New("store: backing store unavailable")
)

// Keys under which each collection is persisted as one JSON document.
const (
	KeySessionUser     = "session_user"
	KeyUsers           = "users"
	KeyTickets         = "tickets"
	KeyDraws           = "draws"
	KeyPrizeStructures = "prize_structures"
	KeyInventory       = "inventory"
	KeyFAQs            = "faqs"
)

// Store is a durable key-value mapping from string keys to serialized values.
// It gives no transactional guarantees across keys.
type Store interface {
	// Get returns ErrNotFound when key has never been written or was deleted.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// LoadJSON reads key and decodes it into a T.
func LoadJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	var v T

	data, err := s.Get(ctx, key)
	if err != nil {
		return v, err
	}

	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: key %s: %v", ErrCorrupt, key, err)
	}
	return v, nil
}

// SaveJSON encodes v and writes it under key.
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := s.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}
