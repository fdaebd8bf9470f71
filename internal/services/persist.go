package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lottery-system/internal/store"
	"lottery-system/monitoring"
)

// loadOrSeed reads key from st. A key that was never written is seeded and the
// seed persisted; a corrupt value falls back to the seed in memory only.
func loadOrSeed[T any](ctx context.Context, st store.Store, monitor *monitoring.Monitor, key string, seed func() T) (T, error) {
	v, err := store.LoadJSON[T](ctx, st, key)
	monitor.TrackStoreOperation("get", key, ignoreNotFound(err))

	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, store.ErrNotFound):
		v = seed()
		if err := saveCollection(ctx, st, monitor, key, v); err != nil {
			return v, err
		}
		slog.Info("Seeded collection", "key", key)
		return v, nil
	case errors.Is(err, store.ErrCorrupt):
		slog.Warn("Stored collection is corrupt, using defaults", "key", key, "error", err)
		return seed(), nil
	default:
		return v, fmt.Errorf("failed to load %s: %w", key, err)
	}
}

func saveCollection(ctx context.Context, st store.Store, monitor *monitoring.Monitor, key string, v any) error {
	err := store.SaveJSON(ctx, st, key, v)
	monitor.TrackStoreOperation("put", key, err)
	if err != nil {
		slog.Error("Failed to persist collection", "key", key, "error", err)
	}
	return err
}

func deleteKey(ctx context.Context, st store.Store, monitor *monitoring.Monitor, key string) error {
	err := st.Delete(ctx, key)
	monitor.TrackStoreOperation("delete", key, err)
	if err != nil {
		slog.Error("Failed to delete key", "key", key, "error", err)
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}
