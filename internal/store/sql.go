package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pocketbase/dbx"
	_ "modernc.org/sqlite"
)

const kvTable = "kv_store"

// SQLStore keeps documents in a single sqlite table through dbx.
type SQLStore struct {
	DB *dbx.DB
}

// OpenSQLStore opens (or creates) the sqlite database at dsn and makes sure
// the key-value table exists.
func OpenSQLStore(ctx context.Context, dsn string) (*SQLStore, error) {
	db, err := dbx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite allows a single writer; one connection also keeps ":memory:" databases shared.
	db.DB().SetMaxOpenConns(1)

	s := &SQLStore{DB: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) migrate(ctx context.Context) error {
	_, err := s.DB.NewQuery(`
		CREATE TABLE IF NOT EXISTS kv_store (
			id      TEXT PRIMARY KEY NOT NULL,
			data    TEXT NOT NULL,
			updated INTEGER NOT NULL
		)`).WithContext(ctx).Execute()
	if err != nil {
		return fmt.Errorf("failed to create %s table: %w", kvTable, err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data string

	err := s.DB.Select("data").
		From(kvTable).
		Where(dbx.HashExp{"id": key}).
		WithContext(ctx).
		Row(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return []byte(data), nil
}

func (s *SQLStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.DB.NewQuery(`
		INSERT INTO kv_store (id, data, updated) VALUES ({:id}, {:data}, {:updated})
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated = excluded.updated`).
		Bind(dbx.Params{
			"id":      key,
			"data":    string(value),
			"updated": time.Now().UnixMilli(),
		}).
		WithContext(ctx).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	_, err := s.DB.Delete(kvTable, dbx.HashExp{"id": key}).WithContext(ctx).Execute()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}
