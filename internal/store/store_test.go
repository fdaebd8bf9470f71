package store

import (
	"context"
	"path/filepath"
	"testing"

	"lottery-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	sqlStore, err := OpenSQLStore(context.Background(), filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlStore.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
		"sqlite": sqlStore,
		"guard":  NewGuardedStore(NewMemoryStore()),
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(context.Background(), KeyUsers)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put(ctx, KeyFAQs, []byte(`[{"id":"1"}]`)))

			value, err := s.Get(ctx, KeyFAQs)
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":"1"}]`, string(value))

			require.NoError(t, s.Put(ctx, KeyFAQs, []byte(`[]`)))
			value, err = s.Get(ctx, KeyFAQs)
			require.NoError(t, err)
			assert.Equal(t, "[]", string(value))

			require.NoError(t, s.Delete(ctx, KeyFAQs))
			_, err = s.Get(ctx, KeyFAQs)
			assert.ErrorIs(t, err, ErrNotFound)

			assert.NoError(t, s.Delete(ctx, KeyFAQs), "deleting a missing key")
		})
	}
}

func TestStore_RoundTripCollections(t *testing.T) {
	ctx := context.Background()

	users := []models.User{
		{ID: "u1", Name: "Adarsh Kumar", Phone: "9876543210", Email: "adarsh@example.com", Role: models.RoleUser, WalletBalance: 2000, IsActive: true},
		{ID: "u2", Name: "Admin User", Phone: "admin", Email: "admin@kerala.gov.in", Role: models.RoleAdmin, WalletBalance: 99999, IsActive: true},
	}
	tickets := []models.PurchasedTicket{
		{ID: "t3", LotteryName: "BHAGYATHARA", DrawCode: "BT-30", DrawNumber: "30", DrawDate: "2023-10-25", Series: "BU", Number: "142769", PurchaseDate: "2023-10-20", Status: models.TicketWon, PrizeAmount: "₹1,00,00,000", PrizeRank: "1st Prize"},
	}
	structures := models.PrizeStructures{
		"BT-30":  {{Rank: "1st Prize", Amount: "₹1,00,00,000", Winners: []string{"BU 142769"}}},
		"BR-106": {},
	}

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, SaveJSON(ctx, s, KeyUsers, users))
			require.NoError(t, SaveJSON(ctx, s, KeyTickets, tickets))
			require.NoError(t, SaveJSON(ctx, s, KeyPrizeStructures, structures))

			gotUsers, err := LoadJSON[[]models.User](ctx, s, KeyUsers)
			require.NoError(t, err)
			assert.Equal(t, users, gotUsers)

			gotTickets, err := LoadJSON[[]models.PurchasedTicket](ctx, s, KeyTickets)
			require.NoError(t, err)
			assert.Equal(t, tickets, gotTickets)

			gotStructures, err := LoadJSON[models.PrizeStructures](ctx, s, KeyPrizeStructures)
			require.NoError(t, err)
			assert.Equal(t, structures, gotStructures)
		})
	}
}

func TestLoadJSON_Corrupt(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Put(ctx, KeyDraws, []byte(`{not json`)))

	_, err := LoadJSON[[]models.LotteryDraw](ctx, s, KeyDraws)

	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Contains(t, err.Error(), KeyDraws)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, s.Put(ctx, "k", value))
	value[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'y'
	again, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewMemoryStore().Put(ctx, "k", []byte("v"))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, KeySessionUser, []byte(`{"id":"u1"}`)))

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	value, err := second.Get(ctx, KeySessionUser)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"u1"}`, string(value))
}

func TestFileStore_SanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "kerala_lottery_users.json"), s.path("kerala_lottery:users"))
	assert.Equal(t, filepath.Join(dir, "__etc_passwd.json"), s.path("../etc/passwd"))
}

func TestSQLStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "store.db")

	first, err := OpenSQLStore(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, KeyInventory, []byte(`[{"id":"POOJA"}]`)))
	require.NoError(t, first.Close())

	second, err := OpenSQLStore(ctx, dsn)
	require.NoError(t, err)
	defer second.Close()

	value, err := second.Get(ctx, KeyInventory)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"POOJA"}]`, string(value))
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()

	s, closeFn, err := Open(ctx, BackendMemory, Options{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	assert.NoError(t, closeFn())

	s, closeFn, err = Open(ctx, BackendFile, Options{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)
	assert.NoError(t, closeFn())

	s, closeFn, err = Open(ctx, BackendSQLite, Options{DSN: filepath.Join(t.TempDir(), "s.db"), Guard: true})
	require.NoError(t, err)
	assert.IsType(t, &GuardedStore{}, s)
	assert.NoError(t, closeFn())

	_, _, err = Open(ctx, BackendRedis, Options{})
	assert.Error(t, err)

	_, closeFn, err = Open(ctx, Backend("etcd"), Options{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store backend")
	assert.Contains(t, err.Error(), "[memory file redis sqlite]")
	assert.NotNil(t, closeFn)
}
