package cart

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func testStore(t *testing.T, storage Storage) *Store {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{}
	cfg.Cart.StorageNamespace = "luvis-cart-storage"
	return NewStore(storage, cfg, logger)
}

func TestStore_PersistsAcrossLoads(t *testing.T) {
	storage := NewMemoryStorage()
	store := testStore(t, storage)
	ctx := context.Background()

	store.Add(ctx, "session-1", line("p1", "M", 500, 1))
	store.Add(ctx, "session-1", line("p1", "M", 500, 2))
	store.Add(ctx, "session-1", line("p2", "L", 300, 1))

	// A second store over the same storage sees the persisted state
	reloaded := testStore(t, storage).Items(ctx, "session-1")
	require.Len(t, reloaded, 2)
	require.Equal(t, 3, reloaded[0].Quantity)
	require.Equal(t, float64(1800), Total(reloaded))
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := testStore(t, NewMemoryStorage())
	ctx := context.Background()

	store.Add(ctx, "session-a", line("p1", "M", 500, 1))

	require.Empty(t, store.Items(ctx, "session-b"))
}

func TestStore_Clear(t *testing.T) {
	store := testStore(t, NewMemoryStorage())
	ctx := context.Background()

	store.Add(ctx, "s", line("p1", "M", 500, 1))
	store.Clear(ctx, "s")

	require.Empty(t, store.Items(ctx, "s"))
}

func TestStore_UnreadableRecordYieldsEmptyCart(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(context.Background(), "luvis-cart-storage:s", "{not json"))

	store := testStore(t, storage)
	require.Empty(t, store.Items(context.Background(), "s"))
}

// brokenStorage fails every call, as when the backing service is down
type brokenStorage struct{}

func (brokenStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("storage down")
}
func (brokenStorage) Set(ctx context.Context, key string, value string) error {
	return errors.New("storage down")
}
func (brokenStorage) Delete(ctx context.Context, key string) error {
	return errors.New("storage down")
}

func TestStore_DegradesToSessionOnlyCart(t *testing.T) {
	store := testStore(t, brokenStorage{})
	ctx := context.Background()

	// Operations keep working in memory for the current process
	store.Add(ctx, "s", line("p1", "M", 500, 1))
	store.Add(ctx, "s", line("p1", "M", 500, 1))
	items := store.Items(ctx, "s")
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)

	store.Remove(ctx, "s", "p1", "M")
	require.Empty(t, store.Items(ctx, "s"))
}
