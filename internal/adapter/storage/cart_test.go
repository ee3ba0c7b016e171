package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/sapiens-sapiens/storefront/internal/adapter/storage"
	"github.com/sapiens-sapiens/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) storage.CartRepository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cart.db")
	db, err := storage.NewCartDB(t.Context(), path)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate())
	return storage.NewCartRepository(db)
}

func TestCartRepository(t *testing.T) {
	t.Run("LoadEmpty", func(t *testing.T) {
		repo := newRepo(t)
		lines, err := repo.LoadCart(t.Context())
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("ReplaceAndLoadKeepsOrder", func(t *testing.T) {
		repo := newRepo(t)
		want := []domain.CartLine{
			{ProductID: "esp32-devkit-v1", Quantity: 2},
			{ProductID: "ds18b20", Quantity: 1},
			{ProductID: "protoboard-830", Quantity: 5},
		}
		require.NoError(t, repo.ReplaceCart(t.Context(), want))

		got, err := repo.LoadCart(t.Context())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("ReplaceOverwrites", func(t *testing.T) {
		repo := newRepo(t)
		ctx := t.Context()

		first := []domain.CartLine{{ProductID: "ds18b20", Quantity: 1}}
		require.NoError(t, repo.ReplaceCart(ctx, first))

		second := []domain.CartLine{
			{ProductID: "mpu-6050", Quantity: 3},
			{ProductID: "tfmini-s", Quantity: 1},
		}
		require.NoError(t, repo.ReplaceCart(ctx, second))

		got, err := repo.LoadCart(ctx)
		require.NoError(t, err)
		assert.Equal(t, second, got)
	})

	t.Run("ReplaceWithEmptyClears", func(t *testing.T) {
		repo := newRepo(t)
		ctx := t.Context()

		require.NoError(t, repo.ReplaceCart(ctx, []domain.CartLine{
			{ProductID: "ds18b20", Quantity: 1},
		}))
		require.NoError(t, repo.ReplaceCart(ctx, nil))

		got, err := repo.LoadCart(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("MigrateIsIdempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.db")
		db, err := storage.NewCartDB(t.Context(), path)
		require.NoError(t, err)
		t.Cleanup(db.Close)

		require.NoError(t, db.Migrate())
		require.NoError(t, db.Migrate())
	})
}
