package settlement_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"naijawalls/internal/settlement"
	"naijawalls/internal/store"
	"naijawalls/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedWallpaper(t *testing.T, catalog *store.Memory, creatorID string, price int64) string {
	t.Helper()

	id, err := catalog.CreateWallpaper(context.Background(), store.Wallpaper{
		Title:       "Eyo masquerade at dusk",
		Resolution:  store.ResolutionUltraHD,
		Price:       price,
		CreatorID:   creatorID,
		Category:    "cultural",
		IsPublished: true,
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	return id
}

func TestSettlePurchase(t *testing.T) {
	ctx := context.Background()

	catalog := store.NewMemory()
	require.NoError(t, catalog.PutUser(ctx, store.User{ID: "U1", Username: "ade", Email: "ade@example.com"}))
	wallpaperID := seedWallpaper(t, catalog, "U1", 500)

	engine := settlement.New(catalog, discardLogger())

	purchase, err := engine.SettlePurchase(ctx, "U2", wallpaperID, 500)
	require.NoError(t, err)

	assert.NotEmpty(t, purchase.ID)
	assert.Equal(t, "U2", purchase.UserID)
	assert.Equal(t, wallpaperID, purchase.WallpaperID)
	assert.Equal(t, int64(500), purchase.Amount)
	assert.True(t, strings.HasPrefix(purchase.TransactionID, "tr_"))
	assert.False(t, purchase.Timestamp.IsZero())

	stored, err := catalog.GetPurchase(ctx, purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, purchase.TransactionID, stored.TransactionID)

	w, err := catalog.GetWallpaper(ctx, wallpaperID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), w.Downloads)

	creator, err := catalog.GetUser(ctx, "U1")
	require.NoError(t, err)
	assert.InDelta(t, 350.0, creator.Earnings, 1e-9)
}

func TestSettlePurchase_WallpaperNotFound(t *testing.T) {
	ctx := context.Background()
	catalog := store.NewMemory()
	engine := settlement.New(catalog, discardLogger())

	_, err := engine.SettlePurchase(ctx, "U2", "missing", 500)
	assert.ErrorIs(t, err, store.ErrNotFound)

	purchases, err := catalog.ListPurchasesByUser(ctx, "U2")
	require.NoError(t, err)
	assert.Empty(t, purchases)
}

func TestSettlePurchase_AmountMismatch(t *testing.T) {
	ctx := context.Background()

	catalog := store.NewMemory()
	wallpaperID := seedWallpaper(t, catalog, "U1", 500)
	engine := settlement.New(catalog, discardLogger())

	_, err := engine.SettlePurchase(ctx, "U2", wallpaperID, 400)
	assert.ErrorIs(t, err, settlement.ErrAmountMismatch)

	w, err := catalog.GetWallpaper(ctx, wallpaperID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.Downloads)
}

func TestSettlePurchase_InvalidInput(t *testing.T) {
	ctx := context.Background()

	// No expectations: the engine must reject before touching the store.
	db := mocks.NewCatalog(t)
	engine := settlement.New(db, discardLogger())

	for name, call := range map[string]func() error{
		"empty buyer": func() error {
			_, err := engine.SettlePurchase(ctx, "", "w1", 500)
			return err
		},
		"empty wallpaper": func() error {
			_, err := engine.SettlePurchase(ctx, "U2", "", 500)
			return err
		},
		"negative amount": func() error {
			_, err := engine.SettlePurchase(ctx, "U2", "w1", -1)
			return err
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(), settlement.ErrInvalidInput)
		})
	}
}

func TestSettlePurchase_OrphanedCreator(t *testing.T) {
	ctx := context.Background()

	catalog := store.NewMemory()
	wallpaperID := seedWallpaper(t, catalog, "ghost", 500)
	engine := settlement.New(catalog, discardLogger())

	purchase, err := engine.SettlePurchase(ctx, "U2", wallpaperID, 500)
	require.NoError(t, err)
	assert.NotEmpty(t, purchase.ID)

	w, err := catalog.GetWallpaper(ctx, wallpaperID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), w.Downloads)

	_, err = catalog.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSettlePurchase_FreeWallpaper(t *testing.T) {
	ctx := context.Background()

	catalog := store.NewMemory()
	require.NoError(t, catalog.PutUser(ctx, store.User{ID: "U1"}))
	id, err := catalog.CreateWallpaper(ctx, store.Wallpaper{
		Title:       "Zuma Rock",
		Resolution:  store.ResolutionStandard,
		Price:       0,
		CreatorID:   "U1",
		IsPublished: true,
	})
	require.NoError(t, err)

	engine := settlement.New(catalog, discardLogger())

	_, err = engine.SettlePurchase(ctx, "U2", id, 0)
	require.NoError(t, err)

	creator, err := catalog.GetUser(ctx, "U1")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, creator.Earnings, 1e-9)
}

func TestSettlePurchase_StoreFailure(t *testing.T) {
	ctx := context.Background()

	w := &store.Wallpaper{ID: "w1", Price: 500, CreatorID: "U1"}
	db := mocks.NewCatalog(t)
	db.On("GetWallpaper", mock.Anything, "w1").Return(w, nil)
	db.On("Settle", mock.Anything, mock.Anything).Return(nil, store.ErrUnavailable)

	engine := settlement.New(db, discardLogger())

	_, err := engine.SettlePurchase(ctx, "U2", "w1", 500)
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

func TestSettlePurchase_Concurrent(t *testing.T) {
	ctx := context.Background()

	catalog := store.NewMemory()
	require.NoError(t, catalog.PutUser(ctx, store.User{ID: "U1"}))
	wallpaperID := seedWallpaper(t, catalog, "U1", 500)
	engine := settlement.New(catalog, discardLogger())

	const n = 25

	var wg sync.WaitGroup
	errs := make(chan error, n)
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := engine.SettlePurchase(ctx, "U2", wallpaperID, 500)
			if err != nil {
				errs <- err
				return
			}
			ids <- p.ID
		}()
	}
	wg.Wait()
	close(errs)
	close(ids)

	for err := range errs {
		t.Fatalf("concurrent settle failed: %v", err)
	}

	distinct := make(map[string]struct{})
	for id := range ids {
		distinct[id] = struct{}{}
	}
	assert.Len(t, distinct, n)

	w, err := catalog.GetWallpaper(ctx, wallpaperID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), w.Downloads)

	purchases, err := catalog.ListPurchasesByUser(ctx, "U2")
	require.NoError(t, err)
	assert.Len(t, purchases, n)

	creator, err := catalog.GetUser(ctx, "U1")
	require.NoError(t, err)
	assert.InDelta(t, float64(n)*350.0, creator.Earnings, 1e-6)
}
