package store_test

import (
	"context"
	"testing"
	"time"

	"naijawalls/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_WallpaperRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	in := store.Wallpaper{
		Title:          "Durbar festival riders",
		Description:    "Generated with ankara style and 80% color intensity",
		ImageURL:       "https://img.example.com/full.png",
		ThumbnailURL:   "https://img.example.com/thumb.png",
		Style:          "ankara",
		ColorIntensity: 80,
		Resolution:     store.ResolutionHD,
		Price:          350,
		CreatorID:      "U1",
		Category:       "cultural",
		IsPublished:    true,
		CreatedAt:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	id, err := m.CreateWallpaper(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := m.GetWallpaper(ctx, id)
	require.NoError(t, err)

	in.ID = id
	assert.Equal(t, in, *got)
}

func TestMemory_GetWallpaper_NotFound(t *testing.T) {
	m := store.NewMemory()

	_, err := m.GetWallpaper(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemory_ListWallpapers_Filters(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	mk := func(title, category string, published bool, downloads int64, created time.Time) {
		_, err := m.CreateWallpaper(ctx, store.Wallpaper{
			Title:       title,
			Category:    category,
			IsPublished: published,
			Downloads:   downloads,
			CreatedAt:   created,
		})
		require.NoError(t, err)
	}

	mk("a", "cultural", true, 5, day(1))
	mk("b", "cultural", true, 9, day(2))
	mk("c", "cultural", false, 2, day(3))
	mk("d", "abstract", true, 7, day(4))

	// category + published, newest first
	got, err := m.ListWallpapers(ctx, store.ListQuery{
		Category:      "cultural",
		PublishedOnly: true,
		OrderBy:       store.OrderByCreatedAt,
		Desc:          true,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Title)
	assert.Equal(t, "a", got[1].Title)

	// trending: most downloaded first
	got, err = m.ListWallpapers(ctx, store.ListQuery{
		PublishedOnly: true,
		OrderBy:       store.OrderByDownloads,
		Desc:          true,
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].Title)
	assert.Equal(t, "d", got[1].Title)
	assert.Equal(t, "a", got[2].Title)

	// limit
	got, err = m.ListWallpapers(ctx, store.ListQuery{PublishedOnly: true, Limit: 1, OrderBy: store.OrderByDownloads, Desc: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Title)

	// no match is an empty result, not an error
	got, err = m.ListWallpapers(ctx, store.ListQuery{Category: "portraits"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemory_Users(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	err := m.PutUser(ctx, store.User{ID: "U1", Username: "ade", Email: "ade@example.com"})
	require.NoError(t, err)

	u, err := m.GetUser(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, "ade", u.Username)
	assert.Equal(t, 0.0, u.Earnings)

	assert.Error(t, m.PutUser(ctx, store.User{}))

	_, err = m.GetUser(ctx, "U2")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemory_ListPurchasesByUser(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	wID, err := m.CreateWallpaper(ctx, store.Wallpaper{Title: "x", Price: 350, IsPublished: true})
	require.NoError(t, err)

	for i, when := range []time.Time{
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
	} {
		_, err := m.Settle(ctx, store.SettleOp{
			Purchase: store.Purchase{
				UserID:        "U2",
				WallpaperID:   wID,
				Amount:        350,
				Timestamp:     when,
				TransactionID: []string{"tr_first", "tr_second"}[i],
			},
		})
		require.NoError(t, err)
	}

	purchases, err := m.ListPurchasesByUser(ctx, "U2")
	require.NoError(t, err)
	require.Len(t, purchases, 2)

	// newest first
	assert.Equal(t, "tr_second", purchases[0].TransactionID)
	assert.Equal(t, "tr_first", purchases[1].TransactionID)

	none, err := m.ListPurchasesByUser(ctx, "U9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemory_Settle_NotFound(t *testing.T) {
	m := store.NewMemory()

	_, err := m.Settle(context.Background(), store.SettleOp{
		Purchase: store.Purchase{UserID: "U2", WallpaperID: "missing"},
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPriceFor(t *testing.T) {
	assert.Equal(t, int64(0), store.PriceFor(store.ResolutionStandard))
	assert.Equal(t, int64(350), store.PriceFor(store.ResolutionHD))
	assert.Equal(t, int64(500), store.PriceFor(store.ResolutionUltraHD))
}
