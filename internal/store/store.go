package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnavailable is returned when the backing store cannot be reached.
var ErrUnavailable = errors.New("store unavailable")

// DefaultListLimit caps wallpaper listings when no limit is given.
const DefaultListLimit = 24

// Order names the fields a wallpaper listing may be sorted by.
const (
	OrderByCreatedAt = "createdAt"
	OrderByDownloads = "downloads"
)

type ListQuery struct {
	Category      string
	CreatorID     string
	PublishedOnly bool
	OrderBy       string
	Desc          bool
	Limit         int
}

// SettleOp describes one settlement as a single transactional unit: create
// the purchase, bump the wallpaper's download counter and credit the
// creator's share. Either every write commits or none do.
type SettleOp struct {
	Purchase     Purchase
	CreatorShare float64
}

type SettleResult struct {
	Purchase *Purchase

	// CreatorCredited is false when the wallpaper's creatorId did not
	// resolve to a user record and the earnings credit was skipped.
	CreatorCredited bool
}

// Catalog is the persistence boundary for wallpapers, users and purchases.
// Counter fields (downloads, earnings) are only ever mutated through
// store-side atomic increments, never read-modify-write.
type Catalog interface {
	GetWallpaper(ctx context.Context, id string) (*Wallpaper, error)
	CreateWallpaper(ctx context.Context, w Wallpaper) (string, error)
	ListWallpapers(ctx context.Context, q ListQuery) ([]Wallpaper, error)

	GetUser(ctx context.Context, id string) (*User, error)
	PutUser(ctx context.Context, u User) error

	GetPurchase(ctx context.Context, id string) (*Purchase, error)
	ListPurchasesByUser(ctx context.Context, userID string) ([]Purchase, error)

	Settle(ctx context.Context, op SettleOp) (*SettleResult, error)
}
