package store

import (
	"time"
)

// Resolution is the output tier a wallpaper was rendered at.
type Resolution string

const (
	ResolutionStandard Resolution = "standard"
	ResolutionHD       Resolution = "hd"
	ResolutionUltraHD  Resolution = "ultra-hd"
)

// PriceFor returns the nominal price for a resolution tier.
// The standard tier is always free.
func PriceFor(r Resolution) int64 {
	switch r {
	case ResolutionHD:
		return 350
	case ResolutionUltraHD:
		return 500
	default:
		return 0
	}
}

// Valid reports whether r is one of the known tiers.
func (r Resolution) Valid() bool {
	switch r {
	case ResolutionStandard, ResolutionHD, ResolutionUltraHD:
		return true
	}
	return false
}

type Wallpaper struct {
	ID             string     `json:"id" firestore:"-"`
	Title          string     `json:"title" firestore:"title"`
	Description    string     `json:"description" firestore:"description"`
	ImageURL       string     `json:"imageUrl" firestore:"imageUrl"`
	ThumbnailURL   string     `json:"thumbnailUrl" firestore:"thumbnailUrl"`
	Style          string     `json:"style" firestore:"style"`
	ColorIntensity int        `json:"colorIntensity" firestore:"colorIntensity"`
	Resolution     Resolution `json:"resolution" firestore:"resolution"`
	Price          int64      `json:"price" firestore:"price"`
	CreatorID      string     `json:"creatorId" firestore:"creatorId"`
	Downloads      int64      `json:"downloads" firestore:"downloads"`
	Category       string     `json:"category" firestore:"category"`
	IsPublished    bool       `json:"isPublished" firestore:"isPublished"`
	CreatedAt      time.Time  `json:"createdAt" firestore:"createdAt"`
}

// User is a creator/buyer record. The document id is the auth uid, so it is
// not persisted as a field.
type User struct {
	ID        string    `json:"id" firestore:"-"`
	Username  string    `json:"username" firestore:"username"`
	Email     string    `json:"email" firestore:"email"`
	IsPremium bool      `json:"isPremium" firestore:"isPremium"`
	Earnings  float64   `json:"earnings" firestore:"earnings"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// Purchase is immutable once created.
type Purchase struct {
	ID            string    `json:"id" firestore:"-"`
	UserID        string    `json:"userId" firestore:"userId"`
	WallpaperID   string    `json:"wallpaperId" firestore:"wallpaperId"`
	Amount        int64     `json:"amount" firestore:"amount"`
	Timestamp     time.Time `json:"timestamp" firestore:"timestamp"`
	TransactionID string    `json:"transactionId" firestore:"transactionId"`
}
