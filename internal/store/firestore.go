package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	colWallpapers = "wallpapers"
	colUsers      = "users"
	colPurchases  = "purchases"
)

// NewFirestore returns a Catalog backed by Cloud Firestore.
func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

type Firestore struct {
	client *firestore.Client
}

var _ Catalog = (*Firestore)(nil)

func (f *Firestore) GetWallpaper(ctx context.Context, id string) (*Wallpaper, error) {
	doc, err := f.client.Collection(colWallpapers).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	var w Wallpaper
	if err := doc.DataTo(&w); err != nil {
		return nil, err
	}
	w.ID = doc.Ref.ID

	return &w, nil
}

func (f *Firestore) CreateWallpaper(ctx context.Context, w Wallpaper) (string, error) {
	ref := f.client.Collection(colWallpapers).NewDoc()
	if _, err := ref.Create(ctx, w); err != nil {
		return "", mapErr(err)
	}
	return ref.ID, nil
}

func (f *Firestore) ListWallpapers(ctx context.Context, q ListQuery) ([]Wallpaper, error) {
	query := f.client.Collection(colWallpapers).Query

	if q.PublishedOnly {
		query = query.Where("isPublished", "==", true)
	}
	if q.Category != "" {
		query = query.Where("category", "==", q.Category)
	}
	if q.CreatorID != "" {
		query = query.Where("creatorId", "==", q.CreatorID)
	}

	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = OrderByCreatedAt
	}
	dir := firestore.Asc
	if q.Desc {
		dir = firestore.Desc
	}
	query = query.OrderBy(orderBy, dir)

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	query = query.Limit(limit)

	dsnap, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, mapErr(err)
	}

	wallpapers := make([]Wallpaper, 0, len(dsnap))
	for _, doc := range dsnap {
		var w Wallpaper
		if err := doc.DataTo(&w); err != nil {
			return nil, err
		}
		w.ID = doc.Ref.ID
		wallpapers = append(wallpapers, w)
	}

	return wallpapers, nil
}

func (f *Firestore) GetUser(ctx context.Context, id string) (*User, error) {
	doc, err := f.client.Collection(colUsers).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	var u User
	if err := doc.DataTo(&u); err != nil {
		return nil, err
	}
	u.ID = doc.Ref.ID

	return &u, nil
}

func (f *Firestore) PutUser(ctx context.Context, u User) error {
	if u.ID == "" {
		return fmt.Errorf("put user: missing id")
	}
	if _, err := f.client.Collection(colUsers).Doc(u.ID).Set(ctx, u); err != nil {
		return mapErr(err)
	}
	return nil
}

func (f *Firestore) GetPurchase(ctx context.Context, id string) (*Purchase, error) {
	doc, err := f.client.Collection(colPurchases).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	var p Purchase
	if err := doc.DataTo(&p); err != nil {
		return nil, err
	}
	p.ID = doc.Ref.ID

	return &p, nil
}

func (f *Firestore) ListPurchasesByUser(ctx context.Context, userID string) ([]Purchase, error) {
	dsnap, err := f.client.Collection(colPurchases).
		Where("userId", "==", userID).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, mapErr(err)
	}

	purchases := make([]Purchase, 0, len(dsnap))
	for _, doc := range dsnap {
		var p Purchase
		if err := doc.DataTo(&p); err != nil {
			return nil, err
		}
		p.ID = doc.Ref.ID
		purchases = append(purchases, p)
	}

	return purchases, nil
}

// Settle runs the whole settlement inside one Firestore transaction. The
// downloads and earnings updates use firestore.Increment so concurrent
// settlements against the same wallpaper or creator never lose an update.
func (f *Firestore) Settle(ctx context.Context, op SettleOp) (*SettleResult, error) {
	var res SettleResult

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		wref := f.client.Collection(colWallpapers).Doc(op.Purchase.WallpaperID)
		wsnap, err := tx.Get(wref)
		if err != nil {
			return mapErr(err)
		}

		var w Wallpaper
		if err := wsnap.DataTo(&w); err != nil {
			return err
		}

		// All reads must happen before the first write.
		credited := false
		var uref *firestore.DocumentRef
		if w.CreatorID != "" {
			uref = f.client.Collection(colUsers).Doc(w.CreatorID)
			switch _, err := tx.Get(uref); {
			case err == nil:
				credited = true
			case status.Code(err) == codes.NotFound:
				// Orphaned wallpaper, skip the credit.
			default:
				return mapErr(err)
			}
		}

		pref := f.client.Collection(colPurchases).NewDoc()
		if err := tx.Create(pref, op.Purchase); err != nil {
			return err
		}

		if err := tx.Update(wref, []firestore.Update{
			{Path: "downloads", Value: firestore.Increment(1)},
		}); err != nil {
			return err
		}

		if credited {
			if err := tx.Update(uref, []firestore.Update{
				{Path: "earnings", Value: firestore.Increment(op.CreatorShare)},
			}); err != nil {
				return err
			}
		}

		p := op.Purchase
		p.ID = pref.ID
		res = SettleResult{Purchase: &p, CreatorCredited: credited}
		return nil
	})
	if err != nil {
		return nil, mapErr(err)
	}

	return &res, nil
}

func mapErr(err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnavailable) {
		return err
	}
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
