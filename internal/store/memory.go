package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// NewMemory returns an in-memory Catalog. It backs local development and
// tests; a single mutex gives Settle the same all-or-nothing behaviour the
// Firestore transaction provides.
func NewMemory() *Memory {
	return &Memory{
		wallpapers: make(map[string]Wallpaper),
		users:      make(map[string]User),
		purchases:  make(map[string]Purchase),
	}
}

type Memory struct {
	mu         sync.Mutex
	wallpapers map[string]Wallpaper
	users      map[string]User
	purchases  map[string]Purchase
}

var _ Catalog = (*Memory)(nil)

func (m *Memory) GetWallpaper(_ context.Context, id string) (*Wallpaper, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wallpapers[id]
	if !ok {
		return nil, fmt.Errorf("%w: wallpaper %s", ErrNotFound, id)
	}
	return &w, nil
}

func (m *Memory) CreateWallpaper(_ context.Context, w Wallpaper) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w.ID = uuid.NewString()
	m.wallpapers[w.ID] = w
	return w.ID, nil
}

func (m *Memory) ListWallpapers(_ context.Context, q ListQuery) ([]Wallpaper, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wallpapers := make([]Wallpaper, 0)
	for _, w := range m.wallpapers {
		if q.PublishedOnly && !w.IsPublished {
			continue
		}
		if q.Category != "" && w.Category != q.Category {
			continue
		}
		if q.CreatorID != "" && w.CreatorID != q.CreatorID {
			continue
		}
		wallpapers = append(wallpapers, w)
	}

	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = OrderByCreatedAt
	}
	sort.SliceStable(wallpapers, func(i, j int) bool {
		var less bool
		switch orderBy {
		case OrderByDownloads:
			less = wallpapers[i].Downloads < wallpapers[j].Downloads
		default:
			less = wallpapers[i].CreatedAt.Before(wallpapers[j].CreatedAt)
		}
		if q.Desc {
			return !less
		}
		return less
	})

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if len(wallpapers) > limit {
		wallpapers = wallpapers[:limit]
	}

	return wallpapers, nil
}

func (m *Memory) GetUser(_ context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return &u, nil
}

func (m *Memory) PutUser(_ context.Context, u User) error {
	if u.ID == "" {
		return fmt.Errorf("put user: missing id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[u.ID] = u
	return nil
}

func (m *Memory) GetPurchase(_ context.Context, id string) (*Purchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.purchases[id]
	if !ok {
		return nil, fmt.Errorf("%w: purchase %s", ErrNotFound, id)
	}
	return &p, nil
}

func (m *Memory) ListPurchasesByUser(_ context.Context, userID string) ([]Purchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	purchases := make([]Purchase, 0)
	for _, p := range m.purchases {
		if p.UserID == userID {
			purchases = append(purchases, p)
		}
	}
	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].Timestamp.After(purchases[j].Timestamp)
	})

	return purchases, nil
}

func (m *Memory) Settle(_ context.Context, op SettleOp) (*SettleResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wallpapers[op.Purchase.WallpaperID]
	if !ok {
		return nil, fmt.Errorf("%w: wallpaper %s", ErrNotFound, op.Purchase.WallpaperID)
	}

	p := op.Purchase
	p.ID = uuid.NewString()
	m.purchases[p.ID] = p

	w.Downloads++
	m.wallpapers[w.ID] = w

	credited := false
	if w.CreatorID != "" {
		if u, ok := m.users[w.CreatorID]; ok {
			u.Earnings += op.CreatorShare
			m.users[u.ID] = u
			credited = true
		}
	}

	return &SettleResult{Purchase: &p, CreatorCredited: credited}, nil
}
