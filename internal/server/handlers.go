package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"naijawalls/internal/auth"
	"naijawalls/internal/imagegen"
	"naijawalls/internal/settlement"
	"naijawalls/internal/store"

	"github.com/go-chi/chi/v5"
)

func (s *Server) GetWallpaperHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	wallpaper, err := s.catalog.GetWallpaper(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "wallpaper not found")
			return
		}
		s.serverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, wallpaper)
}

func (s *Server) ListWallpapersHandler(w http.ResponseWriter, r *http.Request) {
	q := store.ListQuery{
		PublishedOnly: true,
		OrderBy:       store.OrderByCreatedAt,
		Desc:          true,
		Limit:         store.DefaultListLimit,
	}

	q.Category = r.URL.Query().Get("category")
	q.CreatorID = r.URL.Query().Get("creator")

	if v := r.URL.Query().Get("orderBy"); v != "" {
		if v != store.OrderByCreatedAt && v != store.OrderByDownloads {
			writeError(w, http.StatusBadRequest, "unsupported orderBy: "+v)
			return
		}
		q.OrderBy = v
	}

	if v := r.URL.Query().Get("order"); v == "asc" {
		q.Desc = false
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 && i <= store.DefaultListLimit {
			q.Limit = i
		}
	}

	wallpapers, err := s.catalog.ListWallpapers(r.Context(), q)
	if err != nil {
		s.serverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ListResponse{Data: wallpapers})
}

type publishRequest struct {
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	ImageURL       string           `json:"imageUrl"`
	ThumbnailURL   string           `json:"thumbnailUrl"`
	Style          string           `json:"style"`
	ColorIntensity int              `json:"colorIntensity"`
	Resolution     store.Resolution `json:"resolution"`
	Category       string           `json:"category"`
}

func (s *Server) PublishWallpaperHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" || req.ImageURL == "" {
		writeError(w, http.StatusBadRequest, "title and imageUrl are required")
		return
	}
	if req.Resolution == "" {
		req.Resolution = store.ResolutionStandard
	}
	if !req.Resolution.Valid() {
		writeError(w, http.StatusBadRequest, "unknown resolution: "+string(req.Resolution))
		return
	}
	if req.Category == "" {
		req.Category = "custom"
	}
	if req.ThumbnailURL == "" {
		req.ThumbnailURL = req.ImageURL
	}
	if req.Description == "" {
		req.Description = fmt.Sprintf("Generated with %s style and %d%% color intensity", req.Style, req.ColorIntensity)
	}

	if err := s.ensureUser(r, p); err != nil {
		s.serverError(w, err)
		return
	}

	wallpaper := store.Wallpaper{
		Title:          req.Title,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		ThumbnailURL:   req.ThumbnailURL,
		Style:          req.Style,
		ColorIntensity: req.ColorIntensity,
		Resolution:     req.Resolution,
		Price:          store.PriceFor(req.Resolution),
		CreatorID:      p.UID,
		Category:       req.Category,
		IsPublished:    true,
		CreatedAt:      time.Now().UTC(),
	}

	id, err := s.catalog.CreateWallpaper(r.Context(), wallpaper)
	if err != nil {
		s.serverError(w, err)
		return
	}
	wallpaper.ID = id

	writeJSON(w, http.StatusCreated, wallpaper)
}

type purchaseRequest struct {
	WallpaperID string `json:"wallpaperId"`
	Amount      int64  `json:"amount"`
}

func (s *Server) PurchaseHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.ensureUser(r, p); err != nil {
		s.serverError(w, err)
		return
	}

	purchase, err := s.engine.SettlePurchase(r.Context(), p.UID, req.WallpaperID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, settlement.ErrAmountMismatch):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "wallpaper not found")
		case errors.Is(err, store.ErrUnavailable):
			writeError(w, http.StatusServiceUnavailable, "store unavailable, retry later")
		default:
			s.serverError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, PurchaseResponse{
		Success:       true,
		PurchaseID:    purchase.ID,
		TransactionID: purchase.TransactionID,
	})
}

func (s *Server) GenerateImageHandler(w http.ResponseWriter, r *http.Request) {
	var req imagegen.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := s.images.Acquire(r.Context(), req)
	if err != nil {
		var rle *imagegen.RateLimitError
		var pe *imagegen.PolicyError
		switch {
		case errors.Is(err, imagegen.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &rle):
			w.Header().Set("Retry-After", strconv.Itoa(int(rle.RetryAfter.Seconds())))
			writeError(w, http.StatusTooManyRequests, err.Error())
		case errors.As(err, &pe):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusBadGateway, "image generation failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Success:     true,
		URL:         res.URL,
		Message:     res.Message,
		Substituted: res.Substituted,
	})
}

func (s *Server) MyWallpapersHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	wallpapers, err := s.catalog.ListWallpapers(r.Context(), store.ListQuery{
		CreatorID: p.UID,
		OrderBy:   store.OrderByCreatedAt,
		Desc:      true,
	})
	if err != nil {
		s.serverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ListResponse{Data: wallpapers})
}

type purchaseWithWallpaper struct {
	store.Purchase

	Wallpaper *store.Wallpaper `json:"wallpaper,omitempty"`
}

func (s *Server) MyPurchasesHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	purchases, err := s.catalog.ListPurchasesByUser(r.Context(), p.UID)
	if err != nil {
		s.serverError(w, err)
		return
	}

	out := make([]purchaseWithWallpaper, 0, len(purchases))
	for _, purchase := range purchases {
		item := purchaseWithWallpaper{Purchase: purchase}
		wallpaper, err := s.catalog.GetWallpaper(r.Context(), purchase.WallpaperID)
		if err == nil {
			item.Wallpaper = wallpaper
		} else if !errors.Is(err, store.ErrNotFound) {
			s.serverError(w, err)
			return
		}
		out = append(out, item)
	}

	writeJSON(w, http.StatusOK, out)
}

// ensureUser upserts a user record for the principal so creator earnings
// have somewhere to land.
func (s *Server) ensureUser(r *http.Request, p *auth.Principal) error {
	_, err := s.catalog.GetUser(r.Context(), p.UID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	username := p.Name
	if username == "" {
		username = strings.SplitN(p.Email, "@", 2)[0]
	}

	return s.catalog.PutUser(r.Context(), store.User{
		ID:        p.UID,
		Username:  username,
		Email:     p.Email,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "err", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
