package server

import (
	"context"
	"log/slog"
	"net/http"

	"naijawalls/internal/auth"
	"naijawalls/internal/imagegen"
	mw "naijawalls/internal/middleware"
	"naijawalls/internal/store"

	"github.com/go-chi/chi/v5"
	rscors "github.com/rs/cors"
)

// Settler records a sale and distributes the proceeds.
type Settler interface {
	SettlePurchase(ctx context.Context, buyerID, wallpaperID string, amount int64) (*store.Purchase, error)
}

// Acquirer resolves a prompt to a wallpaper candidate image.
type Acquirer interface {
	Acquire(ctx context.Context, req imagegen.Request) (*imagegen.Result, error)
}

type Config struct {
	Catalog        store.Catalog
	Engine         Settler
	Images         Acquirer
	Verifier       auth.Verifier
	Logger         *slog.Logger
	AllowedOrigins []string
}

func New(cfg Config) Server {
	s := Server{
		catalog: cfg.Catalog,
		engine:  cfg.Engine,
		images:  cfg.Images,
		logger:  cfg.Logger,
	}

	cors := rscors.New(rscors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	authed := auth.Middleware(cfg.Verifier)

	r := chi.NewRouter()
	r.Use(mw.RequestLogger(cfg.Logger))
	r.Use(cors.Handler)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(""))
	})
	r.Route("/wallpapers", func(r chi.Router) {
		r.Use(mw.JSONHeaders)
		r.Get("/", s.ListWallpapersHandler)
		r.Get("/{id}", s.GetWallpaperHandler)
		r.With(authed).Post("/", s.PublishWallpaperHandler)
	})
	r.With(mw.JSONHeaders).Post("/generate", s.GenerateImageHandler)
	r.With(mw.JSONHeaders, authed).Post("/purchases", s.PurchaseHandler)
	r.Route("/users/me", func(r chi.Router) {
		r.Use(mw.JSONHeaders, authed)
		r.Get("/wallpapers", s.MyWallpapersHandler)
		r.Get("/purchases", s.MyPurchasesHandler)
	})
	s.Handler = r
	return s
}

type Server struct {
	http.Handler
	catalog store.Catalog
	engine  Settler
	images  Acquirer
	logger  *slog.Logger
}
