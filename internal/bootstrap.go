package internal

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"naijawalls/internal/auth"
	"naijawalls/internal/config"
	"naijawalls/internal/imagegen"
	"naijawalls/internal/imagegen/openai"
	"naijawalls/internal/imagegen/unsplash"
	"naijawalls/internal/server"
	"naijawalls/internal/settlement"
	"naijawalls/internal/store"

	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

func Bootstrap() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var (
		catalog  store.Catalog
		verifier auth.Verifier
	)
	switch cfg.Backend {
	case config.BackendFirestore:
		saJSON, err := base64.StdEncoding.DecodeString(cfg.FirestoreSA)
		if err != nil {
			return fmt.Errorf("decode FIRESTORE_SA: %w", err)
		}
		sa := option.WithCredentialsJSON(saJSON)

		app, err := firebase.NewApp(ctx, nil, sa)
		if err != nil {
			return err
		}

		firestore, err := app.Firestore(ctx)
		if err != nil {
			return err
		}
		catalog = store.NewFirestore(firestore)

		verifier, err = auth.NewFirebaseVerifier(ctx, app)
		if err != nil {
			return err
		}

	case config.BackendMemory:
		catalog = store.NewMemory()
		verifier = auth.StaticVerifier{}
		logger.Warn("running on the in-memory catalog with static auth, local use only")
	}

	hc := &http.Client{Timeout: time.Second * 60}

	var generator imagegen.Generator
	if cfg.OpenAIKey != "" {
		generator = &openai.Client{BaseURL: openai.DefaultBaseURL, APIKey: cfg.OpenAIKey, HC: hc}
	} else {
		logger.Warn("OPENAI_API_KEY not set, all generation requests will be substituted")
	}
	fallback := &unsplash.Client{BaseURL: unsplash.DefaultBaseURL, AccessKey: cfg.UnsplashKey, HC: hc}

	srv := server.New(server.Config{
		Catalog:        catalog,
		Engine:         settlement.New(catalog, logger),
		Images:         imagegen.New(generator, fallback, logger),
		Verifier:       verifier,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	httpServer := &http.Server{Addr: ":" + cfg.Port, Handler: srv}

	errs := make(chan error, 1)
	go func() {
		logger.Info("server started", "port", cfg.Port, "backend", string(cfg.Backend))
		errs <- httpServer.ListenAndServe()
	}()

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errs:
		return err
	case <-exit:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
