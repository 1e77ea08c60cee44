// Package config reads service configuration from the environment. The
// backing catalog is an explicit startup choice, injected into components;
// nothing switches implementations at call time.
package config

import (
	"fmt"
	"os"
	"strings"
)

type Backend string

const (
	BackendFirestore Backend = "firestore"
	BackendMemory    Backend = "memory"
)

type Config struct {
	Port    string
	Backend Backend

	// FirestoreSA is the base64-encoded service account JSON, required for
	// the firestore backend.
	FirestoreSA string

	OpenAIKey   string
	UnsplashKey string

	AllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		Backend:        Backend(getenv("CATALOG_BACKEND", string(BackendFirestore))),
		FirestoreSA:    os.Getenv("FIRESTORE_SA"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		UnsplashKey:    os.Getenv("UNSPLASH_ACCESS_KEY"),
		AllowedOrigins: split(getenv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	switch cfg.Backend {
	case BackendFirestore:
		if cfg.FirestoreSA == "" {
			return nil, fmt.Errorf("FIRESTORE_SA is required for the firestore backend")
		}
	case BackendMemory:
	default:
		return nil, fmt.Errorf("unknown CATALOG_BACKEND %q", cfg.Backend)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func split(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
