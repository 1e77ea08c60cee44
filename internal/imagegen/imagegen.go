// Package imagegen produces wallpaper candidate images from text prompts.
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// PlaceholderURL is served when both the generator and the stock-photo
// fallback are unusable.
const PlaceholderURL = "/placeholder.svg?width=1024&height=1024"

// ErrInvalidInput is returned before any provider call when the prompt is
// empty.
var ErrInvalidInput = errors.New("prompt is required")

// RateLimitError reports that the generation provider throttled the request.
// It is surfaced to the caller as retryable and never masked by a fallback.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("generation rate limited, retry after %s", e.RetryAfter)
}

// PolicyError reports that the provider rejected the prompt itself. Falling
// back would hide the rejection from the user, so it never happens.
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string {
	return "prompt rejected by content policy: " + e.Reason
}

type Request struct {
	Prompt         string `json:"prompt"`
	Style          string `json:"style"`
	ColorIntensity int    `json:"colorIntensity"`
}

type Result struct {
	URL string

	// Substituted marks a degraded success: the generator did not produce
	// the image, a stock photo was returned instead.
	Substituted bool
	Message     string
}

// Generator turns an enhanced prompt into an image URL.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Fallback fetches a stock photo for a query.
type Fallback interface {
	Random(ctx context.Context, query string) (string, error)
}

// New builds the acquisition service. generator may be nil when no provider
// is configured; every request then degrades to the fallback.
func New(generator Generator, fallback Fallback, logger *slog.Logger) *Service {
	return &Service{generator: generator, fallback: fallback, logger: logger}
}

type Service struct {
	generator Generator
	fallback  Fallback
	logger    *slog.Logger
}

// Acquire resolves a prompt to an image URL. Provider errors split three
// ways: rate limits and content-policy rejections are returned verbatim,
// anything else degrades to a stock photo.
func (s *Service) Acquire(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrInvalidInput
	}

	if s.generator == nil {
		return s.substitute(ctx, req, "image substituted: generation is not configured")
	}

	url, err := s.generator.Generate(ctx, EnhancePrompt(req))
	if err != nil {
		var rle *RateLimitError
		var pe *PolicyError
		if errors.As(err, &rle) || errors.As(err, &pe) {
			return nil, err
		}

		s.logger.Warn("image generation failed, substituting stock photo", "err", err)
		return s.substitute(ctx, req, "image substituted after a generation error")
	}

	return &Result{URL: url, Message: "image generated"}, nil
}

func (s *Service) substitute(ctx context.Context, req Request, msg string) (*Result, error) {
	url, err := s.fallback.Random(ctx, req.Prompt)
	if err != nil {
		s.logger.Warn("stock photo fallback failed, serving placeholder", "err", err)
		url = PlaceholderURL
	}
	return &Result{URL: url, Substituted: true, Message: msg}, nil
}

// EnhancePrompt deterministically folds the style and colour intensity into
// the user's prompt before it reaches the provider.
func EnhancePrompt(req Request) string {
	return fmt.Sprintf(
		"Create a wallpaper with %s style and %d%% color intensity based on: %s. "+
			"Make it visually striking and suitable as a mobile wallpaper with Nigerian cultural elements.",
		req.Style, req.ColorIntensity, req.Prompt,
	)
}
