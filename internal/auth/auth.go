// Package auth verifies request identities and exposes them as explicit
// principals. Nothing downstream reads ambient session state.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Principal identifies an authenticated caller.
type Principal struct {
	UID   string
	Email string
	Name  string
}

type Verifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// NewFirebaseVerifier verifies Firebase ID tokens issued to the app.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (*FirebaseVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &FirebaseVerifier{client: client}, nil
}

type FirebaseVerifier struct {
	client *fbauth.Client
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Principal, error) {
	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	p := &Principal{UID: tok.UID}
	if email, ok := tok.Claims["email"].(string); ok {
		p.Email = email
	}
	if name, ok := tok.Claims["name"].(string); ok {
		p.Name = name
	}

	return p, nil
}

// StaticVerifier treats the bearer token itself as the uid. Only wired in
// when the service runs against the in-memory catalog; never in production.
type StaticVerifier struct{}

func (StaticVerifier) Verify(_ context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	return &Principal{UID: token}, nil
}

type ctxKey struct{}

// Middleware rejects requests without a valid bearer token and stores the
// verified principal in the request context.
func Middleware(v Verifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			p, err := v.Verify(r.Context(), token)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the principal stored by Middleware.
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(*Principal)
	return p, ok
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, prefix))
	return token, token != ""
}
