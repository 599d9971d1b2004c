package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/therealfuntimeswithdanny/notes-app/internal/session"
)

// CookieName is the session cookie. Its presence and validity is the only
// authentication signal.
const CookieName = "session"

type contextKey struct{}

type Auth struct {
	sessions *session.Service
}

func New(sessions *session.Service) *Auth {
	return &Auth{sessions: sessions}
}

// Middleware resolves the session cookie and, on success, attaches the
// username to the request context. With requireAuth set, requests without
// a valid session are rejected before the handler runs.
func (a *Auth) Middleware(next http.HandlerFunc, requireAuth bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			if requireAuth {
				unauthorized(w)
				return
			}
			next(w, r)
			return
		}

		// An unknown token and a storage failure both leave the request
		// unauthenticated; the two are not distinguished here.
		username, err := a.sessions.Resolve(cookie.Value)
		if err != nil {
			if requireAuth {
				unauthorized(w)
				return
			}
			next(w, r)
			return
		}

		next(w, r.WithContext(WithUser(r.Context(), username)))
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": "Not authenticated",
	})
}

func WithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, contextKey{}, username)
}

// UserFrom returns the authenticated username attached by Middleware.
func UserFrom(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(contextKey{}).(string)
	return username, ok
}
