package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ernestofreyreg/law-api/internal/api/response"
	"github.com/ernestofreyreg/law-api/internal/core"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the minimal authenticated caller attached to the request
// context. It never carries the password hash.
type Identity struct {
	ID       string
	Email    string
	FirmName string
}

// Auth returns middleware that validates JWT bearer tokens, resolves
// the subject to a user, and injects the identity into the context.
// Every resource route runs behind it; only signup and login do not.
func Auth(authSvc *core.AuthService, userSvc *core.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.WriteError(w, http.StatusUnauthorized, "Not authorized, no token provided")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader || token == "" {
				response.WriteError(w, http.StatusUnauthorized, "Not authorized, invalid token")
				return
			}

			claims, err := authSvc.ValidateToken(token)
			if err != nil {
				response.WriteError(w, http.StatusUnauthorized, "Not authorized, invalid token")
				return
			}

			user, err := userSvc.GetByID(r.Context(), claims.Sub)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					response.WriteError(w, http.StatusUnauthorized, "Not authorized, user not found")
					return
				}
				response.WriteError(w, http.StatusInternalServerError, "Server error")
				return
			}

			identity := &Identity{ID: user.ID, Email: user.Email, FirmName: user.FirmName}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the authenticated identity from the request context.
func GetIdentity(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityKey).(*Identity)
	return identity
}

// WithIdentity returns a context carrying the given identity. Test helper.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}
