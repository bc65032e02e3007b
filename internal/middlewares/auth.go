package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/asirianni/LatinAd/internal/jwt"
	"github.com/asirianni/LatinAd/internal/logger"
)

// TokenValidator defines the minimal interface needed by the middleware:
// extract the bearer token and resolve it to claims, rejecting invalid,
// expired and revoked tokens alike.
type TokenValidator interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type userIDKey struct{}
type tokenKey struct{}

// ContextWithUser stores the authenticated user id in the context.
func ContextWithUser(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// ContextWithToken stores the raw bearer token in the context.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// UserIDFromContext returns the authenticated user id stored by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok
}

// TokenFromContext returns the raw bearer token stored by AuthMiddleware,
// needed by logout and refresh to act on the presented token.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok
}

// unauthenticatedResponse is the envelope written with every 401.
type unauthenticatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthMiddleware returns a middleware that resolves the caller identity
// from the bearer token before any other request processing. On success
// the user id and the raw token are stored in the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := validator.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeUnauthenticated(w)
				return
			}

			claims, err := validator.Validate(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeUnauthenticated(w)
				return
			}

			ctx = ContextWithUser(ctx, claims.UserID)
			ctx = ContextWithToken(ctx, tokenString)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(unauthenticatedResponse{
		Success: false,
		Message: "Unauthenticated",
	})
}
