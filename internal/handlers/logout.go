package handlers

import (
	"context"
	"net/http"

	"github.com/asirianni/LatinAd/internal/logger"
	"github.com/asirianni/LatinAd/internal/middlewares"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, tokenString string) error
}

// NewLogoutHandler returns an HTTP handler that invalidates the
// presented token. Subsequent requests with the same token are
// rejected by the auth middleware.
// @Summary Log out
// @Description Invalidate the presented JWT token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.SuccessResponse "Token invalidated"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := middlewares.TokenFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			logger.Log.Errorw("logout failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(w, http.StatusOK, "Successfully logged out", nil)
	}
}
