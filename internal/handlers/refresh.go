package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/asirianni/LatinAd/internal/logger"
	"github.com/asirianni/LatinAd/internal/middlewares"
	"github.com/asirianni/LatinAd/internal/models"
)

// Refresher defines the interface that the refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, tokenString string) (string, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	TokenExpiresIn(ctx context.Context) int
}

// NewRefreshHandler returns an HTTP handler that exchanges a valid
// token for a fresh one. The presented token is invalidated.
// @Summary Refresh token
// @Description Invalidate the presented token and issue a new one
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.SuccessResponse "New token and user returned"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := middlewares.TokenFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}

		newToken, err := svc.Refresh(r.Context(), token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}

		user, err := svc.CurrentUser(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("refresh failed to load user", "userID", userID, "error", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(w, http.StatusOK, "Token refreshed", TokenData{
			Token:     newToken,
			TokenType: "bearer",
			ExpiresIn: svc.TokenExpiresIn(r.Context()),
			User:      newUserResource(user),
		})
	}
}
