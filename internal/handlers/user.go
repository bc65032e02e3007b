package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/asirianni/LatinAd/internal/logger"
	"github.com/asirianni/LatinAd/internal/middlewares"
	"github.com/asirianni/LatinAd/internal/models"
)

// CurrentUserProvider defines the interface that the profile service must implement.
type CurrentUserProvider interface {
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewUserHandler returns an HTTP handler for the authenticated user's profile.
// @Summary Current user
// @Description Return the profile of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.SuccessResponse "User profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /user [get]
func NewUserHandler(svc CurrentUserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}

		user, err := svc.CurrentUser(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to load current user", "userID", userID, "error", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(w, http.StatusOK, "", newUserResource(user))
	}
}
