package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/asirianni/LatinAd/internal/logger"
	"github.com/asirianni/LatinAd/internal/middlewares"
	"github.com/asirianni/LatinAd/internal/services"
)

// DisplayDeleter defines the interface that the display deletion service must implement.
type DisplayDeleter interface {
	Delete(ctx context.Context, displayID, ownerID uuid.UUID) error
}

// NewDisplayDeleteHandler returns an HTTP handler that deletes one of
// the authenticated user's displays along with its stored photos.
// @Summary Delete display
// @Description Delete one of the authenticated user's displays
// @Tags displays
// @Produce json
// @Security BearerAuth
// @Param id path string true "Display ID"
// @Success 200 {object} handlers.SuccessResponse "Display deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 404 {object} handlers.ErrorResponse "Display not found"
// @Router /displays/{id} [delete]
func NewDisplayDeleteHandler(svc DisplayDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}

		displayID, ok := displayIDFromRequest(r)
		if !ok {
			respondError(w, http.StatusNotFound, "Display not found")
			return
		}

		if err := svc.Delete(r.Context(), displayID, ownerID); err != nil {
			if errors.Is(err, services.ErrDisplayNotFound) {
				respondError(w, http.StatusNotFound, "Display not found")
				return
			}
			logger.Log.Errorw("display delete failed", "displayID", displayID, "error", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(w, http.StatusOK, "Display deleted successfully", nil)
	}
}
