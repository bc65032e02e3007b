package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/asirianni/LatinAd/internal/logger"
	"github.com/asirianni/LatinAd/internal/middlewares"
	"github.com/asirianni/LatinAd/internal/models"
	"github.com/asirianni/LatinAd/internal/services"
)

// DisplayGetter defines the interface that the display lookup service must implement.
type DisplayGetter interface {
	Get(ctx context.Context, displayID, ownerID uuid.UUID) (*models.DisplayWithUserDB, error)
}

// NewDisplayGetHandler returns an HTTP handler that fetches one of the
// authenticated user's displays. Displays owned by anyone else report
// as not found.
// @Summary Get display
// @Description Fetch one of the authenticated user's displays by id
// @Tags displays
// @Produce json
// @Security BearerAuth
// @Param id path string true "Display ID"
// @Success 200 {object} handlers.SuccessResponse "Display"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 404 {object} handlers.ErrorResponse "Display not found"
// @Router /displays/{id} [get]
func NewDisplayGetHandler(svc DisplayGetter, urls PhotoURLResolver) http.HandlerFunc {
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

		display, err := svc.Get(r.Context(), displayID, ownerID)
		if err != nil {
			if errors.Is(err, services.ErrDisplayNotFound) {
				respondError(w, http.StatusNotFound, "Display not found")
				return
			}
			logger.Log.Errorw("display get failed", "displayID", displayID, "error", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(w, http.StatusOK, "", newDisplayResource(display, urls))
	}
}

// displayIDFromRequest parses the id path parameter. Malformed ids get
// the same not-found treatment as unknown ones.
func displayIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
