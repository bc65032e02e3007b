package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/asirianni/LatinAd/internal/logger"
	"github.com/asirianni/LatinAd/internal/middlewares"
	"github.com/asirianni/LatinAd/internal/models"
	"github.com/asirianni/LatinAd/internal/services"
	"github.com/asirianni/LatinAd/internal/validation"
)

// DisplayUpdater defines the interface that the display update service must implement.
type DisplayUpdater interface {
	Update(ctx context.Context, displayID, ownerID uuid.UUID, in models.DisplayUpdate, photo []byte) (*models.DisplayWithUserDB, error)
}

// NewDisplayUpdateHandler returns an HTTP handler that partially
// updates one of the authenticated user's displays. Fields left out of
// the payload keep their stored value; an uploaded photo replaces both
// derivatives.
// @Summary Update display
// @Description Partially update one of the authenticated user's displays
// @Tags displays
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Display ID"
// @Param displayUpdate body models.DisplayUpdate true "Fields to update"
// @Success 200 {object} handlers.SuccessResponse "Updated display"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 404 {object} handlers.ErrorResponse "Display not found"
// @Failure 422 {object} handlers.ErrorResponse "Validation errors"
// @Router /displays/{id} [put]
func NewDisplayUpdateHandler(svc DisplayUpdater, urls PhotoURLResolver) http.HandlerFunc {
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

		var (
			req   models.DisplayUpdate
			photo []byte
		)

		if isMultipart(r) {
			if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}

			parseErrs := map[string]string{}
			req.Name = formString(r, "name")
			req.Description = formString(r, "description")
			req.PricePerDay = formFloat(r, "price_per_day", parseErrs)
			req.ResolutionWidth = formInt(r, "resolution_width", parseErrs)
			req.ResolutionHeight = formInt(r, "resolution_height", parseErrs)
			req.Type = formString(r, "type")
			if len(parseErrs) > 0 {
				respondValidation(w, parseErrs)
				return
			}

			var err error
			photo, err = readPhotoFile(r)
			if err != nil {
				respondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
		} else {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
		}

		display, err := svc.Update(r.Context(), displayID, ownerID, req, photo)
		if err != nil {
			var verrs validation.Errors
			switch {
			case errors.Is(err, services.ErrDisplayNotFound):
				respondError(w, http.StatusNotFound, "Display not found")
			case errors.As(err, &verrs):
				respondValidation(w, verrs)
			default:
				logger.Log.Errorw("display update failed", "displayID", displayID, "error", err)
				respondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		respondData(w, http.StatusOK, "Display updated successfully", newDisplayResource(display, urls))
	}
}
