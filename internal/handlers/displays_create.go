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
	"github.com/asirianni/LatinAd/internal/validation"
)

// DisplayCreator defines the interface that the display creation service must implement.
type DisplayCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, in models.DisplayCreate, photo []byte) (*models.DisplayWithUserDB, error)
}

// NewDisplayCreateHandler returns an HTTP handler that creates a
// display owned by the authenticated user. Accepts a JSON body or a
// multipart form with an optional photo file.
// @Summary Create display
// @Description Create a display owned by the authenticated user
// @Tags displays
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param displayCreate body models.DisplayCreate true "Display attributes"
// @Success 201 {object} handlers.SuccessResponse "Display created"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 422 {object} handlers.ErrorResponse "Validation errors"
// @Router /displays [post]
func NewDisplayCreateHandler(svc DisplayCreator, urls PhotoURLResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}

		var (
			req   models.DisplayCreate
			photo []byte
		)

		if isMultipart(r) {
			if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}

			parseErrs := map[string]string{}
			if name := formString(r, "name"); name != nil {
				req.Name = *name
			}
			req.Description = formString(r, "description")
			req.PricePerDay = formFloat(r, "price_per_day", parseErrs)
			req.ResolutionWidth = formInt(r, "resolution_width", parseErrs)
			req.ResolutionHeight = formInt(r, "resolution_height", parseErrs)
			if typ := formString(r, "type"); typ != nil {
				req.Type = *typ
			}
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

		display, err := svc.Create(r.Context(), ownerID, req, photo)
		if err != nil {
			var verrs validation.Errors
			if errors.As(err, &verrs) {
				respondValidation(w, verrs)
				return
			}
			logger.Log.Errorw("display create failed", "ownerID", ownerID, "error", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondData(w, http.StatusCreated, "Display created successfully", newDisplayResource(display, urls))
	}
}
