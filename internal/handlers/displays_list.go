package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/asirianni/LatinAd/internal/logger"
	"github.com/asirianni/LatinAd/internal/middlewares"
	"github.com/asirianni/LatinAd/internal/models"
)

const (
	defaultPerPage = 15
	maxPerPage     = 100
)

// DisplayLister defines the interface that the display listing service must implement.
type DisplayLister interface {
	List(ctx context.Context, ownerID uuid.UUID, filter models.DisplayFilter, page, perPage int) ([]models.DisplayWithUserDB, models.Pagination, error)
}

// NewDisplayListHandler returns an HTTP handler that lists the
// authenticated user's displays, one page at a time.
// @Summary List displays
// @Description List the authenticated user's displays with pagination
// @Tags displays
// @Produce json
// @Security BearerAuth
// @Param type query string false "Filter by display type" Enums(indoor, outdoor)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size, at most 100" default(15)
// @Success 200 {object} handlers.SuccessResponse "Page of displays"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 422 {object} handlers.ErrorResponse "Invalid filter"
// @Router /displays [get]
func NewDisplayListHandler(svc DisplayLister, urls PhotoURLResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthenticated")
			return
		}

		var filter models.DisplayFilter
		if typ := r.URL.Query().Get("type"); typ != "" {
			if typ != models.DisplayTypeIndoor && typ != models.DisplayTypeOutdoor {
				respondValidation(w, map[string]string{
					"type": "The type must be one of: indoor, outdoor.",
				})
				return
			}
			filter.Type = &typ
		}

		page := queryInt(r, "page", 1)
		perPage := queryInt(r, "per_page", defaultPerPage)
		if perPage > maxPerPage {
			perPage = maxPerPage
		}

		displays, pagination, err := svc.List(r.Context(), ownerID, filter, page, perPage)
		if err != nil {
			logger.Log.Errorw("display list failed", "ownerID", ownerID, "error", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{
			Success:    true,
			Data:       newDisplayResources(displays, urls),
			Pagination: &pagination,
		})
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
