package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/asirianni/LatinAd/internal/middlewares"
	"github.com/asirianni/LatinAd/internal/models"
)

type fakeDisplayLister struct {
	displays   []models.DisplayWithUserDB
	pagination models.Pagination

	gotFilter  models.DisplayFilter
	gotPage    int
	gotPerPage int
}

func (f *fakeDisplayLister) List(_ context.Context, _ uuid.UUID, filter models.DisplayFilter, page, perPage int) ([]models.DisplayWithUserDB, models.Pagination, error) {
	f.gotFilter = filter
	f.gotPage = page
	f.gotPerPage = perPage
	return f.displays, f.pagination, nil
}

func TestDisplayListHandler(t *testing.T) {
	ownerID := uuid.New()
	urls := staticResolver{base: "http://localhost:8080"}

	authedGet := func(target string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		return req.WithContext(middlewares.ContextWithUser(req.Context(), ownerID))
	}

	t.Run("defaults", func(t *testing.T) {
		svc := &fakeDisplayLister{
			displays:   []models.DisplayWithUserDB{*sampleDisplay(ownerID)},
			pagination: models.Pagination{CurrentPage: 1, LastPage: 1, PerPage: 15, Total: 1},
		}
		handler := NewDisplayListHandler(svc, urls)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, authedGet("/displays"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, svc.gotPage)
		assert.Equal(t, 15, svc.gotPerPage)
		assert.Nil(t, svc.gotFilter.Type)

		var resp struct {
			Success    bool              `json:"success"`
			Data       []DisplayResource `json:"data"`
			Pagination models.Pagination `json:"pagination"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Len(t, resp.Data, 1)
		assert.Equal(t, int64(1), resp.Pagination.Total)
	})

	t.Run("type filter and paging", func(t *testing.T) {
		svc := &fakeDisplayLister{}
		handler := NewDisplayListHandler(svc, urls)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, authedGet("/displays?type=outdoor&page=2&per_page=5"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 2, svc.gotPage)
		assert.Equal(t, 5, svc.gotPerPage)
		if assert.NotNil(t, svc.gotFilter.Type) {
			assert.Equal(t, models.DisplayTypeOutdoor, *svc.gotFilter.Type)
		}
	})

	t.Run("per_page capped", func(t *testing.T) {
		svc := &fakeDisplayLister{}
		handler := NewDisplayListHandler(svc, urls)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, authedGet("/displays?per_page=1000"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, maxPerPage, svc.gotPerPage)
	})

	t.Run("invalid type", func(t *testing.T) {
		handler := NewDisplayListHandler(&fakeDisplayLister{}, urls)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, authedGet("/displays?type=underwater"))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp.Errors, "type")
	})

	t.Run("no user in context", func(t *testing.T) {
		handler := NewDisplayListHandler(&fakeDisplayLister{}, urls)

		req := httptest.NewRequest(http.MethodGet, "/displays", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
