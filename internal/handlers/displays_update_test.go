package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/asirianni/LatinAd/internal/middlewares"
	"github.com/asirianni/LatinAd/internal/models"
	"github.com/asirianni/LatinAd/internal/services"
)

type fakeDisplayUpdater struct {
	display *models.DisplayWithUserDB
	err     error

	gotDisplayID uuid.UUID
	gotOwnerID   uuid.UUID
	gotInput     models.DisplayUpdate
	gotPhoto     []byte
}

func (f *fakeDisplayUpdater) Update(_ context.Context, displayID, ownerID uuid.UUID, in models.DisplayUpdate, photo []byte) (*models.DisplayWithUserDB, error) {
	f.gotDisplayID = displayID
	f.gotOwnerID = ownerID
	f.gotInput = in
	f.gotPhoto = photo
	return f.display, f.err
}

func updateRequest(rawID string, ownerID uuid.UUID, body *bytes.Buffer, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/displays/"+rawID, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", rawID)

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middlewares.ContextWithUser(ctx, ownerID)
	return req.WithContext(ctx)
}

func TestDisplayUpdateHandler_PartialJSON(t *testing.T) {
	ownerID := uuid.New()
	display := sampleDisplay(ownerID)

	svc := &fakeDisplayUpdater{display: display}
	handler := NewDisplayUpdateHandler(svc, staticResolver{base: "http://localhost:8080"})

	body := bytes.NewBufferString(`{"name":"Renamed"}`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, updateRequest(display.DisplayID.String(), ownerID, body, ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, display.DisplayID, svc.gotDisplayID)
	assert.Equal(t, ownerID, svc.gotOwnerID)
	if assert.NotNil(t, svc.gotInput.Name) {
		assert.Equal(t, "Renamed", *svc.gotInput.Name)
	}
	assert.Nil(t, svc.gotInput.PricePerDay, "omitted fields stay nil")
	assert.Nil(t, svc.gotPhoto)
}

func TestDisplayUpdateHandler_MultipartPhoto(t *testing.T) {
	ownerID := uuid.New()
	display := sampleDisplay(ownerID)

	svc := &fakeDisplayUpdater{display: display}
	handler := NewDisplayUpdateHandler(svc, staticResolver{base: "http://localhost:8080"})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", "photo.png")
	assert.NoError(t, err)
	part.Write([]byte("raw photo bytes"))
	assert.NoError(t, mw.Close())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, updateRequest(display.DisplayID.String(), ownerID, &buf, mw.FormDataContentType()))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, svc.gotInput.Name, "no fields sent, only the photo")
	assert.Equal(t, []byte("raw photo bytes"), svc.gotPhoto)
}

func TestDisplayUpdateHandler_NotFound(t *testing.T) {
	ownerID := uuid.New()
	handler := NewDisplayUpdateHandler(&fakeDisplayUpdater{err: services.ErrDisplayNotFound}, staticResolver{})

	body := bytes.NewBufferString(`{"name":"Renamed"}`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, updateRequest(uuid.New().String(), ownerID, body, ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Display not found", resp.Message)
}

func TestDisplayUpdateHandler_MalformedID(t *testing.T) {
	ownerID := uuid.New()
	svc := &fakeDisplayUpdater{}
	handler := NewDisplayUpdateHandler(svc, staticResolver{})

	body := bytes.NewBufferString(`{"name":"Renamed"}`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, updateRequest("17", ownerID, body, ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, uuid.Nil, svc.gotDisplayID, "service should not be called")
}
