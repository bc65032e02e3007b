package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/asirianni/LatinAd/internal/models"
	"github.com/asirianni/LatinAd/internal/photos"
	"github.com/asirianni/LatinAd/internal/validation"
)

func ptr[T any](v T) *T { return &v }

// fakeDisplayStore implements DisplayReader and DisplayWriter over an
// in-memory owner-keyed map, mimicking the ownership predicate of the
// real repository.
type fakeDisplayStore struct {
	rows    map[uuid.UUID]*models.DisplayWithUserDB
	saveErr error
	updErr  error
	getErr  error
}

func newFakeDisplayStore() *fakeDisplayStore {
	return &fakeDisplayStore{rows: map[uuid.UUID]*models.DisplayWithUserDB{}}
}

func (f *fakeDisplayStore) GetByIDAndOwner(ctx context.Context, displayID, ownerID uuid.UUID) (*models.DisplayWithUserDB, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	row, ok := f.rows[displayID]
	if !ok || row.UserID != ownerID {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakeDisplayStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter models.DisplayFilter, page, perPage int) ([]models.DisplayWithUserDB, int64, error) {
	var owned []models.DisplayWithUserDB
	for _, row := range f.rows {
		if row.UserID != ownerID {
			continue
		}
		if filter.Type != nil && row.Type != *filter.Type {
			continue
		}
		owned = append(owned, *row)
	}
	total := int64(len(owned))
	start := (page - 1) * perPage
	if start >= len(owned) {
		return []models.DisplayWithUserDB{}, total, nil
	}
	end := start + perPage
	if end > len(owned) {
		end = len(owned)
	}
	return owned[start:end], total, nil
}

func (f *fakeDisplayStore) Save(ctx context.Context, d *models.DisplayDB) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rows[d.DisplayID] = &models.DisplayWithUserDB{
		DisplayDB: *d,
		OwnerName: "Usuario Test 1", OwnerEmail: "test1@example.com",
	}
	return nil
}

func (f *fakeDisplayStore) UpdateByIDAndOwner(ctx context.Context, displayID, ownerID uuid.UUID, upd models.DisplayUpdate) (bool, error) {
	if f.updErr != nil {
		return false, f.updErr
	}
	row, ok := f.rows[displayID]
	if !ok || row.UserID != ownerID {
		return false, nil
	}
	if upd.Name != nil {
		row.Name = *upd.Name
	}
	if upd.Description != nil {
		row.Description = upd.Description
	}
	if upd.PricePerDay != nil {
		row.PricePerDay = *upd.PricePerDay
	}
	if upd.ResolutionWidth != nil {
		row.ResolutionWidth = *upd.ResolutionWidth
	}
	if upd.ResolutionHeight != nil {
		row.ResolutionHeight = *upd.ResolutionHeight
	}
	if upd.Type != nil {
		row.Type = *upd.Type
	}
	if upd.PhotoPath != nil {
		row.PhotoPath = upd.PhotoPath
		row.PhotoThumbPath = upd.PhotoThumbPath
	}
	return true, nil
}

func (f *fakeDisplayStore) DeleteByIDAndOwner(ctx context.Context, displayID, ownerID uuid.UUID) (bool, error) {
	row, ok := f.rows[displayID]
	if !ok || row.UserID != ownerID {
		return false, nil
	}
	delete(f.rows, displayID)
	return true, nil
}

// fakeIngester records processed and removed keys.
type fakeIngester struct {
	processErr error
	calls      int
	removed    []string
}

func (f *fakeIngester) Process(ctx context.Context, data []byte, displayID uuid.UUID) (string, string, error) {
	if f.processErr != nil {
		return "", "", f.processErr
	}
	f.calls++
	prefix := fmt.Sprintf("displays/%s/photo", displayID)
	return fmt.Sprintf("%s_%d.jpg", prefix, f.calls), fmt.Sprintf("%s_thumb_%d.jpg", prefix, f.calls), nil
}

func (f *fakeIngester) Remove(ctx context.Context, keys ...string) {
	f.removed = append(f.removed, keys...)
}

func validCreate() models.DisplayCreate {
	return models.DisplayCreate{
		Name:             "Display LED 4K - Centro",
		Description:      ptr("Pantalla LED 4K"),
		PricePerDay:      ptr(150.0),
		ResolutionWidth:  ptr(3840),
		ResolutionHeight: ptr(2160),
		Type:             models.DisplayTypeIndoor,
	}
}

func TestDisplayService_CreateForcesOwner(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	svc := NewDisplayService(store, store, &fakeIngester{})

	ownerID := uuid.New()
	created, err := svc.Create(ctx, ownerID, validCreate(), nil)
	assert.NoError(t, err)
	assert.Equal(t, ownerID, created.UserID)
	assert.Equal(t, "Display LED 4K - Centro", created.Name)
	assert.Nil(t, created.PhotoPath)
	assert.Nil(t, created.PhotoThumbPath)
}

func TestDisplayService_CreateValidationFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	ingester := &fakeIngester{}
	svc := NewDisplayService(store, store, ingester)

	_, err := svc.Create(ctx, uuid.New(), models.DisplayCreate{}, nil)

	var verrs validation.Errors
	assert.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "name")
	assert.Empty(t, store.rows)
	assert.Zero(t, ingester.calls)
}

func TestDisplayService_CreateWithPhotoSetsBothPaths(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	svc := NewDisplayService(store, store, &fakeIngester{})

	created, err := svc.Create(ctx, uuid.New(), validCreate(), []byte("image-bytes"))
	assert.NoError(t, err)
	assert.NotNil(t, created.PhotoPath)
	assert.NotNil(t, created.PhotoThumbPath)
}

func TestDisplayService_CreatePhotoRejectionLeavesNoEntity(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	svc := NewDisplayService(store, store, &fakeIngester{processErr: photos.ErrUnsupportedImage})

	_, err := svc.Create(ctx, uuid.New(), validCreate(), []byte("%PDF-"))

	var verrs validation.Errors
	assert.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "photo")
	assert.Empty(t, store.rows, "no entity may be created when the photo is rejected")
}

func TestDisplayService_CreateSaveFailureRemovesFreshBlobs(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	store.saveErr = errors.New("insert failed")
	ingester := &fakeIngester{}
	svc := NewDisplayService(store, store, ingester)

	_, err := svc.Create(ctx, uuid.New(), validCreate(), []byte("image-bytes"))
	assert.Error(t, err)
	assert.Len(t, ingester.removed, 2, "both fresh derivatives must be rolled back")
}

func TestDisplayService_CreateReadBackFailureRemovesFreshBlobs(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	store.getErr = errors.New("connection lost")
	ingester := &fakeIngester{}
	svc := NewDisplayService(store, store, ingester)

	// The insert lands but the response row cannot be loaded: the
	// request fails, the row is rolled back with it, and the
	// derivatives must not be left behind.
	_, err := svc.Create(ctx, uuid.New(), validCreate(), []byte("image-bytes"))
	assert.Error(t, err)
	assert.Len(t, store.rows, 1)
	assert.Len(t, ingester.removed, 2, "both fresh derivatives must be rolled back")
}

func TestDisplayService_GetIsOwnerScoped(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	svc := NewDisplayService(store, store, &fakeIngester{})

	ownerID := uuid.New()
	created, err := svc.Create(ctx, ownerID, validCreate(), nil)
	assert.NoError(t, err)

	got, err := svc.Get(ctx, created.DisplayID, ownerID)
	assert.NoError(t, err)
	assert.Equal(t, created.DisplayID, got.DisplayID)

	// Another caller gets the exact same outcome as for a missing id
	_, err = svc.Get(ctx, created.DisplayID, uuid.New())
	assert.ErrorIs(t, err, ErrDisplayNotFound)
	_, err = svc.Get(ctx, uuid.New(), ownerID)
	assert.ErrorIs(t, err, ErrDisplayNotFound)
}

func TestDisplayService_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	svc := NewDisplayService(store, store, &fakeIngester{})

	ownerID := uuid.New()
	created, err := svc.Create(ctx, ownerID, validCreate(), nil)
	assert.NoError(t, err)

	updated, err := svc.Update(ctx, created.DisplayID, ownerID, models.DisplayUpdate{
		PricePerDay: ptr(200.0),
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 200.0, updated.PricePerDay)
	// Untouched fields survive
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.ResolutionWidth, updated.ResolutionWidth)
}

func TestDisplayService_UpdateNilDescriptionKeepsStoredValue(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	svc := NewDisplayService(store, store, &fakeIngester{})

	ownerID := uuid.New()
	created, err := svc.Create(ctx, ownerID, validCreate(), nil)
	assert.NoError(t, err)
	assert.NotNil(t, created.Description)

	// A nil description (absent field or JSON null alike) keeps the
	// stored text; clearing requires an explicit overwrite.
	updated, err := svc.Update(ctx, created.DisplayID, ownerID, models.DisplayUpdate{
		Name: ptr("Renamed"),
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, *created.Description, *updated.Description)

	updated, err = svc.Update(ctx, created.DisplayID, ownerID, models.DisplayUpdate{
		Description: ptr(""),
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "", *updated.Description)
}

func TestDisplayService_UpdateRejectsInvalidSuppliedField(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	svc := NewDisplayService(store, store, &fakeIngester{})

	ownerID := uuid.New()
	created, err := svc.Create(ctx, ownerID, validCreate(), nil)
	assert.NoError(t, err)

	_, err = svc.Update(ctx, created.DisplayID, ownerID, models.DisplayUpdate{
		ResolutionWidth: ptr(0),
	}, nil)

	var verrs validation.Errors
	assert.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "resolution_width")
}

func TestDisplayService_UpdateForeignDisplayIsNotFound(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	svc := NewDisplayService(store, store, &fakeIngester{})

	created, err := svc.Create(ctx, uuid.New(), validCreate(), nil)
	assert.NoError(t, err)

	_, err = svc.Update(ctx, created.DisplayID, uuid.New(), models.DisplayUpdate{Name: ptr("hijacked")}, nil)
	assert.ErrorIs(t, err, ErrDisplayNotFound)
	assert.Equal(t, "Display LED 4K - Centro", store.rows[created.DisplayID].Name)
}

func TestDisplayService_UpdateWithPhotoReplacesOldBlobs(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	ingester := &fakeIngester{}
	svc := NewDisplayService(store, store, ingester)

	ownerID := uuid.New()
	created, err := svc.Create(ctx, ownerID, validCreate(), []byte("first-upload"))
	assert.NoError(t, err)
	oldPhoto := *created.PhotoPath
	oldThumb := *created.PhotoThumbPath

	updated, err := svc.Update(ctx, created.DisplayID, ownerID, models.DisplayUpdate{}, []byte("second-upload"))
	assert.NoError(t, err)
	assert.NotEqual(t, oldPhoto, *updated.PhotoPath)
	assert.Contains(t, ingester.removed, oldPhoto)
	assert.Contains(t, ingester.removed, oldThumb)
}

func TestDisplayService_UpdateWithPhotoToleratesMissingThumb(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	ingester := &fakeIngester{}
	svc := NewDisplayService(store, store, ingester)

	// A row with a full photo but no thumbnail should never exist, but
	// a replacement upload must degrade to removing the one key it has
	// instead of panicking on the missing one.
	ownerID := uuid.New()
	displayID := uuid.New()
	oldPhoto := "displays/legacy/photo.jpg"
	store.rows[displayID] = &models.DisplayWithUserDB{
		DisplayDB: models.DisplayDB{
			DisplayID:        displayID,
			Name:             "Display LED Corporativo",
			PricePerDay:      120,
			ResolutionWidth:  1920,
			ResolutionHeight: 1080,
			Type:             models.DisplayTypeIndoor,
			UserID:           ownerID,
			PhotoPath:        &oldPhoto,
		},
	}

	var updated *models.DisplayWithUserDB
	var err error
	assert.NotPanics(t, func() {
		updated, err = svc.Update(ctx, displayID, ownerID, models.DisplayUpdate{}, []byte("second-upload"))
	})
	assert.NoError(t, err)
	assert.NotNil(t, updated.PhotoThumbPath)
	assert.Contains(t, ingester.removed, oldPhoto)
}

func TestDisplayService_DeleteRemovesBlobsAndRow(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	ingester := &fakeIngester{}
	svc := NewDisplayService(store, store, ingester)

	ownerID := uuid.New()
	created, err := svc.Create(ctx, ownerID, validCreate(), []byte("image-bytes"))
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, created.DisplayID, ownerID))
	assert.Empty(t, store.rows)
	assert.Contains(t, ingester.removed, *created.PhotoPath)
	assert.Contains(t, ingester.removed, *created.PhotoThumbPath)
}

func TestDisplayService_DeleteForeignDisplayIsNotFound(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	svc := NewDisplayService(store, store, &fakeIngester{})

	created, err := svc.Create(ctx, uuid.New(), validCreate(), nil)
	assert.NoError(t, err)

	err = svc.Delete(ctx, created.DisplayID, uuid.New())
	assert.ErrorIs(t, err, ErrDisplayNotFound)
	assert.Len(t, store.rows, 1)
}

func TestDisplayService_ListPagination(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	svc := NewDisplayService(store, store, &fakeIngester{})

	ownerID := uuid.New()
	otherID := uuid.New()
	for i := 0; i < 20; i++ {
		_, err := svc.Create(ctx, ownerID, validCreate(), nil)
		assert.NoError(t, err)
	}
	for i := 0; i < 7; i++ {
		_, err := svc.Create(ctx, otherID, validCreate(), nil)
		assert.NoError(t, err)
	}

	page1, meta, err := svc.List(ctx, ownerID, models.DisplayFilter{}, 1, 15)
	assert.NoError(t, err)
	assert.Len(t, page1, 15)
	assert.Equal(t, models.Pagination{CurrentPage: 1, LastPage: 2, PerPage: 15, Total: 20}, meta)

	page2, meta, err := svc.List(ctx, ownerID, models.DisplayFilter{}, 2, 15)
	assert.NoError(t, err)
	assert.Len(t, page2, 5)
	assert.Equal(t, int64(20), meta.Total)

	for _, d := range append(page1, page2...) {
		assert.Equal(t, ownerID, d.UserID, "other users' displays must never appear")
	}
}

func TestDisplayService_ListEmptyHasOnePage(t *testing.T) {
	ctx := context.Background()
	store := newFakeDisplayStore()
	svc := NewDisplayService(store, store, &fakeIngester{})

	displays, meta, err := svc.List(ctx, uuid.New(), models.DisplayFilter{}, 1, 15)
	assert.NoError(t, err)
	assert.Empty(t, displays)
	assert.Equal(t, models.Pagination{CurrentPage: 1, LastPage: 1, PerPage: 15, Total: 0}, meta)
}
