package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/asirianni/LatinAd/internal/logger"
	"github.com/asirianni/LatinAd/internal/models"
	"github.com/asirianni/LatinAd/internal/photos"
	"github.com/asirianni/LatinAd/internal/validation"
)

// ErrDisplayNotFound is the single not-found outcome for displays. A
// display owned by someone else reports exactly the same way as one
// that never existed, so callers cannot enumerate other users' resources.
var ErrDisplayNotFound = errors.New("display not found")

// DisplayReader defines owner-scoped read operations for displays.
type DisplayReader interface {
	GetByIDAndOwner(ctx context.Context, displayID, ownerID uuid.UUID) (*models.DisplayWithUserDB, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter models.DisplayFilter, page, perPage int) ([]models.DisplayWithUserDB, int64, error)
}

// DisplayWriter defines owner-scoped write operations for displays.
type DisplayWriter interface {
	Save(ctx context.Context, d *models.DisplayDB) error
	UpdateByIDAndOwner(ctx context.Context, displayID, ownerID uuid.UUID, upd models.DisplayUpdate) (bool, error)
	DeleteByIDAndOwner(ctx context.Context, displayID, ownerID uuid.UUID) (bool, error)
}

// PhotoIngester defines the photo processing contract.
type PhotoIngester interface {
	Process(ctx context.Context, data []byte, displayID uuid.UUID) (photoPath, thumbPath string, err error)
	Remove(ctx context.Context, keys ...string)
}

// DisplayService composes validation, ownership scoping, photo
// ingestion and persistence for the display resource.
type DisplayService struct {
	reader DisplayReader
	writer DisplayWriter
	photos PhotoIngester
}

// NewDisplayService creates a new DisplayService instance.
func NewDisplayService(reader DisplayReader, writer DisplayWriter, photos PhotoIngester) *DisplayService {
	return &DisplayService{
		reader: reader,
		writer: writer,
		photos: photos,
	}
}

// List returns one page of the caller's displays plus pagination
// metadata computed under the same ownership predicate.
func (svc *DisplayService) List(ctx context.Context, ownerID uuid.UUID, filter models.DisplayFilter, page, perPage int) ([]models.DisplayWithUserDB, models.Pagination, error) {
	if page < 1 {
		page = 1
	}

	displays, total, err := svc.reader.ListByOwner(ctx, ownerID, filter, page, perPage)
	if err != nil {
		logger.Log.Errorw("failed to list displays", "ownerID", ownerID, "err", err)
		return nil, models.Pagination{}, err
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	return displays, models.Pagination{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}, nil
}

// Get returns the caller's display or ErrDisplayNotFound.
func (svc *DisplayService) Get(ctx context.Context, displayID, ownerID uuid.UUID) (*models.DisplayWithUserDB, error) {
	display, err := svc.reader.GetByIDAndOwner(ctx, displayID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get display", "displayID", displayID, "err", err)
		return nil, err
	}
	if display == nil {
		return nil, ErrDisplayNotFound
	}
	return display, nil
}

// Create validates the payload, ingests the optional photo and inserts
// the display with the owner forced to the authenticated caller. The id
// is generated up front so the derivatives and the row are written as
// one logical operation: a failed insert removes the fresh blobs and no
// entity is left behind.
func (svc *DisplayService) Create(ctx context.Context, ownerID uuid.UUID, in models.DisplayCreate, photo []byte) (*models.DisplayWithUserDB, error) {
	if errs := validation.Struct(in); errs != nil {
		return nil, errs
	}

	displayID := uuid.New()
	d := &models.DisplayDB{
		DisplayID:        displayID,
		Name:             in.Name,
		Description:      in.Description,
		PricePerDay:      *in.PricePerDay,
		ResolutionWidth:  *in.ResolutionWidth,
		ResolutionHeight: *in.ResolutionHeight,
		Type:             in.Type,
		UserID:           ownerID,
	}

	if len(photo) > 0 {
		photoPath, thumbPath, err := svc.photos.Process(ctx, photo, displayID)
		if err != nil {
			return nil, photoError(err)
		}
		d.PhotoPath = &photoPath
		d.PhotoThumbPath = &thumbPath
	}

	if err := svc.writer.Save(ctx, d); err != nil {
		logger.Log.Errorw("failed to save display", "displayID", displayID, "err", err)
		if d.PhotoPath != nil {
			svc.photos.Remove(ctx, *d.PhotoPath, *d.PhotoThumbPath)
		}
		return nil, err
	}

	created, err := svc.Get(ctx, displayID, ownerID)
	if err != nil {
		// The row will be rolled back with the failed request, so the
		// derivatives must not outlive it.
		if d.PhotoPath != nil {
			svc.photos.Remove(ctx, *d.PhotoPath, *d.PhotoThumbPath)
		}
		return nil, err
	}
	return created, nil
}

// Update applies a partial update to the caller's display. When a photo
// accompanies the update, both derivatives are replaced in the same
// write: the new blobs are ingested first, the row is updated once, and
// whichever pair of blobs lost is removed afterwards.
func (svc *DisplayService) Update(ctx context.Context, displayID, ownerID uuid.UUID, in models.DisplayUpdate, photo []byte) (*models.DisplayWithUserDB, error) {
	current, err := svc.Get(ctx, displayID, ownerID)
	if err != nil {
		return nil, err
	}

	if errs := validation.Struct(in); errs != nil {
		return nil, errs
	}

	if len(photo) > 0 {
		photoPath, thumbPath, err := svc.photos.Process(ctx, photo, displayID)
		if err != nil {
			return nil, photoError(err)
		}
		in.PhotoPath = &photoPath
		in.PhotoThumbPath = &thumbPath
	}

	ok, err := svc.writer.UpdateByIDAndOwner(ctx, displayID, ownerID, in)
	if err != nil || !ok {
		if in.PhotoPath != nil {
			svc.photos.Remove(ctx, *in.PhotoPath, *in.PhotoThumbPath)
		}
		if err != nil {
			logger.Log.Errorw("failed to update display", "displayID", displayID, "err", err)
			return nil, err
		}
		return nil, ErrDisplayNotFound
	}

	// The upload replaced the previous derivatives; drop them best-effort.
	if in.PhotoPath != nil && current.PhotoPath != nil {
		keys := []string{*current.PhotoPath}
		if current.PhotoThumbPath != nil {
			keys = append(keys, *current.PhotoThumbPath)
		}
		svc.photos.Remove(ctx, keys...)
	}

	return svc.Get(ctx, displayID, ownerID)
}

// Delete removes the caller's display. Associated blobs are removed
// first, best-effort: a storage failure is logged but never blocks the
// entity delete.
func (svc *DisplayService) Delete(ctx context.Context, displayID, ownerID uuid.UUID) error {
	current, err := svc.Get(ctx, displayID, ownerID)
	if err != nil {
		return err
	}

	if current.PhotoPath != nil {
		keys := []string{*current.PhotoPath}
		if current.PhotoThumbPath != nil {
			keys = append(keys, *current.PhotoThumbPath)
		}
		svc.photos.Remove(ctx, keys...)
	}

	ok, err := svc.writer.DeleteByIDAndOwner(ctx, displayID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to delete display", "displayID", displayID, "err", err)
		return err
	}
	if !ok {
		return ErrDisplayNotFound
	}
	return nil
}

// photoError maps processor rejections onto a photo-field validation
// error so clients see a regular 422; anything else passes through.
func photoError(err error) error {
	if errors.Is(err, photos.ErrPhotoTooLarge) || errors.Is(err, photos.ErrUnsupportedImage) {
		return validation.Errors{"photo": err.Error()}
	}
	return err
}
