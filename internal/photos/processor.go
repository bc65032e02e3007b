// Package photos converts uploaded images into the two persisted
// derivatives every display photo gets: a re-encoded full-size JPEG and
// a width-bounded thumbnail.
package photos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/image/webp"

	"github.com/asirianni/LatinAd/internal/logger"
)

const (
	// MaxPhotoSizeBytes is the upload size cap (5 MiB).
	MaxPhotoSizeBytes = 5 << 20

	// ThumbnailMaxWidth bounds the thumbnail derivative. Narrower
	// originals are never upscaled.
	ThumbnailMaxWidth = 400

	photoQuality     = 85 // JPEG quality of the full-size derivative
	thumbnailQuality = 80 // JPEG quality of the thumbnail derivative
)

// Error variables
var (
	ErrPhotoTooLarge    = errors.New("photo exceeds the maximum allowed size of 5MB")
	ErrUnsupportedImage = errors.New("photo must be a JPG, PNG or WEBP image")
)

// BlobStore abstracts where derivatives are persisted.
type BlobStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Remove(ctx context.Context, keys ...string) error
	URL(key string) string
}

// Processor ingests uploads and manages the derivative lifecycle.
type Processor struct {
	store BlobStore
}

// NewProcessor creates a Processor persisting through store.
func NewProcessor(store BlobStore) *Processor {
	return &Processor{store: store}
}

// Process validates the raw upload, produces both derivatives and
// persists them under a per-display prefix. Filenames embed a timestamp
// and a random suffix so repeated uploads never collide. On any failure
// nothing is left behind in the store.
func (p *Processor) Process(ctx context.Context, data []byte, displayID uuid.UUID) (photoPath, thumbPath string, err error) {
	img, err := decode(data)
	if err != nil {
		return "", "", err
	}

	full, err := encodeJPEG(img, photoQuality)
	if err != nil {
		return "", "", fmt.Errorf("encode photo: %w", err)
	}

	thumb := img
	if img.Bounds().Dx() > ThumbnailMaxWidth {
		thumb = imaging.Resize(img, ThumbnailMaxWidth, 0, imaging.Lanczos)
	}
	thumbData, err := encodeJPEG(thumb, thumbnailQuality)
	if err != nil {
		return "", "", fmt.Errorf("encode thumbnail: %w", err)
	}

	stamp := time.Now().UTC().Format("20060102150405")
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	photoPath = fmt.Sprintf("displays/%s/photo_%s_%s.jpg", displayID, stamp, suffix)
	thumbPath = fmt.Sprintf("displays/%s/photo_thumb_%s_%s.jpg", displayID, stamp, suffix)

	if err := p.store.Save(ctx, photoPath, full); err != nil {
		return "", "", fmt.Errorf("store photo: %w", err)
	}
	if err := p.store.Save(ctx, thumbPath, thumbData); err != nil {
		p.Remove(ctx, photoPath)
		return "", "", fmt.Errorf("store thumbnail: %w", err)
	}

	return photoPath, thumbPath, nil
}

// Remove deletes the blobs under the given keys, best-effort: failures
// are logged and swallowed so a missing blob never blocks the caller.
func (p *Processor) Remove(ctx context.Context, keys ...string) {
	if err := p.store.Remove(ctx, keys...); err != nil {
		logger.Log.Errorw("failed to remove photo blobs", "keys", keys, "error", err)
	}
}

// URL maps a storage key to its public URL; empty keys map to "".
func (p *Processor) URL(key string) string {
	return p.store.URL(key)
}

// decode enforces the size cap and the accepted formats, returning the
// decoded raster image.
func decode(data []byte) (image.Image, error) {
	if len(data) > MaxPhotoSizeBytes {
		return nil, ErrPhotoTooLarge
	}

	var (
		img image.Image
		err error
	)
	switch http.DetectContentType(data) {
	case "image/jpeg", "image/png":
		img, err = imaging.Decode(bytes.NewReader(data))
	case "image/webp":
		img, err = webp.Decode(bytes.NewReader(data))
	default:
		return nil, ErrUnsupportedImage
	}
	if err != nil {
		return nil, ErrUnsupportedImage
	}
	return img, nil
}

// encodeJPEG re-encodes img as JPEG at the given quality.
func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
