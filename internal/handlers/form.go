package handlers

import (
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/asirianni/LatinAd/internal/photos"
)

const maxMultipartMemory = 8 << 20

// isMultipart reports whether the request carries a multipart form,
// the shape browsers use when a photo is attached.
func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// readPhotoFile reads the optional "photo" part of a multipart form.
// Returns nil bytes when no photo was sent. The read is capped just
// above the processor limit so oversized uploads still fail its size
// check instead of silently truncating.
func readPhotoFile(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile("photo")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(io.LimitReader(file, photos.MaxPhotoSizeBytes+1))
}

// formString returns a pointer to the form value, or nil when the
// field was not sent at all.
func formString(r *http.Request, field string) *string {
	if _, ok := r.MultipartForm.Value[field]; !ok {
		return nil
	}
	v := r.FormValue(field)
	return &v
}

func formFloat(r *http.Request, field string, errs map[string]string) *float64 {
	raw := formString(r, field)
	if raw == nil {
		return nil
	}
	v, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		errs[field] = "The " + field + " must be a number."
		return nil
	}
	return &v
}

func formInt(r *http.Request, field string, errs map[string]string) *int {
	raw := formString(r, field)
	if raw == nil {
		return nil
	}
	v, err := strconv.Atoi(*raw)
	if err != nil {
		errs[field] = "The " + field + " must be an integer."
		return nil
	}
	return &v
}
