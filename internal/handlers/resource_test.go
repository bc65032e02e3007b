package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/asirianni/LatinAd/internal/models"
)

type staticResolver struct{ base string }

func (r staticResolver) URL(key string) string {
	if key == "" {
		return ""
	}
	return r.base + "/storage/" + key
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{150.5, "$150.50"},
		{1000, "$1,000.00"},
		{1234567.891, "$1,234,567.89"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatPrice(tt.price))
	}
}

func TestNewDisplayResource(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	photo := "displays/abc/photo_20260314092653_aaaa.jpg"
	thumb := "displays/abc/photo_thumb_20260314092653_aaaa.jpg"

	d := &models.DisplayWithUserDB{
		DisplayDB: models.DisplayDB{
			DisplayID:        uuid.New(),
			Name:             "Obelisco LED",
			PricePerDay:      1500,
			ResolutionWidth:  1920,
			ResolutionHeight: 1080,
			Type:             models.DisplayTypeOutdoor,
			UserID:           uuid.New(),
			PhotoPath:        &photo,
			PhotoThumbPath:   &thumb,
			CreatedAt:        created,
			UpdatedAt:        created,
		},
		OwnerName:  "Test User",
		OwnerEmail: "test1@example.com",
	}

	res := newDisplayResource(d, staticResolver{base: "http://localhost:8080"})

	assert.Equal(t, d.DisplayID.String(), res.ID)
	assert.Equal(t, "$1,500.00", res.FormattedPrice)
	assert.Equal(t, "1920x1080", res.Resolution.Formatted)
	assert.Equal(t, "Exterior", res.TypeLabel)
	assert.Equal(t, "2026-03-14 09:26:53", res.CreatedAt)
	assert.Equal(t, "Test User", res.Owner.Name)
	if assert.NotNil(t, res.PhotoURL) {
		assert.Equal(t, "http://localhost:8080/storage/"+photo, *res.PhotoURL)
	}
	if assert.NotNil(t, res.PhotoThumbURL) {
		assert.Equal(t, "http://localhost:8080/storage/"+thumb, *res.PhotoThumbURL)
	}
}

func TestDisplayResource_OwnerSerializedAsUser(t *testing.T) {
	d := sampleDisplay(uuid.New())
	res := newDisplayResource(d, staticResolver{base: "http://localhost:8080"})

	raw, err := json.Marshal(res)
	assert.NoError(t, err)

	var decoded map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "user")
	assert.NotContains(t, decoded, "owner")
}

func TestNewDisplayResource_NoPhoto(t *testing.T) {
	d := &models.DisplayWithUserDB{
		DisplayDB: models.DisplayDB{
			DisplayID:        uuid.New(),
			Name:             "Hall screen",
			PricePerDay:      99.9,
			ResolutionWidth:  800,
			ResolutionHeight: 600,
			Type:             models.DisplayTypeIndoor,
			UserID:           uuid.New(),
		},
	}

	res := newDisplayResource(d, staticResolver{base: "http://localhost:8080"})

	assert.Equal(t, "Interior", res.TypeLabel)
	assert.Nil(t, res.PhotoURL)
	assert.Nil(t, res.PhotoThumbURL)
}
