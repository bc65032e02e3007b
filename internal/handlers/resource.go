package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asirianni/LatinAd/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// PhotoURLResolver maps a stored blob key to a public URL.
type PhotoURLResolver interface {
	URL(key string) string
}

// UserResource is the public shape of a user.
// swagger:model UserResource
type UserResource struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ResolutionResource groups the display resolution fields.
// swagger:model ResolutionResource
type ResolutionResource struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Formatted string `json:"formatted"`
}

// DisplayResource is the public shape of a display, including fields
// derived from the stored row.
// swagger:model DisplayResource
type DisplayResource struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    *string            `json:"description"`
	PricePerDay    float64            `json:"price_per_day"`
	FormattedPrice string             `json:"formatted_price"`
	Resolution     ResolutionResource `json:"resolution"`
	Type           string             `json:"type"`
	TypeLabel      string             `json:"type_label"`
	PhotoURL       *string            `json:"photo_url"`
	PhotoThumbURL  *string            `json:"photo_thumb_url"`
	Owner          UserResource       `json:"user"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
}

func newUserResource(u *models.UserDB) UserResource {
	return UserResource{
		ID:        u.UserID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(timestampLayout),
	}
}

func newDisplayResource(d *models.DisplayWithUserDB, urls PhotoURLResolver) DisplayResource {
	return DisplayResource{
		ID:             d.DisplayID.String(),
		Name:           d.Name,
		Description:    d.Description,
		PricePerDay:    d.PricePerDay,
		FormattedPrice: formatPrice(d.PricePerDay),
		Resolution: ResolutionResource{
			Width:     d.ResolutionWidth,
			Height:    d.ResolutionHeight,
			Formatted: fmt.Sprintf("%dx%d", d.ResolutionWidth, d.ResolutionHeight),
		},
		Type:          d.Type,
		TypeLabel:     typeLabel(d.Type),
		PhotoURL:      resolveURL(urls, d.PhotoPath),
		PhotoThumbURL: resolveURL(urls, d.PhotoThumbPath),
		Owner: UserResource{
			ID:    d.UserID.String(),
			Name:  d.OwnerName,
			Email: d.OwnerEmail,
		},
		CreatedAt: d.CreatedAt.Format(timestampLayout),
		UpdatedAt: d.UpdatedAt.Format(timestampLayout),
	}
}

func newDisplayResources(ds []models.DisplayWithUserDB, urls PhotoURLResolver) []DisplayResource {
	out := make([]DisplayResource, 0, len(ds))
	for i := range ds {
		out = append(out, newDisplayResource(&ds[i], urls))
	}
	return out
}

func typeLabel(displayType string) string {
	switch displayType {
	case models.DisplayTypeIndoor:
		return "Interior"
	case models.DisplayTypeOutdoor:
		return "Exterior"
	}
	return displayType
}

func resolveURL(urls PhotoURLResolver, key *string) *string {
	if key == nil || *key == "" {
		return nil
	}
	u := urls.URL(*key)
	if u == "" {
		return nil
	}
	return &u
}

// formatPrice renders a non-negative price as "$1,234.56".
func formatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	b.WriteByte('$')
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteString(fracPart)
	return b.String()
}
