package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported display types
const (
	DisplayTypeIndoor  = "indoor"
	DisplayTypeOutdoor = "outdoor"
)

// DisplayDB represents a display row in the database
type DisplayDB struct {
	DisplayID        uuid.UUID `json:"id" db:"id"`                               // Unique display identifier
	Name             string    `json:"name" db:"name"`                           // Display name, up to 255 chars
	Description      *string   `json:"description" db:"description"`             // Optional free-text description
	PricePerDay      float64   `json:"price_per_day" db:"price_per_day"`         // Rental price per day, non-negative
	ResolutionWidth  int       `json:"resolution_width" db:"resolution_width"`   // Horizontal resolution in pixels, positive
	ResolutionHeight int       `json:"resolution_height" db:"resolution_height"` // Vertical resolution in pixels, positive
	Type             string    `json:"type" db:"type"`                           // indoor or outdoor
	UserID           uuid.UUID `json:"user_id" db:"user_id"`                     // Identifier of the display's owner
	PhotoPath        *string   `json:"photo_path" db:"photo_path"`               // Storage key of the full-size derivative
	PhotoThumbPath   *string   `json:"photo_thumb_path" db:"photo_thumb_path"`   // Storage key of the thumbnail derivative
	CreatedAt        time.Time `json:"created_at" db:"created_at"`               // Timestamp when the display was created
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`               // Timestamp of the last display update
}

// DisplayWithUserDB is a display row joined with the public fields of its owner.
type DisplayWithUserDB struct {
	DisplayDB
	OwnerName  string `db:"owner_name"`  // Owner's display name
	OwnerEmail string `db:"owner_email"` // Owner's email
}

// DisplayCreate holds the validated attributes for creating a display.
// The owner is never part of the payload; it is forced to the caller.
type DisplayCreate struct {
	Name             string   `json:"name" validate:"required,max=255"`
	Description      *string  `json:"description"`
	PricePerDay      *float64 `json:"price_per_day" validate:"required,gte=0"`
	ResolutionWidth  *int     `json:"resolution_width" validate:"required,gt=0"`
	ResolutionHeight *int     `json:"resolution_height" validate:"required,gt=0"`
	Type             string   `json:"type" validate:"required,oneof=indoor outdoor"`
}

// DisplayUpdate holds a partial update: nil fields are left untouched,
// supplied fields must each be valid on their own. A JSON null and an
// absent field are indistinguishable here, so description cannot be
// cleared back to null through this payload, only overwritten.
type DisplayUpdate struct {
	Name             *string  `json:"name" validate:"omitnil,min=1,max=255"`
	Description      *string  `json:"description"`
	PricePerDay      *float64 `json:"price_per_day" validate:"omitnil,gte=0"`
	ResolutionWidth  *int     `json:"resolution_width" validate:"omitnil,gt=0"`
	ResolutionHeight *int     `json:"resolution_height" validate:"omitnil,gt=0"`
	Type             *string  `json:"type" validate:"omitnil,oneof=indoor outdoor"`

	// Photo derivative keys, set together by the service after a
	// successful upload. Never client-supplied.
	PhotoPath      *string `json:"-" validate:"-"`
	PhotoThumbPath *string `json:"-" validate:"-"`
}

// DisplayFilter narrows an owner-scoped listing.
type DisplayFilter struct {
	Type *string // indoor or outdoor; nil means both
}

// Pagination describes the page metadata of an owner-scoped listing.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}
