package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                     // Primary key
	Name         string    `json:"name" db:"name"`                 // Display name
	Email        string    `json:"email" db:"email"`               // Unique email used for login
	PasswordHash string    `json:"-" db:"password_hash"`           // Hashed password, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
