package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated account. Only the identity fields matter to the
// engagement core — stories and bookmarks reference users by ID.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
