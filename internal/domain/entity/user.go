package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in PasswordHash and never serialized.
// Addresses live inside the aggregate; they have no identity outside it.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	AvatarURL    string
	Preferences  map[string]any
	Addresses    []Address
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
