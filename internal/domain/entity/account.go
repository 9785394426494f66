// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered identity with a username, email and salted password hash.
// The hash and salt are derived values: they are set once by the registration
// flow and never accepted directly from a caller.
type Account struct {
	ID           uuid.UUID // Unique identifier, assigned at creation, immutable.
	Username     string    // Unique across all accounts, required.
	Email        string    // Unique across all accounts, required.
	PasswordHash []byte    // SHA-256 digest of the password concatenated with the salt.
	PasswordSalt []byte    // 16 random bytes, generated once at creation, immutable.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
