// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"infostore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// ExistsByID reports whether an account with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByUsername reports whether the username is already taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether the email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// Update overwrites the username and email of an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// DeleteByIDOrUsername removes every account whose ID or username matches
	// one of the given keys and returns the IDs of the deleted accounts.
	// A key that matches nothing is silently ignored.
	DeleteByIDOrUsername(ctx context.Context, keys []string) ([]uuid.UUID, error)

	// List returns all accounts in store iteration order.
	List(ctx context.Context) ([]*entity.Account, error)
}
