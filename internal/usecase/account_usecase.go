// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterAccountInput defines the data required to register a new account.
type RegisterAccountInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountInput defines the data required to update an account.
// ID is parsed by the service; a malformed value is a validation error,
// not an internal one.
type UpdateAccountInput struct {
	ID       string `json:"id" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// LoginInput defines the data required for a credential check.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AccountSummary is the credential-free view of an account. Password, hash
// and salt are never exposed through the use case boundary.
type AccountSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// RegisterBatchOutput summarizes a bulk registration: how many entries were
// persisted, how many were skipped over conflicts, and the created accounts.
type RegisterBatchOutput struct {
	Registered int               `json:"registered"`
	Skipped    int               `json:"skipped"`
	Accounts   []*AccountSummary `json:"accounts"`
}

// DeleteAccountsOutput reports the deleted accounts of a batch deletion.
type DeleteAccountsOutput struct {
	DeletedCount int      `json:"deleted_count"`
	DeletedIDs   []string `json:"deleted_ids"`
}

// LoginOutput marks a successful credential check. No token is issued;
// login is a pure credential check in this design.
type LoginOutput struct {
	Account *AccountSummary `json:"account"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a single account, rejecting duplicate usernames and emails.
	Register(ctx context.Context, input *RegisterAccountInput) (*AccountSummary, error)

	// RegisterBatch creates accounts for all entries whose username and email
	// are free at the time the entry is processed, skipping the rest.
	// All accepted entries share one transaction: a persistence failure
	// aborts the whole batch.
	RegisterBatch(ctx context.Context, inputs []*RegisterAccountInput) (*RegisterBatchOutput, error)

	// Update overwrites the username and email of an existing account.
	Update(ctx context.Context, input *UpdateAccountInput) (*AccountSummary, error)

	// Delete removes every account matching one of the keys, where a key is
	// either an account ID or a username.
	Delete(ctx context.Context, keys []string) (*DeleteAccountsOutput, error)

	// Login verifies the password for the account registered under the email.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// List returns all accounts as credential-free summaries.
	List(ctx context.Context) ([]*AccountSummary, error)
}
