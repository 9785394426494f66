package repository

import (
	"context"
	"errors"

	"infostore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// Update overwrites the title and description of an existing post.
	Update(ctx context.Context, post *entity.Post) error

	// DeleteByIDs removes every post whose ID is in the given set and
	// returns the number of deleted rows.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)

	// List returns all posts in store iteration order.
	List(ctx context.Context) ([]*entity.Post, error)
}
