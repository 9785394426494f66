package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreatePostInput defines the data required to create a post.
type CreatePostInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Tags        string    `json:"tags"`
	Image       []byte    `json:"image"`
	AuthorID    uuid.UUID `json:"author_id" validate:"required"`
}

// UpdatePostInput defines the data required to update a post.
// Only title and description are mutable after creation.
type UpdatePostInput struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
}

// PostView is the API-facing representation of a post.
type PostView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	Image       []byte    `json:"image,omitempty"`
	AuthorID    uuid.UUID `json:"author_id"`
	CreatedDate time.Time `json:"created_date"`
}

// DeletePostsOutput reports the number of posts removed by a batch deletion.
type DeletePostsOutput struct {
	DeletedCount int64 `json:"deleted_count"`
}

// PostUsecase defines the interface for post-related business operations.
type PostUsecase interface {
	// Create persists a new post after validating that the author exists.
	Create(ctx context.Context, input *CreatePostInput) (*PostView, error)

	// Update overwrites the title and description of an existing post.
	Update(ctx context.Context, input *UpdatePostInput) (*PostView, error)

	// Delete removes every post whose ID is in the set.
	Delete(ctx context.Context, ids []uuid.UUID) (*DeletePostsOutput, error)

	// List returns all posts.
	List(ctx context.Context) ([]*PostView, error)
}
