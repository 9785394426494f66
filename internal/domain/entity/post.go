package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a content item authored by exactly one account. AuthorID must
// reference an existing account at creation time; it is not re-validated
// afterwards.
type Post struct {
	ID          uuid.UUID
	Title       string
	Description string
	Tags        string
	Image       []byte
	AuthorID    uuid.UUID
	CreatedDate time.Time // Set once at creation, immutable.
}
