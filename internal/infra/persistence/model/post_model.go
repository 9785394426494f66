package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. The author foreign key cascades on
// delete: removing an account removes its posts at the storage layer.
type PostModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Tags        string    `gorm:"type:varchar(255)"`
	Image       []byte    `gorm:"type:bytea"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedDate time.Time `gorm:"not null"`

	Author *AccountModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
