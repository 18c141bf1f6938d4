// internal/model/tag.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TagCategory owns an ordered set of tags. Name is globally unique.
type TagCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	SortOrder int       `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Tags []Tag `gorm:"foreignKey:CategoryID" json:"tags,omitempty"`

	// TagCount is filled by list queries, not persisted.
	TagCount int64 `gorm:"-" json:"tagCount"`
}

// Tag is a user-defined segmentation label. Deleting a tag only flips
// IsActive off so existing constituent assignments stay intact.
type Tag struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"type:text;not null;uniqueIndex:idx_tag_category_name" json:"name"`
	Color      *string   `gorm:"type:text" json:"color"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tag_category_name" json:"categoryId"`
	IsActive   bool      `gorm:"not null;default:true" json:"isActive"`
	SortOrder  int       `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Category *TagCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	// ConstituentCount is filled by list queries, not persisted.
	ConstituentCount int64 `gorm:"-" json:"constituentCount"`
}
