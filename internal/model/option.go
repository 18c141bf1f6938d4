// internal/model/option.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SelectOption is seeded reference data populating dropdowns, keyed by
// (category, value). Categories in use: caseType, caseCategory, actionType,
// occupation, eventType, relationLevel, influence.
type SelectOption struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Category  string    `gorm:"type:text;not null;uniqueIndex:idx_option_category_value" json:"category"`
	Value     string    `gorm:"type:text;not null;uniqueIndex:idx_option_category_value" json:"value"`
	Label     string    `gorm:"type:text;not null" json:"label"`
	SortOrder int       `gorm:"not null;default:0" json:"sortOrder"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
