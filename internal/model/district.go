// internal/model/district.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// District is static administrative geography (city / township / village).
// Rows are loaded by the seeder and never mutated by normal users.
type District struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	City      string    `gorm:"type:text;not null;uniqueIndex:idx_district_triple" json:"city"`
	Township  string    `gorm:"type:text;not null;uniqueIndex:idx_district_triple" json:"township"`
	Village   string    `gorm:"type:text;not null;uniqueIndex:idx_district_triple" json:"village"`
	CreatedAt time.Time `json:"createdAt"`
}
