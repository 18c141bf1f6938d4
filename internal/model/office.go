// internal/model/office.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Office is the tenant boundary. Every constituent, case and event belongs
// to exactly one office and is never visible across offices.
type Office struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	City        string    `gorm:"type:text;not null" json:"city"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
