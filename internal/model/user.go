// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         Role      `gorm:"type:text;not null;default:'STAFF'" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	OfficeID     uuid.UUID `gorm:"type:uuid;not null" json:"officeId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Office Office `gorm:"foreignKey:OfficeID" json:"-"`
}

// UserRef is the trimmed user shape embedded in case and event payloads.
type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name}
}
