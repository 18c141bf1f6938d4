// internal/model/constituent.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// RelationLevel is the support-strength tier: A=ironclad, B=friendly,
// C=swing, D=hostile.
type RelationLevel string

const (
	RelationIronclad RelationLevel = "A"
	RelationFriendly RelationLevel = "B"
	RelationSwing    RelationLevel = "C"
	RelationHostile  RelationLevel = "D"
)

// Constituent is a tracked individual served by an office. Rows are never
// hard-deleted; IsDeleted=true rows are excluded from every default read.
type Constituent struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string         `gorm:"type:text;not null" json:"name"`
	Phone         *string        `gorm:"type:text" json:"phone"`
	Phone2        *string        `gorm:"type:text" json:"phone2"`
	Email         *string        `gorm:"type:text" json:"email"`
	Birthday      *time.Time     `json:"birthday"`
	Gender        *Gender        `gorm:"type:text" json:"gender"`
	Occupation    *string        `gorm:"type:text" json:"occupation"`
	Note          *string        `gorm:"type:text" json:"note"`
	Address       *string        `gorm:"type:text" json:"address"`
	RelationLevel *RelationLevel `gorm:"type:text;index" json:"relationLevel"`
	Influence     *string        `gorm:"type:text" json:"influence"`
	DistrictID    *uuid.UUID     `gorm:"type:uuid;index" json:"districtId"`
	OfficeID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"officeId"`
	IsDeleted     bool           `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`

	District *District `gorm:"foreignKey:DistrictID" json:"district,omitempty"`
	Tags     []Tag     `gorm:"many2many:constituent_tags;" json:"tags,omitempty"`
}

// ConstituentTag is the membership join row between constituents and tags.
// The (ConstituentID, TagID) pair is unique; there are no extra attributes.
type ConstituentTag struct {
	ConstituentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"constituentId"`
	TagID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"tagId"`
	CreatedAt     time.Time `json:"createdAt"`
}
