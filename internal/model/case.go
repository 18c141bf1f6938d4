// internal/model/case.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type CaseStatus string

const (
	CasePending    CaseStatus = "PENDING"
	CaseInProgress CaseStatus = "IN_PROGRESS"
	CaseClosed     CaseStatus = "CLOSED"
)

type CasePriority string

const (
	PriorityLow    CasePriority = "LOW"
	PriorityNormal CasePriority = "NORMAL"
	PriorityHigh   CasePriority = "HIGH"
	PriorityUrgent CasePriority = "URGENT"
)

// ParticipantRole is the role a constituent plays on a case.
type ParticipantRole string

const (
	RolePetitioner ParticipantRole = "petitioner"
	RoleWitness    ParticipantRole = "witness"
	RoleContact    ParticipantRole = "contact"
)

// ValidParticipantRole reports whether r is one of the enumerated roles.
func ValidParticipantRole(r ParticipantRole) bool {
	switch r {
	case RolePetitioner, RoleWitness, RoleContact:
		return true
	}
	return false
}

// Case is a tracked service request: petition, site inspection, or a
// legal/administrative consultation.
type Case struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string       `gorm:"type:text;not null" json:"title"`
	Description  *string      `gorm:"type:text" json:"description"`
	CaseType     string       `gorm:"type:text;not null;index" json:"caseType"`
	CaseCategory *string      `gorm:"type:text" json:"caseCategory"`
	Priority     CasePriority `gorm:"type:text;not null;default:'NORMAL'" json:"priority"`
	Status       CaseStatus   `gorm:"type:text;not null;default:'PENDING';index" json:"status"`
	DistrictID   *uuid.UUID   `gorm:"type:uuid" json:"districtId"`
	Location     *string      `gorm:"type:text" json:"location"`
	CreatedByID  uuid.UUID    `gorm:"type:uuid;not null" json:"createdById"`
	AssigneeID   *uuid.UUID   `gorm:"type:uuid;index" json:"assigneeId"`
	OfficeID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"officeId"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`

	District     *District         `gorm:"foreignKey:DistrictID" json:"district,omitempty"`
	CreatedBy    *User             `gorm:"foreignKey:CreatedByID" json:"-"`
	Assignee     *User             `gorm:"foreignKey:AssigneeID" json:"-"`
	Constituents []CaseConstituent `gorm:"foreignKey:CaseID" json:"constituents,omitempty"`
	Progresses   []CaseProgress    `gorm:"foreignKey:CaseID" json:"progresses,omitempty"`

	// List-query projections, not persisted.
	ProgressCount  int64         `gorm:"-" json:"progressCount"`
	LatestProgress *CaseProgress `gorm:"-" json:"latestProgress,omitempty"`
	CreatedByRef   *UserRef      `gorm:"-" json:"createdBy,omitempty"`
	AssigneeRef    *UserRef      `gorm:"-" json:"assignee,omitempty"`
}

// CaseConstituent links a constituent to a case with an enumerated role.
type CaseConstituent struct {
	CaseID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"caseId"`
	ConstituentID uuid.UUID       `gorm:"type:uuid;primaryKey" json:"constituentId"`
	Role          ParticipantRole `gorm:"type:text;not null;default:'petitioner'" json:"role"`
	CreatedAt     time.Time       `json:"createdAt"`

	Constituent *Constituent `gorm:"foreignKey:ConstituentID" json:"constituent,omitempty"`
}

// CaseProgress is an append-only timeline entry. Creating one flips the
// parent case to IN_PROGRESS in the same transaction.
type CaseProgress struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CaseID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"caseId"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	ActionType  string     `gorm:"type:text;not null" json:"actionType"`
	ActionDate  time.Time  `gorm:"not null" json:"actionDate"`
	NextAction  *string    `gorm:"type:text" json:"nextAction"`
	CreatedByID uuid.UUID  `gorm:"type:uuid;not null" json:"createdById"`
	CreatedAt   time.Time  `json:"createdAt"`

	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"-"`

	// List-query projection, not persisted.
	CreatedByRef *UserRef `gorm:"-" json:"createdBy,omitempty"`
}
