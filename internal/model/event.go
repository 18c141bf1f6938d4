// internal/model/event.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendancePending   AttendanceStatus = "PENDING"
	AttendanceAttended  AttendanceStatus = "ATTENDED"
	AttendanceDelegated AttendanceStatus = "DELEGATED"
	AttendanceMissed    AttendanceStatus = "MISSED"
)

// Event is a ceremonial or community occurrence the office may attend.
// HostName and DeceasedName are conventionally filled only for ceremonial
// event types (weddings and funerals).
type Event struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string    `gorm:"type:text;not null" json:"title"`
	EventType    string    `gorm:"type:text;not null;index" json:"eventType"`
	Description  *string   `gorm:"type:text" json:"description"`
	EventDate    time.Time `gorm:"not null;index" json:"eventDate"`
	Location     *string   `gorm:"type:text" json:"location"`
	HostName     *string   `gorm:"type:text" json:"hostName"`
	DeceasedName *string   `gorm:"type:text" json:"deceasedName"`
	// Attendance is the office's own attendance decision for the event,
	// distinct from the per-participant status.
	Attendance  AttendanceStatus `gorm:"type:text;not null;default:'PENDING'" json:"attendance"`
	CreatedByID uuid.UUID        `gorm:"type:uuid;not null" json:"createdById"`
	OfficeID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"officeId"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`

	CreatedBy    *User              `gorm:"foreignKey:CreatedByID" json:"-"`
	Participants []EventParticipant `gorm:"foreignKey:EventID" json:"participants,omitempty"`
}

// EventParticipant tracks a constituent's attendance at an event.
type EventParticipant struct {
	EventID       uuid.UUID        `gorm:"type:uuid;primaryKey" json:"eventId"`
	ConstituentID uuid.UUID        `gorm:"type:uuid;primaryKey" json:"constituentId"`
	Status        AttendanceStatus `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`

	Constituent *Constituent `gorm:"foreignKey:ConstituentID" json:"constituent,omitempty"`
}
