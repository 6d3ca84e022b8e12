package models

import (
	"time"

	"github.com/google/uuid"
)

// Request statuses. A request starts out pending and is moved to exactly one
// of the terminal statuses by an admin decision.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// StudentUpdateRequest is a student's proposal to change their own record.
// A nil requested field means "no change requested for this attribute".
type StudentUpdateRequest struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID               uuid.UUID  `gorm:"type:uuid;not null" json:"student_id"`
	RequestedName           *string    `gorm:"size:255" json:"requested_name"`
	RequestedEmail          *string    `gorm:"size:255" json:"requested_email"`
	RequestedPhone          *string    `gorm:"size:50" json:"requested_phone"`
	RequestedYearAndSection *string    `gorm:"size:100;column:requested_yearandsection" json:"requested_yearandsection"`
	Status                  string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	AdminNotes              *string    `gorm:"type:text" json:"admin_notes"`
	RequestDate             time.Time  `gorm:"not null" json:"request_date"`
	ProcessedAt             *time.Time `json:"processed_at"`

	Student Student `gorm:"foreignkey:StudentID" json:"student"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasChanges reports whether the request proposes at least one field change.
func (r *StudentUpdateRequest) HasChanges() bool {
	return r.RequestedName != nil || r.RequestedEmail != nil ||
		r.RequestedPhone != nil || r.RequestedYearAndSection != nil
}
