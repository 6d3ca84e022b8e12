package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null" json:"student_id"`
	AmountPaid  float64   `gorm:"type:numeric(10,2);not null" json:"amount_paid"`
	PaymentDate time.Time `gorm:"type:date;not null" json:"payment_date"`

	Student Student `gorm:"foreignkey:StudentID" json:"student"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
