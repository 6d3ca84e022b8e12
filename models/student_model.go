package models

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentNumber  *string   `gorm:"size:50" json:"student_number"`
	Name           *string   `gorm:"size:255" json:"name"`
	Email          *string   `gorm:"size:255" json:"email"`
	Phone          *string   `gorm:"size:50" json:"phone"`
	YearAndSection *string   `gorm:"size:100;column:yearandsection" json:"yearandsection"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
