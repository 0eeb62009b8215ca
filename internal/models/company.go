package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is the employer a recruiter belongs to.
type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       *string   `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Website     *string   `gorm:"type:varchar(255)" json:"website"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
