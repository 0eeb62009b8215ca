package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a globally shared tag, created the first time any user attaches it.
type Skill struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// UserSkill links a user to a skill. One row per pair.
type UserSkill struct {
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	SkillID uuid.UUID `gorm:"type:uuid;primaryKey" json:"skill_id"`

	User  *User  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Skill *Skill `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// SkillName is the row shape returned when listing a user's skills.
type SkillName struct {
	Name string `json:"name"`
}
