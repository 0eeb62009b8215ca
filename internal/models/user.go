package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the kind of account a user holds. It is fixed at registration.
type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
)

// User is the persisted account row. The PostGIS location column is managed
// by the migration binary and read through Profile queries only.
type User struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name               string     `gorm:"type:varchar(255);not null" json:"name"`
	Email              string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash       *string    `gorm:"type:varchar(255)" json:"-"`
	PhoneNumber        string     `gorm:"type:varchar(20);not null" json:"phone_number"`
	Role               Role       `gorm:"type:varchar(20);not null;check:role IN ('jobseeker', 'recruiter')" json:"role"`
	Bio                *string    `gorm:"type:text" json:"bio"`
	Resume             *string    `gorm:"type:varchar(500)" json:"resume"`
	ResumePublicID     *string    `gorm:"type:varchar(255)" json:"resume_public_id"`
	ProfilePic         *string    `gorm:"type:varchar(500)" json:"profile_pic"`
	ProfilePicPublicID *string    `gorm:"type:varchar(255)" json:"profile_pic_public_id"`
	Subscription       *time.Time `json:"subscription"`
	CompanyID          *uuid.UUID `gorm:"type:uuid" json:"-"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Location is a WGS84 point. Stored as geometry(Point, 4326), longitude first.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Profile is the public view of a user: no password hash, skills joined in,
// location decoded from PostGIS.
type Profile struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	PhoneNumber        string     `json:"phone_number"`
	Role               Role       `json:"role"`
	Bio                *string    `json:"bio"`
	Resume             *string    `json:"resume"`
	ResumePublicID     *string    `json:"resume_public_id"`
	ProfilePic         *string    `json:"profile_pic"`
	ProfilePicPublicID *string    `json:"profile_pic_public_id"`
	Subscription       *time.Time `json:"subscription"`
	Skills             []string   `json:"skills"`
	Location           *Location  `json:"location,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Account pairs a profile with its stored credential. Only the auth flows see it.
type Account struct {
	Profile
	PasswordHash *string `json:"-"`
}

// ProfileOf builds the public view of a freshly inserted user.
func ProfileOf(u *User) Profile {
	return Profile{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		PhoneNumber:        u.PhoneNumber,
		Role:               u.Role,
		Bio:                u.Bio,
		Resume:             u.Resume,
		ResumePublicID:     u.ResumePublicID,
		ProfilePic:         u.ProfilePic,
		ProfilePicPublicID: u.ProfilePicPublicID,
		Subscription:       u.Subscription,
		Skills:             []string{},
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
