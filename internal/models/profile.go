package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserProfile is one applicant/worker account. The ID comes from the external
// identity provider at registration, not from the database. Everything except
// VerificationStatus is immutable after creation.
type UserProfile struct {
	ID                 string                      `gorm:"type:uuid;primaryKey" json:"id"`
	Email              string                      `gorm:"uniqueIndex;not null" json:"email"`
	FirstName          string                      `gorm:"not null" json:"first_name"`
	LastName           string                      `gorm:"not null" json:"last_name"`
	Role               Role                        `gorm:"type:varchar(20);not null" json:"role"`
	VerificationStatus VerificationStatus          `gorm:"type:varchar(20);not null;default:pending" json:"verification_status"`
	Documents          datatypes.JSONSlice[string] `json:"documents"`
	CreatedAt          time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time                   `gorm:"autoUpdateTime" json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
