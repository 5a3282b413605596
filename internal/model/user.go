package model

import "time"

// User represents a registered account in the system. ExternalID is the
// human-facing identifier ("stu_10482"); ID is the storage key.
type User struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	ExternalID   string    `json:"user_id" gorm:"uniqueIndex;size:50;not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string    `json:"-" gorm:"size:200;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:50;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}
