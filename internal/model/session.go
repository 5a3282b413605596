package model

import "time"

// Session represents an attendance session owned by one instructor. Code is
// the short numeric identifier students scan or type to check in; it is
// unique among live sessions but may be reissued after deletion, so
// attendance rows link to ID instead.
type Session struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Code         string    `json:"code" gorm:"uniqueIndex;size:5;not null"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	InstructorID string    `json:"instructor_id" gorm:"index;size:50;not null"`
	CreatedAt    time.Time `json:"created_at"`
}
