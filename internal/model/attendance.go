package model

import "time"

// Attendance records one check-in of a student at a session. The composite
// unique index makes a second check-in a duplicate-key conflict rather than
// a second row.
type Attendance struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID string    `json:"student_id" gorm:"size:50;not null;uniqueIndex:idx_attendance_student_session"`
	SessionID uint      `json:"session_id" gorm:"not null;uniqueIndex:idx_attendance_student_session"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
}
