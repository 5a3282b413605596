package repository

import (
	"context"

	"gorm.io/gorm"

	"classtrack/internal/model"
)

// AttendanceRepository defines persistence operations for the ledger.
type AttendanceRepository interface {
	Create(ctx context.Context, record *model.Attendance) error
	FindByID(ctx context.Context, id uint) (*model.Attendance, error)
	FindByStudentAndSession(ctx context.Context, studentID string, sessionID uint) (*model.Attendance, error)
	ListBySession(ctx context.Context, sessionID uint) ([]model.Attendance, error)
	List(ctx context.Context) ([]model.Attendance, error)
	Delete(ctx context.Context, record *model.Attendance) error
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository builds a GORM-backed repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, record *model.Attendance) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepository) FindByID(ctx context.Context, id uint) (*model.Attendance, error) {
	var record model.Attendance
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) FindByStudentAndSession(ctx context.Context, studentID string, sessionID uint) (*model.Attendance, error) {
	var record model.Attendance
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND session_id = ?", studentID, sessionID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) ListBySession(ctx context.Context, sessionID uint) ([]model.Attendance, error) {
	var records []model.Attendance
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) List(ctx context.Context) ([]model.Attendance, error) {
	var records []model.Attendance
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, record *model.Attendance) error {
	return r.db.WithContext(ctx).Delete(record).Error
}
