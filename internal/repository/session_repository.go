package repository

import (
	"context"

	"gorm.io/gorm"

	"classtrack/internal/model"
)

// SessionRepository defines persistence operations for attendance sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	FindByID(ctx context.Context, id uint) (*model.Session, error)
	FindByCode(ctx context.Context, code string) (*model.Session, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]model.Session, error)
	List(ctx context.Context) ([]model.Session, error)
	DeleteCascade(ctx context.Context, session *model.Session) error
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository builds a GORM-backed repository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) FindByID(ctx context.Context, id uint) (*model.Session, error) {
	var session model.Session
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindByCode(ctx context.Context, code string) (*model.Session, error) {
	var session model.Session
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) ListByInstructor(ctx context.Context, instructorID string) ([]model.Session, error) {
	var sessions []model.Session
	if err := r.db.WithContext(ctx).Where("instructor_id = ?", instructorID).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) List(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	if err := r.db.WithContext(ctx).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// DeleteCascade removes the session and its attendance rows in one
// transaction.
func (r *sessionRepository) DeleteCascade(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", session.ID).Delete(&model.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(session).Error
	})
}
