package repository

import (
	"context"

	"gorm.io/gorm"

	"classtrack/internal/model"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByExternalID(ctx context.Context, externalID string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	DeleteCascade(ctx context.Context, user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByExternalID(ctx context.Context, externalID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteCascade removes the user together with every dependent row: sessions
// they own, attendance of those sessions, and their own attendance. All or
// nothing, so no orphans survive a partial failure.
func (r *userRepository) DeleteCascade(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownedSessions := tx.Model(&model.Session{}).Select("id").Where("instructor_id = ?", user.ExternalID)
		if err := tx.Where("session_id IN (?)", ownedSessions).Delete(&model.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("instructor_id = ?", user.ExternalID).Delete(&model.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", user.ExternalID).Delete(&model.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}
