package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"classtrack/internal/cache"
	errs "classtrack/internal/errors"
	"classtrack/internal/model"
	"classtrack/internal/repository"
)

// UserService exposes admin operations over the user directory.
type UserService interface {
	ListUsers(ctx context.Context, caller *model.User) ([]model.User, error)
	DeleteUser(ctx context.Context, caller *model.User, externalID string) error
}

type userService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	codes    cache.SessionCodeCache
}

// NewUserService builds a UserService. The session repository and code cache
// are needed because deleting an instructor tears down their sessions, whose
// codes must stop resolving.
func NewUserService(users repository.UserRepository, sessions repository.SessionRepository, codes cache.SessionCodeCache) UserService {
	return &userService{users: users, sessions: sessions, codes: codes}
}

// ListUsers returns all users. Admin only.
func (s *userService) ListUsers(ctx context.Context, caller *model.User) ([]model.User, error) {
	if caller.Role != model.RoleAdmin {
		return nil, errs.ErrAdminOnly
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user and everything hanging off them: sessions they
// instruct, attendance of those sessions, and attendance they marked. Admin
// only. Owned session codes are collected before the cascade and invalidated
// after it commits, so a cached code cannot outlive its session.
func (s *userService) DeleteUser(ctx context.Context, caller *model.User, externalID string) error {
	if caller.Role != model.RoleAdmin {
		return errs.ErrAdminOnly
	}
	target, err := s.users.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	owned, err := s.sessions.ListByInstructor(ctx, target.ExternalID)
	if err != nil {
		return fmt.Errorf("list owned sessions: %w", err)
	}

	if err := s.users.DeleteCascade(ctx, target); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	for _, session := range owned {
		s.codes.Invalidate(ctx, session.Code)
	}
	return nil
}
