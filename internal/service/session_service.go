package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"classtrack/internal/cache"
	errs "classtrack/internal/errors"
	"classtrack/internal/idgen"
	"classtrack/internal/model"
	"classtrack/internal/repository"
)

// SessionService manages the attendance-session registry.
type SessionService interface {
	Create(ctx context.Context, caller *model.User, name string) (*model.Session, error)
	ListOwn(ctx context.Context, caller *model.User) ([]model.Session, error)
	ListAll(ctx context.Context, caller *model.User) ([]model.Session, error)
	Delete(ctx context.Context, caller *model.User, id uint) error
	ResolveByCode(ctx context.Context, code string) (*model.Session, error)
	GetByID(ctx context.Context, id uint) (*model.Session, error)
}

type sessionService struct {
	sessions repository.SessionRepository
	codes    cache.SessionCodeCache
}

// NewSessionService creates a session service with a code lookup cache.
func NewSessionService(sessions repository.SessionRepository, codes cache.SessionCodeCache) SessionService {
	return &sessionService{sessions: sessions, codes: codes}
}

// Create registers a new session owned by the calling instructor. The short
// code is allocated before insertion and never regenerated afterwards; the
// unique index on sessions.code arbitrates concurrent draws.
func (s *sessionService) Create(ctx context.Context, caller *model.User, name string) (*model.Session, error) {
	if caller.Role != model.RoleInstructor {
		return nil, errs.ErrInstructorOnly
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrSessionNameRequired
	}

	session := &model.Session{
		Name:         name,
		InstructorID: caller.ExternalID,
	}

	var err error
	for attempt := 0; attempt < idgen.MaxAttempts; attempt++ {
		session.Code = idgen.NumericCode()
		err = s.sessions.Create(ctx, session)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("create session: %w", err)
		}
	}
	return nil, fmt.Errorf("allocate session code: %w", err)
}

// ListOwn returns the caller's sessions.
func (s *sessionService) ListOwn(ctx context.Context, caller *model.User) ([]model.Session, error) {
	if caller.Role != model.RoleInstructor {
		return nil, errs.ErrInstructorOnly
	}
	sessions, err := s.sessions.ListByInstructor(ctx, caller.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// ListAll returns every session. Admin only.
func (s *sessionService) ListAll(ctx context.Context, caller *model.User) ([]model.Session, error) {
	if caller.Role != model.RoleAdmin {
		return nil, errs.ErrAdminOnly
	}
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Delete removes a session and its attendance rows. Admin only. The code
// cache entry is dropped so a reissued code cannot resolve to the dead
// session.
func (s *sessionService) Delete(ctx context.Context, caller *model.User, id uint) error {
	if caller.Role != model.RoleAdmin {
		return errs.ErrAdminOnly
	}
	session, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrSessionNotFound
		}
		return fmt.Errorf("find session: %w", err)
	}
	if err := s.sessions.DeleteCascade(ctx, session); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.codes.Invalidate(ctx, session.Code)
	return nil
}

// ResolveByCode looks a session up by short code, consulting the cache first.
func (s *sessionService) ResolveByCode(ctx context.Context, code string) (*model.Session, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errs.ErrSessionCodeRequired
	}
	if cached := s.codes.GetByCode(ctx, code); cached != nil {
		return cached, nil
	}
	session, err := s.sessions.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session by code: %w", err)
	}
	s.codes.Put(ctx, session)
	return session, nil
}

// GetByID fetches a session by internal id without an access check. Callers
// own the visibility decision.
func (s *sessionService) GetByID(ctx context.Context, id uint) (*model.Session, error) {
	session, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return session, nil
}
