package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	errs "classtrack/internal/errors"
	"classtrack/internal/model"
	"classtrack/internal/repository"
)

// AttendanceService manages the check-in ledger.
type AttendanceService interface {
	// CheckIn records the caller at the session behind code. The boolean is
	// true when the caller was already marked; that outcome is a success, not
	// an error.
	CheckIn(ctx context.Context, caller *model.User, code string) (*model.Attendance, bool, error)
	ViewForSession(ctx context.Context, caller *model.User, sessionID uint) (*model.Session, []model.Attendance, error)
	ListAll(ctx context.Context, caller *model.User) ([]model.Attendance, error)
	Delete(ctx context.Context, caller *model.User, id uint) error
}

type attendanceService struct {
	records  repository.AttendanceRepository
	sessions SessionService
}

// NewAttendanceService creates an attendance service.
func NewAttendanceService(records repository.AttendanceRepository, sessions SessionService) AttendanceService {
	return &attendanceService{records: records, sessions: sessions}
}

// CheckIn is idempotent per (student, session). The pre-check answers the
// common repeat-scan case; the unique index answers the race where two scans
// of the same student insert concurrently.
func (s *attendanceService) CheckIn(ctx context.Context, caller *model.User, code string) (*model.Attendance, bool, error) {
	if caller.Role != model.RoleStudent {
		return nil, false, errs.ErrStudentOnly
	}

	session, err := s.sessions.ResolveByCode(ctx, code)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.records.FindByStudentAndSession(ctx, caller.ExternalID, session.ID)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("check existing attendance: %w", err)
	}

	record := &model.Attendance{
		StudentID: caller.ExternalID,
		SessionID: session.ID,
		Timestamp: time.Now().UTC(),
	}
	if err := s.records.Create(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, err := s.records.FindByStudentAndSession(ctx, caller.ExternalID, session.ID)
			if err != nil {
				return nil, false, fmt.Errorf("load concurrent attendance: %w", err)
			}
			return existing, true, nil
		}
		return nil, false, fmt.Errorf("create attendance: %w", err)
	}
	return record, false, nil
}

// ViewForSession returns the records of a session the caller owns. A session
// owned by someone else reads as not found.
func (s *attendanceService) ViewForSession(ctx context.Context, caller *model.User, sessionID uint) (*model.Session, []model.Attendance, error) {
	if caller.Role != model.RoleInstructor {
		return nil, nil, errs.ErrInstructorOnly
	}
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.InstructorID != caller.ExternalID {
		return nil, nil, errs.ErrSessionNotFound
	}
	records, err := s.records.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list attendance: %w", err)
	}
	return session, records, nil
}

// ListAll returns the full ledger. Admin only.
func (s *attendanceService) ListAll(ctx context.Context, caller *model.User) ([]model.Attendance, error) {
	if caller.Role != model.RoleAdmin {
		return nil, errs.ErrAdminOnly
	}
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

// Delete removes one attendance record. Admin only.
func (s *attendanceService) Delete(ctx context.Context, caller *model.User, id uint) error {
	if caller.Role != model.RoleAdmin {
		return errs.ErrAdminOnly
	}
	record, err := s.records.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrAttendanceNotFound
		}
		return fmt.Errorf("find attendance: %w", err)
	}
	if err := s.records.Delete(ctx, record); err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	return nil
}
