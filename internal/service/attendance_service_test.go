package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	errs "classtrack/internal/errors"
	"classtrack/internal/model"
)

// MockAttendanceRepository is a mock implementation of AttendanceRepository.
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Create(ctx context.Context, record *model.Attendance) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttendanceRepository) FindByID(ctx context.Context, id uint) (*model.Attendance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) FindByStudentAndSession(ctx context.Context, studentID string, sessionID uint) (*model.Attendance, error) {
	args := m.Called(ctx, studentID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) ListBySession(ctx context.Context, sessionID uint) ([]model.Attendance, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) List(ctx context.Context) ([]model.Attendance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attendance), args.Error(1)
}

func (m *MockAttendanceRepository) Delete(ctx context.Context, record *model.Attendance) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockSessionService is a mock implementation of SessionService.
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, caller *model.User, name string) (*model.Session, error) {
	args := m.Called(ctx, caller, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionService) ListOwn(ctx context.Context, caller *model.User) ([]model.Session, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Session), args.Error(1)
}

func (m *MockSessionService) ListAll(ctx context.Context, caller *model.User) ([]model.Session, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Session), args.Error(1)
}

func (m *MockSessionService) Delete(ctx context.Context, caller *model.User, id uint) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

func (m *MockSessionService) ResolveByCode(ctx context.Context, code string) (*model.Session, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionService) GetByID(ctx context.Context, id uint) (*model.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func TestAttendanceService_CheckIn(t *testing.T) {
	session := &model.Session{ID: 5, Code: "12345", InstructorID: instructor.ExternalID}

	t.Run("first check-in creates one record", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		mockSessions.On("ResolveByCode", mock.Anything, "12345").Return(session, nil)
		mockRecords := new(MockAttendanceRepository)
		mockRecords.On("FindByStudentAndSession", mock.Anything, student.ExternalID, uint(5)).
			Return(nil, gorm.ErrRecordNotFound)
		mockRecords.On("Create", mock.Anything, mock.AnythingOfType("*model.Attendance")).Return(nil)

		service := NewAttendanceService(mockRecords, mockSessions)
		record, alreadyMarked, err := service.CheckIn(context.Background(), student, "12345")

		assert.NoError(t, err)
		assert.False(t, alreadyMarked)
		assert.Equal(t, student.ExternalID, record.StudentID)
		assert.Equal(t, uint(5), record.SessionID)
		assert.False(t, record.Timestamp.IsZero())
		mockRecords.AssertExpectations(t)
	})

	t.Run("second check-in is already marked, not an error", func(t *testing.T) {
		existing := &model.Attendance{ID: 9, StudentID: student.ExternalID, SessionID: 5}
		mockSessions := new(MockSessionService)
		mockSessions.On("ResolveByCode", mock.Anything, "12345").Return(session, nil)
		mockRecords := new(MockAttendanceRepository)
		mockRecords.On("FindByStudentAndSession", mock.Anything, student.ExternalID, uint(5)).
			Return(existing, nil)

		service := NewAttendanceService(mockRecords, mockSessions)
		record, alreadyMarked, err := service.CheckIn(context.Background(), student, "12345")

		assert.NoError(t, err)
		assert.True(t, alreadyMarked)
		assert.Equal(t, existing, record)
		mockRecords.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("insert race resolves to already marked", func(t *testing.T) {
		existing := &model.Attendance{ID: 9, StudentID: student.ExternalID, SessionID: 5}
		mockSessions := new(MockSessionService)
		mockSessions.On("ResolveByCode", mock.Anything, "12345").Return(session, nil)
		mockRecords := new(MockAttendanceRepository)
		mockRecords.On("FindByStudentAndSession", mock.Anything, student.ExternalID, uint(5)).
			Return(nil, gorm.ErrRecordNotFound).Once()
		mockRecords.On("Create", mock.Anything, mock.AnythingOfType("*model.Attendance")).
			Return(gorm.ErrDuplicatedKey)
		mockRecords.On("FindByStudentAndSession", mock.Anything, student.ExternalID, uint(5)).
			Return(existing, nil).Once()

		service := NewAttendanceService(mockRecords, mockSessions)
		record, alreadyMarked, err := service.CheckIn(context.Background(), student, "12345")

		assert.NoError(t, err)
		assert.True(t, alreadyMarked)
		assert.Equal(t, existing, record)
	})

	t.Run("only students check in", func(t *testing.T) {
		service := NewAttendanceService(new(MockAttendanceRepository), new(MockSessionService))
		_, _, err := service.CheckIn(context.Background(), instructor, "12345")
		assert.Equal(t, errs.ErrStudentOnly, err)
	})

	t.Run("unknown code propagates not found", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		mockSessions.On("ResolveByCode", mock.Anything, "99999").Return(nil, errs.ErrSessionNotFound)

		service := NewAttendanceService(new(MockAttendanceRepository), mockSessions)
		_, _, err := service.CheckIn(context.Background(), student, "99999")
		assert.Equal(t, errs.ErrSessionNotFound, err)
	})
}

func TestAttendanceService_ViewForSession(t *testing.T) {
	owned := &model.Session{ID: 5, Name: "Lecture 1", InstructorID: instructor.ExternalID}

	t.Run("owner sees records", func(t *testing.T) {
		mockSessions := new(MockSessionService)
		mockSessions.On("GetByID", mock.Anything, uint(5)).Return(owned, nil)
		mockRecords := new(MockAttendanceRepository)
		mockRecords.On("ListBySession", mock.Anything, uint(5)).
			Return([]model.Attendance{{StudentID: student.ExternalID, SessionID: 5}}, nil)

		service := NewAttendanceService(mockRecords, mockSessions)
		session, records, err := service.ViewForSession(context.Background(), instructor, 5)

		assert.NoError(t, err)
		assert.Equal(t, "Lecture 1", session.Name)
		assert.Len(t, records, 1)
	})

	t.Run("another instructor's session reads as not found", func(t *testing.T) {
		other := &model.User{ExternalID: "ins_55555", Role: model.RoleInstructor}
		mockSessions := new(MockSessionService)
		mockSessions.On("GetByID", mock.Anything, uint(5)).Return(owned, nil)

		service := NewAttendanceService(new(MockAttendanceRepository), mockSessions)
		_, _, err := service.ViewForSession(context.Background(), other, 5)
		assert.Equal(t, errs.ErrSessionNotFound, err)
	})

	t.Run("students may not view", func(t *testing.T) {
		service := NewAttendanceService(new(MockAttendanceRepository), new(MockSessionService))
		_, _, err := service.ViewForSession(context.Background(), student, 5)
		assert.Equal(t, errs.ErrInstructorOnly, err)
	})
}

func TestAttendanceService_AdminOps(t *testing.T) {
	t.Run("only admin lists the ledger", func(t *testing.T) {
		mockRecords := new(MockAttendanceRepository)
		mockRecords.On("List", mock.Anything).Return([]model.Attendance{{ID: 1}}, nil)

		service := NewAttendanceService(mockRecords, new(MockSessionService))

		records, err := service.ListAll(context.Background(), admin)
		assert.NoError(t, err)
		assert.Len(t, records, 1)

		_, err = service.ListAll(context.Background(), student)
		assert.Equal(t, errs.ErrAdminOnly, err)
	})

	t.Run("admin deletes one record", func(t *testing.T) {
		record := &model.Attendance{ID: 3}
		mockRecords := new(MockAttendanceRepository)
		mockRecords.On("FindByID", mock.Anything, uint(3)).Return(record, nil)
		mockRecords.On("Delete", mock.Anything, record).Return(nil)

		service := NewAttendanceService(mockRecords, new(MockSessionService))
		assert.NoError(t, service.Delete(context.Background(), admin, 3))
		mockRecords.AssertExpectations(t)
	})

	t.Run("absent record reports not found", func(t *testing.T) {
		mockRecords := new(MockAttendanceRepository)
		mockRecords.On("FindByID", mock.Anything, uint(4)).Return(nil, gorm.ErrRecordNotFound)

		service := NewAttendanceService(mockRecords, new(MockSessionService))
		assert.Equal(t, errs.ErrAttendanceNotFound, service.Delete(context.Background(), admin, 4))
	})
}
