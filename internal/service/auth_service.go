package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"classtrack/internal/auth"
	errs "classtrack/internal/errors"
	"classtrack/internal/idgen"
	"classtrack/internal/model"
	"classtrack/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login and caller resolution.
type AuthService interface {
	Register(ctx context.Context, username, email, password, role string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	ResolveCaller(ctx context.Context, subject string) (*model.User, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password and a role-prefixed
// external id. The role is parsed case-insensitively; username and email must
// be unused.
func (s *authService) Register(ctx context.Context, username, email, password, role string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" || strings.TrimSpace(role) == "" {
		return nil, errs.ErrFieldsRequired
	}

	parsedRole, ok := model.ParseRole(role)
	if !ok {
		return nil, errs.ErrInvalidRole
	}

	if err := s.checkUnused(ctx, username, email); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         parsedRole,
	}

	// The external id is drawn from a small numeric space, so collisions with
	// live users are possible. The unique index is the arbiter; redraw on
	// conflict.
	for attempt := 0; attempt < idgen.MaxAttempts; attempt++ {
		user.ExternalID = idgen.ExternalID(parsedRole.Prefix())
		err = s.users.Create(ctx, user)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("create user: %w", err)
		}
	}
	// A duplicate key after every redraw means a concurrent registration won
	// the username or email, not id-space exhaustion.
	return nil, errs.ErrDuplicateUser
}

func (s *authService) checkUnused(ctx context.Context, username, email string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return errs.ErrDuplicateUser
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check email: %w", err)
	}
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return errs.ErrDuplicateUser
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check username: %w", err)
	}
	return nil
}

// Login authenticates by email and password and issues a one-hour access
// token. Unknown email and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, errs.ErrFieldsRequired
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(user.ExternalID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate access token: %w", err)
	}

	return token, user, nil
}

// ResolveCaller loads the user behind a verified token subject. Token
// validity is the middleware's job; a missing user here means the account was
// deleted after the token was issued.
func (s *authService) ResolveCaller(ctx context.Context, subject string) (*model.User, error) {
	if subject == "" {
		return nil, errs.ErrInvalidToken
	}
	user, err := s.users.FindByExternalID(ctx, subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve caller: %w", err)
	}
	return user, nil
}
