package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/carelog/clinic-api/internal/model"
	"github.com/carelog/clinic-api/internal/repository"
	"github.com/carelog/clinic-api/internal/session"
	"github.com/carelog/clinic-api/pkg/apperror"
	"github.com/carelog/clinic-api/pkg/security"
)

// AuthService is the contract the handlers and middleware depend on.
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	Logout(ctx context.Context, sessionID string) error
	ResolveSession(ctx context.Context, sessionID string) (uuid.UUID, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type Service struct {
	users    repository.UserRepository
	sessions session.Store
	hasher   security.PasswordHasher
}

func NewService(users repository.UserRepository, sessions session.Store, hasher security.PasswordHasher) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
	}
}

// Register creates a new staff user. The raw password is never stored,
// only its bcrypt hash.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.DuplicateCredential(nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperror.Validation(apperror.FieldError{
			Field:   "password",
			Message: err.Error(),
		})
	}

	user := &model.User{
		Base:         model.Base{ID: uuid.New()},
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.DuplicateCredential(err)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to create user: %w", err))
	}

	return user, nil
}

// Login verifies the credentials and establishes a session. The error
// never distinguishes an unknown email from a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, apperror.InvalidCredentials(err)
		}
		return "", nil, apperror.Internal(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", nil, apperror.InvalidCredentials(err)
	}

	sessionID, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", nil, apperror.Internal(fmt.Errorf("failed to create session: %w", err))
	}

	return sessionID, user, nil
}

// Logout invalidates the session. Idempotent.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ResolveSession maps a session cookie value to the authenticated user.
func (s *Service) ResolveSession(ctx context.Context, sessionID string) (uuid.UUID, error) {
	if sessionID == "" {
		return uuid.Nil, apperror.Unauthenticated()
	}

	userID, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return uuid.Nil, apperror.Unauthenticated()
		}
		return uuid.Nil, apperror.Internal(err)
	}

	return userID, nil
}

func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.Unauthenticated()
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
