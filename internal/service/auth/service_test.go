package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/carelog/clinic-api/internal/model"
	"github.com/carelog/clinic-api/internal/repository"
	"github.com/carelog/clinic-api/internal/session"
	"github.com/carelog/clinic-api/pkg/apperror"
	"github.com/carelog/clinic-api/pkg/security"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
	byID    map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*model.User),
		byID:    make(map[uuid.UUID]*model.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return repository.ErrDuplicate
	}
	copied := *user
	r.byEmail[user.Email] = &copied
	r.byID[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func newTestService() (*Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	sessions := session.NewMemoryStore(session.Config{TTL: time.Minute})
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	return NewService(repo, sessions, hasher), repo
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &model.RegisterRequest{
		Email:    "alice@clinic.test",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@clinic.test", user.Email)

	stored := repo.byEmail["alice@clinic.test"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegisterDuplicateCredential(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{Email: "bob@clinic.test", Password: "secret123"})
	require.NoError(t, err)
	firstHash := repo.byEmail["bob@clinic.test"].PasswordHash

	_, err = svc.Register(ctx, &model.RegisterRequest{Email: "bob@clinic.test", Password: "another-pw"})
	assert.True(t, apperror.IsCode(err, apperror.CodeDuplicateCredential))

	// The original user's stored hash must be unchanged.
	assert.Equal(t, firstHash, repo.byEmail["bob@clinic.test"].PasswordHash)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{Email: "carol@clinic.test", Password: "secret123"})
	require.NoError(t, err)

	sessionID, user, err := svc.Login(ctx, "carol@clinic.test", "wrong-password")
	assert.True(t, apperror.IsCode(err, apperror.CodeInvalidCredentials))
	assert.Empty(t, sessionID)
	assert.Nil(t, user)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.Login(context.Background(), "nobody@clinic.test", "whatever")
	assert.True(t, apperror.IsCode(err, apperror.CodeInvalidCredentials))
}

func TestLoginEstablishesSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &model.RegisterRequest{Email: "dave@clinic.test", Password: "secret123"})
	require.NoError(t, err)

	sessionID, user, err := svc.Login(ctx, "dave@clinic.test", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, registered.ID, user.ID)

	resolved, err := svc.ResolveSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resolved)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{Email: "erin@clinic.test", Password: "secret123"})
	require.NoError(t, err)

	sessionID, _, err := svc.Login(ctx, "erin@clinic.test", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sessionID))
	require.NoError(t, svc.Logout(ctx, sessionID))
	require.NoError(t, svc.Logout(ctx, ""))

	_, err = svc.ResolveSession(ctx, sessionID)
	assert.True(t, apperror.IsCode(err, apperror.CodeUnauthenticated))
}

func TestResolveSessionWithoutCookie(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ResolveSession(context.Background(), "")
	assert.True(t, apperror.IsCode(err, apperror.CodeUnauthenticated))
}
