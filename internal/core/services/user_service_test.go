package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weberkan/mevatur-backend/internal/apperrors"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/core/services"
	"github.com/weberkan/mevatur-backend/internal/dto"
	"github.com/weberkan/mevatur-backend/internal/utils"
)

type fakeUserRepo struct {
	FindUserByIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	FindUserCredentialsFn func(ctx context.Context, username string) (*domain.User, string, error)
	ListUsersFn          func(ctx context.Context) ([]domain.User, error)
	SaveUserFn           func(ctx context.Context, user domain.User, passwordHash string) error
	SaveFirstUserFn      func(ctx context.Context, user domain.User, passwordHash string) (bool, error)
	UpdateUserFn         func(ctx context.Context, user domain.User) error
	UpdateUserPasswordFn func(ctx context.Context, userID, passwordHash string) error
	MarkUserDeletedFn    func(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

func (f *fakeUserRepo) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return f.FindUserByIDFn(ctx, userID)
}
func (f *fakeUserRepo) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return f.FindUserByUsernameFn(ctx, username)
}
func (f *fakeUserRepo) FindUserCredentials(ctx context.Context, username string) (*domain.User, string, error) {
	return f.FindUserCredentialsFn(ctx, username)
}
func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	return f.ListUsersFn(ctx)
}
func (f *fakeUserRepo) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	return f.SaveUserFn(ctx, user, passwordHash)
}
func (f *fakeUserRepo) SaveFirstUser(ctx context.Context, user domain.User, passwordHash string) (bool, error) {
	return f.SaveFirstUserFn(ctx, user, passwordHash)
}
func (f *fakeUserRepo) UpdateUser(ctx context.Context, user domain.User) error {
	return f.UpdateUserFn(ctx, user)
}
func (f *fakeUserRepo) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	return f.UpdateUserPasswordFn(ctx, userID, passwordHash)
}
func (f *fakeUserRepo) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	return f.MarkUserDeletedFn(ctx, userID, deletedAt, deletedBy)
}

func TestAuthenticateUser_Success(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	repo := &fakeUserRepo{
		FindUserCredentialsFn: func(ctx context.Context, username string) (*domain.User, string, error) {
			return &domain.User{UserID: "u-1", Username: username, Role: "admin", IsActive: true}, hash, nil
		},
	}

	svc := services.NewUserService(repo)
	user, err := svc.AuthenticateUser(context.Background(), "zeynep", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)
	assert.Equal(t, "admin", user.Role)
}

func TestAuthenticateUser_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	repo := &fakeUserRepo{
		FindUserCredentialsFn: func(ctx context.Context, username string) (*domain.User, string, error) {
			return &domain.User{UserID: "u-1", Username: username, IsActive: true}, hash, nil
		},
	}

	svc := services.NewUserService(repo)
	_, err = svc.AuthenticateUser(context.Background(), "zeynep", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthenticateUser_UnknownUsernameLooksLikeWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{
		FindUserCredentialsFn: func(ctx context.Context, username string) (*domain.User, string, error) {
			return nil, "", apperrors.ErrNotFound
		},
	}

	svc := services.NewUserService(repo)
	_, err := svc.AuthenticateUser(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthenticateUser_InactiveUser(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	repo := &fakeUserRepo{
		FindUserCredentialsFn: func(ctx context.Context, username string) (*domain.User, string, error) {
			return &domain.User{UserID: "u-1", Username: username, IsActive: false}, hash, nil
		},
	}

	svc := services.NewUserService(repo)
	_, err = svc.AuthenticateUser(context.Background(), "zeynep", "correct-horse")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	repo := &fakeUserRepo{
		SaveUserFn: func(ctx context.Context, user domain.User, passwordHash string) error {
			return apperrors.ErrDuplicate
		},
	}

	svc := services.NewUserService(repo)
	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "zeynep",
		FullName: "Zeynep Arslan",
		Password: "long-enough-pw",
		Role:     "user",
	}, "admin-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "taken")
}

func TestDeleteUser_RejectsSelfDelete(t *testing.T) {
	svc := services.NewUserService(&fakeUserRepo{})
	err := svc.DeleteUser(context.Background(), "u-1", "u-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestEnsureBootstrapAdmin_SeedsLoginableAdmin(t *testing.T) {
	var saved domain.User
	var savedHash string
	repo := &fakeUserRepo{
		SaveFirstUserFn: func(ctx context.Context, user domain.User, passwordHash string) (bool, error) {
			saved = user
			savedHash = passwordHash
			return true, nil
		},
	}

	svc := services.NewUserService(repo)
	err := svc.EnsureBootstrapAdmin(context.Background(), "admin", "first-login-pw")
	require.NoError(t, err)

	assert.NotEmpty(t, saved.UserID)
	assert.Equal(t, "admin", saved.Username)
	assert.Equal(t, "admin", saved.Role)
	assert.True(t, saved.IsActive)
	assert.Equal(t, "system", saved.CreatedBy)
	assert.True(t, utils.CheckPasswordHash("first-login-pw", savedHash))

	repo.FindUserCredentialsFn = func(ctx context.Context, username string) (*domain.User, string, error) {
		if username != saved.Username {
			return nil, "", apperrors.ErrNotFound
		}
		return &saved, savedHash, nil
	}
	user, err := svc.AuthenticateUser(context.Background(), "admin", "first-login-pw")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)
}

func TestEnsureBootstrapAdmin_NoopWhenUsersExist(t *testing.T) {
	repo := &fakeUserRepo{
		SaveFirstUserFn: func(ctx context.Context, user domain.User, passwordHash string) (bool, error) {
			return false, nil
		},
	}

	svc := services.NewUserService(repo)
	err := svc.EnsureBootstrapAdmin(context.Background(), "admin", "ignored")
	assert.NoError(t, err)
}

func TestEnsureBootstrapAdmin_GeneratesPasswordWhenUnset(t *testing.T) {
	var savedHash string
	repo := &fakeUserRepo{
		SaveFirstUserFn: func(ctx context.Context, user domain.User, passwordHash string) (bool, error) {
			savedHash = passwordHash
			return true, nil
		},
	}

	svc := services.NewUserService(repo)
	err := svc.EnsureBootstrapAdmin(context.Background(), "admin", "")
	require.NoError(t, err)
	assert.NotEmpty(t, savedHash)
	assert.False(t, utils.CheckPasswordHash("", savedHash))
}
