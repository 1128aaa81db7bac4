// internal/service/user_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/redline/internal/auth"
	"github.com/dangerclosesec/redline/internal/domain"
	"github.com/dangerclosesec/redline/internal/mocks"
	"github.com/dangerclosesec/redline/internal/model"
	"github.com/dangerclosesec/redline/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUserFixture(t *testing.T) (*mocks.MockUserRepositoryIface, *service.UserService, *auth.PasswordHasher) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockUserRepositoryIface(ctrl)
	hasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager("test-secret", time.Hour)

	return repo, service.NewUserService(repo, hasher, tokenManager), hasher
}

func TestAuthenticate(t *testing.T) {
	repo, svc, hasher := newUserFixture(t)

	hash, err := hasher.Hash("correct_password")
	require.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Email:        "analyst@example.com",
		Name:         "Test Analyst",
		PasswordHash: hash,
	}

	repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

	out, err := svc.Authenticate(context.Background(), service.LoginInput{
		Email:    "analyst@example.com",
		Password: "correct_password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo, svc, hasher := newUserFixture(t)

	hash, err := hasher.Hash("correct_password")
	require.NoError(t, err)

	user := &model.User{ID: uuid.New(), Email: "analyst@example.com", PasswordHash: hash}
	repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

	_, err = svc.Authenticate(context.Background(), service.LoginInput{
		Email:    "analyst@example.com",
		Password: "wrong_password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	repo, svc, _ := newUserFixture(t)

	repo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.ErrUserNotFound)

	// Unknown accounts and wrong passwords are indistinguishable to callers.
	_, err := svc.Authenticate(context.Background(), service.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticateValidatesInput(t *testing.T) {
	_, svc, _ := newUserFixture(t)

	_, err := svc.Authenticate(context.Background(), service.LoginInput{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
