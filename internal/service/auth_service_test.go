package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	config "github.com/socialdeck/management-api/configs"
	"github.com/socialdeck/management-api/internal/apperr"
	"github.com/socialdeck/management-api/internal/transfer"
	"github.com/socialdeck/management-api/pkg/utils"
)

func authTestConfig() config.Config {
	return config.Config{
		SecretKey:   "service-test-secret",
		JWTIssuer:   "socialdeck",
		JWTAudience: "socialdeck-frontend",
		TokenTTL:    7 * 24 * time.Hour,
	}
}

func newAuthService() (AuthService, *fakeUserRepo) {
	users := &fakeUserRepo{}
	return NewAuthService(authTestConfig(), users), users
}

func registerRequest(email string) *transfer.RegisterRequest {
	name := "Alice"
	return &transfer.RegisterRequest{
		Email:       email,
		Password:    "correct horse",
		DisplayName: &name,
	}
}

func TestRegisterIssuesSession(t *testing.T) {
	svc, users := newAuthService()

	session, err := svc.Register(context.Background(), registerRequest("alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", session.Email)
	require.NotNil(t, session.DisplayName)
	assert.Equal(t, "Alice", *session.DisplayName)
	assert.NotEqual(t, uuid.Nil, session.UserID)

	claims, err := utils.ValidateToken(authTestConfig(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID.String(), claims.Subject)

	// The stored hash must not be the plaintext.
	require.Len(t, users.users, 1)
	assert.NotEqual(t, "correct horse", users.users[0].PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users := newAuthService()

	first, err := svc.Register(context.Background(), registerRequest("alice@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest("alice@example.com"))
	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)

	// The first account is unaffected and can still log in.
	require.Len(t, users.users, 1)
	session, err := svc.Login(context.Background(), &transfer.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, first.UserID, session.UserID)
}

func TestLoginUniformFailure(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(context.Background(), registerRequest("alice@example.com"))
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), &transfer.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	_, unknownEmail := svc.Login(context.Background(), &transfer.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	})

	// Wrong password and unknown email are indistinguishable.
	assert.ErrorIs(t, wrongPassword, apperr.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperr.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestGetByID(t *testing.T) {
	svc, _ := newAuthService()

	session, err := svc.Register(context.Background(), registerRequest("alice@example.com"))
	require.NoError(t, err)

	info, err := svc.GetByID(context.Background(), session.UserID)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, info.ID)
	assert.Equal(t, "alice@example.com", info.Email)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
