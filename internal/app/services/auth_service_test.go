package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/docstore"
	"github.com/selimd/admitflow/internal/pkg/apperrors"
	"github.com/selimd/admitflow/internal/pkg/auth"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	repos := repositories.NewRepositories(docstore.NewMemoryStore())
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "admitflow-test",
	})
	return NewAuthService(repos.Staff, jwtService)
}

func TestCreateStaffAccountAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	account, err := svc.CreateStaffAccount(ctx, "officer@admitflow.dev", "s3cret-pass", models.RoleOfficer)
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, models.RoleOfficer, account.Role)
	assert.NotEqual(t, "s3cret-pass", account.PasswordHash)

	resp, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "officer@admitflow.dev",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, int64(3600), resp.Token.ExpiresIn)
	assert.Equal(t, "officer@admitflow.dev", resp.Staff.Email)
}

func TestCreateStaffAccountDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.CreateStaffAccount(ctx, "admin@admitflow.dev", "pass-one", models.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.CreateStaffAccount(ctx, "admin@admitflow.dev", "pass-two", models.RoleOfficer)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.CreateStaffAccount(ctx, "officer@admitflow.dev", "correct", models.RoleOfficer)
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{
		Email:    "officer@admitflow.dev",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc := newAuthService(t)

	// Unknown accounts and wrong passwords are indistinguishable to callers.
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@admitflow.dev",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
