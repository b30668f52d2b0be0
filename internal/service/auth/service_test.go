package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/auth"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/user"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/jwt"
)

type fakeUserRepository struct {
	user.UserRepository
	getByEmailFn func(ctx context.Context, email string) (user.User, error)
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return f.getByEmailFn(ctx, email)
}

func adminUser(t *testing.T, password string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return user.User{
		ID:           "u1",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := &fakeUserRepository{
		getByEmailFn: func(ctx context.Context, email string) (user.User, error) {
			assert.Equal(t, "admin@example.com", email)
			return adminUser(t, "correct horse"), nil
		},
	}

	svc := NewAuthService(repo, jwt.NewJWTService("test-secret", "1h"))
	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &fakeUserRepository{
		getByEmailFn: func(ctx context.Context, email string) (user.User, error) {
			return adminUser(t, "correct horse"), nil
		},
	}

	svc := NewAuthService(repo, jwt.NewJWTService("test-secret", "1h"))
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "battery staple",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	repo := &fakeUserRepository{
		getByEmailFn: func(ctx context.Context, email string) (user.User, error) {
			return user.User{}, user.ErrUserNotFound
		},
	}

	svc := NewAuthService(repo, jwt.NewJWTService("test-secret", "1h"))
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := NewAuthService(&fakeUserRepository{}, jwt.NewJWTService("test-secret", "1h"))
	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}
