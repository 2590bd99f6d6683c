package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/models"
)

type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func testAdmin(t *testing.T, password string) *models.Admin {
	t.Helper()
	hash, err := NewJWTService().HashPassword(password)
	require.NoError(t, err)
	return &models.Admin{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: hash,
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := new(MockAuthRepo)
	admin := testAdmin(t, "rahasia")
	repo.On("GetAdminByUsername", mock.Anything, "admin").Return(admin, nil)

	svc := NewService(repo, "test-secret", zap.NewNop())
	token, err := svc.Login(context.Background(), "admin", "rahasia")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := NewJWTService().ValidateToken(JWTConfig{SecretKey: "test-secret"}, token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.AdminID)
	assert.Equal(t, "admin", claims.Username)

	// Fixed short expiry: one hour.
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 60)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(MockAuthRepo)
	repo.On("GetAdminByUsername", mock.Anything, "admin").Return(testAdmin(t, "rahasia"), nil)

	svc := NewService(repo, "test-secret", zap.NewNop())
	_, err := svc.Login(context.Background(), "admin", "salah")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestLoginUnknownAdmin(t *testing.T) {
	repo := new(MockAuthRepo)
	repo.On("GetAdminByUsername", mock.Anything, "ghost").Return(nil, models.ErrNotFound)

	svc := NewService(repo, "test-secret", zap.NewNop())
	_, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewService(new(MockAuthRepo), "test-secret", zap.NewNop())
	_, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	jwtSvc := NewJWTService()
	token, err := jwtSvc.GenerateToken(JWTConfig{
		SecretKey:       "secret-a",
		TokenExpiration: time.Hour,
	}, uuid.NewString(), "admin")
	require.NoError(t, err)

	_, err = jwtSvc.ValidateToken(JWTConfig{SecretKey: "secret-b"}, token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	jwtSvc := NewJWTService()
	token, err := jwtSvc.GenerateToken(JWTConfig{
		SecretKey:       "secret",
		TokenExpiration: -time.Minute,
	}, uuid.NewString(), "admin")
	require.NoError(t, err)

	_, err = jwtSvc.ValidateToken(JWTConfig{SecretKey: "secret"}, token)
	assert.Error(t, err)
}
