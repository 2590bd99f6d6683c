package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/models"
)

// Admin session tokens expire after one hour.
const tokenExpiration = time.Hour

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type ServiceImpl struct {
	repo   Repository
	jwt    *JWTService
	secret string
	logger *zap.Logger
}

func NewService(repo Repository, secret string, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:   repo,
		jwt:    NewJWTService(),
		secret: secret,
		logger: logger,
	}
}

// Login checks the credential against the stored bcrypt hash and mints a
// signed session token. Unknown usernames and bad passwords are not
// distinguished in the returned error.
func (s *ServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", models.ErrValidation
	}

	admin, err := s.repo.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown admin", zap.String("username", username))
			return "", models.ErrUnauthenticated
		}
		return "", err
	}

	if !s.jwt.CheckPassword(admin.PasswordHash, password) {
		s.logger.Warn("Invalid admin password", zap.String("username", username))
		return "", models.ErrUnauthenticated
	}

	token, err := s.jwt.GenerateToken(JWTConfig{
		SecretKey:       s.secret,
		TokenExpiration: tokenExpiration,
		Logger:          s.logger,
	}, admin.ID.String(), admin.Username)
	if err != nil {
		return "", err
	}

	s.logger.Info("Admin logged in", zap.String("username", admin.Username))
	return token, nil
}
