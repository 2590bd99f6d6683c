package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/models"
)

var _ Repository = (*RepositoryImpl)(nil)

type Repository interface {
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
}

type RepositoryImpl struct {
	logger *zap.Logger
	pgpool *pgxpool.Pool
}

func NewRepository(pgpool *pgxpool.Pool, logger *zap.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *RepositoryImpl) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `
        SELECT id, username, password_hash, created_at
        FROM admins
        WHERE username = $1
    `
	var admin models.Admin
	err := r.pgpool.QueryRow(ctx, query, username).Scan(
		&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}
	return &admin, nil
}
