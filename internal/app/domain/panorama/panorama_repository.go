package panorama

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/models"
)

var _ Repository = (*RepositoryImpl)(nil)

type Repository interface {
	List(ctx context.Context) ([]models.Panorama, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Panorama, error)
	Create(ctx context.Context, params models.CreatePanoramaParams) (*models.Panorama, error)
	Update(ctx context.Context, id uuid.UUID, params models.CreatePanoramaParams) (*models.Panorama, error)
	Delete(ctx context.Context, id uuid.UUID) error
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

// List returns every panorama ordered by display order, the default
// navigation sequence of the tour.
func (r *RepositoryImpl) List(ctx context.Context) ([]models.Panorama, error) {
	query := `
        SELECT id, name, description, image, display_order, created_at, updated_at
        FROM panoramas
        ORDER BY display_order ASC, created_at ASC
    `
	rows, err := r.pgpool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query panoramas: %w", err)
	}
	defer rows.Close()

	var panoramas []models.Panorama
	for rows.Next() {
		var p models.Panorama
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Image,
			&p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan panorama row: %w", err)
		}
		panoramas = append(panoramas, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating panorama rows: %w", err)
	}
	return panoramas, nil
}

func (r *RepositoryImpl) Get(ctx context.Context, id uuid.UUID) (*models.Panorama, error) {
	query := `
        SELECT id, name, description, image, display_order, created_at, updated_at
        FROM panoramas
        WHERE id = $1
    `
	var p models.Panorama
	err := r.pgpool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description,
		&p.Image, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query panorama: %w", err)
	}
	return &p, nil
}

func (r *RepositoryImpl) Create(ctx context.Context, params models.CreatePanoramaParams) (*models.Panorama, error) {
	query := `
        INSERT INTO panoramas (name, description, image, display_order)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, description, image, display_order, created_at, updated_at
    `
	var p models.Panorama
	err := r.pgpool.QueryRow(ctx, query,
		params.Name, params.Description, params.Image, params.DisplayOrder,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Image, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert panorama: %w", err)
	}

	r.logger.Info("Panorama created",
		zap.String("id", p.ID.String()),
		zap.String("name", p.Name))
	return &p, nil
}

func (r *RepositoryImpl) Update(ctx context.Context, id uuid.UUID, params models.CreatePanoramaParams) (*models.Panorama, error) {
	query := `
        UPDATE panoramas
        SET name = $1, description = $2, image = $3, display_order = $4, updated_at = now()
        WHERE id = $5
        RETURNING id, name, description, image, display_order, created_at, updated_at
    `
	var p models.Panorama
	err := r.pgpool.QueryRow(ctx, query,
		params.Name, params.Description, params.Image, params.DisplayOrder, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Image, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update panorama: %w", err)
	}
	return &p, nil
}

// Delete removes exactly one panorama. Dependent points of interest go with
// it through the ON DELETE CASCADE constraint.
func (r *RepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pgpool.Exec(ctx, `DELETE FROM panoramas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete panorama: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	r.logger.Info("Panorama deleted", zap.String("id", id.String()))
	return nil
}
