package tradisi

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
	List(ctx context.Context) ([]models.PointOfInterest, error)
	Get(ctx context.Context, id uuid.UUID) (*models.PointOfInterest, error)
	Create(ctx context.Context, params models.CreatePointOfInterestParams) (*models.PointOfInterest, error)
	Update(ctx context.Context, id uuid.UUID, params models.CreatePointOfInterestParams) (*models.PointOfInterest, error)
	Delete(ctx context.Context, id uuid.UUID) error
	PanoramaExists(ctx context.Context, panoramaID uuid.UUID) (bool, error)
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

const tradisiColumns = `id, title, description, image, panorama_id, position_x, position_y, position_z, created_at`

func scanTradisi(row pgx.Row, t *models.PointOfInterest) error {
	return row.Scan(&t.ID, &t.Title, &t.Description, &t.Image, &t.PanoramaID,
		&t.PositionX, &t.PositionY, &t.PositionZ, &t.CreatedAt)
}

// List returns every point of interest, newest first.
func (r *RepositoryImpl) List(ctx context.Context) ([]models.PointOfInterest, error) {
	query := `SELECT ` + tradisiColumns + ` FROM points_of_interest ORDER BY created_at DESC`
	rows, err := r.pgpool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query points of interest: %w", err)
	}
	defer rows.Close()

	var pois []models.PointOfInterest
	for rows.Next() {
		var t models.PointOfInterest
		if err := scanTradisi(rows, &t); err != nil {
			return nil, fmt.Errorf("failed to scan point of interest row: %w", err)
		}
		pois = append(pois, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating point of interest rows: %w", err)
	}
	return pois, nil
}

func (r *RepositoryImpl) Get(ctx context.Context, id uuid.UUID) (*models.PointOfInterest, error) {
	query := `SELECT ` + tradisiColumns + ` FROM points_of_interest WHERE id = $1`
	var t models.PointOfInterest
	if err := scanTradisi(r.pgpool.QueryRow(ctx, query, id), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query point of interest: %w", err)
	}
	return &t, nil
}

func (r *RepositoryImpl) Create(ctx context.Context, params models.CreatePointOfInterestParams) (*models.PointOfInterest, error) {
	query := `
        INSERT INTO points_of_interest (title, description, image, panorama_id, position_x, position_y, position_z)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + tradisiColumns
	var t models.PointOfInterest
	err := scanTradisi(r.pgpool.QueryRow(ctx, query,
		params.Title, params.Description, params.Image, params.PanoramaID,
		params.PositionX, params.PositionY, params.PositionZ,
	), &t)
	if err != nil {
		return nil, fmt.Errorf("failed to insert point of interest: %w", err)
	}

	r.logger.Info("Point of interest created",
		zap.String("id", t.ID.String()),
		zap.String("title", t.Title),
		zap.String("panorama_id", t.PanoramaID.String()))
	return &t, nil
}

func (r *RepositoryImpl) Update(ctx context.Context, id uuid.UUID, params models.CreatePointOfInterestParams) (*models.PointOfInterest, error) {
	query := `
        UPDATE points_of_interest
        SET title = $1, description = $2, image = $3, panorama_id = $4,
            position_x = $5, position_y = $6, position_z = $7
        WHERE id = $8
        RETURNING ` + tradisiColumns
	var t models.PointOfInterest
	err := scanTradisi(r.pgpool.QueryRow(ctx, query,
		params.Title, params.Description, params.Image, params.PanoramaID,
		params.PositionX, params.PositionY, params.PositionZ, id,
	), &t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update point of interest: %w", err)
	}
	return &t, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pgpool.Exec(ctx, `DELETE FROM points_of_interest WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete point of interest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	r.logger.Info("Point of interest deleted", zap.String("id", id.String()))
	return nil
}

func (r *RepositoryImpl) PanoramaExists(ctx context.Context, panoramaID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM panoramas WHERE id = $1)`
	if err := r.pgpool.QueryRow(ctx, query, panoramaID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to query panoramas: %w", err)
	}
	return exists, nil
}
