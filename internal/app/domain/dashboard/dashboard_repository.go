package dashboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/models"
)

var _ Repository = (*RepositoryImpl)(nil)

type Repository interface {
	CountPanoramas(ctx context.Context) (int, error)
	CountPointsOfInterest(ctx context.Context) (int, error)
	CountTestimonials(ctx context.Context) (int, error)
	RatingHistogram(ctx context.Context) ([]models.RatingBucket, error)
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

func (r *RepositoryImpl) count(ctx context.Context, table string) (int, error) {
	var total int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)
	if err := r.pgpool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return total, nil
}

func (r *RepositoryImpl) CountPanoramas(ctx context.Context) (int, error) {
	return r.count(ctx, "panoramas")
}

func (r *RepositoryImpl) CountPointsOfInterest(ctx context.Context) (int, error) {
	return r.count(ctx, "points_of_interest")
}

func (r *RepositoryImpl) CountTestimonials(ctx context.Context) (int, error) {
	return r.count(ctx, "testimonials")
}

// RatingHistogram returns a bucket for every rating 1..5, highest first,
// including zero-count buckets so the chart axis is stable.
func (r *RepositoryImpl) RatingHistogram(ctx context.Context) ([]models.RatingBucket, error) {
	query := `
        SELECT r.rating, COUNT(t.id)
        FROM generate_series(1, 5) AS r(rating)
        LEFT JOIN testimonials t ON t.rating = r.rating
        GROUP BY r.rating
        ORDER BY r.rating DESC
    `
	rows, err := r.pgpool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rating histogram: %w", err)
	}
	defer rows.Close()

	var buckets []models.RatingBucket
	for rows.Next() {
		var b models.RatingBucket
		if err := rows.Scan(&b.Rating, &b.Count); err != nil {
			return nil, fmt.Errorf("failed to scan rating bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rating buckets: %w", err)
	}
	return buckets, nil
}
