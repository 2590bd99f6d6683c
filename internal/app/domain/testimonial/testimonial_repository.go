package testimonial

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/models"
)

var _ Repository = (*RepositoryImpl)(nil)

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]models.Testimonial, int, error)
	Create(ctx context.Context, params models.CreateTestimonialParams) (*models.Testimonial, error)
	AttachReply(ctx context.Context, id uuid.UUID, reply string) (*models.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Recent(ctx context.Context, limit int) ([]models.Testimonial, error)
}

// ListFilter narrows and pages the testimonial board.
type ListFilter struct {
	Rating int // 0 means all ratings
	Limit  int
	Offset int
}

// Querier is the slice of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ Querier = (*pgxpool.Pool)(nil)

type RepositoryImpl struct {
	logger *zap.Logger
	pgpool Querier
}

func NewRepository(pgpool Querier, logger *zap.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		pgpool: pgpool,
	}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// List returns one page of testimonials, newest first, together with the
// total count so the client can disable "next" on the last page.
func (r *RepositoryImpl) List(ctx context.Context, filter ListFilter) ([]models.Testimonial, int, error) {
	base := psql.Select("id", "name", "comment", "rating", "admin_reply", "created_at").
		From("testimonials").
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))
	countQ := psql.Select("COUNT(*)").From("testimonials")

	if filter.Rating > 0 {
		base = base.Where(sq.Eq{"rating": filter.Rating})
		countQ = countQ.Where(sq.Eq{"rating": filter.Rating})
	}

	query, args, err := base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build testimonial query: %w", err)
	}

	rows, err := r.pgpool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Comment, &t.Rating, &t.AdminReply, &t.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan testimonial row: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating testimonial rows: %w", err)
	}

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int
	if err := r.pgpool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count testimonials: %w", err)
	}

	return testimonials, total, nil
}

func (r *RepositoryImpl) Create(ctx context.Context, params models.CreateTestimonialParams) (*models.Testimonial, error) {
	query := `
        INSERT INTO testimonials (name, comment, rating)
        VALUES ($1, $2, $3)
        RETURNING id, name, comment, rating, admin_reply, created_at
    `
	var t models.Testimonial
	err := r.pgpool.QueryRow(ctx, query, params.Name, params.Comment, params.Rating).
		Scan(&t.ID, &t.Name, &t.Comment, &t.Rating, &t.AdminReply, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert testimonial: %w", err)
	}

	r.logger.Info("Testimonial created",
		zap.String("id", t.ID.String()),
		zap.Int("rating", t.Rating))
	return &t, nil
}

// AttachReply sets the one admin reply on a testimonial. Visitor-authored
// fields are never touched here.
func (r *RepositoryImpl) AttachReply(ctx context.Context, id uuid.UUID, reply string) (*models.Testimonial, error) {
	query := `
        UPDATE testimonials
        SET admin_reply = $1
        WHERE id = $2
        RETURNING id, name, comment, rating, admin_reply, created_at
    `
	var t models.Testimonial
	err := r.pgpool.QueryRow(ctx, query, reply, id).
		Scan(&t.ID, &t.Name, &t.Comment, &t.Rating, &t.AdminReply, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to attach admin reply: %w", err)
	}
	return &t, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pgpool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	r.logger.Info("Testimonial deleted", zap.String("id", id.String()))
	return nil
}

func (r *RepositoryImpl) Recent(ctx context.Context, limit int) ([]models.Testimonial, error) {
	query := `
        SELECT id, name, comment, rating, admin_reply, created_at
        FROM testimonials
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.pgpool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Comment, &t.Rating, &t.AdminReply, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial row: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating testimonial rows: %w", err)
	}
	return testimonials, nil
}
