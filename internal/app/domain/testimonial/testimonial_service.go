package testimonial

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/models"
)

const defaultPageSize = 5

var _ Service = (*ServiceImpl)(nil)

// BoardEntry is one testimonial enriched with its star glyph split.
type BoardEntry struct {
	models.Testimonial
	Stars models.StarDisplay `json:"stars"`
}

// BoardPage is one page of the public testimonial board.
type BoardPage struct {
	Data []BoardEntry `json:"data"`
	models.Page
}

type Service interface {
	List(ctx context.Context, page, limit, rating int) (*BoardPage, error)
	Create(ctx context.Context, params models.CreateTestimonialParams) (*models.Testimonial, error)
	AttachReply(ctx context.Context, id uuid.UUID, reply string) (*models.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceImpl struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *ServiceImpl) List(ctx context.Context, page, limit, rating int) (*BoardPage, error) {
	if limit < 1 {
		limit = defaultPageSize
	}
	if page < 1 {
		page = 1
	}

	testimonials, total, err := s.repo.List(ctx, ListFilter{
		Rating: rating,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]BoardEntry, 0, len(testimonials))
	for _, t := range testimonials {
		entries = append(entries, BoardEntry{
			Testimonial: t,
			Stars:       models.Stars(t.Rating),
		})
	}

	return &BoardPage{
		Data: entries,
		Page: models.NewPage(page, limit, total),
	}, nil
}

// Create validates the submission. Name and comment are required; a missing
// rating defaults to 5.
func (s *ServiceImpl) Create(ctx context.Context, params models.CreateTestimonialParams) (*models.Testimonial, error) {
	if params.Name == "" || params.Comment == "" {
		return nil, fmt.Errorf("%w: name and comment are required", models.ErrValidation)
	}
	if params.Rating == 0 {
		params.Rating = 5
	}
	if params.Rating < 1 || params.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", models.ErrValidation)
	}
	return s.repo.Create(ctx, params)
}

func (s *ServiceImpl) AttachReply(ctx context.Context, id uuid.UUID, reply string) (*models.Testimonial, error) {
	if reply == "" {
		return nil, fmt.Errorf("%w: reply is required", models.ErrValidation)
	}
	return s.repo.AttachReply(ctx, id, reply)
}

func (s *ServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
