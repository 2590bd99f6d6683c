package tradisi

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/models"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	List(ctx context.Context) ([]models.PointOfInterest, error)
	Get(ctx context.Context, id uuid.UUID) (*models.PointOfInterest, error)
	Create(ctx context.Context, params models.CreatePointOfInterestParams) (*models.PointOfInterest, error)
	Update(ctx context.Context, id uuid.UUID, params models.CreatePointOfInterestParams) (*models.PointOfInterest, error)
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

func (s *ServiceImpl) List(ctx context.Context) ([]models.PointOfInterest, error) {
	return s.repo.List(ctx)
}

func (s *ServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.PointOfInterest, error) {
	return s.repo.Get(ctx, id)
}

func (s *ServiceImpl) Create(ctx context.Context, params models.CreatePointOfInterestParams) (*models.PointOfInterest, error) {
	if err := s.validate(ctx, params, true); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

func (s *ServiceImpl) Update(ctx context.Context, id uuid.UUID, params models.CreatePointOfInterestParams) (*models.PointOfInterest, error) {
	if err := s.validate(ctx, params, false); err != nil {
		return nil, err
	}

	if params.Image == "" {
		existing, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		params.Image = existing.Image
	}

	return s.repo.Update(ctx, id, params)
}

func (s *ServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// validate rejects markers without a title, without an image (on create)
// or pointing at a panorama that does not exist. The panorama reference is
// an id, not an image filename, so renaming a panorama image can never
// orphan its markers.
func (s *ServiceImpl) validate(ctx context.Context, params models.CreatePointOfInterestParams, requireImage bool) error {
	if params.Title == "" {
		return fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	if requireImage && params.Image == "" {
		return fmt.Errorf("%w: image is required", models.ErrValidation)
	}
	if params.PanoramaID == uuid.Nil {
		return fmt.Errorf("%w: panorama_id is required", models.ErrValidation)
	}

	exists, err := s.repo.PanoramaExists(ctx, params.PanoramaID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: panorama %s does not exist", models.ErrValidation, params.PanoramaID)
	}
	return nil
}
