package panorama

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/models"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	List(ctx context.Context) ([]models.Panorama, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Panorama, error)
	Create(ctx context.Context, params models.CreatePanoramaParams) (*models.Panorama, error)
	Update(ctx context.Context, id uuid.UUID, params models.CreatePanoramaParams) (*models.Panorama, error)
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

func (s *ServiceImpl) List(ctx context.Context) ([]models.Panorama, error) {
	return s.repo.List(ctx)
}

func (s *ServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Panorama, error) {
	return s.repo.Get(ctx, id)
}

func (s *ServiceImpl) Create(ctx context.Context, params models.CreatePanoramaParams) (*models.Panorama, error) {
	if err := validate(params, true); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

func (s *ServiceImpl) Update(ctx context.Context, id uuid.UUID, params models.CreatePanoramaParams) (*models.Panorama, error) {
	if err := validate(params, false); err != nil {
		return nil, err
	}

	// Keep the stored image when the update carries none.
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

func validate(params models.CreatePanoramaParams, requireImage bool) error {
	if params.Name == "" {
		return fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if requireImage && params.Image == "" {
		return fmt.Errorf("%w: image is required", models.ErrValidation)
	}
	return nil
}
