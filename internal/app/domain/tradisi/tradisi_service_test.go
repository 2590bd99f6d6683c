package tradisi

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/models"
)

type MockTradisiRepo struct {
	mock.Mock
}

func (m *MockTradisiRepo) List(ctx context.Context) ([]models.PointOfInterest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PointOfInterest), args.Error(1)
}

func (m *MockTradisiRepo) Get(ctx context.Context, id uuid.UUID) (*models.PointOfInterest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PointOfInterest), args.Error(1)
}

func (m *MockTradisiRepo) Create(ctx context.Context, params models.CreatePointOfInterestParams) (*models.PointOfInterest, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PointOfInterest), args.Error(1)
}

func (m *MockTradisiRepo) Update(ctx context.Context, id uuid.UUID, params models.CreatePointOfInterestParams) (*models.PointOfInterest, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PointOfInterest), args.Error(1)
}

func (m *MockTradisiRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTradisiRepo) PanoramaExists(ctx context.Context, panoramaID uuid.UUID) (bool, error) {
	args := m.Called(ctx, panoramaID)
	return args.Bool(0), args.Error(1)
}

func validParams(panoramaID uuid.UUID) models.CreatePointOfInterestParams {
	return models.CreatePointOfInterestParams{
		Title:       "Upacara Adat",
		Description: "Upacara tahunan desa",
		Image:       "upacara.jpg",
		PanoramaID:  panoramaID,
		PositionX:   800,
		PositionY:   -120,
		PositionZ:   3000,
	}
}

func TestCreateReflectsSubmittedFields(t *testing.T) {
	repo := new(MockTradisiRepo)
	panoID := uuid.New()
	params := validParams(panoID)

	repo.On("PanoramaExists", mock.Anything, panoID).Return(true, nil)
	repo.On("Create", mock.Anything, params).Return(&models.PointOfInterest{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		Image:       params.Image,
		PanoramaID:  params.PanoramaID,
		PositionX:   params.PositionX,
		PositionY:   params.PositionY,
		PositionZ:   params.PositionZ,
	}, nil)

	svc := NewService(repo, zap.NewNop())
	created, err := svc.Create(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, params.Title, created.Title)
	assert.Equal(t, params.PanoramaID, created.PanoramaID)
	assert.Equal(t, params.PositionX, created.PositionX)
	repo.AssertExpectations(t)
}

func TestCreateRejectsUnknownPanorama(t *testing.T) {
	repo := new(MockTradisiRepo)
	panoID := uuid.New()
	repo.On("PanoramaExists", mock.Anything, panoID).Return(false, nil)

	svc := NewService(repo, zap.NewNop())
	_, err := svc.Create(context.Background(), validParams(panoID))
	assert.ErrorIs(t, err, models.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRequiresTitleAndImage(t *testing.T) {
	svc := NewService(new(MockTradisiRepo), zap.NewNop())

	params := validParams(uuid.New())
	params.Title = ""
	_, err := svc.Create(context.Background(), params)
	assert.ErrorIs(t, err, models.ErrValidation)

	params = validParams(uuid.New())
	params.Image = ""
	_, err = svc.Create(context.Background(), params)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdateKeepsStoredImageWhenAbsent(t *testing.T) {
	repo := new(MockTradisiRepo)
	panoID := uuid.New()
	id := uuid.New()

	params := validParams(panoID)
	params.Image = ""

	repo.On("PanoramaExists", mock.Anything, panoID).Return(true, nil)
	repo.On("Get", mock.Anything, id).Return(&models.PointOfInterest{
		ID:    id,
		Image: "lama.jpg",
	}, nil)

	expected := params
	expected.Image = "lama.jpg"
	repo.On("Update", mock.Anything, id, expected).Return(&models.PointOfInterest{
		ID:    id,
		Image: "lama.jpg",
	}, nil)

	svc := NewService(repo, zap.NewNop())
	updated, err := svc.Update(context.Background(), id, params)
	require.NoError(t, err)
	assert.Equal(t, "lama.jpg", updated.Image)
	repo.AssertExpectations(t)
}

func TestDeleteNotFoundPropagates(t *testing.T) {
	repo := new(MockTradisiRepo)
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(models.ErrNotFound)

	svc := NewService(repo, zap.NewNop())
	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
