package panorama

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

type MockPanoramaRepo struct {
	mock.Mock
}

func (m *MockPanoramaRepo) List(ctx context.Context) ([]models.Panorama, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Panorama), args.Error(1)
}

func (m *MockPanoramaRepo) Get(ctx context.Context, id uuid.UUID) (*models.Panorama, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Panorama), args.Error(1)
}

func (m *MockPanoramaRepo) Create(ctx context.Context, params models.CreatePanoramaParams) (*models.Panorama, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Panorama), args.Error(1)
}

func (m *MockPanoramaRepo) Update(ctx context.Context, id uuid.UUID, params models.CreatePanoramaParams) (*models.Panorama, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Panorama), args.Error(1)
}

func (m *MockPanoramaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateRequiresNameAndImage(t *testing.T) {
	repo := new(MockPanoramaRepo)
	svc := NewService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), models.CreatePanoramaParams{Image: "a.jpg"})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Create(context.Background(), models.CreatePanoramaParams{Name: "Pendopo"})
	assert.ErrorIs(t, err, models.ErrValidation)

	repo.AssertNotCalled(t, "Create")
}

func TestCreatePassesParamsThrough(t *testing.T) {
	repo := new(MockPanoramaRepo)
	svc := NewService(repo, zap.NewNop())

	params := models.CreatePanoramaParams{
		Name:         "Gerbang Utama",
		Description:  "Pintu masuk desa",
		Image:        "1700000000_gerbang-utama.jpg",
		DisplayOrder: 2,
	}
	created := &models.Panorama{ID: uuid.New(), Name: params.Name, Image: params.Image, DisplayOrder: 2}
	repo.On("Create", mock.Anything, params).Return(created, nil)

	got, err := svc.Create(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, created, got)
	repo.AssertExpectations(t)
}

func TestUpdateKeepsStoredImageWhenNoneUploaded(t *testing.T) {
	repo := new(MockPanoramaRepo)
	svc := NewService(repo, zap.NewNop())
	id := uuid.New()

	repo.On("Get", mock.Anything, id).
		Return(&models.Panorama{ID: id, Name: "Lama", Image: "lama.jpg"}, nil)
	repo.On("Update", mock.Anything, id,
		models.CreatePanoramaParams{Name: "Baru", Image: "lama.jpg"}).
		Return(&models.Panorama{ID: id, Name: "Baru", Image: "lama.jpg"}, nil)

	got, err := svc.Update(context.Background(), id, models.CreatePanoramaParams{Name: "Baru"})

	require.NoError(t, err)
	assert.Equal(t, "lama.jpg", got.Image)
	repo.AssertExpectations(t)
}

func TestUpdateUnknownPanorama(t *testing.T) {
	repo := new(MockPanoramaRepo)
	svc := NewService(repo, zap.NewNop())
	id := uuid.New()

	repo.On("Get", mock.Anything, id).Return(nil, models.ErrNotFound)

	_, err := svc.Update(context.Background(), id, models.CreatePanoramaParams{Name: "Baru"})
	assert.ErrorIs(t, err, models.ErrNotFound)
	repo.AssertNotCalled(t, "Update")
}

func TestDeletePropagatesNotFound(t *testing.T) {
	repo := new(MockPanoramaRepo)
	svc := NewService(repo, zap.NewNop())
	id := uuid.New()

	repo.On("Delete", mock.Anything, id).Return(models.ErrNotFound)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
