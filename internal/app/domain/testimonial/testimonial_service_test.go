package testimonial

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

type MockTestimonialRepo struct {
	mock.Mock
}

func (m *MockTestimonialRepo) List(ctx context.Context, filter ListFilter) ([]models.Testimonial, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Testimonial), args.Int(1), args.Error(2)
}

func (m *MockTestimonialRepo) Create(ctx context.Context, params models.CreateTestimonialParams) (*models.Testimonial, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepo) AttachReply(ctx context.Context, id uuid.UUID, reply string) (*models.Testimonial, error) {
	args := m.Called(ctx, id, reply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTestimonialRepo) Recent(ctx context.Context, limit int) ([]models.Testimonial, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Testimonial), args.Error(1)
}

func TestSubmitTestimonialAppearsWithStars(t *testing.T) {
	repo := new(MockTestimonialRepo)
	params := models.CreateTestimonialParams{Name: "Ani", Comment: "Bagus!", Rating: 4}

	created := &models.Testimonial{
		ID:      uuid.New(),
		Name:    "Ani",
		Comment: "Bagus!",
		Rating:  4,
	}
	repo.On("Create", mock.Anything, params).Return(created, nil)
	repo.On("List", mock.Anything, ListFilter{Limit: 5, Offset: 0}).
		Return([]models.Testimonial{*created}, 1, nil)

	svc := NewService(repo, zap.NewNop())

	got, err := svc.Create(context.Background(), params)
	require.NoError(t, err)
	assert.Nil(t, got.AdminReply)

	board, err := svc.List(context.Background(), 1, 5, 0)
	require.NoError(t, err)
	require.Len(t, board.Data, 1)

	top := board.Data[0]
	assert.Equal(t, "Ani", top.Name)
	assert.Equal(t, models.StarDisplay{Filled: 4, Empty: 1}, top.Stars)
	assert.Nil(t, top.AdminReply)
}

func TestCreateDefaultsRatingToFive(t *testing.T) {
	repo := new(MockTestimonialRepo)
	expected := models.CreateTestimonialParams{Name: "Budi", Comment: "Mantap", Rating: 5}
	repo.On("Create", mock.Anything, expected).Return(&models.Testimonial{Rating: 5}, nil)

	svc := NewService(repo, zap.NewNop())
	created, err := svc.Create(context.Background(), models.CreateTestimonialParams{Name: "Budi", Comment: "Mantap"})
	require.NoError(t, err)
	assert.Equal(t, 5, created.Rating)
	repo.AssertExpectations(t)
}

func TestCreateRequiresNameAndComment(t *testing.T) {
	svc := NewService(new(MockTestimonialRepo), zap.NewNop())

	_, err := svc.Create(context.Background(), models.CreateTestimonialParams{Comment: "tanpa nama"})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Create(context.Background(), models.CreateTestimonialParams{Name: "tanpa komentar"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateRejectsOutOfRangeRating(t *testing.T) {
	svc := NewService(new(MockTestimonialRepo), zap.NewNop())
	_, err := svc.Create(context.Background(), models.CreateTestimonialParams{Name: "A", Comment: "B", Rating: 6})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestAttachReplyVisibleOnRead(t *testing.T) {
	repo := new(MockTestimonialRepo)
	id := uuid.New()
	reply := "Terima kasih"

	repo.On("AttachReply", mock.Anything, id, reply).Return(&models.Testimonial{
		ID:         id,
		Name:       "Ani",
		AdminReply: &reply,
	}, nil)

	svc := NewService(repo, zap.NewNop())
	updated, err := svc.AttachReply(context.Background(), id, reply)
	require.NoError(t, err)
	require.NotNil(t, updated.AdminReply)
	assert.Equal(t, "Terima kasih", *updated.AdminReply)
}

func TestAttachEmptyReplyRejected(t *testing.T) {
	svc := NewService(new(MockTestimonialRepo), zap.NewNop())
	_, err := svc.AttachReply(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestListPaginationBoundaries(t *testing.T) {
	// 12 records at page size 5: pages hold 5, 5, 2 and only the last page
	// reports no next.
	cases := []struct {
		page     int
		returned int
		hasNext  bool
	}{
		{1, 5, true},
		{2, 5, true},
		{3, 2, false},
	}

	for _, tc := range cases {
		repo := new(MockTestimonialRepo)
		items := make([]models.Testimonial, tc.returned)
		repo.On("List", mock.Anything, ListFilter{Limit: 5, Offset: (tc.page - 1) * 5}).
			Return(items, 12, nil)

		svc := NewService(repo, zap.NewNop())
		board, err := svc.List(context.Background(), tc.page, 5, 0)
		require.NoError(t, err)
		assert.Len(t, board.Data, tc.returned, "page %d", tc.page)
		assert.Equal(t, tc.hasNext, board.HasNext, "page %d", tc.page)
		assert.Equal(t, 12, board.Total)
	}
}

func TestListExactMultipleOfPageSize(t *testing.T) {
	repo := new(MockTestimonialRepo)
	repo.On("List", mock.Anything, ListFilter{Limit: 5, Offset: 5}).
		Return(make([]models.Testimonial, 5), 10, nil)

	svc := NewService(repo, zap.NewNop())
	board, err := svc.List(context.Background(), 2, 5, 0)
	require.NoError(t, err)
	assert.Len(t, board.Data, 5)
	assert.False(t, board.HasNext)
}

func TestDeleteSecondTimeNotFound(t *testing.T) {
	repo := new(MockTestimonialRepo)
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil).Once()
	repo.On("Delete", mock.Anything, id).Return(models.ErrNotFound).Once()

	svc := NewService(repo, zap.NewNop())
	require.NoError(t, svc.Delete(context.Background(), id))
	assert.ErrorIs(t, svc.Delete(context.Background(), id), models.ErrNotFound)
}
