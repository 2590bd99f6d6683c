package dashboard

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/domain/testimonial"
	"github.com/pandusatria/wisata-tour/internal/app/models"
)

const (
	statsCacheKey = "dashboard:stats"
	recentLimit   = 5
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type ServiceImpl struct {
	repo         Repository
	testimonials testimonial.Repository
	cache        *cache.Cache
	logger       *zap.Logger
}

func NewService(repo Repository, testimonials testimonial.Repository, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:         repo,
		testimonials: testimonials,
		cache:        cache.New(time.Minute, 5*time.Minute),
		logger:       logger,
	}
}

// Stats aggregates the admin landing numbers. Results are cached for a
// minute; the dashboard tolerates slightly stale counts.
func (s *ServiceImpl) Stats(ctx context.Context) (*models.DashboardStats, error) {
	if cached, found := s.cache.Get(statsCacheKey); found {
		return cached.(*models.DashboardStats), nil
	}

	stats := &models.DashboardStats{}
	var err error

	if stats.PanoramaCount, err = s.repo.CountPanoramas(ctx); err != nil {
		return nil, err
	}
	if stats.TradisiCount, err = s.repo.CountPointsOfInterest(ctx); err != nil {
		return nil, err
	}
	if stats.TestimonialCount, err = s.repo.CountTestimonials(ctx); err != nil {
		return nil, err
	}
	if stats.RatingHistogram, err = s.repo.RatingHistogram(ctx); err != nil {
		return nil, err
	}
	if stats.RecentTestimonials, err = s.testimonials.Recent(ctx, recentLimit); err != nil {
		return nil, err
	}

	s.cache.Set(statsCacheKey, stats, cache.DefaultExpiration)
	return stats, nil
}
