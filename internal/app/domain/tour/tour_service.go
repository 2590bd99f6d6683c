package tour

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pandusatria/wisata-tour/internal/app/models"
	"github.com/pandusatria/wisata-tour/internal/app/observability/metrics"
)

// PanoramaSource supplies the ordered panorama list for assembly.
type PanoramaSource interface {
	List(ctx context.Context) ([]models.Panorama, error)
}

// PointOfInterestSource supplies every point of interest across all scenes.
type PointOfInterestSource interface {
	List(ctx context.Context) ([]models.PointOfInterest, error)
}

type Service interface {
	Graph(ctx context.Context) (*Graph, error)
}

type ServiceImpl struct {
	panoramas PanoramaSource
	pois      PointOfInterestSource
	mode      LinkMode
	logger    *zap.Logger
}

func NewService(panoramas PanoramaSource, pois PointOfInterestSource, mode LinkMode, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{panoramas: panoramas, pois: pois, mode: mode, logger: logger}
}

// Graph fetches panoramas and points of interest concurrently and assembles
// the tour. When either fetch fails the whole assembly fails; the viewer is
// never handed a partial graph.
func (s *ServiceImpl) Graph(ctx context.Context) (*Graph, error) {
	var (
		panoramas []models.Panorama
		pois      []models.PointOfInterest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		panoramas, err = s.panoramas.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pois, err = s.pois.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("tour assembly failed", zap.Error(err))
		return nil, err
	}

	graph := Assemble(panoramas, pois, s.mode)
	metrics.Get().TourAssembliesTotal.Add(ctx, 1)
	if graph.Skipped > 0 {
		s.logger.Warn("points of interest without a matching panorama",
			zap.Int("skipped", graph.Skipped))
	}
	return graph, nil
}
