package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/pandusatria/wisata-tour/internal/app/domain/auth"
	"github.com/pandusatria/wisata-tour/internal/app/domain/dashboard"
	"github.com/pandusatria/wisata-tour/internal/app/domain/panorama"
	"github.com/pandusatria/wisata-tour/internal/app/domain/testimonial"
	"github.com/pandusatria/wisata-tour/internal/app/domain/tour"
	"github.com/pandusatria/wisata-tour/internal/app/domain/tradisi"
	"github.com/pandusatria/wisata-tour/internal/pkg/config"
	"github.com/pandusatria/wisata-tour/internal/pkg/upload"
)

type AppHandlers struct {
	Auth        *auth.AuthHandlers
	Panorama    *panorama.PanoramaHandlers
	Tradisi     *tradisi.TradisiHandlers
	Testimonial *testimonial.TestimonialHandlers
	Dashboard   *dashboard.DashboardHandlers
	Tour        *tour.TourHandlers
}

// Setup wires repositories, services and handlers onto the engine.
func Setup(r *gin.Engine, dbPool *pgxpool.Pool, cfg *config.Config, log *zap.Logger) error {
	handlers, err := setupDependencies(dbPool, cfg, log)
	if err != nil {
		return err
	}
	setupRouter(r, handlers, cfg, log)
	return nil
}

func setupDependencies(dbPool *pgxpool.Pool, cfg *config.Config, log *zap.Logger) (*AppHandlers, error) {
	uploads, err := upload.NewStore(cfg.UploadDir, log)
	if err != nil {
		return nil, err
	}

	authRepo := auth.NewRepository(dbPool, log)
	authService := auth.NewService(authRepo, cfg.JWTSecret, log)

	panoramaRepo := panorama.NewRepository(dbPool, log)
	panoramaService := panorama.NewService(panoramaRepo, log)

	tradisiRepo := tradisi.NewRepository(dbPool, log)
	tradisiService := tradisi.NewService(tradisiRepo, log)

	testimonialRepo := testimonial.NewRepository(dbPool, log)
	testimonialService := testimonial.NewService(testimonialRepo, log)

	dashboardRepo := dashboard.NewRepository(dbPool, log)
	dashboardService := dashboard.NewService(dashboardRepo, testimonialRepo, log)

	tourService := tour.NewService(panoramaService, tradisiService, tour.LinkRing, log)

	return &AppHandlers{
		Auth:        auth.NewAuthHandlers(authService, log),
		Panorama:    panorama.NewPanoramaHandlers(panoramaService, uploads, log),
		Tradisi:     tradisi.NewTradisiHandlers(tradisiService, uploads, log),
		Testimonial: testimonial.NewTestimonialHandlers(testimonialService, log),
		Dashboard:   dashboard.NewDashboardHandlers(dashboardService, log),
		Tour:        tour.NewTourHandlers(tourService, log),
	}, nil
}

func setupRouter(r *gin.Engine, h *AppHandlers, cfg *config.Config, log *zap.Logger) {
	jwtConfig := auth.JWTConfig{SecretKey: cfg.JWTSecret, Logger: log}

	api := r.Group("/api")
	{
		// Visitor-facing reads plus the testimonial form.
		api.GET("/panoramas", h.Panorama.ListHandler)
		api.GET("/tradisi", h.Tradisi.ListHandler)
		api.GET("/tradisi/:id", h.Tradisi.GetHandler)
		api.GET("/testimonials", h.Testimonial.ListHandler)
		api.POST("/testimonials", h.Testimonial.CreateHandler)
		api.GET("/tour", h.Tour.GraphHandler)

		api.POST("/admin/login", h.Auth.LoginHandler)

		// Everything that mutates content requires an admin token.
		protected := api.Group("")
		protected.Use(auth.JWTAuthMiddleware(jwtConfig))
		{
			protected.POST("/panoramas", h.Panorama.CreateHandler)
			protected.PUT("/panoramas/:id", h.Panorama.UpdateHandler)
			protected.DELETE("/panoramas/:id", h.Panorama.DeleteHandler)

			protected.POST("/tradisi", h.Tradisi.CreateHandler)
			protected.PUT("/tradisi/:id", h.Tradisi.UpdateHandler)
			protected.DELETE("/tradisi/:id", h.Tradisi.DeleteHandler)

			protected.PUT("/testimonials/:id/reply", h.Testimonial.ReplyHandler)
			protected.DELETE("/testimonials", h.Testimonial.DeleteHandler)

			protected.GET("/admin/dashboard", h.Dashboard.StatsHandler)
		}
	}
}
