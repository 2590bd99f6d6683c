package server

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/pandusatria/wisata-tour/internal/pkg/config"
)

// SetupAssets serves the uploaded panorama and marker images under /images.
// The directory is created on first boot so a fresh deployment starts clean.
func SetupAssets(r *gin.Engine, cfg *config.Config) error {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return err
	}
	r.Static("/images", cfg.UploadDir)
	return nil
}
