package routers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"video-guestbook/internal/delivery/http/handlers"
	"video-guestbook/internal/domain/repositories"
	infra_repo "video-guestbook/internal/infrastructure/repositories"
	"video-guestbook/internal/pkg/config"
	"video-guestbook/internal/pkg/logger"
	"video-guestbook/internal/usecases"
)

func SetupAdminRoutes(app *fiber.App, cfg *config.Config, database *gorm.DB, blob repositories.BlobStorage, log *logger.Logger) {
	videoRepo := infra_repo.NewVideoRepository(database)
	curationService := usecases.NewCurationService(videoRepo, blob, log)
	adminHandler := handlers.NewAdminHandler(curationService)

	admin := app.Group("/api/v1/admin/:token", adminTokenGuard(cfg.Admin.Token))
	admin.Get("/videos", adminHandler.ListVideos)
	admin.Post("/videos/reorder", adminHandler.Reorder)
	admin.Post("/videos/:videoID/tag", adminHandler.ToggleTag)
	admin.Post("/videos/:videoID/flag", adminHandler.ToggleFlag)
	admin.Delete("/videos/:videoID", adminHandler.DeleteVideo)
}

// adminTokenGuard hides the panel entirely. A wrong token and a missing
// server-side token both look like a plain 404, not a 401.
func adminTokenGuard(expected string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		supplied := c.Params("token")
		if expected == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(expected)) != 1 {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Next()
	}
}
