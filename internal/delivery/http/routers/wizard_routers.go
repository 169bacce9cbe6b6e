package routers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"

	"video-guestbook/internal/delivery/http/handlers"
	"video-guestbook/internal/domain/repositories"
	"video-guestbook/internal/infrastructure/probe"
	infra_repo "video-guestbook/internal/infrastructure/repositories"
	"video-guestbook/internal/pkg/config"
	"video-guestbook/internal/pkg/logger"
	"video-guestbook/internal/usecases"
)

const suggestionRotateInterval = 4 * time.Second

func SetupWizardRoutes(
	app *fiber.App,
	cfg *config.Config,
	store repositories.SessionStore,
	blob repositories.BlobStorage,
	submitter usecases.Submitter,
	log *logger.Logger,
) {
	fileRepo := infra_repo.NewCaptureFileRepository(cfg.Upload.TempDir)
	captureService := usecases.NewCaptureService(fileRepo, log)
	validator := usecases.NewValidator(cfg.Upload.MaxFileSize, probe.NewFFProbe())

	wizardService := usecases.NewWizardService(store, fileRepo, captureService, validator, submitter, log)
	suggestions := usecases.NewSuggestionRotator(suggestionRotateInterval)
	wizardHandler := handlers.NewWizardHandler(wizardService, suggestions)

	cleanupService := usecases.NewCleanupService(fileRepo, store, log)
	c := cron.New(cron.WithSeconds())
	c.AddFunc("0 */5 * * * *", func() {
		if err := cleanupService.CleanupOldTempFiles(24 * time.Hour); err != nil {
			log.Warn("temp file cleanup failed", "error", err)
		}
	})
	c.AddFunc("0 0 * * * *", func() {
		ctx, cancel := cleanupContext()
		defer cancel()
		if err := cleanupService.CleanupStaleSessions(ctx, 7*24*time.Hour); err != nil {
			log.Warn("stale session cleanup failed", "error", err)
		}
	})
	c.Start()

	api := app.Group("/api/v1")
	api.Post("/wizard/session", wizardHandler.StartSession)
	api.Get("/wizard/:sessionID", wizardHandler.GetSession)
	api.Post("/wizard/:sessionID/mode", wizardHandler.ChooseMode)
	api.Post("/wizard/:sessionID/capture", wizardHandler.BeginCapture)
	api.Post("/wizard/:sessionID/back", wizardHandler.Back)

	api.Post("/wizard/:sessionID/recording/start", wizardHandler.StartRecording)
	api.Post("/wizard/:sessionID/recording/chunk", wizardHandler.AppendChunk)
	api.Post("/wizard/:sessionID/recording/stop", wizardHandler.StopRecording)
	api.Get("/wizard/:sessionID/recording/status", wizardHandler.RecordingStatus)
	api.Post("/wizard/:sessionID/upload", wizardHandler.UploadVideo)
	api.Post("/wizard/:sessionID/retry", wizardHandler.RetryCapture)

	api.Patch("/wizard/:sessionID/preview", wizardHandler.UpdatePreview)
	api.Post("/wizard/:sessionID/continue", wizardHandler.ContinueToInfo)
	api.Post("/wizard/:sessionID/info", wizardHandler.SaveInfo)
	api.Post("/wizard/:sessionID/submit", wizardHandler.Submit)

	api.Post("/wizard/:sessionID/outro/prev", wizardHandler.OutroPrev)
	api.Post("/wizard/:sessionID/outro/next", wizardHandler.OutroNext)
	api.Post("/wizard/:sessionID/outro/finish", wizardHandler.OutroFinish)
	api.Post("/wizard/:sessionID/outro/close", wizardHandler.OutroClose)
	api.Get("/wizard/:sessionID/outro", wizardHandler.OutroSlides)
	api.Post("/wizard/:sessionID/reset", wizardHandler.Reset)

	api.Get("/guide/question", wizardHandler.GuideQuestion)
}

func cleanupContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Minute)
}
