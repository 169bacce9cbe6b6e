package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "video-guestbook/docs"
	_ "video-guestbook/migrations"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"video-guestbook/internal/delivery/http/routers"
	"video-guestbook/internal/domain/repositories"
	"video-guestbook/internal/infrastructure/db"
	infra_repo "video-guestbook/internal/infrastructure/repositories"
	"video-guestbook/internal/infrastructure/session"
	"video-guestbook/internal/infrastructure/storage"
	"video-guestbook/internal/pkg/config"
	"video-guestbook/internal/pkg/logger"
	"video-guestbook/internal/usecases"
	consts "video-guestbook/pkg/constants"
	"video-guestbook/pkg/errors/i18n"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLog := logger.New(cfg.Server.Env)
	defer appLog.Sync()

	if err := i18n.Load("pt"); err != nil {
		appLog.Fatal("could not load translations", "error", err)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		appLog.Fatal("db connection failed", "error", err)
	}

	if os.Getenv("RUN_AUTO_MIGRATION") == "true" {
		sqlDB, err := database.DB()
		if err != nil {
			appLog.Fatal("could not unwrap sql.DB", "error", err)
		}
		goose.SetBaseFS(nil)
		if err := goose.Up(sqlDB, "."); err != nil {
			appLog.Fatal("failed to apply migrations", "error", err)
		}
	} else if cfg.Server.Env == "development" {
		if err := db.AutoMigrate(database); err != nil {
			appLog.Fatal("auto migration failed", "error", err)
		}
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
	store := session.NewRedisStore(rdb)

	blob, err := newBlobStorage(cfg, appLog)
	if err != nil {
		appLog.Fatal("storage init failed", "error", err)
	}

	contributorRepo := infra_repo.NewContributorRepository(database)
	videoRepo := infra_repo.NewVideoRepository(database)
	noteRepo := infra_repo.NewNoteRepository(database)
	submitter := usecases.NewSubmitService(contributorRepo, videoRepo, noteRepo, blob, appLog)

	app := fiber.New(fiber.Config{
		// Chunk istekleri küçük olsa da upload modu tam dosyayı taşır
		BodyLimit: int(cfg.Upload.MaxFileSize) + 1024*1024,
	})

	// Middleware
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes
	routers.SetupWizardRoutes(app, cfg, store, blob, submitter, appLog)
	routers.SetupAdminRoutes(app, cfg, database, blob, appLog)

	if cfg.Storage.Driver == "local" {
		app.Static("/media", cfg.Storage.LocalDir)
	}

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	appLog.Info("server starting", "addr", addr)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			appLog.Fatal("server could not start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("shutdown signal received")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		appLog.Fatal("server did not shut down cleanly", "error", err)
	}
	appLog.Info("server stopped")
}

func newBlobStorage(cfg *config.Config, appLog *logger.Logger) (repositories.BlobStorage, error) {
	if cfg.Storage.Driver == "local" {
		return storage.NewLocalStorage(cfg.Storage.LocalDir), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return storage.NewS3Storage(ctx, cfg.Storage.Bucket, cfg.Storage.Region, appLog)
}
