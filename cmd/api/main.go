package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"clubapi/internal/auth"
	"clubapi/internal/config"
	"clubapi/internal/database"
	"clubapi/internal/database/migration"
	handlers "clubapi/internal/http/handler"
	"clubapi/internal/http/middleware"
	"clubapi/internal/model"
	"clubapi/internal/otel"
	"clubapi/internal/ratelimit"
	"clubapi/internal/repository"
	"clubapi/internal/repository/postgres"
	"clubapi/internal/service"
	"clubapi/internal/session"
	"clubapi/internal/storage"
	"clubapi/internal/upload"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	// Repositories
	eventRepo := postgres.NewEventPostgres(db)
	teamRepo := postgres.NewTeamPostgres(db)
	projectRepo := postgres.NewProjectPostgres(db)
	settingRepo := postgres.NewSettingPostgres(db)
	userRepo := postgres.NewUserPostgres(db)

	if err := bootstrapAdmin(ctx, userRepo, cfg.Auth); err != nil {
		log.Fatalf("failed to provision admin credential: %v", err)
	}

	// Auth stack: limiter in front of the verifier, sessions server-side
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(),
		cfg.Auth.RateLimitWindow, cfg.Auth.RateLimitMax)
	authority := session.NewAuthority(session.NewMemoryStore(),
		cfg.Auth.SessionIdleTimeout, cfg.Auth.SessionTTL)
	authSvc := service.NewAuthService(limiter, auth.NewVerifier(userRepo), authority)

	saver := upload.NewSaver(upload.NewValidator(nil, cfg.Upload.MaxBytes), store)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// room for a full batch of event images plus form overhead
		BodyLimit: int(cfg.Upload.MaxBytes) * 12,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(cors.New())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:         db,
		Auth:       authSvc,
		Events:     service.NewEventService(eventRepo),
		Team:       service.NewTeamService(teamRepo),
		Projects:   service.NewProjectService(projectRepo),
		Settings:   service.NewSettingService(settingRepo),
		Saver:      saver,
		Files:      store,
		Sessions:   authority,
		CookieName: cfg.Auth.SessionCookieName,
		SessionTTL: cfg.Auth.SessionTTL,
	})

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// newStorage selects the upload backend from configuration.
func newStorage(cfg *config.AppConfig) (storage.Storage, error) {
	switch cfg.Upload.Backend {
	case "minio":
		return storage.NewMinIO(cfg.MinIO)
	case "local":
		return storage.NewLocal(cfg.Upload.Dir)
	default:
		return nil, errors.New("unknown storage backend: " + cfg.Upload.Backend)
	}
}

// bootstrapAdmin inserts the configured admin credential when the username
// does not exist yet. With no bootstrap configured the users table is
// expected to be provisioned out of band.
func bootstrapAdmin(ctx context.Context, users repository.UserRepository, cfg config.AuthConfig) error {
	if cfg.BootstrapUsername == "" || cfg.BootstrapPassword == "" {
		return nil
	}

	_, err := users.FindByUsername(ctx, cfg.BootstrapUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = users.Create(ctx, &model.User{
		Username:     cfg.BootstrapUsername,
		PasswordHash: string(hash),
	})
	return err
}
