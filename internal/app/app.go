package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"hrnexus_backend/internal/config"
	"hrnexus_backend/internal/handlers"
	"hrnexus_backend/internal/logger"
	"hrnexus_backend/internal/middleware"
	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/recordstore"
	"hrnexus_backend/internal/repositories"
	"hrnexus_backend/internal/routes"
	"hrnexus_backend/internal/services"
	"hrnexus_backend/internal/session"
	"hrnexus_backend/internal/validator"
	"hrnexus_backend/internal/workers"
)

// Run boots the application: configuration, storage, services, HTTP
// server and the polling worker. It blocks until the server exits.
func Run() {
	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		logger.Init("development")
		logger.Fatal("failed to load config", "error", err.Error())
	}

	logger.Init(cfg.Server.Env)
	logger.Info("starting hr-nexus backend", "env", cfg.Server.Env, "store", cfg.Store.Type)

	store, err := recordstore.NewStore(recordstore.Config{
		Type:     cfg.Store.Type,
		BasePath: cfg.Store.BasePath,
		DSN:      cfg.Store.DSN,
	})
	if err != nil {
		logger.Fatal("failed to initialize record store", "error", err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	users := repositories.NewUserRepository(store)
	candidates := repositories.NewCandidateRepository(store)
	cvs := repositories.NewCVRepository(store)
	activity := repositories.NewActivityRepository(store)

	sessions := session.NewManager(store, users)
	if err := sessions.Restore(ctx); err != nil {
		logger.Fatal("failed to restore session", "error", err.Error())
	}

	svcs := services.NewServiceContainer(cfg, users, candidates, cvs, activity, sessions)

	if cfg.Admin.SeedDemo {
		seedDemoAdmin(ctx, users)
	}

	engine := SetupRouter(cfg, svcs, sessions)

	worker := workers.NewPipelineWorker(candidates, cfg.Worker.PollInterval)
	go worker.Start(ctx)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("shutdown signal received")
		cancel()
	}()

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("listening", "addr", addr)
	if err := engine.Run(addr); err != nil {
		logger.Fatal("server exited", "error", err.Error())
	}
}

// SetupRouter builds the gin engine with middleware and routes. Tests
// use it directly against an in-memory store.
func SetupRouter(cfg *config.Config, svcs *services.ServiceContainer, sessions *session.Manager) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)

	v := validator.New()
	appHandlers := handlers.NewAppHandlers(v, svcs, sessions)
	routes.SetupRoutes(engine, appHandlers, sessions)

	return engine
}

// seedDemoAdmin makes sure the demo admin account exists so the quick
// login works on a fresh installation.
func seedDemoAdmin(ctx context.Context, users repositories.UserRepository) {
	existing, err := users.GetByID(ctx, services.DemoAdminID)
	if err != nil {
		logger.Error("failed to check demo admin", "error", err.Error())
		return
	}
	if existing != nil {
		return
	}

	demo := &models.User{
		ID:        services.DemoAdminID,
		Name:      services.DemoAdminName,
		Email:     services.DemoAdminEmail,
		Role:      models.RoleHRAdmin,
		CreatedAt: models.NowMillis(),
	}
	if err := users.Save(ctx, demo); err != nil {
		logger.Error("failed to seed demo admin", "error", err.Error())
		return
	}
	logger.Info("demo admin seeded", "user_id", demo.ID)
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config/config.yaml"
}
