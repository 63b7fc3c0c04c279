package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/carelog/clinic-api/config"
	"github.com/carelog/clinic-api/internal/handler"
	authHandler "github.com/carelog/clinic-api/internal/handler/auth"
	patientHandler "github.com/carelog/clinic-api/internal/handler/patient"
	visitHandler "github.com/carelog/clinic-api/internal/handler/visit"
	"github.com/carelog/clinic-api/internal/middleware"
	"github.com/carelog/clinic-api/internal/repository/postgres"
	"github.com/carelog/clinic-api/internal/router"
	authService "github.com/carelog/clinic-api/internal/service/auth"
	patientService "github.com/carelog/clinic-api/internal/service/patient"
	visitService "github.com/carelog/clinic-api/internal/service/visit"
	"github.com/carelog/clinic-api/internal/session"
	"github.com/carelog/clinic-api/pkg/security"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	// Initialize session store
	sessions, err := newSessionStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session store")
	}

	// Initialize repositories
	base := postgres.NewBaseRepository(db)
	userRepo := postgres.NewUserRepository(base)
	patientRepo := postgres.NewPatientRepository(base)
	visitRepo := postgres.NewVisitRepository(base)

	// Initialize services
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	authSvc := authService.NewService(userRepo, sessions, hasher)
	patientSvc := patientService.NewService(patientRepo)
	visitSvc := visitService.NewService(visitRepo, patientRepo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authSvc, cfg.Auth.CookieName)

	// Initialize handlers
	h := handler.NewHandler()
	authH := authHandler.NewHandler(authSvc, patientSvc, authHandler.CookieConfig{
		Name:   cfg.Auth.CookieName,
		MaxAge: int(cfg.Auth.SessionTTL.Seconds()),
	})
	patientH := patientHandler.NewHandler(patientSvc)
	visitH := visitHandler.NewHandler(visitSvc)

	// Setup router
	r := router.NewRouter(authMiddleware, authH, patientH, visitH, h, router.Config{
		RateLimit: middleware.RateLimiterConfig{
			RPS:   cfg.RateLimit.RequestsPerSecond,
			Burst: cfg.RateLimit.Burst,
		},
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func newSessionStore(cfg *config.Config) (session.Store, error) {
	storeCfg := session.Config{TTL: cfg.Auth.SessionTTL}

	switch cfg.Auth.SessionBackend {
	case "redis":
		return session.NewRedisStore(cfg.Redis.URL, storeCfg)
	case "memory":
		return session.NewMemoryStore(storeCfg), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Auth.SessionBackend)
	}
}
