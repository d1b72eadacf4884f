package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orgevents/config"
	_ "orgevents/docs"
	"orgevents/internal/adapters/auth"
	httpdelivery "orgevents/internal/delivery/http"
	"orgevents/internal/delivery/http/controllers"
	"orgevents/internal/delivery/http/middleware"
	"orgevents/internal/repository/postgres"
	"orgevents/internal/services"
)

//go:generate swag init -g cmd/api/main.go -o docs

// @title Organizational Events API
// @version 1.0
// @description Accounts, roles, events and event registrations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := postgres.RunMigrations(cfg.DBUrl, logger); err != nil {
		return err
	}
	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	eventTypeRepo := postgres.NewEventTypeRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	if err := services.NewSeeder(roleRepo, eventTypeRepo, logger).Seed(ctx); err != nil {
		return err
	}

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiry)
	authenticator := auth.NewAuthenticator(auth.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer))
	authorizer := services.NewAuthorizer(userRepo)

	userService := services.NewUserService(userRepo, roleRepo, eventRepo, hasher, issuer, cfg.RequestTimeout)
	eventService := services.NewEventService(eventRepo, eventTypeRepo, authorizer, cfg.RequestTimeout)
	registrationService := services.NewRegistrationService(registrationRepo, eventRepo, userRepo, cfg.RequestTimeout)

	mux := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Logger:        logger,
		Authenticator: authenticator,
		Authorizer:    authorizer,
		Users:         controllers.NewUserController(logger, userService),
		Events:        controllers.NewEventController(logger, eventService),
		Registrations: controllers.NewRegistrationController(logger, registrationService),
		Health:        controllers.NewHealthController(logger, db),
	})
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
