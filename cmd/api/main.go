package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"carlygage/internal/config"
	"carlygage/internal/database"
	"carlygage/internal/httpserver"
	"carlygage/internal/logger"
	"carlygage/internal/mailer"
	"carlygage/internal/services"
	"carlygage/internal/web"
	apperrors "carlygage/pkg/errors"
)

const (
	shutdownTimeout = 30 * time.Second
	readTimeout     = 15 * time.Second
	writeTimeout    = 45 * time.Second
	idleTimeout     = 60 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	log.Info("starting site",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.Bool("debug", cfg.App.Debug),
		zap.String("port", cfg.App.Port),
		zap.String("email_provider", cfg.Email.Provider))

	ctx := context.Background()

	// City catalog: database when configured, compiled-in table otherwise
	var (
		finder  services.CityFinder
		catalog services.Pinger
	)
	if cfg.Database.Enabled() {
		db, err := database.Open(cfg.Database, logger.Component(log, "database"))
		if err != nil {
			log.Fatal("failed to open catalog database", zap.Error(err))
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.Error("error closing database", zap.Error(err))
			}
		}()
		repo := database.NewCityRepository(db, logger.Component(log, "catalog"))
		finder, catalog = repo, repo
	}

	sender, err := mailer.NewSender(ctx, cfg.Email, logger.Component(log, "mailer"))
	if err != nil {
		if !apperrors.IsConfiguration(err) {
			log.Fatal("failed to create email sender", zap.Error(err))
		}
		// NewInquiryService logs the single startup warning for a nil sender
		sender = nil
	}

	inquiries := services.NewInquiryService(sender, cfg.Inquiry, log)
	locations := services.NewLocationService(finder, log)
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal("failed to parse page templates", zap.Error(err))
	}

	srv := httpserver.New(httpserver.Deps{
		Config:    cfg,
		Logger:    log,
		Inquiries: inquiries,
		Locations: locations,
		Pages:     services.NewPageService(locations),
		Health:    services.NewHealthService(cfg.App.Name, cfg.App.Version, inquiries, catalog),
		Renderer:  renderer,
	})

	addr := fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		ErrorLog:     zap.NewStdLog(logger.Component(log, "net/http")),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server error: %w", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("server failed to start", zap.Error(err))
	case sig := <-shutdown:
		log.Info("starting graceful shutdown", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error during graceful shutdown", zap.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("shutdown timeout exceeded, forcing close")
			_ = httpServer.Close()
		}
	}

	log.Info("server shutdown complete")
}
