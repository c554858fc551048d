package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"carlygage/internal/config"
	"carlygage/internal/database"
	"carlygage/internal/domain"
	"carlygage/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	if !cfg.Database.Enabled() {
		log.Fatal("DATABASE_URL is not set; nothing to seed")
	}

	db, err := database.Open(cfg.Database, logger.Component(log, "database"))
	if err != nil {
		log.Fatal("failed to open catalog database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := database.NewCityRepository(db, logger.Component(log, "catalog")).Seed(ctx, domain.Cities)
	if err != nil {
		log.Fatal("failed to seed catalog", zap.Error(err))
	}

	fmt.Printf("Seeded %d service-area cities.\n", n)
}
