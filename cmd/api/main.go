package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/colorsense/colorsense-backend/internal/config"
	"github.com/colorsense/colorsense-backend/internal/infrastructure/database/postgres"
	"github.com/colorsense/colorsense-backend/internal/infrastructure/database/redis"
	"github.com/colorsense/colorsense-backend/internal/interfaces/http"
	"github.com/sirupsen/logrus"
)

// shutdownGrace is how long in-flight requests get to finish after SIGTERM
const shutdownGrace = 30 * time.Second

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log := logrus.WithFields(logrus.Fields{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})
	log.Info("Starting server")

	db, err := postgres.NewConnection(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	if err := db.Health(); err != nil {
		return fmt.Errorf("database health check: %w", err)
	}
	if err := redisClient.Health(); err != nil {
		return fmt.Errorf("redis health check: %w", err)
	}

	migration := postgres.NewMigration(db.GetDB())
	if err := migration.RunAutoMigrations(); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	if err := migration.CreateIndexes(); err != nil {
		log.WithError(err).Warn("Index creation failed")
	}
	if cfg.IsDevelopment() {
		if err := migration.SeedInitialData(); err != nil {
			log.WithError(err).Warn("Data seeding failed")
		}
	}

	server := http.NewServer(cfg, db.GetDB(), redisClient.GetClient())

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return server.Stop(ctx)
}
