package main

import (
	"context"
	"time"

	"github.com/pawtracks/training-system/internal/api"
	"github.com/pawtracks/training-system/internal/infrastructure/storage"
	"github.com/pawtracks/training-system/internal/pkg/config"
	"github.com/pawtracks/training-system/pkg/logger"

	mongodb "github.com/pawtracks/training-system/internal/infrastructure/db/mongo"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure user indexes")
	}
	if err := mongodb.NewAnimalRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure animal indexes")
	}

	store := storage.NewWorkerClient(storage.Config{
		WorkerURL: cfg.Storage.WorkerURL,
		BucketURL: cfg.Storage.BucketURL,
	})

	e := api.NewRouter(db, store, cfg.JWTSecret, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting api server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
