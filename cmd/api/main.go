package main

import (
	"context"

	"github.com/socialsphere/social-api/internal/api"
	"github.com/socialsphere/social-api/internal/infrastructure/db/mongo"
	"github.com/socialsphere/social-api/internal/infrastructure/db/redis"
	"github.com/socialsphere/social-api/internal/infrastructure/storage"
	"github.com/socialsphere/social-api/internal/pkg/config"
	"github.com/socialsphere/social-api/pkg/logger"
)

// @title        Social API
// @version      1.0
// @description  Minimal social-network backend: accounts, friendships, posts, likes.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// A store we cannot reach at boot is fatal; there is no degraded mode.
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	files, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload storage init failed")
	}

	e := api.NewRouter(db, rdb, files, api.Options{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		UploadDir: cfg.UploadDir,
		Log:       log,
	})

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
