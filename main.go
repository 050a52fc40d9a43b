package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"schooladmin_backend/internals/configs"
	database "schooladmin_backend/internals/databases"
	scheduler "schooladmin_backend/internals/features/users/auth/scheduler"
	authService "schooladmin_backend/internals/features/users/auth/service"
	"schooladmin_backend/internals/features/users/identity"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/storage"
	middlewares "schooladmin_backend/internals/middlewares"
	routes "schooladmin_backend/internals/route"
	"schooladmin_backend/internals/seeds"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	configs.SetupLogger(cfg.LogLevel, !cfg.IsProduction())

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}
	database.TunePool(db)
	database.WarmUp(db)

	if cfg.DBAutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("auto migrate")
		}
	}
	if cfg.DBSeed {
		if err := seeds.RunAllSeeds(db); err != nil {
			log.Fatal().Err(err).Msg("seed")
		}
	}

	// 🖼 photo storage
	store, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("storage")
	}

	// 🔐 auth service, blacklist in Redis when configured
	var rdb *redis.Client
	var blacklist authService.Blacklist
	if strings.TrimSpace(cfg.RedisURL) != "" {
		rdb, err = authService.OpenRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("redis")
		}
		blacklist = authService.NewRedisBlacklist(rdb, cfg.JWTSecret)
		log.Info().Msg("token blacklist: redis")
	}
	authSvc := authService.New(db, authService.Config{
		AccessSecret:   cfg.JWTSecret,
		RefreshSecret:  cfg.JWTRefreshSecret,
		AccessTTL:      cfg.AccessTokenTTL,
		RefreshTTL:     cfg.RefreshTokenTTL,
		GoogleClientID: cfg.GoogleClientID,
	}, blacklist)

	// ⏱ scheduler after the DB is ready
	cron, err := scheduler.StartCleanupScheduler(authSvc, cfg.CleanupCron)
	if err != nil {
		log.Fatal().Err(err).Msg("cleanup scheduler")
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
		BodyLimit:             8 * 1024 * 1024,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ base middleware + performance
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + per-request timeout
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	metrics := middlewares.NewMetrics()
	middlewares.SetupMiddlewares(app, cfg, metrics)

	// ✅ Routes
	routes.SetupRoutes(app, routes.Deps{
		DB:        db,
		Cfg:       cfg,
		Validator: helper.NewValidator(),
		Store:     store,
		Alloc:     identity.NewAllocator(),
		Auth:      authSvc,
		Metrics:   metrics,
	})

	// 🔒 Keep-Alive & connection timeouts
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Info().Str("port", cfg.Port).Msg("✅ listening")
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}
	<-cron.Stop().Done()
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := database.Close(db); err != nil {
		log.Warn().Err(err).Msg("close db")
	}
}

func openStore(cfg *configs.Config) (storage.Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.StorageDriver)) {
	case "oss":
		return storage.NewOSSStore(storage.OSSConfig{
			Endpoint:  cfg.OSSEndpoint,
			AccessKey: cfg.OSSAccessKey,
			SecretKey: cfg.OSSSecretKey,
			Bucket:    cfg.OSSBucket,
			BaseURL:   cfg.AssetBaseURL,
		})
	default:
		return storage.NewLocalStore(cfg.StoragePublicDir, cfg.AssetBaseURL)
	}
}
