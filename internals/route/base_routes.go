package routes

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	database "schooladmin_backend/internals/databases"
)

func BaseRoutes(app *fiber.App, d Deps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("School admin API is running 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK
		if err := database.Ping(ctx, d.DB); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    d.Cfg.AppEnv,
		})
	})

	if d.Metrics != nil {
		app.Get("/metrics", d.Metrics.Handler())
	}

	// local photos are served by the app itself; OSS serves its own
	if strings.EqualFold(d.Cfg.StorageDriver, "local") && d.Cfg.StoragePublicDir != "" {
		app.Static("/storage", d.Cfg.StoragePublicDir)
	}
}
