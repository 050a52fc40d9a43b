package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"schooladmin_backend/internals/configs"
	"schooladmin_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide chain. Order matters: recover wraps everything.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, m *Metrics) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.CORSAllowOrigins))
	if m != nil {
		app.Use(m.Middleware())
	}
	app.Use(GlobalRateLimiter())
}
