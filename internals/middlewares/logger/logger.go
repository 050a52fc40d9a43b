package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog/log"
)

// LoggerMiddleware writes one access line per request through the app logger's writer.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		Output:     log.Logger,
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Format:     "[${time}] ${locals:reqid} ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
