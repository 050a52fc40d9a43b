package helper

import "github.com/gofiber/fiber/v2"

// ErrorHandler is the fiber.Config ErrorHandler: anything a handler returns leaves in the envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return WriteError(c, err)
}
