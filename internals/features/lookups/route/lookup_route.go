package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/lookups/controller"
)

// LookupUserRoutes: /api/u/lookups
func LookupUserRoutes(user fiber.Router, db *gorm.DB) {
	controller.MountAll(user.Group("/lookups"), db)
}
