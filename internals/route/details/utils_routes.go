package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lookupRoute "schooladmin_backend/internals/features/lookups/route"
)

// UtilsRoutes: genders, religions, designations, months, weekdays.
func UtilsRoutes(user fiber.Router, db *gorm.DB) {
	lookupRoute.LookupUserRoutes(user, db)
}
