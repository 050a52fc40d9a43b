package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/organization/controller"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/resource"
)

// OrganizationAdminRoutes: /api/a (admin only)
func OrganizationAdminRoutes(admin fiber.Router, db *gorm.DB, v *helper.Validator) {
	resource.MountHandler(admin, admin, "/branches", controller.NewBranchHandler(db, v))
	resource.MountHandler(admin, admin, "/roles", controller.NewRoleHandler(db, v))
}
