package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/organization/controller"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/resource"
)

// OrganizationUserRoutes: /api/u (any signed-in user, read only)
func OrganizationUserRoutes(user fiber.Router, db *gorm.DB, v *helper.Validator) {
	resource.MountHandler(user, nil, "/branches", controller.NewBranchHandler(db, v))
	resource.MountHandler(user, nil, "/roles", controller.NewRoleHandler(db, v))
}
