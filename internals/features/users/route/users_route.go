package route

import (
	"github.com/gofiber/fiber/v2"

	"schooladmin_backend/internals/features/users/controller"
	"schooladmin_backend/internals/helpers/resource"
)

// UsersAdminRoutes: /api/a/admins, /api/a/teachers
func UsersAdminRoutes(admin fiber.Router, deps controller.ProfileDeps) {
	resource.Mount(admin, admin, "/admins", controller.NewAdminController(deps), true)
	resource.Mount(admin, admin, "/teachers", controller.NewTeacherController(deps), true)
}

// UsersUserRoutes: read only, for any signed-in user
func UsersUserRoutes(user fiber.Router, deps controller.ProfileDeps) {
	resource.Mount(user, nil, "/admins", controller.NewAdminController(deps), true)
	resource.Mount(user, nil, "/teachers", controller.NewTeacherController(deps), true)
}
