package details

import (
	"github.com/gofiber/fiber/v2"

	userController "schooladmin_backend/internals/features/users/controller"
	userRoute "schooladmin_backend/internals/features/users/route"
)

func UserAdminRoutes(admin fiber.Router, deps userController.ProfileDeps) {
	userRoute.UsersAdminRoutes(admin, deps)
}

func UserUserRoutes(user fiber.Router, deps userController.ProfileDeps) {
	userRoute.UsersUserRoutes(user, deps)
}
