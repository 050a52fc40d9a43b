package details

import (
	"github.com/gofiber/fiber/v2"

	authController "schooladmin_backend/internals/features/users/auth/controller"
	authRoute "schooladmin_backend/internals/features/users/auth/route"
	authService "schooladmin_backend/internals/features/users/auth/service"
	helper "schooladmin_backend/internals/helpers"
)

func AuthRoutes(app *fiber.App, svc *authService.Service, v *helper.Validator, secureCookie bool, guard fiber.Handler) {
	ac := authController.NewAuthController(svc, v, secureCookie)
	authRoute.AuthRoutes(app, ac, guard)
}
