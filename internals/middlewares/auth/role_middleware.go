package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

// OnlyRoles lets the request through when the caller holds one of roles. Must run after AuthJWT.
func OnlyRoles(customMessage string, roles ...uint) fiber.Handler {
	if customMessage == "" {
		customMessage = "forbidden: you are not authorized to access this resource"
	}
	return func(c *fiber.Ctx) error {
		sc, err := helperAuth.ScopeFrom(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		if !sc.HasRole(roles...) {
			return helper.JsonError(c, fiber.StatusForbidden, customMessage)
		}
		return c.Next()
	}
}
