package route

import (
	"github.com/gofiber/fiber/v2"

	"schooladmin_backend/internals/features/users/auth/controller"
	rateLimiter "schooladmin_backend/internals/middlewares"
)

// AuthRoutes mounts /api/auth. guard is the JWT middleware for the signed-in endpoints.
func AuthRoutes(app *fiber.App, ac *controller.AuthController, guard fiber.Handler) {
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), ac.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), ac.LoginGoogle)
	baseAuth.Post("/refresh-token", ac.RefreshToken)

	// 🔐 Signed in
	baseAuth.Post("/logout", guard, ac.Logout)
	baseAuth.Get("/me", guard, ac.Me)
	baseAuth.Post("/change-password", guard, ac.ChangePassword)
}
