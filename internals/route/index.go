package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"schooladmin_backend/internals/configs"
	"schooladmin_backend/internals/constants"
	authService "schooladmin_backend/internals/features/users/auth/service"
	userController "schooladmin_backend/internals/features/users/controller"
	"schooladmin_backend/internals/features/users/identity"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/storage"
	"schooladmin_backend/internals/middlewares"
	authMiddleware "schooladmin_backend/internals/middlewares/auth"
	routeDetails "schooladmin_backend/internals/route/details"
)

var startTime time.Time

// Deps is everything the HTTP layer needs, built once in main.
type Deps struct {
	DB        *gorm.DB
	Cfg       *configs.Config
	Validator *helper.Validator
	Store     storage.Store
	Alloc     *identity.Allocator
	Auth      *authService.Service
	Metrics   *middlewares.Metrics
}

func (d Deps) profileDeps() userController.ProfileDeps {
	return userController.ProfileDeps{
		DB:        d.DB,
		Validator: d.Validator,
		Store:     d.Store,
		Alloc:     d.Alloc,
		ImageOpts: storage.ImageOptions{MaxWidth: d.Cfg.ImageMaxWidth, Quality: d.Cfg.ImageWebpQuality},
	}
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	BaseRoutes(app, d)

	guard := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              d.Cfg.JWTSecret,
		BlacklistChecker:    d.Auth.Blacklist.Contains,
		UserChecker:         d.Auth.UserActive,
		AllowCookieFallback: true,
	})

	// ===================== AUTH =====================
	log.Info().Msg("Mounting auth routes...")
	routeDetails.AuthRoutes(app, d.Auth, d.Validator, d.Cfg.IsProduction(), guard)

	// ===================== GROUPS =====================

	// any signed-in role: reads
	user := app.Group("/api/u", guard)

	// admin: writes
	admin := app.Group("/api/a",
		guard,
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("this resource"), constants.AdminOnly...),
	)

	// admin + librarian: library writes
	staff := app.Group("/api/l",
		guard,
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("the library"), constants.LibraryStaff...),
	)

	// ===================== MOUNT ROUTES =====================

	log.Info().Msg("Mounting school routes...")
	routeDetails.SchoolUserRoutes(user, d.DB, d.Validator)
	routeDetails.SchoolAdminRoutes(admin, d.DB, d.Validator)

	log.Info().Msg("Mounting user routes...")
	pd := d.profileDeps()
	routeDetails.UserUserRoutes(user, pd)
	routeDetails.UserAdminRoutes(admin, pd)

	log.Info().Msg("Mounting library routes...")
	routeDetails.LibraryRoutes(staff, user, d.DB, d.Validator)

	log.Info().Msg("Mounting lookup routes...")
	routeDetails.UtilsRoutes(user, d.DB)
}
