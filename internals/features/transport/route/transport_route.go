package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/transport/controller"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/resource"
)

func TransportAdminRoutes(admin fiber.Router, db *gorm.DB, v *helper.Validator) {
	mountTransport(admin, admin, db, v)
}

func TransportUserRoutes(user fiber.Router, db *gorm.DB, v *helper.Validator) {
	mountTransport(user, nil, db, v)
}

func mountTransport(read, write fiber.Router, db *gorm.DB, v *helper.Validator) {
	g := "/transport"
	resource.MountHandler(read, write, g+"/drivers", controller.NewDriverHandler(db, v))
	resource.MountHandler(read, write, g+"/routes", controller.NewRouteHandler(db, v))
	resource.MountHandler(read, write, g+"/vehicles", controller.NewTransportationHandler(db, v))
}
