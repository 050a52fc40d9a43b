package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/notices/controller"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/resource"
)

func NoticeAdminRoutes(admin fiber.Router, db *gorm.DB, v *helper.Validator) {
	resource.MountHandler(admin, admin, "/notice-types", controller.NewNoticeTypeHandler(db, v))
	resource.MountHandler(admin, admin, "/notices", controller.NewNoticeHandler(db, v))
}

func NoticeUserRoutes(user fiber.Router, db *gorm.DB, v *helper.Validator) {
	resource.MountHandler(user, nil, "/notice-types", controller.NewNoticeTypeHandler(db, v))
	resource.MountHandler(user, nil, "/notices", controller.NewNoticeHandler(db, v))
}
