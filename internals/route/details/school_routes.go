package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsRoute "schooladmin_backend/internals/features/academics/route"
	noticeRoute "schooladmin_backend/internals/features/notices/route"
	organizationRoute "schooladmin_backend/internals/features/organization/route"
	transportRoute "schooladmin_backend/internals/features/transport/route"
	helper "schooladmin_backend/internals/helpers"
)

// SchoolAdminRoutes: branches, roles, calendar, classes, subjects, notices, transport. Writes.
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB, v *helper.Validator) {
	organizationRoute.OrganizationAdminRoutes(admin, db, v)
	academicsRoute.AcademicsAdminRoutes(admin, db, v)
	noticeRoute.NoticeAdminRoutes(admin, db, v)
	transportRoute.TransportAdminRoutes(admin, db, v)
}

// SchoolUserRoutes: the same resources, read only.
func SchoolUserRoutes(user fiber.Router, db *gorm.DB, v *helper.Validator) {
	organizationRoute.OrganizationUserRoutes(user, db, v)
	academicsRoute.AcademicsUserRoutes(user, db, v)
	noticeRoute.NoticeUserRoutes(user, db, v)
	transportRoute.TransportUserRoutes(user, db, v)
}
