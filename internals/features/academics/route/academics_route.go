package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/academics/controller"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/resource"
)

// AcademicsAdminRoutes: /api/a
func AcademicsAdminRoutes(admin fiber.Router, db *gorm.DB, v *helper.Validator) {
	mountAcademics(admin, admin, db, v)
}

// AcademicsUserRoutes: /api/u (read only)
func AcademicsUserRoutes(user fiber.Router, db *gorm.DB, v *helper.Validator) {
	mountAcademics(user, nil, db, v)
}

func mountAcademics(read, write fiber.Router, db *gorm.DB, v *helper.Validator) {
	// =====================
	// Academic calendar
	// =====================
	resource.MountHandler(read, write, "/academic-years", controller.NewAcademicYearHandler(db, v))
	resource.MountHandler(read, write, "/academic-sessions", controller.NewAcademicSessionHandler(db, v))

	// =====================
	// Classes
	// =====================
	resource.MountHandler(read, write, "/classes", controller.NewClassHandler(db, v))
	resource.MountHandler(read, write, "/classrooms", controller.NewClassroomHandler(db, v))
	resource.MountHandler(read, write, "/subjects", controller.NewSubjectHandler(db, v))
	resource.MountHandler(read, write, "/class-subjects", controller.NewClassSubjectHandler(db, v))
}
