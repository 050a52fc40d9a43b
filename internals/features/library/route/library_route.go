package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/library/controller"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/resource"
)

// LibraryStaffRoutes: /api/l (admin + librarian)
func LibraryStaffRoutes(staff fiber.Router, db *gorm.DB, v *helper.Validator) {
	mountLibrary(staff, staff, db, v)

	circ := controller.NewCirculationController(db)
	staff.Post("/library/books/:id<int>/issue", circ.Issue)
	staff.Post("/library/books/:id<int>/return", circ.Return)
}

// LibraryUserRoutes: /api/u (read only)
func LibraryUserRoutes(user fiber.Router, db *gorm.DB, v *helper.Validator) {
	mountLibrary(user, nil, db, v)
}

func mountLibrary(read, write fiber.Router, db *gorm.DB, v *helper.Validator) {
	resource.MountHandler(read, write, "/library/shelves", controller.NewShelfHandler(db, v))
	resource.MountHandler(read, write, "/library/categories", controller.NewCategoryHandler(db, v))
	resource.MountHandler(read, write, "/library/reader-types", controller.NewReaderTypeHandler(db, v))
	resource.MountHandler(read, write, "/library/books", controller.NewBookHandler(db, v))
}
