package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	libraryRoute "schooladmin_backend/internals/features/library/route"
	helper "schooladmin_backend/internals/helpers"
)

// LibraryRoutes mounts writes on the staff group (admin + librarian) and reads on the user group.
func LibraryRoutes(staff, user fiber.Router, db *gorm.DB, v *helper.Validator) {
	libraryRoute.LibraryStaffRoutes(staff, db, v)
	libraryRoute.LibraryUserRoutes(user, db, v)
}
