package constants

import "fmt"

// Role ids are stable: they are encoded into every registration id.
const (
	RoleAdmin      uint = 1
	RoleTeacher    uint = 2
	RoleLibrarian  uint = 3
	RoleAccountant uint = 4
)

var RoleNames = map[uint]string{
	RoleAdmin:      "admin",
	RoleTeacher:    "teacher",
	RoleLibrarian:  "librarian",
	RoleAccountant: "accountant",
}

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "only admins may access %s"
	ErrOnlyStaffCanAccess  = "only staff may access %s"
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []uint{RoleAdmin, RoleTeacher, RoleLibrarian, RoleAccountant}

	AdminOnly = []uint{RoleAdmin}

	LibraryStaff = []uint{RoleAdmin, RoleLibrarian}
)
