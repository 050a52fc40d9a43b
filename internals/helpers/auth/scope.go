package helper

import (
	"github.com/gofiber/fiber/v2"
)

/* ============================================
   Locals Keys (middleware sets these)
============================================ */

const (
	LocUserID   = "user_id"
	LocRoleID   = "role_id"
	LocBranchID = "branch_id"
	LocScope    = "scope"
)

// Scope is the caller identity resolved from the access token.
// Controllers pass it explicitly into services.
type Scope struct {
	UserID   uint
	RoleID   uint
	BranchID uint
}

func (s Scope) HasRole(roles ...uint) bool {
	for _, r := range roles {
		if s.RoleID == r {
			return true
		}
	}
	return false
}

func SetScope(c *fiber.Ctx, s Scope) {
	c.Locals(LocScope, s)
	c.Locals(LocUserID, s.UserID)
	c.Locals(LocRoleID, s.RoleID)
	c.Locals(LocBranchID, s.BranchID)
}

// ScopeFrom reads the scope stored by the auth middleware.
func ScopeFrom(c *fiber.Ctx) (Scope, error) {
	s, ok := c.Locals(LocScope).(Scope)
	if !ok || s.UserID == 0 {
		return Scope{}, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return s, nil
}

// ScopeOrZero is for routes that also serve anonymous callers.
func ScopeOrZero(c *fiber.Ctx) Scope {
	s, _ := c.Locals(LocScope).(Scope)
	return s
}
