package resource

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	helperAuth "schooladmin_backend/internals/helpers/auth"
)

// QueryUint reads ?name= as a positive id. ok is false when the parameter is absent.
func QueryUint(c *fiber.Ctx, name string) (uint, bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, false, fiber.NewError(fiber.StatusBadRequest, name+" must be a positive integer")
	}
	return uint(n), true, nil
}

// QueryEquals turns each present ?column=<id> into a filter.
func QueryEquals(c *fiber.Ctx, columns ...string) ([]Filter, error) {
	var out []Filter
	for _, col := range columns {
		v, ok, err := QueryUint(c, col)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, Where(col+" = ?", v))
		}
	}
	return out, nil
}

// BranchFilter scopes to ?branch_id when given, else to the caller's branch.
func BranchFilter(c *fiber.Ctx, sc helperAuth.Scope) (Filter, error) {
	id, ok, err := QueryUint(c, "branch_id")
	if err != nil {
		return nil, err
	}
	if !ok {
		id = sc.BranchID
	}
	if id == 0 {
		return nil, nil
	}
	return Where("branch_id = ?", id), nil
}

// BranchScoped builds a Filters func: branch scope plus the listed ?column= filters.
func BranchScoped(columns ...string) func(*fiber.Ctx, helperAuth.Scope) ([]Filter, error) {
	return func(c *fiber.Ctx, sc helperAuth.Scope) ([]Filter, error) {
		bf, err := BranchFilter(c, sc)
		if err != nil {
			return nil, err
		}
		rest, err := QueryEquals(c, columns...)
		if err != nil {
			return nil, err
		}
		return append([]Filter{bf}, rest...), nil
	}
}

// ByQuery builds a Filters func from ?column= filters only.
func ByQuery(columns ...string) func(*fiber.Ctx, helperAuth.Scope) ([]Filter, error) {
	return func(c *fiber.Ctx, _ helperAuth.Scope) ([]Filter, error) {
		return QueryEquals(c, columns...)
	}
}
