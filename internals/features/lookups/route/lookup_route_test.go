package route

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"schooladmin_backend/internals/testutil"
)

func TestSeededLookups(t *testing.T) {
	db := testutil.NewDB(t)
	app := fiber.New()
	LookupUserRoutes(app.Group("/api/u"), db)

	for path, min := range map[string]int{
		"/api/u/lookups/genders":      2,
		"/api/u/lookups/religions":    1,
		"/api/u/lookups/designations": 1,
		"/api/u/lookups/months":       12,
		"/api/u/lookups/weekdays":     7,
	} {
		res := testutil.JSON(t, app, fiber.MethodGet, path, "", nil)
		rows, _ := res.Body.Data.([]any)
		if res.Code != fiber.StatusOK || len(rows) < min {
			t.Fatalf("%s: expected at least %d rows, got %d %s", path, min, res.Code, res.Raw)
		}
	}

	if res := testutil.JSON(t, app, fiber.MethodGet, "/api/u/lookups/months/1", "", nil); res.Code != fiber.StatusOK {
		t.Fatalf("month 1: %d", res.Code)
	}
	if res := testutil.JSON(t, app, fiber.MethodGet, "/api/u/lookups/months/99", "", nil); res.Code != fiber.StatusNotFound {
		t.Fatalf("month 99: expected 404, got %d", res.Code)
	}
}
