package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestScopeRoundTrip(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if _, err := ScopeFrom(c); err == nil {
			t.Fatalf("expected error before scope is set")
		}
		SetScope(c, Scope{UserID: 7, RoleID: 1, BranchID: 3})
		s, err := ScopeFrom(c)
		if err != nil {
			return err
		}
		if s.BranchID != 3 || !s.HasRole(2, 1) || s.HasRole(4) {
			t.Fatalf("unexpected scope %+v", s)
		}
		if c.Locals(LocBranchID).(uint) != 3 {
			t.Fatalf("branch local not set")
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil || resp.StatusCode != fiber.StatusOK {
		t.Fatalf("unexpected %v %v", resp, err)
	}
}
