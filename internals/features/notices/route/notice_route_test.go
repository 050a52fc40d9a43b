package route

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	orgModel "schooladmin_backend/internals/features/organization/model"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/testutil"
)

func TestNoticesFilterByType(t *testing.T) {
	db := testutil.NewDB(t)
	if err := db.Create(&orgModel.BranchModel{Name: "Main Campus"}).Error; err != nil {
		t.Fatalf("branch: %v", err)
	}
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	v := helper.NewValidator()
	NoticeAdminRoutes(app.Group("/api/a"), db, v)
	NoticeUserRoutes(app.Group("/api/u"), db, v)

	typeID := func(name string) float64 {
		res := testutil.JSON(t, app, fiber.MethodPost, "/api/a/notice-types", "", map[string]any{"name": name})
		if res.Code != fiber.StatusCreated {
			t.Fatalf("notice type: %d %s", res.Code, res.Raw)
		}
		return res.Data(t)["id"].(float64)
	}
	exam, event := typeID("Exam"), typeID("Event")

	for _, n := range []struct {
		title string
		typ   float64
	}{{"Midterm schedule", exam}, {"Sports day", event}, {"Final schedule", exam}} {
		res := testutil.JSON(t, app, fiber.MethodPost, "/api/a/notices", "", map[string]any{
			"branch_id": 1, "notice_type_id": n.typ, "title": n.title, "publish_date": "2024-03-01",
		})
		if res.Code != fiber.StatusCreated {
			t.Fatalf("notice %q: %d %s", n.title, res.Code, res.Raw)
		}
	}

	res := testutil.JSON(t, app, fiber.MethodGet, "/api/u/notices?notice_type_id=1", "", nil)
	rows, _ := res.Body.Data.([]any)
	if res.Code != fiber.StatusOK || len(rows) != 2 {
		t.Fatalf("expected two exam notices, got %d %s", res.Code, res.Raw)
	}
	if first := rows[0].(map[string]any); first["title"] != "Final schedule" {
		t.Fatalf("newest first expected, got %v", first["title"])
	}

	bad := testutil.JSON(t, app, fiber.MethodPost, "/api/a/notices", "", map[string]any{
		"branch_id": 1, "notice_type_id": exam, "title": "Bad date", "publish_date": "01/03/2024",
	})
	if bad.Code != fiber.StatusUnprocessableEntity {
		t.Fatalf("bad publish_date: expected 422, got %d", bad.Code)
	}
}
