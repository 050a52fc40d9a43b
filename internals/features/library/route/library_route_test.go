package route

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"

	orgModel "schooladmin_backend/internals/features/organization/model"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/testutil"
)

func newLibraryApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testutil.NewDB(t)
	if err := db.Create(&orgModel.BranchModel{Name: "Main Campus"}).Error; err != nil {
		t.Fatalf("branch: %v", err)
	}
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	LibraryStaffRoutes(app.Group("/api/l"), db, helper.NewValidator())
	LibraryUserRoutes(app.Group("/api/u"), db, helper.NewValidator())
	return app
}

func mustCreate(t *testing.T, app *fiber.App, path string, body map[string]any) uint {
	t.Helper()
	res := testutil.JSON(t, app, fiber.MethodPost, path, "", body)
	if res.Code != fiber.StatusCreated {
		t.Fatalf("create %s: %d %s", path, res.Code, res.Raw)
	}
	return uint(res.Data(t)["id"].(float64))
}

func newBook(t *testing.T, app *fiber.App, quantity int) uint {
	t.Helper()
	shelf := mustCreate(t, app, "/api/l/library/shelves", map[string]any{"branch_id": 1, "name": "A1"})
	cat := mustCreate(t, app, "/api/l/library/categories", map[string]any{"name": "Science"})
	rt := mustCreate(t, app, "/api/l/library/reader-types", map[string]any{"name": "Students"})
	return mustCreate(t, app, "/api/l/library/books", map[string]any{
		"shelf_id": shelf, "category_id": cat, "reader_type_id": rt,
		"name": "Physics I", "authors": []string{"Halliday", "Resnick"}, "quantity": quantity,
	})
}

func TestBookKeepsAuthors(t *testing.T) {
	app := newLibraryApp(t)
	id := newBook(t, app, 2)

	res := testutil.JSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/u/library/books/%d", id), "", nil)
	if res.Code != fiber.StatusOK {
		t.Fatalf("show: %d %s", res.Code, res.Raw)
	}
	book := res.Data(t)
	authors, _ := book["authors"].([]any)
	if len(authors) != 2 || authors[1] != "Resnick" {
		t.Fatalf("authors lost: %s", res.Raw)
	}
	if shelf, _ := book["shelf"].(map[string]any); shelf == nil || shelf["name"] != "A1" {
		t.Fatalf("shelf should be embedded: %s", res.Raw)
	}
}

func TestTakenByCannotExceedQuantity(t *testing.T) {
	app := newLibraryApp(t)
	id := newBook(t, app, 1)

	res := testutil.JSON(t, app, fiber.MethodPatch, fmt.Sprintf("/api/l/library/books/%d", id), "", map[string]any{"taken_by": 3})
	if res.Code != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d %s", res.Code, res.Raw)
	}
}

func TestIssueAndReturn(t *testing.T) {
	app := newLibraryApp(t)
	id := newBook(t, app, 1)
	issue := fmt.Sprintf("/api/l/library/books/%d/issue", id)
	ret := fmt.Sprintf("/api/l/library/books/%d/return", id)

	res := testutil.JSON(t, app, fiber.MethodPost, issue, "", nil)
	if res.Code != fiber.StatusOK || res.Data(t)["available"].(float64) != 0 {
		t.Fatalf("issue: %d %s", res.Code, res.Raw)
	}
	if res := testutil.JSON(t, app, fiber.MethodPost, issue, "", nil); res.Code != fiber.StatusConflict {
		t.Fatalf("issuing the last copy twice: expected 409, got %d", res.Code)
	}
	if res := testutil.JSON(t, app, fiber.MethodPost, ret, "", nil); res.Code != fiber.StatusOK {
		t.Fatalf("return: %d %s", res.Code, res.Raw)
	}
	if res := testutil.JSON(t, app, fiber.MethodPost, ret, "", nil); res.Code != fiber.StatusConflict {
		t.Fatalf("returning an unissued book: expected 409, got %d", res.Code)
	}
	if res := testutil.JSON(t, app, fiber.MethodPost, "/api/l/library/books/999/issue", "", nil); res.Code != fiber.StatusNotFound {
		t.Fatalf("unknown book: expected 404, got %d", res.Code)
	}
}
