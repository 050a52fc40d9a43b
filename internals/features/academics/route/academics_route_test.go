package route

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"

	orgModel "schooladmin_backend/internals/features/organization/model"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/testutil"
)

func newAcademicsApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testutil.NewDB(t)
	if err := db.Create(&orgModel.BranchModel{Name: "Main Campus"}).Error; err != nil {
		t.Fatalf("branch: %v", err)
	}
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	AcademicsAdminRoutes(app.Group("/api/a"), db, helper.NewValidator())
	return app
}

func post(t *testing.T, app *fiber.App, path string, body map[string]any) testutil.Result {
	t.Helper()
	return testutil.JSON(t, app, fiber.MethodPost, "/api/a"+path, "", body)
}

func created(t *testing.T, res testutil.Result) uint {
	t.Helper()
	if res.Code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d %s", res.Code, res.Raw)
	}
	return uint(res.Data(t)["id"].(float64))
}

func TestSessionDatesMustBeOrdered(t *testing.T) {
	app := newAcademicsApp(t)
	year := created(t, post(t, app, "/academic-years", map[string]any{"branch_id": 1, "year": "2024"}))

	res := post(t, app, "/academic-sessions", map[string]any{
		"academic_year_id": year, "name": "Term 1", "start_date": "2024-06-30", "end_date": "2024-01-01",
	})
	if res.Code != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d %s", res.Code, res.Raw)
	}
	created(t, post(t, app, "/academic-sessions", map[string]any{
		"academic_year_id": year, "name": "Term 1", "start_date": "2024-01-01", "end_date": "2024-06-30",
	}))
}

func TestYearIsUniquePerBranch(t *testing.T) {
	app := newAcademicsApp(t)
	created(t, post(t, app, "/academic-years", map[string]any{"branch_id": 1, "year": "2024"}))

	if res := post(t, app, "/academic-years", map[string]any{"branch_id": 1, "year": "2024"}); res.Code != fiber.StatusUnprocessableEntity {
		t.Fatalf("duplicate year: expected 422, got %d", res.Code)
	}
	if res := post(t, app, "/academic-years", map[string]any{"branch_id": 7, "year": "2025"}); res.Code != fiber.StatusUnprocessableEntity {
		t.Fatalf("unknown branch: expected 422, got %d", res.Code)
	}
	if res := post(t, app, "/academic-years", map[string]any{"branch_id": 1, "year": "24"}); res.Code != fiber.StatusUnprocessableEntity {
		t.Fatalf("short year: expected 422, got %d", res.Code)
	}
}

func TestClassroomCapacity(t *testing.T) {
	app := newAcademicsApp(t)
	class := created(t, post(t, app, "/classes", map[string]any{"branch_id": 1, "name": "Grade 6"}))

	res := post(t, app, "/classrooms", map[string]any{"class_id": class, "name": "6-A", "max_student": 30, "student_quantity": 31})
	if res.Code != fiber.StatusUnprocessableEntity {
		t.Fatalf("over capacity: expected 422, got %d %s", res.Code, res.Raw)
	}
	created(t, post(t, app, "/classrooms", map[string]any{"class_id": class, "name": "6-A", "max_student": 30, "student_quantity": 30}))
}

func TestSubjectAssignedOncePerClass(t *testing.T) {
	app := newAcademicsApp(t)
	class := created(t, post(t, app, "/classes", map[string]any{"branch_id": 1, "name": "Grade 7"}))
	subject := created(t, post(t, app, "/subjects", map[string]any{"name": "Mathematics", "code": "MATH-7"}))

	created(t, post(t, app, "/class-subjects", map[string]any{"class_id": class, "subject_id": subject}))
	res := post(t, app, "/class-subjects", map[string]any{"class_id": class, "subject_id": subject})
	if res.Code != fiber.StatusUnprocessableEntity {
		t.Fatalf("second assignment: expected 422, got %d", res.Code)
	}

	// a trashed subject cannot be assigned
	if res := testutil.JSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/a/subjects/%d", subject), "", nil); res.Code != fiber.StatusOK {
		t.Fatalf("delete subject: %d %s", res.Code, res.Raw)
	}
	other := created(t, post(t, app, "/classes", map[string]any{"branch_id": 1, "name": "Grade 8"}))
	if res := post(t, app, "/class-subjects", map[string]any{"class_id": other, "subject_id": subject}); res.Code != fiber.StatusUnprocessableEntity {
		t.Fatalf("trashed subject: expected 422, got %d", res.Code)
	}
}
