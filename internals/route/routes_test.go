package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schooladmin_backend/internals/configs"
	"schooladmin_backend/internals/constants"
	orgModel "schooladmin_backend/internals/features/organization/model"
	authService "schooladmin_backend/internals/features/users/auth/service"
	"schooladmin_backend/internals/features/users/identity"
	userModel "schooladmin_backend/internals/features/users/model"
	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
	"schooladmin_backend/internals/helpers/storage"
	"schooladmin_backend/internals/middlewares"
	"schooladmin_backend/internals/testutil"
)

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	if err := db.Create(&orgModel.BranchModel{Name: "Main Campus"}).Error; err != nil {
		t.Fatalf("branch: %v", err)
	}
	for _, seed := range []struct {
		regID string
		role  uint
	}{{"2401001001", constants.RoleAdmin}, {"2401002001", constants.RoleTeacher}} {
		u := &userModel.UserModel{RoleID: seed.role, BranchID: 1, RegistrationID: seed.regID, Password: "x", IsActive: true}
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("user: %v", err)
		}
	}

	dir := t.TempDir()
	cfg := &configs.Config{AppEnv: "test", JWTSecret: testutil.Secret, StorageDriver: "local", StoragePublicDir: dir}
	store, err := storage.NewLocalStore(dir, "http://localhost/storage")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	metrics := middlewares.NewMetrics()

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Use(metrics.Middleware())
	SetupRoutes(app, Deps{
		DB:        db,
		Cfg:       cfg,
		Validator: helper.NewValidator(),
		Store:     store,
		Alloc:     identity.NewAllocator(),
		Auth:      authService.New(db, authService.Config{AccessSecret: testutil.Secret}, nil),
		Metrics:   metrics,
	})
	return app, db
}

var (
	adminScope   = helperAuth.Scope{UserID: 1, RoleID: constants.RoleAdmin, BranchID: 1}
	teacherScope = helperAuth.Scope{UserID: 2, RoleID: constants.RoleTeacher, BranchID: 1}
)

func TestHealthAndMetrics(t *testing.T) {
	app, _ := newApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil), -1)
	if err != nil || resp.StatusCode != fiber.StatusOK {
		t.Fatalf("health: %v %v", resp, err)
	}
	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil), -1)
	if err != nil || resp.StatusCode != fiber.StatusOK {
		t.Fatalf("metrics: %v %v", resp, err)
	}
}

func TestEmptyListIsNoContent(t *testing.T) {
	app, _ := newApp(t)

	res := testutil.JSON(t, app, fiber.MethodGet, "/api/u/notices", testutil.Bearer(t, teacherScope), nil)
	if res.Code != fiber.StatusNoContent || len(res.Raw) != 0 {
		t.Fatalf("expected empty 204, got %d %s", res.Code, res.Raw)
	}
}

func TestGroupsEnforceAuthAndRole(t *testing.T) {
	app, _ := newApp(t)

	if res := testutil.JSON(t, app, fiber.MethodGet, "/api/u/branches", "", nil); res.Code != fiber.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", res.Code)
	}
	if res := testutil.JSON(t, app, fiber.MethodGet, "/api/u/branches", "Bearer garbage", nil); res.Code != fiber.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", res.Code)
	}

	body := map[string]any{"name": "North Campus"}
	if res := testutil.JSON(t, app, fiber.MethodPost, "/api/a/branches", testutil.Bearer(t, teacherScope), body); res.Code != fiber.StatusForbidden {
		t.Fatalf("teacher on admin group: expected 403, got %d", res.Code)
	}
	if res := testutil.JSON(t, app, fiber.MethodPost, "/api/l/library/books", testutil.Bearer(t, teacherScope), map[string]any{}); res.Code != fiber.StatusForbidden {
		t.Fatalf("teacher on library staff group: expected 403, got %d", res.Code)
	}

	res := testutil.JSON(t, app, fiber.MethodPost, "/api/a/branches", testutil.Bearer(t, adminScope), body)
	if res.Code != fiber.StatusCreated {
		t.Fatalf("admin create: expected 201, got %d %s", res.Code, res.Raw)
	}
	if res := testutil.JSON(t, app, fiber.MethodGet, "/api/u/branches", testutil.Bearer(t, teacherScope), nil); res.Code != fiber.StatusOK {
		t.Fatalf("teacher read: expected 200, got %d", res.Code)
	}
}

func TestInvalidWriteInsertsNothing(t *testing.T) {
	app, db := newApp(t)

	res := testutil.JSON(t, app, fiber.MethodPost, "/api/a/branches", testutil.Bearer(t, adminScope), map[string]any{"name": "N"})
	if res.Code != fiber.StatusUnprocessableEntity || len(res.Body.Error) == 0 {
		t.Fatalf("expected 422 with messages, got %d %s", res.Code, res.Raw)
	}
	var n int64
	db.Model(&orgModel.BranchModel{}).Count(&n)
	if n != 1 {
		t.Fatalf("invalid input must not insert, have %d branches", n)
	}
}

func TestDeactivatedUserIsRejected(t *testing.T) {
	app, db := newApp(t)
	authz := testutil.Bearer(t, teacherScope)

	db.Model(&userModel.UserModel{}).Where("id = ?", teacherScope.UserID).Update("is_active", false)
	if res := testutil.JSON(t, app, fiber.MethodGet, "/api/u/branches", authz, nil); res.Code != fiber.StatusUnauthorized {
		t.Fatalf("inactive account: expected 401, got %d", res.Code)
	}
}

func TestLoginMeLogout(t *testing.T) {
	app, db := newApp(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	db.Model(&userModel.UserModel{}).Where("id = ?", teacherScope.UserID).Update("password", string(hash))

	if res := testutil.JSON(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]any{
		"registration_id": "2401002001", "password": "wrong-pass",
	}); res.Code != fiber.StatusUnauthorized {
		t.Fatalf("bad password: expected 401, got %d", res.Code)
	}

	res := testutil.JSON(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]any{
		"registration_id": "2401002001", "password": "secret-pass",
	})
	if res.Code != fiber.StatusOK {
		t.Fatalf("login: %d %s", res.Code, res.Raw)
	}
	access, _ := res.Data(t)["access_token"].(string)
	if access == "" {
		t.Fatalf("no access token in %s", res.Raw)
	}
	authz := "Bearer " + access

	me := testutil.JSON(t, app, fiber.MethodGet, "/api/auth/me", authz, nil)
	if me.Code != fiber.StatusOK {
		t.Fatalf("me: %d %s", me.Code, me.Raw)
	}

	if res := testutil.JSON(t, app, fiber.MethodPost, "/api/auth/logout", authz, nil); res.Code != fiber.StatusOK {
		t.Fatalf("logout: %d %s", res.Code, res.Raw)
	}
	if res := testutil.JSON(t, app, fiber.MethodGet, "/api/auth/me", authz, nil); res.Code != fiber.StatusUnauthorized {
		t.Fatalf("a logged-out token must be refused, got %d", res.Code)
	}
}
