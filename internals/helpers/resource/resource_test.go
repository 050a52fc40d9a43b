package resource

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/testutil"
)

type widget struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(50);not null;uniqueIndex:uq_widgets_name" json:"name"`
	GroupID uint   `gorm:"not null;default:0" json:"group_id"`
	Size    int    `gorm:"not null;default:0" json:"size"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (widget) TableName() string { return "widgets" }

func (w *widget) Check() helper.FieldErrors {
	var fe helper.FieldErrors
	if w.Size < 0 {
		fe = fe.Add("size", "size must be 0 or greater")
	}
	return fe
}

type widgetIn struct {
	Name    string `json:"name" validate:"required,min=2,max=50"`
	GroupID uint   `json:"group_id"`
	Size    int    `json:"size"`
}

func (in *widgetIn) Normalize() { in.Name = strings.TrimSpace(in.Name) }

type widgetPatch struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=50"`
	Size *int    `json:"size"`
}

func newWidgetApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t)
	if err := db.AutoMigrate(&widget{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	h := &Handler[widget, widgetIn, widgetPatch]{
		Service:   NewService[widget](db, Options{Name: "widget", SoftDelete: true}),
		Validator: helper.NewValidator(),
		NewModel: func(in *widgetIn) *widget {
			return &widget{Name: in.Name, GroupID: in.GroupID, Size: in.Size}
		},
		Apply: func(in *widgetPatch, w *widget) {
			if in.Name != nil {
				w.Name = strings.TrimSpace(*in.Name)
			}
			if in.Size != nil {
				w.Size = *in.Size
			}
		},
		Rules: func(w *widget) []Rule {
			return []Rule{Unique("name", "widgets", "name", w.Name).Except(w.ID)}
		},
		Filters: ByQuery("group_id"),
	}
	app := fiber.New()
	g := app.Group("/api")
	MountHandler(g, g, "/widgets", h)
	return app, db
}

type result struct {
	Code int
	Body helper.Response
	Raw  []byte
}

func call(t *testing.T, app *fiber.App, method, path string, body any) result {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := sonic.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	out := result{Code: resp.StatusCode, Raw: raw}
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &out.Body); err != nil {
			t.Fatalf("decode %q: %v", raw, err)
		}
	}
	return out
}

func dataMap(t *testing.T, r result) map[string]any {
	t.Helper()
	m, ok := r.Body.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T (%s)", r.Body.Data, r.Raw)
	}
	return m
}

func TestEmptyListIsNoContent(t *testing.T) {
	app, _ := newWidgetApp(t)
	r := call(t, app, "GET", "/api/widgets", nil)
	if r.Code != fiber.StatusNoContent || len(r.Raw) != 0 {
		t.Fatalf("expected 204 with empty body, got %d %q", r.Code, r.Raw)
	}
}

func TestCreateThenRead(t *testing.T) {
	app, _ := newWidgetApp(t)
	r := call(t, app, "POST", "/api/widgets", map[string]any{"name": "  Gear ", "size": 3})
	if r.Code != fiber.StatusCreated {
		t.Fatalf("create: %d %s", r.Code, r.Raw)
	}
	id := uint(dataMap(t, r)["id"].(float64))

	r = call(t, app, "GET", "/api/widgets/"+itoa(id), nil)
	if r.Code != fiber.StatusOK {
		t.Fatalf("show: %d %s", r.Code, r.Raw)
	}
	got := dataMap(t, r)
	if got["name"] != "Gear" || got["size"].(float64) != 3 {
		t.Fatalf("unexpected row %v", got)
	}

	r = call(t, app, "GET", "/api/widgets", nil)
	if r.Code != fiber.StatusOK {
		t.Fatalf("list: %d", r.Code)
	}
	if rows, ok := r.Body.Data.([]any); !ok || len(rows) != 1 {
		t.Fatalf("unexpected list %s", r.Raw)
	}
}

func TestValidationFailureWritesNothing(t *testing.T) {
	app, db := newWidgetApp(t)
	r := call(t, app, "POST", "/api/widgets", map[string]any{"name": "x", "size": -1})
	if r.Code != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d %s", r.Code, r.Raw)
	}
	if r.Body.Status || len(r.Body.Error) != 2 {
		t.Fatalf("expected one message per field, got %v", r.Body.Error)
	}
	var n int64
	db.Model(&widget{}).Count(&n)
	if n != 0 {
		t.Fatalf("expected no rows, got %d", n)
	}
}

func TestUniqueRuleReportsTakenName(t *testing.T) {
	app, _ := newWidgetApp(t)
	if r := call(t, app, "POST", "/api/widgets", map[string]any{"name": "Bolt"}); r.Code != fiber.StatusCreated {
		t.Fatalf("seed create: %d", r.Code)
	}
	r := call(t, app, "POST", "/api/widgets", map[string]any{"name": "Bolt"})
	if r.Code != fiber.StatusUnprocessableEntity || len(r.Body.Error) != 1 || r.Body.Error[0] != "name has already been taken" {
		t.Fatalf("unexpected response %d %s", r.Code, r.Raw)
	}
}

func TestPartialUpdateKeepsOtherFields(t *testing.T) {
	app, _ := newWidgetApp(t)
	r := call(t, app, "POST", "/api/widgets", map[string]any{"name": "Nut", "size": 2})
	id := itoa(uint(dataMap(t, r)["id"].(float64)))

	r = call(t, app, "PATCH", "/api/widgets/"+id, map[string]any{"size": 7})
	if r.Code != fiber.StatusOK {
		t.Fatalf("update: %d %s", r.Code, r.Raw)
	}
	r = call(t, app, "GET", "/api/widgets/"+id, nil)
	got := dataMap(t, r)
	if got["name"] != "Nut" || got["size"].(float64) != 7 {
		t.Fatalf("unexpected row after update %v", got)
	}

	// renaming to its own name is not a conflict
	if r := call(t, app, "PUT", "/api/widgets/"+id, map[string]any{"name": "Nut"}); r.Code != fiber.StatusOK {
		t.Fatalf("self rename: %d %s", r.Code, r.Raw)
	}
	if r := call(t, app, "PUT", "/api/widgets/"+id, map[string]any{"size": -4}); r.Code != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for invalid final state, got %d", r.Code)
	}
	if r := call(t, app, "PUT", "/api/widgets/999", map[string]any{"size": 1}); r.Code != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", r.Code)
	}
}

func TestDeleteRestoreRoundTrip(t *testing.T) {
	app, db := newWidgetApp(t)
	r := call(t, app, "POST", "/api/widgets", map[string]any{"name": "Cog", "size": 5, "group_id": 2})
	id := itoa(uint(dataMap(t, r)["id"].(float64)))
	var before widget
	db.First(&before, id)

	if r := call(t, app, "DELETE", "/api/widgets/"+id, nil); r.Code != fiber.StatusOK {
		t.Fatalf("delete: %d", r.Code)
	}
	if r := call(t, app, "GET", "/api/widgets/"+id, nil); r.Code != fiber.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", r.Code)
	}
	if r := call(t, app, "DELETE", "/api/widgets/"+id, nil); r.Code != fiber.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", r.Code)
	}
	r = call(t, app, "GET", "/api/widgets/trash", nil)
	if rows, ok := r.Body.Data.([]any); !ok || len(rows) != 1 {
		t.Fatalf("expected one trashed row, got %s", r.Raw)
	}

	if r := call(t, app, "POST", "/api/widgets/"+id+"/restore", nil); r.Code != fiber.StatusOK {
		t.Fatalf("restore: %d %s", r.Code, r.Raw)
	}
	var after widget
	if err := db.First(&after, id).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if after.Name != before.Name || after.Size != before.Size || after.GroupID != before.GroupID ||
		!after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("restore changed fields: before %+v after %+v", before, after)
	}

	// restoring an active row is a no-op
	if r := call(t, app, "POST", "/api/widgets/"+id+"/restore", nil); r.Code != fiber.StatusOK {
		t.Fatalf("second restore: %d", r.Code)
	}
}

func TestForceDeleteOnlyReachesTrash(t *testing.T) {
	app, db := newWidgetApp(t)
	r := call(t, app, "POST", "/api/widgets", map[string]any{"name": "Axle"})
	id := itoa(uint(dataMap(t, r)["id"].(float64)))

	r = call(t, app, "DELETE", "/api/widgets/"+id+"/force", nil)
	if r.Code != fiber.StatusNotFound || r.Body.Message != "widget is not in trash" {
		t.Fatalf("expected 404 not in trash, got %d %s", r.Code, r.Raw)
	}

	call(t, app, "DELETE", "/api/widgets/"+id, nil)
	if r := call(t, app, "DELETE", "/api/widgets/"+id+"/force", nil); r.Code != fiber.StatusOK {
		t.Fatalf("force delete: %d %s", r.Code, r.Raw)
	}
	var n int64
	db.Unscoped().Model(&widget{}).Count(&n)
	if n != 0 {
		t.Fatalf("expected row purged, %d left", n)
	}
	if r := call(t, app, "POST", "/api/widgets/"+id+"/restore", nil); r.Code != fiber.StatusNotFound {
		t.Fatalf("expected 404 restoring a purged row, got %d", r.Code)
	}
}

func TestRestoreAllHonoursFilters(t *testing.T) {
	app, db := newWidgetApp(t)
	for _, in := range []map[string]any{
		{"name": "A1", "group_id": 1}, {"name": "A2", "group_id": 1}, {"name": "B1", "group_id": 2},
	} {
		r := call(t, app, "POST", "/api/widgets", in)
		call(t, app, "DELETE", "/api/widgets/"+itoa(uint(dataMap(t, r)["id"].(float64))), nil)
	}
	r := call(t, app, "POST", "/api/widgets/restore-all?group_id=1", nil)
	if r.Code != fiber.StatusOK || dataMap(t, r)["restored"].(float64) != 2 {
		t.Fatalf("restore-all: %d %s", r.Code, r.Raw)
	}
	var active int64
	db.Model(&widget{}).Count(&active)
	if active != 2 {
		t.Fatalf("expected 2 active rows, got %d", active)
	}
	if r := call(t, app, "GET", "/api/widgets?group_id=abc", nil); r.Code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad filter, got %d", r.Code)
	}
}

func TestServiceErrors(t *testing.T) {
	db := testutil.OpenDB(t)
	if err := db.AutoMigrate(&widget{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc := NewService[widget](db, Options{Name: "widget", SoftDelete: true})
	ctx := context.Background()

	if err := svc.Delete(ctx, 42); !errors.Is(err, helper.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Create(ctx, &widget{Name: "Dup"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(ctx, &widget{Name: "Dup"})
	if code, _ := helper.ClassifyError(err); code != fiber.StatusConflict {
		t.Fatalf("expected conflict for duplicate insert, got %d (%v)", code, err)
	}
}

func TestRulesExistsWithinScope(t *testing.T) {
	db := testutil.OpenDB(t)
	if err := db.AutoMigrate(&widget{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.Create(&widget{Name: "Hub", GroupID: 3})
	ctx := context.Background()

	fe, err := CheckRules(ctx, db, []Rule{
		Exists("widget_id", "widgets", uint(1)),
		Exists("other_id", "widgets", uint(99)),
		Unique("name", "widgets", "name", "Hub").Within("group_id", uint(4)),
		Unique("alias", "widgets", "name", "Hub").Within("group_id", uint(3)).WithMessage("alias clash"),
		Exists("skipped", "widgets", (*uint)(nil)),
	}, nil)
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	msgs := fe.Messages()
	if len(msgs) != 2 || msgs[0] != "selected other_id is invalid" || msgs[1] != "alias clash" {
		t.Fatalf("unexpected messages %v", msgs)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestListPaging(t *testing.T) {
	app, db := newWidgetApp(t)
	for _, n := range []string{"aa", "bb", "cc", "dd", "ee"} {
		if err := db.Create(&widget{Name: n}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/widgets?page=2&per_page=2", nil), -1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Total-Count") != "5" || resp.Header.Get("X-Total-Pages") != "3" {
		t.Fatalf("unexpected paging headers %v", resp.Header)
	}
	raw, _ := io.ReadAll(resp.Body)
	var body helper.Response
	if err := sonic.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	rows, _ := body.Data.([]any)
	if len(rows) != 2 || rows[0].(map[string]any)["name"] != "cc" {
		t.Fatalf("page 2 should hold cc, bb: %s", raw)
	}

	if r := call(t, app, "GET", "/api/widgets?page=9&per_page=2", nil); r.Code != fiber.StatusNoContent {
		t.Fatalf("a page past the end is empty, got %d", r.Code)
	}
}

func TestRulesSkippedWhenInputRejected(t *testing.T) {
	app, _ := newWidgetApp(t)
	var ran int
	h := &Handler[widget, widgetIn, widgetPatch]{
		Service:   NewService[widget](testutil.OpenDB(t), Options{Name: "widget"}),
		Validator: helper.NewValidator(),
		NewModel:  func(in *widgetIn) *widget { return &widget{Name: in.Name, Size: in.Size} },
		Rules: func(w *widget) []Rule {
			ran++
			return nil
		},
	}
	app.Post("/counted", h.Create)

	for _, body := range []map[string]any{
		{"name": "x"},
		{"name": "Spring", "size": -1},
	} {
		if r := call(t, app, "POST", "/counted", body); r.Code != fiber.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for %v, got %d", body, r.Code)
		}
	}
	if ran != 0 {
		t.Fatalf("datastore rules ran %d times for rejected input", ran)
	}
}
