// Package testutil builds throwaway datastores and credentials for package tests.
package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "schooladmin_backend/internals/databases"
	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
	"schooladmin_backend/internals/seeds"
)

const Secret = "test-secret"

// OpenDB opens an empty in-memory database with foreign keys enforced.
// One connection only: every query in a test must go through the same handle or its tx.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// NewDB is OpenDB plus the full schema, roles and lookups.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := OpenDB(t)
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := seeds.RunAllSeeds(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

// Token signs an access token for sc with Secret.
func Token(t *testing.T, sc helperAuth.Scope) string {
	t.Helper()
	raw, _, err := helperAuth.IssueAccessToken(Secret, sc, time.Hour, time.Now())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

// Bearer is Token formatted for the Authorization header.
func Bearer(t *testing.T, sc helperAuth.Scope) string {
	return "Bearer " + Token(t, sc)
}

/* ============================================
   HTTP
============================================ */

// Result is a decoded envelope plus the raw body.
type Result struct {
	Code int
	Body helper.Response
	Raw  []byte
}

// Do sends req through app and decodes the envelope when there is a body.
func Do(t *testing.T, app *fiber.App, req *http.Request) Result {
	t.Helper()
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	out := Result{Code: resp.StatusCode, Raw: raw}
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &out.Body); err != nil {
			t.Fatalf("decode %q: %v", raw, err)
		}
	}
	return out
}

// JSON sends body as JSON. authz is the Authorization header, empty for none.
func JSON(t *testing.T, app *fiber.App, method, path, authz string, body any) Result {
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
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authz != "" {
		req.Header.Set(fiber.HeaderAuthorization, authz)
	}
	return Do(t, app, req)
}

// Data returns the envelope data as an object.
func (r Result) Data(t *testing.T) map[string]any {
	t.Helper()
	m, ok := r.Body.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T (%s)", r.Body.Data, r.Raw)
	}
	return m
}
