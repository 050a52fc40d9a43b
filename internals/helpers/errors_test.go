package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", NotFound("branch"), fiber.StatusNotFound},
		{"not trashed", NotTrashed("branch"), fiber.StatusNotFound},
		{"gorm not found", gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{"pg unique", &pgconn.PgError{Code: "23505"}, fiber.StatusConflict},
		{"pg fk wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), fiber.StatusConflict},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062}, fiber.StatusConflict},
		{"gorm duplicated", gorm.ErrDuplicatedKey, fiber.StatusConflict},
		{"sqlite unique text", errors.New("constraint failed: UNIQUE constraint failed: branches.name (2067)"), fiber.StatusConflict},
		{"conflict", Conflict("no copy available"), fiber.StatusConflict},
		{"fields", FieldErrors{{Field: "name", Message: "bad"}}, fiber.StatusUnprocessableEntity},
		{"fiber", fiber.NewError(fiber.StatusBadRequest, "invalid id"), fiber.StatusBadRequest},
		{"unknown", errors.New("connection reset"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		if code, _ := ClassifyError(tc.err); code != tc.code {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.code, code)
		}
	}
}

func TestClassifyErrorMessages(t *testing.T) {
	if _, msg := ClassifyError(NotFound("branch")); msg != "branch not found" {
		t.Fatalf("unexpected message %q", msg)
	}
	if _, msg := ClassifyError(Conflict("no copy available")); msg != "no copy available" {
		t.Fatalf("unexpected message %q", msg)
	}
	if _, msg := ClassifyError(errors.New("password=secret")); msg != "internal server error" {
		t.Fatalf("internal errors must not leak, got %q", msg)
	}
}
