package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrNotTrashed   = errors.New("is not in trash")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("invalid credentials")
)

// NotFound returns an error matching ErrNotFound that reads "<name> not found".
func NotFound(name string) error {
	return fmt.Errorf("%s %w", name, ErrNotFound)
}

func NotTrashed(name string) error {
	return fmt.Errorf("%s %w", name, ErrNotTrashed)
}

func Conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}

/* ===============================
   Field errors
=================================*/

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors keeps the first message reported for each field, in order.
type FieldErrors []FieldError

func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (fe FieldErrors) Add(field, message string) FieldErrors {
	if fe.Has(field) {
		return fe
	}
	return append(fe, FieldError{Field: field, Message: message})
}

func (fe FieldErrors) Merge(other FieldErrors) FieldErrors {
	for _, e := range other {
		fe = fe.Add(e.Field, e.Message)
	}
	return fe
}

func (fe FieldErrors) Messages() []string {
	out := make([]string, 0, len(fe))
	for _, e := range fe {
		out = append(out, e.Message)
	}
	return out
}

func (fe FieldErrors) Error() string {
	return strings.Join(fe.Messages(), "; ")
}

/* ===============================
   Datastore error mapping
=================================*/

func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") ||
		strings.Contains(low, "unique constraint") ||
		strings.Contains(low, "sqlstate 23505")
}

func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1451 || myErr.Number == 1452
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "foreign key constraint") ||
		strings.Contains(low, "sqlstate 23503")
}

// ClassifyError maps any service or datastore error to a status code and a client-safe message.
func ClassifyError(err error) (int, string) {
	var fe FieldErrors
	var fiberErr *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusOK, ""
	case errors.As(err, &fe):
		return fiber.StatusUnprocessableEntity, fe.Error()
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNotTrashed):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound, "record not found"
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized, ErrUnauthorized.Error()
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict, strings.TrimPrefix(err.Error(), ErrConflict.Error()+": ")
	case IsUniqueViolation(err):
		return fiber.StatusConflict, "a record with the same unique value already exists"
	case IsForeignKeyViolation(err):
		return fiber.StatusConflict, "the record references missing data or is still referenced"
	default:
		return fiber.StatusInternalServerError, "internal server error"
	}
}

// WriteError answers with the envelope for err. Validation failures keep their per-field list.
func WriteError(c *fiber.Ctx, err error) error {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return JsonValidationError(c, fe)
	}
	code, msg := ClassifyError(err)
	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("reqid", fmt.Sprint(c.Locals("reqid"))).
			Str("path", c.Path()).
			Msg("request failed")
	}
	return JsonError(c, code, msg)
}
