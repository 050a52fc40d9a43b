package helper

import (
	"reflect"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Envelope
=================================*/

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  bool     `json:"status"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Error   []string `json:"error,omitempty"`
}

func lenOf(v any) int {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	default:
		return -1
	}
}

/* ===============================
   Success
=================================*/

// JsonOK: 200 with data (detail, actions)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{Status: true, Message: message, Data: data})
}

// JsonCreated: 201 (POST)
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "created"
	}
	return c.Status(fiber.StatusCreated).JSON(Response{Status: true, Message: message, Data: data})
}

// JsonUpdated: 200 (PUT/PATCH)
func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "updated"
	}
	return JsonOK(c, message, data)
}

// JsonDeleted: 200 (DELETE)
func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "deleted"
	}
	return JsonOK(c, message, data)
}

// JsonList answers 204 with an empty body when there is nothing to list.
func JsonList(c *fiber.Ctx, data any) error {
	if lenOf(data) == 0 {
		return JsonNoContent(c)
	}
	return c.Status(fiber.StatusOK).JSON(Response{Status: true, Data: data})
}

func JsonNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

/* ===============================
   Errors
=================================*/

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = StatusMessage(status)
	}
	return c.Status(status).JSON(Response{Status: false, Message: message, Error: []string{message}})
}

// JsonValidationError: 422 with one message per failing field, in field order.
func JsonValidationError(c *fiber.Ctx, fe FieldErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(Response{
		Status:  false,
		Message: "validation failed",
		Error:   fe.Messages(),
	})
}

func StatusMessage(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "bad request"
	case fiber.StatusUnauthorized:
		return "unauthorized"
	case fiber.StatusForbidden:
		return "forbidden"
	case fiber.StatusNotFound:
		return "not found"
	case fiber.StatusConflict:
		return "conflict"
	case fiber.StatusUnprocessableEntity:
		return "validation failed"
	case fiber.StatusTooManyRequests:
		return "too many requests"
	default:
		return "internal server error"
	}
}
