package helper

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Cookie and header names shared by the auth controller and the guard.
const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
	CSRFCookie    = "csrf_token"
	CSRFHeader    = "X-CSRF-Token"

	locRawToken = "raw_token"
)

// GetRawAccessToken: the token the guard accepted, else Bearer, else the access cookie.
func GetRawAccessToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(locRawToken).(string); ok && v != "" {
		return v
	}
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(authz) > 7 && strings.EqualFold(authz[:7], "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return strings.TrimSpace(c.Cookies(AccessCookie))
}

func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies(RefreshCookie))
}

func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if raw = strings.TrimSpace(raw); raw != "" {
		c.Locals(locRawToken, raw)
	}
}

// CheckCSRFCookieHeader is the double-submit check for cookie-authenticated writes:
// the X-CSRF-Token header must equal the csrf_token cookie.
func CheckCSRFCookieHeader(c *fiber.Ctx) error {
	cookie := strings.TrimSpace(c.Cookies(CSRFCookie))
	header := strings.TrimSpace(c.Get(CSRFHeader))
	switch {
	case cookie == "":
		return fiber.NewError(fiber.StatusForbidden, "CSRF token missing (cookie)")
	case header == "":
		return fiber.NewError(fiber.StatusForbidden, "CSRF token missing (header)")
	case subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) != 1:
		return fiber.NewError(fiber.StatusForbidden, "CSRF token mismatch")
	}
	return nil
}
