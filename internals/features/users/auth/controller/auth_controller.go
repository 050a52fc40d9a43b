package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"schooladmin_backend/internals/features/users/auth/dto"
	"schooladmin_backend/internals/features/users/auth/service"
	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

type AuthController struct {
	Svc          *service.Service
	Validator    *helper.Validator
	SecureCookie bool
}

func NewAuthController(svc *service.Service, v *helper.Validator, secureCookie bool) *AuthController {
	return &AuthController{Svc: svc, Validator: v, SecureCookie: secureCookie}
}

func meta(c *fiber.Ctx) service.ClientMeta {
	return service.ClientMeta{UserAgent: c.Get(fiber.HeaderUserAgent), IP: c.IP()}
}

// bind parses and validates a body into T.
func bind[T any](c *fiber.Ctx, v *helper.Validator) (*T, error) {
	var in T
	if err := c.BodyParser(&in); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if n, ok := any(&in).(interface{ Normalize() }); ok {
		n.Normalize()
	}
	if fe := v.Struct(&in); len(fe) > 0 {
		return nil, fe
	}
	return &in, nil
}

/* ==========================
   Cookies
========================== */

func (ac *AuthController) setAuthCookies(c *fiber.Ctx, tp *service.TokenPair) {
	sameSite := fiber.CookieSameSiteLaxMode
	if ac.SecureCookie {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessCookie,
		Value:    tp.AccessToken,
		HTTPOnly: true,
		Secure:   ac.SecureCookie,
		SameSite: sameSite,
		Path:     "/",
		Expires:  tp.ExpiresAt,
	})
	c.Cookie(&fiber.Cookie{
		Name:     helper.RefreshCookie,
		Value:    tp.RefreshToken,
		HTTPOnly: true,
		Secure:   ac.SecureCookie,
		SameSite: sameSite,
		Path:     "/api/auth",
		Expires:  tp.RefreshExpiresAt,
	})
}

func (ac *AuthController) clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	for name, path := range map[string]string{helper.AccessCookie: "/", helper.RefreshCookie: "/api/auth"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   ac.SecureCookie,
			Path:     path,
			Expires:  expired,
			MaxAge:   -1,
		})
	}
}

/* ==========================
   Handlers
========================== */

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	in, err := bind[dto.LoginRequest](c, ac.Validator)
	if err != nil {
		return helper.WriteError(c, err)
	}
	tp, err := ac.Svc.Login(c.UserContext(), in.RegistrationID, in.Password, meta(c))
	if err != nil {
		return helper.WriteError(c, err)
	}
	ac.setAuthCookies(c, tp)
	return helper.JsonOK(c, "login successful", tp)
}

// POST /api/auth/login-google
func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	in, err := bind[dto.GoogleLoginRequest](c, ac.Validator)
	if err != nil {
		return helper.WriteError(c, err)
	}
	tp, err := ac.Svc.LoginGoogle(c.UserContext(), in.IDToken, meta(c))
	if err != nil {
		return helper.WriteError(c, err)
	}
	ac.setAuthCookies(c, tp)
	return helper.JsonOK(c, "login successful", tp)
}

// POST /api/auth/refresh-token (body or refresh_token cookie)
func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	_ = c.BodyParser(&in)
	raw := strings.TrimSpace(in.RefreshToken)
	if raw == "" {
		raw = helper.GetRefreshTokenFromCookie(c)
		if raw != "" {
			if err := helper.CheckCSRFCookieHeader(c); err != nil {
				return helper.WriteError(c, err)
			}
		}
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "refresh token is missing")
	}

	tp, err := ac.Svc.Refresh(c.UserContext(), raw, meta(c))
	if err != nil {
		return helper.WriteError(c, err)
	}
	ac.setAuthCookies(c, tp)
	return helper.JsonOK(c, "token refreshed", tp)
}

// POST /api/auth/logout (guarded)
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	_ = c.BodyParser(&in)
	refresh := strings.TrimSpace(in.RefreshToken)
	if refresh == "" {
		refresh = helper.GetRefreshTokenFromCookie(c)
	}

	if err := ac.Svc.Logout(c.UserContext(), helper.GetRawAccessToken(c), refresh); err != nil {
		return helper.WriteError(c, err)
	}
	ac.clearAuthCookies(c)
	return helper.JsonOK(c, "logout successful", nil)
}

// GET /api/auth/me (guarded)
func (ac *AuthController) Me(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFrom(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	me, err := ac.Svc.Me(c.UserContext(), sc)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonOK(c, "", me)
}

// POST /api/auth/change-password (guarded)
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFrom(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	in, err := bind[dto.ChangePasswordRequest](c, ac.Validator)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if err := ac.Svc.ChangePassword(c.UserContext(), sc, in.CurrentPassword, in.NewPassword); err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonUpdated(c, "password changed", nil)
}
