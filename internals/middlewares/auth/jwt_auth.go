package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(ctx context.Context, rawToken string) (bool, error) // true when revoked
	UserChecker         func(ctx context.Context, userID uint) (bool, error)     // true when the account may sign in
	AllowCookieFallback bool                                                     // access_token cookie when no Bearer
}

func bearer(c *fiber.Ctx) string {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(authz) > 7 && strings.EqualFold(authz[:7], "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return ""
}

func safeMethod(m string) bool {
	return m == fiber.MethodGet || m == fiber.MethodHead || m == fiber.MethodOptions
}

// AuthJWT verifies the access token and stores the caller Scope in locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) Bearer first, cookie only when allowed
		raw := bearer(c)
		fromCookie := false
		if raw == "" && o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies(helper.AccessCookie))
			fromCookie = raw != ""
		}
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		if fromCookie && !safeMethod(c.Method()) {
			if err := helper.CheckCSRFCookieHeader(c); err != nil {
				return helper.WriteError(c, err)
			}
		}

		// 2) Signature, expiry, token type
		claims, err := helperAuth.ParseAccessToken(secret, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid token")
		}

		// 3) Revocation
		if o.BlacklistChecker != nil {
			revoked, err := o.BlacklistChecker(c.UserContext(), raw)
			if err != nil {
				log.Error().Err(err).Msg("blacklist check failed")
				return helper.JsonError(c, fiber.StatusInternalServerError, "")
			}
			if revoked {
				return helper.JsonError(c, fiber.StatusUnauthorized, "token revoked")
			}
		}

		// 4) Account still usable
		if o.UserChecker != nil {
			ok, err := o.UserChecker(c.UserContext(), claims.UserID)
			if err != nil {
				return helper.WriteError(c, err)
			}
			if !ok {
				return helper.JsonError(c, fiber.StatusUnauthorized, "account is not active")
			}
		}

		helper.SetRawAccessToken(c, raw)
		helperAuth.SetScope(c, claims.Scope())
		return c.Next()
	}
}
