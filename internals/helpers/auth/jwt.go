package helper

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// AccessClaims is what the guard reads back into a Scope.
type AccessClaims struct {
	UserID   uint   `json:"id"`
	RoleID   uint   `json:"role_id"`
	BranchID uint   `json:"branch_id"`
	Typ      string `json:"typ"`
	jwt.RegisteredClaims
}

func (c *AccessClaims) Scope() Scope {
	return Scope{UserID: c.UserID, RoleID: c.RoleID, BranchID: c.BranchID}
}

type RefreshClaims struct {
	UserID uint   `json:"id"`
	Typ    string `json:"typ"`
	jwt.RegisteredClaims
}

func registered(now time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Second)),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func IssueAccessToken(secret string, sc Scope, ttl time.Duration, now time.Time) (string, time.Time, error) {
	claims := AccessClaims{
		UserID: sc.UserID, RoleID: sc.RoleID, BranchID: sc.BranchID,
		Typ:              TokenTypeAccess,
		RegisteredClaims: registered(now, ttl),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return raw, claims.ExpiresAt.Time, err
}

// IssueRefreshToken returns the signed token, its jti and expiry.
func IssueRefreshToken(secret string, userID uint, ttl time.Duration, now time.Time) (string, string, time.Time, error) {
	claims := RefreshClaims{UserID: userID, Typ: TokenTypeRefresh, RegisteredClaims: registered(now, ttl)}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return raw, claims.ID, claims.ExpiresAt.Time, err
}

func hmacKey(secret string) jwt.Keyfunc {
	return func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}
}

func ParseAccessToken(secret, raw string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, hmacKey(secret))
	if err != nil || !tok.Valid || claims.Typ != TokenTypeAccess || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func ParseRefreshToken(secret, raw string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, hmacKey(secret))
	if err != nil || !tok.Valid || claims.Typ != TokenTypeRefresh || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TokenHash is the hex HMAC-SHA256 stored in place of a raw token.
func TokenHash(raw, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(raw))
	return hex.EncodeToString(m.Sum(nil))
}

// RemainingTTL is how long a token stays valid after now, never negative.
func RemainingTTL(exp, now time.Time) time.Duration {
	if d := exp.Sub(now); d > 0 {
		return d
	}
	return 0
}
