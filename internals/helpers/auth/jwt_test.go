package helper

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	now := time.Now()
	raw, exp, err := IssueAccessToken("s3cret", Scope{UserID: 9, RoleID: 2, BranchID: 4}, time.Hour, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if exp.Sub(now) < 59*time.Minute {
		t.Fatalf("unexpected expiry %s", exp)
	}
	claims, err := ParseAccessToken("s3cret", raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := claims.Scope(); got != (Scope{UserID: 9, RoleID: 2, BranchID: 4}) {
		t.Fatalf("unexpected scope %+v", got)
	}
	if _, err := ParseAccessToken("other", raw); err == nil {
		t.Fatalf("expected wrong secret to fail")
	}
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	raw, jti, _, err := IssueRefreshToken("s3cret", 5, time.Hour, time.Now())
	if err != nil || jti == "" {
		t.Fatalf("issue: %v %q", err, jti)
	}
	if _, err := ParseAccessToken("s3cret", raw); err == nil {
		t.Fatalf("refresh token accepted as access token")
	}
	claims, err := ParseRefreshToken("s3cret", raw)
	if err != nil || claims.UserID != 5 {
		t.Fatalf("parse refresh: %v %+v", err, claims)
	}
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	raw, _, err := IssueAccessToken("s3cret", Scope{UserID: 1}, time.Minute, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ParseAccessToken("s3cret", raw); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}

func TestTokenHashStable(t *testing.T) {
	a, b := TokenHash("tok", "k"), TokenHash("tok", "k")
	if a != b || len(a) != 64 || a == TokenHash("tok", "other") {
		t.Fatalf("unexpected hashes %q %q", a, b)
	}
	if RemainingTTL(time.Now().Add(-time.Minute), time.Now()) != 0 {
		t.Fatalf("expected zero remaining ttl")
	}
}
