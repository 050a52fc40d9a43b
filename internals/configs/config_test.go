package configs

import (
	"testing"
	"time"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_REFRESH_SECRET", "")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("DB_DRIVER", "mysql")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("unexpected access ttl %s", cfg.AccessTokenTTL)
	}
	if cfg.JWTRefreshSecret != "secret" {
		t.Fatalf("expected refresh secret to fall back to JWT_SECRET")
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowOrigins)
	}
	if cfg.DBDriver != "mysql" || cfg.Port != "3000" {
		t.Fatalf("unexpected db driver/port %q %q", cfg.DBDriver, cfg.Port)
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("SCHOOLADMIN_SET", "x")
	if v := GetEnv("SCHOOLADMIN_SET", "y"); v != "x" {
		t.Fatalf("expected x, got %q", v)
	}
	if v := GetEnv("SCHOOLADMIN_SURELY_UNSET_KEY", "y"); v != "y" {
		t.Fatalf("expected default, got %q", v)
	}
}
