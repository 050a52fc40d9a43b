package middlewares

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"schooladmin_backend/internals/configs"
)

func TestSetupMiddlewaresRecoversAndCounts(t *testing.T) {
	app := fiber.New()
	m := NewMetrics()
	SetupMiddlewares(app, &configs.Config{CORSAllowOrigins: []string{"http://a.test"}}, m)
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", resp.StatusCode)
	}

	if _, err := app.Test(httptest.NewRequest("GET", "/ok", nil), -1); err != nil {
		t.Fatalf("request: %v", err)
	}
	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `http_requests_total{method="GET",route="/ok",status="200"} 1`) {
		t.Fatalf("request counter missing from metrics output")
	}
}

func TestLoginRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Post("/login", LoginRateLimiter(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	var last int
	for i := 0; i < 6; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/login", nil), -1)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		last = resp.StatusCode
	}
	if last != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429 on the sixth attempt, got %d", last)
	}
}
