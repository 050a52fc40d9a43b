package route

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/testutil"
)

func newTransportApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testutil.NewDB(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	TransportAdminRoutes(app.Group("/api/a"), db, helper.NewValidator())
	return app
}

func create(t *testing.T, app *fiber.App, path string, body map[string]any) testutil.Result {
	t.Helper()
	return testutil.JSON(t, app, fiber.MethodPost, "/api/a/transport"+path, "", body)
}

func idOf(t *testing.T, res testutil.Result) uint {
	t.Helper()
	if res.Code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d %s", res.Code, res.Raw)
	}
	return uint(res.Data(t)["id"].(float64))
}

func seedRouteAndDriver(t *testing.T, app *fiber.App) (uint, uint) {
	t.Helper()
	route := idOf(t, create(t, app, "/routes", map[string]any{"name": "North Loop", "start_point": "Gate 1", "end_point": "Depot"}))
	driver := idOf(t, create(t, app, "/drivers", map[string]any{"name": "Rahim", "phone": "01711111111", "license_number": "DL-1001"}))
	return route, driver
}

func TestVehicleRegIsUpperCased(t *testing.T) {
	app := newTransportApp(t)
	route, driver := seedRouteAndDriver(t, app)

	res := create(t, app, "/vehicles", map[string]any{
		"route_id": route, "driver_id": driver, "vehicle_reg": "dhaka-metro-ga-1234", "pickup_time": "07:30",
	})
	id := idOf(t, res)
	got := res.Data(t)
	if got["vehicle_reg"] != "DHAKA-METRO-GA-1234" {
		t.Fatalf("vehicle_reg not normalised: %v", got["vehicle_reg"])
	}

	show := testutil.JSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/a/transport/vehicles/%d", id), "", nil)
	if pt, _ := show.Data(t)["pickup_time"].(string); !strings.HasPrefix(pt, "07:30") {
		t.Fatalf("pickup_time round trip: %s", show.Raw)
	}

	dup := create(t, app, "/vehicles", map[string]any{
		"route_id": route, "driver_id": driver, "vehicle_reg": "DHAKA-METRO-GA-1234", "pickup_time": "08:00",
	})
	if dup.Code != fiber.StatusUnprocessableEntity {
		t.Fatalf("duplicate vehicle_reg: expected 422, got %d", dup.Code)
	}
}

func TestVehicleRejectsBadInput(t *testing.T) {
	app := newTransportApp(t)
	route, driver := seedRouteAndDriver(t, app)

	for _, c := range []struct {
		name string
		body map[string]any
	}{
		{"bad clock", map[string]any{"route_id": route, "driver_id": driver, "vehicle_reg": "DHAKA-GA-1", "pickup_time": "25:00"}},
		{"bad plate", map[string]any{"route_id": route, "driver_id": driver, "vehicle_reg": "12 34", "pickup_time": "07:00"}},
		{"unknown driver", map[string]any{"route_id": route, "driver_id": 99, "vehicle_reg": "DHAKA-GA-2", "pickup_time": "07:00"}},
	} {
		if res := create(t, app, "/vehicles", c.body); res.Code != fiber.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %d %s", c.name, res.Code, res.Raw)
		}
	}
}

func TestDriverPhoneIsUnique(t *testing.T) {
	app := newTransportApp(t)
	seedRouteAndDriver(t, app)

	res := create(t, app, "/drivers", map[string]any{"name": "Karim", "phone": "01711111111", "license_number": "DL-2002"})
	if res.Code != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", res.Code)
	}
}
