package helper

import (
	"strings"
	"testing"
)

type sampleInput struct {
	Name       string `json:"name" validate:"required,min=3,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Year       string `json:"year" validate:"required,year4"`
	VehicleReg string `json:"vehicle_reg" validate:"omitempty,vehicle_reg"`
	Pickup     string `json:"pickup_time" validate:"omitempty,hhmm"`
}

func TestValidatorFirstMessagePerFieldInOrder(t *testing.T) {
	v := NewValidator()

	fe := v.Struct(&sampleInput{Name: "ab", Email: "nope", Year: "24", VehicleReg: "dhaka-metro", Pickup: "7:5"})
	if len(fe) != 5 {
		t.Fatalf("expected 5 field errors, got %d: %v", len(fe), fe)
	}
	want := []string{"name", "email", "year", "vehicle_reg", "pickup_time"}
	for i, f := range want {
		if fe[i].Field != f {
			t.Fatalf("field %d: expected %s, got %s", i, f, fe[i].Field)
		}
	}
	if !strings.Contains(fe[0].Message, "name must be at least 3 characters") {
		t.Fatalf("unexpected name message %q", fe[0].Message)
	}
	if !strings.Contains(fe[2].Message, "4-digit year") {
		t.Fatalf("unexpected year message %q", fe[2].Message)
	}
}

func TestValidatorPasses(t *testing.T) {
	v := NewValidator()
	fe := v.Struct(&sampleInput{Name: "Main", Email: "a@b.co", Year: "2024", VehicleReg: "DHAKA-METRO-GA-1234", Pickup: "07:30"})
	if fe != nil {
		t.Fatalf("expected no errors, got %v", fe)
	}
}

func TestFieldErrorsKeepFirst(t *testing.T) {
	var fe FieldErrors
	fe = fe.Add("name", "first").Add("name", "second").Add("code", "taken")
	if len(fe) != 2 || fe[0].Message != "first" {
		t.Fatalf("unexpected %v", fe)
	}
	if got := fe.Messages(); got[1] != "taken" {
		t.Fatalf("unexpected messages %v", got)
	}
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("08:45")
	if err != nil || h != 8 || m != 45 {
		t.Fatalf("got %d %d %v", h, m, err)
	}
	for _, bad := range []string{"", "8:45", "24:00", "12:60", "ab:cd"} {
		if _, _, err := ParseClock(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
