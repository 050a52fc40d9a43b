package dto

import (
	"strings"

	"gorm.io/datatypes"

	"schooladmin_backend/internals/features/transport/model"
	helper "schooladmin_backend/internals/helpers"
)

/* =========================================================
 * DRIVER
 * ========================================================= */

type CreateDriverRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Phone         string `json:"phone" validate:"required,min=6,max=20"`
	LicenseNumber string `json:"license_number" validate:"required,min=3,max=50"`
	Address       string `json:"address" validate:"omitempty,max=255"`
}

func (r *CreateDriverRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.LicenseNumber = strings.ToUpper(strings.TrimSpace(r.LicenseNumber))
	r.Address = strings.TrimSpace(r.Address)
}

func (r *CreateDriverRequest) ToModel() *model.DriverModel {
	return &model.DriverModel{Name: r.Name, Phone: r.Phone, LicenseNumber: r.LicenseNumber, Address: r.Address}
}

type UpdateDriverRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone         *string `json:"phone" validate:"omitempty,min=6,max=20"`
	LicenseNumber *string `json:"license_number" validate:"omitempty,min=3,max=50"`
	Address       *string `json:"address" validate:"omitempty,max=255"`
}

func (r *UpdateDriverRequest) Normalize() {
	trimPtr(r.Name)
	trimPtr(r.Phone)
	upperPtr(r.LicenseNumber)
	trimPtr(r.Address)
}

func (r *UpdateDriverRequest) ApplyTo(m *model.DriverModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	if r.LicenseNumber != nil {
		m.LicenseNumber = *r.LicenseNumber
	}
	if r.Address != nil {
		m.Address = *r.Address
	}
}

/* =========================================================
 * ROUTE
 * ========================================================= */

type CreateRouteRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	StartPoint string `json:"start_point" validate:"required,max=150"`
	EndPoint   string `json:"end_point" validate:"required,max=150"`
}

func (r *CreateRouteRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.StartPoint = strings.TrimSpace(r.StartPoint)
	r.EndPoint = strings.TrimSpace(r.EndPoint)
}

func (r *CreateRouteRequest) ToModel() *model.TransportRouteModel {
	return &model.TransportRouteModel{Name: r.Name, StartPoint: r.StartPoint, EndPoint: r.EndPoint}
}

type UpdateRouteRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=100"`
	StartPoint *string `json:"start_point" validate:"omitempty,min=1,max=150"`
	EndPoint   *string `json:"end_point" validate:"omitempty,min=1,max=150"`
}

func (r *UpdateRouteRequest) Normalize() {
	trimPtr(r.Name)
	trimPtr(r.StartPoint)
	trimPtr(r.EndPoint)
}

func (r *UpdateRouteRequest) ApplyTo(m *model.TransportRouteModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.StartPoint != nil {
		m.StartPoint = *r.StartPoint
	}
	if r.EndPoint != nil {
		m.EndPoint = *r.EndPoint
	}
}

/* =========================================================
 * TRANSPORTATION (vehicle on a route)
 * ========================================================= */

type CreateTransportationRequest struct {
	RouteID    uint   `json:"route_id" validate:"required,min=1"`
	DriverID   uint   `json:"driver_id" validate:"required,min=1"`
	VehicleReg string `json:"vehicle_reg" validate:"required,max=40,vehicle_reg"`
	PickupTime string `json:"pickup_time" validate:"required,hhmm"`
}

// Registration plates are compared upper-case.
func (r *CreateTransportationRequest) Normalize() {
	r.VehicleReg = strings.ToUpper(strings.TrimSpace(r.VehicleReg))
	r.PickupTime = strings.TrimSpace(r.PickupTime)
}

func (r *CreateTransportationRequest) ToModel() *model.TransportationModel {
	return &model.TransportationModel{
		RouteID:    r.RouteID,
		DriverID:   r.DriverID,
		VehicleReg: r.VehicleReg,
		PickupTime: clock(r.PickupTime),
	}
}

type UpdateTransportationRequest struct {
	RouteID    *uint   `json:"route_id" validate:"omitempty,min=1"`
	DriverID   *uint   `json:"driver_id" validate:"omitempty,min=1"`
	VehicleReg *string `json:"vehicle_reg" validate:"omitempty,max=40,vehicle_reg"`
	PickupTime *string `json:"pickup_time" validate:"omitempty,hhmm"`
}

func (r *UpdateTransportationRequest) Normalize() {
	upperPtr(r.VehicleReg)
	trimPtr(r.PickupTime)
}

func (r *UpdateTransportationRequest) ApplyTo(m *model.TransportationModel) {
	if r.RouteID != nil {
		m.RouteID = *r.RouteID
	}
	if r.DriverID != nil {
		m.DriverID = *r.DriverID
	}
	if r.VehicleReg != nil {
		m.VehicleReg = *r.VehicleReg
	}
	if r.PickupTime != nil {
		m.PickupTime = clock(*r.PickupTime)
	}
}

/* =========================================================
 * HELPERS
 * ========================================================= */

// clock converts a validated HH:MM into a time-of-day column value.
func clock(s string) datatypes.Time {
	h, m, _ := helper.ParseClock(s)
	return datatypes.NewTime(h, m, 0, 0)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func upperPtr(s *string) {
	if s != nil {
		*s = strings.ToUpper(strings.TrimSpace(*s))
	}
}
