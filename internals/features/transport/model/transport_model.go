package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/refs"
)

type DriverModel struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"type:varchar(100);not null" json:"name"`
	Phone         string `gorm:"type:varchar(20);not null;uniqueIndex:uq_drivers_phone" json:"phone"`
	LicenseNumber string `gorm:"type:varchar(50);not null;uniqueIndex:uq_drivers_license_number" json:"license_number"`
	Address       string `gorm:"type:varchar(255)" json:"address"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (DriverModel) TableName() string { return "drivers" }

type TransportRouteModel struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(100);not null;uniqueIndex:uq_transport_routes_name" json:"name"`
	StartPoint string `gorm:"type:varchar(150);not null" json:"start_point"`
	EndPoint   string `gorm:"type:varchar(150);not null" json:"end_point"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TransportRouteModel) TableName() string { return "transport_routes" }

type TransportationModel struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	RouteID    uint           `gorm:"not null;index" json:"route_id"`
	DriverID   uint           `gorm:"not null;index" json:"driver_id"`
	VehicleReg string         `gorm:"type:varchar(40);not null;uniqueIndex:uq_transportations_vehicle_reg" json:"vehicle_reg"`
	PickupTime datatypes.Time `gorm:"not null" json:"pickup_time"`

	Route  *refs.TransportRouteRef `gorm:"foreignKey:RouteID" json:"route,omitempty"`
	Driver *refs.DriverRef         `gorm:"foreignKey:DriverID" json:"driver,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TransportationModel) TableName() string { return "transportations" }
