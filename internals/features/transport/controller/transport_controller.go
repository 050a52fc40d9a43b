package controller

import (
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/transport/dto"
	"schooladmin_backend/internals/features/transport/model"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/resource"
)

type (
	DriverHandler         = resource.Handler[model.DriverModel, dto.CreateDriverRequest, dto.UpdateDriverRequest]
	RouteHandler          = resource.Handler[model.TransportRouteModel, dto.CreateRouteRequest, dto.UpdateRouteRequest]
	TransportationHandler = resource.Handler[model.TransportationModel, dto.CreateTransportationRequest, dto.UpdateTransportationRequest]
)

func NewDriverHandler(db *gorm.DB, v *helper.Validator) *DriverHandler {
	return &DriverHandler{
		Service:   resource.NewService[model.DriverModel](db, resource.Options{Name: "driver", SoftDelete: true}),
		Validator: v,
		NewModel:  (*dto.CreateDriverRequest).ToModel,
		Apply:     (*dto.UpdateDriverRequest).ApplyTo,
		Rules: func(m *model.DriverModel) []resource.Rule {
			return []resource.Rule{
				resource.Unique("phone", "drivers", "phone", m.Phone).Except(m.ID),
				resource.Unique("license_number", "drivers", "license_number", m.LicenseNumber).Except(m.ID),
			}
		},
	}
}

func NewRouteHandler(db *gorm.DB, v *helper.Validator) *RouteHandler {
	return &RouteHandler{
		Service:   resource.NewService[model.TransportRouteModel](db, resource.Options{Name: "route", SoftDelete: true}),
		Validator: v,
		NewModel:  (*dto.CreateRouteRequest).ToModel,
		Apply:     (*dto.UpdateRouteRequest).ApplyTo,
		Rules: func(m *model.TransportRouteModel) []resource.Rule {
			return []resource.Rule{resource.Unique("name", "transport_routes", "name", m.Name).Except(m.ID)}
		},
	}
}

func NewTransportationHandler(db *gorm.DB, v *helper.Validator) *TransportationHandler {
	return &TransportationHandler{
		Service: resource.NewService[model.TransportationModel](db, resource.Options{
			Name: "transportation", Preloads: []string{"Route", "Driver"}, SoftDelete: true,
		}),
		Validator: v,
		NewModel:  (*dto.CreateTransportationRequest).ToModel,
		Apply:     (*dto.UpdateTransportationRequest).ApplyTo,
		Rules: func(m *model.TransportationModel) []resource.Rule {
			return []resource.Rule{
				resource.ExistsActive("route_id", "transport_routes", m.RouteID),
				resource.ExistsActive("driver_id", "drivers", m.DriverID),
				resource.Unique("vehicle_reg", "transportations", "vehicle_reg", m.VehicleReg).Except(m.ID),
			}
		},
		Filters: resource.ByQuery("route_id", "driver_id"),
	}
}
