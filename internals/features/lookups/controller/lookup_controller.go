package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/lookups/model"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/resource"
)

// LookupController serves one seeded enumeration table, read only.
type LookupController[T any] struct {
	Service *resource.Service[T]
}

func NewLookupController[T any](db *gorm.DB, name string) *LookupController[T] {
	return &LookupController[T]{
		Service: resource.NewService[T](db, resource.Options{Name: name, Order: "id ASC"}),
	}
}

func (ctrl *LookupController[T]) List(c *fiber.Ctx) error {
	rows, err := ctrl.Service.List(c.UserContext())
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonList(c, rows)
}

func (ctrl *LookupController[T]) Show(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	row, err := ctrl.Service.Get(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonOK(c, "", row)
}

func (ctrl *LookupController[T]) Mount(r fiber.Router, path string) {
	r.Get(path, ctrl.List)
	r.Get(path+"/:id<int>", ctrl.Show)
}

// MountAll registers every lookup table under r.
func MountAll(r fiber.Router, db *gorm.DB) {
	NewLookupController[model.GenderModel](db, "gender").Mount(r, "/genders")
	NewLookupController[model.ReligionModel](db, "religion").Mount(r, "/religions")
	NewLookupController[model.DesignationModel](db, "designation").Mount(r, "/designations")
	NewLookupController[model.MonthModel](db, "month").Mount(r, "/months")
	NewLookupController[model.WeekdayModel](db, "weekday").Mount(r, "/weekdays")
}
