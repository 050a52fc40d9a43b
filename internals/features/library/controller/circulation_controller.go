package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/library/model"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/resource"
)

var (
	ErrNoCopyAvailable = helper.Conflict("no copy of this book is available")
	ErrNoCopyIssued    = helper.Conflict("no copy of this book is issued")
)

// CirculationController moves copies in and out. Each move is one conditional UPDATE.
type CirculationController struct {
	DB *gorm.DB
}

func NewCirculationController(db *gorm.DB) *CirculationController {
	return &CirculationController{DB: db}
}

func (ctrl *CirculationController) adjust(c *fiber.Ctx, delta int) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.WriteError(c, err)
	}
	db := ctrl.DB.WithContext(c.UserContext())

	guard, conflict := "taken_by < quantity", ErrNoCopyAvailable
	if delta < 0 {
		guard, conflict = "taken_by > 0", ErrNoCopyIssued
	}
	res := db.Model(&model.LibraryBookModel{}).
		Where("id = ?", id).
		Where(guard).
		Update("taken_by", gorm.Expr("taken_by + ?", delta))
	if res.Error != nil {
		return helper.WriteError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		var book model.LibraryBookModel
		if err := db.Select("id").First(&book, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.WriteError(c, helper.NotFound("book"))
			}
			return helper.WriteError(c, err)
		}
		return helper.WriteError(c, conflict)
	}

	var book model.LibraryBookModel
	if err := db.First(&book, id).Error; err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonOK(c, "", fiber.Map{
		"id":        book.ID,
		"quantity":  book.Quantity,
		"taken_by":  book.TakenBy,
		"available": book.Available(),
	})
}

// POST /library/books/:id/issue
func (ctrl *CirculationController) Issue(c *fiber.Ctx) error { return ctrl.adjust(c, 1) }

// POST /library/books/:id/return
func (ctrl *CirculationController) Return(c *fiber.Ctx) error { return ctrl.adjust(c, -1) }
