package dto

import (
	"strings"

	"schooladmin_backend/internals/features/library/model"
)

/* =========================================================
 * SHELF
 * ========================================================= */

type CreateShelfRequest struct {
	BranchID uint   `json:"branch_id" validate:"required,min=1"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

func (r *CreateShelfRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

func (r *CreateShelfRequest) DefaultBranch(branchID uint) {
	if r.BranchID == 0 {
		r.BranchID = branchID
	}
}

func (r *CreateShelfRequest) ToModel() *model.LibraryShelfModel {
	return &model.LibraryShelfModel{BranchID: r.BranchID, Name: r.Name}
}

type UpdateShelfRequest struct {
	BranchID *uint   `json:"branch_id" validate:"omitempty,min=1"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
}

func (r *UpdateShelfRequest) Normalize() { trimPtr(r.Name) }

func (r *UpdateShelfRequest) ApplyTo(m *model.LibraryShelfModel) {
	if r.BranchID != nil {
		m.BranchID = *r.BranchID
	}
	if r.Name != nil {
		m.Name = *r.Name
	}
}

/* =========================================================
 * CATEGORY & READER TYPE (name only)
 * ========================================================= */

type NameRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

func (r *NameRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

func (r *NameRequest) ToCategory() *model.LibraryBookCategoryModel {
	return &model.LibraryBookCategoryModel{Name: r.Name}
}

func (r *NameRequest) ToReaderType() *model.ReaderTypeModel {
	return &model.ReaderTypeModel{Name: r.Name}
}

type UpdateNameRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=100"`
}

func (r *UpdateNameRequest) Normalize() { trimPtr(r.Name) }

func (r *UpdateNameRequest) ApplyToCategory(m *model.LibraryBookCategoryModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
}

func (r *UpdateNameRequest) ApplyToReaderType(m *model.ReaderTypeModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
}

/* =========================================================
 * BOOK
 * ========================================================= */

type CreateBookRequest struct {
	ShelfID      uint     `json:"shelf_id" validate:"required,min=1"`
	CategoryID   uint     `json:"category_id" validate:"required,min=1"`
	ReaderTypeID uint     `json:"reader_type_id" validate:"required,min=1"`
	Name         string   `json:"name" validate:"required,min=1,max=200"`
	Authors      []string `json:"authors" validate:"omitempty,max=20,dive,required,max=100"`
	Code         *string  `json:"code" validate:"omitempty,min=1,max=50"`
	Quantity     int      `json:"quantity" validate:"min=0"`
	TakenBy      int      `json:"taken_by" validate:"min=0"`
}

func (r *CreateBookRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Authors = cleanAuthors(r.Authors)
	r.Code = trimOrNil(r.Code)
}

func (r *CreateBookRequest) ToModel() *model.LibraryBookModel {
	return &model.LibraryBookModel{
		ShelfID:      r.ShelfID,
		CategoryID:   r.CategoryID,
		ReaderTypeID: r.ReaderTypeID,
		Name:         r.Name,
		Authors:      model.Authors(r.Authors),
		Code:         r.Code,
		Quantity:     r.Quantity,
		TakenBy:      r.TakenBy,
	}
}

type UpdateBookRequest struct {
	ShelfID      *uint    `json:"shelf_id" validate:"omitempty,min=1"`
	CategoryID   *uint    `json:"category_id" validate:"omitempty,min=1"`
	ReaderTypeID *uint    `json:"reader_type_id" validate:"omitempty,min=1"`
	Name         *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Authors      []string `json:"authors" validate:"omitempty,max=20,dive,required,max=100"`
	Code         *string  `json:"code" validate:"omitempty,min=1,max=50"`
	Quantity     *int     `json:"quantity" validate:"omitempty,min=0"`
	TakenBy      *int     `json:"taken_by" validate:"omitempty,min=0"`
}

func (r *UpdateBookRequest) Normalize() {
	trimPtr(r.Name)
	r.Authors = cleanAuthors(r.Authors)
	r.Code = trimOrNil(r.Code)
}

func (r *UpdateBookRequest) ApplyTo(m *model.LibraryBookModel) {
	if r.ShelfID != nil {
		m.ShelfID = *r.ShelfID
	}
	if r.CategoryID != nil {
		m.CategoryID = *r.CategoryID
	}
	if r.ReaderTypeID != nil {
		m.ReaderTypeID = *r.ReaderTypeID
	}
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Authors != nil {
		m.Authors = model.Authors(r.Authors)
	}
	if r.Code != nil {
		m.Code = r.Code
	}
	if r.Quantity != nil {
		m.Quantity = *r.Quantity
	}
	if r.TakenBy != nil {
		m.TakenBy = *r.TakenBy
	}
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func cleanAuthors(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, a := range in {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
