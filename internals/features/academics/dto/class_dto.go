package dto

import (
	"strings"

	"schooladmin_backend/internals/features/academics/model"
)

/* =========================================================
 * CLASS
 * ========================================================= */

type CreateClassRequest struct {
	BranchID uint   `json:"branch_id" validate:"required,min=1"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

func (r *CreateClassRequest) Normalize()                 { r.Name = strings.TrimSpace(r.Name) }
func (r *CreateClassRequest) DefaultBranch(branchID uint) { defaultBranch(&r.BranchID, branchID) }

func (r *CreateClassRequest) ToModel() *model.ClassModel {
	return &model.ClassModel{BranchID: r.BranchID, Name: r.Name}
}

type UpdateClassRequest struct {
	BranchID *uint   `json:"branch_id" validate:"omitempty,min=1"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
}

func (r *UpdateClassRequest) Normalize() { trimPtr(r.Name) }

func (r *UpdateClassRequest) ApplyTo(m *model.ClassModel) {
	if r.BranchID != nil {
		m.BranchID = *r.BranchID
	}
	if r.Name != nil {
		m.Name = *r.Name
	}
}

/* =========================================================
 * CLASSROOM
 * ========================================================= */

type CreateClassroomRequest struct {
	ClassID         uint   `json:"class_id" validate:"required,min=1"`
	Name            string `json:"name" validate:"required,min=1,max=100"`
	MaxStudent      int    `json:"max_student" validate:"required,min=1,max=1000"`
	StudentQuantity int    `json:"student_quantity" validate:"min=0"`
	IsActive        *bool  `json:"is_active"`
}

func (r *CreateClassroomRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

func (r *CreateClassroomRequest) ToModel() *model.ClassroomModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.ClassroomModel{
		ClassID:         r.ClassID,
		Name:            r.Name,
		MaxStudent:      r.MaxStudent,
		StudentQuantity: r.StudentQuantity,
		IsActive:        active,
	}
}

type UpdateClassroomRequest struct {
	ClassID         *uint   `json:"class_id" validate:"omitempty,min=1"`
	Name            *string `json:"name" validate:"omitempty,min=1,max=100"`
	MaxStudent      *int    `json:"max_student" validate:"omitempty,min=1,max=1000"`
	StudentQuantity *int    `json:"student_quantity" validate:"omitempty,min=0"`
	IsActive        *bool   `json:"is_active"`
}

func (r *UpdateClassroomRequest) Normalize() { trimPtr(r.Name) }

func (r *UpdateClassroomRequest) ApplyTo(m *model.ClassroomModel) {
	if r.ClassID != nil {
		m.ClassID = *r.ClassID
	}
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.MaxStudent != nil {
		m.MaxStudent = *r.MaxStudent
	}
	if r.StudentQuantity != nil {
		m.StudentQuantity = *r.StudentQuantity
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}
