package dto

import (
	"strings"

	"schooladmin_backend/internals/features/academics/model"
	helper "schooladmin_backend/internals/helpers"
)

/* =========================================================
 * ACADEMIC YEAR
 * ========================================================= */

type CreateAcademicYearRequest struct {
	BranchID uint   `json:"branch_id" validate:"required,min=1"`
	Year     string `json:"year" validate:"required,year4"`
}

func (r *CreateAcademicYearRequest) Normalize()                 { r.Year = strings.TrimSpace(r.Year) }
func (r *CreateAcademicYearRequest) DefaultBranch(branchID uint) { defaultBranch(&r.BranchID, branchID) }

func (r *CreateAcademicYearRequest) ToModel() *model.AcademicYearModel {
	return &model.AcademicYearModel{BranchID: r.BranchID, Year: r.Year}
}

type UpdateAcademicYearRequest struct {
	BranchID *uint   `json:"branch_id" validate:"omitempty,min=1"`
	Year     *string `json:"year" validate:"omitempty,year4"`
}

func (r *UpdateAcademicYearRequest) Normalize() { trimPtr(r.Year) }

func (r *UpdateAcademicYearRequest) ApplyTo(m *model.AcademicYearModel) {
	if r.BranchID != nil {
		m.BranchID = *r.BranchID
	}
	if r.Year != nil {
		m.Year = *r.Year
	}
}

/* =========================================================
 * ACADEMIC SESSION
 * ========================================================= */

type CreateAcademicSessionRequest struct {
	AcademicYearID uint   `json:"academic_year_id" validate:"required,min=1"`
	Name           string `json:"name" validate:"required,min=2,max=100"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func (r *CreateAcademicSessionRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

func (r *CreateAcademicSessionRequest) ToModel() *model.AcademicSessionModel {
	return &model.AcademicSessionModel{
		AcademicYearID: r.AcademicYearID,
		Name:           r.Name,
		StartDate:      helper.DateOrZero(r.StartDate),
		EndDate:        helper.DateOrZero(r.EndDate),
	}
}

type UpdateAcademicSessionRequest struct {
	AcademicYearID *uint   `json:"academic_year_id" validate:"omitempty,min=1"`
	Name           *string `json:"name" validate:"omitempty,min=2,max=100"`
	StartDate      *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateAcademicSessionRequest) Normalize() { trimPtr(r.Name) }

func (r *UpdateAcademicSessionRequest) ApplyTo(m *model.AcademicSessionModel) {
	if r.AcademicYearID != nil {
		m.AcademicYearID = *r.AcademicYearID
	}
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.StartDate != nil {
		m.StartDate = helper.DateOrZero(*r.StartDate)
	}
	if r.EndDate != nil {
		m.EndDate = helper.DateOrZero(*r.EndDate)
	}
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func defaultBranch(dst *uint, branchID uint) {
	if *dst == 0 {
		*dst = branchID
	}
}
