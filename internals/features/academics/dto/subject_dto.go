package dto

import (
	"strings"

	"schooladmin_backend/internals/features/academics/model"
)

/* =========================================================
 * SUBJECT
 * ========================================================= */

type CreateSubjectRequest struct {
	Name string  `json:"name" validate:"required,min=2,max=100"`
	Code *string `json:"code" validate:"omitempty,min=1,max=24"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = upperOrNil(r.Code)
}

func (r *CreateSubjectRequest) ToModel() *model.SubjectModel {
	return &model.SubjectModel{Name: r.Name, Code: r.Code}
}

type UpdateSubjectRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=100"`
	Code *string `json:"code" validate:"omitempty,min=1,max=24"`
}

func (r *UpdateSubjectRequest) Normalize() {
	trimPtr(r.Name)
	r.Code = upperOrNil(r.Code)
}

func (r *UpdateSubjectRequest) ApplyTo(m *model.SubjectModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Code != nil {
		m.Code = r.Code
	}
}

// empty code means "no code"
func upperOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToUpper(strings.TrimSpace(*s))
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
 * CLASS <-> SUBJECT
 * ========================================================= */

type CreateClassSubjectRequest struct {
	ClassID   uint `json:"class_id" validate:"required,min=1"`
	SubjectID uint `json:"subject_id" validate:"required,min=1"`
}

func (r *CreateClassSubjectRequest) ToModel() *model.ClassSubjectModel {
	return &model.ClassSubjectModel{ClassID: r.ClassID, SubjectID: r.SubjectID}
}

type UpdateClassSubjectRequest struct {
	ClassID   *uint `json:"class_id" validate:"omitempty,min=1"`
	SubjectID *uint `json:"subject_id" validate:"omitempty,min=1"`
}

func (r *UpdateClassSubjectRequest) ApplyTo(m *model.ClassSubjectModel) {
	if r.ClassID != nil {
		m.ClassID = *r.ClassID
	}
	if r.SubjectID != nil {
		m.SubjectID = *r.SubjectID
	}
}
