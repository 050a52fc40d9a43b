package dto

import (
	"strings"

	"schooladmin_backend/internals/features/organization/model"
)

/* =========================================================
 * BRANCH
 * ========================================================= */

type CreateBranchRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Location string `json:"location" validate:"omitempty,max=255"`
}

func (r *CreateBranchRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Location = strings.TrimSpace(r.Location)
}

func (r *CreateBranchRequest) ToModel() *model.BranchModel {
	return &model.BranchModel{Name: r.Name, Location: r.Location}
}

// Update (partial)
type UpdateBranchRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=3,max=100"`
	Location *string `json:"location" validate:"omitempty,max=255"`
}

func (r *UpdateBranchRequest) Normalize() {
	trimPtr(r.Name)
	trimPtr(r.Location)
}

func (r *UpdateBranchRequest) ApplyTo(m *model.BranchModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Location != nil {
		m.Location = *r.Location
	}
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
