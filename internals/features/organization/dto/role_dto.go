package dto

import (
	"strings"

	"schooladmin_backend/internals/features/organization/model"
)

type CreateRoleRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

func (r *CreateRoleRequest) Normalize() { r.Name = strings.ToLower(strings.TrimSpace(r.Name)) }

func (r *CreateRoleRequest) ToModel() *model.RoleModel {
	return &model.RoleModel{Name: r.Name}
}

type UpdateRoleRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=50"`
}

func (r *UpdateRoleRequest) Normalize() {
	if r.Name != nil {
		*r.Name = strings.ToLower(strings.TrimSpace(*r.Name))
	}
}

func (r *UpdateRoleRequest) ApplyTo(m *model.RoleModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
}
