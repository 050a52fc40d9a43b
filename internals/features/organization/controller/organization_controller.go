package controller

import (
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/organization/dto"
	"schooladmin_backend/internals/features/organization/model"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/resource"
)

type (
	BranchHandler = resource.Handler[model.BranchModel, dto.CreateBranchRequest, dto.UpdateBranchRequest]
	RoleHandler   = resource.Handler[model.RoleModel, dto.CreateRoleRequest, dto.UpdateRoleRequest]
)

func NewBranchHandler(db *gorm.DB, v *helper.Validator) *BranchHandler {
	return &BranchHandler{
		Service:   resource.NewService[model.BranchModel](db, resource.Options{Name: "branch", SoftDelete: true}),
		Validator: v,
		NewModel:  (*dto.CreateBranchRequest).ToModel,
		Apply:     (*dto.UpdateBranchRequest).ApplyTo,
		Rules: func(m *model.BranchModel) []resource.Rule {
			return []resource.Rule{
				resource.Unique("name", "branches", "name", m.Name).Except(m.ID),
			}
		},
	}
}

func NewRoleHandler(db *gorm.DB, v *helper.Validator) *RoleHandler {
	return &RoleHandler{
		Service:   resource.NewService[model.RoleModel](db, resource.Options{Name: "role", SoftDelete: true, Order: "id ASC"}),
		Validator: v,
		NewModel:  (*dto.CreateRoleRequest).ToModel,
		Apply:     (*dto.UpdateRoleRequest).ApplyTo,
		Rules: func(m *model.RoleModel) []resource.Rule {
			return []resource.Rule{
				resource.Unique("name", "roles", "name", m.Name).Except(m.ID),
			}
		},
	}
}
