package controller

import (
	"schooladmin_backend/internals/constants"
	"schooladmin_backend/internals/features/users/dto"
	"schooladmin_backend/internals/features/users/model"
	"schooladmin_backend/internals/helpers/resource"
)

type (
	AdminController   = ProfileController[model.AdminModel, *model.AdminModel, dto.CreateAdminRequest, dto.UpdateAdminRequest]
	TeacherController = ProfileController[model.TeacherModel, *model.TeacherModel, dto.CreateTeacherRequest, dto.UpdateTeacherRequest]
)

var profilePreloads = []string{"User", "Religion", "Gender"}

func NewAdminController(deps ProfileDeps) *AdminController {
	return &AdminController{
		Handler: &resource.Handler[model.AdminModel, dto.CreateAdminRequest, dto.UpdateAdminRequest]{
			Service: resource.NewService[model.AdminModel](deps.DB, resource.Options{
				Name: "admin", SoftDelete: true, Preloads: profilePreloads,
			}),
			Validator: deps.Validator,
			NewModel:  (*dto.CreateAdminRequest).ToModel,
			Apply:     (*dto.UpdateAdminRequest).ApplyTo,
			Filters:   profileFilters("religion_id", "gender_id"),
			Rules: func(m *model.AdminModel) []resource.Rule {
				return []resource.Rule{
					resource.Unique("email", "admins", "email", m.Email).Except(m.ID),
					resource.Unique("phone", "admins", "phone", m.Phone).Except(m.ID),
					resource.Unique("nid", "admins", "nid", m.NID).Except(m.ID),
					resource.Exists("religion_id", "religions", m.ReligionID),
					resource.Exists("gender_id", "genders", m.GenderID),
				}
			},
		},
		Deps:     deps,
		Role:     constants.RoleAdmin,
		Folder:   constants.FolderAdmins,
		BranchOf: (*dto.CreateAdminRequest).Branch,
		Active:   func(in *dto.UpdateAdminRequest) *bool { return in.Active() },
	}
}

func NewTeacherController(deps ProfileDeps) *TeacherController {
	return &TeacherController{
		Handler: &resource.Handler[model.TeacherModel, dto.CreateTeacherRequest, dto.UpdateTeacherRequest]{
			Service: resource.NewService[model.TeacherModel](deps.DB, resource.Options{
				Name:       "teacher",
				SoftDelete: true,
				Preloads:   append(append([]string(nil), profilePreloads...), "Designation", "Subject"),
			}),
			Validator: deps.Validator,
			NewModel:  (*dto.CreateTeacherRequest).ToModel,
			Apply:     (*dto.UpdateTeacherRequest).ApplyTo,
			Filters:   profileFilters("designation_id", "subject_id"),
			Rules: func(m *model.TeacherModel) []resource.Rule {
				return []resource.Rule{
					resource.Unique("email", "teachers", "email", m.Email).Except(m.ID),
					resource.Unique("phone", "teachers", "phone", m.Phone).Except(m.ID),
					resource.Unique("nid", "teachers", "nid", m.NID).Except(m.ID),
					resource.Exists("religion_id", "religions", m.ReligionID),
					resource.Exists("gender_id", "genders", m.GenderID),
					resource.Exists("designation_id", "designations", m.DesignationID),
					resource.ExistsActive("subject_id", "subjects", m.SubjectID),
				}
			},
		},
		Deps:     deps,
		Role:     constants.RoleTeacher,
		Folder:   constants.FolderTeachers,
		BranchOf: (*dto.CreateTeacherRequest).Branch,
		Active:   func(in *dto.UpdateTeacherRequest) *bool { return in.Active() },
	}
}
