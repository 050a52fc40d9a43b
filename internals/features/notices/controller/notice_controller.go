package controller

import (
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/notices/dto"
	"schooladmin_backend/internals/features/notices/model"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/helpers/resource"
)

type (
	NoticeTypeHandler = resource.Handler[model.NoticeTypeModel, dto.CreateNoticeTypeRequest, dto.UpdateNoticeTypeRequest]
	NoticeHandler     = resource.Handler[model.NoticeModel, dto.CreateNoticeRequest, dto.UpdateNoticeRequest]
)

func NewNoticeTypeHandler(db *gorm.DB, v *helper.Validator) *NoticeTypeHandler {
	return &NoticeTypeHandler{
		Service:   resource.NewService[model.NoticeTypeModel](db, resource.Options{Name: "notice type"}),
		Validator: v,
		NewModel:  (*dto.CreateNoticeTypeRequest).ToModel,
		Apply:     (*dto.UpdateNoticeTypeRequest).ApplyTo,
		Rules: func(m *model.NoticeTypeModel) []resource.Rule {
			return []resource.Rule{resource.Unique("name", "notice_types", "name", m.Name).Except(m.ID)}
		},
	}
}

// Notices list newest publish date first.
func NewNoticeHandler(db *gorm.DB, v *helper.Validator) *NoticeHandler {
	return &NoticeHandler{
		Service: resource.NewService[model.NoticeModel](db, resource.Options{
			Name:       "notice",
			Preloads:   []string{"Branch", "NoticeType"},
			SoftDelete: true,
			Order:      "publish_date DESC, id DESC",
		}),
		Validator: v,
		NewModel:  (*dto.CreateNoticeRequest).ToModel,
		Apply:     (*dto.UpdateNoticeRequest).ApplyTo,
		Rules: func(m *model.NoticeModel) []resource.Rule {
			return []resource.Rule{
				resource.ExistsActive("branch_id", "branches", m.BranchID),
				resource.Exists("notice_type_id", "notice_types", m.NoticeTypeID),
			}
		},
		Filters: resource.BranchScoped("notice_type_id"),
	}
}
